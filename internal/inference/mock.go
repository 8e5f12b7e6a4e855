package inference

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Mock produces canned TikZ code per diagram category with simulated latency.
// It stands in for a real image-to-TikZ model during development; the image
// content is ignored beyond checking that the file is readable.
type Mock struct {
	delay time.Duration
}

// NewMock creates a mock strategy with the given simulated processing delay
func NewMock(delay time.Duration) *Mock {
	return &Mock{delay: delay}
}

// Infer returns the requested template's code when one was chosen, otherwise
// the canned snippet for the category. Unknown categories fall back to general.
func (m *Mock) Infer(ctx context.Context, req Request) (string, error) {
	if _, err := os.ReadFile(req.ImagePath); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if req.TemplateCode != "" {
		return req.TemplateCode, nil
	}

	if code, ok := cannedSnippets[req.Category]; ok {
		return code, nil
	}
	return cannedSnippets["general"], nil
}

// cannedSnippets maps diagram categories to example TikZ output. Categories
// without a snippet (thermodynamics, quantum) use the general one.
var cannedSnippets = map[string]string{
	"mechanics": `\begin{tikzpicture}[scale=1.5]
    % Mass on incline
    \draw[thick] (0,0) -- (4,2) -- (4,0) -- cycle;
    \draw[fill=blue!20] (2,1) rectangle (2.5,1.5);
    \node at (2.25,1.25) {$m$};

    % Forces
    \draw[->,red,thick] (2.25,1.5) -- (2.25,2.5) node[above] {$\vec{N}$};
    \draw[->,red,thick] (2.25,1.25) -- (2.25,0.25) node[below] {$\vec{F_g}$};
    \draw[->,green,thick] (2.5,1.25) -- (3.5,1.25) node[right] {$\vec{a}$};

    % Angle
    \draw (0.5,0) arc (0:26.57:0.5);
    \node at (0.8,0.15) {$\theta$};
\end{tikzpicture}`,

	"electricity": `\begin{tikzpicture}[scale=1.5]
    % Circuit components
    \draw (0,0) to[battery1, l=$V$] (0,2)
          to[R, l=$R_1$] (2,2)
          to[R, l=$R_2$] (4,2)
          to[lamp, l=$L$] (4,0)
          to[short] (0,0);

    % Current direction
    \draw[->,blue,thick] (1,2.3) -- (2,2.3) node[midway,above] {$I$};
\end{tikzpicture}`,

	"optics": `\begin{tikzpicture}[scale=1.5]
    % Lens
    \draw[thick] (0,-1.5) to[out=20,in=-20] (0,1.5);
    \draw[thick] (0.1,-1.5) to[out=20,in=-20] (0.1,1.5);

    % Optical axis
    \draw[dashed] (-2,0) -- (4,0);

    % Light rays
    \draw[->,blue,thick] (-2,1) -- (0,1);
    \draw[->,blue,thick] (0,1) -- (3,-0.5);
    \draw[->,blue,thick] (-2,0.5) -- (0,0.5);
    \draw[->,blue,thick] (0,0.5) -- (3,-0.3);

    % Focal points
    \node at (1.5,-0.3) {$F$};
    \draw[fill] (1.5,0) circle (1pt);
\end{tikzpicture}`,

	"general": `\begin{tikzpicture}[scale=1.5]
    % Generic physics diagram
    \draw[thick,->] (0,0) -- (3,0) node[right] {$x$};
    \draw[thick,->] (0,0) -- (0,3) node[above] {$y$};

    % Vector
    \draw[->,red,very thick] (0,0) -- (2,2) node[midway,above left] {$\vec{F}$};

    % Point
    \draw[fill] (1,1) circle (2pt) node[below right] {$P$};
\end{tikzpicture}`,
}
