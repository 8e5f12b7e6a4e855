package inference

import (
	"context"
	"strings"
)

// Request carries the inputs for a single conversion inference
type Request struct {
	ImagePath    string
	Category     string
	Description  string
	TemplateCode string
}

// Strategy turns an uploaded diagram image into TikZ code. Implementations
// are swappable: the job registry and polling contracts stay untouched when
// a real model replaces the mock.
type Strategy interface {
	Infer(ctx context.Context, req Request) (string, error)
}

// HasTikZEnvironment reports whether code contains a tikzpicture environment
func HasTikZEnvironment(code string) bool {
	return strings.Contains(code, `\begin{tikzpicture}`) &&
		strings.Contains(code, `\end{tikzpicture}`)
}
