package solver

import "fmt"

func inclinedPlaneSolution() Solution {
	return Solution{
		ProblemType: TypeMechanics,
		GivenInfo: []string{
			"Mass (m) = 2 kg",
			"Incline angle (θ) = 30°",
			"Coefficient of kinetic friction (μk) = 0.3",
			"Gravitational acceleration (g) = 10 m/s²",
		},
		Find: []string{
			"a) Acceleration of the block",
			"b) Normal force",
			"c) Friction force",
		},
		SolutionSteps: []Step{
			{
				StepNumber:   1,
				Title:        "Draw Free Body Diagram",
				Explanation:  "Identify all forces acting on the block: weight (mg), normal force (N), and friction force (f).",
				Formulas:     []string{},
				Calculations: []string{},
				Result:       "Forces identified",
			},
			{
				StepNumber:  2,
				Title:       "Resolve Weight into Components",
				Explanation: "The weight has components parallel and perpendicular to the incline.",
				Formulas: []string{
					"mg_parallel = mg sin(θ)",
					"mg_perpendicular = mg cos(θ)",
				},
				Calculations: []string{
					"mg_parallel = 2 × 10 × sin(30°) = 2 × 10 × 0.5 = 10 N",
					"mg_perpendicular = 2 × 10 × cos(30°) = 2 × 10 × 0.866 = 17.32 N",
				},
				Result: "Weight components calculated",
			},
			{
				StepNumber:  3,
				Title:       "Calculate Normal Force (b)",
				Explanation: "The normal force equals the perpendicular component of weight (no acceleration perpendicular to incline).",
				Formulas: []string{
					"N = mg cos(θ)",
				},
				Calculations: []string{
					"N = 17.32 N",
				},
				Result: "N = 17.32 N",
			},
			{
				StepNumber:  4,
				Title:       "Calculate Friction Force (c)",
				Explanation: "Kinetic friction opposes motion and depends on the normal force.",
				Formulas: []string{
					"f = μk × N",
				},
				Calculations: []string{
					"f = 0.3 × 17.32 = 5.196 N",
				},
				Result: "f ≈ 5.2 N",
			},
			{
				StepNumber:  5,
				Title:       "Calculate Acceleration (a)",
				Explanation: "Net force down the incline equals mass times acceleration.",
				Formulas: []string{
					"F_net = mg sin(θ) - f",
					"a = F_net / m",
				},
				Calculations: []string{
					"F_net = 10 - 5.2 = 4.8 N",
					"a = 4.8 / 2 = 2.4 m/s²",
				},
				Result: "a = 2.4 m/s²",
			},
		},
		TikZDiagrams: []Diagram{
			{
				Type:  "free_body_diagram",
				Title: "Free Body Diagram of Block on Incline",
				Code: `\begin{tikzpicture}[scale=1.5]
    % Inclined plane
    \draw[thick] (0,0) -- (4,2) -- (4,0) -- cycle;
    \draw[fill=blue!20] (2,1) rectangle (2.5,1.5);
    \node at (2.25,1.25) {$m$};

    % Normal force
    \draw[->,red,very thick] (2.25,1.5) -- (2.25,2.5) node[above] {$\vec{N}$};
    % Weight
    \draw[->,red,very thick] (2.25,1.25) -- (2.25,0.25) node[below] {$mg$};
    % Friction
    \draw[->,orange,very thick] (2.5,1.25) -- (1.5,1.75) node[above left] {$\vec{f}$};
    % Acceleration
    \draw[->,green,very thick] (2.5,1.25) -- (3.5,1.75) node[right] {$\vec{a}$};

    % Weight components
    \draw[->,red,dashed] (2.25,0.25) -- (2.75,0.5) node[right,font=\small] {$mg\sin\theta$};
    \draw[->,red,dashed] (2.25,0.25) -- (2.25,-0.25) node[below,font=\small] {$mg\cos\theta$};

    % Angle
    \draw (0.5,0) arc (0:26.57:0.5);
    \node at (0.8,0.15) {$\theta$};
\end{tikzpicture}`,
			},
		},
		FinalAnswers: []Answer{
			{
				Question:    "a) The acceleration of the block",
				Answer:      "2.4 m/s²",
				Explanation: "The block accelerates down the incline at 2.4 m/s²",
			},
			{
				Question:    "b) The normal force",
				Answer:      "17.32 N",
				Explanation: "The normal force equals the perpendicular component of the weight",
			},
			{
				Question:    "c) The friction force",
				Answer:      "5.2 N",
				Explanation: "The kinetic friction force opposes the motion up the incline",
			},
		},
	}
}

func projectileSolution() Solution {
	return Solution{
		ProblemType: TypeMechanics,
		GivenInfo: []string{
			"Launch angle (θ) = 45°",
			"Initial velocity (v₀) = 40 m/s",
			"Gravitational acceleration (g) = 10 m/s²",
		},
		Find: []string{
			"a) Maximum height reached",
			"b) Range (horizontal distance)",
			"c) Time of flight",
		},
		SolutionSteps: []Step{
			{
				StepNumber:  1,
				Title:       "Resolve Initial Velocity into Components",
				Explanation: "Break down the initial velocity into horizontal and vertical components.",
				Formulas: []string{
					"v₀ₓ = v₀ cos(θ)",
					"v₀ᵧ = v₀ sin(θ)",
				},
				Calculations: []string{
					"v₀ₓ = 40 × cos(45°) = 40 × 0.707 = 28.28 m/s",
					"v₀ᵧ = 40 × sin(45°) = 40 × 0.707 = 28.28 m/s",
				},
				Result: "Velocity components calculated",
			},
			{
				StepNumber:  2,
				Title:       "Calculate Maximum Height (a)",
				Explanation: "At maximum height, vertical velocity becomes zero.",
				Formulas: []string{
					"h_max = (v₀ᵧ)² / (2g)",
				},
				Calculations: []string{
					"h_max = (28.28)² / (2 × 10) = 800 / 20 = 40 m",
				},
				Result: "h_max = 40 m",
			},
			{
				StepNumber:  3,
				Title:       "Calculate Time of Flight (c)",
				Explanation: "Total time in air until projectile returns to ground level.",
				Formulas: []string{
					"T = 2v₀ᵧ / g",
				},
				Calculations: []string{
					"T = 2 × 28.28 / 10 = 56.56 / 10 = 5.66 s",
				},
				Result: "T = 5.66 s",
			},
			{
				StepNumber:  4,
				Title:       "Calculate Range (b)",
				Explanation: "Horizontal distance traveled during time of flight.",
				Formulas: []string{
					"R = v₀ₓ × T",
				},
				Calculations: []string{
					"R = 28.28 × 5.66 = 160 m",
				},
				Result: "R = 160 m",
			},
		},
		TikZDiagrams: []Diagram{
			{
				Type:  "trajectory",
				Title: "Projectile Motion Trajectory",
				Code: `\begin{tikzpicture}[scale=0.8]
    % Ground
    \draw[thick] (0,0) -- (10,0);

    % Trajectory (parabola)
    \draw[blue, very thick] (0,0) .. controls (3,4) and (7,4) .. (10,0);

    % Launch point
    \fill (0,0) circle (3pt);
    \node[below] at (0,0) {Launch};

    % Peak
    \fill[red] (5,4) circle (3pt);
    \node[above] at (5,4) {h$_{max}$ = 40m};
    \draw[dashed] (5,0) -- (5,4);

    % Landing point
    \fill (10,0) circle (3pt);
    \node[below] at (10,0) {Land};

    % Range arrow
    \draw[<->,green,thick] (0,-0.5) -- (10,-0.5) node[midway,below] {R = 160m};

    % Initial velocity vector
    \draw[->,red,very thick] (0,0) -- (2,2) node[above right] {$\vec{v_0}$=40 m/s};
    \draw (0.7,0) arc (0:45:0.7);
    \node at (1.2,0.3) {45°};
\end{tikzpicture}`,
			},
		},
		FinalAnswers: []Answer{
			{
				Question:    "a) Maximum height reached",
				Answer:      "40 m",
				Explanation: "The projectile reaches a maximum height of 40 meters",
			},
			{
				Question:    "b) Range (horizontal distance)",
				Answer:      "160 m",
				Explanation: "The projectile travels 160 meters horizontally",
			},
			{
				Question:    "c) Time of flight",
				Answer:      "5.66 s",
				Explanation: "The projectile stays in air for approximately 5.66 seconds",
			},
		},
	}
}

func seriesCircuitSolution() Solution {
	return Solution{
		ProblemType: TypeElectricity,
		GivenInfo: []string{
			"Voltage source (V) = 12 V",
			"Resistor R₁ = 4 Ω",
			"Resistor R₂ = 2 Ω",
		},
		Find: []string{
			"a) Total resistance",
			"b) Current in the circuit",
			"c) Voltage across R₁ and R₂",
		},
		SolutionSteps: []Step{
			{
				StepNumber:  1,
				Title:       "Calculate Total Resistance (a)",
				Explanation: "In a series circuit, resistances add up.",
				Formulas: []string{
					"R_total = R₁ + R₂",
				},
				Calculations: []string{
					"R_total = 4 + 2 = 6 Ω",
				},
				Result: "R_total = 6 Ω",
			},
			{
				StepNumber:  2,
				Title:       "Calculate Current (b)",
				Explanation: "Use Ohm's law: V = IR",
				Formulas: []string{
					"I = V / R_total",
				},
				Calculations: []string{
					"I = 12 / 6 = 2 A",
				},
				Result: "I = 2 A",
			},
			{
				StepNumber:  3,
				Title:       "Calculate Voltage Drops (c)",
				Explanation: "In series, same current flows through all resistors.",
				Formulas: []string{
					"V₁ = I × R₁",
					"V₂ = I × R₂",
				},
				Calculations: []string{
					"V₁ = 2 × 4 = 8 V",
					"V₂ = 2 × 2 = 4 V",
				},
				Result: "V₁ = 8 V, V₂ = 4 V",
			},
			{
				StepNumber:  4,
				Title:       "Verify Kirchhoff's Voltage Law",
				Explanation: "Sum of voltage drops equals source voltage.",
				Formulas: []string{
					"V = V₁ + V₂",
				},
				Calculations: []string{
					"12 = 8 + 4 ✓",
				},
				Result: "Verification successful",
			},
		},
		TikZDiagrams: []Diagram{
			{
				Type:  "circuit",
				Title: "Series Circuit Diagram",
				Code: `\begin{tikzpicture}[scale=1.5]
    % Battery
    \draw[thick] (0,0) -- (0,0.5);
    \draw[thick] (-0.2,0.5) -- (0.2,0.5);
    \draw[thick] (-0.1,0.6) -- (0.1,0.6);
    \node[left] at (-0.3,0.55) {$+$};
    \node[left] at (-0.5,0.3) {12V};
    \draw[thick] (0,0.6) -- (0,1);

    % Top wire with R1
    \draw[thick] (0,1) -- (1.5,1);
    \draw[thick] (1.5,1) -- (1.7,1.2) -- (1.9,0.8) -- (2.1,1.2) -- (2.3,0.8) -- (2.5,1.2) -- (2.7,1);
    \node[above] at (2.1,1.2) {$R_1=4\Omega$};
    \node[above] at (2.1,1.5) {\color{red}8V};

    % Wire with R2
    \draw[thick] (2.7,1) -- (4,1);
    \draw[thick] (4,1) -- (4.2,1.2) -- (4.4,0.8) -- (4.6,1.2) -- (4.8,0.8) -- (5,1.2) -- (5.2,1);
    \node[above] at (4.6,1.2) {$R_2=2\Omega$};
    \node[above] at (4.6,1.5) {\color{red}4V};

    % Return wire
    \draw[thick] (5.2,1) -- (6,1) -- (6,0) -- (0,0);

    % Current arrows
    \draw[->,blue,very thick] (1,1.3) -- (2,1.3) node[midway,above] {$I=2A$};
\end{tikzpicture}`,
			},
		},
		FinalAnswers: []Answer{
			{
				Question:    "a) Total resistance",
				Answer:      "6 Ω",
				Explanation: "Series resistances add: 4Ω + 2Ω = 6Ω",
			},
			{
				Question:    "b) Current in the circuit",
				Answer:      "2 A",
				Explanation: "Using Ohm's law: I = V/R = 12V/6Ω = 2A",
			},
			{
				Question:    "c) Voltage across R₁ and R₂",
				Answer:      "V₁ = 8V, V₂ = 4V",
				Explanation: "Voltage drops calculated using V = IR for each resistor",
			},
		},
	}
}

func graphSolution() Solution {
	return Solution{
		ProblemType: "kinematics",
		GivenInfo: []string{
			"Analyzing graph-based kinematics problem",
			"Graph shows motion with changing velocity",
		},
		Find: []string{
			"Information from graph analysis",
		},
		SolutionSteps: []Step{
			{
				StepNumber:  1,
				Title:       "Graph Analysis",
				Explanation: "For velocity-time graphs: slope gives acceleration, area gives displacement. For position-time graphs: slope gives velocity.",
				Formulas: []string{
					"v-t graph: a = slope, d = area",
					"x-t graph: v = slope",
				},
				Calculations: []string{},
				Result:       "Apply appropriate graph analysis method",
			},
		},
		TikZDiagrams: []Diagram{},
		FinalAnswers: []Answer{
			{
				Question:    "Solution",
				Answer:      "Upload a graph image for detailed analysis",
				Explanation: "Use the image upload feature to analyze specific graphs",
			},
		},
	}
}

func genericSolution(problemType string) Solution {
	return Solution{
		ProblemType: problemType,
		GivenInfo: []string{
			"Please review the problem statement above",
		},
		Find: []string{
			"Analyzing problem requirements...",
		},
		SolutionSteps: []Step{
			{
				StepNumber:  1,
				Title:       "Problem Analysis",
				Explanation: fmt.Sprintf("This appears to be a %s problem. In production, an AI model (GPT-4 or Gemini) would analyze the problem and generate a complete step-by-step solution.", problemType),
				Formulas: []string{
					"Relevant physics equations would be applied here",
				},
				Calculations: []string{
					"Calculations would be performed step by step",
				},
				Result: "AI-generated solution would appear here",
			},
			{
				StepNumber:   2,
				Title:        "Integration Note",
				Explanation:  "To get actual AI-powered solutions, integrate with:\n- OpenAI GPT-4 API\n- Google Gemini Pro API\n- Other AI physics solvers",
				Formulas:     []string{},
				Calculations: []string{},
				Result:       "For now, try one of the sample problems for a complete demonstration",
			},
		},
		TikZDiagrams: []Diagram{},
		FinalAnswers: []Answer{
			{
				Question:    "Solution",
				Answer:      "Pending AI integration",
				Explanation: "This is a development placeholder. Integrate with AI APIs for actual solutions.",
			},
		},
	}
}
