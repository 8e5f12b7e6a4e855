package solver

import (
	"log/slog"
	"strings"
)

// Problem types detected from the problem statement.
const (
	TypeMechanics       = "mechanics"
	TypeElectricity     = "electricity"
	TypeThermodynamics  = "thermodynamics"
	TypeOptics          = "optics"
	TypeQuantum         = "quantum"
	TypeKinematicsGraph = "kinematics_graph"
	TypeGeneral         = "general"
)

// Step is one stage of a worked solution
type Step struct {
	StepNumber   int      `json:"step_number"`
	Title        string   `json:"title"`
	Explanation  string   `json:"explanation"`
	Formulas     []string `json:"formulas"`
	Calculations []string `json:"calculations"`
	Result       string   `json:"result"`
}

// Diagram is a TikZ figure accompanying a solution
type Diagram struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

// Answer is one final answer with its unit and a short justification
type Answer struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// Solution is a complete step-by-step solution to a physics problem
type Solution struct {
	ProblemType   string    `json:"problem_type"`
	GivenInfo     []string  `json:"given_info"`
	Find          []string  `json:"find"`
	SolutionSteps []Step    `json:"solution_steps"`
	TikZDiagrams  []Diagram `json:"tikz_diagrams"`
	FinalAnswers  []Answer  `json:"final_answers"`
}

// Solver produces worked solutions for physics word problems. Recognized
// problem shapes get a full canned walkthrough, everything else gets a
// generic scaffold tagged with the detected problem type.
type Solver struct {
	logger *slog.Logger
}

// NewSolver creates a solver
func NewSolver(logger *slog.Logger) *Solver {
	return &Solver{logger: logger}
}

// keyword groups checked in order, first hit wins
var problemKeywords = []struct {
	problemType string
	keywords    []string
}{
	{TypeMechanics, []string{"incline", "friction", "force", "acceleration", "velocity", "projectile", "motion"}},
	{TypeElectricity, []string{"circuit", "voltage", "current", "resistance", "resistor", "capacitor", "inductor"}},
	{TypeThermodynamics, []string{"heat", "temperature", "thermal", "entropy", "gas", "pressure"}},
	{TypeOptics, []string{"lens", "mirror", "light", "reflection", "refraction", "wavelength"}},
	{TypeQuantum, []string{"quantum", "photon", "electron", "energy level", "wave function"}},
	{TypeKinematicsGraph, []string{"graph", "velocity-time", "position-time", "v-t", "x-t"}},
}

// Solve generates a solution for the given problem statement
func (s *Solver) Solve(problemText string) Solution {
	text := strings.ToLower(problemText)

	problemType := classify(text)
	s.logger.Info("Solving physics problem",
		slog.String("problem_type", problemType),
		slog.Int("text_length", len(problemText)),
	)

	if problemType == TypeKinematicsGraph {
		return graphSolution()
	}

	switch {
	case strings.Contains(text, "incline") && strings.Contains(text, "friction"):
		return inclinedPlaneSolution()
	case strings.Contains(text, "projectile") || (strings.Contains(text, "launch") && strings.Contains(text, "angle")):
		return projectileSolution()
	case strings.Contains(text, "circuit") && strings.Contains(text, "resistor"):
		return seriesCircuitSolution()
	}

	return genericSolution(problemType)
}

func classify(text string) string {
	for _, group := range problemKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.problemType
			}
		}
	}
	return TypeGeneral
}
