package dto

import (
	"time"

	"github.com/tikzlab/sketch2tikz/internal/solver"
)

type ProblemUploadResponse struct {
	Success       bool    `json:"success"`
	ImageID       string  `json:"image_id"`
	Filename      string  `json:"filename"`
	FilePath      string  `json:"file_path"`
	OCRText       string  `json:"ocr_text,omitempty"`
	OCRConfidence float64 `json:"ocr_confidence"`
}

type SolveRequest struct {
	ProblemText string `json:"problem_text"`
	ImageID     string `json:"image_id"`
}

type SolveResponse struct {
	Success     bool             `json:"success"`
	SolutionID  string           `json:"solution_id"`
	ProblemText string           `json:"problem_text,omitempty"`
	Solution    *solver.Solution `json:"solution,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type SolutionResponse struct {
	Success     bool            `json:"success"`
	SolutionID  string          `json:"solution_id"`
	ProblemText string          `json:"problem_text"`
	Solution    solver.Solution `json:"solution"`
	CreatedAt   time.Time       `json:"created_at"`
}
