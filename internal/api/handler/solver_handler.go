package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/dto"
	"github.com/tikzlab/sketch2tikz/internal/solver"
	"github.com/tikzlab/sketch2tikz/internal/upload"
)

// SolverHandler handles the physics problem solving endpoints
type SolverHandler struct {
	logger    *slog.Logger
	uploads   *upload.Store
	ocr       *solver.OCR
	solver    *solver.Solver
	solutions *solver.Store
}

// NewSolverHandler creates a new SolverHandler instance
func NewSolverHandler(deps *Dependencies) *SolverHandler {
	return &SolverHandler{
		logger:    deps.Logger,
		uploads:   deps.Uploads,
		ocr:       deps.OCR,
		solver:    deps.Solver,
		solutions: deps.Solutions,
	}
}

// UploadProblem handles POST /api/solver/upload-problem
// Stores a problem image and runs OCR on it
func (h *SolverHandler) UploadProblem(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "file is required",
		})
		return
	}

	image, err := h.uploads.Save(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.logger.Error("Failed to store problem image",
			slog.String("filename", file.Filename),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Upload failed",
		})
		return
	}

	resp := dto.ProblemUploadResponse{
		Success:  true,
		ImageID:  image.ID,
		Filename: filepath.Base(image.StoredPath),
		FilePath: image.StoredPath,
	}

	// OCR is best effort at upload time, solving can still provide text.
	if result, err := h.ocr.ExtractText(c.Request.Context(), image.StoredPath); err == nil {
		resp.OCRText = result.Text
		resp.OCRConfidence = result.Confidence
	} else {
		h.logger.Warn("OCR failed for problem image",
			slog.String("image_id", image.ID),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, resp)
}

// Solve handles POST /api/solver/solve
// Produces a step-by-step solution from text or a previously uploaded image
func (h *SolverHandler) Solve(c *gin.Context) {
	var req dto.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	problemText := req.ProblemText

	if req.ImageID != "" && problemText == "" {
		path, found, err := h.uploads.ResolvePath(c.Request.Context(), req.ImageID)
		if err != nil {
			h.logger.Error("Failed to resolve problem image",
				slog.String("image_id", req.ImageID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Problem solving failed",
			})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Image not found",
			})
			return
		}

		result, err := h.ocr.ExtractText(c.Request.Context(), path)
		if err != nil {
			h.logger.Error("OCR failed for problem image",
				slog.String("image_id", req.ImageID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Problem solving failed",
			})
			return
		}
		problemText = result.Text
	}

	if problemText == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No problem text provided",
		})
		return
	}

	solution := h.solver.Solve(problemText)
	solved := h.solutions.Put(problemText, solution)

	c.JSON(http.StatusOK, dto.SolveResponse{
		Success:     true,
		SolutionID:  solved.ID,
		ProblemText: problemText,
		Solution:    &solved.Solution,
	})
}

// GetSolution handles GET /api/solver/solution/:solution_id
func (h *SolverHandler) GetSolution(c *gin.Context) {
	solutionID := c.Param("solution_id")

	solved, err := h.solutions.Get(solutionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Solution not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SolutionResponse{
		Success:     true,
		SolutionID:  solved.ID,
		ProblemText: solved.ProblemText,
		Solution:    solved.Solution,
		CreatedAt:   solved.CreatedAt,
	})
}
