package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tikzlab/sketch2tikz/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(deps)
	uploadHandler := handler.NewUploadHandler(deps)
	convertHandler := handler.NewConvertHandler(deps)
	templateHandler := handler.NewTemplateHandler(deps)
	renderHandler := handler.NewRenderHandler(deps)
	exportHandler := handler.NewExportHandler(deps)
	solverHandler := handler.NewSolverHandler(deps)

	// Service metadata
	r.GET("/", systemHandler.Info)
	r.GET("/health", systemHandler.Health)

	api := r.Group("/api")
	{
		upload := api.Group("/upload")
		{
			// POST /api/upload - Upload a diagram image
			upload.POST("", uploadHandler.Upload)

			// GET /api/upload/:file_id - Download an uploaded image
			upload.GET("/:file_id", uploadHandler.GetFile)
		}

		convert := api.Group("/convert")
		{
			// POST /api/convert - Start a conversion job
			convert.POST("", convertHandler.Convert)

			// GET /api/convert/:conversion_id - Poll conversion status
			convert.GET("/:conversion_id", convertHandler.Status)
		}

		templates := api.Group("/templates")
		{
			// GET /api/templates - List templates, optionally by diagram type
			templates.GET("", templateHandler.List)

			// GET /api/templates/:template_id - Get a single template
			templates.GET("/:template_id", templateHandler.Get)
		}

		// POST /api/render - Render TikZ code to an output format
		api.POST("/render", renderHandler.Render)

		export := api.Group("/export")
		{
			// POST /api/export/pdf - Export a completed conversion as PDF
			export.POST("/pdf", exportHandler.ExportPDF)

			// GET /api/export/download/:filename - Download an exported PDF
			export.GET("/download/:filename", exportHandler.Download)
		}

		solver := api.Group("/solver")
		{
			// POST /api/solver/upload-problem - Upload a problem image and run OCR
			solver.POST("/upload-problem", solverHandler.UploadProblem)

			// POST /api/solver/solve - Solve a problem from text or image
			solver.POST("/solve", solverHandler.Solve)

			// GET /api/solver/solution/:solution_id - Get a stored solution
			solver.GET("/solution/:solution_id", solverHandler.GetSolution)
		}
	}

	// Rendered previews and exports are served as static files
	r.Static("/api/outputs", deps.OutputDir)

	return r
}
