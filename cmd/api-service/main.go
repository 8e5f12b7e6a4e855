package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tikzlab/sketch2tikz/internal/api/handler"
	"github.com/tikzlab/sketch2tikz/internal/api/router"
	"github.com/tikzlab/sketch2tikz/internal/config"
	"github.com/tikzlab/sketch2tikz/internal/convert"
	"github.com/tikzlab/sketch2tikz/internal/export"
	"github.com/tikzlab/sketch2tikz/internal/inference"
	"github.com/tikzlab/sketch2tikz/internal/render"
	"github.com/tikzlab/sketch2tikz/internal/solver"
	"github.com/tikzlab/sketch2tikz/internal/template"
	"github.com/tikzlab/sketch2tikz/internal/upload"
	"github.com/tikzlab/sketch2tikz/shared/database"
	"github.com/tikzlab/sketch2tikz/shared/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	// Parse command-line flags
	defaultConfigPath := os.Getenv("SKETCH2TIKZ_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	appLogger, err := initLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger.Info("Starting API service",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	// Initialize database client for the upload index
	dbClient, err := initDatabase(&cfg.Database, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	appLogger.Info("Database connection established",
		slog.String("driver", cfg.Database.Driver),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage-backed services
	uploads, err := upload.NewStore(ctx, dbClient, appLogger.Logger, cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}

	templates, err := template.NewStore(cfg.Storage.TemplateDir, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize template store: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Storage.OutputDir, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	exporter, err := export.NewBuilder(cfg.Storage.OutputDir, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize PDF builder: %w", err)
	}

	// Select the conversion strategy
	strategy, vision, err := initInference(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize inference: %w", err)
	}

	appLogger.Info("Inference strategy ready",
		slog.String("provider", cfg.Inference.Provider),
	)

	// Start the conversion worker pool
	registry := convert.NewRegistry()
	conversionWorker := convert.NewWorker(&convert.Config{
		Logger:        appLogger.Logger,
		Registry:      registry,
		Strategy:      strategy,
		Images:        uploads,
		Templates:     templates,
		Previews:      renderer,
		Concurrency:   cfg.Worker.Concurrency,
		QueueSize:     cfg.Worker.QueueSize,
		JobTimeout:    cfg.Worker.JobTimeout,
		SweepInterval: cfg.Worker.SweepInterval,
	})
	conversionWorker.Start(ctx)

	// Initialize router
	r := initRouter(cfg.App.Environment, &handler.Dependencies{
		Logger:     appLogger.Logger,
		AppName:    cfg.App.Name,
		AppVersion: cfg.App.Version,
		OutputDir:  cfg.Storage.OutputDir,
		Uploads:    uploads,
		Registry:   registry,
		Worker:     conversionWorker,
		Templates:  templates,
		Renderer:   renderer,
		Exporter:   exporter,
		Solver:     solver.NewSolver(appLogger.Logger),
		OCR:        solver.NewOCR(vision, appLogger.Logger),
		Solutions:  solver.NewStore(),
	})

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Info("Starting HTTP server",
		slog.String("address", addr),
		slog.Duration("read_timeout", cfg.Server.ReadTimeout),
		slog.Duration("write_timeout", cfg.Server.WriteTimeout),
	)

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start",
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}()

	appLogger.Info("API service is running",
		slog.String("address", addr),
	)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown",
			slog.Any("error", err),
		)
	}

	// Stop accepting conversions and drain the pool
	cancel()

	done := make(chan struct{})
	go func() {
		conversionWorker.Stop()
		close(done)
	}()

	select {
	case <-done:
		appLogger.Info("Conversion worker stopped gracefully")
	case <-time.After(cfg.Worker.ShutdownTimeout):
		appLogger.Warn("Worker shutdown timeout exceeded, forcing exit")
	}

	if err := dbClient.Close(); err != nil {
		appLogger.Warn("Failed to close database",
			slog.Any("error", err),
		)
	}

	appLogger.Info("Server shutdown complete")
	return nil
}

// initLogger initializes and configures the application logger
func initLogger(cfg *config.LoggingConfig) (*logger.Logger, error) {
	loggerCfg := &logger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       cfg.Output,
		EnableSource: cfg.EnableCaller,
		TimeFormat:   time.RFC3339,
	}

	return logger.New(loggerCfg)
}

// initDatabase initializes the database client backing the upload index
func initDatabase(cfg *config.DatabaseConfig, logger *slog.Logger) (*database.Client, error) {
	dbConfig := &database.Config{
		Driver:          cfg.Driver,
		Path:            cfg.Path,
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		Database:        cfg.Database,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}

	return database.NewClient(dbConfig, logger)
}

// initInference selects the conversion strategy for the configured provider.
// The OpenAI strategy doubles as the vision reader for problem OCR; the mock
// provider leaves OCR on its stub text.
func initInference(cfg *config.Config) (inference.Strategy, solver.VisionReader, error) {
	switch cfg.Inference.Provider {
	case config.ProviderOpenAI:
		ai, err := inference.NewOpenAI(cfg.Inference.ResolvedAPIKey(), cfg.Inference.Model, cfg.Inference.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return ai, ai, nil
	default:
		return inference.NewMock(cfg.Worker.SimulateDelay), nil, nil
	}
}

// initRouter initializes the Gin router with all routes and middleware
func initRouter(environment string, deps *handler.Dependencies) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Setup router
	return router.SetupRouter(deps)
}
