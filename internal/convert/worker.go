package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tikzlab/sketch2tikz/internal/inference"
)

// ImageResolver resolves an uploaded image id to its stored file path
type ImageResolver interface {
	ResolvePath(ctx context.Context, imageID string) (path string, found bool, err error)
}

// TemplateSource resolves a template id to its example code
type TemplateSource interface {
	Code(templateID string) (string, bool)
}

// PreviewRenderer produces a viewable preview for generated code and returns its public URL
type PreviewRenderer interface {
	RenderPreview(tikzCode string) (string, error)
}

// SubmitRequest carries the inputs of a conversion submission
type SubmitRequest struct {
	ImageID     string
	Category    string
	Description string
	TemplateID  string
}

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	Registry      *Registry
	Strategy      inference.Strategy
	Images        ImageResolver
	Templates     TemplateSource
	Previews      PreviewRenderer
	Concurrency   int
	QueueSize     int
	JobTimeout    time.Duration
	SweepInterval time.Duration
}

// Worker runs the conversion pool: submissions are queued on a buffered
// channel and picked up by N goroutines that drive jobs to a terminal status.
// A watchdog expires jobs that outlive the job timeout, so pollers always
// reach a terminal state.
type Worker struct {
	logger        *slog.Logger
	registry      *Registry
	strategy      inference.Strategy
	images        ImageResolver
	templates     TemplateSource
	previews      PreviewRenderer
	concurrency   int
	jobTimeout    time.Duration
	sweepInterval time.Duration

	jobsChan chan string
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		registry:      cfg.Registry,
		strategy:      cfg.Strategy,
		images:        cfg.Images,
		templates:     cfg.Templates,
		previews:      cfg.Previews,
		concurrency:   cfg.Concurrency,
		jobTimeout:    cfg.JobTimeout,
		sweepInterval: cfg.SweepInterval,
		jobsChan:      make(chan string, cfg.QueueSize),
		stopChan:      make(chan struct{}),
	}
}

// Submit validates the request, registers a job and queues it for conversion.
// It returns immediately; the job is driven to a terminal status in the background.
func (w *Worker) Submit(ctx context.Context, req SubmitRequest) (*Job, error) {
	if !ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, req.Category)
	}

	path, found, err := w.images.ResolvePath(ctx, req.ImageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image %q: %w", req.ImageID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImage, req.ImageID)
	}

	job := w.registry.Create(req.ImageID, path, req.Category, req.Description, req.TemplateID)

	select {
	case w.jobsChan <- job.ID:
	default:
		w.registry.Remove(job.ID)
		return nil, ErrQueueFull
	}

	w.logger.Info("Conversion job submitted",
		slog.String("job_id", job.ID),
		slog.String("image_id", job.ImageID),
		slog.String("category", job.Category),
	)

	return &job, nil
}

// Start spawns the worker pool and the timeout watchdog
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.Duration("job_timeout", w.jobTimeout),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}

	w.wg.Add(1)
	go w.watchdogLoop(ctx)

	w.logger.Info("Worker pool spawned successfully",
		slog.Int("worker_count", w.concurrency),
	)
}

// Stop gracefully stops the worker pool
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker pool...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Worker pool stopped")
}

// workerLoop is the main processing loop for each worker goroutine
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("converter-%d", workerNum)
	w.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case jobID, ok := <-w.jobsChan:
			if !ok {
				w.logger.Info("Worker goroutine stopping - jobsChan closed",
					slog.String("worker_name", workerName),
				)
				return
			}

			w.logger.Info("Worker received job",
				slog.String("worker_name", workerName),
				slog.String("job_id", jobID),
			)

			if err := w.processJob(ctx, jobID); err != nil {
				w.logger.Error("Job processing failed",
					slog.String("worker_name", workerName),
					slog.String("job_id", jobID),
					slog.String("error", err.Error()),
				)
			} else {
				w.logger.Info("Job processed",
					slog.String("worker_name", workerName),
					slog.String("job_id", jobID),
				)
			}
		}
	}
}

// processJob drives a single job to a terminal status
func (w *Worker) processJob(ctx context.Context, jobID string) error {
	job, err := w.registry.Claim(jobID)
	if err != nil {
		if errors.Is(err, ErrJobTerminal) {
			// Watchdog expired the job while it sat in the queue.
			w.logger.Warn("Job finished before a worker reached it, skipping",
				slog.String("job_id", jobID),
			)
			return nil
		}
		return fmt.Errorf("failed to claim job: %w", err)
	}

	templateCode := ""
	if job.TemplateID != "" {
		code, ok := w.templates.Code(job.TemplateID)
		if !ok {
			w.logger.Warn("Requested template not found, using category snippet",
				slog.String("job_id", jobID),
				slog.String("template_id", job.TemplateID),
			)
		}
		templateCode = code
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	tikzCode, err := w.strategy.Infer(jobCtx, inference.Request{
		ImagePath:    job.ImagePath,
		Category:     job.Category,
		Description:  job.Description,
		TemplateCode: templateCode,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			if expireErr := w.registry.Expire(jobID, fmt.Sprintf("conversion timed out after %s", w.jobTimeout)); expireErr != nil && !errors.Is(expireErr, ErrJobTerminal) {
				w.logger.Error("Failed to expire job",
					slog.String("job_id", jobID),
					slog.String("error", expireErr.Error()),
				)
			}
			return fmt.Errorf("conversion timed out: %w", err)
		}

		if failErr := w.registry.Fail(jobID, err.Error()); failErr != nil && !errors.Is(failErr, ErrJobTerminal) {
			w.logger.Error("Failed to mark job as failed",
				slog.String("job_id", jobID),
				slog.String("error", failErr.Error()),
			)
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	// Preview rendering is best effort; completion proceeds without one.
	previewURL := ""
	if w.previews != nil {
		url, perr := w.previews.RenderPreview(tikzCode)
		if perr != nil {
			w.logger.Warn("Preview rendering failed",
				slog.String("job_id", jobID),
				slog.String("error", perr.Error()),
			)
		} else {
			previewURL = url
		}
	}

	if err := w.registry.Complete(jobID, tikzCode, previewURL); err != nil {
		if errors.Is(err, ErrJobTerminal) {
			w.logger.Warn("Job expired before completion could be recorded",
				slog.String("job_id", jobID),
			)
			return nil
		}
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return nil
}

// watchdogLoop periodically expires jobs stuck beyond the job timeout
func (w *Worker) watchdogLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	w.logger.Info("Job timeout watchdog started",
		slog.Duration("sweep_interval", w.sweepInterval),
		slog.Duration("job_timeout", w.jobTimeout),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Job timeout watchdog stopping")
			return

		case <-ctx.Done():
			w.logger.Info("Job timeout watchdog stopping - context canceled")
			return

		case <-ticker.C:
			expired := w.registry.ExpireStale(w.jobTimeout)
			if len(expired) > 0 {
				w.logger.Warn("Expired stale conversion jobs",
					slog.Int("count", len(expired)),
					slog.Any("job_ids", expired),
				)
			}
		}
	}
}
