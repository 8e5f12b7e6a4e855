package convert

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry tracks conversion jobs in memory. Jobs live for the lifetime of the
// process; restarts clear the registry. Reads return snapshot copies, so only
// the registry itself ever mutates a stored job.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewRegistry creates an empty job registry
func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[string]*Job),
	}
}

// Create registers a new job in processing status and returns a snapshot of it
func (r *Registry) Create(imageID, imagePath, category, description, templateID string) Job {
	now := time.Now().UTC()
	job := &Job{
		ID:          uuid.NewString(),
		ImageID:     imageID,
		ImagePath:   imagePath,
		Category:    category,
		Description: description,
		TemplateID:  templateID,
		Status:      StatusProcessing,
		CreatedAt:   now,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	return *job
}

// Get returns a snapshot of the job with the given id
func (r *Registry) Get(jobID string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *job, nil
}

// Remove deletes a job from the registry. Used to roll back a submission
// whose enqueue failed; the job was never visible to a worker.
func (r *Registry) Remove(jobID string) {
	r.mu.Lock()
	delete(r.jobs, jobID)
	r.mu.Unlock()
}

// Claim marks the job as picked up by a worker and returns a snapshot.
// Returns ErrJobTerminal when the job finished before a worker reached it,
// for example after the watchdog expired it while queued.
func (r *Registry) Claim(jobID string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	if job.Status.Terminal() {
		return Job{}, ErrJobTerminal
	}

	job.Status = StatusProcessing
	job.StartedAt = time.Now().UTC()

	return *job, nil
}

// Complete transitions the job to completed with its generated code and preview
func (r *Registry) Complete(jobID, tikzCode, previewURL string) error {
	return r.finish(jobID, func(job *Job) {
		job.Status = StatusCompleted
		job.TikZCode = tikzCode
		job.PreviewURL = previewURL
	})
}

// Fail transitions the job to failed with the worker-reported message
func (r *Registry) Fail(jobID, message string) error {
	return r.finish(jobID, func(job *Job) {
		job.Status = StatusFailed
		job.ErrorMessage = message
	})
}

// Expire transitions the job to the timeout status
func (r *Registry) Expire(jobID, message string) error {
	return r.finish(jobID, func(job *Job) {
		job.Status = StatusTimeout
		job.ErrorMessage = message
	})
}

// finish applies a terminal transition exactly once
func (r *Registry) finish(jobID string, apply func(job *Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	if job.Status.Terminal() {
		return ErrJobTerminal
	}

	apply(job)
	job.CompletedAt = time.Now().UTC()

	return nil
}

// ExpireStale expires every non-terminal job older than maxAge and returns the
// expired job ids. Age is measured from creation so queued jobs are bounded too.
func (r *Registry) ExpireStale(maxAge time.Duration) []string {
	cutoff := time.Now().UTC().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []string
	for id, job := range r.jobs {
		if job.Status.Terminal() {
			continue
		}
		if job.CreatedAt.After(cutoff) {
			continue
		}

		job.Status = StatusTimeout
		job.ErrorMessage = fmt.Sprintf("conversion timed out after %s", maxAge)
		job.CompletedAt = time.Now().UTC()
		expired = append(expired, id)
	}

	return expired
}

// Len returns the number of tracked jobs
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
