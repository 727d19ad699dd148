package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
)

type extractionResult struct {
	vector domain.EmbeddingVector
	err    error
}

type extractionJob struct {
	ctx      context.Context
	clipPath string
	// result is buffered so a worker never blocks on an abandoned job.
	result chan extractionResult
}

// ExtractionPool queues extractions so they run on a fixed set of workers
// instead of the goroutine serving the request.
type ExtractionPool struct {
	extractor EmbeddingExtractor
	jobs      chan extractionJob
	timeout   time.Duration
}

// NewExtractionPool creates a pool with room for queueSize pending jobs.
// A non-positive timeout leaves the deadline to the caller's context.
func NewExtractionPool(extractor EmbeddingExtractor, queueSize int, timeout time.Duration) *ExtractionPool {
	if queueSize < 0 {
		queueSize = 0
	}
	return &ExtractionPool{
		extractor: extractor,
		jobs:      make(chan extractionJob, queueSize),
		timeout:   timeout,
	}
}

// Extract enqueues the clip and waits for a worker to process it. When ctx
// ends first the result is abandoned and ctx.Err() is returned.
func (p *ExtractionPool) Extract(ctx context.Context, clipPath string) (domain.EmbeddingVector, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	job := extractionJob{
		ctx:      ctx,
		clipPath: clipPath,
		result:   make(chan extractionResult, 1),
	}

	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return domain.EmbeddingVector{}, ctx.Err()
	}

	select {
	case res := <-job.result:
		return res.vector, res.err
	case <-ctx.Done():
		return domain.EmbeddingVector{}, ctx.Err()
	}
}

// Work processes queued jobs until ctx is cancelled. It is meant to be run by
// several goroutines at once.
func (p *ExtractionPool) Work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			if err := job.ctx.Err(); err != nil {
				job.result <- extractionResult{err: err}
				continue
			}
			vec, err := p.extractor.Extract(job.ctx, job.clipPath)
			job.result <- extractionResult{vector: vec, err: err}
		}
	}
}

// Pending returns the number of queued jobs not yet picked up by a worker.
func (p *ExtractionPool) Pending() int {
	return len(p.jobs)
}
