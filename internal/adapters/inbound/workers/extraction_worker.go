package workers

import (
	"context"
	"sync"

	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/sirupsen/logrus"
)

// ExtractionWorker is a runnable that drains the extraction pool with a fixed
// number of goroutines.
type ExtractionWorker struct {
	Logger  *logrus.Logger           `resolve:""`
	Pool    *usecases.ExtractionPool `resolve:""`
	Workers int                      `config:"EXTRACTION_WORKERS" default:"2"`
}

// Run starts the workers and blocks until ctx is cancelled.
func (w ExtractionWorker) Run(ctx context.Context) error {
	workers := w.Workers
	if workers <= 0 {
		workers = 1
	}
	w.Logger.WithField("workers", workers).Info("ExtractionWorker: running...")

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Pool.Work(ctx)
		}()
	}
	wg.Wait()

	w.Logger.Info("ExtractionWorker: stopped")
	return nil
}
