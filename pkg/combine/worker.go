// File: pkg/combine/worker.go
package combine

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Result carries the outcome of a job run on a Runner.
type Result[T any] struct {
	Value T
	Err   error
}

// Runner executes scan and export jobs on a single background goroutine, one at a
// time and in submission order.
type Runner struct {
	jobs   chan func()
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewRunner starts the worker goroutine. queueSize bounds how many jobs may wait
// before Submit blocks; values below one are raised to one.
func NewRunner(logger *zap.Logger, queueSize int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize < 1 {
		queueSize = 1
	}

	r := &Runner{
		jobs:   make(chan func(), queueSize),
		logger: logger,
	}
	r.wg.Add(1)
	go r.worker()
	return r
}

func (r *Runner) worker() {
	defer r.wg.Done()
	r.logger.Debug("Worker started")
	for job := range r.jobs {
		job()
	}
	r.logger.Debug("Worker finished processing")
}

// Go submits fn to r and returns a channel that receives exactly one Result.
// A job whose context is already done when it reaches the worker is not run.
func Go[T any](r *Runner, ctx context.Context, name string, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	job := func() {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("Dropping cancelled job", zap.String("job", name), zap.Error(err))
			out <- Result[T]{Err: err}
			return
		}
		r.logger.Debug("Worker received job", zap.String("job", name))
		v, err := fn(ctx)
		out <- Result[T]{Value: v, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		out <- Result[T]{Err: ErrRunnerClosed}
		return out
	}
	r.jobs <- job
	return out
}

// Scan queues ScanExtensions.
func (r *Runner) Scan(ctx context.Context, root string, opts Options) <-chan Result[[]string] {
	return Go(r, ctx, "scan", func(ctx context.Context) ([]string, error) {
		return ScanExtensions(ctx, root, opts)
	})
}

// Export queues fn, typically a closure over one of the Export functions.
func (r *Runner) Export(ctx context.Context, fn func(context.Context) (Summary, error)) <-chan Result[Summary] {
	return Go(r, ctx, "export", fn)
}

// Close stops accepting jobs and waits for queued jobs to finish.
func (r *Runner) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.jobs)
	}
	r.mu.Unlock()
	r.wg.Wait()
}
