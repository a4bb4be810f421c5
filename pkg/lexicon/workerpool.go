package lexicon

import (
	"context"
	"errors"
	"sync"
)

// Job is a unit of work submitted to the pool.
type Job func(ctx context.Context) error

// ErrPoolClosed is returned when a Submit races with Close.
var ErrPoolClosed = errors.New("worker pool closed")

// workerPool runs jobs on a fixed number of goroutines. It parallelizes
// the CPU-bound half of the import (entry normalization) while a single
// committer serializes the SQLite writes.
type workerPool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int

	mu     sync.Mutex
	closed bool
}

func newWorkerPool(workers, queue int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &workerPool{
		jobs:    make(chan Job, queue),
		workers: workers,
	}
}

// Start launches the workers. They drain jobs until the pool is closed
// or ctx is canceled.
func (p *workerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					_ = job(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a job, returning promptly when ctx is canceled.
func (p *workerPool) Submit(ctx context.Context, job Job) error {
	// Hold the lock across the send so Close cannot close the channel
	// underneath us.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs and waits for in-flight ones to finish.
func (p *workerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
