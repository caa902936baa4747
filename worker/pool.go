package worker

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrStopped is returned when enqueuing a job on a pool that has been stopped
var ErrStopped = errors.New("pool stopped")

// Pool provides a set of workers for executing functions
type Pool struct {
	jobs       chan func() error
	completion chan struct{}
	workers    int

	mu      sync.Mutex
	started bool
	stopped bool
	errs    []error
}

// NewPool creates a pool with the specified number of workers.
// A pool with no workers runs each job synchronously inside Enqueue.
// The pool will not begin accepting jobs until Start() is called.
func NewPool(workers int) *Pool {
	return &Pool{
		workers: workers,
	}
}

// Start initializes the Pool to begin accepting and running jobs.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.jobs = make(chan func() error)
	p.completion = make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for w := 1; w <= p.workers; w++ {
		go func() {
			defer wg.Done()
			p.worker()
		}()
	}

	go func() {
		wg.Wait()
		close(p.completion)
	}()
}

// Enqueue adds a job to the pool, blocking until a worker is free to take it.
func (p *Pool) Enqueue(job func() error) error {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return ErrStopped
	}
	p.mu.Unlock()

	if p.workers <= 0 {
		p.run(job)
		return nil
	}
	p.jobs <- job
	return nil
}

// Stop prevents this pool from accepting new jobs.
// Jobs already enqueued will still be run. Stop must not be called while
// another goroutine is blocked in Enqueue.
func (p *Pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.stopped {
		return
	}
	p.stopped = true
	close(p.jobs)
}

// Complete returns a channel that will be closed when all workers have finished
func (p *Pool) Complete() <-chan struct{} {
	return p.completion
}

// Errors returns the errors returned by jobs run so far
func (p *Pool) Errors() []error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]error(nil), p.errs...)
}

func (p *Pool) worker() {
	for j := range p.jobs {
		p.run(j)
	}
}

func (p *Pool) run(job func() error) {
	if err := job(); err != nil {
		p.mu.Lock()
		p.errs = append(p.errs, err)
		p.mu.Unlock()
	}
}
