// Package tick provides the single-threaded batch executor that stands in
// for the host simulation's "run this at the next tick" scheduling point.
// Each submitted batch runs to completion, exactly once, before the next
// batch starts — the only concurrency guarantee the planner relies on.
package tick

import (
	"fmt"
	"sync"
)

// Handle lets the submitter wait for its batch's outcome.
type Handle struct {
	err  error
	done chan struct{}
}

// Wait blocks until the batch has run and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

type batch struct {
	fn     func() error
	handle *Handle
}

// Executor drains submitted batches on one goroutine. There is no
// cancellation and no timeout: once scheduled, a batch runs.
type Executor struct {
	batches chan batch
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewExecutor starts an executor. Close it when done.
func NewExecutor() *Executor {
	e := &Executor{batches: make(chan batch, 16)}
	e.wg.Add(1)
	go e.run()
	return e
}

func (e *Executor) run() {
	defer e.wg.Done()
	for b := range e.batches {
		b.handle.err = runBatch(b.fn)
		close(b.handle.done)
	}
}

// runBatch executes one batch, converting a panic into an error. Mutations
// the batch already applied stay applied; there is no rollback.
func runBatch(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick batch panicked: %v", r)
		}
	}()
	return fn()
}

// Submit queues a batch for the next tick and returns its handle.
// Submitting to a closed executor returns a handle that fails immediately.
func (e *Executor) Submit(fn func() error) *Handle {
	h := &Handle{done: make(chan struct{})}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		h.err = fmt.Errorf("tick executor closed")
		close(h.done)
		return h
	}
	e.batches <- batch{fn: fn, handle: h}
	e.mu.Unlock()
	return h
}

// Close drains pending batches and stops the executor.
func (e *Executor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.batches)
	e.mu.Unlock()
	e.wg.Wait()
}
