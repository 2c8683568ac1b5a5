// Package mailbox hands jobs from triggers to the single worker.
package mailbox

import (
	"context"
	"sync"
)

// Mailbox is a single-slot buffer where the latest job always wins.
// It is NOT a queue: a trigger that fires while a pass is pending replaces
// the pending job, so passes never pile up behind a slow one.
type Mailbox[T any] struct {
	mu    sync.Mutex
	job   *T
	ready chan struct{}
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{ready: make(chan struct{}, 1)}
}

// Put stores a job, replacing any pending one. It never blocks.
func (m *Mailbox[T]) Put(j T) {
	m.mu.Lock()
	m.job = &j
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Take blocks until a job is available or ctx is done. ok is false when
// ctx ended the wait.
func (m *Mailbox[T]) Take(ctx context.Context) (job T, ok bool) {
	for {
		if j := m.TryTake(); j != nil {
			return *j, true
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, false
		case <-m.ready:
		}
	}
}

// TryTake returns the pending job, or nil. It never blocks.
func (m *Mailbox[T]) TryTake() *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	j := m.job
	m.job = nil
	return j
}

// HasJob reports whether a job is waiting.
func (m *Mailbox[T]) HasJob() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.job != nil
}
