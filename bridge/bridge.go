// Package bridge turns one pending store callback into a bounded synchronous result.
//
// The store never lets a listener be cancelled, so a call that times out leaves
// its listener registered: when it finally fires, the value is dropped.
package bridge

import (
	"context"
	"log/slog"
	"lost-found/errors"
	"sync"
	"time"
)

const (
	DefaultDeadline   = 5 * time.Second
	MultiStepDeadline = 10 * time.Second
)

// Op names one awaited call, for logs, and bounds it.
type Op struct {
	Name     string
	Deadline time.Duration
	Log      *slog.Logger
}

// Resolver is handed to the listener registration.
// Only the first Resolve or Reject counts.
type Resolver[T any] interface {
	Resolve(value T)
	Reject(err error)
}

type outcome[T any] struct {
	value T
	err   error
}

type resolver[T any] struct {
	mu       sync.Mutex
	settled  bool
	abandon  bool
	op       Op
	outcomes chan outcome[T]
}

func (r *resolver[T]) Resolve(value T) {
	r.settle(outcome[T]{value: value}, "value")
}

func (r *resolver[T]) Reject(err error) {
	r.settle(outcome[T]{err: errors.NewRemoteError(err)}, "failure")
}

func (r *resolver[T]) settle(o outcome[T], kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settled {
		if r.abandon && r.op.Log != nil {
			r.op.Log.Debug("Late store callback discarded", "op", r.op.Name, "kind", kind)
		}
		return
	}
	r.settled = true
	// buffered with room for one, never blocks
	r.outcomes <- o
}

// giveUp marks the resolver as settled so any later callback is dropped.
// It reports false when an outcome slipped in first.
func (r *resolver[T]) giveUp() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settled {
		return false
	}
	r.settled = true
	r.abandon = true
	return true
}

// Await calls register exactly once and blocks until the listener resolves,
// op.Deadline elapses (errors.ErrTimeout) or ctx is done.
// A rejection comes back as *errors.RemoteError.
func Await[T any](ctx context.Context, op Op, register func(Resolver[T])) (T, error) {
	var zero T
	if op.Deadline <= 0 {
		op.Deadline = DefaultDeadline
	}
	r := &resolver[T]{op: op, outcomes: make(chan outcome[T], 1)}
	register(r)

	timer := time.NewTimer(op.Deadline)
	defer timer.Stop()

	select {
	case o := <-r.outcomes:
		return o.value, o.err
	case <-timer.C:
		if !r.giveUp() {
			o := <-r.outcomes
			return o.value, o.err
		}
		if op.Log != nil {
			op.Log.Warn("Store call timed out", "op", op.Name, "deadline", op.Deadline)
		}
		return zero, errors.ErrTimeout
	case <-ctx.Done():
		if !r.giveUp() {
			o := <-r.outcomes
			return o.value, o.err
		}
		return zero, ctx.Err()
	}
}
