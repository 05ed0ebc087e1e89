package tether

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
)

// Emitter is a minimal typed publish/subscribe channel. Handlers run
// synchronously on the emitting goroutine, in registration order. A handler
// removed mid-emission before its turn does not receive that emission, and
// a panicking handler never prevents the remaining handlers from running.
type Emitter[T any] struct {
	mu       sync.Mutex
	handlers []*Subscription[T]
}

// Subscription is a handle for one registered handler.
type Subscription[T any] struct {
	emitter *Emitter[T]
	fn      func(T)
	removed bool // guarded by emitter.mu
}

// On registers a handler and returns its subscription handle.
func (e *Emitter[T]) On(fn func(T)) *Subscription[T] {
	s := &Subscription[T]{emitter: e, fn: fn}
	e.mu.Lock()
	e.handlers = append(e.handlers, s)
	e.mu.Unlock()
	return s
}

// Off removes the handler. Safe to call more than once, and safe to call
// from inside a handler while an emission is in progress.
func (s *Subscription[T]) Off() {
	e := s.emitter
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.removed {
		return
	}
	s.removed = true
	for i, h := range e.handlers {
		if h == s {
			e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
			break
		}
	}
}

// Emit invokes all currently registered handlers with v. Handlers added
// during the emission do not receive it.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := make([]*Subscription[T], len(e.handlers))
	copy(snapshot, e.handlers)
	e.mu.Unlock()

	for _, s := range snapshot {
		e.mu.Lock()
		removed := s.removed
		e.mu.Unlock()
		if removed {
			continue
		}
		dispatch(s.fn, v)
	}
}

// dispatch isolates one handler invocation so a panic cannot break the
// emission loop. Panics are surfaced via the ObserverPanicked signal.
func dispatch[T any](fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			capitan.Emit(context.Background(), ObserverPanicked,
				KeyError.Field(fmt.Sprint(r)),
			)
		}
	}()
	fn(v)
}
