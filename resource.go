package tether

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
)

// Resource is a reference-counted wrapper around an external live data
// source. The activate hook runs exactly once when the consumer count goes
// 0 to 1, the deactivate hook exactly once when it returns to 0. A loading
// counter tracks asynchronous work started by activation; the resource is
// ready while the counter is zero.
//
// State flips and counter updates are committed before any notification
// fires, and hooks run after the notifications, so an observer (or the hook
// itself) always sees the already-updated counters. Hooks may call Grasp,
// Release, and AddLoading on this or other resources synchronously.
type Resource struct {
	name       string
	activate   func() error
	deactivate func() error

	mu        sync.Mutex
	consumers int
	loading   int

	consumersEvents Emitter[int]
	activeEvents    Emitter[bool]
	readyEvents     Emitter[bool]
	becameActive    Emitter[struct{}]
	becameInactive  Emitter[struct{}]
	becameReady     Emitter[struct{}]
	becameNotReady  Emitter[struct{}]

	activeGate gate
	readyGate  gate
}

// config holds configuration options for a Resource.
type config struct {
	name       string
	activate   func() error
	deactivate func() error
}

// Option configures a Resource.
type Option func(*config)

// WithName sets the resource name used in observability signals.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithActivate sets the hook invoked when the first consumer appears.
// A returned error propagates to the Grasp call that triggered activation;
// the consumer count and emitted notifications stand regardless.
func WithActivate(fn func() error) Option {
	return func(c *config) {
		c.activate = fn
	}
}

// WithDeactivate sets the hook invoked when the last consumer leaves.
// A returned error propagates to the Release call that triggered
// deactivation.
func WithDeactivate(fn func() error) Option {
	return func(c *config) {
		c.deactivate = fn
	}
}

// New creates an inactive, ready Resource.
func New(opts ...Option) *Resource {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Resource{
		name:       cfg.name,
		activate:   cfg.activate,
		deactivate: cfg.deactivate,
	}
}

// Name returns the configured resource name.
func (r *Resource) Name() string {
	return r.name
}

// Consumers returns the count of outstanding grasps.
func (r *Resource) Consumers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.consumers
}

// Active reports whether the resource has at least one consumer.
func (r *Resource) Active() bool {
	return r.Consumers() > 0
}

// Loading returns the count of outstanding asynchronous operations.
func (r *Resource) Loading() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Ready reports whether the loading counter is at zero.
func (r *Resource) Ready() bool {
	return r.Loading() == 0
}

// Grasp acquires one unit of consumer reference. On the inactive-to-active
// transition it emits the consumer and activation events, resolves pending
// EnsureActive waits, then runs the activate hook exactly once. The hook's
// error is returned; the acquired reference is kept either way.
func (r *Resource) Grasp() error {
	r.mu.Lock()
	r.consumers++
	count := r.consumers
	r.mu.Unlock()

	activated := count == 1

	capitan.Emit(context.Background(), ResourceGrasped,
		KeyResource.Field(r.name),
		KeyConsumers.Field(count),
	)
	r.consumersEvents.Emit(count)

	if !activated {
		return nil
	}

	capitan.Emit(context.Background(), ResourceActivated,
		KeyResource.Field(r.name),
	)
	r.activeEvents.Emit(true)
	r.becameActive.Emit(struct{}{})
	r.activeGate.open()

	if r.activate != nil {
		if err := r.activate(); err != nil {
			capitan.Emit(context.Background(), HookFailed,
				KeyResource.Field(r.name),
				KeyError.Field(err.Error()),
			)
			return fmt.Errorf("activate hook: %w", err)
		}
	}
	return nil
}

// Release drops one unit of consumer reference. Fails with
// ImbalancedReleaseError when no grasp is outstanding, leaving state
// unchanged. On the active-to-inactive transition it emits the consumer
// and deactivation events, then runs the deactivate hook exactly once.
func (r *Resource) Release() error {
	r.mu.Lock()
	if r.consumers == 0 {
		r.mu.Unlock()
		err := ImbalancedReleaseError{Resource: r.name}
		capitan.Emit(context.Background(), ReleaseImbalanced,
			KeyResource.Field(r.name),
			KeyError.Field(err.Error()),
		)
		return err
	}
	r.consumers--
	count := r.consumers
	r.mu.Unlock()

	deactivated := count == 0

	capitan.Emit(context.Background(), ResourceReleased,
		KeyResource.Field(r.name),
		KeyConsumers.Field(count),
	)
	r.consumersEvents.Emit(count)

	if !deactivated {
		return nil
	}

	capitan.Emit(context.Background(), ResourceDeactivated,
		KeyResource.Field(r.name),
	)
	r.activeEvents.Emit(false)
	r.becameInactive.Emit(struct{}{})

	if r.deactivate != nil {
		if err := r.deactivate(); err != nil {
			capitan.Emit(context.Background(), HookFailed,
				KeyResource.Field(r.name),
				KeyError.Field(err.Error()),
			)
			return fmt.Errorf("deactivate hook: %w", err)
		}
	}
	return nil
}

// AddLoading applies delta to the loading counter. Conventionally delta is
// +1 when asynchronous work starts and -1 when it settles, but any integer
// is accepted. Fails with NegativeLoadingError when the result would be
// negative, leaving state unchanged. Readiness events fire only when the
// counter crosses the zero boundary.
func (r *Resource) AddLoading(delta int) error {
	r.mu.Lock()
	prev := r.loading
	next := prev + delta
	if next < 0 {
		r.mu.Unlock()
		err := NegativeLoadingError{Resource: r.name, Loading: prev, Delta: delta}
		capitan.Emit(context.Background(), LoadingUnderflow,
			KeyResource.Field(r.name),
			KeyLoading.Field(prev),
			KeyDelta.Field(delta),
		)
		return err
	}
	r.loading = next
	r.mu.Unlock()

	capitan.Emit(context.Background(), LoadingChanged,
		KeyResource.Field(r.name),
		KeyLoading.Field(next),
		KeyDelta.Field(delta),
	)

	switch {
	case prev == 0 && next > 0:
		capitan.Emit(context.Background(), ResourceNotReady,
			KeyResource.Field(r.name),
		)
		r.readyEvents.Emit(false)
		r.becameNotReady.Emit(struct{}{})

	case prev > 0 && next == 0:
		capitan.Emit(context.Background(), ResourceReady,
			KeyResource.Field(r.name),
		)
		r.readyEvents.Emit(true)
		r.becameReady.Emit(struct{}{})
		r.readyGate.open()
	}
	return nil
}

// EnsureActive returns a channel that is closed once the resource is
// active. The channel is already closed if the resource is active now.
// There is no timeout; callers compose their own via select.
func (r *Resource) EnsureActive() <-chan struct{} {
	return r.activeGate.wait(func() bool {
		return r.Consumers() > 0
	})
}

// EnsureReady returns a channel that is closed once the loading counter is
// at zero. The channel is already closed if the resource is ready now.
func (r *Resource) EnsureReady() <-chan struct{} {
	return r.readyGate.wait(func() bool {
		return r.Loading() == 0
	})
}

// OnConsumers subscribes to consumer count changes. The handler receives
// the new count on every grasp and release.
func (r *Resource) OnConsumers(fn func(int)) *Subscription[int] {
	return r.consumersEvents.On(fn)
}

// OnActive subscribes to activation flag changes.
func (r *Resource) OnActive(fn func(bool)) *Subscription[bool] {
	return r.activeEvents.On(fn)
}

// OnReady subscribes to readiness flag changes.
func (r *Resource) OnReady(fn func(bool)) *Subscription[bool] {
	return r.readyEvents.On(fn)
}

// OnBecameActive subscribes to the inactive-to-active transition.
func (r *Resource) OnBecameActive(fn func()) *Subscription[struct{}] {
	return r.becameActive.On(func(struct{}) { fn() })
}

// OnBecameInactive subscribes to the active-to-inactive transition.
func (r *Resource) OnBecameInactive(fn func()) *Subscription[struct{}] {
	return r.becameInactive.On(func(struct{}) { fn() })
}

// OnBecameReady subscribes to the loading counter returning to zero.
func (r *Resource) OnBecameReady(fn func()) *Subscription[struct{}] {
	return r.becameReady.On(func(struct{}) { fn() })
}

// OnBecameNotReady subscribes to the loading counter leaving zero.
func (r *Resource) OnBecameNotReady(fn func()) *Subscription[struct{}] {
	return r.becameNotReady.On(func(struct{}) { fn() })
}
