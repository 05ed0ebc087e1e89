package tether

import "sync"

// closedGate is returned for waits whose predicate already holds.
var closedGate = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// gate tracks outstanding "wait until the predicate becomes true" requests
// for one predicate. All waiters registered before an open() share one
// channel and are resolved together; waiters registered during or after an
// open() pass get a fresh channel and wait for the next transition.
type gate struct {
	mu sync.Mutex
	ch chan struct{}
}

// wait returns a channel that is closed once the predicate becomes true.
// If satisfied reports true now, the returned channel is already closed.
// The predicate check and the registration happen under the gate lock, so
// a transition that commits after the check cannot slip past the waiter:
// its open() call is serialized behind the registration.
func (g *gate) wait(satisfied func() bool) <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	if satisfied() {
		return closedGate
	}
	if g.ch == nil {
		g.ch = make(chan struct{})
	}
	return g.ch
}

// open resolves every pending waiter exactly once and clears the store.
// A no-op when nothing is pending.
func (g *gate) open() {
	g.mu.Lock()
	ch := g.ch
	g.ch = nil
	g.mu.Unlock()
	if ch != nil {
		close(ch)
	}
}
