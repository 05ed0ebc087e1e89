package tether

import "context"

// Feed produces raw payloads from a live external source. Implementations
// must emit the current value immediately upon Open() being called so a
// freshly activated resource can reach readiness without waiting for the
// source to change.
type Feed interface {
	// Open begins observing the source and returns a channel that emits
	// raw bytes when the source changes. The channel is closed when the
	// context is canceled or an unrecoverable error occurs.
	Open(ctx context.Context) (<-chan []byte, error)
}
