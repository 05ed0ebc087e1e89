package tether

import "context"

// ChannelFeed wraps an existing byte channel as a Feed.
// Useful for testing and custom sources that already produce bytes.
type ChannelFeed struct {
	ch     <-chan []byte
	buffer int
}

// NewChannelFeed creates a ChannelFeed that forwards values from the given
// channel until the context is canceled or the source channel closes. The
// forwarded channel is unbuffered by default, so delivery is lockstep with
// the consumer.
func NewChannelFeed(ch <-chan []byte) *ChannelFeed {
	return &ChannelFeed{ch: ch}
}

// Buffer sets the capacity of the forwarded channel, decoupling a bursty
// source from a slow consumer. Returns the feed for chaining.
func (f *ChannelFeed) Buffer(n int) *ChannelFeed {
	f.buffer = n
	return f
}

// Open returns a channel that emits values from the wrapped channel.
func (f *ChannelFeed) Open(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte, f.buffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-f.ch:
				if !ok {
					return
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
