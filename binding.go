package tether

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// binding owns the feed lifecycle for one feed-bound resource: the feed is
// opened on activation, closed on deactivation, and the loading counter is
// held above zero until the first payload has been applied.
type binding struct {
	feed     Feed
	apply    func([]byte)
	resource *Resource

	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeedResource builds a Resource driven by a Feed. Activation opens the
// feed and marks the resource not ready; the first applied payload restores
// readiness. Deactivation closes the feed and waits for the delivery
// goroutine to drain, so a reactivation never races a previous cycle.
//
// The apply callback runs on the feed delivery goroutine.
func NewFeedResource(feed Feed, apply func([]byte), opts ...Option) *Resource {
	b := &binding{feed: feed, apply: apply}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithActivate(b.start), WithDeactivate(b.stop))
	all = append(all, opts...)
	r := New(all...)
	b.resource = r
	return r
}

func (b *binding) start() error {
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.feed.Open(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("open feed: %w", err)
	}
	b.cancel = cancel
	b.done = make(chan struct{})

	capitan.Emit(ctx, FeedOpened,
		KeyResource.Field(b.resource.Name()),
	)

	// Not ready until the first payload lands. A positive delta cannot
	// underflow, so the error is impossible here.
	_ = b.resource.AddLoading(1) //nolint:errcheck

	go b.pump(ctx, ch)
	return nil
}

func (b *binding) pump(ctx context.Context, ch <-chan []byte) {
	defer close(b.done)

	settled := false
	for payload := range ch {
		b.apply(payload)
		capitan.Emit(ctx, FeedPayload,
			KeyResource.Field(b.resource.Name()),
			KeyPayloadSize.Field(len(payload)),
		)
		if !settled {
			settled = true
			_ = b.resource.AddLoading(-1) //nolint:errcheck // balanced with start
		}
	}

	// The feed closed before delivering anything; settle the counter so
	// readiness waiters are not stranded.
	if !settled {
		_ = b.resource.AddLoading(-1) //nolint:errcheck // balanced with start
	}
}

func (b *binding) stop() error {
	// The feed may never have opened: when activation fails the grasp is
	// still counted, so the balancing release lands here with nothing to
	// tear down.
	if b.cancel == nil {
		return nil
	}
	b.cancel()
	<-b.done
	b.cancel = nil

	capitan.Emit(context.Background(), FeedClosed,
		KeyResource.Field(b.resource.Name()),
	)
	return nil
}
