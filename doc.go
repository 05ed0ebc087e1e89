/*
Package tether provides reference-counted lifecycle management for shared
live data sources (realtime subscriptions, streaming queries, socket feeds).

A Resource wraps one external source. Any number of independent consumers
may grasp it concurrently; the activate hook runs exactly once when the
first consumer appears, and the deactivate hook runs exactly once when the
last consumer leaves, regardless of how grasps and releases interleave.

# Basic Usage

Create a resource with activation hooks:

	r := tether.New(
	    tether.WithName("prices"),
	    tether.WithActivate(func() error {
	        return subscribePrices()
	    }),
	    tether.WithDeactivate(func() error {
	        return unsubscribePrices()
	    }),
	)

Consumers acquire and release units of use:

	if err := r.Grasp(); err != nil { ... }
	defer r.Release()

# Readiness

Activation often starts asynchronous work. The resource carries a loading
counter for it; the resource is ready while the counter is zero:

	r.AddLoading(1)   // work started
	...
	r.AddLoading(-1)  // work settled

	<-r.EnsureReady() // resolves once loading returns to zero

Consume composes the whole dance - grasp, wait until ready, hand back a
release capability - and never leaks a consumer slot on cancellation:

	release, err := tether.Consume(ctx, r)
	if err != nil { ... }
	defer release()

# Feeds

A Feed adapts a concrete byte source to the lifecycle. NewFeedResource
builds a Resource that opens the feed on activation, holds readiness until
the first payload is applied, and closes the feed on deactivation:

	r := tether.NewFeedResource(
	    tether.NewFileFeed("quotes.json"),
	    func(data []byte) { cache.Store(data) },
	)

# Observability

Every lifecycle transition emits a capitan signal. Hook them for logging
or metrics:

	capitan.Hook(tether.ResourceActivated, func(_ context.Context, e *capitan.Event) {
	    name, _ := tether.KeyResource.From(e)
	    log.Printf("activated %s", name)
	})
*/
package tether
