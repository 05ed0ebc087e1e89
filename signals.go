package tether

import "github.com/zoobzio/capitan"

// Resource lifecycle signals.
var (
	// ResourceGrasped is emitted on every successful grasp.
	ResourceGrasped = capitan.NewSignal(
		"tether.resource.grasped",
		"Consumer grasped a resource",
	)

	// ResourceReleased is emitted on every successful release.
	ResourceReleased = capitan.NewSignal(
		"tether.resource.released",
		"Consumer released a resource",
	)

	// ResourceActivated is emitted when the first consumer appears.
	ResourceActivated = capitan.NewSignal(
		"tether.resource.activated",
		"Resource transitioned inactive to active",
	)

	// ResourceDeactivated is emitted when the last consumer leaves.
	ResourceDeactivated = capitan.NewSignal(
		"tether.resource.deactivated",
		"Resource transitioned active to inactive",
	)
)

// Readiness signals.
var (
	// LoadingChanged is emitted on every successful loading adjustment.
	LoadingChanged = capitan.NewSignal(
		"tether.resource.loading.changed",
		"Loading counter adjusted",
	)

	// ResourceReady is emitted when the loading counter returns to zero.
	ResourceReady = capitan.NewSignal(
		"tether.resource.ready",
		"Resource became ready",
	)

	// ResourceNotReady is emitted when the loading counter leaves zero.
	ResourceNotReady = capitan.NewSignal(
		"tether.resource.not.ready",
		"Resource became not ready",
	)
)

// Failure signals.
var (
	// ReleaseImbalanced is emitted when a release has no matching grasp.
	ReleaseImbalanced = capitan.NewSignal(
		"tether.resource.release.imbalanced",
		"Release called without matching grasp",
	)

	// LoadingUnderflow is emitted when a loading adjustment is rejected
	// because the counter would go negative.
	LoadingUnderflow = capitan.NewSignal(
		"tether.resource.loading.underflow",
		"Loading adjustment rejected",
	)

	// HookFailed is emitted when an activate or deactivate hook returns
	// an error.
	HookFailed = capitan.NewSignal(
		"tether.resource.hook.failed",
		"Lifecycle hook returned an error",
	)

	// ObserverPanicked is emitted when an event handler panics during
	// dispatch. The remaining handlers still run.
	ObserverPanicked = capitan.NewSignal(
		"tether.observer.panicked",
		"Event handler panicked during dispatch",
	)
)

// Feed signals.
var (
	// FeedOpened is emitted when a feed-bound resource opens its feed.
	FeedOpened = capitan.NewSignal(
		"tether.feed.opened",
		"Feed opened on activation",
	)

	// FeedClosed is emitted when a feed-bound resource closes its feed.
	FeedClosed = capitan.NewSignal(
		"tether.feed.closed",
		"Feed closed on deactivation",
	)

	// FeedPayload is emitted when a feed payload is applied.
	FeedPayload = capitan.NewSignal(
		"tether.feed.payload",
		"Feed payload applied",
	)
)
