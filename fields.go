package tether

import "github.com/zoobzio/capitan"

// Field keys for resource events.
var (
	// KeyResource is the configured resource name.
	KeyResource = capitan.NewStringKey("resource")

	// KeyConsumers is the consumer count after the operation.
	KeyConsumers = capitan.NewIntKey("consumers")

	// KeyLoading is the loading counter after the operation.
	KeyLoading = capitan.NewIntKey("loading")

	// KeyDelta is the requested loading adjustment.
	KeyDelta = capitan.NewIntKey("delta")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyPayloadSize is the size in bytes of an applied feed payload.
	KeyPayloadSize = capitan.NewIntKey("payload_size")
)
