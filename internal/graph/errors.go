package graph

import "github.com/cockroachdb/errors"

// Sentinel errors. Callers match them with errors.Is; the returned errors
// carry the offending values in their message.
var (
	// ErrCapacityExceeded is returned by New when the device count is above
	// the configured maximum. No partial Graph is returned.
	ErrCapacityExceeded = errors.New("graph: device count exceeds capacity")

	// ErrInvalidDeviceCount is returned by New for a device count below one.
	ErrInvalidDeviceCount = errors.New("graph: invalid device count")

	// ErrInvalidDevice is returned for any device index outside [0, NumDevices).
	ErrInvalidDevice = errors.New("graph: invalid device index")

	// ErrSelfLoop is returned by AddEdge when both endpoints are the same device.
	ErrSelfLoop = errors.New("graph: self loop")

	// ErrUnreachable is returned by ShortestPath when no path exists.
	// It is an expected outcome, not a failure of the graph.
	ErrUnreachable = errors.New("graph: no path exists")
)
