package tether

import "context"

// Release gives back one unit of consumer reference obtained through
// Consume. Calling it more than once is an extra unmatched release and
// fails accordingly.
type Release func() error

// Consume grasps the resource, waits until it is ready, and returns a
// release capability bound to that one grasp. The grasp happens before the
// wait so a racing deactivation cannot drop the resource below one consumer
// while this caller is waiting.
//
// If ctx is canceled before readiness, or the activate hook fails, the
// grasped slot is released before returning - cancellation is equivalent
// to "grasp, then immediately release", never "grasp and never release".
func Consume(ctx context.Context, r *Resource) (Release, error) {
	if err := r.Grasp(); err != nil {
		// The reference was still counted; give it back so a failed
		// activation cannot leak a consumer slot.
		_ = r.Release() //nolint:errcheck // activation error takes precedence
		return nil, err
	}

	select {
	case <-r.EnsureReady():
		return r.Release, nil
	case <-ctx.Done():
		_ = r.Release() //nolint:errcheck // cancellation takes precedence
		return nil, ctx.Err()
	}
}
