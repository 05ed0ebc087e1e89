package tether

import "fmt"

// Status is a consistent snapshot of a resource's counters and the flags
// derived from them.
type Status struct {
	Consumers int
	Loading   int
	Active    bool
	Ready     bool
}

// Status returns a snapshot taken under the resource lock, so Active and
// Ready always agree with the counters they derive from.
func (r *Resource) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Consumers: r.consumers,
		Loading:   r.loading,
		Active:    r.consumers > 0,
		Ready:     r.loading == 0,
	}
}

// String returns a compact representation of the snapshot.
func (s Status) String() string {
	phase := "inactive"
	if s.Active {
		phase = "active"
	}
	readiness := "ready"
	if !s.Ready {
		readiness = "loading"
	}
	return fmt.Sprintf("%s/%s consumers=%d loading=%d", phase, readiness, s.Consumers, s.Loading)
}
