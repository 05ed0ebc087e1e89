package tether

import "fmt"

// ImbalancedReleaseError means Release was called with no outstanding grasp.
// The resource state is left unchanged; the count is never clamped negative.
type ImbalancedReleaseError struct {
	Resource string
}

func (e ImbalancedReleaseError) Error() string {
	if e.Resource == "" {
		return "release without matching grasp"
	}
	return fmt.Sprintf("release without matching grasp: resource=%q", e.Resource)
}

// NegativeLoadingError means a loading adjustment would take the counter
// below zero. The resource state is left unchanged.
type NegativeLoadingError struct {
	Resource string
	Loading  int
	Delta    int
}

func (e NegativeLoadingError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("loading counter would go negative: loading=%d delta=%d", e.Loading, e.Delta)
	}
	return fmt.Sprintf("loading counter would go negative: resource=%q loading=%d delta=%d", e.Resource, e.Loading, e.Delta)
}
