package tether

import (
	"strings"
	"testing"
)

func TestImbalancedReleaseError_Message(t *testing.T) {
	err := ImbalancedReleaseError{Resource: "prices"}
	if !strings.Contains(err.Error(), `"prices"`) {
		t.Errorf("expected message to name the resource, got %q", err.Error())
	}
}

func TestImbalancedReleaseError_MessageWithoutName(t *testing.T) {
	err := ImbalancedReleaseError{}
	if err.Error() != "release without matching grasp" {
		t.Errorf("expected bare message, got %q", err.Error())
	}
}

func TestNegativeLoadingError_Message(t *testing.T) {
	err := NegativeLoadingError{Resource: "prices", Loading: 0, Delta: -1}
	msg := err.Error()
	if !strings.Contains(msg, `"prices"`) {
		t.Errorf("expected message to name the resource, got %q", msg)
	}
	if !strings.Contains(msg, "loading=0") || !strings.Contains(msg, "delta=-1") {
		t.Errorf("expected message to carry counter and delta, got %q", msg)
	}
}

func TestNegativeLoadingError_MessageWithoutName(t *testing.T) {
	err := NegativeLoadingError{Loading: 2, Delta: -3}
	msg := err.Error()
	if strings.Contains(msg, "resource=") {
		t.Errorf("expected no resource field in message, got %q", msg)
	}
}
