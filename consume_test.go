package tether

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConsume_ReadyResource(t *testing.T) {
	ctx := context.Background()
	r := New()

	release, err := Consume(ctx, r)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if r.Consumers() != 1 {
		t.Errorf("expected 1 consumer, got %d", r.Consumers())
	}
	if !r.Ready() {
		t.Error("expected ready after Consume resolves")
	}

	if err := release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if r.Consumers() != 0 {
		t.Errorf("expected consumers back to 0, got %d", r.Consumers())
	}
}

func TestConsume_DoubleReleaseFails(t *testing.T) {
	ctx := context.Background()
	r := New()

	release, err := Consume(ctx, r)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	if err := release(); err != nil {
		t.Fatalf("first release failed: %v", err)
	}

	err = release()
	var imbalanced ImbalancedReleaseError
	if !errors.As(err, &imbalanced) {
		t.Errorf("expected ImbalancedReleaseError on second release, got %v", err)
	}
}

func TestConsume_WaitsForReadiness(t *testing.T) {
	ctx := context.Background()
	var r *Resource
	r = New(WithActivate(func() error {
		return r.AddLoading(1)
	}))

	resolved := make(chan Release, 1)
	errs := make(chan error, 1)
	go func() {
		release, err := Consume(ctx, r)
		if err != nil {
			errs <- err
			return
		}
		resolved <- release
	}()

	// The goroutine grasps first; wait for activation before settling.
	select {
	case <-r.EnsureActive():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for activation")
	}

	select {
	case <-resolved:
		t.Fatal("expected Consume to wait for readiness")
	case err := <-errs:
		t.Fatalf("Consume failed: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	if err := r.AddLoading(-1); err != nil {
		t.Fatalf("AddLoading failed: %v", err)
	}

	select {
	case release := <-resolved:
		if r.Consumers() != 1 || !r.Ready() {
			t.Errorf("expected consumers=1 ready, got consumers=%d ready=%v", r.Consumers(), r.Ready())
		}
		if err := release(); err != nil {
			t.Errorf("release failed: %v", err)
		}
	case err := <-errs:
		t.Fatalf("Consume failed: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Consume to resolve")
	}
}

func TestConsume_CancellationReleasesSlot(t *testing.T) {
	deactivations := 0
	var r *Resource
	r = New(
		WithActivate(func() error { return r.AddLoading(1) }),
		WithDeactivate(func() error { deactivations++; return nil }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Consume(ctx, r)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.Consumers() != 0 {
		t.Errorf("expected no leaked consumer slot, got %d", r.Consumers())
	}
	if deactivations != 1 {
		t.Errorf("expected deactivation after canceled consume, got %d", deactivations)
	}
}

func TestConsume_ActivateHookFailureReleasesSlot(t *testing.T) {
	hookErr := errors.New("connect failed")
	r := New(WithActivate(func() error { return hookErr }))

	_, err := Consume(context.Background(), r)
	if !errors.Is(err, hookErr) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if r.Consumers() != 0 {
		t.Errorf("expected no leaked consumer slot, got %d", r.Consumers())
	}
}

func TestConsume_SharedResourceKeepsOtherConsumers(t *testing.T) {
	ctx := context.Background()
	r := New()

	first, err := Consume(ctx, r)
	if err != nil {
		t.Fatalf("first Consume failed: %v", err)
	}
	second, err := Consume(ctx, r)
	if err != nil {
		t.Fatalf("second Consume failed: %v", err)
	}

	if r.Consumers() != 2 {
		t.Fatalf("expected 2 consumers, got %d", r.Consumers())
	}

	if err := first(); err != nil {
		t.Fatalf("first release failed: %v", err)
	}
	if r.Consumers() != 1 || !r.Active() {
		t.Errorf("expected 1 consumer still active, got consumers=%d active=%v", r.Consumers(), r.Active())
	}

	if err := second(); err != nil {
		t.Fatalf("second release failed: %v", err)
	}
	if r.Consumers() != 0 || r.Active() {
		t.Errorf("expected idle resource, got consumers=%d active=%v", r.Consumers(), r.Active())
	}
}
