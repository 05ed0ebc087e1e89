package tether

import "testing"

func alwaysTrue() bool  { return true }
func alwaysFalse() bool { return false }

func TestGate_SatisfiedResolvesImmediately(t *testing.T) {
	var g gate

	select {
	case <-g.wait(alwaysTrue):
	default:
		t.Error("expected an already-closed channel when predicate holds")
	}
}

func TestGate_PendingUntilOpen(t *testing.T) {
	var g gate

	ch := g.wait(alwaysFalse)
	select {
	case <-ch:
		t.Fatal("expected channel to be pending before open")
	default:
	}

	g.open()

	select {
	case <-ch:
	default:
		t.Error("expected channel to be closed after open")
	}
}

func TestGate_AllPendingWaitersShareOneResolution(t *testing.T) {
	var g gate

	first := g.wait(alwaysFalse)
	second := g.wait(alwaysFalse)

	g.open()

	for i, ch := range []<-chan struct{}{first, second} {
		select {
		case <-ch:
		default:
			t.Errorf("expected waiter %d to be resolved", i)
		}
	}
}

func TestGate_WaitAfterOpenPendsForNextTransition(t *testing.T) {
	var g gate

	g.wait(alwaysFalse)
	g.open()

	late := g.wait(alwaysFalse)
	select {
	case <-late:
		t.Error("expected post-open waiter to wait for the next transition")
	default:
	}

	g.open()
	select {
	case <-late:
	default:
		t.Error("expected second open to resolve the late waiter")
	}
}

func TestGate_OpenWithNoWaitersIsNoop(t *testing.T) {
	var g gate
	g.open()
	g.open()
}

func TestGate_ResolvedChannelCanBeReceivedRepeatedly(t *testing.T) {
	var g gate

	ch := g.wait(alwaysFalse)
	g.open()

	for i := 0; i < 3; i++ {
		select {
		case <-ch:
		default:
			t.Fatalf("expected resolved channel to stay resolved on receive %d", i)
		}
	}
}
