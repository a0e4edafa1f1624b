package clock

import (
	"testing"
	"time"
)

func TestManualAfterFiresOnAdvance(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	ch := m.After(100 * time.Millisecond)

	select {
	case <-ch:
		t.Fatalf("waiter fired before the clock advanced")
	default:
	}

	m.Advance(50 * time.Millisecond)
	select {
	case <-ch:
		t.Fatalf("waiter fired before its deadline")
	default:
	}

	m.Advance(50 * time.Millisecond)
	select {
	case at := <-ch:
		if got := at.Sub(time.Unix(0, 0).UTC()); got != 100*time.Millisecond {
			t.Fatalf("expected waiter to fire at +100ms, got %v", got)
		}
	default:
		t.Fatalf("waiter did not fire at its deadline")
	}
}

func TestManualAfterNonPositiveFiresImmediately(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	select {
	case <-m.After(0):
	default:
		t.Fatalf("zero-duration waiter should fire immediately")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending waiters, got %d", m.Pending())
	}
}

func TestManualPendingCountsUnfiredWaiters(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	_ = m.After(time.Second)
	_ = m.After(2 * time.Second)
	if got := m.Pending(); got != 2 {
		t.Fatalf("expected 2 pending waiters, got %d", got)
	}
	m.Advance(time.Second)
	if got := m.Pending(); got != 1 {
		t.Fatalf("expected 1 pending waiter after advance, got %d", got)
	}
}
