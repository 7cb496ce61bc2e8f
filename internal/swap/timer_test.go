package swap_test

import (
	"testing"
	"time"

	"github.com/desertthunder/cardswap/internal/swap"
	tu "github.com/desertthunder/cardswap/internal/testing"
)

func receive(t *testing.T, timer *swap.SettleTimer) (uint64, bool) {
	t.Helper()
	select {
	case gen := <-timer.C():
		return gen, true
	default:
		return 0, false
	}
}

func TestSettleTimer(t *testing.T) {
	t.Run("fires after delay", func(t *testing.T) {
		clock := tu.NewFakeClock()
		timer := swap.NewSettleTimer(clock)

		timer.Arm(swap.Ticket{Gen: 1, Delay: 500 * time.Millisecond})

		clock.Advance(499 * time.Millisecond)
		if _, ok := receive(t, timer); ok {
			t.Fatal("timer fired early")
		}

		clock.Advance(time.Millisecond)
		gen, ok := receive(t, timer)
		if !ok || gen != 1 {
			t.Fatalf("expected generation 1, got %d (fired=%v)", gen, ok)
		}
	})

	t.Run("rearm supersedes previous ticket", func(t *testing.T) {
		clock := tu.NewFakeClock()
		timer := swap.NewSettleTimer(clock)

		timer.Arm(swap.Ticket{Gen: 1, Delay: 500 * time.Millisecond})
		clock.Advance(300 * time.Millisecond)
		timer.Arm(swap.Ticket{Gen: 2, Delay: 500 * time.Millisecond})

		clock.Advance(300 * time.Millisecond)
		if gen, ok := receive(t, timer); ok {
			t.Fatalf("superseded ticket fired with generation %d", gen)
		}

		clock.Advance(200 * time.Millisecond)
		gen, ok := receive(t, timer)
		if !ok || gen != 2 {
			t.Fatalf("expected generation 2, got %d (fired=%v)", gen, ok)
		}
		if clock.Pending() != 0 {
			t.Errorf("expected no pending timers, got %d", clock.Pending())
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		clock := tu.NewFakeClock()
		timer := swap.NewSettleTimer(clock)

		if timer.Stop() {
			t.Error("Stop() on idle timer should report false")
		}

		timer.Arm(swap.Ticket{Gen: 1, Delay: time.Second})
		if !timer.Stop() {
			t.Error("Stop() should report the pending ticket")
		}
		clock.Advance(2 * time.Second)
		if _, ok := receive(t, timer); ok {
			t.Error("stopped timer fired")
		}
	})

	t.Run("undelivered generation is replaced", func(t *testing.T) {
		clock := tu.NewFakeClock()
		timer := swap.NewSettleTimer(clock)

		timer.Arm(swap.Ticket{Gen: 1, Delay: time.Millisecond})
		clock.Advance(time.Millisecond)
		timer.Arm(swap.Ticket{Gen: 2, Delay: time.Millisecond})
		clock.Advance(time.Millisecond)

		gen, ok := receive(t, timer)
		if !ok || gen != 2 {
			t.Fatalf("expected latest generation 2, got %d", gen)
		}
		if _, ok := receive(t, timer); ok {
			t.Error("expected a single buffered generation")
		}
	})

	t.Run("system clock", func(t *testing.T) {
		timer := swap.NewSettleTimer(nil)
		timer.Arm(swap.Ticket{Gen: 7, Delay: 5 * time.Millisecond})

		select {
		case gen := <-timer.C():
			if gen != 7 {
				t.Errorf("expected generation 7, got %d", gen)
			}
		case <-time.After(time.Second):
			t.Fatal("system clock timer never fired")
		}
	})
}

// TestSettleLifecycle drives the coordinator with the debounced timer the way the replay loop does.
func TestSettleLifecycle(t *testing.T) {
	clock := tu.NewFakeClock()
	timer := swap.NewSettleTimer(clock)
	c, err := swap.New([]string{"1", "2", "3", "4"}, []string{"5", "6"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.RequestMove("2")
	tk, _ := c.Commit()
	timer.Arm(tk)

	clock.Advance(tk.Delay - time.Millisecond)
	if _, ok := receive(t, timer); ok {
		t.Fatal("settled before the delay elapsed")
	}
	if c.Animating() != "2" {
		t.Fatal("animation should still be active")
	}

	clock.Advance(time.Millisecond)
	gen, ok := receive(t, timer)
	if !ok {
		t.Fatal("timer did not fire after one settle delay")
	}
	if !c.Settle(gen) {
		t.Fatal("Settle() should accept the delivered generation")
	}
	if c.Busy() {
		t.Error("coordinator should be idle after settle")
	}
}
