package swap

import (
	"sync"
	"time"
)

// Stopper cancels a scheduled callback. Stop reports whether the call prevented it from firing.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. [SystemClock] is the real implementation.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// SystemClock schedules with [time.AfterFunc].
type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// SettleTimer is a single-slot debounced timer for commit tickets.
//
// Arming replaces the outstanding handle, so only the latest ticket is delivered on [SettleTimer.C].
type SettleTimer struct {
	clock Clock
	c     chan uint64

	mu     sync.Mutex
	handle Stopper
}

// NewSettleTimer creates a SettleTimer on clock, defaulting to [SystemClock].
func NewSettleTimer(clock Clock) *SettleTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SettleTimer{clock: clock, c: make(chan uint64, 1)}
}

// C delivers the generation of each ticket whose delay elapsed.
func (t *SettleTimer) C() <-chan uint64 { return t.c }

// Arm cancels any outstanding ticket and schedules tk.
func (t *SettleTimer) Arm(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handle != nil {
		t.handle.Stop()
	}
	t.handle = t.clock.AfterFunc(tk.Delay, func() { t.fire(tk.Gen) })
}

// Stop cancels the outstanding ticket. It reports whether one was pending.
func (t *SettleTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handle == nil {
		return false
	}
	stopped := t.handle.Stop()
	t.handle = nil
	return stopped
}

// fire replaces any undelivered generation with gen so the channel never blocks the clock.
func (t *SettleTimer) fire(gen uint64) {
	for {
		select {
		case t.c <- gen:
			return
		default:
		}
		select {
		case <-t.c:
		default:
		}
	}
}
