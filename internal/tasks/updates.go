package tasks

import (
	"fmt"

	"github.com/desertthunder/cardswap/internal/swap"
)

// ProgressUpdate represents a progress event during a replay.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number (1-based)
	Total   int    // Total steps in the script
	Item    string // Item the update refers to
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data (a swap.Move or swap.Snapshot)
}

// Operation phase enumeration
type Phase int

const (
	RequestPhase Phase = iota
	CommitPhase
	SettlePhase
	SkipPhase
	DonePhase
)

func (p Phase) String() string {
	switch p {
	case RequestPhase:
		return "request"
	case CommitPhase:
		return "commit"
	case SettlePhase:
		return "settle"
	case SkipPhase:
		return "skip"
	case DonePhase:
		return "done"
	default:
		return ""
	}
}

func requestUpdate(step, total int, item string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RequestPhase,
		Step:    step,
		Total:   total,
		Item:    item,
		Message: fmt.Sprintf("[%d/%d] Lifting %s into flight...", step, total, item),
	}
}

func commitUpdate(step, total int, m swap.Move) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CommitPhase,
		Step:    step,
		Total:   total,
		Item:    m.Item,
		Message: fmt.Sprintf("[%d/%d] %s: %s → %s (slot %d)", step, total, m.Item, m.From, m.To, m.Index),
		Data:    m,
	}
}

func settleUpdate(step, total int, item string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SettlePhase,
		Step:    step,
		Total:   total,
		Item:    item,
		Message: fmt.Sprintf("[%d/%d] %s landed", step, total, item),
	}
}

func skipUpdate(step, total int, item string, err error) ProgressUpdate {
	msg := fmt.Sprintf("[%d/%d] %s ignored while another card is in flight", step, total, item)
	if err != nil {
		msg = fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, item, err)
	}
	return ProgressUpdate{
		Phase:   SkipPhase,
		Step:    step,
		Total:   total,
		Item:    item,
		Message: msg,
	}
}

func doneUpdate(total int, snap swap.Snapshot) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DonePhase,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Replay finished: left=%v right=%v", snap.Left, snap.Right),
		Data:    snap,
	}
}
