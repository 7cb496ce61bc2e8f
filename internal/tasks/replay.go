package tasks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/desertthunder/cardswap/internal/swap"
	"golang.org/x/time/rate"
)

// MoveRecorder persists committed moves.
type MoveRecorder interface {
	RecordMove(m swap.Move) error
}

// ReplayOptions configures a replay.
type ReplayOptions struct {
	Left        []string
	Right       []string
	Moves       []string      // item ids to request, in order
	SettleDelay time.Duration // defaults to swap.DefaultSettleDelay
	Rate        float64       // requests per second; zero or less means unpaced
	WaitSettle  bool          // wait for each flight to land before the next request
	Clock       swap.Clock    // defaults to swap.SystemClock
	Recorder    MoveRecorder  // optional journal
}

// StepResult is the outcome of one scripted request.
type StepResult struct {
	Item     string
	Accepted bool
	Move     *swap.Move
	Err      error
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	Steps    []StepResult
	Final    swap.Snapshot
	Accepted int
	Skipped  int
	Failed   int
}

// ReplayEngine runs scripted moves against a fresh coordinator.
type ReplayEngine struct {
	logger *log.Logger
}

// NewReplayEngine creates a ReplayEngine. A nil logger discards output.
func NewReplayEngine(logger *log.Logger) *ReplayEngine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ReplayEngine{logger: logger}
}

// Run executes opts.Moves and waits for the last flight to land.
//
// Unknown ids are recorded as failed steps and do not abort the replay. Cancelling ctx stops
// the replay and returns the partial result with the context error.
func (e *ReplayEngine) Run(ctx context.Context, opts ReplayOptions, prog chan<- ProgressUpdate) (*ReplayResult, error) {
	if len(opts.Moves) == 0 {
		return nil, fmt.Errorf("%w: no moves to replay", shared.ErrMissingArgument)
	}

	var committed *swap.Move
	c, err := swap.New(opts.Left, opts.Right,
		swap.WithSettleDelay(opts.SettleDelay),
		swap.WithLogger(e.logger),
		swap.WithObserver(func(m swap.Move) { committed = &m }),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	limit := rate.Inf
	if opts.Rate > 0 {
		limit = rate.Limit(opts.Rate)
	}
	limiter := rate.NewLimiter(limit, 1)

	timer := swap.NewSettleTimer(opts.Clock)
	defer timer.Stop()

	total := len(opts.Moves)
	result := &ReplayResult{Steps: make([]StepResult, 0, total)}
	flying := 0 // step whose item is in flight

	settle := func(gen uint64) {
		item := c.Animating()
		if c.Settle(gen) {
			e.sendProgress(prog, settleUpdate(flying, total, item))
		}
	}

	for i, item := range opts.Moves {
		step := i + 1

		if err := limiter.Wait(ctx); err != nil {
			result.Final = c.Snapshot()
			return result, err
		}

		if opts.WaitSettle {
			for c.Busy() {
				select {
				case <-ctx.Done():
					result.Final = c.Snapshot()
					return result, ctx.Err()
				case gen := <-timer.C():
					settle(gen)
				}
			}
		} else {
			select {
			case gen := <-timer.C():
				settle(gen)
			default:
			}
		}

		ok, err := c.RequestMove(item)
		switch {
		case err != nil:
			e.logger.Warn("replay step failed", "step", step, "item", item, "error", err)
			result.Failed++
			result.Steps = append(result.Steps, StepResult{Item: item, Err: err})
			e.sendProgress(prog, skipUpdate(step, total, item, err))
			continue
		case !ok:
			result.Skipped++
			result.Steps = append(result.Steps, StepResult{Item: item})
			e.sendProgress(prog, skipUpdate(step, total, item, nil))
			continue
		}
		e.sendProgress(prog, requestUpdate(step, total, item))

		committed = nil
		tk, _ := c.Commit()
		timer.Arm(tk)
		flying = step

		move := *committed
		result.Accepted++
		result.Steps = append(result.Steps, StepResult{Item: item, Accepted: true, Move: &move})
		e.sendProgress(prog, commitUpdate(step, total, move))

		if opts.Recorder != nil {
			if err := opts.Recorder.RecordMove(move); err != nil {
				e.logger.Warn("failed to record move", "item", item, "error", err)
			}
		}
	}

	for c.Busy() {
		select {
		case <-ctx.Done():
			result.Final = c.Snapshot()
			return result, ctx.Err()
		case gen := <-timer.C():
			settle(gen)
		}
	}

	result.Final = c.Snapshot()
	e.sendProgress(prog, doneUpdate(total, result.Final))
	e.logger.Info("replay finished", "accepted", result.Accepted, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// sendProgress sends an update without blocking.
func (e *ReplayEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
