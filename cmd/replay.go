package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/desertthunder/cardswap/internal/tasks"
	"github.com/urfave/cli/v3"
)

type replayStepJSON struct {
	Item     string `json:"item"`
	Accepted bool   `json:"accepted"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Position *int   `json:"position,omitempty"`
	Error    string `json:"error,omitempty"`
}

type replayJSON struct {
	Session  string           `json:"session,omitempty"`
	Steps    []replayStepJSON `json:"steps"`
	Left     []string         `json:"left"`
	Right    []string         `json:"right"`
	Accepted int              `json:"accepted"`
	Skipped  int              `json:"skipped"`
	Failed   int              `json:"failed"`
}

// Replay runs the moves given as arguments against a fresh board.
func (r *Runner) Replay(ctx context.Context, cmd *cli.Command) error {
	var moves []string
	for _, arg := range cmd.Args().Slice() {
		moves = append(moves, shared.SplitItems(arg)...)
	}
	if len(moves) == 0 {
		return fmt.Errorf("%w: at least one card id is required", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	left, right := r.board(cmd, config)

	delay := config.Animation.SettleDelay()
	if d := cmd.Duration("settle"); d > 0 {
		delay = d
	}

	opts := tasks.ReplayOptions{
		Left:        left,
		Right:       right,
		Moves:       moves,
		SettleDelay: delay,
		Rate:        cmd.Float("rate"),
		WaitSettle:  !cmd.Bool("no-wait"),
	}

	var sessionID string
	if !cmd.Bool("no-journal") {
		db, journal, err := r.openJournal(config, models.SessionReplay, left, right)
		if err != nil {
			return fmt.Errorf("failed to open move journal: %w", err)
		}
		defer db.Close()
		opts.Recorder = journal
		sessionID = journal.SessionID()
	}

	asJSON := cmd.Bool("json")
	r.logger.Info("starting replay", "moves", len(moves), "wait", opts.WaitSettle, "rate", opts.Rate)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			if asJSON {
				continue
			}
			switch update.Phase {
			case tasks.CommitPhase, tasks.SkipPhase:
				r.writePlain("%s\n", update.Message)
			case tasks.SettlePhase:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, opts, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if asJSON {
		return r.writeJSON(toReplayJSON(result, sessionID), true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Replay Complete!")
	r.writePlain("Left:  %s\n", strings.Join(result.Final.Left, " "))
	r.writePlain("Right: %s\n", strings.Join(result.Final.Right, " "))
	r.writePlain("Moved: %d  Skipped: %d  Failed: %d\n", result.Accepted, result.Skipped, result.Failed)
	if sessionID != "" {
		r.writePlain("Session: %s\n", sessionID)
	}
	return nil
}

func toReplayJSON(result *tasks.ReplayResult, sessionID string) replayJSON {
	out := replayJSON{
		Session:  sessionID,
		Steps:    make([]replayStepJSON, 0, len(result.Steps)),
		Left:     result.Final.Left,
		Right:    result.Final.Right,
		Accepted: result.Accepted,
		Skipped:  result.Skipped,
		Failed:   result.Failed,
	}
	for _, s := range result.Steps {
		step := replayStepJSON{Item: s.Item, Accepted: s.Accepted}
		if s.Move != nil {
			index := s.Move.Index
			step.From, step.To, step.Position = s.Move.From.String(), s.Move.To.String(), &index
		}
		if s.Err != nil {
			step.Error = s.Err.Error()
		}
		out.Steps = append(out.Steps, step)
	}
	return out
}
