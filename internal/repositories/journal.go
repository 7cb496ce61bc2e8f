package repositories

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/swap"
)

// MoveJournal records committed moves for one session.
//
// Journal failures are logged and swallowed so a broken database never interrupts a move.
type MoveJournal struct {
	repo          *MoveRepository
	sessionID     string
	settleDelayMS int
	logger        *log.Logger
}

// NewMoveJournal creates a MoveJournal writing to repo under sessionID.
func NewMoveJournal(repo *MoveRepository, sessionID string, settleDelayMS int, logger *log.Logger) *MoveJournal {
	return &MoveJournal{repo: repo, sessionID: sessionID, settleDelayMS: settleDelayMS, logger: logger}
}

// SessionID returns the session moves are recorded under.
func (j *MoveJournal) SessionID() string { return j.sessionID }

// RecordMove persists m. It implements tasks.MoveRecorder.
func (j *MoveJournal) RecordMove(m swap.Move) error {
	rec := models.NewMoveRecord(0, j.sessionID, m.Item, m.From.String(), m.To.String(), m.Index, j.settleDelayMS)
	return j.repo.Create(rec)
}

// Observe is a [swap.Observer] that records each commit.
func (j *MoveJournal) Observe(m swap.Move) {
	if err := j.RecordMove(m); err != nil && j.logger != nil {
		j.logger.Warn("failed to journal move", "item", m.Item, "error", err)
	}
}
