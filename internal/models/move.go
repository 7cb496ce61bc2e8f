package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/cardswap/internal/shared"
)

var _ Model = (*MoveRecord)(nil)

// MoveRecord is a journaled card move.
type MoveRecord struct {
	id            string
	sequence      int
	sessionID     string
	item          string
	fromSide      string
	toSide        string
	position      int
	settleDelayMS int
	createdAt     time.Time
	updatedAt     time.Time
	deletedAt     *time.Time
}

// NewMoveRecord creates an unsaved MoveRecord stamped with the current time.
func NewMoveRecord(sequence int, sessionID, item, from, to string, position, settleDelayMS int) *MoveRecord {
	now := time.Now()
	return &MoveRecord{
		sequence:      sequence,
		sessionID:     sessionID,
		item:          item,
		fromSide:      from,
		toSide:        to,
		position:      position,
		settleDelayMS: settleDelayMS,
		createdAt:     now,
		updatedAt:     now,
	}
}

func (m *MoveRecord) ID() string            { return m.id }
func (m *MoveRecord) Sequence() int         { return m.sequence }
func (m *MoveRecord) SessionID() string     { return m.sessionID }
func (m *MoveRecord) Item() string          { return m.item }
func (m *MoveRecord) FromSide() string      { return m.fromSide }
func (m *MoveRecord) ToSide() string        { return m.toSide }
func (m *MoveRecord) Position() int         { return m.position }
func (m *MoveRecord) SettleDelayMS() int    { return m.settleDelayMS }
func (m *MoveRecord) CreatedAt() time.Time  { return m.createdAt }
func (m *MoveRecord) UpdatedAt() time.Time  { return m.updatedAt }
func (m *MoveRecord) DeletedAt() *time.Time { return m.deletedAt }

func (m *MoveRecord) SetID(id string)             { m.id = id }
func (m *MoveRecord) SetSequence(seq int)         { m.sequence = seq }
func (m *MoveRecord) SetPosition(pos int)         { m.position = pos }
func (m *MoveRecord) SetCreatedAt(t time.Time)    { m.createdAt = t }
func (m *MoveRecord) SetUpdatedAt(t time.Time)    { m.updatedAt = t }
func (m *MoveRecord) SetDeletedAt(t *time.Time)   { m.deletedAt = t }
func (m *MoveRecord) SetSettleDelayMS(ms int)     { m.settleDelayMS = ms }
func (m *MoveRecord) SetSides(from, to string)    { m.fromSide, m.toSide = from, to }
func (m *MoveRecord) SetSessionID(session string) { m.sessionID = session }

// Validate checks required fields and that the move changes rows.
func (m *MoveRecord) Validate() error {
	switch {
	case m.sessionID == "":
		return fmt.Errorf("%w: session id is required", shared.ErrInvalidInput)
	case m.item == "":
		return fmt.Errorf("%w: item is required", shared.ErrInvalidInput)
	case !validSide(m.fromSide) || !validSide(m.toSide):
		return fmt.Errorf("%w: sides must be left or right, got %q -> %q", shared.ErrInvalidInput, m.fromSide, m.toSide)
	case m.fromSide == m.toSide:
		return fmt.Errorf("%w: move must change rows", shared.ErrInvalidInput)
	case m.position < 0:
		return fmt.Errorf("%w: position must not be negative", shared.ErrInvalidInput)
	}
	return nil
}

func validSide(s string) bool { return s == "left" || s == "right" }
