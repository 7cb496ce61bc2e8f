package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/cardswap/internal/shared"
)

// SessionKind distinguishes how a session was driven.
type SessionKind string

const (
	SessionInteractive SessionKind = "interactive"
	SessionReplay      SessionKind = "replay"
)

// Session groups the moves of a single run together with the rows it started from.
type Session struct {
	ID        string
	Kind      SessionKind
	Left      []string
	Right     []string
	StartedAt time.Time
}

// NewSession creates a session with a generated id.
func NewSession(kind SessionKind, left, right []string) *Session {
	return &Session{
		ID:        shared.GenerateID(),
		Kind:      kind,
		Left:      left,
		Right:     right,
		StartedAt: time.Now(),
	}
}

// Validate checks the session kind and id.
func (s *Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: session id is required", shared.ErrInvalidInput)
	}
	if s.Kind != SessionInteractive && s.Kind != SessionReplay {
		return fmt.Errorf("%w: unknown session kind %q", shared.ErrInvalidInput, s.Kind)
	}
	return nil
}

// JoinItems encodes a row for storage.
func JoinItems(items []string) string { return strings.Join(items, ",") }
