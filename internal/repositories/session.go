package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
)

// SessionRepository stores the runs that journaled moves belong to.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session
func (r *SessionRepository) Create(s *models.Session) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `INSERT INTO sessions (id, kind, left_items, right_items, started_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.Exec(query, s.ID, string(s.Kind), models.JoinItems(s.Left), models.JoinItems(s.Right), s.StartedAt); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(id string) (*models.Session, error) {
	query := `SELECT id, kind, left_items, right_items, started_at FROM sessions WHERE id = ?`
	return scanSession(r.db.QueryRow(query, id))
}

// List returns sessions newest first
func (r *SessionRepository) List() ([]*models.Session, error) {
	rows, err := r.db.Query(`SELECT id, kind, left_items, right_items, started_at FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return sessions, nil
}

func scanSession(row scanner) (*models.Session, error) {
	var (
		s         models.Session
		kind      string
		left      string
		right     string
		startedAt time.Time
	)
	err := row.Scan(&s.ID, &kind, &left, &right, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: session", shared.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	s.Kind = models.SessionKind(kind)
	s.Left = shared.SplitItems(left)
	s.Right = shared.SplitItems(right)
	s.StartedAt = startedAt
	return &s, nil
}
