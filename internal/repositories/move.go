package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
)

var _ models.Repository[*models.MoveRecord] = (*MoveRepository)(nil)

const moveColumns = `id, sequence, session_id, item, from_side, to_side, position, settle_delay_ms, created_at, updated_at, deleted_at`

// MoveRepository implements models.Repository[*models.MoveRecord] for the move journal.
type MoveRepository struct {
	db *sql.DB
}

// NewMoveRepository creates a new MoveRepository with the given database connection
func NewMoveRepository(db *sql.DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create inserts a move with a generated ID and sequence
func (r *MoveRepository) Create(move *models.MoveRecord) error {
	if err := move.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "moves")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()

	query := `
		INSERT INTO moves (id, sequence, session_id, item, from_side, to_side, position, settle_delay_ms, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		move.SessionID(),
		move.Item(),
		move.FromSide(),
		move.ToSide(),
		move.Position(),
		move.SettleDelayMS(),
		move.CreatedAt(),
		move.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert move: %w", err)
	}

	move.SetID(id)
	move.SetSequence(sequence)
	return nil
}

// Get retrieves a move by ID, excluding soft-deleted moves
func (r *MoveRepository) Get(id string) (*models.MoveRecord, error) {
	query := `SELECT ` + moveColumns + ` FROM moves WHERE id = ? AND deleted_at IS NULL`
	return r.scan(r.db.QueryRow(query, id))
}

// Update rewrites the mutable fields of a move
func (r *MoveRepository) Update(move *models.MoveRecord) error {
	if err := move.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	move.SetUpdatedAt(now)

	query := `
		UPDATE moves
		SET from_side = ?, to_side = ?, position = ?, settle_delay_ms = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		move.FromSide(),
		move.ToSide(),
		move.Position(),
		move.SettleDelayMS(),
		now,
		move.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update move: %w", err)
	}

	return expectAffected(result, "move", move.ID())
}

// Delete soft-deletes a move by ID
func (r *MoveRepository) Delete(id string) error {
	query := `UPDATE moves SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	return expectAffected(result, "move", id)
}

// List retrieves moves matching the given criteria in journal order.
//
// Supported criteria: "session_id" and "item" (strings), "limit" (int).
func (r *MoveRepository) List(criteria map[string]any) ([]*models.MoveRecord, error) {
	query := `SELECT ` + moveColumns + ` FROM moves WHERE deleted_at IS NULL`
	args := []any{}

	if sessionID, ok := criteria["session_id"].(string); ok && sessionID != "" {
		query += " AND session_id = ?"
		args = append(args, sessionID)
	}

	if item, ok := criteria["item"].(string); ok && item != "" {
		query += " AND item = ?"
		args = append(args, item)
	}

	query += " ORDER BY sequence ASC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	var moves []*models.MoveRecord
	for rows.Next() {
		move, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return moves, nil
}

// scanner is satisfied by both [sql.Row] and [sql.Rows]
type scanner interface {
	Scan(dest ...any) error
}

func (r *MoveRepository) scan(row scanner) (*models.MoveRecord, error) {
	var (
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
		deletedAt     sql.NullTime
	)

	err := row.Scan(&id, &sequence, &sessionID, &item, &fromSide, &toSide, &position, &settleDelayMS, &createdAt, &updatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: move", shared.ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan move: %w", err)
	}

	move := models.NewMoveRecord(sequence, sessionID, item, fromSide, toSide, position, settleDelayMS)
	move.SetID(id)
	move.SetCreatedAt(createdAt)
	move.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		move.SetDeletedAt(&deletedAt.Time)
	}

	return move, nil
}

func expectAffected(result sql.Result, entity, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s %s not found or already deleted", shared.ErrRecordNotFound, entity, id)
	}
	return nil
}
