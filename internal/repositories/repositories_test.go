package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/desertthunder/cardswap/internal/swap"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "moves")
		if err != nil {
			t.Fatalf("NextSequence() error = %v", err)
		}
		if got != want {
			t.Errorf("NextSequence() = %d, want %d", got, want)
		}
	}

	if _, err := NextSequence(db, "missing"); err == nil {
		t.Error("expected error for table without sequence")
	}
}

func TestMoveRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		move := models.NewMoveRecord(0, "session-1", "2", "left", "right", 2, 500)

		if err := repo.Create(move); err != nil {
			t.Fatalf("failed to create move: %v", err)
		}
		if move.ID() == "" {
			t.Error("move ID should be set after creation")
		}
		if move.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", move.Sequence())
		}
	})

	t.Run("Create rejects invalid move", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		move := models.NewMoveRecord(0, "session-1", "2", "left", "left", 0, 500)

		err := repo.Create(move)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if move.ID() != "" {
			t.Error("invalid move should not get an ID")
		}
	})

	t.Run("Get", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		move := models.NewMoveRecord(0, "session-1", "6", "right", "left", 4, 500)
		if err := repo.Create(move); err != nil {
			t.Fatalf("failed to create move: %v", err)
		}

		got, err := repo.Get(move.ID())
		if err != nil {
			t.Fatalf("failed to get move: %v", err)
		}
		if got.Item() != "6" || got.FromSide() != "right" || got.ToSide() != "left" || got.Position() != 4 {
			t.Errorf("unexpected move %+v", got)
		}
		if got.SessionID() != "session-1" || got.SettleDelayMS() != 500 {
			t.Errorf("unexpected session or delay: %s %d", got.SessionID(), got.SettleDelayMS())
		}

		if _, err := repo.Get("missing"); !errors.Is(err, shared.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		move := models.NewMoveRecord(0, "session-1", "1", "left", "right", 0, 500)
		if err := repo.Create(move); err != nil {
			t.Fatalf("failed to create move: %v", err)
		}

		move.SetPosition(3)
		move.SetSettleDelayMS(250)
		if err := repo.Update(move); err != nil {
			t.Fatalf("failed to update move: %v", err)
		}

		got, _ := repo.Get(move.ID())
		if got.Position() != 3 || got.SettleDelayMS() != 250 {
			t.Errorf("update not persisted: position %d delay %d", got.Position(), got.SettleDelayMS())
		}

		missing := models.NewMoveRecord(0, "session-1", "1", "left", "right", 0, 500)
		missing.SetID("missing")
		if err := repo.Update(missing); !errors.Is(err, shared.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		move := models.NewMoveRecord(0, "session-1", "1", "left", "right", 0, 500)
		if err := repo.Create(move); err != nil {
			t.Fatalf("failed to create move: %v", err)
		}

		if err := repo.Delete(move.ID()); err != nil {
			t.Fatalf("failed to delete move: %v", err)
		}
		if _, err := repo.Get(move.ID()); err == nil {
			t.Error("deleted move should not be retrievable")
		}
		if err := repo.Delete(move.ID()); err == nil {
			t.Error("deleting twice should fail")
		}
	})

	t.Run("List", func(t *testing.T) {
		repo := NewMoveRepository(setupTestDB(t))
		fixtures := []*models.MoveRecord{
			models.NewMoveRecord(0, "a", "2", "left", "right", 2, 500),
			models.NewMoveRecord(0, "a", "6", "right", "left", 3, 500),
			models.NewMoveRecord(0, "b", "2", "right", "left", 4, 500),
		}
		for _, m := range fixtures {
			if err := repo.Create(m); err != nil {
				t.Fatalf("failed to create move: %v", err)
			}
		}

		tc := []struct {
			name     string
			criteria map[string]any
			want     []string
		}{
			{name: "all", criteria: nil, want: []string{"2", "6", "2"}},
			{name: "by session", criteria: map[string]any{"session_id": "a"}, want: []string{"2", "6"}},
			{name: "by item", criteria: map[string]any{"item": "2"}, want: []string{"2", "2"}},
			{name: "limit", criteria: map[string]any{"limit": 1}, want: []string{"2"}},
			{name: "no match", criteria: map[string]any{"session_id": "c"}, want: nil},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := repo.List(tt.criteria)
				if err != nil {
					t.Fatalf("List() error = %v", err)
				}
				if len(got) != len(tt.want) {
					t.Fatalf("List() returned %d moves, want %d", len(got), len(tt.want))
				}
				for i, m := range got {
					if m.Item() != tt.want[i] {
						t.Errorf("List()[%d] = %s, want %s", i, m.Item(), tt.want[i])
					}
					if i > 0 && m.Sequence() <= got[i-1].Sequence() {
						t.Errorf("List() not ordered by sequence")
					}
				}
			})
		}
	})
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	s := models.NewSession(models.SessionReplay, []string{"1", "2"}, []string{"3"})
	if err := repo.Create(s); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	got, err := repo.Get(s.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.Kind != models.SessionReplay || len(got.Left) != 2 || got.Right[0] != "3" {
		t.Errorf("unexpected session %+v", got)
	}

	all, err := repo.List()
	if err != nil || len(all) != 1 {
		t.Fatalf("List() = %v, %v", all, err)
	}

	bad := &models.Session{ID: "x", Kind: "weird"}
	if err := repo.Create(bad); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, shared.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMoveJournal(t *testing.T) {
	repo := NewMoveRepository(setupTestDB(t))
	journal := NewMoveJournal(repo, "session-1", 500, shared.NewLogger(nil))

	c, err := swap.New([]string{"1", "2"}, []string{"3"}, swap.WithObserver(journal.Observe))
	if err != nil {
		t.Fatalf("swap.New() error = %v", err)
	}

	c.RequestMove("2")
	tk, _ := c.Commit()
	c.Settle(tk.Gen)
	c.RequestMove("3")
	c.Commit()

	moves, err := repo.List(map[string]any{"session_id": journal.SessionID()})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("expected 2 journaled moves, got %d", len(moves))
	}
	if moves[0].Item() != "2" || moves[0].ToSide() != "right" || moves[0].Position() != 1 {
		t.Errorf("first move = %s %s %d", moves[0].Item(), moves[0].ToSide(), moves[0].Position())
	}
	if moves[1].Item() != "3" || moves[1].ToSide() != "left" || moves[1].Position() != 1 {
		t.Errorf("second move = %s %s %d", moves[1].Item(), moves[1].ToSide(), moves[1].Position())
	}
}
