package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/desertthunder/cardswap/internal/shared"
	tu "github.com/desertthunder/cardswap/internal/testing"
)

// fastConfig settles in a millisecond and journals to a temp database.
func fastConfig(t *testing.T) *shared.Config {
	t.Helper()
	config := shared.DefaultConfig()
	config.Animation.SettleDelayMS = 1
	config.Database.Path = filepath.Join(t.TempDir(), "cardswap.db")
	return config
}

func TestReplayCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("prints summary", func(t *testing.T) {
		app, output := newTestApp(t, fastConfig(t))
		err := app.Run(ctx, []string{"cardswap", "replay", "--no-journal", "--left", "1,2", "--right", "3", "1"})
		if err != nil {
			t.Fatalf("replay error = %v", err)
		}

		result := output.String()
		for _, want := range []string{"Replay Complete!", "Left:  2\n", "Right: 3 1\n", "Moved: 1  Skipped: 0  Failed: 0"} {
			if !strings.Contains(result, want) {
				t.Errorf("output missing %q:\n%s", want, result)
			}
		}
	})

	t.Run("json output", func(t *testing.T) {
		app, output := newTestApp(t, fastConfig(t))
		err := app.Run(ctx, []string{"cardswap", "replay", "--no-journal", "--json", "2,3", "9"})
		if err != nil {
			t.Fatalf("replay error = %v", err)
		}

		var got replayJSON
		if err := json.Unmarshal(output.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", output.String(), err)
		}
		if got.Accepted != 2 || got.Failed != 1 {
			t.Errorf("accepted = %d, failed = %d", got.Accepted, got.Failed)
		}
		if !slices.Equal(got.Right, []string{"5", "6", "2", "3"}) {
			t.Errorf("right = %v", got.Right)
		}
		if len(got.Steps) != 3 || got.Steps[2].Error == "" {
			t.Errorf("steps = %+v", got.Steps)
		}
		if p := got.Steps[0].Position; p == nil || *p != 2 {
			t.Errorf("first step position = %v", p)
		}
	})

	t.Run("requires moves", func(t *testing.T) {
		app, _ := newTestApp(t, fastConfig(t))
		err := app.Run(ctx, []string{"cardswap", "replay", "--no-journal"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("invalid board", func(t *testing.T) {
		app, _ := newTestApp(t, fastConfig(t))
		err := app.Run(ctx, []string{"cardswap", "replay", "--no-journal", "--left", "1", "--right", "1", "1"})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestHistoryCommand(t *testing.T) {
	ctx := context.Background()
	config := fastConfig(t)

	app, output := newTestApp(t, config)
	if err := app.Run(ctx, []string{"cardswap", "replay", "2,3,6"}); err != nil {
		t.Fatalf("replay error = %v", err)
	}
	if !strings.Contains(output.String(), "Session: ") {
		t.Errorf("expected session id in output:\n%s", output.String())
	}

	t.Run("text", func(t *testing.T) {
		app, output := newTestApp(t, config)
		if err := app.Run(ctx, []string{"cardswap", "history"}); err != nil {
			t.Fatalf("history error = %v", err)
		}
		result := output.String()
		for _, want := range []string{"Moves: 3", "2: left → right", "6: right → left"} {
			if !strings.Contains(result, want) {
				t.Errorf("output missing %q:\n%s", want, result)
			}
		}
	})

	t.Run("filtered csv", func(t *testing.T) {
		app, output := newTestApp(t, config)
		if err := app.Run(ctx, []string{"cardswap", "history", "--item", "3", "--format", "csv"}); err != nil {
			t.Fatalf("history error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(output.String()), "\n")
		if len(lines) != 2 || !strings.HasPrefix(lines[0], "Sequence") {
			t.Errorf("csv = %q", lines)
		}
	})

	t.Run("export to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "moves.md")
		app, output := newTestApp(t, config)
		if err := app.Run(ctx, []string{"cardswap", "history", "--format", "md", "--output", path}); err != nil {
			t.Fatalf("history error = %v", err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(tu.MustReadFile(t, path), "# Move Journal") {
			t.Error("expected markdown export")
		}
		if !strings.Contains(output.String(), "Exported 3 moves") {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("sessions", func(t *testing.T) {
		app, output := newTestApp(t, config)
		if err := app.Run(ctx, []string{"cardswap", "history", "--sessions"}); err != nil {
			t.Fatalf("history error = %v", err)
		}
		if !strings.Contains(output.String(), "replay") || !strings.Contains(output.String(), "1 2 3 4 | 5 6") {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		app, _ := newTestApp(t, config)
		err := app.Run(ctx, []string{"cardswap", "history", "--format", "xml"})
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestSetupCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		app, _ := newTestApp(t, nil)
		if err := app.Run(ctx, []string{"cardswap", "setup", "config", "--output", path}); err != nil {
			t.Fatalf("setup config error = %v", err)
		}
		tu.AssertFileExists(t, path)

		app, _ = newTestApp(t, nil)
		if err := app.Run(ctx, []string{"cardswap", "setup", "config", "--output", path}); err == nil {
			t.Error("expected error when config already exists")
		}
	})

	t.Run("database and rollback", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "custom.toml")
		dbPath := filepath.Join(dir, "journal.db")
		if err := os.WriteFile(configPath, fmt.Appendf(nil, "[database]\npath = %q\n", dbPath), 0644); err != nil {
			t.Fatal(err)
		}

		app, output := newTestApp(t, nil)
		if err := app.Run(ctx, []string{"cardswap", "setup", "database", "--config", configPath}); err != nil {
			t.Fatalf("setup database error = %v", err)
		}
		tu.AssertFileExists(t, dbPath)
		if !strings.Contains(output.String(), "migrations: [0 1]") {
			t.Errorf("output = %q", output.String())
		}

		app, output = newTestApp(t, nil)
		if err := app.Run(ctx, []string{"cardswap", "setup", "rollback", "--config", configPath}); err != nil {
			t.Fatalf("setup rollback error = %v", err)
		}
		if !strings.Contains(output.String(), "applied migrations: [0]") {
			t.Errorf("output = %q", output.String())
		}
	})
}
