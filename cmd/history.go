package main

import (
	"context"
	"strings"

	"github.com/desertthunder/cardswap/internal/formatter"
	"github.com/desertthunder/cardswap/internal/repositories"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/urfave/cli/v3"
)

// History prints or exports journaled moves.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Bool("sessions") {
		sessions, err := repositories.NewSessionRepository(db).List()
		if err != nil {
			return err
		}
		if format == formatter.FormatJSON {
			return r.writeJSON(sessions, true)
		}
		for _, s := range sessions {
			r.writePlain("%s  %-11s  %s  [%s | %s]\n",
				s.ID, s.Kind, s.StartedAt.Format("2006-01-02 15:04:05"),
				strings.Join(s.Left, " "), strings.Join(s.Right, " "))
		}
		return nil
	}

	moves, err := repositories.NewMoveRepository(db).List(map[string]any{
		"session_id": cmd.String("session"),
		"item":       cmd.String("item"),
		"limit":      cmd.Int("limit"),
	})
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(moves, format, path); err != nil {
			return err
		}
		r.logger.Info("history exported", "path", path, "moves", len(moves), "format", format)
		r.writePlain("✓ Exported %d moves to %s\n", len(moves), path)
		return nil
	}

	data, err := formatter.Export(moves, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}
