package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/desertthunder/cardswap/internal/swap"
	"github.com/desertthunder/cardswap/internal/ui"
	"github.com/urfave/cli/v3"
)

// Cards launches the interactive card swap.
func (r *Runner) Cards(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	left, right := r.board(cmd, config)

	if err := r.useFileLogger(config); err != nil {
		return err
	}

	opts := []swap.Option{
		swap.WithSettleDelay(config.Animation.SettleDelay()),
		swap.WithLogger(r.logger),
	}
	if !cmd.Bool("no-journal") {
		db, journal, err := r.openJournal(config, models.SessionInteractive, left, right)
		if err != nil {
			return fmt.Errorf("failed to open move journal: %w", err)
		}
		defer db.Close()
		opts = append(opts, swap.WithObserver(journal.Observe))
	}

	coord, err := swap.New(left, right, opts...)
	if err != nil {
		return err
	}

	model := ui.NewCardsModel(coord, ui.CardsOptions{
		Spring: springParams(config),
		FPS:    config.Animation.FPS,
		Logger: r.logger,
	})
	return r.runProgram(ctx, model)
}

// Reparent launches the reparenting demo.
func (r *Runner) Reparent(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if err := r.useFileLogger(config); err != nil {
		return err
	}

	model := ui.NewReparentModel(springParams(config), config.Animation.FPS, r.logger)
	return r.runProgram(ctx, model)
}

// useFileLogger redirects logs to the configured file to avoid interfering with TUI rendering
func (r *Runner) useFileLogger(config *shared.Config) error {
	fileLogger, err := shared.NewFileLogger(config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	if level, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(fileLogger, level)
	}
	r.SetLogger(fileLogger)
	return nil
}

func (r *Runner) runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
