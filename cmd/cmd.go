// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func boardFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "left",
			Usage: "Comma separated ids of the top row (default from config)",
		},
		&cli.StringFlag{
			Name:  "right",
			Usage: "Comma separated ids of the bottom row (default from config)",
		},
	}
}

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
			{
				Name:  "config",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// cardsCommand launches the card swap TUI.
func cardsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "cards",
		Aliases: []string{"layout-id", "ui"},
		Usage:   "Click cards to fly them between two rows",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "no-journal",
				Usage: "Do not record moves in the database",
			},
		}, boardFlags()...),
		Action: r.Cards,
	}
}

// reparentCommand launches the reparenting TUI.
func reparentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "reparent",
		Usage:  "Toggle an element between a nested and a flat layout",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Reparent,
	}
}

// replayCommand runs scripted moves without a terminal UI.
func replayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "Replay a list of moves headlessly",
		ArgsUsage: "<id>[,<id>...]",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Requests per second (0 for unpaced)",
			},
			&cli.DurationFlag{
				Name:  "settle",
				Usage: "Settle delay (default from config)",
			},
			&cli.BoolFlag{
				Name:  "no-wait",
				Usage: "Do not wait for a flight to land before the next request",
			},
			&cli.BoolFlag{
				Name:  "no-journal",
				Usage: "Do not record moves in the database",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the result as JSON",
			},
		}, boardFlags()...),
		Action: r.Replay,
	}
}

// historyCommand prints or exports the move journal.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded moves",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "session",
				Usage: "Only show moves from this session",
			},
			&cli.StringFlag{
				Name:  "item",
				Usage: "Only show moves of this card",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of moves to show",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, csv, markdown, json)",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the export to a file",
			},
			&cli.BoolFlag{
				Name:  "sessions",
				Usage: "List sessions instead of moves",
			},
		},
		Action: r.History,
	}
}
