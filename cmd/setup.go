package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/repositories"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	versions, err := shared.AppliedVersions(db)
	if err != nil {
		return err
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	r.writePlain("✓ Database ready at %s (migrations: %v)\n", config.Database.Path, versions)
	return nil
}

// SetupRollback reverts the most recently applied migration.
func (r *Runner) SetupRollback(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RollbackMigration(db); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	versions, err := shared.AppliedVersions(db)
	if err != nil {
		return err
	}
	r.logger.Info("migration rolled back", "remaining", versions)
	r.writePlain("✓ Rolled back; applied migrations: %v\n", versions)
	return nil
}

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Wrote %s\n", path)
	return nil
}

// openJournal opens the configured database and starts a journal session for the given rows.
func (r *Runner) openJournal(config *shared.Config, kind models.SessionKind, left, right []string) (*sql.DB, *repositories.MoveJournal, error) {
	db, err := shared.OpenDatabase(config.Database)
	if err != nil {
		return nil, nil, err
	}

	session := models.NewSession(kind, left, right)
	if err := repositories.NewSessionRepository(db).Create(session); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger := shared.WithLogger(r.logger, "session", session.ID)
	journal := repositories.NewMoveJournal(repositories.NewMoveRepository(db), session.ID, config.Animation.SettleDelayMS, logger)
	r.logger.Debug("journal session started", "session", session.ID, "kind", kind)
	return db, journal, nil
}
