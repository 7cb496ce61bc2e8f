package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/motion"
	"github.com/desertthunder/cardswap/internal/shared"
	"github.com/desertthunder/cardswap/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.ReplayEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		engine:     tasks.NewReplayEngine(opts.Logger),
	}
}

// SetLogger replaces the logger used by the runner and its replay engine.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	r.engine = tasks.NewReplayEngine(l)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, cardsCommand, reparentCommand, replayCommand, historyCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig returns the config at path, falling back to the runner's config when path is
// empty, is the file already loaded at startup or does not exist.
func (r *Runner) loadConfig(path string) (*shared.Config, error) {
	if path == "" || path == r.configPath {
		return r.config, nil
	}
	if _, err := os.Stat(path); err != nil {
		r.logger.Debug("config file not found, using loaded config", "path", path)
		return r.config, nil
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// board resolves the starting rows from the --left and --right flags, defaulting to the config.
func (r *Runner) board(cmd *cli.Command, config *shared.Config) (left, right []string) {
	left, right = config.Board.Left, config.Board.Right
	if s := cmd.String("left"); s != "" {
		left = shared.SplitItems(s)
	}
	if s := cmd.String("right"); s != "" {
		right = shared.SplitItems(s)
	}
	return left, right
}

func springParams(config *shared.Config) motion.SpringParams {
	return motion.SpringParams{
		Stiffness: config.Animation.Stiffness,
		Damping:   config.Animation.Damping,
		Mass:      config.Animation.Mass,
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
