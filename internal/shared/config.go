package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Board     BoardConfig     `toml:"board"`
	Animation AnimationConfig `toml:"animation"`
	Database  DatabaseConfig  `toml:"database"`
	Log       LogConfig       `toml:"log"`
}

// BoardConfig holds the initial membership of the two card rows.
type BoardConfig struct {
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
}

// AnimationConfig contains the settle delay and spring parameters.
type AnimationConfig struct {
	SettleDelayMS int     `toml:"settle_delay_ms"`
	Stiffness     float64 `toml:"stiffness"`
	Damping       float64 `toml:"damping"`
	Mass          float64 `toml:"mass"`
	FPS           int     `toml:"fps"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LogConfig controls log verbosity and the file used while a TUI owns the terminal.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// SettleDelay returns the configured settle delay as a [time.Duration].
func (a AnimationConfig) SettleDelay() time.Duration {
	return time.Duration(a.SettleDelayMS) * time.Millisecond
}

// Validate reports configuration values that cannot drive the animation.
func (c *Config) Validate() error {
	if c.Animation.SettleDelayMS <= 0 {
		return fmt.Errorf("%w: animation.settle_delay_ms must be positive", ErrInvalidConfig)
	}
	if c.Animation.Stiffness <= 0 || c.Animation.Mass <= 0 {
		return fmt.Errorf("%w: animation.stiffness and animation.mass must be positive", ErrInvalidConfig)
	}
	if c.Animation.Damping < 0 {
		return fmt.Errorf("%w: animation.damping must not be negative", ErrInvalidConfig)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("%w: animation.fps must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
