package config

import (
	"errors"
	"fmt"
	"os"

	"dicegrid/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Game     GameConfig     `yaml:"game"`
	Log      LogConfig      `yaml:"log"`
	Simulate SimulateConfig `yaml:"simulate"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"DICEGRID_ADDR"`
}

// GameConfig.Seed fixes dice draws; zero picks a time based seed.
type GameConfig struct {
	Rounds int    `yaml:"rounds" env:"DICEGRID_ROUNDS"`
	Seed   uint64 `yaml:"seed"   env:"DICEGRID_SEED"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"DICEGRID_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"DICEGRID_LOG_PRETTY"`
}

// SimulateConfig.Strategies are paired up against each other, every pair in both
// seat orders.
type SimulateConfig struct {
	Games      int      `yaml:"games"      env:"DICEGRID_GAMES"`
	OutputDir  string   `yaml:"output_dir" env:"DICEGRID_OUTPUT_DIR"`
	Strategies []string `yaml:"strategies" env:"DICEGRID_STRATEGIES" envSeparator:","`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: meta.DEFAULT_ADDR},
		Game:   GameConfig{Rounds: meta.DEFAULT_ROUNDS},
		Log:    LogConfig{Level: "info", Pretty: true},
		Simulate: SimulateConfig{
			Games:      meta.DEFAULT_GAMES,
			OutputDir:  "experiments",
			Strategies: []string{"firstfit", "random"},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides c with the DICEGRID_* variables that are set. Unset variables
// leave the current value alone.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("%w: parse env: %v", ErrInvalidConfig, err)
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Game.Rounds < 0 {
		return fmt.Errorf("%w: game.rounds must not be negative", ErrInvalidConfig)
	}
	if c.Simulate.Games < 0 {
		return fmt.Errorf("%w: simulate.games must not be negative", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.Log.Level)
}
