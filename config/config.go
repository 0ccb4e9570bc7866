// Package config loads the evaluation runner's settings from a YAML file and DEEPSEA_ environment variables.
package config

import (
	"fmt"
	"os"

	"deepsea/agent"
	"deepsea/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "DEEPSEA_"

type Config struct {
	Name       string   `yaml:"name" env:"NAME"`
	Trials     int      `yaml:"trials" env:"TRIALS"`
	Seed       uint64   `yaml:"seed" env:"SEED"` // 0 draws a fresh seed
	Workers    int      `yaml:"workers" env:"WORKERS"`
	Oxygen     int      `yaml:"oxygen" env:"OXYGEN"`
	Strategies []string `yaml:"strategies" env:"STRATEGIES" envSeparator:","`
	OutputDir  string   `yaml:"output_dir" env:"OUTPUT_DIR"` // Empty skips writing records
	LogLevel   string   `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default pits the heuristic agent against the probability-aware one.
func Default() Config {
	return Config{
		Name:       "evaluation",
		Trials:     meta.DEFAULT_TRIALS,
		Workers:    1,
		Oxygen:     meta.DEFAULT_OXYGEN,
		Strategies: []string{string(agent.HeuristicKind), string(agent.ProbabilityKind)},
		LogLevel:   "info",
	}
}

// Load starts from Default, applies the YAML file at path (if any), then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Oxygen <= 0 {
		return fmt.Errorf("oxygen must be positive, got %d", c.Oxygen)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Kinds() ([]agent.Kind, error) {
	return agent.ParseKinds(c.Strategies)
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
