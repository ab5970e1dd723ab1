// Package config holds the run configuration of the mlp command.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Trackers accepted by Config.Tracker.
const (
	TrackerRMSE  = "rmse"
	TrackerError = "error"
	TrackerNone  = "none"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Task          string  `yaml:"task"`            // Built-in target function, or "student"
	Sizes         []int   `yaml:"sizes"`           // Layer sizes of the trained network
	Samples       int     `yaml:"samples"`         // Training set size
	Epochs        int     `yaml:"epochs"`          // Full passes over the training set
	MiniBatchSize int     `yaml:"mini_batch_size"` // Samples per update
	Eta           float64 `yaml:"eta"`             // Learning rate
	Seed          uint64  `yaml:"seed"`            // 0 picks a random seed
	LogEvery      int     `yaml:"log_every"`       // Tracker period in mini-batches
	Tracker       string  `yaml:"tracker"`         // rmse, error or none
	Workers       int     `yaml:"workers"`         // 0 uses every core
}

// Overrides captures CLI supplied values. Zero values leave the config
// untouched.
type Overrides struct {
	Task          string
	Sizes         []int
	Samples       int
	Epochs        int
	MiniBatchSize int
	Eta           float64
	Seed          uint64
	LogEvery      int
	Tracker       string
	Workers       int
}

// Default returns the configuration of the x² fitting experiment.
func Default() *Config {
	return &Config{
		Task:          "square",
		Sizes:         []int{1, 4, 1},
		Samples:       1000,
		Epochs:        1000,
		MiniBatchSize: 20,
		Eta:           10,
		LogEvery:      1000,
		Tracker:       TrackerRMSE,
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Task != "" {
		c.Task = o.Task
	}
	if len(o.Sizes) > 0 {
		c.Sizes = slices.Clone(o.Sizes)
	}
	if o.Samples > 0 {
		c.Samples = o.Samples
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.MiniBatchSize > 0 {
		c.MiniBatchSize = o.MiniBatchSize
	}
	if o.Eta != 0 {
		c.Eta = o.Eta
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.Tracker != "" {
		c.Tracker = o.Tracker
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Task == "" {
		return errors.New("task must be set")
	}
	if len(c.Sizes) < 2 {
		return fmt.Errorf("sizes must list at least 2 layers (got %v)", c.Sizes)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.MiniBatchSize <= 0 {
		return fmt.Errorf("mini_batch_size must be > 0 (got %d)", c.MiniBatchSize)
	}
	if c.Samples%c.MiniBatchSize != 0 {
		return fmt.Errorf("samples (%d) must be a multiple of mini_batch_size (%d)", c.Samples, c.MiniBatchSize)
	}
	if c.Eta <= 0 {
		return fmt.Errorf("eta must be > 0 (got %g)", c.Eta)
	}
	switch c.Tracker {
	case TrackerRMSE, TrackerError, TrackerNone:
	default:
		return fmt.Errorf("tracker must be one of %s, %s, %s (got %q)", TrackerRMSE, TrackerError, TrackerNone, c.Tracker)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 100
	}
	return nil
}
