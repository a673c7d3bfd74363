// Package config loads the sandbox application configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/system"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Logging     log.Config                 `yaml:"logging"`
	Interaction interaction.ServiceProfile `yaml:"interaction"`
	Loop        LoopConfig                 `yaml:"loop"`
	Trace       TraceConfig                `yaml:"trace"`
	Scene       string                     `yaml:"scene"` // path to the scene description, relative to the config file
}

type LoopConfig struct {
	TickRate int  `yaml:"tick_rate"` // ticks per second
	Linger   bool `yaml:"linger"`    // keep ticking after the script finished
}

type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used for every key the file leaves out.
func Default() *Config {
	return &Config{
		Logging:     log.Config{Level: "info", Encoding: "console"},
		Interaction: interaction.DefaultProfile(),
		Loop:        LoopConfig{TickRate: system.DefaultTickRate},
		Trace:       TraceConfig{Path: "interaction.trace"},
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields Parse cannot check structurally.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Encoding {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log encoding %q", c.Logging.Encoding))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Trace.Enabled && c.Trace.Path == "" {
		errs = append(errs, errors.New("trace.path is required when tracing is enabled"))
	}
	sel, grab := c.Interaction.SelectAction, c.Interaction.GrabAction
	if !sel.IsNone() && sel.Matches(grab) {
		errs = append(errs, fmt.Errorf("select and grab share input action %d", sel.ID))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
