package interactables

import (
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
)

// Option configures an Interactable.
type Option func(*Config)

// Config holds the static attributes of an Interactable.
type Config struct {
	Label           string               // Optional classification key, not unique
	InputAction     input.Action         // Action that selects the interactable directly
	NearCapable     bool                 // Object carries a near interaction marker
	FarCapable      bool                 // Object carries a far interaction marker
	NearInteraction bool                 // Near interaction enabled at startup
	FarInteraction  bool                 // Far interaction enabled at startup
	Actions         []interaction.Action // Attached in order, dispatched in order
	Router          *input.Router        // Routes input events to the interactable
	Logger          log.Log
}

func defaultConfig() Config {
	return Config{
		InputAction:     input.ActionNone,
		NearCapable:     true,
		FarCapable:      true,
		NearInteraction: true,
		FarInteraction:  true,
	}
}

func WithLabel(label string) Option {
	return func(c *Config) { c.Label = label }
}

// WithInputAction makes the interactable select itself on input events of action.
func WithInputAction(action input.Action) Option {
	return func(c *Config) { c.InputAction = action }
}

// WithCapabilities sets the near and far markers of the object.
func WithCapabilities(near, far bool) Option {
	return func(c *Config) {
		c.NearCapable = near
		c.FarCapable = far
	}
}

func WithNearInteraction(enabled bool) Option {
	return func(c *Config) { c.NearInteraction = enabled }
}

func WithFarInteraction(enabled bool) Option {
	return func(c *Config) { c.FarInteraction = enabled }
}

// WithActions appends actions; they receive state changes in the given order.
func WithActions(actions ...interaction.Action) Option {
	return func(c *Config) { c.Actions = append(c.Actions, actions...) }
}

func WithRouter(router *input.Router) Option {
	return func(c *Config) { c.Router = router }
}

func WithLogger(logger log.Log) Option {
	return func(c *Config) { c.Logger = logger }
}
