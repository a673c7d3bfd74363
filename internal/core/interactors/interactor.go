// Package interactors turns input sources into interactors that focus
// interactables, and keeps the registry in sync with the input system.
package interactors

import (
	"fmt"
	"slices"
	"time"

	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/pkg/generic"
)

var (
	_ interaction.Interactor = (*Interactor)(nil)
	_ interaction.Updater    = (*Interactor)(nil)
)

// Option configures interactors and the registrar.
type Option func(*Config)

type Config struct {
	Logger log.Log
}

func WithLogger(logger log.Log) Option {
	return func(c *Config) { c.Logger = logger }
}

func buildConfig(opts []Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	return cfg
}

// Interactor focuses whatever the pointers of its input source target.
// Each pointer tracks its focused interactable on its own, so one interactor
// can focus several interactables at once.
type Interactor struct {
	source  input.Source
	service interaction.Service
	logger  log.Log
	kind    string

	nearCapable bool
	farCapable  bool

	// self is the outermost interactor value; interactables record it.
	self interaction.Interactor

	focused   *generic.OrderedMap[input.PointerID, interaction.Interactable]
	enabled   bool
	destroyed bool
}

// New creates a generic far-only interactor for source and registers it.
func New(svc interaction.Service, source input.Source, opts ...Option) (*Interactor, error) {
	i, err := newInteractor(svc, source, "generic", false, true, buildConfig(opts))
	if err != nil {
		return nil, err
	}
	i.register(i)
	return i, nil
}

func newInteractor(svc interaction.Service, source input.Source, kind string, near, far bool, cfg Config) (*Interactor, error) {
	if source == nil {
		return nil, interaction.ErrNilInputSource
	}
	logger := cfg.Logger.With(
		log.Component("interactor"),
		log.String("kind", kind),
		log.String("source", source.Name()),
	)
	if svc == nil {
		logger.Error("interactor requires the interaction service")
		return nil, fmt.Errorf("interactor %q: %w", source.Name(), interaction.ErrServiceUnavailable)
	}
	return &Interactor{
		source:      source,
		service:     svc,
		logger:      logger,
		kind:        kind,
		nearCapable: near,
		farCapable:  far,
		focused:     generic.NewOrderedMap[input.PointerID, interaction.Interactable](),
		enabled:     true,
	}, nil
}

func (i *Interactor) register(self interaction.Interactor) {
	i.self = self
	i.service.AddInteractor(self)
	i.logger.Debug("interactor registered")
}

func (i *Interactor) InputSource() input.Source { return i.source }

func (i *Interactor) SourceID() input.SourceID { return i.source.ID() }

func (i *Interactor) NearCapable() bool { return i.nearCapable }

func (i *Interactor) FarCapable() bool { return i.farCapable }

// Kind is "generic", "controller" or "hand".
func (i *Interactor) Kind() string { return i.kind }

func (i *Interactor) Enabled() bool { return i.enabled }

func (i *Interactor) Destroyed() bool { return i.destroyed }

// Focused returns the distinct interactables currently focused by any pointer.
func (i *Interactor) Focused() []interaction.Interactable {
	out := make([]interaction.Interactable, 0, i.focused.Len())
	for _, target := range i.focused.All() {
		if !slices.Contains(out, target) {
			out = append(out, target)
		}
	}
	return out
}

// Update scans every pointer once: a pointer that targets a registered
// interactable focuses it, a pointer that lost its target unfocuses the
// interactable it focused before.
func (i *Interactor) Update(time.Duration) {
	if !i.enabled || i.destroyed {
		return
	}
	for _, p := range i.source.Pointers() {
		id := p.ID()
		prev, had := i.focused.Get(id)

		var target interaction.Interactable
		ok := false
		if p.InteractionEnabled() {
			target, ok = i.service.FindInteractable(p.CurrentTarget())
		}

		if !ok {
			if had {
				i.focused.Delete(id)
				i.release(prev)
			}
			continue
		}

		if had && prev != target {
			i.focused.Delete(id)
			i.release(prev)
		}
		// an interactable that was reset since the last scan no longer lists us
		if !had || prev != target || !target.IsFocusedBy(i.self) {
			i.focused.Set(id, target)
			target.OnFocused(i.self)
		}
	}
}

// release unfocuses target unless another pointer still focuses it.
func (i *Interactor) release(target interaction.Interactable) {
	for _, other := range i.focused.All() {
		if other == target {
			return
		}
	}
	target.OnUnfocused(i.self)
}

// Enable resumes focus scanning.
func (i *Interactor) Enable() {
	if !i.destroyed {
		i.enabled = true
	}
}

// Disable stops focus scanning and unfocuses everything still focused.
func (i *Interactor) Disable() {
	if !i.enabled {
		return
	}
	i.enabled = false
	for _, target := range i.Focused() {
		target.OnUnfocused(i.self)
	}
	i.focused.Clear()
}

// Destroy disables the interactor and removes it from the registry.
func (i *Interactor) Destroy() {
	if i.destroyed {
		return
	}
	i.Disable()
	i.destroyed = true
	if i.self != nil {
		i.service.RemoveInteractor(i.self)
	}
	i.logger.Debug("interactor destroyed")
}
