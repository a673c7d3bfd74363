package interactors

import (
	"fmt"

	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/pkg/generic"
)

var (
	_ interaction.Registrar    = (*Registrar)(nil)
	_ input.SourceStateHandler = (*Registrar)(nil)
)

type destroyer interface {
	Destroy()
}

// Registrar creates an interactor for every detected input source and
// destroys it when the source is lost. Hand-tracked controllers get a
// HandControllerInteractor, other controllers a ControllerInteractor and
// sources without a controller a generic Interactor.
type Registrar struct {
	service interaction.Service
	input   input.System
	cfg     Config
	logger  log.Log
	created *generic.OrderedMap[input.SourceID, interaction.Interactor]
	started bool
}

func NewRegistrar(svc interaction.Service, system input.System, opts ...Option) (*Registrar, error) {
	cfg := buildConfig(opts)
	logger := cfg.Logger.With(log.Component("registrar"))
	if svc == nil {
		logger.Error("registrar requires the interaction service")
		return nil, interaction.ErrServiceUnavailable
	}
	if system == nil {
		logger.Error("registrar requires the input system")
		return nil, interaction.ErrInputSystemUnavailable
	}
	return &Registrar{
		service: svc,
		input:   system,
		cfg:     cfg,
		logger:  logger,
		created: generic.NewOrderedMap[input.SourceID, interaction.Interactor](),
	}, nil
}

// NewRegistrarFactory adapts NewRegistrar for interaction.WithRegistrar.
func NewRegistrarFactory(opts ...Option) interaction.RegistrarFactory {
	return func(svc interaction.Service, system input.System) (interaction.Registrar, error) {
		return NewRegistrar(svc, system, opts...)
	}
}

// Start subscribes to source notifications and registers every source the
// input system already knows about.
func (r *Registrar) Start() error {
	if r.started {
		return nil
	}
	r.started = true
	r.input.AddSourceStateHandler(r)
	for _, source := range r.input.DetectedSources() {
		r.register(source)
	}
	r.logger.Info("registrar started", log.Int("interactors", len(r.service.Interactors())))
	return nil
}

// Destroy unsubscribes and destroys every interactor the registrar created.
func (r *Registrar) Destroy() {
	if !r.started {
		return
	}
	r.started = false
	r.input.RemoveSourceStateHandler(r)
	for _, interactor := range r.created.Snapshot() {
		r.destroy(interactor)
	}
	r.logger.Info("registrar destroyed")
}

func (r *Registrar) OnSourceDetected(e input.SourceStateEvent) {
	r.register(e.Source)
}

// OnSourceLost destroys the interactor created for the lost source.
// Interactors registered by anyone else are left alone.
func (r *Registrar) OnSourceLost(e input.SourceStateEvent) {
	if e.Source == nil {
		return
	}
	interactor, ok := r.created.Get(e.Source.ID())
	if !ok {
		return
	}
	r.destroy(interactor)
}

func (r *Registrar) register(source input.Source) {
	if source == nil {
		return
	}
	if _, ok := r.service.FindInteractor(source.ID()); ok {
		return
	}

	var (
		interactor interaction.Interactor
		err        error
	)
	if controller, ok := r.input.TryGetController(source); ok {
		if controller.HandTracked() {
			interactor, err = NewHandController(r.service, controller, WithLogger(r.cfg.Logger))
		} else {
			interactor, err = NewController(r.service, controller, WithLogger(r.cfg.Logger))
		}
	} else {
		interactor, err = New(r.service, source, WithLogger(r.cfg.Logger))
	}
	if err != nil {
		r.logger.Error("create interactor", log.String("source", source.Name()), log.Error(err))
		return
	}
	r.created.Set(source.ID(), interactor)
	r.logger.Debug("interactor created",
		log.String("source", source.Name()),
		log.String("type", fmt.Sprintf("%T", interactor)),
	)
}

// Created returns the interactors created by the registrar that are still alive.
func (r *Registrar) Created() []interaction.Interactor { return r.created.Snapshot() }

// destroy detaches a controller interactor from its controller or discards a
// generic one; both end with the interactor leaving the registry.
func (r *Registrar) destroy(interactor interaction.Interactor) {
	r.created.Delete(interactor.SourceID())
	if d, ok := interactor.(destroyer); ok {
		d.Destroy()
		return
	}
	r.service.RemoveInteractor(interactor)
}
