package interaction

import (
	"fmt"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/pkg/generic"
	"github.com/zeusync/interactionsdk/pkg/sequence"
)

var _ Service = (*InteractionService)(nil)

// ServiceOption configures an InteractionService.
type ServiceOption func(*ServiceConfig)

// ServiceConfig holds the collaborators of an InteractionService.
type ServiceConfig struct {
	Logger    log.Log          // Logger used for registry and lifecycle messages
	Bus       bus.EventBus     // Optional bus receiving interaction notifications
	Registrar RegistrarFactory // Builds the registrar started by Initialize
}

// WithLogger sets the service logger.
func WithLogger(logger log.Log) ServiceOption {
	return func(c *ServiceConfig) { c.Logger = logger }
}

// WithBus sets the event bus notifications are published to.
func WithBus(b bus.EventBus) ServiceOption {
	return func(c *ServiceConfig) { c.Bus = b }
}

// WithRegistrar sets the factory Initialize uses to build the registrar.
func WithRegistrar(factory RegistrarFactory) ServiceOption {
	return func(c *ServiceConfig) { c.Registrar = factory }
}

// InteractionService is the process-wide registry of interactors and
// interactables. It is owned by the application, passed explicitly to every
// component that needs it and must only be used from the loop goroutine.
type InteractionService struct {
	interactors   *generic.OrderedMap[input.SourceID, Interactor]
	interactables *generic.OrderedMap[scene.ObjectID, Interactable]

	nearEnabled  bool
	farEnabled   bool
	selectAction input.Action
	grabAction   input.Action

	bus              bus.EventBus
	registrarFactory RegistrarFactory
	registrar        Registrar
	logger           log.Log
}

// NewService creates an InteractionService from a profile.
func NewService(profile ServiceProfile, opts ...ServiceOption) *InteractionService {
	cfg := ServiceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	return &InteractionService{
		interactors:      generic.NewOrderedMap[input.SourceID, Interactor](),
		interactables:    generic.NewOrderedMap[scene.ObjectID, Interactable](),
		nearEnabled:      profile.NearInteraction,
		farEnabled:       profile.FarInteraction,
		selectAction:     profile.SelectAction,
		grabAction:       profile.GrabAction,
		bus:              cfg.Bus,
		registrarFactory: cfg.Registrar,
		logger:           cfg.Logger.With(log.Component("interaction.service")),
	}
}

// Initialize starts the registrar for the given input system.
func (s *InteractionService) Initialize(system input.System) error {
	if system == nil {
		s.logger.Error("interaction service requires an input system")
		return ErrInputSystemUnavailable
	}
	if s.registrar != nil {
		return ErrAlreadyInitialized
	}
	if s.registrarFactory == nil {
		s.logger.Warn("no registrar configured, interactors must be registered manually")
		return nil
	}
	r, err := s.registrarFactory(s, system)
	if err != nil {
		return fmt.Errorf("create registrar: %w", err)
	}
	if err = r.Start(); err != nil {
		return fmt.Errorf("start registrar: %w", err)
	}
	s.registrar = r
	s.logger.Info("interaction service initialized",
		log.Bool("near", s.nearEnabled),
		log.Bool("far", s.farEnabled),
		log.Stringer("select_action", s.selectAction),
		log.Stringer("grab_action", s.grabAction),
	)
	return nil
}

// Destroy tears down the registrar and empties both registries.
func (s *InteractionService) Destroy() {
	if s.registrar != nil {
		s.registrar.Destroy()
		s.registrar = nil
	}
	for _, interactor := range s.interactors.Snapshot() {
		s.RemoveInteractor(interactor)
	}
	for _, interactable := range s.interactables.Snapshot() {
		s.RemoveInteractable(interactable)
	}
	s.logger.Info("interaction service destroyed")
}

func (s *InteractionService) AddInteractor(interactor Interactor) {
	if interactor == nil {
		return
	}
	if !s.interactors.Ensure(interactor.SourceID(), interactor) {
		return
	}
	s.logger.Debug("interactor added", log.Uint32("source", uint32(interactor.SourceID())))
	s.Publish(bus.NewEvent(EventInteractorAdded, "interaction.service", interactorChanged(interactor)))
}

// RemoveInteractor unregisters the interactor and purges it from every
// interactable's focus and selection sets.
func (s *InteractionService) RemoveInteractor(interactor Interactor) {
	if interactor == nil {
		return
	}
	registered, ok := s.interactors.Get(interactor.SourceID())
	if !ok || registered != interactor {
		return
	}
	for _, interactable := range s.interactables.Snapshot() {
		interactable.OnUnfocused(interactor)
	}
	s.interactors.Delete(interactor.SourceID())
	s.logger.Debug("interactor removed", log.Uint32("source", uint32(interactor.SourceID())))
	s.Publish(bus.NewEvent(EventInteractorRemoved, "interaction.service", interactorChanged(interactor)))
}

func (s *InteractionService) AddInteractable(interactable Interactable) {
	if interactable == nil {
		return
	}
	if !s.interactables.Ensure(interactable.ObjectID(), interactable) {
		return
	}
	s.logger.Debug("interactable added", log.Stringer("object", interactable.ObjectID()), log.String("label", interactable.Label()))
	s.Publish(bus.NewEvent(EventInteractableAdded, "interaction.service", interactableChanged(interactable)))
}

func (s *InteractionService) RemoveInteractable(interactable Interactable) {
	if interactable == nil {
		return
	}
	registered, ok := s.interactables.Get(interactable.ObjectID())
	if !ok || registered != interactable {
		return
	}
	s.interactables.Delete(interactable.ObjectID())
	s.logger.Debug("interactable removed", log.Stringer("object", interactable.ObjectID()))
	s.Publish(bus.NewEvent(EventInteractableRemoved, "interaction.service", interactableChanged(interactable)))
}

func (s *InteractionService) Interactors() []Interactor { return s.interactors.Snapshot() }

func (s *InteractionService) Interactables() []Interactable { return s.interactables.Snapshot() }

func (s *InteractionService) FindInteractor(id input.SourceID) (Interactor, bool) {
	return s.interactors.Get(id)
}

func (s *InteractionService) FindInteractable(id scene.ObjectID) (Interactable, bool) {
	if id.IsNil() {
		return nil, false
	}
	return s.interactables.Get(id)
}

func (s *InteractionService) FindInteractablesByLabel(label string) []Interactable {
	if label == "" {
		return []Interactable{}
	}
	return sequence.FromSeq(s.interactables.Values()).
		Filter(func(i Interactable) bool { return i.Label() == label }).
		Collect()
}

func (s *InteractionService) NearInteractionEnabled() bool { return s.nearEnabled }

func (s *InteractionService) FarInteractionEnabled() bool { return s.farEnabled }

func (s *InteractionService) SetNearInteractionEnabled(on bool) { s.nearEnabled = on }

func (s *InteractionService) SetFarInteractionEnabled(on bool) { s.farEnabled = on }

func (s *InteractionService) SelectAction() input.Action { return s.selectAction }

func (s *InteractionService) GrabAction() input.Action { return s.grabAction }

func (s *InteractionService) Publish(event bus.Event) {
	if s.bus == nil || event == nil {
		return
	}
	if err := s.bus.Publish(event); err != nil {
		s.logger.Warn("event handler failed", log.String("event", event.Type()), log.Error(err))
	}
}

func interactorChanged(i Interactor) InteractorChanged {
	ev := InteractorChanged{Source: i.SourceID()}
	if src := i.InputSource(); src != nil {
		ev.Name = src.Name()
	}
	return ev
}

func interactableChanged(i Interactable) InteractableChanged {
	ev := InteractableChanged{Object: i.ObjectID(), Label: i.Label()}
	if obj := i.Object(); obj != nil {
		ev.Name = obj.Name
	}
	return ev
}
