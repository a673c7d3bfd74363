// Package interactables implements the interactable state machine and the
// select and grab input components that drive it.
package interactables

import (
	"fmt"
	"slices"
	"time"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/pkg/generic"
)

var (
	_ interaction.Interactable = (*Interactable)(nil)
	_ interaction.Updater      = (*Interactable)(nil)
	_ input.Handler            = (*Interactable)(nil)
)

// StateListener observes every state assignment of an Interactable.
type StateListener func(owner *Interactable, state interaction.State)

// Interactable aggregates focus and selection of any number of interactors
// into one interaction.State.
//
// State is Selected while any interactor selects the object, Focused while
// any interactor focuses it and none selects it, and Normal otherwise. Every
// state assignment, including a repeated one, publishes
// interaction.EventStateChanged, calls the listeners and then dispatches
// OnStateChanged to the attached actions in attachment order, all before the
// triggering call returns.
type Interactable struct {
	object  *scene.Object
	service interaction.Service
	router  *input.Router
	logger  log.Log

	label       string
	inputAction input.Action
	nearCapable bool
	farCapable  bool
	near        bool
	far         bool

	enabled   bool
	destroyed bool

	focusing  *generic.OrderedMap[input.SourceID, interaction.Interactor]
	selecting *generic.OrderedMap[input.SourceID, interaction.Interactor]
	state     interaction.State

	actions   []interaction.Action
	listeners []StateListener
}

// New creates an interactable for obj, attaches its actions and enables it,
// which registers it with svc.
func New(svc interaction.Service, obj *scene.Object, opts ...Option) (*Interactable, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if obj == nil {
		return nil, ErrNilObject
	}
	logger := cfg.Logger.With(log.Component("interactable"), log.String("object", obj.Name))
	if svc == nil {
		logger.Error("interactable requires the interaction service")
		return nil, fmt.Errorf("interactable %q: %w", obj.Name, interaction.ErrServiceUnavailable)
	}

	i := &Interactable{
		object:      obj,
		service:     svc,
		router:      cfg.Router,
		logger:      logger,
		label:       cfg.Label,
		inputAction: cfg.InputAction,
		nearCapable: cfg.NearCapable,
		farCapable:  cfg.FarCapable,
		near:        cfg.NearInteraction,
		far:         cfg.FarInteraction,
		focusing:    generic.NewOrderedMap[input.SourceID, interaction.Interactor](),
		selecting:   generic.NewOrderedMap[input.SourceID, interaction.Interactor](),
	}
	for _, a := range cfg.Actions {
		if err := i.AttachAction(a); err != nil {
			return nil, err
		}
	}
	i.Enable()
	return i, nil
}

// AttachAction binds a to the interactable. Actions are dispatched in attachment order.
func (i *Interactable) AttachAction(a interaction.Action) error {
	if a == nil {
		return nil
	}
	if err := a.Attach(i); err != nil {
		return fmt.Errorf("interactable %q: attach action %T: %w", i.object.Name, a, err)
	}
	i.actions = append(i.actions, a)
	return nil
}

func (i *Interactable) Actions() []interaction.Action { return slices.Clone(i.actions) }

// AddStateListener registers fn for every subsequent state assignment.
func (i *Interactable) AddStateListener(fn StateListener) {
	if fn != nil {
		i.listeners = append(i.listeners, fn)
	}
}

func (i *Interactable) ObjectID() scene.ObjectID { return i.object.ID }

func (i *Interactable) Object() *scene.Object { return i.object }

func (i *Interactable) Name() string { return i.object.Name }

func (i *Interactable) Label() string { return i.label }

func (i *Interactable) SetLabel(label string) { i.label = label }

func (i *Interactable) InputAction() input.Action { return i.inputAction }

func (i *Interactable) NearCapable() bool { return i.nearCapable }

func (i *Interactable) FarCapable() bool { return i.farCapable }

func (i *Interactable) SetNearInteraction(enabled bool) { i.near = enabled }

func (i *Interactable) SetFarInteraction(enabled bool) { i.far = enabled }

func (i *Interactable) NearInteractionEnabled() bool {
	return i.service.NearInteractionEnabled() && i.near && i.nearCapable
}

func (i *Interactable) FarInteractionEnabled() bool {
	return i.service.FarInteractionEnabled() && i.far && i.farCapable
}

func (i *Interactable) IsValid() bool {
	return i.enabled && !i.destroyed && (i.NearInteractionEnabled() || i.FarInteractionEnabled())
}

func (i *Interactable) Enabled() bool { return i.enabled }

func (i *Interactable) Destroyed() bool { return i.destroyed }

// Enable registers the interactable and resets its interaction state.
func (i *Interactable) Enable() {
	if i.destroyed || i.enabled {
		return
	}
	i.enabled = true
	i.service.AddInteractable(i)
	if i.router != nil {
		i.router.Attach(i.object.ID, i)
	}
	i.Reset()
}

// Disable unregisters the interactable and drops every focusing and
// selecting interactor, leaving it Normal.
func (i *Interactable) Disable() {
	if !i.enabled {
		return
	}
	i.enabled = false
	if i.router != nil {
		i.router.Detach(i.object.ID, i)
	}
	i.service.RemoveInteractable(i)
	i.Reset()
}

// Destroy disables the interactable for good. Later calls of Enable are ignored.
func (i *Interactable) Destroy() {
	if i.destroyed {
		return
	}
	i.Disable()
	i.destroyed = true
	i.listeners = nil
	i.logger.Debug("interactable destroyed")
}

func (i *Interactable) State() interaction.State { return i.state }

func (i *Interactable) PrimaryInteractor() (interaction.Interactor, bool) {
	_, primary, ok := i.selecting.First()
	return primary, ok
}

func (i *Interactable) Interactors() []interaction.Interactor { return i.selecting.Snapshot() }

func (i *Interactable) FocusingInteractors() []interaction.Interactor { return i.focusing.Snapshot() }

func (i *Interactable) IsFocusedBy(interactor interaction.Interactor) bool {
	return interactor != nil && i.focusing.Has(interactor.SourceID())
}

// IsSelectedBy reports whether interactor currently selects the interactable.
func (i *Interactable) IsSelectedBy(interactor interaction.Interactor) bool {
	return interactor != nil && i.selecting.Has(interactor.SourceID())
}

// OnFocused records interactor as focusing. Selection dominates focus, so a
// selected interactable stays Selected.
func (i *Interactable) OnFocused(interactor interaction.Interactor) {
	if interactor == nil || !i.IsValid() {
		return
	}
	i.focusing.Ensure(interactor.SourceID(), interactor)
	if i.state != interaction.Selected {
		i.setState(interaction.Focused)
	}
}

// OnUnfocused removes interactor from the focusing set. An interactor that
// loses focus also stops selecting. Releases are processed even while the
// interactable is invalid so focus can never get stuck.
func (i *Interactable) OnUnfocused(interactor interaction.Interactor) {
	if interactor == nil {
		return
	}
	if i.focusing.Delete(interactor.SourceID()) && i.focusing.Len() == 0 && i.state == interaction.Focused {
		i.setState(interaction.Normal)
	}
	if i.selecting.Has(interactor.SourceID()) {
		i.OnDeselected(interactor)
	}
}

// OnSelected records interactor as selecting. The first selecting interactor
// stays primary while it is present.
func (i *Interactable) OnSelected(interactor interaction.Interactor) {
	if interactor == nil || !i.IsValid() {
		return
	}
	i.selecting.Ensure(interactor.SourceID(), interactor)
	i.setState(interaction.Selected)
}

// OnDeselected removes interactor from the selecting set. Once nobody selects
// the interactable it falls back to Focused or Normal. When the primary leaves
// while others still select, Selected is assigned again so actions see the
// promoted primary.
func (i *Interactable) OnDeselected(interactor interaction.Interactor) {
	if interactor == nil {
		return
	}
	primary, _, _ := i.selecting.First()
	if !i.selecting.Delete(interactor.SourceID()) {
		return
	}
	if i.selecting.Len() > 0 {
		if primary == interactor.SourceID() {
			i.setState(interaction.Selected)
		}
		return
	}
	if i.focusing.Len() == 0 {
		i.setState(interaction.Normal)
	} else {
		i.setState(interaction.Focused)
	}
}

func (i *Interactable) Reset() {
	i.focusing.Clear()
	i.selecting.Clear()
	i.setState(interaction.Normal)
}

// OnInputDown selects the interactable when the event carries its input action.
func (i *Interactable) OnInputDown(e *input.Event) {
	if e.Used() || !i.inputAction.Matches(e.Action) || !i.IsValid() {
		return
	}
	interactor, ok := i.service.FindInteractor(e.Source.ID())
	if !ok {
		return
	}
	e.Use()
	i.OnSelected(interactor)
}

func (i *Interactable) OnInputUp(e *input.Event) {
	if !i.inputAction.Matches(e.Action) {
		return
	}
	if interactor, ok := i.service.FindInteractor(e.Source.ID()); ok {
		i.OnDeselected(interactor)
	}
}

// Update advances the attached actions that need per-tick work.
func (i *Interactable) Update(dt time.Duration) {
	for _, a := range i.actions {
		if u, ok := a.(interaction.Updater); ok {
			u.Update(dt)
		}
	}
}

func (i *Interactable) setState(state interaction.State) {
	i.state = state
	i.logger.Debug("state changed", log.Stringer("state", state))

	ev := interaction.StateChanged{Object: i.object.ID, Name: i.object.Name, Label: i.label, State: state}
	if primary, ok := i.PrimaryInteractor(); ok {
		ev.Primary = primary.SourceID()
	}
	i.service.Publish(bus.NewEvent(interaction.EventStateChanged, i.object.Name, ev))
	for _, fn := range slices.Clone(i.listeners) {
		fn(i, state)
	}
	for _, a := range i.actions {
		a.OnStateChanged(state)
	}
}
