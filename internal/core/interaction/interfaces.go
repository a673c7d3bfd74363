// Package interaction defines the interaction state model shared by
// interactors, interactables and actions, and the registry that tracks them.
package interaction

import (
	"time"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

// Interactor represents one active input source. Its identity is the
// identity of the input source it was created for.
type Interactor interface {
	InputSource() input.Source
	SourceID() input.SourceID

	NearCapable() bool
	FarCapable() bool
}

// ControllerInteractor is an Interactor backed by a tracked controller.
type ControllerInteractor interface {
	Interactor
	Controller() input.Controller
}

// Interactable is a scene object that aggregates focus and selection from
// any number of interactors into a single State.
type Interactable interface {
	ObjectID() scene.ObjectID
	Object() *scene.Object
	Label() string

	// IsValid reports whether the interactable currently accepts interaction.
	// It is derived from the enablement flags on every call.
	IsValid() bool
	NearInteractionEnabled() bool
	FarInteractionEnabled() bool

	State() State
	// PrimaryInteractor is the earliest still-present selecting interactor.
	PrimaryInteractor() (Interactor, bool)
	// Interactors returns the selecting interactors in selection order.
	Interactors() []Interactor
	FocusingInteractors() []Interactor
	IsFocusedBy(Interactor) bool

	OnFocused(Interactor)
	OnUnfocused(Interactor)
	OnSelected(Interactor)
	OnDeselected(Interactor)
	// Reset clears focus and selection and forces the Normal state.
	Reset()
}

// Action reacts to state changes of the interactable it is attached to.
// OnStateChanged is called on every state assignment, including repeated
// assignments of the same state, so implementations must be idempotent.
type Action interface {
	Attach(owner Interactable) error
	OnStateChanged(state State)
}

// Updater is implemented by components that need per-tick work on the loop thread.
type Updater interface {
	Update(dt time.Duration)
}

// Service is the registry of live interactors and interactables plus the
// global interaction configuration.
type Service interface {
	AddInteractor(Interactor)
	RemoveInteractor(Interactor)
	AddInteractable(Interactable)
	RemoveInteractable(Interactable)

	Interactors() []Interactor
	Interactables() []Interactable

	// FindInteractor returns the interactor created for the given input source.
	FindInteractor(id input.SourceID) (Interactor, bool)
	// FindInteractable resolves a pointer target to a registered interactable.
	FindInteractable(id scene.ObjectID) (Interactable, bool)
	// FindInteractablesByLabel returns every interactable with exactly this
	// label in registry order. An empty label matches nothing.
	FindInteractablesByLabel(label string) []Interactable

	NearInteractionEnabled() bool
	FarInteractionEnabled() bool
	SetNearInteractionEnabled(bool)
	SetFarInteractionEnabled(bool)
	SelectAction() input.Action
	GrabAction() input.Action

	// Publish forwards a notification to the event bus, if one is configured.
	// Handler errors are logged and never returned to the caller.
	Publish(event bus.Event)
}

// Registrar bridges input source lifecycle notifications into the registry.
type Registrar interface {
	Start() error
	Destroy()
}

// RegistrarFactory builds the registrar started by InteractionService.Initialize.
type RegistrarFactory func(svc Service, system input.System) (Registrar, error)
