// Package input describes the input system the interaction layer consumes:
// input sources and their pointers, controllers, input actions and events.
// The Simulator is an in-process System used by the sandbox and tests.
package input

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

// SourceID identifies an input source for its whole lifetime.
type SourceID uint32

// SourceIDFromName derives a stable SourceID from a source name.
func SourceIDFromName(name string) SourceID {
	return SourceID(xxhash.Sum64String(name))
}

type PointerID uint32

// Action names a logical input action, e.g. "select" or "grab".
type Action struct {
	ID          uint32 `yaml:"id"`
	Description string `yaml:"description"`
}

// ActionNone matches nothing; interactables configured with it never self-select.
var ActionNone = Action{}

func (a Action) IsNone() bool { return a.ID == 0 }

// Matches reports whether other names the same action. ActionNone matches nothing.
func (a Action) Matches(other Action) bool {
	return !a.IsNone() && a.ID == other.ID
}

func (a Action) String() string {
	if a.Description != "" {
		return a.Description
	}
	return fmt.Sprintf("action(%d)", a.ID)
}

// Source is one input source (a hand, a controller, gaze).
type Source interface {
	ID() SourceID
	Name() string
	Pointers() []Pointer
}

// Pointer is owned by a Source and reports what it currently targets.
// CurrentTarget returns scene.NilObjectID when nothing is hit.
type Pointer interface {
	ID() PointerID
	InteractionEnabled() bool
	CurrentTarget() scene.ObjectID
	FocusLocked() bool
	SetFocusLocked(bool)
}

// Controller is the device behind a Source.
type Controller interface {
	Source() Source
	HandTracked() bool
	Position() physics.Vec3
}

// Event is an input down/up event. Handlers mark it used to prevent double handling.
type Event struct {
	Source Source
	Action Action
	used   bool
}

func NewEvent(source Source, action Action) *Event {
	return &Event{Source: source, Action: action}
}

func (e *Event) Use() { e.used = true }

func (e *Event) Used() bool { return e.used }

// Handler receives input down/up events routed to the object it is attached to.
type Handler interface {
	OnInputDown(*Event)
	OnInputUp(*Event)
}

// SourceStateEvent reports a source being detected or lost.
type SourceStateEvent struct {
	Source Source
}

type SourceStateHandler interface {
	OnSourceDetected(SourceStateEvent)
	OnSourceLost(SourceStateEvent)
}

// System is the input system collaborator.
type System interface {
	DetectedSources() []Source
	TryGetController(source Source) (Controller, bool)
	AddSourceStateHandler(SourceStateHandler)
	RemoveSourceStateHandler(SourceStateHandler)
}
