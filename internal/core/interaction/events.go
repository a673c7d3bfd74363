package interaction

import (
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

// Bus event types published by the interaction layer.
const (
	EventStateChanged        = "interaction.state_changed"
	EventSelected            = "interaction.selected"
	EventGrabbed             = "interaction.grabbed"
	EventInteractorAdded     = "interaction.interactor.added"
	EventInteractorRemoved   = "interaction.interactor.removed"
	EventInteractableAdded   = "interaction.interactable.added"
	EventInteractableRemoved = "interaction.interactable.removed"
)

// StateChanged is the payload of EventStateChanged.
type StateChanged struct {
	Object  scene.ObjectID
	Name    string
	Label   string
	State   State
	Primary input.SourceID // zero when nothing selects the object
}

// InteractorSelected is the payload of EventSelected and EventGrabbed.
type InteractorSelected struct {
	Object scene.ObjectID
	Name   string
	Source input.SourceID
	Action input.Action
}

// InteractorChanged is the payload of EventInteractorAdded and EventInteractorRemoved.
type InteractorChanged struct {
	Source input.SourceID
	Name   string
}

// InteractableChanged is the payload of EventInteractableAdded and EventInteractableRemoved.
type InteractableChanged struct {
	Object scene.ObjectID
	Name   string
	Label  string
}
