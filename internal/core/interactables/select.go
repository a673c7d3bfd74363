package interactables

import (
	"slices"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
)

var (
	_ input.Handler = (*SelectInteractable)(nil)
	_ input.Handler = (*GrabInteractable)(nil)
)

// SelectedListener is called after an interactor selected the owner through an input component.
type SelectedListener func(interactor interaction.Interactor)

// inputSelector selects its owner on input events carrying one of the
// service's global input actions.
type inputSelector struct {
	owner     *Interactable
	action    func() input.Action
	eventType string
	listeners []SelectedListener
	attached  bool
}

func newInputSelector(owner *Interactable, eventType string, action func() input.Action) (*inputSelector, error) {
	if owner == nil {
		return nil, interaction.ErrNilOwner
	}
	s := &inputSelector{owner: owner, action: action, eventType: eventType}
	if owner.router != nil {
		owner.router.Attach(owner.object.ID, s)
		s.attached = true
	}
	return s, nil
}

func (s *inputSelector) Owner() *Interactable { return s.owner }

func (s *inputSelector) AddListener(fn SelectedListener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Destroy detaches the component from input routing.
func (s *inputSelector) Destroy() {
	if s.attached {
		s.owner.router.Detach(s.owner.object.ID, s)
		s.attached = false
	}
	s.listeners = nil
}

func (s *inputSelector) OnInputDown(e *input.Event) {
	action := s.action()
	if e.Used() || !action.Matches(e.Action) || !s.owner.IsValid() {
		return
	}
	interactor, ok := s.owner.service.FindInteractor(e.Source.ID())
	if !ok {
		return
	}
	e.Use()
	s.owner.OnSelected(interactor)

	s.owner.service.Publish(bus.NewEvent(s.eventType, s.owner.object.Name, interaction.InteractorSelected{
		Object: s.owner.object.ID,
		Name:   s.owner.object.Name,
		Source: interactor.SourceID(),
		Action: action,
	}))
	for _, fn := range slices.Clone(s.listeners) {
		fn(interactor)
	}
}

func (s *inputSelector) OnInputUp(e *input.Event) {
	if !s.action().Matches(e.Action) {
		return
	}
	if interactor, ok := s.owner.service.FindInteractor(e.Source.ID()); ok {
		s.owner.OnDeselected(interactor)
	}
}

// SelectInteractable selects its owner on the service's select input action
// and raises interaction.EventSelected.
type SelectInteractable struct {
	*inputSelector
}

func NewSelectInteractable(owner *Interactable) (*SelectInteractable, error) {
	if owner == nil {
		return nil, interaction.ErrNilOwner
	}
	s, err := newInputSelector(owner, interaction.EventSelected, owner.service.SelectAction)
	if err != nil {
		return nil, err
	}
	return &SelectInteractable{inputSelector: s}, nil
}

// GrabInteractable selects its owner on the service's grab input action
// and raises interaction.EventGrabbed.
type GrabInteractable struct {
	*inputSelector
}

func NewGrabInteractable(owner *Interactable) (*GrabInteractable, error) {
	if owner == nil {
		return nil, interaction.ErrNilOwner
	}
	s, err := newInputSelector(owner, interaction.EventGrabbed, owner.service.GrabAction)
	if err != nil {
		return nil, err
	}
	return &GrabInteractable{inputSelector: s}, nil
}
