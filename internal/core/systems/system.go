// Package systems holds the per-tick processors the loop runs in order.
package systems

import (
	"time"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
)

// System represents a per-tick processor. Update runs on the loop goroutine.
type System interface {
	Name() string
	Update(dt time.Duration) error
}

var (
	_ System = (*FocusSystem)(nil)
	_ System = (*ActionSystem)(nil)
)

// FocusSystem runs the focus scan of every registered interactor.
type FocusSystem struct {
	service interaction.Service
}

func NewFocusSystem(svc interaction.Service) *FocusSystem {
	return &FocusSystem{service: svc}
}

func (s *FocusSystem) Name() string { return "focus" }

func (s *FocusSystem) Update(dt time.Duration) error {
	for _, interactor := range s.service.Interactors() {
		if u, ok := interactor.(interaction.Updater); ok {
			u.Update(dt)
		}
	}
	return nil
}

// ActionSystem advances the per-tick actions of every registered interactable.
type ActionSystem struct {
	service interaction.Service
}

func NewActionSystem(svc interaction.Service) *ActionSystem {
	return &ActionSystem{service: svc}
}

func (s *ActionSystem) Name() string { return "actions" }

func (s *ActionSystem) Update(dt time.Duration) error {
	for _, interactable := range s.service.Interactables() {
		if u, ok := interactable.(interaction.Updater); ok {
			u.Update(dt)
		}
	}
	return nil
}
