package interactors

import (
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
)

var (
	_ interaction.ControllerInteractor = (*ControllerInteractor)(nil)
	_ interaction.ControllerInteractor = (*HandControllerInteractor)(nil)
)

// ControllerInteractor is an interactor attached to a tracked controller.
// It supports near and far interaction.
type ControllerInteractor struct {
	*Interactor
	controller input.Controller
}

func NewController(svc interaction.Service, controller input.Controller, opts ...Option) (*ControllerInteractor, error) {
	c, err := newController(svc, controller, "controller", buildConfig(opts))
	if err != nil {
		return nil, err
	}
	c.register(c)
	return c, nil
}

func newController(svc interaction.Service, controller input.Controller, kind string, cfg Config) (*ControllerInteractor, error) {
	if controller == nil {
		return nil, ErrNilController
	}
	base, err := newInteractor(svc, controller.Source(), kind, true, true, cfg)
	if err != nil {
		return nil, err
	}
	return &ControllerInteractor{Interactor: base, controller: controller}, nil
}

func (c *ControllerInteractor) Controller() input.Controller { return c.controller }

// HandControllerInteractor is a ControllerInteractor for an articulated hand.
type HandControllerInteractor struct {
	*ControllerInteractor
}

func NewHandController(svc interaction.Service, controller input.Controller, opts ...Option) (*HandControllerInteractor, error) {
	c, err := newController(svc, controller, "hand", buildConfig(opts))
	if err != nil {
		return nil, err
	}
	h := &HandControllerInteractor{ControllerInteractor: c}
	h.register(h)
	return h, nil
}
