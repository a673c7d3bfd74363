// Package actions provides the built-in reactions to interaction state
// changes and a registry to build them by name.
package actions

import (
	"errors"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
)

var (
	ErrNoRenderer  = errors.New("action requires a renderer")
	ErrNoRigidbody = errors.New("action requires a rigidbody")
	ErrNoTransform = errors.New("action requires a transform")
	ErrUnknown     = errors.New("unknown action")
	ErrBadParam    = errors.New("invalid action parameter")
)

// Base binds an action to its owner. Embed it to get Attach and the validity check.
type Base struct {
	owner interaction.Interactable
}

func (b *Base) Attach(owner interaction.Interactable) error {
	if owner == nil {
		return interaction.ErrNilOwner
	}
	if b.owner != nil {
		return interaction.ErrAlreadyAttached
	}
	b.owner = owner
	return nil
}

func (b *Base) Owner() interaction.Interactable { return b.owner }

// Valid reports whether the owner currently accepts interaction.
func (b *Base) Valid() bool {
	return b.owner != nil && b.owner.IsValid()
}
