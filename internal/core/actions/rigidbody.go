package actions

import (
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

var _ interaction.Action = (*UpdateRigidbodyAction)(nil)

// UpdateRigidbodyAction makes the body kinematic and weightless while the
// owner is selected and restores the previous flags afterwards.
type UpdateRigidbodyAction struct {
	Base
	body       physics.Rigidbody
	overriding bool
	kinematic  bool
	gravity    bool
}

// NewUpdateRigidbody creates the action. A nil body is resolved from the
// owner's scene object on Attach.
func NewUpdateRigidbody(body physics.Rigidbody) *UpdateRigidbodyAction {
	return &UpdateRigidbodyAction{body: body}
}

func (a *UpdateRigidbodyAction) Attach(owner interaction.Interactable) error {
	if err := a.Base.Attach(owner); err != nil {
		return err
	}
	if a.body == nil {
		if obj := owner.Object(); obj != nil && obj.Body != nil {
			a.body = obj.Body
		}
	}
	if a.body == nil {
		return ErrNoRigidbody
	}
	return nil
}

func (a *UpdateRigidbodyAction) OnStateChanged(state interaction.State) {
	if state == interaction.Selected {
		if !a.Valid() {
			return
		}
		if !a.overriding {
			a.kinematic = a.body.IsKinematic()
			a.gravity = a.body.UseGravity()
			a.overriding = true
		}
		a.body.SetKinematic(true)
		a.body.SetUseGravity(false)
		return
	}
	if a.overriding {
		a.body.SetKinematic(a.kinematic)
		a.body.SetUseGravity(a.gravity)
		a.overriding = false
	}
}
