package actions

import (
	"time"

	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

var (
	_ interaction.Action  = (*TranslateAction)(nil)
	_ interaction.Updater = (*TranslateAction)(nil)
)

// TranslateAction drags the owner along with its primary controller while
// selected. Each tick moves the owner by the controller displacement since
// the previous tick and rebases on the new controller position.
// Interactors without a controller are ignored.
type TranslateAction struct {
	Base
	transform *physics.Transform3D
	primary   interaction.ControllerInteractor
	previous  physics.Vec3
	active    bool
}

// NewTranslate creates the action. A nil transform is resolved from the
// owner's scene object on Attach.
func NewTranslate(transform *physics.Transform3D) *TranslateAction {
	return &TranslateAction{transform: transform}
}

func (a *TranslateAction) Attach(owner interaction.Interactable) error {
	if err := a.Base.Attach(owner); err != nil {
		return err
	}
	if a.transform == nil {
		if obj := owner.Object(); obj != nil && obj.Transform != nil {
			a.transform = obj.Transform
		}
	}
	if a.transform == nil {
		return ErrNoTransform
	}
	return nil
}

// Active reports whether the action is dragging.
func (a *TranslateAction) Active() bool { return a.active }

func (a *TranslateAction) OnStateChanged(state interaction.State) {
	a.active = false
	if state != interaction.Selected || !a.Valid() {
		a.primary = nil
		a.previous = physics.Vec3{}
		return
	}
	primary, ok := a.owner.PrimaryInteractor()
	if !ok {
		return
	}
	controller, ok := primary.(interaction.ControllerInteractor)
	if !ok || controller.Controller() == nil {
		a.primary = nil
		return
	}
	// a redundant Selected keeps the drag reference of the same primary
	if a.primary == nil || a.primary.SourceID() != controller.SourceID() {
		a.previous = controller.Controller().Position()
	}
	a.primary = controller
	a.active = true
}

func (a *TranslateAction) Update(time.Duration) {
	if !a.active {
		return
	}
	position := a.primary.Controller().Position()
	a.transform.Translate(position.Sub(a.previous))
	a.previous = position
}
