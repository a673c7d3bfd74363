package actions

import (
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

var _ interaction.Action = (*ChangeMaterialAction)(nil)

// ChangeMaterialAction shows one material per interaction state.
// States without a material leave the renderer untouched.
type ChangeMaterialAction struct {
	Base
	renderer  scene.Renderer
	materials map[interaction.State]scene.Material
}

// NewChangeMaterial creates the action. A nil renderer is resolved from the
// owner's scene object on Attach.
func NewChangeMaterial(renderer scene.Renderer, materials map[interaction.State]scene.Material) *ChangeMaterialAction {
	m := make(map[interaction.State]scene.Material, len(materials))
	for k, v := range materials {
		m[k] = v
	}
	return &ChangeMaterialAction{renderer: renderer, materials: m}
}

func (a *ChangeMaterialAction) Attach(owner interaction.Interactable) error {
	if err := a.Base.Attach(owner); err != nil {
		return err
	}
	if a.renderer == nil {
		if obj := owner.Object(); obj != nil && obj.Renderer != nil {
			a.renderer = obj.Renderer
		}
	}
	if a.renderer == nil {
		return ErrNoRenderer
	}
	return nil
}

func (a *ChangeMaterialAction) OnStateChanged(state interaction.State) {
	// Releasing states apply even on an invalid owner so a stale
	// selection look never outlives the selection.
	if state == interaction.Selected && !a.Valid() {
		return
	}
	if m, ok := a.materials[state]; ok {
		a.renderer.SetMaterial(m)
	}
}
