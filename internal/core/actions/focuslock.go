package actions

import (
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
)

var _ interaction.Action = (*FocusLockAction)(nil)

// FocusLockAction locks focus on every pointer of the primary interactor's
// input source while the owner is selected, so the pointers cannot wander
// off mid-interaction.
type FocusLockAction struct {
	Base
	locked input.Source
}

func NewFocusLock() *FocusLockAction { return &FocusLockAction{} }

// Locked returns the source whose pointers are currently locked.
func (a *FocusLockAction) Locked() (input.Source, bool) { return a.locked, a.locked != nil }

func (a *FocusLockAction) OnStateChanged(state interaction.State) {
	// unlocking always happens, even on an invalid owner
	if state != interaction.Selected || !a.Valid() {
		a.unlock()
		return
	}
	primary, ok := a.owner.PrimaryInteractor()
	if !ok || primary.InputSource() == nil {
		a.unlock()
		return
	}
	source := primary.InputSource()
	if a.locked != nil && a.locked.ID() != source.ID() {
		a.unlock()
	}
	setFocusLocked(source, true)
	a.locked = source
}

func (a *FocusLockAction) unlock() {
	if a.locked == nil {
		return
	}
	setFocusLocked(a.locked, false)
	a.locked = nil
}

func setFocusLocked(source input.Source, locked bool) {
	for _, p := range source.Pointers() {
		p.SetFocusLocked(locked)
	}
}
