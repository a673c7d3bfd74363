package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interactables"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/interactors"
	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

const tick = 16 * time.Millisecond

var (
	grey  = scene.Material{Name: "grey"}
	blue  = scene.Material{Name: "blue"}
	green = scene.Material{Name: "green"}
)

func newOwner(t *testing.T, svc interaction.Service, obj *scene.Object, actions ...interaction.Action) *interactables.Interactable {
	t.Helper()
	x, err := interactables.New(svc, obj, interactables.WithActions(actions...))
	require.NoError(t, err)
	return x
}

func newController(t *testing.T, svc interaction.Service, name string) (*interactors.ControllerInteractor, *input.BasicController) {
	t.Helper()
	ctrl := input.NewBasicController(input.NewBasicSource(name, 2), false)
	c, err := interactors.NewController(svc, ctrl)
	require.NoError(t, err)
	return c, ctrl
}

func TestBaseAttach(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	var b Base
	assert.ErrorIs(t, b.Attach(nil), interaction.ErrNilOwner)
	assert.False(t, b.Valid())

	x := newOwner(t, svc, scene.NewObject("x"))
	require.NoError(t, b.Attach(x))
	assert.ErrorIs(t, b.Attach(x), interaction.ErrAlreadyAttached)
	assert.Same(t, x, b.Owner())
	assert.True(t, b.Valid())
}

func TestChangeMaterial(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	obj := scene.NewObject("x")
	obj.Renderer = scene.NewMeshRenderer(scene.Material{Name: "initial"})
	a := NewChangeMaterial(nil, map[interaction.State]scene.Material{
		interaction.Normal:   grey,
		interaction.Focused:  blue,
		interaction.Selected: green,
	})
	x := newOwner(t, svc, obj, a)
	assert.Equal(t, grey, obj.Renderer.Material())

	i, _ := newController(t, svc, "c")
	x.OnFocused(i)
	assert.Equal(t, blue, obj.Renderer.Material())
	x.OnSelected(i)
	assert.Equal(t, green, obj.Renderer.Material())
	x.OnUnfocused(i)
	assert.Equal(t, grey, obj.Renderer.Material())

	// invalid owner: no swaps
	swaps := obj.Renderer.Swaps()
	svc.SetNearInteractionEnabled(false)
	svc.SetFarInteractionEnabled(false)
	a.OnStateChanged(interaction.Selected)
	assert.Equal(t, swaps, obj.Renderer.Swaps())
}

func TestChangeMaterialMissingStateLeavesRenderer(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	r := scene.NewMeshRenderer(grey)
	a := NewChangeMaterial(r, map[interaction.State]scene.Material{interaction.Selected: green})
	newOwner(t, svc, scene.NewObject("x"), a)

	a.OnStateChanged(interaction.Focused)
	assert.Equal(t, grey, r.Material())
	assert.Zero(t, r.Swaps())
}

func TestAttachResolvesComponents(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())

	_, err := interactables.New(svc, scene.NewObject("bare"), interactables.WithActions(NewChangeMaterial(nil, nil)))
	assert.ErrorIs(t, err, ErrNoRenderer)
	_, err = interactables.New(svc, scene.NewObject("bare"), interactables.WithActions(NewUpdateRigidbody(nil)))
	assert.ErrorIs(t, err, ErrNoRigidbody)

	obj := scene.NewObject("no-transform")
	obj.Transform = nil
	_, err = interactables.New(svc, obj, interactables.WithActions(NewTranslate(nil)))
	assert.ErrorIs(t, err, ErrNoTransform)
}

func TestFocusLock(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	a := NewFocusLock()
	x := newOwner(t, svc, scene.NewObject("x"), a)
	first, firstCtrl := newController(t, svc, "first")
	second, secondCtrl := newController(t, svc, "second")

	locked := func(src input.Source) []bool {
		var out []bool
		for _, p := range src.Pointers() {
			out = append(out, p.FocusLocked())
		}
		return out
	}

	x.OnFocused(first)
	assert.Equal(t, []bool{false, false}, locked(firstCtrl.Source()))

	x.OnSelected(first)
	assert.Equal(t, []bool{true, true}, locked(firstCtrl.Source()))
	src, ok := a.Locked()
	require.True(t, ok)
	assert.Equal(t, firstCtrl.Source().ID(), src.ID())

	// the second selector is not primary
	x.OnSelected(second)
	assert.Equal(t, []bool{false, false}, locked(secondCtrl.Source()))

	// promotion moves the lock
	x.OnDeselected(first)
	assert.Equal(t, []bool{false, false}, locked(firstCtrl.Source()))
	assert.Equal(t, []bool{true, true}, locked(secondCtrl.Source()))

	x.OnDeselected(second)
	assert.Equal(t, []bool{false, false}, locked(secondCtrl.Source()))
	_, ok = a.Locked()
	assert.False(t, ok)
}

func TestUpdateRigidbody(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	obj := scene.NewObject("crate")
	obj.Body = &physics.Body{Kinematic: false, Gravity: true}
	x := newOwner(t, svc, obj, NewUpdateRigidbody(nil))
	i, _ := newController(t, svc, "c")

	x.OnFocused(i)
	x.OnSelected(i)
	assert.True(t, obj.Body.Kinematic)
	assert.False(t, obj.Body.Gravity)

	x.OnSelected(i)
	x.OnDeselected(i)
	assert.False(t, obj.Body.Kinematic)
	assert.True(t, obj.Body.Gravity)
}

func TestReleaseRestoresWhileOwnerInvalid(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	obj := scene.NewObject("crate")
	obj.Body = &physics.Body{Kinematic: false, Gravity: true}
	obj.Renderer = scene.NewMeshRenderer(grey)
	x := newOwner(t, svc, obj,
		NewUpdateRigidbody(nil),
		NewChangeMaterial(nil, map[interaction.State]scene.Material{
			interaction.Normal:   grey,
			interaction.Focused:  blue,
			interaction.Selected: green,
		}),
	)
	i, _ := newController(t, svc, "c")

	x.OnFocused(i)
	x.OnSelected(i)
	require.Equal(t, interaction.Selected, x.State())
	require.True(t, obj.Body.Kinematic)
	require.Equal(t, green, obj.Renderer.Material())

	svc.SetNearInteractionEnabled(false)
	svc.SetFarInteractionEnabled(false)
	require.False(t, x.IsValid())

	x.OnDeselected(i)
	x.OnUnfocused(i)

	svc.SetNearInteractionEnabled(true)
	svc.SetFarInteractionEnabled(true)

	assert.Equal(t, interaction.Normal, x.State())
	assert.False(t, obj.Body.Kinematic)
	assert.True(t, obj.Body.Gravity)
	assert.Equal(t, grey, obj.Renderer.Material())

	// a fresh selection captures the restored flags again
	x.OnFocused(i)
	x.OnSelected(i)
	assert.True(t, obj.Body.Kinematic)
	x.OnDeselected(i)
	assert.False(t, obj.Body.Kinematic)
	assert.True(t, obj.Body.Gravity)
}

func TestTranslateDragsIncrementally(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	obj := scene.NewObject("box")
	obj.Transform.SetPosition(physics.Vec3{X: 10})
	a := NewTranslate(nil)
	x := newOwner(t, svc, obj, a)
	i, ctrl := newController(t, svc, "c")
	ctrl.SetPosition(physics.Vec3{X: 1, Y: 1})

	a.Update(tick)
	assert.Equal(t, physics.Vec3{X: 10}, obj.Transform.Position())

	x.OnSelected(i)
	require.True(t, a.Active())

	ctrl.SetPosition(physics.Vec3{X: 2, Y: 1})
	x.Update(tick)
	assert.Equal(t, physics.Vec3{X: 11}, obj.Transform.Position())

	ctrl.SetPosition(physics.Vec3{X: 2, Y: 3})
	x.Update(tick)
	x.Update(tick)
	assert.Equal(t, physics.Vec3{X: 11, Y: 2}, obj.Transform.Position())

	// moving the object elsewhere is kept: the drag is relative
	obj.Transform.SetPosition(physics.Vec3{})
	ctrl.SetPosition(physics.Vec3{X: 3, Y: 3})
	x.Update(tick)
	assert.Equal(t, physics.Vec3{X: 1}, obj.Transform.Position())

	x.OnDeselected(i)
	assert.False(t, a.Active())
	assert.Nil(t, a.primary)
	assert.Zero(t, a.previous)
	ctrl.SetPosition(physics.Vec3{})
	x.Update(tick)
	assert.Equal(t, physics.Vec3{X: 1}, obj.Transform.Position())
}

func TestTranslateIgnoresGenericInteractors(t *testing.T) {
	svc := interaction.NewService(interaction.DefaultProfile())
	a := NewTranslate(nil)
	x := newOwner(t, svc, scene.NewObject("box"), a)
	gaze, err := interactors.New(svc, input.NewBasicSource("gaze", 1))
	require.NoError(t, err)

	x.OnSelected(gaze)
	assert.False(t, a.Active())

	x.OnDeselected(gaze)
	assert.False(t, a.Active())
	assert.Nil(t, a.primary)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{ChangeMaterial, FocusLock, Translate, UpdateRigidbody}, r.Names())

	a, err := r.New(ChangeMaterial, map[string]any{"normal": "grey", "Selected": "green"})
	require.NoError(t, err)
	cm, ok := a.(*ChangeMaterialAction)
	require.True(t, ok)
	assert.Equal(t, map[interaction.State]scene.Material{interaction.Normal: grey, interaction.Selected: green}, cm.materials)

	_, err = r.New(ChangeMaterial, map[string]any{"hovered": "red"})
	assert.ErrorIs(t, err, ErrBadParam)
	_, err = r.New(ChangeMaterial, map[string]any{"normal": 4})
	assert.ErrorIs(t, err, ErrBadParam)

	_, err = r.New("explode", nil)
	assert.ErrorIs(t, err, ErrUnknown)

	for _, name := range []string{FocusLock, UpdateRigidbody, Translate} {
		a, err := r.New(name, nil)
		require.NoError(t, err)
		assert.NotNil(t, a)
	}

	r.Register("noop", func(map[string]any) (interaction.Action, error) { return NewFocusLock(), nil })
	assert.Contains(t, r.Names(), "noop")
}
