package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/interactionsdk/internal/core/actions"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/interactors"
	"github.com/zeusync/interactionsdk/internal/core/systems"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

const sceneYAML = `
input_actions:
  poke: {id: 10, description: poke}
objects:
  - name: cube
    label: grabbable
    material: grey
    rigidbody: {kinematic: false, gravity: true}
    grab: true
    actions:
      - type: change_material
        params: {normal: grey, focused: blue, selected: green}
      - type: focus_lock
      - type: update_rigidbody
  - name: button
    input_action: poke
    far_capable: false
  - name: panel
    select: true
sources:
  - name: right
    kind: controller
    pointers: 2
  - name: gaze
  - name: left-hand
    kind: hand
    detected: false
script:
  - {do: aim, source: right, object: cube}
  - {do: wait}
  - {do: expect, object: cube, state: focused}
  - {do: press, source: right, action: grab}
  - {do: expect, object: cube, state: selected, primary: right}
  - {do: release, source: right, action: grab}
  - {do: aim, source: right}
  - {do: wait, ticks: 2}
  - {do: expect, object: cube, state: normal}
`

var profile = interaction.ServiceProfile{
	NearInteraction: true,
	FarInteraction:  true,
	SelectAction:    input.Action{ID: 1, Description: "select"},
	GrabAction:      input.Action{ID: 2, Description: "grab"},
}

type fixture struct {
	svc   *interaction.InteractionService
	sim   *input.Simulator
	world *World
	focus *systems.FocusSystem
}

func newFixture(t *testing.T, doc string) *fixture {
	t.Helper()
	sc, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	svc := interaction.NewService(profile, interaction.WithRegistrar(interactors.NewRegistrarFactory()))
	sim := input.NewSimulator(nil)
	world, err := sc.Build(Deps{Service: svc, Actions: actions.NewRegistry(), Input: sim})
	require.NoError(t, err)
	require.NoError(t, svc.Initialize(sim))
	t.Cleanup(func() {
		world.Destroy()
		svc.Destroy()
	})
	return &fixture{svc: svc, sim: sim, world: world, focus: systems.NewFocusSystem(svc)}
}

// run replays the script, ticking the focus system for wait steps.
func (f *fixture) run(t *testing.T) {
	t.Helper()
	for i, step := range f.world.Script() {
		require.NoError(t, f.world.Apply(step), "step %d: %s", i, step)
		for range step.Wait() {
			require.NoError(t, f.focus.Update(16*time.Millisecond))
		}
	}
}

func TestBuild(t *testing.T) {
	f := newFixture(t, sceneYAML)

	require.Len(t, f.world.Interactables(), 3)
	assert.Len(t, f.svc.Interactables(), 3)

	cube, ok := f.world.Interactable("cube")
	require.True(t, ok)
	assert.Equal(t, "grabbable", cube.Label())
	assert.Len(t, cube.Actions(), 3)
	require.NotNil(t, cube.Object().Renderer)
	assert.Equal(t, "grey", cube.Object().Renderer.Material().Name)
	require.NotNil(t, cube.Object().Body)
	assert.True(t, cube.Object().Body.UseGravity())

	button, _ := f.world.Interactable("button")
	assert.Equal(t, uint32(10), button.InputAction().ID)
	assert.False(t, button.FarCapable())
	assert.True(t, button.NearCapable())

	// two detected sources are picked up by the registrar boot scan
	assert.Len(t, f.svc.Interactors(), 2)
	right, ok := f.world.Source("right")
	require.True(t, ok)
	assert.Len(t, right.Pointers(), 2)
	_, ok = f.svc.FindInteractor(right.ID())
	assert.True(t, ok)
}

func TestScriptReplay(t *testing.T) {
	f := newFixture(t, sceneYAML)
	f.run(t)

	cube, _ := f.world.Interactable("cube")
	assert.Equal(t, interaction.Normal, cube.State())
	assert.Equal(t, "grey", cube.Object().Renderer.Material().Name)
	assert.True(t, cube.Object().Body.UseGravity())
}

func TestApplyDetectAndLose(t *testing.T) {
	f := newFixture(t, sceneYAML)

	require.NoError(t, f.world.Apply(Step{Do: OpDetect, Source: "left-hand"}))
	hand, _ := f.world.Source("left-hand")
	interactor, ok := f.svc.FindInteractor(hand.ID())
	require.True(t, ok)
	_, isHand := interactor.(*interactors.HandControllerInteractor)
	assert.True(t, isHand)

	pos := physics.Vec3{X: 1, Y: 2}
	require.NoError(t, f.world.Apply(Step{Do: OpMove, Source: "left-hand", Position: &pos}))
	ctrl := interactor.(*interactors.HandControllerInteractor).Controller()
	assert.Equal(t, pos, ctrl.Position())

	assert.ErrorIs(t, f.world.Apply(Step{Do: OpMove, Source: "gaze", Position: &pos}), ErrNoController)

	require.NoError(t, f.world.Apply(Step{Do: OpLose, Source: "left-hand"}))
	_, ok = f.svc.FindInteractor(hand.ID())
	assert.False(t, ok)
}

func TestApplyInputActionSelectsObject(t *testing.T) {
	f := newFixture(t, sceneYAML)

	require.NoError(t, f.world.Apply(Step{Do: OpPress, Source: "gaze", Action: "poke"}))
	button, _ := f.world.Interactable("button")
	assert.Equal(t, interaction.Normal, button.State(), "gaze is not aimed at the button")

	require.NoError(t, f.world.Apply(Step{Do: OpAim, Source: "gaze", Object: "button"}))
	require.NoError(t, f.focus.Update(time.Millisecond))
	require.NoError(t, f.world.Apply(Step{Do: OpPress, Source: "gaze", Action: "poke"}))
	assert.Equal(t, interaction.Selected, button.State())
}

func TestApplyExpectationFailure(t *testing.T) {
	f := newFixture(t, sceneYAML)

	err := f.world.Apply(Step{Do: OpExpect, Object: "cube", State: "selected", Primary: "gaze"})
	assert.ErrorIs(t, err, ErrExpectation)
	assert.NoError(t, f.world.Apply(Step{Do: OpExpect, Object: "cube", State: "normal"}))
}

func TestApplyDisableEnable(t *testing.T) {
	f := newFixture(t, sceneYAML)

	require.NoError(t, f.world.Apply(Step{Do: OpDisable, Object: "panel"}))
	assert.Len(t, f.svc.Interactables(), 2)
	require.NoError(t, f.world.Apply(Step{Do: OpEnable, Object: "panel"}))
	assert.Len(t, f.svc.Interactables(), 3)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"duplicate object": {"objects: [{name: a}, {name: a}]\n", ErrDuplicateObject},
		"duplicate source": {"sources: [{name: s}, {name: s}]\n", ErrDuplicateSource},
		"unknown action":   {"objects: [{name: a, input_action: nope}]\n", ErrUnknownInputAction},
		"unknown step":     {"script: [{do: jump}]\n", ErrUnknownStep},
		"unknown object":   {"sources: [{name: s}]\nscript: [{do: aim, source: s, object: x}]\n", ErrUnknownObject},
		"unknown source":   {"script: [{do: detect, source: s}]\n", ErrUnknownSource},
		"unknown key":      {"objectz: []\n", ErrInvalidScene},
		"bad kind":         {"sources: [{name: s, kind: glove}]\n", ErrInvalidScene},
		"bad state":        {"objects: [{name: a}]\nscript: [{do: expect, object: a, state: held}]\n", interaction.ErrUnknownState},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, ErrInvalidScene)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildUnknownAction(t *testing.T) {
	sc, err := Parse(strings.NewReader("objects: [{name: a, actions: [{type: spin}]}]\n"))
	require.NoError(t, err)

	svc := interaction.NewService(profile)
	_, err = sc.Build(Deps{Service: svc, Input: input.NewSimulator(nil)})
	assert.ErrorIs(t, err, actions.ErrUnknown)
	assert.Empty(t, svc.Interactables())
}

func TestBuildMissingDeps(t *testing.T) {
	sc := &Scene{}
	_, err := sc.Build(Deps{Input: input.NewSimulator(nil)})
	assert.ErrorIs(t, err, interaction.ErrServiceUnavailable)
	_, err = sc.Build(Deps{Service: interaction.NewService(profile)})
	assert.ErrorIs(t, err, interaction.ErrInputSystemUnavailable)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o600))
	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Objects, 3)
	assert.Len(t, sc.Script, 9)
}
