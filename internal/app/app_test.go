package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/interactionsdk/internal/config"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/observability/trace"
	"github.com/zeusync/interactionsdk/internal/core/scene/loader"
)

const sceneYAML = `
objects:
  - name: cube
    material: grey
    grab: true
    actions:
      - type: change_material
        params: {normal: grey, focused: blue, selected: green}
      - type: focus_lock
      - type: translate
  - name: lamp
    select: true
sources:
  - name: right
    kind: controller
script:
  - {do: aim, source: right, object: cube}
  - {do: wait}
  - {do: expect, object: cube, state: focused}
  - {do: press, source: right, action: grab}
  - {do: move, source: right, position: {x: 1}}
  - {do: wait, ticks: 2}
  - {do: expect, object: cube, state: selected, primary: right}
  - {do: aim, source: right, object: lamp}
`

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Loop.TickRate = 500
	cfg.Interaction.SelectAction = input.Action{ID: 1, Description: "select"}
	cfg.Interaction.GrabAction = input.Action{ID: 2, Description: "grab"}
	cfg.Trace.Enabled = true
	cfg.Trace.Path = filepath.Join(t.TempDir(), "session.trace")
	return cfg
}

func parseScene(t *testing.T, doc string) *loader.Scene {
	t.Helper()
	sc, err := loader.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return sc
}

func TestRunReplaysScript(t *testing.T) {
	cfg := testConfig(t)
	a, err := New(cfg, parseScene(t, sceneYAML), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, a.Run(ctx))

	cube, ok := a.Scene().Interactable("cube")
	require.True(t, ok)
	assert.Equal(t, interaction.Selected, cube.State(), "the grabbing pointer is focus locked")
	assert.Equal(t, "green", cube.Object().Renderer.Material().Name)
	assert.InDelta(t, 1.0, cube.Object().Transform.Position().X, 1e-9)

	snapshot := a.Snapshot()
	require.Len(t, snapshot, 2)
	states := map[string]interaction.State{}
	for _, c := range snapshot {
		states[c.Name] = c.State
	}
	assert.Equal(t, interaction.Selected, states["cube"])
	assert.Equal(t, interaction.Normal, states["lamp"])

	require.NoError(t, a.Close())

	rd, err := trace.OpenFile(cfg.Trace.Path, trace.Filter{Type: interaction.EventGrabbed})
	require.NoError(t, err)
	defer rd.Close()
	grabs, err := rd.ReadAll()
	require.NoError(t, err)
	require.Len(t, grabs, 1)
	assert.Equal(t, "cube", grabs[0].Name)
}

func TestRunFailsOnExpectation(t *testing.T) {
	doc := `
objects: [{name: cube}]
script:
  - {do: expect, object: cube, state: selected}
`
	a, err := New(testConfig(t), parseScene(t, doc), nil)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = a.Run(ctx)
	assert.ErrorIs(t, err, loader.ErrExpectation)
}

func TestRunLingersUntilCanceled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Trace.Enabled = false
	a, err := New(cfg, nil, nil, WithLinger(true))
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, a.Run(ctx))
	assert.Positive(t, a.Loop().Frame().FrameCount)
}

func TestNewRejectsBadScene(t *testing.T) {
	doc := `objects: [{name: cube, actions: [{type: change_material, params: {normal: grey}}]}]`
	_, err := New(testConfig(t), parseScene(t, doc), nil)
	assert.Error(t, err, "change_material needs a renderer")

	_, err = New(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}
