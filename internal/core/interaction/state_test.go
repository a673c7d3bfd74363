package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStateOrdering(t *testing.T) {
	assert.True(t, Normal < Focused)
	assert.True(t, Focused < Selected)
}

func TestStateText(t *testing.T) {
	for _, s := range []State{Normal, Focused, Selected} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back State
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	_, err := State(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, "state(7)", State(7).String())

	_, err = ParseState("hovered")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestStateAsYAMLMapKey(t *testing.T) {
	var materials map[State]string
	require.NoError(t, yaml.Unmarshal([]byte("normal: grey\nFocused: blue\nselected: green\n"), &materials))
	assert.Equal(t, map[State]string{Normal: "grey", Focused: "blue", Selected: "green"}, materials)
}
