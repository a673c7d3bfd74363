package trace

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/input"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/internal/core/scene"
)

func TestRecordRoundTrip(t *testing.T) {
	id := scene.NewObjectID()
	var rec Record
	rec.fill(bus.NewEvent(interaction.EventStateChanged, "door", interaction.StateChanged{
		Object:  id,
		Name:    "door",
		Label:   "doors",
		State:   interaction.Selected,
		Primary: input.SourceID(42),
	}))

	data, err := EncodeRecord(rec)
	require.NoError(t, err)
	back, err := DecodeRecord(data)
	require.NoError(t, err)

	assert.Equal(t, interaction.EventStateChanged, back.Type)
	assert.Equal(t, id.String(), back.Object)
	assert.Equal(t, "selected", back.State)
	assert.Equal(t, uint32(42), back.InputSource)
	assert.True(t, rec.Time.Equal(back.Time))

	var viaMethods Record
	data, err = rec.Serialize()
	require.NoError(t, err)
	require.NoError(t, viaMethods.Deserialize(data))
	assert.Equal(t, back.Object, viaMethods.Object)
	assert.Error(t, viaMethods.Deserialize([]byte{0xff}))
}

func TestRecorderAsBusObserver(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, nil)
	b := bus.New()
	b.AddObserver(r)
	_, err := b.Subscribe(interaction.EventSelected, func(bus.Event) error { return errors.New("ui failed") })
	require.NoError(t, err)

	x := scene.NewObjectID()
	_ = b.Publish(bus.NewEvent(interaction.EventInteractorAdded, "interaction.service",
		interaction.InteractorChanged{Source: 7, Name: "left"}))
	_ = b.Publish(bus.NewEvent(interaction.EventSelected, "button",
		interaction.InteractorSelected{Object: x, Name: "button", Source: 7, Action: input.Action{ID: 1, Description: "select"}}))
	_ = b.Publish(bus.NewEvent("custom", "test", struct{}{}))

	stats := r.Stats()
	assert.Equal(t, uint64(3), stats.Records)
	assert.Equal(t, uint64(1), stats.HandlerErrors)

	records, err := NewReader(&buf, Filter{}).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, r.Session(), rec.Session)
		assert.Equal(t, uint64(i+1), rec.Seq)
	}
	assert.Equal(t, "left", records[0].Name)
	assert.Equal(t, "select", records[1].Action)
	assert.Equal(t, x.String(), records[1].Object)
	assert.Equal(t, "custom", records[2].Type)
	assert.Empty(t, records[2].Object)
}

func TestFileRecorderAndFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.trace")
	r, err := NewFileRecorder(path, nil)
	require.NoError(t, err)

	a, b := scene.NewObjectID(), scene.NewObjectID()
	r.OnPublish("", bus.NewEvent(interaction.EventStateChanged, "a", interaction.StateChanged{Object: a, State: interaction.Focused}))
	r.OnPublish("", bus.NewEvent(interaction.EventStateChanged, "b", interaction.StateChanged{Object: b, State: interaction.Focused}))
	r.OnPublish("", bus.NewEvent(interaction.EventInteractableRemoved, "a", interaction.InteractableChanged{Object: a}))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	// closed recorders drop records
	r.OnPublish("", bus.NewEvent("late", "x", nil))

	rd, err := OpenFile(path, Filter{Type: interaction.EventStateChanged, Object: a.String()})
	require.NoError(t, err)
	defer rd.Close()

	rec, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, "focused", rec.State)
	_, err = rd.Next()
	assert.ErrorIs(t, err, io.EOF)
}
