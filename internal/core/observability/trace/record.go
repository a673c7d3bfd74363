package trace

import (
	"time"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/interaction"
	"github.com/zeusync/interactionsdk/pkg/encoding"
)

var _ encoding.Serializable = (*Record)(nil)

// Record is one traced notification. Integer keys keep the stream compact.
type Record struct {
	Session string    `cbor:"1,keyasint"`
	Seq     uint64    `cbor:"2,keyasint"`
	Time    time.Time `cbor:"3,keyasint"`
	Type    string    `cbor:"4,keyasint"`
	Emitter string    `cbor:"5,keyasint,omitempty"`

	Object string `cbor:"6,keyasint,omitempty"`
	Name   string `cbor:"7,keyasint,omitempty"`
	Label  string `cbor:"8,keyasint,omitempty"`
	State  string `cbor:"9,keyasint,omitempty"`

	InputSource uint32 `cbor:"10,keyasint,omitempty"`
	Action      string `cbor:"11,keyasint,omitempty"`
}

// fill copies the interaction payload of e into r. Unknown payloads only
// keep the envelope.
func (r *Record) fill(e bus.Event) {
	r.Type = e.Type()
	r.Emitter = e.Source()
	r.Time = e.Timestamp()

	switch data := e.Data().(type) {
	case interaction.StateChanged:
		r.Object = data.Object.String()
		r.Name = data.Name
		r.Label = data.Label
		r.State = data.State.String()
		r.InputSource = uint32(data.Primary)
	case interaction.InteractorSelected:
		r.Object = data.Object.String()
		r.Name = data.Name
		r.InputSource = uint32(data.Source)
		r.Action = data.Action.String()
	case interaction.InteractorChanged:
		r.Name = data.Name
		r.InputSource = uint32(data.Source)
	case interaction.InteractableChanged:
		r.Object = data.Object.String()
		r.Name = data.Name
		r.Label = data.Label
	}
}
