package input

import (
	"github.com/zeusync/interactionsdk/internal/core/scene"
	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

var (
	_ Source     = (*BasicSource)(nil)
	_ Pointer    = (*BasicPointer)(nil)
	_ Controller = (*BasicController)(nil)
)

// BasicPointer is a Pointer whose target is set explicitly by the caller
// standing in for a raycaster.
type BasicPointer struct {
	id      PointerID
	enabled bool
	target  scene.ObjectID
	locked  bool
}

func NewBasicPointer(id PointerID) *BasicPointer {
	return &BasicPointer{id: id, enabled: true}
}

func (p *BasicPointer) ID() PointerID { return p.id }
func (p *BasicPointer) InteractionEnabled() bool { return p.enabled }
func (p *BasicPointer) CurrentTarget() scene.ObjectID { return p.target }
func (p *BasicPointer) FocusLocked() bool { return p.locked }
func (p *BasicPointer) SetFocusLocked(locked bool) { p.locked = locked }
func (p *BasicPointer) SetInteractionEnabled(on bool) { p.enabled = on }

// Aim points at target. A focus-locked pointer keeps its target and Aim reports false.
func (p *BasicPointer) Aim(target scene.ObjectID) bool {
	if p.locked {
		return false
	}
	p.target = target
	return true
}

// BasicSource owns a fixed list of pointers.
type BasicSource struct {
	id       SourceID
	name     string
	pointers []*BasicPointer
}

// NewBasicSource creates a source named name with pointerCount pointers numbered from 0.
// The SourceID is derived from the name.
func NewBasicSource(name string, pointerCount int) *BasicSource {
	pointers := make([]*BasicPointer, pointerCount)
	for i := range pointers {
		pointers[i] = NewBasicPointer(PointerID(i))
	}
	return &BasicSource{
		id:       SourceIDFromName(name),
		name:     name,
		pointers: pointers,
	}
}

func (s *BasicSource) ID() SourceID { return s.id }
func (s *BasicSource) Name() string { return s.name }

func (s *BasicSource) Pointers() []Pointer {
	out := make([]Pointer, len(s.pointers))
	for i, p := range s.pointers {
		out[i] = p
	}
	return out
}

// Pointer returns the concrete pointer so callers can aim it.
func (s *BasicSource) Pointer(id PointerID) (*BasicPointer, bool) {
	for _, p := range s.pointers {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}

// BasicController is a Controller with a settable position.
type BasicController struct {
	source   Source
	hand     bool
	position physics.Vec3
}

func NewBasicController(source Source, handTracked bool) *BasicController {
	return &BasicController{source: source, hand: handTracked}
}

func (c *BasicController) Source() Source { return c.source }
func (c *BasicController) HandTracked() bool { return c.hand }
func (c *BasicController) Position() physics.Vec3 { return c.position }
func (c *BasicController) SetPosition(p physics.Vec3) { c.position = p }
