// Package scene holds the minimal scene-graph shapes the interaction layer
// touches: object identity, renderers and materials.
package scene

import (
	"github.com/google/uuid"

	"github.com/zeusync/interactionsdk/internal/core/systems/physics"
)

// ObjectID identifies a scene object. Pointers report their current target as an ObjectID.
type ObjectID uuid.UUID

// NilObjectID is the zero ObjectID; pointers use it to report "no target".
var NilObjectID ObjectID

func NewObjectID() ObjectID {
	return ObjectID(uuid.New())
}

// ParseObjectID parses the canonical UUID form.
func ParseObjectID(s string) (ObjectID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilObjectID, err
	}
	return ObjectID(id), nil
}

func (id ObjectID) String() string {
	return uuid.UUID(id).String()
}

func (id ObjectID) IsNil() bool {
	return id == NilObjectID
}

// Material is an opaque render material handle.
type Material struct {
	Name string
}

// Renderer swaps the material used to draw an object.
type Renderer interface {
	Material() Material
	SetMaterial(Material)
}

var _ Renderer = (*MeshRenderer)(nil)

// MeshRenderer records the active material and how many times it was swapped.
type MeshRenderer struct {
	current Material
	swaps   int
}

func NewMeshRenderer(initial Material) *MeshRenderer {
	return &MeshRenderer{current: initial}
}

func (r *MeshRenderer) Material() Material { return r.current }

func (r *MeshRenderer) SetMaterial(m Material) {
	r.current = m
	r.swaps++
}

// Swaps reports how many SetMaterial calls happened.
func (r *MeshRenderer) Swaps() int { return r.swaps }

// Object is a scene node. Renderer and Body are optional.
type Object struct {
	ID        ObjectID
	Name      string
	Transform *physics.Transform3D
	Renderer  *MeshRenderer
	Body      *physics.Body
}

func NewObject(name string) *Object {
	return &Object{
		ID:        NewObjectID(),
		Name:      name,
		Transform: &physics.Transform3D{},
	}
}
