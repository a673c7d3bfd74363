package physics

// Rigidbody is the subset of a physics body the interaction layer toggles.
type Rigidbody interface {
	IsKinematic() bool
	SetKinematic(bool)
	UseGravity() bool
	SetUseGravity(bool)
}

var _ Rigidbody = (*Body)(nil)

// Body is a plain Rigidbody implementation.
type Body struct {
	Kinematic bool
	Gravity   bool
}

func (b *Body) IsKinematic() bool { return b.Kinematic }
func (b *Body) SetKinematic(k bool) { b.Kinematic = k }
func (b *Body) UseGravity() bool { return b.Gravity }
func (b *Body) SetUseGravity(g bool) { b.Gravity = g }
