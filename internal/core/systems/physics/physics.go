package physics

import "math"

// Vec3 is a 3D vector used for positions and displacements.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Distance computes Euclidean distance between two points.
func Distance(a, b Vec3) float64 { return b.Sub(a).Length() }

// Transform3D holds a world-space position.
type Transform3D struct {
	Pos Vec3
}

func (t *Transform3D) Position() Vec3 { return t.Pos }

func (t *Transform3D) SetPosition(p Vec3) { t.Pos = p }

// Translate moves the transform by delta relative to its current position.
func (t *Transform3D) Translate(delta Vec3) { t.Pos = t.Pos.Add(delta) }
