package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 is a 3-component float32 value used for positions, normals and tangents.
// All operations return new values; only NormalizeInPlace mutates its receiver.
type Vector3 struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
}

// Vec3 returns a new Vector3 with the given components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a + b.
func Add(a, b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Subtract returns a - b.
func Subtract(a, b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Multiply returns the component-wise product of a and b.
func Multiply(a, b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Divide returns the component-wise quotient of a and b. A zero component in b
// yields ±Inf or NaN in that component, following float32 division.
func Divide(a, b Vector3) Vector3 {
	return Vector3{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Scale returns v with every component multiplied by k.
func Scale(v Vector3, k float32) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of v.
func Length(v Vector3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length.
// A zero-length (or non-finite length) vector returns the zero vector instead of NaN.
func Normalize(v Vector3) Vector3 {
	l := Length(v)
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return Vector3{}
	}
	return Scale(v, 1/l)
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Add(v, o) }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Subtract(v, o) }

// Mul returns the component-wise product v * o.
func (v Vector3) Mul(o Vector3) Vector3 { return Multiply(v, o) }

// Div returns the component-wise quotient v / o.
func (v Vector3) Div(o Vector3) Vector3 { return Divide(v, o) }

// Scale returns v * k.
func (v Vector3) Scale(k float32) Vector3 { return Scale(v, k) }

// Dot returns v · o.
func (v Vector3) Dot(o Vector3) float32 { return Dot(v, o) }

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 { return Cross(v, o) }

// Length returns |v|.
func (v Vector3) Length() float32 { return Length(v) }

// Normalize returns the unit vector of v, or the zero vector if v has zero length.
func (v Vector3) Normalize() Vector3 { return Normalize(v) }

// NormalizeInPlace normalizes v and returns it for chaining.
func (v *Vector3) NormalizeInPlace() *Vector3 {
	*v = Normalize(*v)
	return v
}

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// String formats v as "(x, y, z)". Debug output only.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// IsFinite reports whether no component of v is NaN or ±Inf.
func IsFinite(v Vector3) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
