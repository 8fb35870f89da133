// Package vecmath provides the small float32 vector value types used by mesh
// generation: Vector2 for texture coordinates, Vector3 for geometry and Vector4
// for RGBA colors.
package vecmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector2 is a 2-component float32 value, used for UV texture coordinates.
type Vector2 struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

// Vec2 returns a new Vector2 with the given components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Vector4 is a 4-component float32 value. Mesh colors use it as RGBA in [0,1].
type Vector4 struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
	W float32 `yaml:"w" json:"w"`
}

// Vec4 returns a new Vector4 with the given components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// RGBA8 converts v, read as a color in [0,1], to 8-bit channels. Components are clamped.
func (v Vector4) RGBA8() [4]uint8 {
	return [4]uint8{channel8(v.X), channel8(v.Y), channel8(v.Z), channel8(v.W)}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

func channel8(c float32) uint8 {
	if !isFinite(c) || c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// ApproxEqual3 reports whether every component of a and b differs by at most eps.
func ApproxEqual3(a, b Vector3, eps float32) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) && ApproxEqual(a.Z, b.Z, eps)
}
