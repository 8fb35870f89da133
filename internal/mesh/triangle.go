package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	"mesh-demo/internal/vecmath"
)

// Width is the default triangle base (and side) length.
const Width float32 = 1.0

// TriangleConfig describes an isoceles triangle. Zero fields take defaults:
//   - Base defaults to Width.
//   - Side defaults to Base.
//   - Height, when zero, is derived from Base and Side with Height().
//
// Setting both Side and Height is rejected because they would disagree.
type TriangleConfig struct {
	Base   float32 `yaml:"base,omitempty"`
	Side   float32 `yaml:"side,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

// Height returns the altitude of an isoceles triangle with the given base and
// equal sides: sqrt(side² - (base/2)²). It fails with ErrInvalidGeometryParameters
// when the radicand is not positive (side ≤ base/2) or overflows float32.
func Height(base, side float32) (float32, error) {
	half := base / 2
	radicand := side*side - half*half
	if math32.IsNaN(radicand) || radicand <= 0 {
		return 0, invalidParam("side %g is too short for base %g", side, base)
	}
	if math32.IsInf(radicand, 0) {
		return 0, invalidParam("side %g and base %g overflow the height", side, base)
	}
	return math32.Sqrt(radicand), nil
}

// Area returns base*height/2.
func Area(base, height float32) float32 {
	return height * base / 2
}

// resolve applies the defaults and derives the height.
func (c TriangleConfig) resolve() (base, height float32, err error) {
	base = c.Base
	if base == 0 {
		base = Width
	}
	if err := checkSize("base", base); err != nil {
		return 0, 0, err
	}
	if c.Height != 0 {
		if c.Side != 0 {
			return 0, 0, invalidParam("side and height are both set")
		}
		if err := checkSize("height", c.Height); err != nil {
			return 0, 0, err
		}
		return base, c.Height, nil
	}
	side := c.Side
	if side == 0 {
		side = base
	}
	if err := checkSize("side", side); err != nil {
		return 0, 0, err
	}
	height, err = Height(base, side)
	if err != nil {
		return 0, 0, err
	}
	return base, height, nil
}

// NewTriangle builds a flat triangle in the XY plane centered at the origin,
// facing -Z. Vertices are (-b/2,-h/2,0), (b/2,-h/2,0) and (0,h/2,0).
func NewTriangle(cfg TriangleConfig) (*VertexAttributes, error) {
	base, height, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	hb, hh := base/2, height/2
	normal := vecmath.Vec3(0, 0, -1)
	v := &VertexAttributes{
		Positions: []vecmath.Vector3{
			vecmath.Vec3(-hb, -hh, 0),
			vecmath.Vec3(hb, -hh, 0),
			vecmath.Vec3(0, hh, 0),
		},
		Normals: []vecmath.Vector3{normal, normal, normal},
		UVs: []vecmath.Vector2{
			vecmath.Vec2(0, 0),
			vecmath.Vec2(1, 0),
			vecmath.Vec2(0.5, 1),
		},
	}
	return finish(v)
}

func invalidParam(format string, args ...any) error {
	return fmt.Errorf("mesh: %s: %w", fmt.Sprintf(format, args...), ErrInvalidGeometryParameters)
}
