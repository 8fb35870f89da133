// Package mesh generates the vertex attributes of basic primitives (triangle,
// rectangle, cube) and derives their colors and tangents. Every generator is a
// pure function: same parameters, same bundle, no shared state.
package mesh

import (
	"errors"
	"fmt"

	"mesh-demo/internal/vecmath"

	"github.com/jinzhu/copier"
)

// ErrInvalidGeometryParameters is returned when shape parameters cannot produce
// finite geometry (negative altitude radicand, non-positive or non-finite sizes).
var ErrInvalidGeometryParameters = errors.New("invalid geometry parameters")

// VertexAttributes holds one entry per vertex in parallel sequences.
// Index i describes the same vertex in every sequence. Geometry is a triangle
// list: vertices 3k, 3k+1 and 3k+2 form face k.
// Colors stay empty until CreateColors runs; Tangents and Handedness until
// CalculateTangents runs. Handedness[i] is +1 or -1, the sign of the bitangent
// relative to cross(Normals[i], Tangents[i]).
type VertexAttributes struct {
	Positions  []vecmath.Vector3 `yaml:"positions"`
	Normals    []vecmath.Vector3 `yaml:"normals"`
	UVs        []vecmath.Vector2 `yaml:"uvs"`
	Colors     []vecmath.Vector4 `yaml:"colors"`
	Tangents   []vecmath.Vector3 `yaml:"tangents"`
	Handedness []float32         `yaml:"handedness"`
}

// Len returns the number of vertices (the length of Positions).
func (v *VertexAttributes) Len() int {
	return len(v.Positions)
}

// TriangleCount returns the number of complete faces.
func (v *VertexAttributes) TriangleCount() int {
	return len(v.Positions) / 3
}

// Validate checks the fully populated invariants: all sequences have the same
// length, that length is a whole number of triangles, every position, normal and
// tangent is finite, and every handedness is ±1.
func (v *VertexAttributes) Validate() error {
	n := len(v.Positions)
	if n == 0 {
		return fmt.Errorf("mesh: no vertices")
	}
	if n%3 != 0 {
		return fmt.Errorf("mesh: %d vertices is not a triangle list", n)
	}
	lens := []struct {
		name string
		n    int
	}{
		{"normals", len(v.Normals)},
		{"uvs", len(v.UVs)},
		{"colors", len(v.Colors)},
		{"tangents", len(v.Tangents)},
		{"handedness", len(v.Handedness)},
	}
	for _, l := range lens {
		if l.n != n {
			return fmt.Errorf("mesh: %s has %d entries, positions has %d", l.name, l.n, n)
		}
	}
	for i := 0; i < n; i++ {
		if !vecmath.IsFinite(v.Positions[i]) || !vecmath.IsFinite(v.Normals[i]) || !vecmath.IsFinite(v.Tangents[i]) {
			return fmt.Errorf("mesh: vertex %d is not finite", i)
		}
		if h := v.Handedness[i]; h != 1 && h != -1 {
			return fmt.Errorf("mesh: vertex %d has handedness %g", i, h)
		}
	}
	return nil
}

// Clone returns a deep copy that shares no backing arrays with v.
// The upload step takes a clone so the caller keeps exclusive ownership of v.
func (v *VertexAttributes) Clone() (*VertexAttributes, error) {
	out := &VertexAttributes{}
	if err := copier.CopyWithOption(out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("mesh: clone: %w", err)
	}
	return out, nil
}

// Buffers is the flat, GPU-ready layout of a VertexAttributes.
type Buffers struct {
	VertexCount   int
	TriangleCount int
	Positions     []float32 // x, y, z
	Texcoords     []float32 // u, v
	Normals       []float32 // x, y, z
	Tangents      []float32 // x, y, z, handedness
	Colors        []uint8   // r, g, b, a
}

// Flatten packs v into flat arrays. v must satisfy Validate.
func (v *VertexAttributes) Flatten() Buffers {
	n := v.Len()
	b := Buffers{
		VertexCount:   n,
		TriangleCount: n / 3,
		Positions:     make([]float32, 0, n*3),
		Texcoords:     make([]float32, 0, n*2),
		Normals:       make([]float32, 0, n*3),
		Tangents:      make([]float32, 0, n*4),
		Colors:        make([]uint8, 0, n*4),
	}
	for i := 0; i < n; i++ {
		p, nm, uv, t := v.Positions[i], v.Normals[i], v.UVs[i], v.Tangents[i]
		b.Positions = append(b.Positions, p.X, p.Y, p.Z)
		b.Texcoords = append(b.Texcoords, uv.X, uv.Y)
		b.Normals = append(b.Normals, nm.X, nm.Y, nm.Z)
		b.Tangents = append(b.Tangents, t.X, t.Y, t.Z, v.Handedness[i])
		c := v.Colors[i].RGBA8()
		b.Colors = append(b.Colors, c[:]...)
	}
	return b
}
