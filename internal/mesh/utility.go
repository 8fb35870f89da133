package mesh

import (
	"github.com/chewxy/math32"

	"mesh-demo/internal/vecmath"
)

// DefaultColor is the vertex color assigned by CreateColors: opaque white, so
// a texture sampled in the shader is shown unchanged.
var DefaultColor = vecmath.Vec4(1, 1, 1, 1)

// uvEpsilon is the smallest |det| of a face's UV edge matrix that still yields a tangent.
const uvEpsilon = 1e-8

// CreateColors sets one DefaultColor per position, replacing any existing colors.
func CreateColors(v *VertexAttributes) {
	v.Colors = make([]vecmath.Vector4, len(v.Positions))
	for i := range v.Colors {
		v.Colors[i] = DefaultColor
	}
}

// CalculateTangents derives one tangent and one handedness sign per vertex from
// positions, normals and UVs.
//
// For each face the tangent frame solves
//
//	e1 = T*Δu1 + B*Δv1
//	e2 = T*Δu2 + B*Δv2
//
// giving T = (e1*Δv2 - e2*Δv1) / det and B = (e2*Δu1 - e1*Δu2) / det with
// det = Δu1*Δv2 - Δu2*Δv1. Face tangents and bitangents are summed into their
// vertices; each tangent sum is then made orthogonal to the vertex normal and
// normalized. Handedness is +1 when cross(N, T) points along the summed
// bitangent and -1 otherwise, so a shader rebuilds B as cross(N, T) * w.
// Faces whose UV determinant is zero contribute nothing; a vertex that received
// no contribution keeps the zero tangent and handedness +1.
//
// Normals and UVs must have the same length as Positions.
func CalculateTangents(v *VertexAttributes) {
	n := len(v.Positions)
	v.Tangents = make([]vecmath.Vector3, n)
	v.Handedness = make([]float32, n)
	bitangents := make([]vecmath.Vector3, n)

	for i := 0; i+2 < n; i += 3 {
		t, b, ok := faceFrame(
			v.Positions[i], v.Positions[i+1], v.Positions[i+2],
			v.UVs[i], v.UVs[i+1], v.UVs[i+2],
		)
		if !ok {
			continue
		}
		for j := i; j < i+3; j++ {
			v.Tangents[j] = v.Tangents[j].Add(t)
			bitangents[j] = bitangents[j].Add(b)
		}
	}

	for i := range v.Tangents {
		v.Tangents[i] = orthogonalize(v.Tangents[i], v.Normals[i])
		v.Handedness[i] = 1
		if vecmath.Dot(vecmath.Cross(v.Normals[i], v.Tangents[i]), bitangents[i]) < 0 {
			v.Handedness[i] = -1
		}
	}
}

// faceFrame returns the unnormalized tangent and bitangent of one face, or false
// when the face's UV mapping is degenerate.
func faceFrame(p0, p1, p2 vecmath.Vector3, uv0, uv1, uv2 vecmath.Vector2) (vecmath.Vector3, vecmath.Vector3, bool) {
	e1 := vecmath.Subtract(p1, p0)
	e2 := vecmath.Subtract(p2, p0)
	d1 := uv1.Sub(uv0)
	d2 := uv2.Sub(uv0)

	det := d1.X*d2.Y - d2.X*d1.Y
	if math32.Abs(det) < uvEpsilon {
		return vecmath.Vector3{}, vecmath.Vector3{}, false
	}
	r := 1 / det
	t := vecmath.Subtract(vecmath.Scale(e1, d2.Y*r), vecmath.Scale(e2, d1.Y*r))
	b := vecmath.Subtract(vecmath.Scale(e2, d1.X*r), vecmath.Scale(e1, d2.X*r))
	if !vecmath.IsFinite(t) || !vecmath.IsFinite(b) {
		return vecmath.Vector3{}, vecmath.Vector3{}, false
	}
	return t, b, true
}

// orthogonalize applies one Gram-Schmidt step, T' = normalize(T - N(N·T)).
func orthogonalize(t, n vecmath.Vector3) vecmath.Vector3 {
	if t.IsZero() {
		return t
	}
	n = vecmath.Normalize(n)
	return vecmath.Normalize(vecmath.Subtract(t, vecmath.Scale(n, vecmath.Dot(n, t))))
}

// finish runs the shared utility passes and validates the result.
func finish(v *VertexAttributes) (*VertexAttributes, error) {
	CreateColors(v)
	CalculateTangents(v)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// checkSize rejects sizes that cannot produce finite, non-degenerate geometry.
func checkSize(name string, s float32) error {
	if math32.IsNaN(s) || math32.IsInf(s, 0) || s <= 0 {
		return invalidParam("%s must be positive and finite, got %g", name, s)
	}
	return nil
}
