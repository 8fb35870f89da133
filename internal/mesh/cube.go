package mesh

import "mesh-demo/internal/vecmath"

// CubeConfig describes an axis-aligned cube centered at the origin. Zero Side defaults to 1.
type CubeConfig struct {
	Side float32 `yaml:"side,omitempty"`
}

// cubeFace is one face: outward normal n and in-plane axes u, w with u × w = n,
// so the face winds counter-clockwise when seen from outside.
type cubeFace struct {
	n, u, w vecmath.Vector3
}

var cubeFaces = [6]cubeFace{
	{n: vecmath.Vec3(0, 0, 1), u: vecmath.Vec3(1, 0, 0), w: vecmath.Vec3(0, 1, 0)},   // front
	{n: vecmath.Vec3(0, 0, -1), u: vecmath.Vec3(-1, 0, 0), w: vecmath.Vec3(0, 1, 0)}, // back
	{n: vecmath.Vec3(1, 0, 0), u: vecmath.Vec3(0, 0, -1), w: vecmath.Vec3(0, 1, 0)},  // right
	{n: vecmath.Vec3(-1, 0, 0), u: vecmath.Vec3(0, 0, 1), w: vecmath.Vec3(0, 1, 0)},  // left
	{n: vecmath.Vec3(0, 1, 0), u: vecmath.Vec3(1, 0, 0), w: vecmath.Vec3(0, 0, -1)},  // top
	{n: vecmath.Vec3(0, -1, 0), u: vecmath.Vec3(1, 0, 0), w: vecmath.Vec3(0, 0, 1)},  // bottom
}

// NewCube builds a cube of 6 faces × 2 triangles (36 vertices) with outward
// normals and a full [0,1]² UV square on every face.
func NewCube(cfg CubeConfig) (*VertexAttributes, error) {
	s := cfg.Side
	if s == 0 {
		s = 1
	}
	if err := checkSize("side", s); err != nil {
		return nil, err
	}
	a := s / 2
	v := &VertexAttributes{}
	for _, f := range cubeFaces {
		// corner at -u, -w on the face plane
		c0 := f.n.Scale(a).Sub(f.u.Scale(a)).Sub(f.w.Scale(a))
		appendQuad(v, c0, f.u.Scale(s), f.w.Scale(s), f.n)
	}
	return finish(v)
}
