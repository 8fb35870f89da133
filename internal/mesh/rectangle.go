package mesh

import "mesh-demo/internal/vecmath"

// RectangleConfig describes a rectangle in the XY plane. Zero fields default to 1.
type RectangleConfig struct {
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

// NewRectangle builds a rectangle centered at the origin in the XY plane from two
// triangles (6 vertices). Like the triangle it faces -Z, and its UVs span [0,1]².
func NewRectangle(cfg RectangleConfig) (*VertexAttributes, error) {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	if err := checkSize("width", w); err != nil {
		return nil, err
	}
	if err := checkSize("height", h); err != nil {
		return nil, err
	}
	v := &VertexAttributes{}
	appendQuad(v,
		vecmath.Vec3(-w/2, -h/2, 0),
		vecmath.Vec3(w, 0, 0),
		vecmath.Vec3(0, h, 0),
		vecmath.Vec3(0, 0, -1),
	)
	return finish(v)
}

// appendQuad appends the quad with corner c0 and edges u, w as two triangles
// (c0, c1, c2) and (c0, c2, c3). UV (0,0) maps to c0, (1,0) to c0+u, (0,1) to c0+w.
func appendQuad(v *VertexAttributes, c0, u, w, normal vecmath.Vector3) {
	c1 := c0.Add(u)
	c2 := c1.Add(w)
	c3 := c0.Add(w)
	uv0, uv1, uv2, uv3 := vecmath.Vec2(0, 0), vecmath.Vec2(1, 0), vecmath.Vec2(1, 1), vecmath.Vec2(0, 1)

	v.Positions = append(v.Positions, c0, c1, c2, c0, c2, c3)
	v.UVs = append(v.UVs, uv0, uv1, uv2, uv0, uv2, uv3)
	for i := 0; i < 6; i++ {
		v.Normals = append(v.Normals, normal)
	}
}
