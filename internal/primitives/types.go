package primitives

// PrimitiveDef is the YAML definition of one generated primitive (e.g. in assets/layout.yaml).
// Size is interpreted per type; zero entries take the generator defaults:
//   - triangle:  [base, height, side]
//   - rectangle: [width, height, -]
//   - cube:      [side, -, -]
//   - terrain:   [tiles, height scale, seed]
//
// Color is an optional "#rrggbb" or "#rrggbbaa" vertex color; empty keeps the default white.
type PrimitiveDef struct {
	Type  string     `yaml:"type"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// Primitive type names accepted in PrimitiveDef.Type.
const (
	TypeTriangle  = "triangle"
	TypeRectangle = "rectangle"
	TypeCube      = "cube"
	TypeTerrain   = "terrain"
)
