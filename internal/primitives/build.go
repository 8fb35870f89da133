// Package primitives maps YAML primitive definitions onto the mesh generators.
package primitives

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"mesh-demo/internal/mapgen"
	"mesh-demo/internal/mesh"
	"mesh-demo/internal/vecmath"
)

// ErrUnknownPrimitive is returned for a PrimitiveDef.Type with no generator.
var ErrUnknownPrimitive = errors.New("unknown primitive type")

// generator builds a bundle from a definition's Size.
type generator func(size [3]float32) (*mesh.VertexAttributes, error)

var generators = map[string]generator{
	TypeTriangle: func(size [3]float32) (*mesh.VertexAttributes, error) {
		return mesh.NewTriangle(mesh.TriangleConfig{Base: size[0], Height: size[1], Side: size[2]})
	},
	TypeRectangle: func(size [3]float32) (*mesh.VertexAttributes, error) {
		return mesh.NewRectangle(mesh.RectangleConfig{Width: size[0], Height: size[1]})
	},
	TypeCube: func(size [3]float32) (*mesh.VertexAttributes, error) {
		return mesh.NewCube(mesh.CubeConfig{Side: size[0]})
	},
	TypeTerrain: func(size [3]float32) (*mesh.VertexAttributes, error) {
		tiles, err := wholeNumber("tiles", size[0])
		if err != nil {
			return nil, err
		}
		seed, err := wholeNumber("seed", size[2])
		if err != nil {
			return nil, err
		}
		return mapgen.NewTerrain(mapgen.TerrainOptions{
			Tiles:       int(tiles),
			HeightScale: size[1],
			Seed:        seed,
		})
	},
}

// wholeNumber converts a size component that must hold an integer, such as a
// tile count or seed. Fractions, non-finite values and values outside the int32
// range are rejected rather than truncated.
func wholeNumber(name string, x float32) (int64, error) {
	if math32.IsNaN(x) || math32.IsInf(x, 0) || math32.Floor(x) != x || math32.Abs(x) > math.MaxInt32 {
		return 0, fmt.Errorf("%s %g is not a whole number: %w", name, x, mesh.ErrInvalidGeometryParameters)
	}
	return int64(x), nil
}

// Types returns the supported type names, sorted.
func Types() []string {
	out := make([]string, 0, len(generators))
	for name := range generators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Build generates the vertex attributes for def. Type matching is case-insensitive.
// Errors from the generators wrap mesh.ErrInvalidGeometryParameters.
func Build(def PrimitiveDef) (*mesh.VertexAttributes, error) {
	typ := strings.ToLower(strings.TrimSpace(def.Type))
	gen, ok := generators[typ]
	if !ok {
		return nil, fmt.Errorf("primitives: %q: %w", def.Type, ErrUnknownPrimitive)
	}
	v, err := gen(def.Size)
	if err != nil {
		return nil, fmt.Errorf("primitives: %s: %w", typ, err)
	}
	if def.Color != "" {
		c, err := ParseColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("primitives: %s: %w", typ, err)
		}
		for i := range v.Colors {
			v.Colors[i] = c
		}
	}
	return v, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into an RGBA color in [0,1].
func ParseColor(s string) (vecmath.Vector4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return vecmath.Vector4{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return vecmath.Vector4{}, fmt.Errorf("color %q: %w", s, err)
	}
	ch := func(shift uint) float32 {
		return float32((n>>shift)&0xff) / 255
	}
	return vecmath.Vec4(ch(24), ch(16), ch(8), ch(0)), nil
}

// ParseDefs decodes a YAML list of primitive definitions.
func ParseDefs(data []byte) ([]PrimitiveDef, error) {
	var defs []PrimitiveDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("primitives: %w", err)
	}
	return defs, nil
}

// LoadDefs reads a YAML list of primitive definitions from path.
func LoadDefs(path string) ([]PrimitiveDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("primitives: %w", err)
	}
	return ParseDefs(data)
}
