package primitives

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-demo/internal/mesh"
	"mesh-demo/internal/vecmath"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		def   PrimitiveDef
		verts int
	}{
		{"triangle", PrimitiveDef{Type: "triangle", Size: [3]float32{2, 2, 0}}, 3},
		{"triangle defaults", PrimitiveDef{Type: "Triangle"}, 3},
		{"rectangle", PrimitiveDef{Type: "rectangle", Size: [3]float32{4, 4, 0}}, 6},
		{"cube", PrimitiveDef{Type: " cube "}, 36},
		{"terrain", PrimitiveDef{Type: "terrain", Size: [3]float32{2, 1, 5}}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Build(tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.verts, v.Len())
			assert.NoError(t, v.Validate())
		})
	}
}

func TestBuildMatchesGenerator(t *testing.T) {
	got, err := Build(PrimitiveDef{Type: TypeTriangle, Size: [3]float32{2, 2, 0}})
	require.NoError(t, err)
	want, err := mesh.NewTriangle(mesh.TriangleConfig{Base: 2, Height: 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(PrimitiveDef{Type: "sphere"})
	assert.ErrorIs(t, err, ErrUnknownPrimitive)

	_, err = Build(PrimitiveDef{Type: TypeTriangle, Size: [3]float32{3, 0, 1}})
	assert.ErrorIs(t, err, mesh.ErrInvalidGeometryParameters)

	_, err = Build(PrimitiveDef{Type: TypeCube, Color: "red"})
	assert.Error(t, err)
}

func TestBuildTerrainRejectsFractions(t *testing.T) {
	inf := math32.Inf(1)
	tests := []struct {
		name string
		size [3]float32
	}{
		{"fractional tiles", [3]float32{2.5, 1, 0}},
		{"nan tiles", [3]float32{math32.NaN(), 1, 0}},
		{"infinite tiles", [3]float32{inf, 1, 0}},
		{"huge tiles", [3]float32{1e12, 1, 0}},
		{"fractional seed", [3]float32{4, 1, 0.5}},
		{"infinite seed", [3]float32{4, 1, -inf}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(PrimitiveDef{Type: TypeTerrain, Size: tt.size})
			assert.ErrorIs(t, err, mesh.ErrInvalidGeometryParameters)
		})
	}

	v, err := Build(PrimitiveDef{Type: TypeTerrain, Size: [3]float32{3, 1, 42}})
	require.NoError(t, err)
	assert.Equal(t, 3*3*6, v.Len())
}

func TestBuildColor(t *testing.T) {
	v, err := Build(PrimitiveDef{Type: TypeRectangle, Color: "#ff000080"})
	require.NoError(t, err)
	for _, c := range v.Colors {
		assert.Equal(t, float32(1), c.X)
		assert.Equal(t, float32(0), c.Y)
		assert.InDelta(t, 128.0/255, c.W, 1e-6)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	assert.Equal(t, vecmath.Vec4(0x33/255.0, 0x66/255.0, 0x99/255.0, 1), c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{"cube", "rectangle", "terrain", "triangle"}, Types())
}

func TestLoadDefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	data := []byte(`
- type: cube
  size: [2, 0, 0]
- type: triangle
  size: [3, 0, 2]
  color: "#00ff00"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	defs, err := LoadDefs(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, PrimitiveDef{Type: "cube", Size: [3]float32{2, 0, 0}}, defs[0])
	assert.Equal(t, "#00ff00", defs[1].Color)

	for _, d := range defs {
		_, err := Build(d)
		assert.NoError(t, err)
	}

	_, err = LoadDefs(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = ParseDefs([]byte("type: [unclosed"))
	assert.Error(t, err)
}
