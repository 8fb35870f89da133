package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-demo/internal/mesh"
	"mesh-demo/internal/vecmath"
)

func TestNewTerrain(t *testing.T) {
	v, err := NewTerrain(TerrainOptions{Tiles: 4, HeightScale: 2})
	require.NoError(t, err)
	require.Equal(t, 4*4*6, v.Len())
	require.NoError(t, v.Validate())

	for i := 0; i < v.Len(); i += 3 {
		p0, p1, p2 := v.Positions[i], v.Positions[i+1], v.Positions[i+2]
		face := vecmath.Cross(p1.Sub(p0), p2.Sub(p0))
		assert.Greater(t, face.Y, float32(0), "triangle %d faces down", i/3)
	}
	for i, n := range v.Normals {
		assert.InDelta(t, 1, n.Length(), 1e-5, "normal %d", i)
		assert.Greater(t, n.Y, float32(0))
		assert.InDelta(t, 0, v.Tangents[i].Dot(n), 1e-5)
	}
	for i := 0; i < v.Len(); i += 3 {
		e1 := v.Positions[i+1].Sub(v.Positions[i])
		e2 := v.Positions[i+2].Sub(v.Positions[i])
		d1 := v.UVs[i+1].Sub(v.UVs[i])
		d2 := v.UVs[i+2].Sub(v.UVs[i])
		det := d1.X*d2.Y - d2.X*d1.Y
		bitangent := e2.Scale(d1.X / det).Sub(e1.Scale(d2.X / det))
		for j := i; j < i+3; j++ {
			rebuilt := v.Normals[j].Cross(v.Tangents[j]).Scale(v.Handedness[j])
			assert.Greater(t, rebuilt.Dot(bitangent), float32(0), "vertex %d", j)
		}
	}
	for _, p := range v.Positions {
		assert.GreaterOrEqual(t, p.Y, float32(0))
		assert.LessOrEqual(t, p.Y, float32(2))
		assert.LessOrEqual(t, p.X, float32(2))
		assert.GreaterOrEqual(t, p.Z, float32(-2))
	}
}

func TestTerrainDeterministic(t *testing.T) {
	a, err := NewTerrain(TerrainOptions{Tiles: 3})
	require.NoError(t, err)
	b, err := NewTerrain(TerrainOptions{Tiles: 3, Seed: DefaultSeed})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ha, err := Heights(TerrainOptions{Tiles: 8, Seed: 7})
	require.NoError(t, err)
	hb, err := Heights(TerrainOptions{Tiles: 8, Seed: 8})
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestTerrainInvalid(t *testing.T) {
	tests := []TerrainOptions{
		{Tiles: -1},
		{Tiles: MaxTiles + 1},
		{TileSize: -1},
		{HeightScale: -2},
	}
	for _, opts := range tests {
		_, err := NewTerrain(opts)
		assert.ErrorIs(t, err, mesh.ErrInvalidGeometryParameters, "%+v", opts)
	}
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float32(i) * 0.37
		h := fractalValueNoise2D(x, -x*0.5, 3, 4, 2, 0.5)
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
	}
	assert.Equal(t, float32(0), smoothStep(-1))
	assert.Equal(t, float32(1), smoothStep(2))
	assert.Equal(t, float32(0.5), smoothStep(0.5))
}
