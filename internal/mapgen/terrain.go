// Package mapgen generates heightfield terrain from fractal value noise.
// Output is a regular mesh.VertexAttributes triangle list, so terrain goes
// through the same color and tangent passes as the other generators.
package mapgen

import (
	"fmt"

	"github.com/chewxy/math32"

	"mesh-demo/internal/mesh"
	"mesh-demo/internal/vecmath"
)

// DefaultSeed is used when TerrainOptions.Seed is zero. Terrain is always
// deterministic for a given set of options.
const DefaultSeed = 1

// MaxTiles bounds Tiles so a layout typo cannot request millions of vertices.
const MaxTiles = 512

// TerrainOptions controls heightfield generation.
// Tiles is the number of grid cells per side; TileSize is the world size of one cell
// on X and Z. HeightScale is the maximum terrain height. Octaves, Frequency,
// Lacunarity and Gain shape the fractal noise. Zero fields take the defaults.
type TerrainOptions struct {
	Tiles       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultTerrainOptions returns a 32×32 tile terrain up to 3 units high.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Tiles:       32,
		TileSize:    1,
		HeightScale: 3,
		Seed:        DefaultSeed,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2,
		Gain:        0.5,
	}
}

func (o TerrainOptions) withDefaults() TerrainOptions {
	d := DefaultTerrainOptions()
	if o.Tiles == 0 {
		o.Tiles = d.Tiles
	}
	if o.TileSize == 0 {
		o.TileSize = d.TileSize
	}
	if o.HeightScale == 0 {
		o.HeightScale = d.HeightScale
	}
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	return o
}

// Heights samples the noise at every grid point and returns a (Tiles+1)×(Tiles+1)
// grid indexed [z][x], with values in [0, HeightScale].
func Heights(opts TerrainOptions) ([][]float32, error) {
	o := opts.withDefaults()
	if o.Tiles < 1 || o.Tiles > MaxTiles {
		return nil, fmt.Errorf("mapgen: tiles must be in [1, %d], got %d: %w", MaxTiles, o.Tiles, mesh.ErrInvalidGeometryParameters)
	}
	if !positive(o.TileSize) || !positive(o.HeightScale) {
		return nil, fmt.Errorf("mapgen: tile size and height scale must be positive and finite: %w", mesh.ErrInvalidGeometryParameters)
	}
	n := o.Tiles + 1
	grid := make([][]float32, n)
	for z := range grid {
		grid[z] = make([]float32, n)
		for x := range grid[z] {
			h := fractalValueNoise2D(float32(x)*o.Frequency, float32(z)*o.Frequency, o.Seed, o.Octaves, o.Lacunarity, o.Gain)
			grid[z][x] = clamp01(h) * o.HeightScale
		}
	}
	return grid, nil
}

// NewTerrain builds the terrain mesh centered on the origin in XZ with the ground at Y=0.
// Each tile is two triangles facing +Y; normals come from the height gradient and UVs
// repeat once per tile.
func NewTerrain(opts TerrainOptions) (*mesh.VertexAttributes, error) {
	o := opts.withDefaults()
	grid, err := Heights(o)
	if err != nil {
		return nil, err
	}
	half := float32(o.Tiles) * o.TileSize / 2
	point := func(x, z int) vecmath.Vector3 {
		return vecmath.Vec3(float32(x)*o.TileSize-half, grid[z][x], float32(z)*o.TileSize-half)
	}
	normal := func(x, z int) vecmath.Vector3 {
		x0, x1 := max(x-1, 0), min(x+1, o.Tiles)
		z0, z1 := max(z-1, 0), min(z+1, o.Tiles)
		dx := (grid[z][x1] - grid[z][x0]) / (float32(x1-x0) * o.TileSize)
		dz := (grid[z1][x] - grid[z0][x]) / (float32(z1-z0) * o.TileSize)
		return vecmath.Normalize(vecmath.Vec3(-dx, 1, -dz))
	}

	count := o.Tiles * o.Tiles * 6
	v := &mesh.VertexAttributes{
		Positions: make([]vecmath.Vector3, 0, count),
		Normals:   make([]vecmath.Vector3, 0, count),
		UVs:       make([]vecmath.Vector2, 0, count),
	}
	emit := func(x, z int, u, w float32) {
		v.Positions = append(v.Positions, point(x, z))
		v.Normals = append(v.Normals, normal(x, z))
		v.UVs = append(v.UVs, vecmath.Vec2(u, w))
	}
	for z := 0; z < o.Tiles; z++ {
		for x := 0; x < o.Tiles; x++ {
			emit(x, z, 0, 0)
			emit(x, z+1, 0, 1)
			emit(x+1, z+1, 1, 1)

			emit(x, z, 0, 0)
			emit(x+1, z+1, 1, 1)
			emit(x+1, z, 1, 0)
		}
	}

	mesh.CreateColors(v)
	mesh.CalculateTangents(v)
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	return v, nil
}

// fractalValueNoise2D layers smooth value noise with the given octaves, lacunarity
// and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude := float32(1)
	freq := float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	sx := smoothStep(x - fx)
	sy := smoothStep(y - fy)

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps lattice coordinates to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffffff) / 2147483647
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing 3t² - 2t³ on [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func clamp01(f float32) float32 {
	if math32.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func positive(f float32) bool {
	return f > 0 && !math32.IsInf(f, 0)
}
