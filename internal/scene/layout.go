package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mesh-demo/internal/primitives"
	"mesh-demo/internal/texture"
	"mesh-demo/internal/vecmath"
)

// DefaultLayoutPath is where the layout is read from, relative to the working directory.
const DefaultLayoutPath = "assets/layout.yaml"

// Layout is the YAML description of what to draw. Objects form a flat list;
// there is no parenting between them.
type Layout struct {
	Light     Light                  `yaml:"light"`
	Grid      bool                   `yaml:"grid"`
	Materials map[string]texture.Set `yaml:"materials"`
	Objects   []Object               `yaml:"objects"`
}

// DefaultLayout is the stock demo: a metal cube at the origin, a tiled cube at
// (2,0,2), and a 4×4 plane marking the light, turned 90° about X.
func DefaultLayout() Layout {
	return Layout{
		Light: DefaultLight(),
		Grid:  false,
		Materials: map[string]texture.Set{
			"metal": {
				Diffuse:  "assets/textures/1857-diffuse.jpg",
				Specular: "assets/textures/1857-specexponent.jpg",
				Normal:   "assets/textures/1857-normal.jpg",
			},
			"tile": {
				Diffuse:  "assets/textures/10744-diffuse.jpg",
				Specular: "assets/textures/10744-specstrength.jpg",
				Normal:   "assets/textures/10744-normal.jpg",
				AO:       "assets/textures/10744-ambientocclusion.jpg",
			},
		},
		Objects: []Object{
			{
				Name:      "metal-cube",
				Primitive: primitives.PrimitiveDef{Type: primitives.TypeCube},
				Material:  "metal",
			},
			{
				Name:      "tile-cube",
				Primitive: primitives.PrimitiveDef{Type: primitives.TypeCube},
				Position:  vecmath.Vec3(2, 0, 2),
				Material:  "tile",
			},
			{
				Name:         "light",
				Primitive:    primitives.PrimitiveDef{Type: primitives.TypeRectangle, Size: [3]float32{4, 4, 0}},
				AtLight:      true,
				RotationAxis: vecmath.Vec3(1, 0, 0),
				RotationDeg:  90,
				Material:     "metal",
				Shader:       ShaderLight,
			},
		},
	}
}

// ParseLayout decodes and validates a YAML layout. Fields missing from the
// document keep their DefaultLight values; objects and materials replace the defaults.
func ParseLayout(data []byte) (Layout, error) {
	l := Layout{Light: DefaultLight()}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("scene: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads the layout at path. A missing file yields DefaultLayout and no
// error; an invalid file yields DefaultLayout and the error so the caller can log it.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultLayout(), nil
		}
		return DefaultLayout(), fmt.Errorf("scene: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return DefaultLayout(), err
	}
	return l, nil
}

// Validate checks that every object names a known shader and material.
func (l Layout) Validate() error {
	for i, o := range l.Objects {
		switch o.ShaderName() {
		case ShaderLit, ShaderLight:
		default:
			return fmt.Errorf("scene: object %d (%s): unknown shader %q", i, o.Name, o.Shader)
		}
		if o.Material == "" {
			continue
		}
		if _, ok := l.Materials[o.Material]; !ok {
			return fmt.Errorf("scene: object %d (%s): unknown material %q", i, o.Name, o.Material)
		}
	}
	return nil
}
