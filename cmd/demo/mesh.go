package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"mesh-demo/internal/commands"
	"mesh-demo/internal/mesh"
	"mesh-demo/internal/primitives"
)

func registerMesh(reg *commands.Registry, out io.Writer) {
	fs := flag.NewFlagSet("mesh", flag.ContinueOnError)
	shape := fs.String("shape", primitives.TypeTriangle, "triangle, rectangle, cube or terrain")
	base := fs.Float64("base", 0, "triangle base (0 = default width)")
	height := fs.Float64("height", 0, "triangle or rectangle height, terrain height scale (0 = derived or default)")
	side := fs.Float64("side", 0, "triangle leg or cube side (0 = default)")
	width := fs.Float64("width", 0, "rectangle width (0 = default)")
	tiles := fs.Int("tiles", 0, "terrain tiles per side (0 = default)")
	seed := fs.Int("seed", 0, "terrain noise seed (0 = default)")
	color := fs.String("color", "", "vertex color as #rrggbb or #rrggbbaa")
	format := fs.String("format", mesh.FormatYAML, "output format: yaml or text")
	reg.Register("mesh", "print the vertex attributes of a generated shape", fs, func() error {
		def := primitives.PrimitiveDef{Type: *shape, Color: *color}
		switch strings.ToLower(strings.TrimSpace(*shape)) {
		case primitives.TypeTriangle:
			def.Size = [3]float32{float32(*base), float32(*height), float32(*side)}
		case primitives.TypeRectangle:
			def.Size = [3]float32{float32(*width), float32(*height), 0}
		case primitives.TypeCube:
			def.Size = [3]float32{float32(*side), 0, 0}
		case primitives.TypeTerrain:
			def.Size = [3]float32{float32(*tiles), float32(*height), float32(*seed)}
		}
		v, err := primitives.Build(def)
		if err != nil {
			return err
		}
		return mesh.Write(out, v, *format)
	})
}

func registerArea(reg *commands.Registry, out io.Writer) {
	fs := flag.NewFlagSet("area", flag.ContinueOnError)
	base := fs.Float64("base", float64(mesh.Width), "triangle base")
	height := fs.Float64("height", 0, "triangle height (0 = equilateral height for base)")
	reg.Register("area", "print the area of a triangle", fs, func() error {
		b, h := float32(*base), float32(*height)
		if h == 0 {
			var err error
			if h, err = mesh.Height(b, b); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(out, "%g\n", mesh.Area(b, h))
		return err
	})
}
