package mesh

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Write.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// Write prints v in the given format. FormatText writes a header line followed
// by one line per vertex; FormatYAML writes the attribute sequences as a YAML document.
func Write(w io.Writer, v *VertexAttributes, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("mesh: %w", err)
		}
		return enc.Close()
	case FormatText:
		if _, err := fmt.Fprintf(w, "%d vertices, %d triangles\n", v.Len(), v.TriangleCount()); err != nil {
			return err
		}
		for i := range v.Positions {
			_, err := fmt.Fprintf(w, "%d: pos %v normal %v uv %v color %v tangent %v w %g\n",
				i, v.Positions[i], at(v.Normals, i), at(v.UVs, i), at(v.Colors, i), at(v.Tangents, i), at(v.Handedness, i))
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("mesh: unknown format %q", format)
	}
}

// at returns s[i], or the zero value when s is shorter than i+1.
func at[T any](s []T, i int) T {
	var zero T
	if i >= len(s) {
		return zero
	}
	return s[i]
}
