package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-demo/internal/commands"
	"mesh-demo/internal/mesh"
	"mesh-demo/internal/primitives"
)

func newTestRegistry(out *bytes.Buffer) *commands.Registry {
	reg := commands.NewRegistry()
	registerMesh(reg, out)
	registerArea(reg, out)
	return reg
}

func TestMeshCommandText(t *testing.T) {
	var out bytes.Buffer
	reg := newTestRegistry(&out)

	require.NoError(t, reg.Execute([]string{"mesh", "-shape", "triangle", "-base", "2", "-height", "2", "-format", "text"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "3 vertices, 1 triangles", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0: pos "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "w -1"), lines[1])
}

func TestMeshCommandShapes(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-shape", "rectangle", "-width", "2"}, "6 vertices, 2 triangles"},
		{[]string{"-shape", "CUBE", "-side", "3"}, "36 vertices, 12 triangles"},
		{[]string{"-shape", "terrain", "-tiles", "2", "-height", "1", "-seed", "9"}, "24 vertices, 8 triangles"},
	}
	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			var out bytes.Buffer
			reg := newTestRegistry(&out)
			args := append([]string{"mesh", "-format", "text"}, tt.args...)
			require.NoError(t, reg.Execute(args))
			first, _, _ := strings.Cut(out.String(), "\n")
			assert.Equal(t, tt.want, first)
		})
	}
}

func TestMeshCommandErrors(t *testing.T) {
	var out bytes.Buffer
	reg := newTestRegistry(&out)

	err := reg.Execute([]string{"mesh", "-shape", "sphere"})
	assert.ErrorIs(t, err, primitives.ErrUnknownPrimitive)

	err = reg.Execute([]string{"mesh", "-shape", "triangle", "-base", "3", "-side", "1"})
	assert.ErrorIs(t, err, mesh.ErrInvalidGeometryParameters)

	err = reg.Execute([]string{"mesh", "-format", "obj"})
	assert.ErrorContains(t, err, "unknown format")
	assert.Empty(t, out.String())
}

func TestAreaCommand(t *testing.T) {
	var out bytes.Buffer
	reg := newTestRegistry(&out)

	require.NoError(t, reg.Execute([]string{"area", "-base", "4", "-height", "3"}))
	assert.Equal(t, "6\n", out.String())

	out.Reset()
	require.NoError(t, reg.Execute([]string{"area", "-base", "2"}))
	assert.Equal(t, "1.7320508\n", out.String())

	err := reg.Execute([]string{"area", "-base", "0"})
	assert.ErrorIs(t, err, mesh.ErrInvalidGeometryParameters)
}
