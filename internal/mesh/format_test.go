package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteText(t *testing.T) {
	v, err := NewTriangle(TriangleConfig{Base: 2, Height: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v, FormatText))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "3 vertices, 1 triangles", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0: pos (-1, -1, 0) normal (0, 0, -1) uv (0, 0) color (1, 1, 1, 1) tangent "), lines[1])
}

func TestWriteYAML(t *testing.T) {
	v, err := NewCube(CubeConfig{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v, FormatYAML))

	var got VertexAttributes
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, v.Positions, got.Positions)
	assert.Equal(t, v.UVs, got.UVs)
	assert.Len(t, got.Tangents, 36)
}

func TestWriteUnknownFormat(t *testing.T) {
	v, err := NewRectangle(RectangleConfig{})
	require.NoError(t, err)
	assert.ErrorContains(t, Write(&bytes.Buffer{}, v, "xml"), `unknown format "xml"`)
}
