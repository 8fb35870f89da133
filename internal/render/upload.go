package render

import (
	"fmt"
	"image"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-demo/internal/mesh"
)

// UploadMesh copies v into GPU buffers and returns the raylib mesh that refers to them.
// The caller's attributes are not retained or modified.
func UploadMesh(v *mesh.VertexAttributes) (rl.Mesh, error) {
	if err := v.Validate(); err != nil {
		return rl.Mesh{}, fmt.Errorf("render: %w", err)
	}
	owned, err := v.Clone()
	if err != nil {
		return rl.Mesh{}, fmt.Errorf("render: %w", err)
	}
	buf := owned.Flatten()

	m := rl.Mesh{
		VertexCount:   int32(buf.VertexCount),
		TriangleCount: int32(buf.TriangleCount),
		Vertices:      &buf.Positions[0],
		Texcoords:     &buf.Texcoords[0],
		Normals:       &buf.Normals[0],
		Tangents:      &buf.Tangents[0],
		Colors:        &buf.Colors[0],
	}

	// raylib reads the buffers through the Mesh struct, so they must stay put for the call.
	var pin runtime.Pinner
	pin.Pin(m.Vertices)
	pin.Pin(m.Texcoords)
	pin.Pin(m.Normals)
	pin.Pin(m.Tangents)
	pin.Pin(m.Colors)
	rl.UploadMesh(&m, false)
	pin.Unpin()

	// The GPU holds its own copy. Dropping the Go pointers lets UnloadMesh free only raylib memory.
	m.Vertices, m.Texcoords, m.Normals, m.Tangents, m.Colors = nil, nil, nil, nil, nil
	return m, nil
}

// UploadTexture creates a mipmapped, repeating texture from img.
// img is expected to be flipped already (texture.Decode does this).
func UploadTexture(img image.Image) rl.Texture2D {
	cimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(cimg)

	tex := rl.LoadTextureFromImage(cimg)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	return tex
}
