package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-demo/internal/camera"
	"mesh-demo/internal/primitives"
	"mesh-demo/internal/scene"
	"mesh-demo/internal/texture"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 110
	axisLineAlpha  = 200
)

// cached is one GPU material: the raylib material plus the textures it owns.
type cached struct {
	mtl      rl.Material
	textures []rl.Texture2D
}

// Registry owns everything uploaded to the GPU for a scene: one mesh per distinct
// primitive definition, one material per (material, shader) pair, and the two shaders.
// Load* must be called after the window exists; Draw uses only cached resources.
type Registry struct {
	lit      rl.Shader
	litLocs  litLocs
	light    rl.Shader
	meshes   map[string]rl.Mesh
	mtls     map[string]cached
	fallback [4]rl.Texture2D // diffuse, specular, normal, ao
	maxTex   int
}

// NewRegistry returns an empty registry. Textures are downscaled to fit maxTextureSize.
func NewRegistry(maxTextureSize int) *Registry {
	return &Registry{
		meshes: make(map[string]rl.Mesh),
		mtls:   make(map[string]cached),
		maxTex: maxTextureSize,
	}
}

// LoadShaders compiles the lit and light-marker shaders.
func (r *Registry) LoadShaders() error {
	r.lit, r.litLocs = loadLitShader()
	if !rl.IsShaderValid(r.lit) {
		return fmt.Errorf("render: lit shader failed to compile")
	}
	r.light = loadLightShader()
	if !rl.IsShaderValid(r.light) {
		return fmt.Errorf("render: light shader failed to compile")
	}
	return nil
}

// LoadMeshes generates and uploads one mesh per distinct primitive used by objects.
func (r *Registry) LoadMeshes(objects []scene.Object) error {
	for _, o := range objects {
		key := meshKey(o.Primitive)
		if _, ok := r.meshes[key]; ok {
			continue
		}
		v, err := primitives.Build(o.Primitive)
		if err != nil {
			return fmt.Errorf("render: object %q: %w", o.Name, err)
		}
		m, err := UploadMesh(v)
		if err != nil {
			return fmt.Errorf("render: object %q: %w", o.Name, err)
		}
		r.meshes[key] = m
	}
	return nil
}

// LoadMaterials decodes and uploads the texture sets used by objects and builds
// their materials. Missing optional maps fall back to neutral 1×1 textures. A set
// that fails to decode is replaced by the neutral material and its error is
// included in the returned error; drawing can continue either way.
func (r *Registry) LoadMaterials(s *scene.Scene) error {
	r.ensureFallback()
	var errs []error
	for _, o := range s.Objects {
		key := materialKey(o)
		if _, ok := r.mtls[key]; ok {
			continue
		}
		if o.ShaderName() == scene.ShaderLight {
			r.mtls[key] = r.lightMaterial()
			continue
		}
		c, err := r.litMaterial(s.Materials[o.Material], o.Material != "")
		if err != nil {
			errs = append(errs, fmt.Errorf("render: material %q: %w", o.Material, err))
			c, _ = r.litMaterial(texture.Set{}, false)
		}
		r.mtls[key] = c
	}
	return errors.Join(errs...)
}

func (r *Registry) litMaterial(set texture.Set, named bool) (cached, error) {
	var imgs texture.Images
	if named {
		var err error
		if imgs, err = texture.Load(set, r.maxTex); err != nil {
			return cached{}, err
		}
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = r.lit
	c := cached{mtl: mtl}
	for i, img := range []image.Image{imgs.Diffuse, imgs.Specular, imgs.Normal, imgs.AO} {
		tex := r.fallback[i]
		if img != nil {
			tex = UploadTexture(img)
			c.textures = append(c.textures, tex)
		}
		rl.SetMaterialTexture(&c.mtl, materialMaps[i], tex)
	}
	return c, nil
}

func (r *Registry) lightMaterial() cached {
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = r.light
	return cached{mtl: mtl}
}

// ensureFallback creates the neutral textures used for unnamed maps: white
// diffuse, white specular, a flat normal (0.5, 0.5, 1) and full occlusion 1.
func (r *Registry) ensureFallback() {
	if rl.IsTextureValid(r.fallback[0]) {
		return
	}
	white := color.RGBA{255, 255, 255, 255}
	flat := color.RGBA{128, 128, 255, 255}
	for i, c := range []color.RGBA{white, white, flat, white} {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, c)
		r.fallback[i] = UploadTexture(img)
	}
}

// SetView pushes the camera position and light to the lit shader. Call once per
// frame before Draw.
func (r *Registry) SetView(s *scene.Scene) {
	p := s.Camera.Position
	l := s.Light
	setVec3(r.lit, r.litLocs.viewPos, [3]float32{p.X(), p.Y(), p.Z()})
	setVec3(r.lit, r.litLocs.lightPos, [3]float32{l.Position.X, l.Position.Y, l.Position.Z})
	setVec3(r.lit, r.litLocs.ambient, [3]float32{l.Ambient.X, l.Ambient.Y, l.Ambient.Z})
	setVec3(r.lit, r.litLocs.diffuse, [3]float32{l.Diffuse.X, l.Diffuse.Y, l.Diffuse.Z})
	setVec3(r.lit, r.litLocs.specular, [3]float32{l.Specular.X, l.Specular.Y, l.Specular.Z})
	setFloat(r.lit, r.litLocs.shininess, l.Shininess)
}

// Draw renders the scene from its camera: grid first when visible, then every object.
// Objects whose mesh or material was not loaded are skipped.
func (r *Registry) Draw(s *scene.Scene) {
	rl.SetClipPlanes(float64(camera.Near), float64(camera.Far))
	rl.BeginMode3D(raylibCamera(s))
	if s.GridVisible {
		drawGrid()
	}
	for _, o := range s.Objects {
		m, ok := r.meshes[meshKey(o.Primitive)]
		if !ok {
			continue
		}
		c, ok := r.mtls[materialKey(o)]
		if !ok {
			continue
		}
		// The light marker is seen from both sides.
		if o.ShaderName() == scene.ShaderLight {
			rl.DisableBackfaceCulling()
			rl.DrawMesh(m, c.mtl, transform(o, s.Light))
			rl.EnableBackfaceCulling()
			continue
		}
		rl.DrawMesh(m, c.mtl, transform(o, s.Light))
	}
	rl.EndMode3D()
}

// Close releases every GPU resource held by the registry.
func (r *Registry) Close() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
	for k, c := range r.mtls {
		releaseMaterial(c)
		delete(r.mtls, k)
	}
	for i, t := range r.fallback {
		if rl.IsTextureValid(t) {
			rl.UnloadTexture(t)
		}
		r.fallback[i] = rl.Texture2D{}
	}
	if rl.IsShaderValid(r.lit) {
		rl.UnloadShader(r.lit)
	}
	if rl.IsShaderValid(r.light) {
		rl.UnloadShader(r.light)
	}
}

// materialMaps are the map slots litMaterial fills.
var materialMaps = [...]int32{rl.MapAlbedo, rl.MapMetalness, rl.MapNormal, rl.MapOcclusion}

// releaseMaterial frees the textures c owns and then the material's map array.
// Shaders and fallback textures are shared across materials, so they are detached
// first and left to Close.
func releaseMaterial(c cached) {
	for _, t := range c.textures {
		rl.UnloadTexture(t)
	}
	for _, idx := range materialMaps {
		rl.SetMaterialTexture(&c.mtl, idx, rl.Texture2D{})
	}
	c.mtl.Shader = rl.Shader{}
	rl.UnloadMaterial(c.mtl)
}

// transform rotates the object about its axis, then moves it to its world position.
func transform(o scene.Object, l scene.Light) rl.Matrix {
	pos := o.WorldPosition(l)
	m := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	if o.RotationDeg == 0 || o.RotationAxis.IsZero() {
		return m
	}
	axis := rl.NewVector3(o.RotationAxis.X, o.RotationAxis.Y, o.RotationAxis.Z)
	rot := rl.MatrixRotate(axis, o.RotationDeg*rl.Deg2rad)
	return rl.MatrixMultiply(rot, m)
}

func raylibCamera(s *scene.Scene) rl.Camera3D {
	c := s.Camera
	t := c.Target()
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z()),
		Target:     rl.NewVector3(t.X(), t.Y(), t.Z()),
		Up:         rl.NewVector3(c.Up.X(), c.Up.Y(), c.Up.Z()),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

func meshKey(def primitives.PrimitiveDef) string {
	return fmt.Sprintf("%s|%g|%g|%g|%s", strings.ToLower(strings.TrimSpace(def.Type)),
		def.Size[0], def.Size[1], def.Size[2], def.Color)
}

func materialKey(o scene.Object) string {
	return o.ShaderName() + "|" + o.Material
}

// drawGrid draws the XZ plane grid with major/minor lines and the three axes.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
