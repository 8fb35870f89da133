// Package scene holds the explicit state drawn each frame: camera, light and a
// flat list of object instances. The render loop receives a *Scene instead of
// reading process-wide globals.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-demo/internal/camera"
	"mesh-demo/internal/primitives"
	"mesh-demo/internal/texture"
	"mesh-demo/internal/vecmath"
)

// Shader names accepted in Object.Shader.
const (
	ShaderLit   = "lit"   // normal-mapped Blinn-Phong using the scene light
	ShaderLight = "light" // unlit, used to mark the light position
)

// Light is a point light with Phong terms and the shared material shininess.
type Light struct {
	Position  vecmath.Vector3 `yaml:"position"`
	Ambient   vecmath.Vector3 `yaml:"ambient"`
	Diffuse   vecmath.Vector3 `yaml:"diffuse"`
	Specular  vecmath.Vector3 `yaml:"specular"`
	Shininess float32         `yaml:"shininess"`
}

// DefaultLight is a white light above the origin.
func DefaultLight() Light {
	return Light{
		Position:  vecmath.Vec3(0, 5, 0),
		Ambient:   vecmath.Vec3(0.2, 0.2, 0.2),
		Diffuse:   vecmath.Vec3(0.5, 0.5, 0.5),
		Specular:  vecmath.Vec3(1, 1, 1),
		Shininess: 64,
	}
}

// Object is one drawn instance of a generated primitive.
// AtLight places the object at the light position instead of Position.
type Object struct {
	Name         string                  `yaml:"name"`
	Primitive    primitives.PrimitiveDef `yaml:"primitive"`
	Position     vecmath.Vector3         `yaml:"position"`
	AtLight      bool                    `yaml:"at_light,omitempty"`
	RotationAxis vecmath.Vector3         `yaml:"rotation_axis,omitempty"`
	RotationDeg  float32                 `yaml:"rotation_deg,omitempty"`
	Material     string                  `yaml:"material"`
	Shader       string                  `yaml:"shader,omitempty"`
}

// WorldPosition returns where the object is drawn this frame.
func (o Object) WorldPosition(l Light) vecmath.Vector3 {
	if o.AtLight {
		return l.Position
	}
	return o.Position
}

// ShaderName returns Shader, defaulting to ShaderLit.
func (o Object) ShaderName() string {
	if o.Shader == "" {
		return ShaderLit
	}
	return o.Shader
}

// Input is one frame's input snapshot. MouseDY is positive when the mouse moves up.
// ToggleGrid is set on the frame the grid key goes down.
type Input struct {
	Forward    bool
	Backward   bool
	Left       bool
	Right      bool
	ToggleGrid bool
	MouseDX    float32
	MouseDY    float32
	Scroll     float32
}

// Scene is the state of the running demo.
type Scene struct {
	Camera      *camera.Camera
	Light       Light
	Objects     []Object
	Materials   map[string]texture.Set
	GridVisible bool
}

// New returns a scene built from layout with the camera at spawn.
func New(layout Layout, spawn vecmath.Vector3) *Scene {
	materials := make(map[string]texture.Set, len(layout.Materials))
	for k, v := range layout.Materials {
		materials[k] = v
	}
	return &Scene{
		Camera:      camera.New(mgl32.Vec3{spawn.X, spawn.Y, spawn.Z}),
		Light:       layout.Light,
		Objects:     append([]Object(nil), layout.Objects...),
		Materials:   materials,
		GridVisible: layout.Grid,
	}
}

// Update applies one frame of input to the camera and the grid toggle. dt is in seconds.
func (s *Scene) Update(in Input, dt float32) {
	if in.Forward {
		s.Camera.ProcessKeyboard(camera.Forward, dt)
	}
	if in.Backward {
		s.Camera.ProcessKeyboard(camera.Backward, dt)
	}
	if in.Left {
		s.Camera.ProcessKeyboard(camera.Left, dt)
	}
	if in.Right {
		s.Camera.ProcessKeyboard(camera.Right, dt)
	}
	if in.MouseDX != 0 || in.MouseDY != 0 {
		s.Camera.ProcessMouseMovement(in.MouseDX, in.MouseDY, true)
	}
	if in.Scroll != 0 {
		s.Camera.SetFOV(in.Scroll)
	}
	if in.ToggleGrid {
		s.SetGridVisible(!s.GridVisible)
	}
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}
