// Package camera is a first-person fly camera driven by keyboard, mouse and scroll
// input. It produces view and projection matrices and knows nothing about the window.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Defaults for a new camera.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultFOV         float32 = 45

	MinFOV   float32 = 1
	MaxFOV   float32 = 45
	MaxPitch float32 = 89

	// Clip plane distances used by the renderer.
	Near float32 = 0.1
	Far  float32 = 100
)

// Camera holds position and Euler orientation. Front, Right and Up are derived
// from Yaw and Pitch and kept in sync by every method that changes the angles.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw         float32 // degrees, -90 looks down -Z
	Pitch       float32 // degrees
	Speed       float32 // units per second
	Sensitivity float32 // degrees per mouse unit
	FOV         float32 // vertical field of view, degrees
}

// New returns a camera at position looking down -Z with +Y up.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		FOV:         DefaultFOV,
	}
	c.updateVectors()
	return c
}

// ProcessKeyboard moves the camera along Front or Right by Speed*dt.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the mouse offset. dy is positive when
// the mouse moves up. With constrainPitch the pitch stays within ±MaxPitch so
// the view never flips.
func (c *Camera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

// SetFOV zooms by the scroll offset, keeping FOV in [MinFOV, MaxFOV].
func (c *Camera) SetFOV(yoffset float32) {
	c.FOV = clamp(c.FOV-yoffset, MinFOV, MaxFOV)
}

// Target returns the point one unit in front of the camera.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Front)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
