package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestNew(t *testing.T) {
	c := New(mgl32.Vec3{0, 2, 3})
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertVec(t, mgl32.Vec3{0, 1, 0}, c.Up)
	assertVec(t, mgl32.Vec3{0, 2, 2}, c.Target())
	assert.Equal(t, DefaultFOV, c.FOV)
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -2.5}},
		{Backward, mgl32.Vec3{0, 0, 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 0}},
		{Right, mgl32.Vec3{2.5, 0, 0}},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{})
		c.ProcessKeyboard(tt.dir, 1)
		assertVec(t, tt.want, c.Position)
	}
}

func TestProcessMouseMovement(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessMouseMovement(900, 0, true) // +90° yaw
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Front)

	c.ProcessMouseMovement(0, 5000, true)
	assert.Equal(t, MaxPitch, c.Pitch)
	assert.InDelta(t, 1, c.Front.Len(), eps)
	assert.Greater(t, c.Front.Y(), float32(0.99))

	c.ProcessMouseMovement(0, -5000, false)
	assert.Less(t, c.Pitch, -MaxPitch)
}

func TestSetFOV(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetFOV(10)
	assert.Equal(t, float32(35), c.FOV)
	c.SetFOV(100)
	assert.Equal(t, MinFOV, c.FOV)
	c.SetFOV(-100)
	assert.Equal(t, MaxFOV, c.FOV)
}
