package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-demo/internal/scene"
)

// PollInput samples the keyboard, mouse and wheel for this frame. G toggles the grid.
// Screen Y grows downward, so the mouse delta is inverted to make up positive.
// raylib reports a zero delta on the first frame after the cursor is captured.
func PollInput() scene.Input {
	d := rl.GetMouseDelta()
	return scene.Input{
		Forward:    rl.IsKeyDown(rl.KeyW),
		Backward:   rl.IsKeyDown(rl.KeyS),
		Left:       rl.IsKeyDown(rl.KeyA),
		Right:      rl.IsKeyDown(rl.KeyD),
		ToggleGrid: rl.IsKeyPressed(rl.KeyG),
		MouseDX:    d.X,
		MouseDY:    -d.Y,
		Scroll:     rl.GetMouseWheelMove(),
	}
}
