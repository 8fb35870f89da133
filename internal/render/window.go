// Package render is the raylib backend: it owns the window, uploads generated
// meshes and decoded textures to the GPU and draws a *scene.Scene each frame.
// Nothing here runs without an OpenGL context, so the package has no unit tests;
// the data it consumes is produced and tested in mesh, texture and scene.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-demo/internal/config"
)

// clearColor is the frame background (0.2, 0.2, 0.2).
var clearColor = rl.NewColor(51, 51, 51, 255)

// Loop holds the callbacks driven by Run. Any of them may be nil.
type Loop struct {
	Setup    func() error     // once, after the GL context exists
	Update   func(dt float32) // every frame, dt in seconds
	Draw     func()           // every frame, between BeginDrawing and EndDrawing
	Teardown func()           // once, before the window and GL context close
}

// Run opens the window described by cfg and runs loop until the window is closed
// or ESC is pressed. A Setup error skips the frame loop and is returned; Teardown
// still runs so partially created GPU resources are released.
func Run(cfg config.Config, loop Loop) error {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	rl.DisableCursor()

	if loop.Teardown != nil {
		defer loop.Teardown()
	}
	if loop.Setup != nil {
		if err := loop.Setup(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		if loop.Update != nil {
			loop.Update(rl.GetFrameTime())
		}
		rl.BeginDrawing()
		rl.ClearBackground(clearColor)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}
