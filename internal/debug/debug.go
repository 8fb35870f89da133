package debug

import (
	"fmt"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the runtime overlay: FPS and heap size at the top-right, startup
// timings at the top-left. Everything is hidden until enabled.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowTimings  bool

	timingText   []string
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug overlay with every section shown when enabled is true.
func New(enabled bool) *Debug {
	return &Debug{ShowFPS: enabled, ShowMemAlloc: enabled, ShowTimings: enabled}
}

// AddTiming records a startup phase, e.g. the value returned by logger.Timed.
func (d *Debug) AddTiming(label string, dur time.Duration) {
	d.timingText = append(d.timingText, fmt.Sprintf("%s: %.3f s", label, dur.Seconds()))
}

// Draw renders the enabled sections. Call after the 3D pass so text is on top.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}

	if d.ShowTimings {
		y = padding
		for _, line := range d.timingText {
			rl.DrawText(line, padding, y, fontSize, rl.RayWhite)
			y += lineHeight
		}
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
