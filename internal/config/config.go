// Package config loads the demo's engine settings: window, debug overlay,
// camera spawn point and the layout file to draw.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mesh-demo/internal/vecmath"
)

// DefaultPath is the path to the config file, relative to the process working directory.
const DefaultPath = "config/demo.json"

// Config holds the engine settings. Persisted as JSON.
type Config struct {
	Title          string          `json:"title"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Fullscreen     bool            `json:"fullscreen"`
	TargetFPS      int             `json:"target_fps"`
	Debug          bool            `json:"debug"`
	Spawn          vecmath.Vector3 `json:"spawn"`
	Layout         string          `json:"layout"`
	MaxTextureSize int             `json:"max_texture_size"`
}

// Default returns the stock settings: a 1280×720 window with the debug overlay on.
func Default() Config {
	return Config{
		Title:          "ITF21215 OpenGL group project",
		Width:          1280,
		Height:         720,
		Fullscreen:     false,
		TargetFPS:      60,
		Debug:          true,
		Spawn:          vecmath.Vec3(0, 2, 3),
		Layout:         "assets/layout.yaml",
		MaxTextureSize: 2048,
	}
}

// Load reads settings from path. If the file is missing or invalid it returns
// Default() and does not create a file. Fields absent from the file keep their
// defaults, and non-positive sizes are reset to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c.sanitized(), nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) sanitized() Config {
	d := Default()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = d.TargetFPS
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Layout == "" {
		c.Layout = d.Layout
	}
	return c
}
