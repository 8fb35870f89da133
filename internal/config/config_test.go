package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-demo/internal/vecmath"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 800, "height": -1, "spawn": {"x": 1, "y": 1, "z": 1}}`), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, Default().Height, c.Height)
	assert.Equal(t, vecmath.Vec3(1, 1, 1), c.Spawn)
	assert.Equal(t, Default().Title, c.Title)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.json")
	want := Default()
	want.Fullscreen = true
	want.Layout = "other.yaml"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nDEMO_TEST_A=1\nDEMO_TEST_B = \"quoted value\"\nbroken\n=novalue\nDEMO_TEST_C='x'\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	t.Setenv("DEMO_TEST_A", "kept")
	t.Setenv("DEMO_TEST_B", "")
	os.Unsetenv("DEMO_TEST_B")
	t.Setenv("DEMO_TEST_C", "")
	os.Unsetenv("DEMO_TEST_C")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "kept", os.Getenv("DEMO_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("DEMO_TEST_B"))
	assert.Equal(t, "x", os.Getenv("DEMO_TEST_C"))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing")))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWidth, "640")
	t.Setenv(EnvHeight, "480")
	t.Setenv(EnvFullscreen, "true")
	t.Setenv(EnvDebug, "0")
	t.Setenv(EnvLayout, "x.yaml")

	c, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.True(t, c.Fullscreen)
	assert.False(t, c.Debug)
	assert.Equal(t, "x.yaml", c.Layout)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	t.Setenv(EnvDebug, "maybe")
	t.Setenv(EnvHeight, "")
	os.Unsetenv(EnvHeight)

	c, err := ApplyEnv(Default())
	assert.ErrorContains(t, err, EnvWidth+"=wide")
	assert.ErrorContains(t, err, EnvDebug+"=maybe")
	assert.Equal(t, Default().Width, c.Width)
	assert.Equal(t, Default().Debug, c.Debug)
}
