package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	// No config file present at all.
	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", LogLevel())

	w, err := Window()
	require.NoError(t, err)
	assert.Equal(t, int32(1280), w.Width)
	assert.Equal(t, int32(720), w.Height)
	assert.Equal(t, "drive3d", w.Title)
	assert.Equal(t, int32(120), w.TargetFPS)

	c, err := Car()
	require.NoError(t, err)
	assert.Equal(t, float32(12), c.MaxSpeed)
	assert.Equal(t, float32(20), c.Acceleration)
	assert.Equal(t, float32(30), c.Brake)
	assert.Equal(t, float32(6), c.Friction)
	assert.Equal(t, float32(90), c.TurnSpeed)
	assert.Equal(t, Vec3{X: 1.5, Y: 1, Z: 3}, c.Size)

	cam, err := Camera()
	require.NoError(t, err)
	assert.Equal(t, float32(8), cam.FollowDistance)
	assert.Equal(t, float32(3), cam.Height)
	assert.Equal(t, float32(1), cam.LookHeight)
	assert.Equal(t, float32(6), cam.SmoothSpeed)

	obstacles, err := Obstacles()
	require.NoError(t, err)
	require.Len(t, obstacles, 1)
	assert.Equal(t, "wall", obstacles[0].Name)
	assert.Equal(t, Vec3{X: 0, Y: 2, Z: 20}, obstacles[0].Center)
	assert.Equal(t, Vec3{X: 4, Y: 4, Z: 0.5}, obstacles[0].Size)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"car": { "maxSpeed": 25, "turnSpeed": 120 },
		"obstacles": [
			{ "name": "left", "center": {"x": -5, "y": 1, "z": 10}, "size": {"x": 1, "y": 2, "z": 8} },
			{ "name": "right", "center": {"x": 5, "y": 1, "z": 10}, "size": {"x": 1, "y": 2, "z": 8} }
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drive3d.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", LogLevel())

	c, err := Car()
	require.NoError(t, err)
	assert.Equal(t, float32(25), c.MaxSpeed)
	assert.Equal(t, float32(120), c.TurnSpeed)
	// Keys the file does not set keep their defaults.
	assert.Equal(t, float32(30), c.Brake)

	obstacles, err := Obstacles()
	require.NoError(t, err)
	require.Len(t, obstacles, 2)
	assert.Equal(t, "left", obstacles[0].Name)
	assert.Equal(t, Vec3{X: 5, Y: 1, Z: 10}, obstacles[1].Center)
}

func TestVec3Conversion(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}.Vector3()
	assert.Equal(t, float32(1), v.X)
	assert.Equal(t, float32(2), v.Y)
	assert.Equal(t, float32(3), v.Z)
}
