// Package config loads drive3d.cfg.json via viper. Every key has a default
// reproducing the built-in scene, so the demo runs with no config file at all.
package config

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/viper"
)

// Vec3 mirrors rl.Vector3 for config unmarshalling.
type Vec3 struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
	Z float32 `json:"z" mapstructure:"z"`
}

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width     int32  `json:"width" mapstructure:"width"`
	Height    int32  `json:"height" mapstructure:"height"`
	Title     string `json:"title" mapstructure:"title"`
	TargetFPS int32  `json:"targetFps" mapstructure:"targetFps"`
}

// CarConfig holds the vehicle tuning constants.
type CarConfig struct {
	MaxSpeed     float32 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Acceleration float32 `json:"acceleration" mapstructure:"acceleration"`
	Brake        float32 `json:"brake" mapstructure:"brake"`
	Friction     float32 `json:"friction" mapstructure:"friction"`
	TurnSpeed    float32 `json:"turnSpeed" mapstructure:"turnSpeed"`
	Size         Vec3    `json:"size" mapstructure:"size"`
}

// CameraConfig holds the chase camera tuning constants.
type CameraConfig struct {
	FollowDistance float32 `json:"followDistance" mapstructure:"followDistance"`
	Height         float32 `json:"height" mapstructure:"height"`
	LookHeight     float32 `json:"lookHeight" mapstructure:"lookHeight"`
	SmoothSpeed    float32 `json:"smoothSpeed" mapstructure:"smoothSpeed"`
}

// ObstacleConfig describes one static box in the scene.
type ObstacleConfig struct {
	Name   string `json:"name" mapstructure:"name"`
	Center Vec3   `json:"center" mapstructure:"center"`
	Size   Vec3   `json:"size" mapstructure:"size"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. A missing file is
// fine, defaults apply; a malformed file is an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "drive3d")
	viper.SetDefault("window.targetFps", 120)

	viper.SetDefault("car.maxSpeed", 12.0)
	viper.SetDefault("car.acceleration", 20.0)
	viper.SetDefault("car.brake", 30.0)
	viper.SetDefault("car.friction", 6.0)
	viper.SetDefault("car.turnSpeed", 90.0)
	viper.SetDefault("car.size", map[string]any{"x": 1.5, "y": 1.0, "z": 3.0})

	viper.SetDefault("camera.followDistance", 8.0)
	viper.SetDefault("camera.height", 3.0)
	viper.SetDefault("camera.lookHeight", 1.0)
	viper.SetDefault("camera.smoothSpeed", 6.0)

	viper.SetDefault("obstacles", []map[string]any{
		{
			"name":   "wall",
			"center": map[string]any{"x": 0.0, "y": 2.0, "z": 20.0},
			"size":   map[string]any{"x": 4.0, "y": 4.0, "z": 0.5},
		},
	})

	viper.SetConfigName("drive3d.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// Window returns the window settings.
func Window() (WindowConfig, error) {
	var w WindowConfig
	if err := viper.UnmarshalKey("window", &w); err != nil {
		return w, fmt.Errorf("window config: %w", err)
	}
	return w, nil
}

// Car returns the vehicle tuning.
func Car() (CarConfig, error) {
	var c CarConfig
	if err := viper.UnmarshalKey("car", &c); err != nil {
		return c, fmt.Errorf("car config: %w", err)
	}
	return c, nil
}

// Camera returns the chase camera tuning.
func Camera() (CameraConfig, error) {
	var c CameraConfig
	if err := viper.UnmarshalKey("camera", &c); err != nil {
		return c, fmt.Errorf("camera config: %w", err)
	}
	return c, nil
}

// Obstacles returns the static scene geometry.
func Obstacles() ([]ObstacleConfig, error) {
	var o []ObstacleConfig
	if err := viper.UnmarshalKey("obstacles", &o); err != nil {
		return nil, fmt.Errorf("obstacles config: %w", err)
	}
	return o, nil
}
