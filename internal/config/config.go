// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/cubeforge/pkg/mesh"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Render      RenderConfig     `yaml:"render"`
	Scene       SceneConfig      `yaml:"scene"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	Samples    int  `yaml:"samples"` // MSAA
}

// RenderConfig holds the startup values of the runtime toggles.
type RenderConfig struct {
	TextureQuality  string `yaml:"texture_quality"`  // low, medium, high
	MaterialQuality string `yaml:"material_quality"` // low, medium, high
	Specular        bool   `yaml:"specular"`
	Shadows         bool   `yaml:"shadows"`
	ShadowMapSize   int    `yaml:"shadow_map_size"`
	ShadowQuality   string `yaml:"shadow_quality"`
	Occlusion       bool   `yaml:"occlusion"`
	Instancing      bool   `yaml:"instancing"`
	Wireframe       bool   `yaml:"wireframe"`
}

// SceneConfig describes what the viewer shows.
type SceneConfig struct {
	Faces          string     `yaml:"faces"` // see mesh.ParseDirectionSet
	ModelPosition  [3]float32 `yaml:"model_position"`
	ModelColor     [3]float32 `yaml:"model_color"`
	GroundSize     float32    `yaml:"ground_size"`
	GroundColor    [3]float32 `yaml:"ground_color"`
	LightDirection [3]float32 `yaml:"light_direction"`
	CameraPosition [3]float32 `yaml:"camera_position"`
	CameraYaw      float32    `yaml:"camera_yaw"`
	CameraPitch    float32    `yaml:"camera_pitch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// ScreenshotConfig controls where captures go.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
			Samples:  4,
		},
		Render: RenderConfig{
			TextureQuality:  "high",
			MaterialQuality: "high",
			Specular:        true,
			Shadows:         true,
			ShadowMapSize:   1024,
			ShadowQuality:   "pcf24",
			Occlusion:       true,
			Instancing:      true,
		},
		Scene: SceneConfig{
			Faces:          "px,nx,pz,nz",
			ModelPosition:  [3]float32{0, 11, 0},
			ModelColor:     [3]float32{0.8, 0.55, 0.3},
			GroundSize:     100,
			GroundColor:    [3]float32{0.55, 0.6, 0.55},
			LightDirection: [3]float32{0, -1, 1},
			CameraPosition: [3]float32{0, 11, -6},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Screenshots: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "cubeforge",
			Format: "png",
		},
	}
}

// FaceSet parses Scene.Faces.
func (c *Config) FaceSet() (mesh.DirectionSet, error) {
	return mesh.ParseDirectionSet(c.Scene.Faces)
}

// Validate rejects values the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("%w: samples %d", ErrInvalid, c.Window.Samples)
	}
	if _, err := c.FaceSet(); err != nil {
		return fmt.Errorf("%w: scene.faces: %w", ErrInvalid, err)
	}
	if c.Scene.GroundSize <= 0 {
		return fmt.Errorf("%w: ground size %g", ErrInvalid, c.Scene.GroundSize)
	}
	if c.Scene.LightDirection == [3]float32{} {
		return fmt.Errorf("%w: light direction is zero", ErrInvalid)
	}
	if s := c.Render.ShadowMapSize; s <= 0 || s&(s-1) != 0 {
		return fmt.Errorf("%w: shadow map size %d is not a power of two", ErrInvalid, s)
	}
	switch strings.ToLower(c.Screenshots.Format) {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: screenshot format %q", ErrInvalid, c.Screenshots.Format)
	}
	return nil
}
