// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	GUI         GUIConfig         `yaml:"gui"`
	Shapes      ShapesConfig      `yaml:"shapes"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the initial camera setup.
type CameraConfig struct {
	Type                string     `yaml:"type"` // "firstperson" or "turntable"
	Speed               float32    `yaml:"speed"`
	FovDegrees          float32    `yaml:"fov"`
	Near                float32    `yaml:"near"`
	Far                 float32    `yaml:"far"`
	FirstPersonPosition [3]float32 `yaml:"first_person_position"`
	TurntablePosition   [3]float32 `yaml:"turntable_position"`
}

// InteractionConfig holds mouse drag settings.
type InteractionConfig struct {
	LookSensitivity float32 `yaml:"look_sensitivity"`
	MoveSensitivity float32 `yaml:"move_sensitivity"`
	LatchMode       bool    `yaml:"latch_mode"`
}

// GUIConfig holds control panel state.
type GUIConfig struct {
	ShowPanel   bool    `yaml:"show_panel"`
	PanelMargin float32 `yaml:"panel_margin"`
	Shape       string  `yaml:"shape"`
	DrawLines   bool    `yaml:"draw_lines"`
	ShowFPS     bool    `yaml:"show_fps"`
}

// ShapesConfig holds tessellation parameters.
type ShapesConfig struct {
	Torus   TorusConfig   `yaml:"torus"`
	Moebius MoebiusConfig `yaml:"moebius"`
}

// TorusConfig holds torus dimensions and sampling.
type TorusConfig struct {
	MajorRadius float32 `yaml:"major_radius"`
	MinorRadius float32 `yaml:"minor_radius"`
	Segments    int     `yaml:"segments"`
	Rings       int     `yaml:"rings"`
}

// MoebiusConfig holds Möbius strip sampling.
type MoebiusConfig struct {
	USteps int `yaml:"u_steps"`
	VSteps int `yaml:"v_steps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			FPSLimit:      0,
			ScreenshotDir: "Screenshots",
		},
		Camera: CameraConfig{
			Type:                "firstperson",
			Speed:               5,
			FovDegrees:          60,
			Near:                0.01,
			Far:                 500,
			FirstPersonPosition: [3]float32{0, 1, 3},
			TurntablePosition:   [3]float32{1, 3, 4},
		},
		Interaction: InteractionConfig{
			LookSensitivity: 0.006,
			MoveSensitivity: 0.01,
		},
		GUI: GUIConfig{
			ShowPanel:   true,
			PanelMargin: 10,
			Shape:       "triangle",
			DrawLines:   true,
			ShowFPS:     true,
		},
		Shapes: ShapesConfig{
			Torus: TorusConfig{
				MajorRadius: 1,
				MinorRadius: 0.3,
				Segments:    32,
				Rings:       64,
			},
			Moebius: MoebiusConfig{
				USteps: 100,
				VSteps: 20,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	switch strings.ToLower(c.Camera.Type) {
	case "firstperson", "turntable":
	default:
		errs = append(errs, fmt.Errorf("unknown camera type %q", c.Camera.Type))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g out of range (0, 180)", c.Camera.FovDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}
	if t := c.Shapes.Torus; t.Segments < 2 || t.Rings < 2 {
		errs = append(errs, fmt.Errorf("torus needs segments, rings >= 2, got %d, %d", t.Segments, t.Rings))
	}
	if m := c.Shapes.Moebius; m.USteps < 2 || m.VSteps < 2 {
		errs = append(errs, fmt.Errorf("moebius needs u_steps, v_steps >= 2, got %d, %d", m.USteps, m.VSteps))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
