package viewer

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/manipulate"
	"github.com/Faultbox/meshview/pkg/math"
)

// ParseCameraKind accepts "firstperson" or "turntable".
func ParseCameraKind(name string) (camera.Kind, error) {
	switch strings.ToLower(name) {
	case "firstperson", "first-person", "fp":
		return camera.FirstPersonKind, nil
	case "turntable", "tt":
		return camera.TurntableKind, nil
	}
	return 0, fmt.Errorf("unknown camera type %q", name)
}

// OptionsFrom maps a loaded config onto session options.
func OptionsFrom(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()

	kind, err := ParseCameraKind(cfg.Camera.Type)
	if err != nil {
		return opts, err
	}
	shape, err := ParseShape(cfg.GUI.Shape)
	if err != nil {
		return opts, err
	}

	lens := func(p [3]float32) camera.Config {
		return camera.Config{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			FovY:     cfg.Camera.FovDegrees * math32.Pi / 180,
			Near:     cfg.Camera.Near,
			Far:      cfg.Camera.Far,
		}
	}

	opts.Width = cfg.Graphics.Width
	opts.Height = cfg.Graphics.Height
	opts.Camera = kind
	opts.FirstPerson = lens(cfg.Camera.FirstPersonPosition)
	opts.Turntable = lens(cfg.Camera.TurntablePosition)
	opts.CameraSpeed = cfg.Camera.Speed
	opts.Shape = shape
	opts.DrawLines = cfg.GUI.DrawLines
	opts.ShowPanel = cfg.GUI.ShowPanel
	opts.PanelMargin = cfg.GUI.PanelMargin
	opts.Manipulation = manipulate.Config{
		LookSensitivity: cfg.Interaction.LookSensitivity,
		MoveSensitivity: cfg.Interaction.MoveSensitivity,
		LatchMode:       cfg.Interaction.LatchMode,
	}
	opts.Torus = TorusOptions{
		MajorRadius: cfg.Shapes.Torus.MajorRadius,
		MinorRadius: cfg.Shapes.Torus.MinorRadius,
		Segments:    cfg.Shapes.Torus.Segments,
		Rings:       cfg.Shapes.Torus.Rings,
	}
	opts.Moebius = MoebiusOptions{
		USteps: cfg.Shapes.Moebius.USteps,
		VSteps: cfg.Shapes.Moebius.VSteps,
	}
	return opts, nil
}
