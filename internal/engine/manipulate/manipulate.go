// Package manipulate turns mouse drags into camera look updates and
// camera-relative rotations and translations of the selected mesh.
package manipulate

import (
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

// Mode is the active drag mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeLook
	ModeRotate
	ModeTranslate
)

func (m Mode) String() string {
	switch m {
	case ModeLook:
		return "look"
	case ModeRotate:
		return "rotate"
	case ModeTranslate:
		return "translate"
	default:
		return "none"
	}
}

// Config holds drag sensitivities.
type Config struct {
	LookSensitivity float32 // radians per pixel for camera look
	MoveSensitivity float32 // radians or world units per pixel for mesh drags

	// LatchMode fixes the drag mode on the press sample. Otherwise the mode
	// follows the modifiers held at every sample.
	LatchMode bool
}

// DefaultConfig returns the standard sensitivities.
func DefaultConfig() Config {
	return Config{
		LookSensitivity: 0.006,
		MoveSensitivity: 0.01,
	}
}

// Panel describes the control panel docked at the viewport's right edge.
// Camera look is ignored while the cursor is over it.
type Panel struct {
	Visible bool
	Width   float32
	Margin  float32
}

// Covers reports whether x lies in the panel region of a viewport of the
// given width.
func (p Panel) Covers(x, viewportWidth float32) bool {
	if !p.Visible || viewportWidth <= 0 {
		return false
	}
	return x >= viewportWidth-p.Width-p.Margin
}

// Engine holds the drag state for one session.
type Engine struct {
	cfg           Config
	panel         Panel
	viewportWidth float32

	mode     Mode
	dragging bool
	last     math.Vec2
}

// New creates an engine with no drag in progress.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// SetViewport records the viewport size used for the panel region.
func (e *Engine) SetViewport(width, height int) {
	e.viewportWidth = float32(width)
}

// SetPanel replaces the panel description.
func (e *Engine) SetPanel(p Panel) {
	e.panel = p
}

// Panel returns the current panel description.
func (e *Engine) Panel() Panel {
	return e.panel
}

// Mode returns the drag mode applied by the last Update.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Update consumes one input frame. cam and target may be nil; the matching
// operations are then skipped. The reference cursor position advances on
// every sample while the primary button is held, whatever the mode.
func (e *Engine) Update(f input.Frame, cam camera.Camera, target *mesh.Mesh) {
	if !f.Down(input.ButtonPrimary) {
		e.mode = ModeNone
		e.dragging = false
		return
	}

	if f.JustPressed(input.ButtonPrimary) || !e.dragging {
		e.dragging = true
		e.last = f.Cursor
		e.mode = modeFor(f.Sample)
		return
	}

	if !e.cfg.LatchMode {
		e.mode = modeFor(f.Sample)
	}

	prev := e.last
	e.last = f.Cursor
	if cam == nil {
		return
	}

	switch e.mode {
	case ModeLook:
		if e.panel.Covers(f.Cursor.X, e.viewportWidth) {
			return
		}
		s := e.cfg.LookSensitivity
		cam.Yaw((prev.X - f.Cursor.X) * s)
		cam.Pitch((prev.Y - f.Cursor.Y) * s)
	case ModeRotate:
		s := e.cfg.MoveSensitivity
		Rotate(target, cam.ViewMatrix(), (f.Cursor.X-prev.X)*s, (prev.Y-f.Cursor.Y)*s)
	case ModeTranslate:
		s := e.cfg.MoveSensitivity
		Translate(target, cam.ViewMatrix(), (f.Cursor.X-prev.X)*s, (prev.Y-f.Cursor.Y)*s)
	}
}

// modeFor picks the drag mode from held modifiers. Shift wins over Control.
func modeFor(s input.Sample) Mode {
	switch {
	case s.HasModifier(input.ModShift):
		return ModeRotate
	case s.HasModifier(input.ModControl):
		return ModeTranslate
	default:
		return ModeLook
	}
}

// Rotate turns target about its own origin: by dx around the world up axis,
// then by -dy around the camera's right axis. Both rotations are
// pre-multiplied onto the model matrix with its translation removed, and the
// translation is restored unchanged afterwards.
func Rotate(target *mesh.Mesh, view math.Mat4, dx, dy float32) {
	if target == nil {
		return
	}
	right := view.Inverse().TransformDirection(math.XAxis)

	yaw := math.RotateAxis(math.YAxis, dx)
	pitch := math.RotateAxis(right, -dy)

	position := target.Model.Translation()
	model := target.Model.WithTranslation(math.Vec3{})
	model = yaw.Mul(model)
	model = pitch.Mul(model)
	target.Model = model.WithTranslation(position)
}

// Translate moves target by cameraRight*dx + cameraUp*dy in world space.
func Translate(target *mesh.Mesh, view math.Mat4, dx, dy float32) {
	if target == nil {
		return
	}
	inv := view.Inverse()
	right := inv.TransformDirection(math.XAxis)
	up := inv.TransformDirection(math.YAxis)

	offset := right.Scale(dx).Add(up.Scale(dy))
	target.Model = target.Model.WithTranslation(target.Model.Translation().Add(offset))
}
