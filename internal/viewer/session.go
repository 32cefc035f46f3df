// Package viewer drives one interactive viewing session: it owns the scene,
// applies per-frame input to the cameras and the selected mesh, and
// describes what the renderer should draw.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/manipulate"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/picking"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/pkg/math"
)

// Camera speed limits in world units per second.
const (
	MinCameraSpeed     = 2
	MaxCameraSpeed     = 20
	DefaultCameraSpeed = 5
)

// Panel widths in pixels, chosen by viewport width.
const (
	widePanelWidth   = 250
	narrowPanelWidth = 200
	widePanelAbove   = 900
	helpHeight       = 200
)

// Rect is a window-space rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// TorusOptions configures the generated torus.
type TorusOptions struct {
	MajorRadius float32
	MinorRadius float32
	Segments    int
	Rings       int
}

// MoebiusOptions configures the generated Möbius strip.
type MoebiusOptions struct {
	USteps int
	VSteps int
}

// Options configures a session.
type Options struct {
	Width  int
	Height int

	Camera      camera.Kind
	FirstPerson camera.Config
	Turntable   camera.Config
	CameraSpeed float32

	Shape     Shape
	DrawLines bool

	ShowPanel   bool
	PanelMargin float32

	Manipulation manipulate.Config

	Torus   TorusOptions
	Moebius MoebiusOptions

	// Light adds a small white light marker to the scene.
	Light         bool
	LightPosition math.Vec3
}

// DefaultOptions returns the standard 1280x720 session.
func DefaultOptions() Options {
	return Options{
		Width:        1280,
		Height:       720,
		Camera:       camera.FirstPersonKind,
		FirstPerson:  camera.DefaultConfig(math.Vec3{X: 0, Y: 1, Z: 3}),
		Turntable:    camera.DefaultConfig(math.Vec3{X: 1, Y: 3, Z: 4}),
		CameraSpeed:  DefaultCameraSpeed,
		Shape:        ShapeTriangle,
		DrawLines:    true,
		ShowPanel:    true,
		PanelMargin:  10,
		Manipulation: manipulate.DefaultConfig(),
		Torus: TorusOptions{
			MajorRadius: 1,
			MinorRadius: 0.3,
			Segments:    32,
			Rings:       64,
		},
		Moebius: MoebiusOptions{
			USteps: mesh.MoebiusUSteps,
			VSteps: mesh.MoebiusVSteps,
		},
		Light:         true,
		LightPosition: math.Vec3{X: 1.5, Y: 2, Z: 1},
	}
}

// Session is the single-threaded viewer state. Update and DrawList must be
// called from the thread that polls input.
type Session struct {
	log    *zap.Logger
	scene  *scene.Registry
	engine *manipulate.Engine
	picker *picking.RayPicker
	editor ColorEditor

	tracker input.Tracker

	width       int
	height      int
	speed       float32
	shape       Shape
	drawLines   bool
	showPanel   bool
	showHelp    bool
	panelMargin float32
	fps         string
}

// New builds the meshes and cameras and returns a session ready for its
// first Update. editor may be nil, in which case an in-memory ColorPanel
// is used.
func New(opts Options, editor ColorEditor, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if editor == nil {
		editor = NewColorPanel(mesh.White)
	}

	s := &Session{
		log:         log,
		scene:       scene.New(),
		engine:      manipulate.New(opts.Manipulation),
		editor:      editor,
		shape:       opts.Shape,
		drawLines:   opts.DrawLines,
		showPanel:   opts.ShowPanel,
		panelMargin: opts.PanelMargin,
		fps:         "FPS: 0",
	}
	s.SetCameraSpeed(opts.CameraSpeed)

	if err := s.createMeshes(opts); err != nil {
		return nil, err
	}

	s.scene.AddCamera(camera.NewFirstPerson(opts.FirstPerson))
	s.scene.AddCamera(camera.NewTurntable(opts.Turntable))
	if err := s.scene.SetActiveCamera(opts.Camera); err != nil {
		return nil, fmt.Errorf("selecting camera: %w", err)
	}

	s.picker = picking.NewRayPicker(s, opts.Width, opts.Height)
	s.scene.SetPicker(s.picker)
	s.Resize(opts.Width, opts.Height)

	log.Info("session ready",
		zap.Stringer("camera", opts.Camera),
		zap.Stringer("shape", opts.Shape),
		zap.Strings("meshes", s.scene.Names()))
	return s, nil
}

func (s *Session) createMeshes(opts Options) error {
	moebius, err := mesh.MoebiusStripSteps(false, opts.Moebius.USteps, opts.Moebius.VSteps)
	if err != nil {
		return fmt.Errorf("creating moebius strip: %w", err)
	}
	moebiusEdges, err := mesh.MoebiusStripSteps(true, opts.Moebius.USteps, opts.Moebius.VSteps)
	if err != nil {
		return fmt.Errorf("creating moebius strip edges: %w", err)
	}
	t := opts.Torus
	torus, err := mesh.Torus(false, t.MajorRadius, t.MinorRadius, t.Segments, t.Rings)
	if err != nil {
		return fmt.Errorf("creating torus: %w", err)
	}
	torusLines, err := mesh.Torus(true, t.MajorRadius, t.MinorRadius, t.Segments, t.Rings)
	if err != nil {
		return fmt.Errorf("creating torus lines: %w", err)
	}

	meshes := []struct {
		name string
		mesh *mesh.Mesh
	}{
		{MeshTriangle, mesh.Triangle(false)},
		{MeshTriangleEdges, mesh.Triangle(true)},
		{MeshMoebiusStrip, moebius},
		{MeshMoebiusStripEdges, moebiusEdges},
		{MeshTorus, torus},
		{MeshTorusLines, torusLines},
	}
	for _, m := range meshes {
		if err := s.scene.AddMesh(m.name, m.mesh); err != nil {
			return err
		}
	}

	if opts.Light {
		light := mesh.Triangle(false)
		light.Color = mesh.White
		light.Model = math.Translate(opts.LightPosition.X, opts.LightPosition.Y, opts.LightPosition.Z).
			Mul(math.Scale(0.1, 0.1, 0.1))
		if err := s.scene.AddLight(MeshLight, light); err != nil {
			return err
		}
	}
	return nil
}

// Scene exposes the registry.
func (s *Session) Scene() *scene.Registry {
	return s.scene
}

// ActiveCamera returns the camera whose matrices are used for drawing.
func (s *Session) ActiveCamera() camera.Camera {
	return s.scene.Camera()
}

// Pickable returns the solid mesh of the shown shape.
func (s *Session) Pickable() []picking.Target {
	solid, _ := s.shape.meshNames()
	m := s.scene.Mesh(solid)
	if m == nil {
		return nil
	}
	return []picking.Target{{Name: solid, Mesh: m}}
}

// Update runs one frame: FPS text, camera movement, drags, picking and the
// color pull from the editor, in that order.
func (s *Session) Update(in input.Sample) {
	if in.DeltaTime > 0 {
		s.fps = fmt.Sprintf("FPS: %d", int(1/in.DeltaTime))
	}

	f := s.tracker.Next(in)
	cam := s.scene.Camera()
	if cam != nil {
		s.move(cam, in)
	}

	s.engine.Update(f, cam, s.scene.Selected())

	if f.JustPressed(input.ButtonSecondary) {
		s.Select(in.Cursor.X, in.Cursor.Y)
	}

	if sel := s.scene.Selected(); sel != nil {
		sel.Color = s.editor.Color()
	}
}

func (s *Session) move(cam camera.Camera, in input.Sample) {
	step := s.speed * in.DeltaTime
	if in.Held(input.KeyForward) {
		cam.Forward(step)
	}
	if in.Held(input.KeyBackward) {
		cam.Forward(-step)
	}
	if in.Held(input.KeyLeft) {
		cam.Right(-step)
	}
	if in.Held(input.KeyRight) {
		cam.Right(step)
	}
	if in.Held(input.KeyUp) {
		cam.Up(step)
	}
	if in.Held(input.KeyDown) {
		cam.Up(-step)
	}
}

// Select picks at window coordinates with a top-left origin. On a hit the
// mesh's color is pushed to the color editor.
func (s *Session) Select(x, y float32) *mesh.Mesh {
	sel := s.scene.Select(x, float32(s.height)-y)
	if sel == nil {
		s.log.Debug("pick missed", zap.Float32("x", x), zap.Float32("y", y))
		return nil
	}
	s.editor.SetColor(sel.Color)
	s.log.Debug("mesh selected", zap.String("name", s.scene.SelectedName()))
	return sel
}

// Resize updates the camera aspect ratios, the picking viewport and the
// panel region. Non-positive sizes are ignored.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	for _, kind := range []camera.Kind{camera.FirstPersonKind, camera.TurntableKind} {
		if cam := s.scene.CameraOf(kind); cam != nil {
			cam.SetAspect(width, height)
		}
	}
	s.picker.SetViewport(width, height)
	s.engine.SetViewport(width, height)
	s.updatePanel()
}

func (s *Session) updatePanel() {
	s.engine.SetPanel(manipulate.Panel{
		Visible: s.showPanel,
		Width:   s.PanelWidth(),
		Margin:  s.panelMargin,
	})
}

// PanelWidth is the control panel width for the current viewport.
func (s *Session) PanelWidth() float32 {
	if s.width > widePanelAbove {
		return widePanelWidth
	}
	return narrowPanelWidth
}

// ShowPanel reports whether the control panel is visible.
func (s *Session) ShowPanel() bool {
	return s.showPanel
}

// TogglePanel shows or hides the control panel.
func (s *Session) TogglePanel() {
	s.showPanel = !s.showPanel
	s.updatePanel()
}

// PanelRect is the control panel's window rectangle, docked at the right
// edge and inset by the panel margin. It matches the region where camera
// look is suppressed.
func (s *Session) PanelRect() Rect {
	w := s.PanelWidth()
	return Rect{
		X: float32(s.width) - w - s.panelMargin,
		Y: s.panelMargin,
		W: w,
		H: float32(s.height) - 2*s.panelMargin,
	}
}

// SetShowHelp shows or hides the help window. It is only drawn while the
// panel is visible.
func (s *Session) SetShowHelp(on bool) {
	s.showHelp = on
}

// ShowHelp reports whether the help window is drawn.
func (s *Session) ShowHelp() bool {
	return s.showPanel && s.showHelp
}

// HelpRect is the help window's rectangle along the bottom edge, left of
// the panel.
func (s *Session) HelpRect() Rect {
	m := s.panelMargin
	h := min(helpHeight, float32(s.height)-2*m)
	return Rect{
		X: m,
		Y: float32(s.height) - h - m,
		W: float32(s.width) - s.PanelWidth() - 3*m,
		H: h,
	}
}

// SetCamera switches the active camera. Both cameras keep their state.
func (s *Session) SetCamera(kind camera.Kind) error {
	if err := s.scene.SetActiveCamera(kind); err != nil {
		return err
	}
	s.log.Info("camera switched", zap.Stringer("camera", kind))
	return nil
}

// SetShape changes the shown shape. A selection on the previous shape is
// dropped so it cannot be manipulated off screen.
func (s *Session) SetShape(shape Shape) {
	if shape == s.shape {
		return
	}
	s.shape = shape
	s.scene.ClearSelection()
	s.log.Info("shape switched", zap.Stringer("shape", shape))
}

// Shape returns the shown shape.
func (s *Session) Shape() Shape {
	return s.shape
}

// SetDrawLines enables or disables the wireframe overlay.
func (s *Session) SetDrawLines(on bool) {
	s.drawLines = on
}

// DrawLines reports whether the wireframe overlay is drawn.
func (s *Session) DrawLines() bool {
	return s.drawLines
}

// SetCameraSpeed sets the movement speed, clamped to the allowed range.
func (s *Session) SetCameraSpeed(speed float32) {
	switch {
	case speed < MinCameraSpeed:
		speed = MinCameraSpeed
	case speed > MaxCameraSpeed:
		speed = MaxCameraSpeed
	}
	s.speed = speed
}

// CameraSpeed returns the movement speed.
func (s *Session) CameraSpeed() float32 {
	return s.speed
}

// FPS returns the status line text computed by the last Update.
func (s *Session) FPS() string {
	return s.fps
}

// Mode returns the current drag mode.
func (s *Session) Mode() manipulate.Mode {
	return s.engine.Mode()
}

// Size returns the viewport size.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}
