// Package app runs the interactive viewer: it owns the window, drives the
// session from ImGui input and renders each frame.
package app

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/screenshot"
	"github.com/Faultbox/meshview/internal/engine/ui"
	"github.com/Faultbox/meshview/internal/viewer"
)

const windowTitle = "Mesh Viewer"

// speedStep is the camera speed change per +/- key press.
const speedStep = 1

var shapeKeys = []struct {
	key   imgui.Key
	shape viewer.Shape
}{
	{imgui.Key1, viewer.ShapeTriangle},
	{imgui.Key2, viewer.ShapeMoebius},
	{imgui.Key3, viewer.ShapeTorus},
}

// App is the main viewer instance.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	ui       *ui.Backend
	renderer *renderer.Renderer
	session  *viewer.Session
	panel    *controlPanel
	shots    *screenshot.Capture

	width, height int // window size in points, zero until the first frame

	lastFrame  time.Time
	fpsTimer   time.Time
	frameCount int
}

// New opens the window and builds the session.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	opts, err := viewer.OptionsFrom(cfg)
	if err != nil {
		return nil, fmt.Errorf("session options: %w", err)
	}

	a := &App{
		cfg:   cfg,
		log:   log,
		shots: screenshot.New(cfg.Graphics.ScreenshotDir, "Screenshot"),
	}

	// Create window (this also creates the OpenGL context)
	a.ui, err = ui.NewBackend(ui.Config{
		Title:    windowTitle,
		Width:    cfg.Graphics.Width,
		Height:   cfg.Graphics.Height,
		VSync:    cfg.Graphics.VSync,
		FPSLimit: cfg.Graphics.FPSLimit,
	}, log.Named("ui"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The first frame replaces these with the real window and drawable
	// sizes.
	a.renderer, err = renderer.New(renderer.Config{Width: cfg.Graphics.Width, Height: cfg.Graphics.Height}, log.Named("renderer"))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	color := ui.NewColorEdit("##color", mesh.White)
	a.session, err = viewer.New(opts, color, log.Named("session"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	a.panel = newControlPanel(a.session, color, log.Named("panel"))

	for _, name := range a.session.Scene().Names() {
		if err := a.renderer.Upload(a.session.Scene().Mesh(name)); err != nil {
			a.Close()
			return nil, fmt.Errorf("uploading %s: %w", name, err)
		}
	}

	log.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.lastFrame = time.Now()
	a.fpsTimer = a.lastFrame

	a.log.Info("starting main loop")
	a.ui.OnClose(a.Close)
	a.ui.Run(a.frame)
	return nil
}

func (a *App) frame() {
	now := time.Now()
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now

	a.syncSize()
	shot := a.handleKeys()

	a.session.Update(a.ui.Sample(float32(dt.Seconds())))
	a.renderer.Draw(a.session.DrawList())
	if shot {
		a.screenshot()
	}

	a.ui.DrawScene(a.renderer.Texture(), float32(a.width), float32(a.height))
	if a.session.ShowPanel() {
		a.panel.draw()
	}
	if a.session.ShowHelp() {
		a.panel.drawHelp()
	}
	if a.cfg.GUI.ShowFPS {
		drawStatus(a.session.FPS())
	}

	a.frameCount++
	if time.Since(a.fpsTimer) >= time.Second {
		if a.cfg.GUI.ShowFPS {
			a.ui.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, a.session.FPS()))
		}
		a.log.Debug("fps", zap.Int("count", a.frameCount), zap.Duration("dt", dt))
		a.frameCount = 0
		a.fpsTimer = now
	}
}

// syncSize follows window resizes. Picking and drags work in window points;
// the scene target is sized in pixels.
func (a *App) syncSize() {
	w, h := a.ui.DisplaySize()
	if w <= 0 || h <= 0 || (w == a.width && h == a.height) {
		return
	}
	a.width, a.height = w, h
	a.session.Resize(w, h)
	a.renderer.Resize(a.ui.FramebufferSize())
	a.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
}

// handleKeys applies this frame's key presses. It reports whether a
// screenshot was requested.
func (a *App) handleKeys() bool {
	s := a.session
	if ui.KeyPressed(imgui.KeyEscape) {
		a.ui.Close()
	}
	if ui.KeyPressed(imgui.KeyH) {
		s.TogglePanel()
	}
	if ui.KeyPressed(imgui.KeyC) {
		next := camera.TurntableKind
		if s.ActiveCamera().Kind() == camera.TurntableKind {
			next = camera.FirstPersonKind
		}
		a.panel.setCamera(next)
	}
	for _, k := range shapeKeys {
		if ui.KeyPressed(k.key) {
			s.SetShape(k.shape)
		}
	}
	if ui.KeyPressed(imgui.KeyL) {
		s.SetDrawLines(!s.DrawLines())
	}
	if ui.KeyPressed(imgui.KeyEqual) || ui.KeyPressed(imgui.KeyKeypadAdd) {
		s.SetCameraSpeed(s.CameraSpeed() + speedStep)
	}
	if ui.KeyPressed(imgui.KeyMinus) || ui.KeyPressed(imgui.KeyKeypadSubtract) {
		s.SetCameraSpeed(s.CameraSpeed() - speedStep)
	}
	if ui.KeyPressed(imgui.KeyV) {
		a.ui.SetVSync(!a.ui.VSync())
	}
	return ui.KeyPressed(imgui.KeyF12)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the GPU resources while the OpenGL context is alive. Run
// calls it as the window closes; calling it again is a no-op.
func (a *App) Close() {
	if a.renderer == nil {
		return
	}
	a.log.Info("closing viewer")
	a.renderer.Close()
	a.renderer = nil
}
