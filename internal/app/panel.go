package app

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/ui"
	"github.com/Faultbox/meshview/internal/viewer"
)

var cameraOptions = []struct {
	label string
	kind  camera.Kind
}{
	{"First person", camera.FirstPersonKind},
	{"Turntable", camera.TurntableKind},
}

var shapeOptions = []struct {
	label string
	shape viewer.Shape
}{
	{"Triangle", viewer.ShapeTriangle},
	{"Moebius strip", viewer.ShapeMoebius},
	{"Torus", viewer.ShapeTorus},
}

var helpLines = []string{
	"W/S, A/D, Space/Left Alt: move the camera",
	"Left drag: look around (first person) or orbit (turntable)",
	"Right click: select the object under the cursor",
	"Shift + left drag: rotate the selection",
	"Ctrl + left drag: move the selection",
	"C: switch camera   1/2/3: switch object   L: lines",
	"+/-: camera speed   H: panel   V: vsync   F12: screenshot   Esc: quit",
}

// controlPanel is the settings window docked at the right edge.
type controlPanel struct {
	session *viewer.Session
	color   *ui.ColorEdit
	log     *zap.Logger
}

func newControlPanel(s *viewer.Session, color *ui.ColorEdit, log *zap.Logger) *controlPanel {
	return &controlPanel{session: s, color: color, log: log}
}

func (p *controlPanel) draw() {
	s := p.session
	r := s.PanelRect()
	imgui.SetNextWindowPos(imgui.NewVec2(r.X, r.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(r.W, r.H))

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("Controls", nil, flags) {
		imgui.Text("Camera speed")
		speed := s.CameraSpeed()
		imgui.SetNextItemWidth(-1)
		if imgui.SliderFloatV("##speed", &speed, viewer.MinCameraSpeed, viewer.MaxCameraSpeed, "%.1f", imgui.SliderFlagsNone) {
			s.SetCameraSpeed(speed)
		}

		imgui.Spacing()
		imgui.Separator()
		imgui.Text("Camera")
		active := s.ActiveCamera().Kind()
		for _, opt := range cameraOptions {
			if imgui.RadioButtonBool(opt.label, active == opt.kind) {
				p.setCamera(opt.kind)
			}
		}

		imgui.Spacing()
		imgui.Separator()
		imgui.Text("Object")
		for _, opt := range shapeOptions {
			if imgui.RadioButtonBool(opt.label, s.Shape() == opt.shape) {
				s.SetShape(opt.shape)
			}
		}
		lines := s.DrawLines()
		if imgui.Checkbox("Draw lines", &lines) {
			s.SetDrawLines(lines)
		}

		imgui.Spacing()
		imgui.Separator()
		imgui.Text("Selection")
		if name := s.Scene().SelectedName(); name != "" {
			imgui.TextDisabled(name)
			p.color.Draw()
		} else {
			imgui.TextDisabled("Right click an object")
		}

		imgui.Spacing()
		imgui.Separator()
		help := s.ShowHelp()
		if imgui.Checkbox("Show help", &help) {
			s.SetShowHelp(help)
		}
	}
	imgui.End()
}

func (p *controlPanel) drawHelp() {
	r := p.session.HelpRect()
	imgui.SetNextWindowPos(imgui.NewVec2(r.X, r.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(r.W, r.H))
	imgui.SetNextWindowBgAlpha(0.8)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("Help", nil, flags) {
		for _, line := range helpLines {
			imgui.TextWrapped(line)
		}
	}
	imgui.End()
}

func (p *controlPanel) setCamera(kind camera.Kind) {
	if err := p.session.SetCamera(kind); err != nil {
		p.log.Error("camera switch failed", zap.Error(err))
	}
}

// drawStatus renders the FPS line in the top-left corner.
func drawStatus(text string) {
	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Status", nil, flags) {
		imgui.Text(text)
	}
	imgui.End()
}
