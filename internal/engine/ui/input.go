package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/pkg/math"
)

// offscreen is below any real cursor coordinate. ImGui reports -FLT_MAX
// while the cursor is outside the window.
const offscreen = -1e30

var movementKeys = []struct {
	key imgui.Key
	bit input.Key
}{
	{imgui.KeyW, input.KeyForward},
	{imgui.KeyS, input.KeyBackward},
	{imgui.KeyA, input.KeyLeft},
	{imgui.KeyD, input.KeyRight},
	{imgui.KeySpace, input.KeyUp},
	{imgui.KeyLeftAlt, input.KeyDown},
}

// Sample reads this frame's held input from ImGui.
func (b *Backend) Sample(dt float32) input.Sample {
	var s input.Sample
	s.DeltaTime = dt

	if pos := imgui.MousePos(); pos.X > offscreen && pos.Y > offscreen {
		b.cursor = math.Vec2{X: pos.X, Y: pos.Y}
	}
	s.Cursor = b.cursor

	if imgui.IsMouseDown(imgui.MouseButtonLeft) {
		s.Buttons |= input.ButtonPrimary
	}
	if imgui.IsMouseDown(imgui.MouseButtonRight) {
		s.Buttons |= input.ButtonSecondary
	}
	for _, k := range movementKeys {
		if imgui.IsKeyDown(k.key) {
			s.Keys |= k.bit
		}
	}
	if imgui.IsKeyDown(imgui.KeyLeftShift) {
		s.Modifiers |= input.ModShift
	}
	if imgui.IsKeyDown(imgui.KeyLeftCtrl) {
		s.Modifiers |= input.ModControl
	}

	io := imgui.CurrentIO()
	return withoutCaptured(s, io.WantCaptureMouse(), io.WantCaptureKeyboard())
}

// withoutCaptured drops the signals an ImGui window is consuming, so a click
// on a widget is not also a pick or a drag in the scene.
func withoutCaptured(s input.Sample, mouse, keyboard bool) input.Sample {
	if mouse {
		s.Buttons = 0
	}
	if keyboard {
		s.Keys = 0
	}
	return s
}
