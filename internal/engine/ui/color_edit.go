package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshview/pkg/math"
)

// ColorEdit is an RGBA color widget. The program pushes a color with
// SetColor and reads back whatever the user picked with Color.
type ColorEdit struct {
	label string
	rgba  [4]float32
}

// NewColorEdit creates a widget holding c.
func NewColorEdit(label string, c math.Vec4) *ColorEdit {
	e := &ColorEdit{label: label}
	e.SetColor(c)
	return e
}

// SetColor replaces the edited color. Components are clamped to [0, 1].
func (e *ColorEdit) SetColor(c math.Vec4) {
	e.rgba = [4]float32{unit(c.X), unit(c.Y), unit(c.Z), unit(c.W)}
}

// Color returns the edited color.
func (e *ColorEdit) Color() math.Vec4 {
	return math.Vec4{X: e.rgba[0], Y: e.rgba[1], Z: e.rgba[2], W: e.rgba[3]}
}

// Draw lays out the widget in the current window. Returns true if the
// user changed the color.
func (e *ColorEdit) Draw() bool {
	imgui.SetNextItemWidth(-1)
	return imgui.ColorEdit4(e.label, &e.rgba)
}

func unit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
