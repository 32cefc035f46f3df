package viewer

import "github.com/Faultbox/meshview/pkg/math"

// ColorEditor is the GUI widget that edits the selected mesh's color.
// The session pushes a color on selection and pulls it once per frame.
type ColorEditor interface {
	SetColor(c math.Vec4)
	Color() math.Vec4
}

// ColorPanel is a ColorEditor that holds the color in memory. Frontends
// without a color widget, and tests, use it directly.
type ColorPanel struct {
	color math.Vec4
}

// NewColorPanel creates a panel holding c.
func NewColorPanel(c math.Vec4) *ColorPanel {
	return &ColorPanel{color: c}
}

func (p *ColorPanel) SetColor(c math.Vec4) {
	p.color = clampColor(c)
}

func (p *ColorPanel) Color() math.Vec4 {
	return p.color
}

func clampColor(c math.Vec4) math.Vec4 {
	return math.Vec4{X: unit(c.X), Y: unit(c.Y), Z: unit(c.Z), W: unit(c.W)}
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
