package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/viewer"
	"github.com/Faultbox/meshview/pkg/math"
)

var _ viewer.ColorEditor = (*ColorEdit)(nil)

func TestColorEditClamps(t *testing.T) {
	e := NewColorEdit("##color", math.Vec4{X: -1, Y: 0.5, Z: 2, W: 1})
	assert.Equal(t, math.Vec4{X: 0, Y: 0.5, Z: 1, W: 1}, e.Color())
}

func TestColorEditHoldsPushedColor(t *testing.T) {
	e := NewColorEdit("##color", mesh.White)
	e.SetColor(mesh.Red)
	assert.Equal(t, mesh.Red, e.Color())
	assert.Equal(t, [4]float32{mesh.Red.X, mesh.Red.Y, mesh.Red.Z, mesh.Red.W}, e.rgba)
}

func TestColorEditRecolorsSelection(t *testing.T) {
	e := NewColorEdit("##color", mesh.White)
	s, err := viewer.New(viewer.DefaultOptions(), e, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, s.SetCamera(camera.TurntableKind))

	sel := s.Select(640, 360)
	require.NotNil(t, sel)
	assert.Equal(t, mesh.Green, e.Color(), "selection pushes the mesh color into the widget")

	// ColorEdit4 writes the picked color straight into the widget state.
	e.rgba = [4]float32{0.2, 0.3, 0.4, 1}
	s.Update(input.Sample{DeltaTime: 0.1})

	assert.Equal(t, math.Vec4{X: 0.2, Y: 0.3, Z: 0.4, W: 1}, sel.Color)
}
