package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/manipulate"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

func newSession(t *testing.T, editor ColorEditor) *Session {
	t.Helper()
	s, err := New(DefaultOptions(), editor, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newSession(t, nil)

	assert.ElementsMatch(t, []string{
		MeshTriangle, MeshTriangleEdges,
		MeshMoebiusStrip, MeshMoebiusStripEdges,
		MeshTorus, MeshTorusLines,
		MeshLight,
	}, s.Scene().Names())
	assert.Equal(t, camera.FirstPersonKind, s.ActiveCamera().Kind())
	assert.Equal(t, float32(250), s.PanelWidth())
	assert.Equal(t, float32(DefaultCameraSpeed), s.CameraSpeed())
	assert.Equal(t, mesh.Lines, s.Scene().Mesh(MeshTorusLines).Mode)
}

func TestNewSessionInvalidTessellation(t *testing.T) {
	opts := DefaultOptions()
	opts.Torus.Rings = 1
	_, err := New(opts, nil, nil)
	assert.ErrorIs(t, err, mesh.ErrInvalidTessellation)
}

func TestMovementKeys(t *testing.T) {
	s := newSession(t, nil)

	s.Update(input.Sample{Keys: input.KeyForward, DeltaTime: 0.1})
	pos := s.ActiveCamera().Position()
	assert.InDelta(t, 2.5, pos.Z, 1e-5)
	assert.InDelta(t, 1, pos.Y, 1e-5)

	s.Update(input.Sample{Keys: input.KeyUp | input.KeyRight, DeltaTime: 0.1})
	pos = s.ActiveCamera().Position()
	assert.InDelta(t, 0.5, pos.X, 1e-5)
	assert.InDelta(t, 1.5, pos.Y, 1e-5)
}

func TestCameraSpeedClamp(t *testing.T) {
	s := newSession(t, nil)

	s.SetCameraSpeed(100)
	assert.Equal(t, float32(MaxCameraSpeed), s.CameraSpeed())
	s.SetCameraSpeed(0)
	assert.Equal(t, float32(MinCameraSpeed), s.CameraSpeed())
}

func TestSwitchCameraKeepsState(t *testing.T) {
	s := newSession(t, nil)
	s.Update(input.Sample{Keys: input.KeyForward, DeltaTime: 0.1})
	fpPos := s.ActiveCamera().Position()

	require.NoError(t, s.SetCamera(camera.TurntableKind))
	ttPos := s.ActiveCamera().Position()
	assert.InDelta(t, 1, ttPos.X, 1e-4)
	assert.InDelta(t, 3, ttPos.Y, 1e-4)
	assert.InDelta(t, 4, ttPos.Z, 1e-4)

	require.NoError(t, s.SetCamera(camera.FirstPersonKind))
	assert.Equal(t, fpPos, s.ActiveCamera().Position())
}

func TestSelectPushesAndPullsColor(t *testing.T) {
	editor := NewColorPanel(mesh.White)
	s := newSession(t, editor)
	require.NoError(t, s.SetCamera(camera.TurntableKind))

	// The turntable looks at the origin, which lies inside the triangle.
	sel := s.Select(640, 360)
	require.NotNil(t, sel)
	assert.Equal(t, MeshTriangle, s.Scene().SelectedName())
	assert.Equal(t, mesh.Green, editor.Color())

	edited := math.Vec4{X: 0.2, Y: 0.3, Z: 0.4, W: 1}
	editor.SetColor(edited)
	s.Update(input.Sample{DeltaTime: 0.5})
	assert.Equal(t, edited, sel.Color)
	assert.Equal(t, "FPS: 2", s.FPS())
}

func TestSelectMissClearsSelection(t *testing.T) {
	s := newSession(t, nil)
	require.NoError(t, s.SetCamera(camera.TurntableKind))
	require.NotNil(t, s.Select(640, 360))

	assert.Nil(t, s.Select(5, 5))
	assert.Nil(t, s.Scene().Selected())
}

func TestSecondaryPressSelects(t *testing.T) {
	s := newSession(t, nil)
	require.NoError(t, s.SetCamera(camera.TurntableKind))

	center := math.Vec2{X: 640, Y: 360}
	s.Update(input.Sample{Cursor: center, Buttons: input.ButtonSecondary, DeltaTime: 0.1})
	assert.Equal(t, MeshTriangle, s.Scene().SelectedName())

	// Holding the button does not pick again.
	s.Scene().ClearSelection()
	s.Update(input.Sample{Cursor: center, Buttons: input.ButtonSecondary, DeltaTime: 0.1})
	assert.Nil(t, s.Scene().Selected())
}

func TestTranslateDragMovesSelection(t *testing.T) {
	s := newSession(t, nil)
	require.NoError(t, s.SetCamera(camera.TurntableKind))
	sel := s.Select(640, 360)
	require.NotNil(t, sel)

	s.Update(input.Sample{Cursor: math.Vec2{X: 100, Y: 100}, Buttons: input.ButtonPrimary, Modifiers: input.ModControl, DeltaTime: 0.1})
	s.Update(input.Sample{Cursor: math.Vec2{X: 110, Y: 100}, Buttons: input.ButtonPrimary, Modifiers: input.ModControl, DeltaTime: 0.1})

	assert.Equal(t, manipulate.ModeTranslate, s.Mode())
	moved := sel.Model.Translation()
	assert.InDelta(t, 0.1, moved.Length(), 1e-4)
	assert.InDelta(t, 0, moved.Y, 1e-5)
}

func TestSetShapeClearsSelection(t *testing.T) {
	s := newSession(t, nil)
	require.NoError(t, s.SetCamera(camera.TurntableKind))
	require.NotNil(t, s.Select(640, 360))

	s.SetShape(ShapeTorus)
	assert.Nil(t, s.Scene().Selected())

	targets := s.Pickable()
	require.Len(t, targets, 1)
	assert.Equal(t, MeshTorus, targets[0].Name)
}

func TestResize(t *testing.T) {
	s := newSession(t, nil)

	s.Resize(800, 600)
	assert.Equal(t, float32(200), s.PanelWidth())
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	s.Resize(0, 600)
	w, _ = s.Size()
	assert.Equal(t, 800, w)
}

func TestTogglePanel(t *testing.T) {
	s := newSession(t, nil)
	require.True(t, s.ShowPanel())
	s.TogglePanel()
	assert.False(t, s.ShowPanel())
}

func TestPanelRect(t *testing.T) {
	s := newSession(t, nil)

	r := s.PanelRect()
	assert.Equal(t, Rect{X: 1020, Y: 10, W: 250, H: 700}, r)

	// The window's left edge is where camera look stops.
	panel := s.engine.Panel()
	assert.True(t, panel.Covers(r.X, 1280))
	assert.False(t, panel.Covers(r.X-1, 1280))

	s.Resize(800, 600)
	assert.Equal(t, Rect{X: 590, Y: 10, W: 200, H: 580}, s.PanelRect())
}

func TestHelpWindow(t *testing.T) {
	s := newSession(t, nil)
	assert.False(t, s.ShowHelp())

	s.SetShowHelp(true)
	assert.True(t, s.ShowHelp())
	assert.Equal(t, Rect{X: 10, Y: 510, W: 1000, H: 200}, s.HelpRect())

	s.TogglePanel()
	assert.False(t, s.ShowHelp(), "help is part of the panel")

	s.Resize(800, 150)
	assert.Equal(t, float32(130), s.HelpRect().H)
}

func TestDrawList(t *testing.T) {
	s := newSession(t, nil)

	dl := s.DrawList()
	require.Len(t, dl.Items, 4)
	assert.Equal(t, CullBack, dl.Items[0].Cull)
	assert.Equal(t, mesh.Green, dl.Items[0].Color)
	assert.Equal(t, CullFront, dl.Items[1].Cull)
	assert.Equal(t, mesh.Red, dl.Items[1].Color)
	assert.Equal(t, MeshTriangleEdges, dl.Items[2].Name)
	assert.Equal(t, mesh.LightBlue, dl.Items[2].Color)
	assert.Equal(t, PassDebug, dl.Items[2].Pass)
	assert.Equal(t, PassDebug, dl.Items[3].Pass)
	assert.Nil(t, dl.Selection)

	require.Len(t, dl.Lights, 1)
	assert.Equal(t, DefaultOptions().LightPosition, dl.Lights[0].Position)

	s.SetDrawLines(false)
	assert.Len(t, s.DrawList().Items, 3)
}

func TestDrawListLinesAreUnlit(t *testing.T) {
	s := newSession(t, nil)

	for _, shape := range []Shape{ShapeTriangle, ShapeMoebius, ShapeTorus} {
		s.SetShape(shape)
		var lines int
		for _, item := range s.DrawList().Items {
			if item.Mesh.Mode == mesh.Lines {
				lines++
				assert.Equal(t, PassDebug, item.Pass, "%s: %s", shape, item.Name)
			}
		}
		assert.Equal(t, 1, lines, shape.String())
	}
}

func TestDrawListSelection(t *testing.T) {
	s := newSession(t, nil)
	require.NoError(t, s.SetCamera(camera.TurntableKind))
	sel := s.Select(640, 360)
	require.NotNil(t, sel)

	dl := s.DrawList()
	require.NotNil(t, dl.Selection)
	assert.Equal(t, sel.Bounds, dl.Selection.Bounds)
	assert.Equal(t, mesh.Green, dl.Selection.Color)
}

func TestParseShape(t *testing.T) {
	for _, shape := range []Shape{ShapeTriangle, ShapeMoebius, ShapeTorus} {
		got, err := ParseShape(shape.String())
		require.NoError(t, err)
		assert.Equal(t, shape, got)
	}
	_, err := ParseShape("cube")
	assert.Error(t, err)
}

func TestColorPanelClamps(t *testing.T) {
	p := NewColorPanel(mesh.White)
	p.SetColor(math.Vec4{X: 2, Y: -1, Z: 0.5, W: 1})
	assert.Equal(t, math.Vec4{X: 1, Y: 0, Z: 0.5, W: 1}, p.Color())
}
