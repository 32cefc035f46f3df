package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

type stubPicker struct {
	name   string
	ok     bool
	gotX   float32
	gotY   float32
	called int
}

func (p *stubPicker) Pick(x, y float32) (string, bool) {
	p.called++
	p.gotX, p.gotY = x, y
	return p.name, p.ok
}

func TestAddMesh(t *testing.T) {
	r := New()
	tri := mesh.Triangle(false)
	require.NoError(t, r.AddMesh("triangle", tri))
	assert.Same(t, tri, r.Mesh("triangle"))
	assert.Nil(t, r.Mesh("missing"))

	err := r.AddMesh("triangle", mesh.Triangle(true))
	assert.ErrorIs(t, err, ErrDuplicateMesh)
	assert.Same(t, tri, r.Mesh("triangle"))
}

func TestNamesAndLights(t *testing.T) {
	r := New()
	require.NoError(t, r.AddMesh("b", mesh.Triangle(false)))
	require.NoError(t, r.AddMesh("a", mesh.Triangle(false)))
	lamp := mesh.Triangle(false)
	require.NoError(t, r.AddLight("lamp", lamp))

	assert.Equal(t, []string{"a", "b", "lamp"}, r.Names())
	assert.Equal(t, []*mesh.Mesh{lamp}, r.Lights())
	assert.True(t, r.IsLight("lamp"))
	assert.False(t, r.IsLight("a"))

	r.RemoveMesh("lamp")
	assert.Empty(t, r.Lights())
}

func TestActiveCamera(t *testing.T) {
	r := New()
	assert.Nil(t, r.Camera())

	fp := camera.NewFirstPerson(camera.DefaultConfig(math.Vec3{Y: 1, Z: 3}))
	tt := camera.NewTurntable(camera.DefaultConfig(math.Vec3{X: 1, Y: 3, Z: 4}))
	r.AddCamera(fp)
	r.AddCamera(tt)

	require.NoError(t, r.SetActiveCamera(camera.FirstPersonKind))
	assert.Equal(t, camera.Camera(fp), r.Camera())

	r.Camera().Forward(1)
	moved := fp.Position()

	require.NoError(t, r.SetActiveCamera(camera.TurntableKind))
	r.Camera().Forward(-1)
	require.NoError(t, r.SetActiveCamera(camera.FirstPersonKind))

	assert.Equal(t, moved, r.Camera().Position(), "switching keeps camera state")
	assert.Same(t, tt, r.CameraOf(camera.TurntableKind).(*camera.Turntable))
}

func TestSetActiveCameraUnknown(t *testing.T) {
	r := New()
	err := r.SetActiveCamera(camera.TurntableKind)
	assert.ErrorIs(t, err, ErrUnknownCamera)
	assert.Nil(t, r.Camera())
}

func TestSelect(t *testing.T) {
	r := New()
	tri := mesh.Triangle(false)
	require.NoError(t, r.AddMesh("triangle", tri))

	picker := &stubPicker{name: "triangle", ok: true}
	r.SetPicker(picker)

	assert.Same(t, tri, r.Select(10, 20))
	assert.Equal(t, float32(10), picker.gotX)
	assert.Equal(t, float32(20), picker.gotY)
	assert.Equal(t, "triangle", r.SelectedName())

	picker.ok = false
	assert.Nil(t, r.Select(1, 1))
	assert.Nil(t, r.Selected(), "a miss clears the previous selection")
}

func TestSelectWithoutPicker(t *testing.T) {
	r := New()
	require.NoError(t, r.AddMesh("triangle", mesh.Triangle(false)))
	require.True(t, r.SetSelected("triangle"))

	assert.Nil(t, r.Select(0, 0))
	assert.Nil(t, r.Selected())
}

func TestSelectionSurvivesRemovalAsLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.AddMesh("triangle", mesh.Triangle(false)))
	require.True(t, r.SetSelected("triangle"))

	r.RemoveMesh("triangle")
	assert.Nil(t, r.Selected())
	assert.Equal(t, "", r.SelectedName())

	assert.False(t, r.SetSelected("missing"))
}
