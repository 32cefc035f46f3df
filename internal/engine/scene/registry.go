// Package scene holds the viewer's meshes, lights, cameras and selection.
package scene

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/mesh"
)

var (
	ErrDuplicateMesh = errors.New("mesh already registered")
	ErrUnknownCamera = errors.New("camera not registered")
)

// Picker resolves window coordinates (bottom-left origin) to a mesh name.
type Picker interface {
	Pick(x, y float32) (name string, ok bool)
}

// Registry owns meshes by name. The active camera and the selection are
// lookups (camera kind, mesh name) rather than owning references, so a
// removed mesh simply stops resolving.
type Registry struct {
	meshes  map[string]*mesh.Mesh
	lights  map[string]bool
	cameras map[camera.Kind]camera.Camera

	active    camera.Kind
	hasActive bool
	selected  string
	picker    Picker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		meshes:  make(map[string]*mesh.Mesh),
		lights:  make(map[string]bool),
		cameras: make(map[camera.Kind]camera.Camera),
	}
}

// AddMesh registers m under name.
func (r *Registry) AddMesh(name string, m *mesh.Mesh) error {
	if _, ok := r.meshes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMesh, name)
	}
	r.meshes[name] = m
	return nil
}

// AddLight registers m under name and marks it as a light.
func (r *Registry) AddLight(name string, m *mesh.Mesh) error {
	if err := r.AddMesh(name, m); err != nil {
		return err
	}
	r.lights[name] = true
	return nil
}

// RemoveMesh drops a mesh. A selection pointing at it stops resolving.
func (r *Registry) RemoveMesh(name string) {
	delete(r.meshes, name)
	delete(r.lights, name)
}

// Mesh returns the mesh registered under name, or nil.
func (r *Registry) Mesh(name string) *mesh.Mesh {
	return r.meshes[name]
}

// Names returns all mesh names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.meshes))
}

// IsLight reports whether name is registered as a light.
func (r *Registry) IsLight(name string) bool {
	return r.lights[name]
}

// Lights returns the light meshes sorted by name.
func (r *Registry) Lights() []*mesh.Mesh {
	names := slices.Sorted(maps.Keys(r.lights))
	lights := make([]*mesh.Mesh, 0, len(names))
	for _, name := range names {
		lights = append(lights, r.meshes[name])
	}
	return lights
}

// AddCamera makes cam available for activation. Registering a second camera
// of the same kind replaces the first.
func (r *Registry) AddCamera(cam camera.Camera) {
	r.cameras[cam.Kind()] = cam
}

// SetActiveCamera switches the camera whose matrices are used. Neither
// camera's state is touched.
func (r *Registry) SetActiveCamera(kind camera.Kind) error {
	if _, ok := r.cameras[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCamera, kind)
	}
	r.active = kind
	r.hasActive = true
	return nil
}

// Camera returns the active camera, or nil when none is set.
func (r *Registry) Camera() camera.Camera {
	if !r.hasActive {
		return nil
	}
	return r.cameras[r.active]
}

// CameraOf returns the registered camera of the given kind, or nil.
func (r *Registry) CameraOf(kind camera.Kind) camera.Camera {
	return r.cameras[kind]
}

// SetPicker installs the picking mechanism used by Select.
func (r *Registry) SetPicker(p Picker) {
	r.picker = p
}

// Select clears the selection and picks the mesh at (x, y), bottom-left
// origin. It returns the new selection or nil.
func (r *Registry) Select(x, y float32) *mesh.Mesh {
	r.ClearSelection()
	if r.picker == nil {
		return nil
	}
	name, ok := r.picker.Pick(x, y)
	if !ok || !r.SetSelected(name) {
		return nil
	}
	return r.Selected()
}

// SetSelected selects a registered mesh by name.
func (r *Registry) SetSelected(name string) bool {
	if _, ok := r.meshes[name]; !ok {
		return false
	}
	r.selected = name
	return true
}

// ClearSelection drops the selection.
func (r *Registry) ClearSelection() {
	r.selected = ""
}

// Selected returns the selected mesh, or nil.
func (r *Registry) Selected() *mesh.Mesh {
	if r.selected == "" {
		return nil
	}
	return r.meshes[r.selected]
}

// SelectedName returns the name of the selected mesh, or "" when nothing
// resolves.
func (r *Registry) SelectedName() string {
	if r.Selected() == nil {
		return ""
	}
	return r.selected
}
