package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/mesh"
)

// Target is a named mesh that a pick ray may hit.
type Target struct {
	Name string
	Mesh *mesh.Mesh
}

// Source supplies the camera and the meshes currently on screen.
type Source interface {
	ActiveCamera() camera.Camera
	Pickable() []Target
}

// RayPicker resolves window coordinates to the nearest visible mesh by
// casting a ray from the active camera.
type RayPicker struct {
	source Source
	width  float32
	height float32
}

// NewRayPicker creates a picker for a viewport of the given size.
func NewRayPicker(source Source, width, height int) *RayPicker {
	p := &RayPicker{source: source}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the viewport size in pixels.
func (p *RayPicker) SetViewport(width, height int) {
	p.width = float32(width)
	p.height = float32(height)
}

// Pick takes window coordinates with a bottom-left origin.
func (p *RayPicker) Pick(x, y float32) (string, bool) {
	cam := p.source.ActiveCamera()
	if cam == nil || p.width <= 0 || p.height <= 0 {
		return "", false
	}

	invViewProj := cam.ProjectionMatrix().Mul(cam.ViewMatrix()).Inverse()
	ray := ScreenToRay(x, p.height-y, p.width, p.height, invViewProj)

	best := float32(math32.MaxFloat32)
	name := ""
	for _, target := range p.source.Pickable() {
		if target.Mesh == nil {
			continue
		}
		if t, ok := HitMesh(ray, target.Mesh); ok && t < best {
			best = t
			name = target.Name
		}
	}
	return name, name != ""
}

// HitMesh returns the distance along a world-space ray to m. Triangle meshes
// are tested face by face; line meshes use their transformed bounds.
func HitMesh(ray Ray, m *mesh.Mesh) (float32, bool) {
	box := TransformAABB(m.Bounds.Min, m.Bounds.Max, m.Model)
	boxT, ok := ray.IntersectAABB(box)
	if !ok {
		return 0, false
	}
	if m.Mode != mesh.Triangles {
		return boxT, true
	}

	local, scale := ray.Transform(m.Model.Inverse())
	if scale == 0 {
		return 0, false
	}

	best := float32(math32.MaxFloat32)
	found := false
	for k := 0; k+2 < len(m.Indices); k += 3 {
		a := m.Vertex(int(m.Indices[k]))
		b := m.Vertex(int(m.Indices[k+1]))
		c := m.Vertex(int(m.Indices[k+2]))
		if t, hit := local.IntersectTriangle(a, b, c); hit && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best * scale, true
}
