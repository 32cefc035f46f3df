package viewer

import (
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

// Pass selects the shader program for a draw item.
type Pass int

const (
	PassLit   Pass = iota // lit by the scene lights
	PassDebug             // flat color
)

// Cull selects which faces the renderer discards.
type Cull int

const (
	CullNone Cull = iota
	CullBack
	CullFront
)

// OverlayLineWidth is the line width of the wireframe overlay.
const OverlayLineWidth = 2

// DrawItem is one draw call.
type DrawItem struct {
	Name      string
	Mesh      *mesh.Mesh
	Model     math.Mat4
	Color     math.Vec4
	Cull      Cull
	Pass      Pass
	LineWidth float32
}

// SelectionBox outlines the selected mesh's local bounds.
type SelectionBox struct {
	Bounds mesh.Bounds
	Model  math.Mat4
	Color  math.Vec4
}

// DrawList describes a frame for the renderer.
type DrawList struct {
	View       math.Mat4
	Projection math.Mat4
	Lights     []lighting.PointLight
	Items      []DrawItem
	Selection  *SelectionBox
}

// DrawList builds the frame description from the current state. Front faces
// use the mesh color and back faces are red. The overlay reuses the solid
// mesh's model matrix so it follows manipulation. Line meshes are never lit.
func (s *Session) DrawList() DrawList {
	var dl DrawList
	cam := s.scene.Camera()
	if cam == nil {
		return dl
	}
	dl.View = cam.ViewMatrix()
	dl.Projection = cam.ProjectionMatrix()

	lights := s.scene.Lights()
	for _, l := range lights {
		dl.Lights = append(dl.Lights, lighting.PointLight{
			Position: l.Model.Translation(),
			Color:    l.Color.Vec3(),
		})
	}

	solidName, overlayName := s.shape.meshNames()
	if solid := s.scene.Mesh(solidName); solid != nil {
		dl.Items = append(dl.Items,
			DrawItem{Name: solidName, Mesh: solid, Model: solid.Model, Color: solid.Color, Cull: CullBack, Pass: PassLit},
			DrawItem{Name: solidName, Mesh: solid, Model: solid.Model, Color: mesh.Red, Cull: CullFront, Pass: PassLit},
		)
		if overlay := s.scene.Mesh(overlayName); s.drawLines && overlay != nil {
			dl.Items = append(dl.Items, DrawItem{
				Name:      overlayName,
				Mesh:      overlay,
				Model:     solid.Model,
				Color:     mesh.LightBlue,
				Pass:      PassDebug,
				LineWidth: OverlayLineWidth,
			})
		}
	}

	for _, name := range s.scene.Names() {
		if !s.scene.IsLight(name) {
			continue
		}
		l := s.scene.Mesh(name)
		dl.Items = append(dl.Items, DrawItem{Name: name, Mesh: l, Model: l.Model, Color: l.Color, Pass: PassDebug})
	}

	if sel := s.scene.Selected(); sel != nil {
		dl.Selection = &SelectionBox{Bounds: sel.Bounds, Model: sel.Model, Color: mesh.Green}
	}
	return dl
}
