// Package mesh builds parametric surface meshes and their wireframe overlays.
package mesh

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// DrawMode selects how the renderer interprets the index buffer.
type DrawMode int

const (
	Triangles DrawMode = iota
	Lines
)

func (m DrawMode) String() string {
	if m == Lines {
		return "lines"
	}
	return "triangles"
}

// Common diffuse colors (RGBA).
var (
	Green     = math.Vec4{X: 0, Y: 1, Z: 0, W: 1}
	Cyan      = math.Vec4{X: 0, Y: 1, Z: 1, W: 1}
	Red       = math.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	LightBlue = math.Vec4{X: 0.5, Y: 0.75, Z: 1, W: 1}
	White     = math.Vec4{X: 1, Y: 1, Z: 1, W: 1}
)

// Bounds holds the axis-aligned bounding box of a mesh in local space.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Corners returns the eight corners of the box.
func (b Bounds) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Mesh holds generated geometry ready for GPU upload.
//
// Positions and Indices are written once by the generators. Only Model and
// Color are meant to change afterwards.
type Mesh struct {
	Positions []float32 // x, y, z per vertex
	Indices   []uint32
	Mode      DrawMode
	Model     math.Mat4
	Color     math.Vec4
	Bounds    Bounds
}

// New creates a mesh from positions and indices with an identity model
// matrix, computing its bounds.
func New(positions []float32, indices []uint32, mode DrawMode, color math.Vec4) *Mesh {
	return &Mesh{
		Positions: positions,
		Indices:   indices,
		Mode:      mode,
		Model:     math.Identity(),
		Color:     color,
		Bounds:    computeBounds(positions),
	}
}

// VertexCount returns the number of vertices in the position buffer.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Vertex returns vertex i in local space.
func (m *Mesh) Vertex(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

func computeBounds(positions []float32) Bounds {
	if len(positions) < 3 {
		return Bounds{}
	}
	first := math.Vec3{X: positions[0], Y: positions[1], Z: positions[2]}
	b := Bounds{Min: first, Max: first}
	for i := 3; i+2 < len(positions); i += 3 {
		p := math.Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}
