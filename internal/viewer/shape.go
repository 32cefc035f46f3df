package viewer

import (
	"fmt"
	"strings"
)

// Shape is the object shown in the viewport.
type Shape int

const (
	ShapeTriangle Shape = iota
	ShapeMoebius
	ShapeTorus
)

func (s Shape) String() string {
	switch s {
	case ShapeTriangle:
		return "triangle"
	case ShapeMoebius:
		return "moebius"
	case ShapeTorus:
		return "torus"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape accepts the names produced by String.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(name) {
	case "triangle":
		return ShapeTriangle, nil
	case "moebius", "möbius":
		return ShapeMoebius, nil
	case "torus":
		return ShapeTorus, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Registry names of the generated meshes.
const (
	MeshTriangle          = "triangle"
	MeshTriangleEdges     = "triangleEdges"
	MeshMoebiusStrip      = "moebiusStrip"
	MeshMoebiusStripEdges = "moebiusStripEdges"
	MeshTorus             = "torus"
	MeshTorusLines        = "torusLines"
	MeshLight             = "light"
)

// meshNames returns the solid and overlay mesh names for a shape.
func (s Shape) meshNames() (solid, overlay string) {
	switch s {
	case ShapeMoebius:
		return MeshMoebiusStrip, MeshMoebiusStripEdges
	case ShapeTorus:
		return MeshTorus, MeshTorusLines
	default:
		return MeshTriangle, MeshTriangleEdges
	}
}
