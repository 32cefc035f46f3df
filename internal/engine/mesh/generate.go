package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// ErrInvalidTessellation is returned when a generator is asked for fewer
// than two samples along a parametric dimension.
var ErrInvalidTessellation = errors.New("invalid tessellation")

// Möbius strip sampling used by MoebiusStrip.
const (
	MoebiusUSteps = 100
	MoebiusVSteps = 20
)

// Triangle builds the fixed two-triangle test shape. The second triangle
// reuses the shared edge (1,2) with a fourth vertex.
func Triangle(wireframe bool) *Mesh {
	positions := []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0, 0.5, 0,
		1, 0.5, 0,
	}
	indices := []uint32{0, 1, 2, 3, 1, 2}
	return build(positions, indices, wireframe, Green)
}

// MoebiusStrip builds a Möbius strip with the default sampling.
func MoebiusStrip(wireframe bool) *Mesh {
	m, err := MoebiusStripSteps(wireframe, MoebiusUSteps, MoebiusVSteps)
	if err != nil {
		panic(err) // constants are valid
	}
	return m
}

// MoebiusStripSteps samples u over [0, 2π] with uSteps rows and v over
// [-1, 1] with vSteps columns. Vertex (i, j) is stored at i*vSteps+j.
//
// Quads wrap along u (row uSteps-1 connects back to row 0) but not along v.
func MoebiusStripSteps(wireframe bool, uSteps, vSteps int) (*Mesh, error) {
	if uSteps < 2 || vSteps < 2 {
		return nil, fmt.Errorf("%w: moebius strip needs uSteps, vSteps >= 2, got %d, %d",
			ErrInvalidTessellation, uSteps, vSteps)
	}

	// The u=2π row coincides with row 0 mirrored in v. The wrap quads join
	// them anyway, so that seam is degenerate.
	uStep := 2 * math32.Pi / float32(uSteps-1)
	vStep := 2 / float32(vSteps-1)

	positions := make([]float32, 0, uSteps*vSteps*3)
	for i := 0; i < uSteps; i++ {
		u := float32(i) * uStep
		sinU, cosU := math32.Sincos(u)
		sinHalf, cosHalf := math32.Sincos(u / 2)
		for j := 0; j < vSteps; j++ {
			v := float32(j)*vStep - 1
			r := 1 + 0.5*v*cosHalf
			positions = append(positions, r*cosU, r*sinU, 0.5*v*sinHalf)
		}
	}

	indices := make([]uint32, 0, 6*uSteps*(vSteps-1))
	for i := 0; i < uSteps; i++ {
		next := (i + 1) % uSteps
		for j := 0; j < vSteps-1; j++ {
			topLeft := uint32(i*vSteps + j)
			topRight := topLeft + 1
			bottomLeft := uint32(next*vSteps + j)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return build(positions, indices, wireframe, Green), nil
}

// Torus builds a closed torus around the Z axis. majorRadius is the distance
// from the torus center to the tube center, minorRadius the tube radius.
// theta steps over rings around the torus and phi over segments around the
// tube; both wrap, so there is no seam.
func Torus(wireframe bool, majorRadius, minorRadius float32, segments, rings int) (*Mesh, error) {
	if segments < 2 || rings < 2 {
		return nil, fmt.Errorf("%w: torus needs segments, rings >= 2, got %d, %d",
			ErrInvalidTessellation, segments, rings)
	}

	positions := make([]float32, 0, segments*rings*3)
	indices := make([]uint32, 0, segments*rings*6)

	for i := 0; i < rings; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(rings)
		sinT, cosT := math32.Sincos(theta)
		nextI := (i + 1) % rings

		for j := 0; j < segments; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(segments)
			sinP, cosP := math32.Sincos(phi)
			tube := majorRadius + minorRadius*cosP
			positions = append(positions, tube*cosT, tube*sinT, minorRadius*sinP)

			nextJ := (j + 1) % segments
			current := uint32(i*segments + j)
			alongRing := uint32(nextI*segments + j)
			alongTube := uint32(i*segments + nextJ)
			diagonal := uint32(nextI*segments + nextJ)

			indices = append(indices,
				current, alongRing, alongTube,
				alongTube, alongRing, diagonal,
			)
		}
	}

	return build(positions, indices, wireframe, Cyan), nil
}

func build(positions []float32, indices []uint32, wireframe bool, color math.Vec4) *Mesh {
	if wireframe {
		return New(positions, ExtractWireframeIndices(indices), Lines, color)
	}
	return New(positions, indices, Triangles, color)
}
