// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with a top-left origin,
// viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1})
	farWorld := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1})

	return Ray{Origin: nearWorld, Direction: farWorld.Sub(nearWorld).Normalize()}
}

func unproject(invViewProj math.Mat4, ndc math.Vec4) math.Vec3 {
	p := invViewProj.MulVec4(ndc)
	if p.W != 0 {
		return math.Vec3{X: p.X / p.W, Y: p.Y / p.W, Z: p.Z / p.W}
	}
	return p.Vec3()
}

// Transform maps the ray through m, renormalizing the direction.
// The returned scale converts distances along the new ray back to
// distances along the original one.
func (r Ray) Transform(m math.Mat4) (Ray, float32) {
	d := m.TransformDirection(r.Direction)
	l := d.Length()
	if l == 0 {
		return Ray{Origin: m.TransformPoint(r.Origin)}, 0
	}
	return Ray{Origin: m.TransformPoint(r.Origin), Direction: d.Scale(1 / l)}, 1 / l
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance to the triangle (a, b, c) using the
// Möller-Trumbore test. Both faces count as hits.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const epsilon = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// TransformAABB returns the world-space box enclosing the eight corners of
// the local box (min, max) transformed by model.
func TransformAABB(min, max math.Vec3, model math.Mat4) AABB {
	corners := mesh.Bounds{Min: min, Max: max}.Corners()
	first := model.TransformPoint(corners[0])
	box := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := model.TransformPoint(c)
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}
