// Package math provides the vector, matrix and quaternion types shared by
// the mesh generators, cameras and the manipulation engine.
package math

// Vec2 is a 2D vector. Screen-space cursor positions use it.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
