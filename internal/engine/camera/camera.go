// Package camera provides the two interchangeable viewer cameras.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// Kind identifies a camera variant.
type Kind int

const (
	FirstPersonKind Kind = iota
	TurntableKind
)

func (k Kind) String() string {
	switch k {
	case FirstPersonKind:
		return "firstperson"
	case TurntableKind:
		return "turntable"
	default:
		return "unknown"
	}
}

// MaxPitch is the pitch/elevation limit for both variants (89 degrees).
// It keeps the look direction away from the world up axis.
var MaxPitch = float32(89 * math32.Pi / 180)

// Camera is implemented by FirstPerson and Turntable only.
type Camera interface {
	Kind() Kind

	// ViewMatrix and ProjectionMatrix are pure functions of the camera state.
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4

	// SetAspect updates the aspect ratio; non-positive sizes are ignored.
	SetAspect(width, height int)

	Position() math.Vec3

	Forward(distance float32)
	Right(distance float32)
	Up(distance float32)
	Yaw(radians float32)
	Pitch(radians float32)

	sealed()
}

// Config holds the parameters shared by both variants.
type Config struct {
	Position math.Vec3
	FovY     float32 // radians
	Near     float32
	Far      float32
}

// DefaultConfig returns a 60 degree field of view with the given position.
func DefaultConfig(position math.Vec3) Config {
	return Config{
		Position: position,
		FovY:     60 * math32.Pi / 180,
		Near:     0.01,
		Far:      500,
	}
}

// lens is the projection state shared by both variants.
type lens struct {
	fovY   float32
	aspect float32
	near   float32
	far    float32
}

func newLens(cfg Config) lens {
	return lens{fovY: cfg.FovY, aspect: 1, near: cfg.Near, far: cfg.Far}
}

func (l *lens) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.aspect = float32(width) / float32(height)
}

// Aspect returns the current aspect ratio.
func (l *lens) Aspect() float32 {
	return l.aspect
}

func (l *lens) ProjectionMatrix() math.Mat4 {
	return math.Perspective(l.fovY, l.aspect, l.near, l.far)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
