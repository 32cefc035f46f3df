package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// MinRadius is the closest a turntable camera gets to the origin.
const MinRadius float32 = 0.1

// Turntable orbits the world origin and always looks at it.
//
// Yaw and Pitch change azimuth and elevation. Forward shrinks the orbit
// radius. Right and Up move along the orbit by arc length: Right(d) turns
// the azimuth by d/radius and Up(d) the elevation by d/radius.
type Turntable struct {
	lens

	radius    float32
	azimuth   float32 // around +Y, 0 on +Z
	elevation float32 // above the XZ plane
}

// NewTurntable creates a turntable camera whose orbit passes through cfg.Position.
func NewTurntable(cfg Config) *Turntable {
	p := cfg.Position
	radius := math32.Max(p.Length(), MinRadius)
	return &Turntable{
		lens:      newLens(cfg),
		radius:    radius,
		azimuth:   math32.Atan2(p.X, p.Z),
		elevation: clamp(math32.Asin(clamp(p.Y/radius, -1, 1)), -MaxPitch, MaxPitch),
	}
}

func (c *Turntable) Kind() Kind { return TurntableKind }

func (c *Turntable) sealed() {}

// Radius returns the orbit radius.
func (c *Turntable) Radius() float32 {
	return c.radius
}

// Angles returns azimuth and elevation in radians.
func (c *Turntable) Angles() (azimuth, elevation float32) {
	return c.azimuth, c.elevation
}

// Position returns the camera position in world space.
func (c *Turntable) Position() math.Vec3 {
	sinAz, cosAz := math32.Sincos(c.azimuth)
	sinEl, cosEl := math32.Sincos(c.elevation)
	return math.Vec3{
		X: c.radius * cosEl * sinAz,
		Y: c.radius * sinEl,
		Z: c.radius * cosEl * cosAz,
	}
}

// ViewMatrix returns the view matrix looking at the origin.
func (c *Turntable) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.YAxis)
}

// Forward moves toward the origin; negative distances move away.
func (c *Turntable) Forward(distance float32) {
	c.radius = math32.Max(c.radius-distance, MinRadius)
}

// Right orbits sideways by arc length.
func (c *Turntable) Right(distance float32) {
	c.azimuth += distance / c.radius
}

// Up orbits vertically by arc length.
func (c *Turntable) Up(distance float32) {
	c.Pitch(distance / c.radius)
}

// Yaw turns the orbit around the world up axis.
func (c *Turntable) Yaw(radians float32) {
	c.azimuth += radians
}

// Pitch raises or lowers the orbit, clamped to ±MaxPitch.
func (c *Turntable) Pitch(radians float32) {
	c.elevation = clamp(c.elevation+radians, -MaxPitch, MaxPitch)
}
