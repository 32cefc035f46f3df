package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// FirstPerson is a free-flying camera. With yaw and pitch at zero it looks
// down -Z; positive yaw turns left and positive pitch looks up.
type FirstPerson struct {
	lens

	position math.Vec3
	yaw      float32
	pitch    float32
}

// NewFirstPerson creates a first-person camera at cfg.Position looking down -Z.
func NewFirstPerson(cfg Config) *FirstPerson {
	return &FirstPerson{
		lens:     newLens(cfg),
		position: cfg.Position,
	}
}

func (c *FirstPerson) Kind() Kind { return FirstPersonKind }

func (c *FirstPerson) sealed() {}

// Position returns the camera position in world space.
func (c *FirstPerson) Position() math.Vec3 {
	return c.position
}

// Angles returns the current yaw and pitch in radians.
func (c *FirstPerson) Angles() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Direction returns the unit look direction.
func (c *FirstPerson) Direction() math.Vec3 {
	sinYaw, cosYaw := math32.Sincos(c.yaw)
	sinPitch, cosPitch := math32.Sincos(c.pitch)
	return math.Vec3{
		X: -sinYaw * cosPitch,
		Y: sinPitch,
		Z: -cosYaw * cosPitch,
	}
}

// RightDirection returns the camera's local right axis.
func (c *FirstPerson) RightDirection() math.Vec3 {
	return c.Direction().Cross(math.YAxis).Normalize()
}

// UpDirection returns the camera's local up axis.
func (c *FirstPerson) UpDirection() math.Vec3 {
	return c.RightDirection().Cross(c.Direction())
}

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.Direction()), math.YAxis)
}

// Forward moves along the look direction.
func (c *FirstPerson) Forward(distance float32) {
	c.position = c.position.Add(c.Direction().Scale(distance))
}

// Right strafes along the local right axis.
func (c *FirstPerson) Right(distance float32) {
	c.position = c.position.Add(c.RightDirection().Scale(distance))
}

// Up moves along the local up axis.
func (c *FirstPerson) Up(distance float32) {
	c.position = c.position.Add(c.UpDirection().Scale(distance))
}

// Yaw turns around the world up axis.
func (c *FirstPerson) Yaw(radians float32) {
	c.yaw += radians
}

// Pitch tilts the view, clamped to ±MaxPitch.
func (c *FirstPerson) Pitch(radians float32) {
	c.pitch = clamp(c.pitch+radians, -MaxPitch, MaxPitch)
}
