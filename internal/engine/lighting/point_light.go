// Package lighting collects the point lights uploaded to the lit shader.
package lighting

import "github.com/Faultbox/meshview/pkg/math"

// MaxPointLights must match MAX_LIGHTS in the color fragment shader.
const MaxPointLights = 8

// PointLight is a light source at a world position.
type PointLight struct {
	Position math.Vec3
	Color    math.Vec3 // RGB, 0-1
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of buffered lights.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// SetLights replaces all lights in the buffer, keeping at most
// MaxPointLights. Colors are clamped to 0-1.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Lights = b.Lights[:0]
	for _, l := range lights {
		if len(b.Lights) == MaxPointLights {
			break
		}
		l.Color = math.Vec3{X: unit(l.Color.X), Y: unit(l.Color.Y), Z: unit(l.Color.Z)}
		b.Lights = append(b.Lights, l)
	}
}

// Positions returns the light positions in buffer order.
func (b *PointLightBuffer) Positions() []math.Vec3 {
	out := make([]math.Vec3, len(b.Lights))
	for i, l := range b.Lights {
		out[i] = l.Position
	}
	return out
}

// Colors returns the light colors in buffer order.
func (b *PointLightBuffer) Colors() []math.Vec3 {
	out := make([]math.Vec3, len(b.Lights))
	for i, l := range b.Lights {
		out[i] = l.Color
	}
	return out
}

func unit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
