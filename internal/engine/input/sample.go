// Package input describes the per-frame input signals the viewer consumes.
// Window-system polling lives in the app package; everything here is pure.
package input

import "github.com/Faultbox/meshview/pkg/math"

// Key is a set of held movement keys.
type Key uint16

const (
	KeyForward Key = 1 << iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
)

// Button is a set of held mouse buttons.
type Button uint8

const (
	ButtonPrimary Button = 1 << iota
	ButtonSecondary
)

// Sample is one frame's worth of polled input.
type Sample struct {
	Keys      Key
	Modifiers Modifier
	Cursor    math.Vec2 // window coordinates, top-left origin
	Buttons   Button
	DeltaTime float32 // seconds since the previous frame
}

// Held reports whether movement key k is down.
func (s Sample) Held(k Key) bool {
	return s.Keys&k != 0
}

// HasModifier reports whether modifier m is down.
func (s Sample) HasModifier(m Modifier) bool {
	return s.Modifiers&m != 0
}

// Down reports whether button b is down.
func (s Sample) Down(b Button) bool {
	return s.Buttons&b != 0
}

// Frame is a sample plus the button transitions since the previous sample.
type Frame struct {
	Sample
	Pressed  Button
	Released Button
}

// JustPressed reports whether b went down this frame.
func (f Frame) JustPressed(b Button) bool {
	return f.Pressed&b != 0
}

// JustReleased reports whether b went up this frame.
func (f Frame) JustReleased(b Button) bool {
	return f.Released&b != 0
}

// Tracker derives button transitions from consecutive samples.
type Tracker struct {
	prev Button
}

// Next records s and returns it with the transitions since the last call.
func (t *Tracker) Next(s Sample) Frame {
	f := Frame{
		Sample:   s,
		Pressed:  s.Buttons &^ t.prev,
		Released: t.prev &^ s.Buttons,
	}
	t.prev = s.Buttons
	return f
}
