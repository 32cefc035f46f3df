package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/pkg/math"
)

func TestWithoutCaptured(t *testing.T) {
	s := input.Sample{
		Keys:      input.KeyForward | input.KeyUp,
		Modifiers: input.ModShift,
		Cursor:    math.Vec2{X: 10, Y: 20},
		Buttons:   input.ButtonPrimary | input.ButtonSecondary,
		DeltaTime: 0.016,
	}

	tests := []struct {
		name     string
		mouse    bool
		keyboard bool
		buttons  input.Button
		keys     input.Key
	}{
		{"nothing captured", false, false, s.Buttons, s.Keys},
		{"mouse over a widget", true, false, 0, s.Keys},
		{"typing into a widget", false, true, s.Buttons, 0},
		{"both", true, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withoutCaptured(s, tt.mouse, tt.keyboard)
			assert.Equal(t, tt.buttons, got.Buttons)
			assert.Equal(t, tt.keys, got.Keys)
			assert.Equal(t, s.Cursor, got.Cursor)
			assert.Equal(t, s.Modifiers, got.Modifiers)
			assert.Equal(t, s.DeltaTime, got.DeltaTime)
		})
	}
}

func TestMovementKeysAreDistinct(t *testing.T) {
	var all input.Key
	for _, k := range movementKeys {
		assert.Zero(t, all&k.bit, "bit %b mapped twice", k.bit)
		all |= k.bit
	}
	assert.Equal(t, input.KeyForward|input.KeyBackward|input.KeyLeft|input.KeyRight|input.KeyUp|input.KeyDown, all)
}
