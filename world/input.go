package world

import (
	"math"

	"raycaster/geom"
)

// JoystickRadius is the on-screen drag distance, in pixels, that maps to full
// deflection.
const JoystickRadius = 40.0

// JoystickInput maps a drag from the touch origin to an input. Drags shorter
// than radius scale linearly; longer drags are normalized to unit length.
// Screen y grows downward, so dragging up pushes the throttle negative and
// moves the body forward.
func JoystickInput(drag geom.Vector, radius float64) Input {
	return Input{Velocity: drag.Div(math.Max(radius, drag.Length()))}
}

// KeyInput builds an input from digital controls: left/right turn, forward
// and back throttle.
func KeyInput(left, right, forward, back bool) Input {
	var v geom.Vector
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if forward {
		v.Y--
	}
	if back {
		v.Y++
	}
	return Input{Velocity: v}
}

// Add combines two inputs, clamping each axis to [-1, 1].
func (in Input) Add(o Input) Input {
	v := in.Velocity.Add(o.Velocity)
	return Input{Velocity: geom.V(geom.Clamp(v.X, -1, 1), geom.Clamp(v.Y, -1, 1))}
}

// IsZero reports whether the input requests no motion.
func (in Input) IsZero() bool {
	return in.Velocity.IsZero()
}
