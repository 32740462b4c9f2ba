package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raycaster/geom"
)

func TestJoystickInput(t *testing.T) {
	tests := []struct {
		name string
		drag geom.Vector
		want geom.Vector
	}{
		{"centre", geom.Vector{}, geom.Vector{}},
		{"half deflection", geom.V(20, 0), geom.V(0.5, 0)},
		{"full up", geom.V(0, -40), geom.V(0, -1)},
		{"beyond radius", geom.V(0, 120), geom.V(0, 1)},
		{"diagonal beyond radius", geom.V(60, 80), geom.V(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoystickInput(tt.drag, JoystickRadius)
			assert.True(t, got.Velocity.ApproxEqual(tt.want, 1e-12), "got %v", got.Velocity)
			assert.LessOrEqual(t, got.Velocity.Length(), 1+1e-12)
		})
	}
}

func TestKeyInput(t *testing.T) {
	assert.True(t, KeyInput(false, false, false, false).IsZero())
	assert.Equal(t, geom.V(-1, -1), KeyInput(true, false, true, false).Velocity)
	assert.Equal(t, geom.V(1, 1), KeyInput(false, true, false, true).Velocity)
	assert.True(t, KeyInput(true, true, true, true).IsZero())
}

func TestInputAddClamps(t *testing.T) {
	a := Input{Velocity: geom.V(0.75, -0.5)}
	b := Input{Velocity: geom.V(0.75, -0.75)}
	assert.Equal(t, geom.V(1, -1), a.Add(b).Velocity)
	assert.Equal(t, a.Velocity, a.Add(Input{}).Velocity)
}
