package world

import (
	"errors"
	"fmt"
	"math"

	"raycaster/geom"
	"raycaster/tilemap"
)

// maxResolvePasses bounds collision resolution per substep. Maps whose wall
// tiles are never closer together than the bounding box converge in a few
// passes.
const maxResolvePasses = 64

var (
	ErrNoFloor     = errors.New("map has no floor tile")
	ErrInvalidBody = errors.New("invalid body parameters")
	ErrUnresolved  = errors.New("collision did not resolve")
)

// Input is the per-frame control vector: X is the turn rate and Y the
// throttle, both in [-1, 1]. Negative throttle moves forward.
type Input struct {
	Velocity geom.Vector
}

// World pairs the immutable map with the body moving through it. It is owned
// by the frame driver; Update must not run concurrently with rendering.
type World struct {
	Map  *tilemap.Map
	Body Body

	// Contacts counts the resolution passes, over all substeps of the last
	// Update, that found the body inside a wall.
	Contacts int
}

// Option adjusts the body before the world is created.
type Option func(*Body)

func WithSpeed(speed float64) Option {
	return func(b *Body) { b.Speed = speed }
}

func WithTurningSpeed(speed float64) Option {
	return func(b *Body) { b.TurningSpeed = speed }
}

func WithRadius(radius float64) Option {
	return func(b *Body) { b.Radius = radius }
}

// New places the body on the first floor tile in scan order with its bounding
// box's minimum corner on the tile origin, facing +Y.
func New(m *tilemap.Map, opts ...Option) (*World, error) {
	b := Body{
		Direction:    geom.V(0, 1),
		Speed:        DefaultSpeed,
		TurningSpeed: DefaultTurningSpeed,
		Radius:       DefaultRadius,
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.Radius <= 0 || b.Radius >= 1 {
		return nil, fmt.Errorf("%w: radius %v outside (0, 1)", ErrInvalidBody, b.Radius)
	}
	if b.Speed < 0 || b.TurningSpeed < 0 {
		return nil, fmt.Errorf("%w: negative speed", ErrInvalidBody)
	}

	x, y, ok := m.FirstFloor()
	if !ok {
		return nil, ErrNoFloor
	}
	b.Position = geom.V(float64(x)+b.Radius/2, float64(y)+b.Radius/2)

	return &World{Map: m, Body: b}, nil
}

// Update advances the world by timestep seconds: yaw, then forward/backward
// motion along the facing direction, then collision resolution. Motion is
// split into substeps no longer than half the box side so a single step can
// never carry the box past the middle of a wall.
func (w *World) Update(timestep float64, in Input) error {
	if timestep < 0 || math.IsNaN(timestep) || math.IsInf(timestep, 0) {
		timestep = 0
	}
	turn := geom.Clamp(in.Velocity.X, -1, 1)
	throttle := geom.Clamp(in.Velocity.Y, -1, 1)

	b := &w.Body
	b.Direction = b.Direction.Rotate(turn * b.TurningSpeed * timestep)
	b.Velocity = b.Direction.Scale(-throttle * b.Speed)

	steps := 1
	if dist := b.Velocity.Length() * timestep; dist > 0 {
		steps = max(1, int(math.Ceil(dist/(b.Radius/2))))
	}
	delta := b.Velocity.Scale(timestep / float64(steps))

	w.Contacts = 0
	for i := 0; i < steps; i++ {
		b.Position = b.Position.Add(delta)
		if err := w.resolve(); err != nil {
			return err
		}
	}
	return nil
}

// resolve pushes the body out of walls, deepest overlap first.
func (w *World) resolve() error {
	b := &w.Body
	for pass := 0; pass < maxResolvePasses; pass++ {
		mtv, ok := b.Penetration(w.Map)
		if !ok {
			return nil
		}
		b.Position = b.Position.Sub(mtv)
		w.Contacts++
	}
	if _, ok := b.Penetration(w.Map); ok {
		return fmt.Errorf("%w: body at %v after %d passes", ErrUnresolved, b.Position, maxResolvePasses)
	}
	return nil
}
