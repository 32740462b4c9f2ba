package world

import (
	"math"

	"raycaster/geom"
	"raycaster/tilemap"
)

const (
	DefaultSpeed        = 2.0
	DefaultTurningSpeed = 2.0
	DefaultRadius       = 0.25
)

// Body is the observer moving through the map.
type Body struct {
	Position  geom.Vector
	Direction geom.Vector // unit length; rotation keeps it so
	Velocity  geom.Vector

	Speed        float64 // map units per second at full throttle
	TurningSpeed float64 // radians per second at full turn
	Radius       float64
}

// BoundingBox is the square centred on Position with half extent Radius/2,
// so its side equals Radius. Collision feel is tuned to that size.
func (b *Body) BoundingBox() geom.Rect {
	half := geom.V(b.Radius/2, b.Radius/2)
	return geom.Rect{Min: b.Position.Sub(half), Max: b.Position.Add(half)}
}

// Penetration returns the deepest minimum translation vector between the
// bounding box and any wall tile it overlaps. ok is false when the box is
// clear of walls.
func (b *Body) Penetration(m *tilemap.Map) (mtv geom.Vector, ok bool) {
	box := b.BoundingBox()
	minX, maxX := int(math.Floor(box.Min.X)), int(math.Floor(box.Max.X))
	minY, maxY := int(math.Floor(box.Min.Y)), int(math.Floor(box.Max.Y))

	deepest := 0.0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !m.At(x, y).IsWall() {
				continue
			}
			tile := geom.RectAt(geom.V(float64(x), float64(y)), 1)
			v, hit := box.Intersection(tile)
			if !hit || v.Length() <= deepest {
				continue
			}
			deepest = v.Length()
			mtv, ok = v, true
		}
	}
	return mtv, ok
}
