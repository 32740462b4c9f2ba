package tilemap

import (
	"errors"
	"fmt"
	"math"

	"raycaster/geom"
)

var (
	// ErrNoWall is returned when a ray leaves the grid or exceeds its step
	// budget without crossing into a wall.
	ErrNoWall = errors.New("no wall found along ray")
	// ErrZeroDirection is returned for rays without a usable direction.
	ErrZeroDirection = errors.New("ray direction is zero")
)

// Ray is a half-line cast from Origin towards Direction.
type Ray struct {
	Origin    geom.Vector
	Direction geom.Vector
}

// NewRay builds a ray, rejecting zero or non-finite directions.
func NewRay(origin, direction geom.Vector) (Ray, error) {
	if direction.IsZero() || !finite(direction) {
		return Ray{}, fmt.Errorf("%w: %v", ErrZeroDirection, direction)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// HitTest walks the ray across successive grid lines, always taking the
// nearer of the next vertical and horizontal crossing, until the tile behind
// the crossing is a wall. The returned point lies exactly on a grid line.
func (m *Map) HitTest(r Ray) (geom.Vector, error) {
	dir := r.Direction
	if dir.IsZero() || !finite(dir) {
		return geom.Vector{}, fmt.Errorf("%w: %v", ErrZeroDirection, dir)
	}
	// one axis may be zero: the slope then goes to ±0 or ±Inf and the
	// candidate step along that axis becomes infinitely long
	slope := dir.X / dir.Y
	pos := r.Origin
	maxSteps := 2*(m.width+m.Height()) + 4

	for i := 0; i < maxSteps; i++ {
		var lineX, lineY float64
		if dir.X > 0 {
			lineX = math.Floor(pos.X) + 1
		} else {
			lineX = math.Ceil(pos.X) - 1
		}
		if dir.Y > 0 {
			lineY = math.Floor(pos.Y) + 1
		} else {
			lineY = math.Ceil(pos.Y) - 1
		}
		edgeX := lineX - pos.X
		edgeY := lineY - pos.Y

		stepX := geom.V(edgeX, edgeX/slope)
		stepY := geom.V(edgeY*slope, edgeY)
		if stepX.Length() < stepY.Length() {
			pos = pos.Add(stepX)
			pos.X = lineX
		} else {
			pos = pos.Add(stepY)
			pos.Y = lineY
		}
		if !finite(pos) {
			return geom.Vector{}, fmt.Errorf("%w: non-finite position from %v", ErrNoWall, r.Origin)
		}

		x, y := cellAt(pos, dir)
		if !m.contains(x, y) {
			return geom.Vector{}, fmt.Errorf("%w: ray from %v left the grid at %v", ErrNoWall, r.Origin, pos)
		}
		if m.At(x, y).IsWall() {
			return pos, nil
		}
	}
	return geom.Vector{}, fmt.Errorf("%w: ray from %v exceeded %d steps", ErrNoWall, r.Origin, maxSteps)
}

// TileAt resolves which tile owns a point on a grid line, as seen by a ray
// travelling in direction. An integral x selects the tile left or right of
// that vertical line; otherwise the tile above or below the horizontal line
// is chosen. The x check runs first, so grid corners resolve horizontally.
func (m *Map) TileAt(pos, direction geom.Vector) Tile {
	return m.At(cellAt(pos, direction))
}

func cellAt(pos, dir geom.Vector) (int, int) {
	x, y := int(pos.X), int(pos.Y)
	if math.Round(pos.X) == pos.X {
		if dir.X > 0 {
			return x, y
		}
		return x - 1, y
	}
	if dir.Y > 0 {
		return x, y
	}
	return x, y - 1
}

func (m *Map) contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.Height()
}

func finite(v geom.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
