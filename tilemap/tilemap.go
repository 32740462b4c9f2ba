package tilemap

import (
	"errors"
	"fmt"
	"strings"

	"raycaster/geom"
)

// ErrMalformed is returned when a layout cannot form a valid map.
var ErrMalformed = errors.New("malformed tile map")

// Map is an immutable row-major grid of tiles enclosed by walls.
type Map struct {
	tiles []Tile
	width int
}

// New validates tiles and builds a map. The grid must be non-empty, a whole
// number of rows and bordered by walls on every side; hit testing relies on
// that border to terminate.
func New(tiles []Tile, width int) (*Map, error) {
	if width <= 0 || len(tiles) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformed)
	}
	if len(tiles)%width != 0 {
		return nil, fmt.Errorf("%w: %d tiles do not fill rows of width %d", ErrMalformed, len(tiles), width)
	}
	m := &Map{tiles: append([]Tile(nil), tiles...), width: width}
	if err := m.checkEnclosed(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) checkEnclosed() error {
	w, h := m.width, m.Height()
	for x := 0; x < w; x++ {
		if !m.tiles[x].IsWall() || !m.tiles[(h-1)*w+x].IsWall() {
			return fmt.Errorf("%w: border not enclosed at column %d", ErrMalformed, x)
		}
	}
	for y := 0; y < h; y++ {
		if !m.tiles[y*w].IsWall() || !m.tiles[y*w+w-1].IsWall() {
			return fmt.Errorf("%w: border not enclosed at row %d", ErrMalformed, y)
		}
	}
	return nil
}

func (m *Map) Width() int { return m.width }

func (m *Map) Height() int { return len(m.tiles) / m.width }

// Size returns the map dimensions as a vector.
func (m *Map) Size() geom.Vector {
	return geom.V(float64(m.width), float64(m.Height()))
}

// At returns the tile at (x, y). Coordinates outside the grid read as Wall.
func (m *Map) At(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.Height() {
		return Wall
	}
	return m.tiles[y*m.width+x]
}

// FirstFloor returns the coordinates of the first Floor tile in row-major
// scan order.
func (m *Map) FirstFloor() (x, y int, ok bool) {
	for i, t := range m.tiles {
		if t == Floor {
			return i % m.width, i / m.width, true
		}
	}
	return 0, 0, false
}

// String renders the layout with one glyph per tile and one line per row.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow(len(m.tiles) + m.Height())
	for i, t := range m.tiles {
		if i > 0 && i%m.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(t.glyph())
	}
	return sb.String()
}
