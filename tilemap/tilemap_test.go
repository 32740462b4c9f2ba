package tilemap

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/geom"
)

func TestDefaultLayout(t *testing.T) {
	m := Default()
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 8, m.Height())
	assert.Equal(t, geom.V(8, 8), m.Size())
	assert.Equal(t, strings.Join(defaultLayout, "\n"), m.String())

	x, y, ok := m.FirstFloor()
	require.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestAtOutOfRangeIsWall(t *testing.T) {
	m := Default()
	assert.Equal(t, Floor, m.At(1, 1))
	assert.Equal(t, Wall, m.At(2, 1))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 3}, {3, 8}} {
		assert.Equal(t, Wall, m.At(p[0], p[1]))
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "#.##", "###"}},
		{"unknown glyph", []string{"###", "#x#", "###"}},
		{"open top", []string{"#.#", "#.#", "###"}},
		{"open side", []string{"###", "...", "###"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestNewValidatesShape(t *testing.T) {
	_, err := New([]Tile{Wall, Wall, Wall}, 2)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = New(nil, 3)
	assert.ErrorIs(t, err, ErrMalformed)

	m, err := New([]Tile{Wall, Wall, Wall, Wall}, 2)
	require.NoError(t, err)
	_, _, ok := m.FirstFloor()
	assert.False(t, ok)
}

func TestNewCopiesTiles(t *testing.T) {
	tiles := []Tile{Wall, Wall, Wall, Wall, Floor, Wall, Wall, Wall, Wall}
	m, err := New(tiles, 3)
	require.NoError(t, err)
	tiles[4] = Wall
	assert.Equal(t, Floor, m.At(1, 1))
}

func TestTileAtDisambiguation(t *testing.T) {
	m, err := Parse([]string{
		"#####",
		"#.#.#",
		"#...#",
		"#####",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		pos  geom.Vector
		dir  geom.Vector
		want Tile
	}{
		{"vertical line moving right", geom.V(2, 1.5), geom.V(1, 0), Wall},
		{"vertical line moving left", geom.V(2, 1.5), geom.V(-1, 0), Floor},
		{"horizontal line moving down", geom.V(2.5, 2), geom.V(0, 1), Floor},
		{"horizontal line moving up", geom.V(2.5, 2), geom.V(0, -1), Wall},
		{"corner resolves on x first", geom.V(2, 2), geom.V(-1, -1), Floor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.TileAt(tt.pos, tt.dir))
		})
	}
}

func TestHitTestCardinal(t *testing.T) {
	m := Default()
	origin := geom.V(1.125, 1.125)

	tests := []struct {
		name string
		dir  geom.Vector
		want geom.Vector
	}{
		{"south boundary", geom.V(0, 1), geom.V(1.125, 7)},
		{"interior wall east", geom.V(1, 0), geom.V(2, 1.125)},
		{"west border", geom.V(-1, 0), geom.V(1, 1.125)},
		{"north border", geom.V(0, -1), geom.V(1.125, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewRay(origin, tt.dir)
			require.NoError(t, err)
			hit, err := m.HitTest(ray)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hit)
		})
	}
}

func TestHitTestDiagonal(t *testing.T) {
	m := Default()
	ray, err := NewRay(geom.V(1.5, 2.25), geom.V(1, 1).Normalized())
	require.NoError(t, err)
	hit, err := m.HitTest(ray)
	require.NoError(t, err)
	// crosses x=2 into floor (2,2), then enters wall (2,3) through its top edge
	assert.Equal(t, geom.V(2.25, 3), hit)
}

func TestHitTestTerminatesOnGridLines(t *testing.T) {
	m := Default()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y).IsWall() {
				continue
			}
			origin := geom.V(float64(x)+0.5, float64(y)+0.5)
			for a := 0.0; a < 2*math.Pi; a += 0.13 {
				dir := geom.V(math.Cos(a), math.Sin(a))
				hit, err := m.HitTest(Ray{Origin: origin, Direction: dir})
				require.NoError(t, err, "origin %v angle %v", origin, a)

				onLine := hit.X == math.Trunc(hit.X) || hit.Y == math.Trunc(hit.Y)
				assert.True(t, onLine, "hit %v not on a grid line", hit)
				assert.True(t, m.TileAt(hit, dir).IsWall())
				assert.LessOrEqual(t, hit.Sub(origin).Length(), m.Size().Length())
			}
		}
	}
}

func TestHitTestErrors(t *testing.T) {
	m := Default()

	_, err := NewRay(geom.V(1.5, 1.5), geom.Vector{})
	assert.ErrorIs(t, err, ErrZeroDirection)
	_, err = NewRay(geom.V(1.5, 1.5), geom.V(math.NaN(), 1))
	assert.ErrorIs(t, err, ErrZeroDirection)

	_, err = m.HitTest(Ray{Origin: geom.V(1.5, 1.5)})
	assert.ErrorIs(t, err, ErrZeroDirection)

	_, err = m.HitTest(Ray{Origin: geom.V(-3.5, 1.5), Direction: geom.V(-1, 0)})
	assert.True(t, errors.Is(err, ErrNoWall))

	_, err = m.HitTest(Ray{Origin: geom.V(math.Inf(1), 1.5), Direction: geom.V(1, 0)})
	assert.ErrorIs(t, err, ErrNoWall)
}
