package tilemap

import "fmt"

// defaultLayout is the built-in 8x8 maze.
var defaultLayout = []string{
	"########",
	"#.##...#",
	"#......#",
	"#.####.#",
	"#.#.#..#",
	"#.#.##.#",
	"#.#....#",
	"########",
}

// Default returns the built-in map.
func Default() *Map {
	m, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("tilemap: default layout: %v", err))
	}
	return m
}

// Parse builds a map from rows of glyphs, '#' for walls and '.' for floor.
// All rows must have the same length.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformed)
	}
	width := len(rows[0])
	tiles := make([]Tile, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrMalformed, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case WallGlyph:
				tiles = append(tiles, Wall)
			case FloorGlyph:
				tiles = append(tiles, Floor)
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %d,%d", ErrMalformed, row[x], x, y)
			}
		}
	}
	return New(tiles, width)
}
