package tilemap

// Tile is a single map cell.
type Tile uint8

const (
	Floor Tile = iota
	Wall
)

// Layout glyphs used by Parse and Map.String.
const (
	FloorGlyph = '.'
	WallGlyph  = '#'
)

func (t Tile) IsWall() bool { return t == Wall }

func (t Tile) String() string {
	if t == Wall {
		return "wall"
	}
	return "floor"
}

func (t Tile) glyph() byte {
	if t == Wall {
		return WallGlyph
	}
	return FloorGlyph
}
