package bitmap

import (
	"fmt"
	"math"

	"raycaster/geom"
)

// Bitmap is a fixed-size row-major grid of colors.
type Bitmap struct {
	width  int
	pixels []Color
}

// New allocates a width x height bitmap filled with c. It panics on a
// non-positive size.
func New(width, height int, c Color) *Bitmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("bitmap: invalid size %dx%d", width, height))
	}
	pixels := make([]Color, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return &Bitmap{width: width, pixels: pixels}
}

func (b *Bitmap) Width() int { return b.width }

func (b *Bitmap) Height() int { return len(b.pixels) / b.width }

// Pixels exposes the row-major backing slice.
func (b *Bitmap) Pixels() []Color { return b.pixels }

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.Height()
}

// At returns the color at (x, y). ok is false outside the bitmap, in which
// case the returned color is Clear.
func (b *Bitmap) At(x, y int) (c Color, ok bool) {
	if !b.inBounds(x, y) {
		return Clear, false
	}
	return b.pixels[y*b.width+x], true
}

// Set writes c at (x, y). Writes outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[y*b.width+x] = c
}

// Fill paints the pixels from int(r.Min) up to, excluding, int(r.Max) on both
// axes. Coordinates are truncated, not rounded.
func (b *Bitmap) Fill(r geom.Rect, c Color) {
	for y := int(r.Min.Y); y < int(r.Max.Y); y++ {
		for x := int(r.Min.X); x < int(r.Max.X); x++ {
			b.Set(x, y, c)
		}
	}
}

// DrawLine steps along the dominant axis one pixel at a time, advancing the
// minor axis by the slope, and plots ceil(|dominant delta|) points. A
// zero-length line plots its origin.
func (b *Bitmap) DrawLine(from, to geom.Vector, c Color) {
	diff := to.Sub(from)

	var (
		steps int
		step  geom.Vector
	)
	if math.Abs(diff.X) > math.Abs(diff.Y) {
		steps = int(math.Ceil(math.Abs(diff.X)))
		step = geom.V(1, diff.Y/diff.X).Scale(sign(diff.X))
	} else {
		steps = int(math.Ceil(math.Abs(diff.Y)))
		if steps == 0 {
			b.Set(int(from.X), int(from.Y), c)
			return
		}
		step = geom.V(diff.X/diff.Y, 1).Scale(sign(diff.Y))
	}

	pos := from
	for i := 0; i < steps; i++ {
		b.Set(int(pos.X), int(pos.Y), c)
		pos = pos.Add(step)
	}
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// Equal reports whether both bitmaps have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || len(b.pixels) != len(o.pixels) {
		return false
	}
	for i := range b.pixels {
		if b.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}
