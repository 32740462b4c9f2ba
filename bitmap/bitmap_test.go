package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycaster/geom"
)

func painted(b *Bitmap, c Color) [][2]int {
	var out [][2]int
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if got, _ := b.At(x, y); got == c {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func TestNewFillsAndSizes(t *testing.T) {
	b := New(4, 3, Blue)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Len(t, painted(b, Blue), 12)
}

func TestNewRejectsEmpty(t *testing.T) {
	assert.Panics(t, func() { New(0, 3, Black) })
	assert.Panics(t, func() { New(3, -1, Black) })
}

func TestSetAndAtBounds(t *testing.T) {
	b := New(3, 3, Black)
	b.Set(1, 2, Red)
	c, ok := b.At(1, 2)
	require.True(t, ok)
	assert.Equal(t, Red, c)

	b.Set(-1, 0, Red)
	b.Set(3, 0, Red)
	b.Set(0, 3, Red)
	assert.Len(t, painted(b, Red), 1)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		c, ok := b.At(p[0], p[1])
		assert.False(t, ok)
		assert.Equal(t, Clear, c)
	}
}

func TestFillTruncates(t *testing.T) {
	b := New(4, 4, Black)
	b.Fill(geom.Rect{Min: geom.V(0.5, 0.5), Max: geom.V(2.9, 2.1)}, White)
	assert.ElementsMatch(t, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, painted(b, White))
}

func TestFillClipsToBitmap(t *testing.T) {
	b := New(2, 2, Black)
	b.Fill(geom.Rect{Min: geom.V(-5, -5), Max: geom.V(10, 10)}, Green)
	assert.Len(t, painted(b, Green), 4)
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to geom.Vector
		want     [][2]int
	}{
		{"shallow", geom.V(0, 0), geom.V(3, 1), [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"vertical", geom.V(2, 1), geom.V(2, 4), [][2]int{{2, 1}, {2, 2}, {2, 3}}},
		{"leftward", geom.V(3, 3), geom.V(0, 3), [][2]int{{3, 3}, {2, 3}, {1, 3}}},
		{"upward", geom.V(1, 4), geom.V(1, 2), [][2]int{{1, 4}, {1, 3}}},
		{"zero length", geom.V(1, 1), geom.V(1, 1), [][2]int{{1, 1}}},
		{"fractional", geom.V(0.5, 0.5), geom.V(0.7, 2.5), [][2]int{{0, 0}, {0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(6, 6, Black)
			b.DrawLine(tt.from, tt.to, Green)
			assert.ElementsMatch(t, tt.want, painted(b, Green))
		})
	}
}

func TestDrawLineClipped(t *testing.T) {
	b := New(4, 4, Black)
	assert.NotPanics(t, func() {
		b.DrawLine(geom.V(-10, 2), geom.V(10, 2), Red)
	})
	assert.Len(t, painted(b, Red), 4)
}

func TestRGBAAndImage(t *testing.T) {
	b := New(2, 1, Black)
	b.Set(1, 0, Color{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, []byte{0, 0, 0, 255, 1, 2, 3, 4}, b.RGBA())

	img := b.Image()
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, uint8(3), img.NRGBAAt(1, 0).B)

	scaled := b.Scaled(3)
	assert.Equal(t, 6, scaled.Bounds().Dx())
	assert.Equal(t, 3, scaled.Bounds().Dy())
	assert.Equal(t, img.NRGBAAt(1, 0), scaled.NRGBAAt(5, 2))
	assert.Equal(t, img.NRGBAAt(0, 0), scaled.NRGBAAt(2, 1))
}

func TestEqualAndScaledGray(t *testing.T) {
	a, b := New(2, 2, Black), New(2, 2, Black)
	assert.True(t, a.Equal(b))
	b.Set(0, 0, White)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(New(4, 1, Black)))

	assert.Equal(t, Color{R: 127, G: 127, B: 127, A: 255}, ScaledGray(0.5))
	assert.Equal(t, White, ScaledGray(3))
}
