package bitmap

import "image/color"

// Color is a plain 8-bit RGBA value. No blending is performed on write.
type Color struct {
	R, G, B, A uint8
}

var (
	Clear = Color{}
	Black = Color{A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Gray  = Color{R: 192, G: 192, B: 192, A: 255}
	Red   = Color{R: 255, A: 255}
	Green = Color{G: 255, A: 255}
	Blue  = Color{B: 255, A: 255}
)

// ScaledGray returns an opaque gray whose channels are White scaled by s in [0, 1].
func ScaledGray(s float64) Color {
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	v := uint8(float64(White.R) * s)
	return Color{R: v, G: v, B: v, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}
