package bitmap

import (
	"image"

	"golang.org/x/image/draw"
)

// RGBA returns the pixels as a tightly packed RGBA byte slice, the layout
// expected by ebiten's WritePixels.
func (b *Bitmap) RGBA() []byte {
	out := make([]byte, len(b.pixels)*4)
	for i, c := range b.pixels {
		base := i * 4
		out[base] = c.R
		out[base+1] = c.G
		out[base+2] = c.B
		out[base+3] = c.A
	}
	return out
}

// Image copies the bitmap into a new NRGBA image.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.Height()))
	copy(img.Pix, b.RGBA())
	return img
}

// Scaled returns the bitmap upscaled by an integer factor with nearest
// neighbour sampling, keeping hard pixel edges.
func (b *Bitmap) Scaled(factor int) *image.NRGBA {
	src := b.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.width*factor, b.Height()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
