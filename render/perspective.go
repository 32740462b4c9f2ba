package render

import (
	"raycaster/bitmap"
	"raycaster/geom"
	"raycaster/world"
)

// Wall face shades.
var (
	VerticalFaceColor   = bitmap.Gray
	HorizontalFaceColor = bitmap.White
)

// Perspective draws the first-person view, one wall slice per column.
type Perspective struct {
	Width, Height int
}

// Draw renders a fresh black buffer with every column's wall slice centred
// vertically.
func (r Perspective) Draw(w *world.World, p Params) (*bitmap.Bitmap, error) {
	p = p.Clamped()
	out := bitmap.New(r.Width, r.Height, bitmap.Black)
	columns, err := Cast(w, p, r.Width)
	if err != nil {
		return nil, err
	}

	bufferHeight := float64(r.Height)
	mid := bufferHeight / 2
	for i, c := range columns {
		// slices taller than the buffer are clipped anyway
		h := geom.Clamp(ProjectedHeight(p.FocalLength, c.Distance, bufferHeight), 0, bufferHeight)
		color := HorizontalFaceColor
		if c.Face == FaceVertical {
			color = VerticalFaceColor
		}
		x := float64(i)
		out.DrawLine(geom.V(x, mid-h/2), geom.V(x, mid+h/2), color)
	}
	return out, nil
}
