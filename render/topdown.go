package render

import (
	"raycaster/bitmap"
	"raycaster/geom"
	"raycaster/world"
)

// Minimap colors.
var (
	WallColor      = bitmap.White
	FloorColor     = bitmap.Black
	RayColor       = bitmap.Green
	BodyColor      = bitmap.Blue
	ViewPlaneColor = bitmap.Red
)

// TopDown draws the map from above with the field of view overlaid.
type TopDown struct {
	Width, Height int
}

// Draw renders a fresh buffer. The map is scaled so its height fills the
// buffer width.
func (r TopDown) Draw(w *world.World, p Params) (*bitmap.Bitmap, error) {
	p = p.Clamped()
	out := bitmap.New(r.Width, r.Height, bitmap.White)
	scale := float64(r.Width) / w.Map.Size().Y

	for y := 0; y < w.Map.Height(); y++ {
		for x := 0; x < w.Map.Width(); x++ {
			cell := geom.RectAt(geom.V(float64(x), float64(y)), 1).Scale(scale)
			if w.Map.At(x, y).IsWall() {
				out.Fill(cell, WallColor)
			} else {
				out.Fill(cell, FloorColor)
			}
		}
	}

	plane := newViewPlane(&w.Body, p, r.Width)
	columns, err := castPlane(w, plane, r.Width)
	if err != nil {
		return nil, err
	}
	from := w.Body.Position.Scale(scale)
	for _, c := range columns {
		out.DrawLine(from, c.Hit.Scale(scale), RayColor)
	}

	out.Fill(w.Body.BoundingBox().Scale(scale), BodyColor)
	out.DrawLine(plane.start.Scale(scale), plane.end.Scale(scale), ViewPlaneColor)
	return out, nil
}
