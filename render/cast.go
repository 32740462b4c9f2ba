package render

import (
	"fmt"
	"math"

	"raycaster/geom"
	"raycaster/tilemap"
	"raycaster/world"
)

// WallHeight is the height of every wall in map units.
const WallHeight = 1.0

// Face tells which kind of grid line a ray hit.
type Face uint8

const (
	// FaceHorizontal is a hit on a line of constant y.
	FaceHorizontal Face = iota
	// FaceVertical is a hit on a line of constant x.
	FaceVertical
)

// Column is the result of casting one view plane sample.
type Column struct {
	Hit      geom.Vector
	Distance float64
	Face     Face
}

// viewPlane is the segment perpendicular to the facing direction at focal
// length distance, sampled once per output column.
type viewPlane struct {
	start, end, step geom.Vector
}

func newViewPlane(b *world.Body, p Params, columns int) viewPlane {
	orth := b.Direction.Orthogonal()
	center := b.Position.Add(b.Direction.Scale(p.FocalLength))
	half := orth.Scale(p.ViewWidth / 2)
	return viewPlane{
		start: center.Sub(half),
		end:   center.Add(half),
		step:  orth.Scale(p.ViewWidth / float64(columns)),
	}
}

func (v viewPlane) sample(column int) geom.Vector {
	return v.start.Add(v.step.Scale(float64(column)))
}

// Cast shoots one ray per column from the body through evenly spaced points
// of the view plane and reports where each meets a wall. p is clamped first.
func Cast(w *world.World, p Params, columns int) ([]Column, error) {
	p = p.Clamped()
	if columns <= 0 {
		return nil, nil
	}
	plane := newViewPlane(&w.Body, p, columns)
	return castPlane(w, plane, columns)
}

func castPlane(w *world.World, plane viewPlane, columns int) ([]Column, error) {
	origin := w.Body.Position
	out := make([]Column, columns)
	for c := range out {
		ray, err := tilemap.NewRay(origin, plane.sample(c).Sub(origin).Normalized())
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		hit, err := w.Map.HitTest(ray)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		face := FaceHorizontal
		if math.Floor(hit.X) == hit.X {
			face = FaceVertical
		}
		out[c] = Column{Hit: hit, Distance: hit.Sub(origin).Length(), Face: face}
	}
	return out, nil
}

// ProjectedHeight is the on-screen height of a wall at distance, for a buffer
// of bufferHeight rows.
func ProjectedHeight(focalLength, distance, bufferHeight float64) float64 {
	return focalLength * WallHeight / distance * bufferHeight
}
