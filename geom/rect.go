package geom

import "golang.org/x/exp/constraints"

// Rect is an axis-aligned rectangle. Max >= Min componentwise.
type Rect struct {
	Min, Max Vector
}

// RectAt returns the rectangle of the given size whose minimum corner is min.
func RectAt(min Vector, size float64) Rect {
	return Rect{Min: min, Max: min.Add(V(size, size))}
}

// Scale multiplies both corners by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{Min: r.Min.Scale(s), Max: r.Max.Scale(s)}
}

func (r Rect) Size() Vector {
	return r.Max.Sub(r.Min)
}

// Intersection returns the minimum translation vector that, subtracted from r,
// separates r from o. ok is false when the rectangles do not overlap; touching
// edges count as no overlap.
func (r Rect) Intersection(o Rect) (mtv Vector, ok bool) {
	left := V(r.Max.X-o.Min.X, 0)
	if left.X <= 0 {
		return Vector{}, false
	}
	right := V(r.Min.X-o.Max.X, 0)
	if right.X >= 0 {
		return Vector{}, false
	}
	up := V(0, r.Max.Y-o.Min.Y)
	if up.Y <= 0 {
		return Vector{}, false
	}
	down := V(0, r.Min.Y-o.Max.Y)
	if down.Y >= 0 {
		return Vector{}, false
	}

	// first minimum wins on ties: left, right, up, down
	mtv = left
	for _, c := range [...]Vector{right, up, down} {
		if c.Length() < mtv.Length() {
			mtv = c
		}
	}
	return mtv, true
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
