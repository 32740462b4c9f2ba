package render

import "raycaster/geom"

// Projection parameter limits.
const (
	MinParam     = 0.01
	MaxParam     = 5.0
	DefaultParam = 1.0
	// ParamStep is the increment applied by keyboard controls.
	ParamStep = 0.05
)

// Params are the externally adjustable projection parameters.
type Params struct {
	// FocalLength is the distance from the body to the view plane. Larger
	// values zoom in.
	FocalLength float64
	// ViewWidth is the length of the sampled view plane segment.
	ViewWidth float64
}

// DefaultParams returns focal length and view width of 1.
func DefaultParams() Params {
	return Params{FocalLength: DefaultParam, ViewWidth: DefaultParam}
}

// Clamped returns p with both values constrained to [MinParam, MaxParam].
func (p Params) Clamped() Params {
	return Params{
		FocalLength: geom.Clamp(p.FocalLength, MinParam, MaxParam),
		ViewWidth:   geom.Clamp(p.ViewWidth, MinParam, MaxParam),
	}
}

// Adjust adds the deltas and clamps the result.
func (p Params) Adjust(focal, width float64) Params {
	return Params{FocalLength: p.FocalLength + focal, ViewWidth: p.ViewWidth + width}.Clamped()
}
