package raster2d

// Paint carries the styling information for a draw call: a fallback solid
// color, an optional shader that overrides the color when present, and the
// fill/stroke mode with its stroke parameters.
//
// A Paint does not own the Shader it references; the shader must outlive
// every draw call that uses the paint.
type Paint struct {
	// Color is used directly when Shader is nil.
	Color RGBA

	// Shader, when non-nil, produces every shaded pixel instead of Color.
	Shader Shader

	// IsStroke selects the stroking pipeline (§4.7) over plain fill for
	// DrawContours.
	IsStroke bool

	// StrokeWidth is the full width of the stroke, in paint space.
	StrokeWidth float64

	// MiterLimit bounds how far a sharp join may extend before the
	// stroker falls back to a bevel; see internal/stroke.
	MiterLimit float64
}

// NewPaint returns a Paint with the data model's defaults: opaque black
// fill, no shader, fill mode, 1-unit stroke width, 4x miter limit.
func NewPaint() *Paint {
	return &Paint{
		Color:       RGBA{A: 1},
		StrokeWidth: 1,
		MiterLimit:  4,
	}
}

// Clone returns a shallow copy of p (the Shader reference is copied, not
// deep-cloned, matching the paint's non-owning relationship to its shader).
func (p *Paint) Clone() *Paint {
	cp := *p
	return &cp
}
