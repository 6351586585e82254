// Package stroke expands straight-segment polylines into filled contours
// representing their stroked outline, per spec §4.7. It is deliberately
// narrower than a general path stroker: inputs are already-flattened
// polylines (no curves), caps are butt-style only, and joins are either
// miter or bevel, chosen by comparing the miter length against the given
// miter limit.
//
// # Usage
//
//	contours := stroke.Expand([]stroke.Polyline{{
//	    Points: []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
//	    Closed: false,
//	}}, 4.0, 4.0)
package stroke
