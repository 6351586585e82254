package raster2d

import "math"

// Matrix represents a 2D affine transformation as a 2x3 matrix in row-major
// order:
//
//	| A  B  C |
//	| D  E  F |
//
// which represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// There is no perspective row; the third row is implicitly [0 0 1]. This
// matches the original source's six-float GMatrix layout (SX, KX, TX, KY,
// SY, TY) field for field: A=SX, B=KX, C=TX, D=KY, E=SY, F=TY.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate returns a matrix that translates by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, B: 0, C: tx, D: 0, E: 1, F: ty}
}

// Scale returns a matrix that scales by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, B: 0, C: 0, D: 0, E: sy, F: 0}
}

// Rotate returns a matrix that rotates by angle radians about the origin.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// SetConcat returns the matrix product secundo*primo: applying the result
// to a point is equivalent to applying primo first, then secundo. The
// receiver is not read. SetConcat is safe to call as
// a.SetConcat(a, b) or b.SetConcat(a, b) — all six outputs are computed
// into locals before anything is written back, so aliasing either operand
// with the receiver (or with each other) is never a hazard.
func (a Matrix) SetConcat(secundo, primo Matrix) Matrix {
	return Matrix{
		A: secundo.A*primo.A + secundo.B*primo.D,
		B: secundo.A*primo.B + secundo.B*primo.E,
		C: secundo.A*primo.C + secundo.B*primo.F + secundo.C,
		D: secundo.D*primo.A + secundo.E*primo.D,
		E: secundo.D*primo.B + secundo.E*primo.E,
		F: secundo.D*primo.C + secundo.E*primo.F + secundo.F,
	}
}

// Concat returns m*other: a point is transformed by other first, then m.
func (m Matrix) Concat(other Matrix) Matrix {
	return m.SetConcat(m, other)
}

// PreConcat returns other*m: a point is transformed by m first, then other.
// Canvas.Concat does not use it: it sets CTM' = CTM.Concat(matrix), so new
// drawing appears as if first transformed by matrix, then by the previous
// CTM.
func (m Matrix) PreConcat(other Matrix) Matrix {
	return m.SetConcat(other, m)
}

// Invert computes the inverse of m. It returns false and leaves the second
// return value unspecified when m is singular (determinant zero); the
// caller (typically a shader's SetContext) must skip the draw in that case
// rather than silently substituting the identity.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

// MapPoint applies m to a single point.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// MapPoints applies m to every point in src, writing the results to dst.
// dst and src may be the same slice; each element is computed into a local
// before being written back, so in-place mapping is safe.
func (m Matrix) MapPoints(dst, src []Point) {
	for i, p := range src {
		dst[i] = m.MapPoint(p)
	}
}
