package raster2d

import "errors"

// Sentinel errors returned by construction-time validation across the
// package. Callers that need to distinguish failure causes should compare
// with errors.Is rather than string-matching.
var (
	// ErrInvalidBitmap is returned by NewCanvas and bitmap-backed shader
	// constructors when a Bitmap fails its width/height/stride validity
	// check (see Bitmap.Valid).
	ErrInvalidBitmap = errors.New("raster2d: invalid bitmap")

	// ErrEmptyContour names the condition of a draw call given zero
	// contours, or only degenerate ones (too few points). The draw methods
	// return no error and treat that case as a no-op, so no function in
	// this package returns it.
	ErrEmptyContour = errors.New("raster2d: no drawable contour")

	// ErrUnbalancedRestore is returned by Canvas.Restore when the CTM save
	// stack is empty. The source this package is adapted from leaves this
	// undefined; this is the one deliberate hardening over that behavior.
	ErrUnbalancedRestore = errors.New("raster2d: restore called with empty save stack")

	// ErrSingularMatrix documents the condition under which Matrix.Invert
	// and every Shader.SetContext return false. It is not always surfaced
	// as an error value (most singular-transform paths are silent no-ops
	// per the package's error handling policy); it exists so callers that
	// do want to wrap the condition have a sentinel to compare against.
	ErrSingularMatrix = errors.New("raster2d: singular transform")

	// ErrUnsupportedFormat is returned by LoadBitmap when the input can't
	// be decoded by any registered image.Image format.
	ErrUnsupportedFormat = errors.New("raster2d: unsupported image format")
)
