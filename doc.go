// Package raster2d implements a software 2D rasterizer core: integer
// scanline polygon fill, a small shader contract, and a polyline stroker,
// operating on premultiplied-ARGB bitmaps.
//
// # Overview
//
// raster2d provides the pieces underneath an immediate-mode drawing API
// rather than the API itself: a Canvas holds a transform stack bound to a
// destination Bitmap, and exposes convex-polygon fill, general non-zero
// winding fill, stroking, mesh (triangle soup) drawing, and bitmap
// blitting.
//
// # Quick Start
//
//	bmp := raster2d.NewBitmap(256, 256)
//	c, err := raster2d.NewCanvas(bmp)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Clear(raster2d.White)
//	c.DrawRect(raster2d.NewRect(32, 32, 224, 224), raster2d.NewPaint())
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Bitmap, Paint, Matrix, Point, Rect, Contour, Mesh
//   - Shaders: BitmapShader, LinearGradientShader, RadialGradientShader,
//     ColorTriangleShader, BitmapProxyShader, ComposeShader
//   - Internal: raster (scanline edge list and scan loops), clip (device
//     clip rectangle), blend (source-over compositing), stroke (polyline
//     expansion)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise (y-down)
//
// # Scope
//
// The rasterizer produces integer pixel coverage, not sub-pixel
// anti-aliasing; geometry is polylines, not curves; transforms are affine,
// not perspective; and there is no color management. See SPEC_FULL.md for
// the full list of non-goals.
package raster2d
