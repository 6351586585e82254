package raster2d

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"

	// Registered for side effect: both packages call image.RegisterFormat
	// in their init, extending image.Decode's format detection to BMP and
	// TIFF alongside the PNG and JPEG decoders imported here.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Surface wraps a Bitmap with the standard library/ecosystem image codecs,
// so a rendered Bitmap can be written out and a source image can be
// loaded in as a Bitmap, per §4.9.
type Surface struct {
	Bitmap *Bitmap
}

// NewSurface wraps bmp.
func NewSurface(bmp *Bitmap) *Surface {
	return &Surface{Bitmap: bmp}
}

// WritePNG encodes the surface's bitmap as PNG to w.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("raster2d: encode PNG: %w", err)
	}
	return nil
}

// Image adapts the surface's bitmap to the standard library's image.Image,
// as a premultiplied *image.RGBA sharing no storage with the bitmap.
func (s *Surface) Image() image.Image {
	b := s.Bitmap
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	row := make([]Pixel, b.W)
	for y := 0; y < b.H; y++ {
		b.RowPixels(y, 0, b.W, row)
		dst := img.Pix[y*img.Stride : y*img.Stride+4*b.W]
		for x, p := range row {
			dst[4*x] = uint8(p.R())
			dst[4*x+1] = uint8(p.G())
			dst[4*x+2] = uint8(p.B())
			dst[4*x+3] = uint8(p.A())
		}
	}
	return img
}

// LoadBitmap decodes an image from r — PNG, JPEG, BMP, or TIFF — and
// converts it to a premultiplied Bitmap. It returns ErrUnsupportedFormat
// when the format is not recognized by any registered decoder.
func LoadBitmap(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return bitmapFromImage(img), nil
}

func bitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewBitmap(w, h)
	row := make([]Pixel, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = premulPixelFrom16(r, g, b, a)
		}
		out.SetRowPixels(y, 0, row)
	}
	return out
}

// premulPixelFrom16 packs the 16-bit-per-channel premultiplied values
// returned by color.Color.RGBA (already premultiplied by alpha) down to
// the 8-bit premultiplied Pixel representation.
func premulPixelFrom16(r, g, b, a uint32) Pixel {
	return PackARGB(a>>8, r>>8, g>>8, b>>8)
}

