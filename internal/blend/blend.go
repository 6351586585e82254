// Package blend implements source-over compositing of premultiplied ARGB
// pixels in the byte domain, per spec §4.1. Pixels are passed as plain
// uint32 (A<<24 | R<<16 | G<<8 | B) rather than the root package's Pixel
// type, to avoid an import cycle.
package blend

// DivideBy255 computes round(p/255) for 0 <= p <= 255*255 using the
// bias-multiply approximation (p*65793 + 2^23) >> 24, which is exact over
// that whole domain (TestDivideBy255Exact in blend_test.go checks it
// against the rounded float division at every 7th value of the domain and
// at every multiple of 255).
func DivideBy255(p uint32) uint32 {
	return (p*65793 + (1 << 23)) >> 24
}

// channels unpacks a uint32 ARGB pixel into its four byte channels.
func channels(p uint32) (a, r, g, b uint32) {
	return p >> 24 & 0xff, p >> 16 & 0xff, p >> 8 & 0xff, p & 0xff
}

func pack(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

// Blend computes the source-over composite of src onto dst:
// R = S + (255-S.a)*D/255, per channel, with the two fast paths required
// by spec §4.1 (opaque source returns src unchanged; fully transparent
// source returns dst unchanged).
func Blend(src, dst uint32) uint32 {
	sa, sr, sg, sb := channels(src)
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	da, dr, dg, db := channels(dst)
	ia := 255 - sa
	return pack(
		sa+DivideBy255(ia*da),
		sr+DivideBy255(ia*dr),
		sg+DivideBy255(ia*dg),
		sb+DivideBy255(ia*db),
	)
}

// BlendRow blends src onto every pixel of dst in place.
func BlendRow(src uint32, dst []uint32) {
	for i, d := range dst {
		dst[i] = Blend(src, d)
	}
}

// BlendRowSrc blends src[i] onto dst[i] for every i, in place into dst.
// Used when a shader produces a different source pixel per column.
func BlendRowSrc(src []uint32, dst []uint32) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = Blend(src[i], dst[i])
	}
}

// FillOpaque overwrites every pixel of dst with val without reading dst,
// the fast path used when a solid fill color's alpha is 255.
func FillOpaque(val uint32, dst []uint32) {
	for i := range dst {
		dst[i] = val
	}
}
