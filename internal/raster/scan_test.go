package raster

import "testing"

type span struct {
	y, x0, x1 int
}

func collectSpans(edges []Edge, walk func([]Edge, SpanFunc)) []span {
	var got []span
	walk(edges, func(y, x0, x1 int) {
		got = append(got, span{y, x0, x1})
	})
	return got
}

func TestScanConvexRightTriangle(t *testing.T) {
	// The right triangle (0,0)-(4,0)-(0,4), reduced to its two non-horizontal
	// edges: a vertical left edge at x=0 and a hypotenuse of slope -1
	// starting at x=3.5. Hand-derived expected spans paint column x on row y
	// exactly when x+y<4: the right end of each span is round(XCurrent) =
	// floor(XCurrent+0.5), so a pixel whose center lies on the hypotenuse
	// (x+y==3) is painted.
	edges := []Edge{
		{YMin: 0, YMax: 4, Slope: 0, XCurrent: 0, Orientation: 1},
		{YMin: 0, YMax: 4, Slope: -1, XCurrent: 3.5, Orientation: 1},
	}
	got := collectSpans(edges, ScanConvex)
	want := []span{
		{0, 0, 4},
		{1, 0, 3},
		{2, 0, 2},
		{3, 0, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d spans %v, want %d spans %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanConvexEmptyEdgeListIsNoop(t *testing.T) {
	got := collectSpans(nil, ScanConvex)
	if len(got) != 0 {
		t.Errorf("got %v, want no spans", got)
	}
	got = collectSpans([]Edge{{YMin: 0, YMax: 4}}, ScanConvex)
	if len(got) != 0 {
		t.Errorf("a single edge should never emit a span, got %v", got)
	}
}

func TestScanGeneralSameWindingUnionsWithoutAHole(t *testing.T) {
	// Two same-orientation rectangles, x in [0,10) and [5,15), both y in
	// [0,10). Overlapping in x in [5,10) their windings add to 2, which is
	// still non-zero, so the whole union [0,15) must paint as one span with
	// no gap.
	edges := []Edge{
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 0, Orientation: -1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 5, Orientation: -1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 10, Orientation: 1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 15, Orientation: 1},
	}
	got := collectSpans(edges, ScanGeneral)
	if len(got) != 10 {
		t.Fatalf("got %d spans, want 10 (one per row)", len(got))
	}
	for y, s := range got {
		if s != (span{y, 0, 15}) {
			t.Errorf("span[%d] = %+v, want {%d 0 15}", y, s, y)
		}
	}
}

func TestScanGeneralOppositeWindingCancelsInOverlap(t *testing.T) {
	// Same two rectangles, but the second is wound in the opposite
	// direction. In their overlap, x in [5,10), the windings cancel to
	// zero, carving a hole out of the union under the non-zero rule: only
	// [0,5) and [10,15) should paint.
	edges := []Edge{
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 0, Orientation: -1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 5, Orientation: 1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 10, Orientation: 1},
		{YMin: 0, YMax: 10, Slope: 0, XCurrent: 15, Orientation: -1},
	}
	got := collectSpans(edges, ScanGeneral)
	if len(got) != 20 {
		t.Fatalf("got %d spans, want 20 (two per row)", len(got))
	}
	for y := 0; y < 10; y++ {
		first, second := got[2*y], got[2*y+1]
		if first != (span{y, 0, 5}) {
			t.Errorf("row %d first span = %+v, want {%d 0 5}", y, first, y)
		}
		if second != (span{y, 10, 15}) {
			t.Errorf("row %d second span = %+v, want {%d 10 15}", y, second, y)
		}
	}
}

func TestScanGeneralEmptyEdgeListIsNoop(t *testing.T) {
	got := collectSpans(nil, ScanGeneral)
	if len(got) != 0 {
		t.Errorf("got %v, want no spans", got)
	}
}
