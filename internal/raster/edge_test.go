package raster

import (
	"testing"

	"github.com/vellum-gfx/raster2d/internal/clip"
)

func TestBuildEdgesBothLeft(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{-5, 0}, Point{-2, 10}, c)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.XCurrent != 0 || e.Slope != 0 || e.YMin != 0 || e.YMax != 10 {
		t.Errorf("got %+v, want a vertical stub pinned to Left=0 spanning [0,10)", e)
	}
}

func TestBuildEdgesBothRight(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{15, 0}, Point{20, 10}, c)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.XCurrent != 10 || e.Slope != 0 || e.YMin != 0 || e.YMax != 10 {
		t.Errorf("got %+v, want a vertical stub pinned to Right=10 spanning [0,10)", e)
	}
}

func TestBuildEdgesCrossesLeftOnly(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{-5, 0}, Point{5, 10}, c)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2 (vertical stub + interior)", len(edges))
	}
	stub, interior := edges[0], edges[1]
	if stub.XCurrent != 0 || stub.Slope != 0 {
		t.Errorf("first edge = %+v, want a vertical stub at x=0", stub)
	}
	if stub.YMin != 0 || stub.YMax != interior.YMin {
		t.Errorf("stub/interior boundary mismatch: stub=%+v interior=%+v", stub, interior)
	}
	if interior.YMax != 10 {
		t.Errorf("interior.YMax = %d, want 10", interior.YMax)
	}
}

func TestBuildEdgesCrossesRightOnly(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{5, 0}, Point{15, 10}, c)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2 (interior + vertical stub)", len(edges))
	}
	interior, stub := edges[0], edges[1]
	if stub.XCurrent != 10 || stub.Slope != 0 {
		t.Errorf("second edge = %+v, want a vertical stub at x=10", stub)
	}
	if interior.YMin != 0 || interior.YMax != stub.YMin {
		t.Errorf("interior/stub boundary mismatch: interior=%+v stub=%+v", interior, stub)
	}
	if stub.YMax != 10 {
		t.Errorf("stub.YMax = %d, want 10", stub.YMax)
	}
}

func TestBuildEdgesCrossesBoth(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{-5, 0}, Point{15, 10}, c)
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3 (left stub + interior + right stub)", len(edges))
	}
	left, mid, right := edges[0], edges[1], edges[2]
	if left.XCurrent != 0 || left.Slope != 0 {
		t.Errorf("left = %+v, want a vertical stub at x=0", left)
	}
	if right.XCurrent != 10 || right.Slope != 0 {
		t.Errorf("right = %+v, want a vertical stub at x=10", right)
	}
	if left.YMax != mid.YMin || mid.YMax != right.YMin {
		t.Errorf("edges don't chain contiguously: %+v %+v %+v", left, mid, right)
	}
	if left.YMin != 0 || right.YMax != 10 {
		t.Errorf("outer bounds wrong: left=%+v right=%+v", left, right)
	}
}

// TestBuildEdgesCrossesLeftWithDescendingX exercises a border-crossing
// segment whose outside (clipped) endpoint has the *larger* y, i.e. the
// x-ascending pair (after step 5) is y-descending. Every emitted edge must
// still lie fully inside [c.Left, c.Right] on every scanline it covers,
// from YMin to YMax-1.
func TestBuildEdgesCrossesLeftWithDescendingX(t *testing.T) {
	c := clip.NewRect(0, 0, 4, 4)
	edges := BuildEdges(nil, Point{3, 1}, Point{-1, 3}, c)
	for _, e := range edges {
		lo, hi := e.XCurrent, e.XCurrent+e.Slope*float64(e.YMax-1-e.YMin)
		if lo < c.Left-1e-9 || lo > c.Right+1e-9 || hi < c.Left-1e-9 || hi > c.Right+1e-9 {
			t.Errorf("edge %+v leaves [%v,%v] over its span: endpoints x=%v..%v", e, c.Left, c.Right, lo, hi)
		}
	}
}

func TestBuildEdgesEntirelyInside(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{2, 0}, Point{8, 10}, c)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.YMin != 0 || e.YMax != 10 {
		t.Errorf("got %+v, want YMin=0 YMax=10", e)
	}
	if e.Slope != 0.6 {
		t.Errorf("Slope = %v, want 0.6", e.Slope)
	}
}

func TestBuildEdgesDiscardsHorizontal(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{0, 5}, Point{10, 5}, c)
	if len(edges) != 0 {
		t.Errorf("horizontal segment produced %d edges, want 0", len(edges))
	}
}

func TestBuildEdgesTrivialRejectAbove(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{0, -10}, Point{5, -5}, c)
	if len(edges) != 0 {
		t.Errorf("segment entirely above the clip produced %d edges, want 0", len(edges))
	}
}

func TestBuildEdgesTrivialRejectBelow(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	edges := BuildEdges(nil, Point{0, 15}, Point{5, 20}, c)
	if len(edges) != 0 {
		t.Errorf("segment entirely below the clip produced %d edges, want 0", len(edges))
	}
}

func TestBuildEdgesAppendsToExistingSlice(t *testing.T) {
	c := clip.NewRect(0, 0, 10, 10)
	var edges []Edge
	edges = BuildEdges(edges, Point{2, 0}, Point{2, 10}, c)
	edges = BuildEdges(edges, Point{8, 0}, Point{8, 10}, c)
	if len(edges) != 2 {
		t.Fatalf("got %d edges across two calls, want 2", len(edges))
	}
}

func TestSortEdgesOrdersByYMinThenXThenSlope(t *testing.T) {
	edges := []Edge{
		{YMin: 1, XCurrent: 5, Slope: 0},
		{YMin: 0, XCurrent: 9, Slope: 0},
		{YMin: 0, XCurrent: 9, Slope: -1},
		{YMin: 0, XCurrent: 1, Slope: 0},
	}
	SortEdges(edges)
	want := []Edge{
		{YMin: 0, XCurrent: 1, Slope: 0},
		{YMin: 0, XCurrent: 9, Slope: -1},
		{YMin: 0, XCurrent: 9, Slope: 0},
		{YMin: 1, XCurrent: 5, Slope: 0},
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edges[%d] = %+v, want %+v", i, edges[i], want[i])
		}
	}
}
