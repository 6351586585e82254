package raster

import "sort"

// SortEdges sorts edges by (YMin asc, XCurrent asc, Slope asc), the order
// both scan loops require of their input edge list.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.YMin != b.YMin {
			return a.YMin < b.YMin
		}
		if a.XCurrent != b.XCurrent {
			return a.XCurrent < b.XCurrent
		}
		return a.Slope < b.Slope
	})
}

// SpanFunc is called once per solid span produced by a scan loop: shade
// columns [x0, x1) of row y.
type SpanFunc func(y, x0, x1 int)

// round implements the "pixel center strictly inside" span-endpoint rule:
// round(x + 0.5) truncated toward -infinity, i.e. floor(x+0.5).
func round(x float64) int {
	f := x + 0.5
	i := int(f)
	if f < 0 && f != float64(i) {
		i--
	}
	return i
}

// ScanConvex walks the edge list of a convex polygon and emits one span per
// scanline between the current left and right active edge, per spec §4.4.
// Edge orientation is not consulted. edges must already be sorted by
// SortEdges.
func ScanConvex(edges []Edge, fn SpanFunc) {
	if len(edges) < 2 {
		return
	}
	left, right := edges[0], edges[1]
	next := 2
	y := left.YMin
	if right.YMin > y {
		y = right.YMin
	}

	for {
		if y >= left.YMax {
			if next >= len(edges) {
				return
			}
			left = edges[next]
			next++
			if y < left.YMin {
				y = left.YMin
			}
			continue
		}
		if y >= right.YMax {
			if next >= len(edges) {
				return
			}
			right = edges[next]
			next++
			if y < right.YMin {
				y = right.YMin
			}
			continue
		}

		sx := round(left.XCurrent)
		ex := round(right.XCurrent)
		if sx < ex {
			fn(y, sx, ex)
		} else if ex < sx {
			fn(y, ex, sx)
		}

		y++
		left.XCurrent += left.Slope
		right.XCurrent += right.Slope
	}
}

// ScanGeneral walks a multi-contour, non-zero-winding edge list maintaining
// an active edge list, per spec §4.5. edges must already be sorted by
// SortEdges.
func ScanGeneral(edges []Edge, fn SpanFunc) {
	if len(edges) == 0 {
		return
	}

	var active []Edge
	idx := 0
	y := edges[0].YMin

	for {
		// 1. Remove edges whose extent has ended.
		changed := false
		kept := active[:0]
		for _, e := range active {
			if e.YMax <= y {
				changed = true
				continue
			}
			kept = append(kept, e)
		}
		active = kept

		// 2. Empty active list: either done, or snap to the next edge.
		if len(active) == 0 {
			if idx >= len(edges) {
				return
			}
			if edges[idx].YMin > y {
				y = edges[idx].YMin
			}
		}

		// 3. Append every edge starting at this scanline.
		for idx < len(edges) && edges[idx].YMin == y {
			active = append(active, edges[idx])
			idx++
			changed = true
		}

		if len(active) == 0 {
			// Nothing active and nothing left to start: done.
			if idx >= len(edges) {
				return
			}
			y++
			continue
		}

		// 4. Re-sort on structural change.
		if changed {
			sortByX(active)
		}

		// 5. Walk left-to-right accumulating winding.
		winding := 0
		var spanStart float64
		for _, e := range active {
			if winding == 0 {
				spanStart = e.XCurrent
			}
			winding += e.Orientation
			if winding == 0 {
				sx := round(spanStart)
				ex := round(e.XCurrent)
				if sx < ex {
					fn(y, sx, ex)
				}
			}
		}

		// 6. Advance; detect whether the x-order was disturbed.
		disturbed := false
		for i := range active {
			active[i].XCurrent += active[i].Slope
			if i > 0 && active[i].XCurrent < active[i-1].XCurrent {
				disturbed = true
			}
		}
		if disturbed {
			sortByX(active)
		}

		y++
		if len(active) == 0 && idx >= len(edges) {
			return
		}
	}
}

func sortByX(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].XCurrent < edges[j].XCurrent
	})
}
