package raster2d

// DrawMesh draws every triangle of mesh, composing per-triangle shaders
// from the mesh's optional per-vertex colors and texture coordinates and
// paint's shader, per §4.8:
//
//   - colors and tex both present: modulate a ColorTriangleShader with a
//     BitmapProxyShader wrapping paint.Shader.
//   - colors only: a plain ColorTriangleShader.
//   - tex only: a BitmapProxyShader wrapping paint.Shader.
//   - neither: the triangle is skipped (nothing to shade it with).
//
// Each triangle is drawn with a fresh paint carrying only paint.Color.A,
// the alpha the original paint contributes to the composition.
func (c *Canvas) DrawMesh(mesh Mesh, paint *Paint) {
	for t := 0; t < mesh.Triangles; t++ {
		i0, i1, i2 := mesh.triangleVertices(t)
		p0, p1, p2 := mesh.Positions[i0], mesh.Positions[i1], mesh.Positions[i2]

		hasColors := mesh.Colors != nil
		hasTex := mesh.Tex != nil

		var shader Shader
		switch {
		case hasColors && hasTex:
			if paint.Shader == nil {
				continue
			}
			proxy, ok := NewBitmapProxyShader(paint.Shader, [3]Point{p0, p1, p2}, [3]Point{mesh.Tex[i0], mesh.Tex[i1], mesh.Tex[i2]})
			if !ok {
				continue
			}
			tri := NewColorTriangleShader(p0, p1, p2, mesh.Colors[i0], mesh.Colors[i1], mesh.Colors[i2])
			shader = NewComposeShader(tri, proxy)

		case hasColors:
			shader = NewColorTriangleShader(p0, p1, p2, mesh.Colors[i0], mesh.Colors[i1], mesh.Colors[i2])

		case hasTex:
			if paint.Shader == nil {
				continue
			}
			proxy, ok := NewBitmapProxyShader(paint.Shader, [3]Point{p0, p1, p2}, [3]Point{mesh.Tex[i0], mesh.Tex[i1], mesh.Tex[i2]})
			if !ok {
				continue
			}
			shader = proxy

		default:
			continue
		}

		triPaint := &Paint{Color: RGBA{A: paint.Color.A}, Shader: shader}
		c.DrawContours([]Contour{{Points: []Point{p0, p1, p2}, Closed: true}}, triPaint)
	}
}
