// Package affine provides single-precision 2D affine transforms for a
// rendering pipeline.
//
// # Overview
//
// A [Matrix] holds the six coefficients of a 2x3 affine map. It places,
// scales and rotates geometry before rasterization, and its inverse maps
// device coordinates back to local space for hit-testing.
//
// # Quick Start
//
//	import "github.com/gogpu/affine"
//
//	// Rotate a quarter turn, then move right by 100.
//	m := affine.Concat(affine.Translate(100, 0), affine.Rotate(math.Pi/2))
//
//	pts := []affine.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
//	m.MapPoints(pts, pts) // in place
//
//	if inv, ok := m.Invert(); ok {
//	    local := inv.MapPoint(affine.Pt(120, 40))
//	    _ = local
//	}
//
// # Composition Order
//
// Concat(secondary, primary) applies primary first. PreConcat and
// PostConcat are method forms of the same rule:
//
//	m.PreConcat(p)  == Concat(m, p) // p runs before m
//	m.PostConcat(s) == Concat(s, m) // s runs after m
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; a positive angle turns +X towards +Y
//
// # Interoperability
//
// Matrix converts to and from golang.org/x/image/math/f32.Aff3 and widens
// to f64.Aff3 for golang.org/x/image/draw. Point converts to
// fixed.Point26_6. Mat4 and AppendUniform produce the layout GPU shaders
// read as a mat4x4.
package affine
