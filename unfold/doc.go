// Package unfold lays out the planar net of a regular triangular pyramid.
//
// The package is a small 2D geometry engine. Points are geom.Coord values
// (aliased as Vector2); polygons hold one *Vector2 handle per vertex so that
// two faces unfolded from each other share the coordinates of their common
// edge. Faces are produced by reflecting a polygon across one of its edges
// (MirrorBySide) and glue tabs by insetting a strip parallel to a triangle
// edge (OuterStripe). The results are serialized as SVG path data.
//
// Conventions:
//   - Vertex and edge indexes are taken modulo the polygon arity, negative
//     indexes wrap around.
//   - Edge i runs from vertex i to vertex i+1.
//   - Input units are arbitrary (the CLI uses centimetres); output scaling
//     happens only in the encoders.
//
// Every precondition is checked at run time and reported through the
// sentinel errors in errors.go; nothing in this package panics on bad
// geometry.
package unfold
