// Package builder provides reusable "functional-options"-style constructors
// for half-edge mesh fixtures. It lives alongside core to centralise the
// canonical shapes used in tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:     create a core.Mesh, run constructors in order, Build.
//     – Constructor:   a function that appends geometry to a mesh.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithOrigin, WithScale: affine placement of generated positions.
//   - Open surfaces:
//     – Triangle, Quad, Grid(rows, cols), Fan(n), Annulus(n).
//   - Closed surfaces:
//     – Tetrahedron, Octahedron, Cube.
//
// Guarantees:
//
//   - Composable: every constructor appends with its own vertex offset, so
//     several shapes can share one mesh as disjoint shells.
//   - Deterministic: vertex and face order depend only on the parameters.
//   - Consistent orientation: every face is counter-clockwise seen from
//     outside (closed solids) or from +Z (planar shapes).
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; invalid shape parameters return ErrTooFewVertices.
package builder
