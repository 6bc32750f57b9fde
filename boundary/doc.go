// Package boundary extracts the open borders of a built core.Mesh as closed
// vertex loops.
//
// What:
//
//   - FindBoundaries(m, opts...): one loop per connected boundary component.
//     A watertight mesh yields no loops.
//   - IsClosed(m): reports whether the mesh has no boundary half-edge at all.
//
// How:
//
// Every half-edge without a face is a boundary half-edge. They are indexed
// by start vertex and chained: from the current boundary half-edge e the
// next one is the remaining boundary half-edge starting at end(e) =
// start(pair(e)). A loop closes when its first vertex comes round again.
// Loops follow the boundary half-edges, so they run opposite to the
// orientation of the faces along them.
//
// Ambiguities:
//
// A vertex with more than one outgoing boundary half-edge (two boundary
// components touching at a vertex) has no unique chaining. Such vertices are
// reported as core.BoundaryFork diagnostics; chaining then closes a loop as
// soon as its first vertex recurs and otherwise takes the lowest remaining
// half-edge. A chain that cannot be continued is reported as
// core.BoundaryOpen and emitted as-is. WithStrict turns either case into an
// error wrapping core.ErrNonManifoldAmbiguity.
//
// Complexity: O(H) time and O(B) memory for B boundary half-edges.
//
// Errors:
//
//   - ErrMeshNil                     mesh pointer is nil
//   - core.ErrUnbuiltTopology        mesh not built
//   - core.ErrNonManifoldAmbiguity   ambiguous chaining under WithStrict
package boundary
