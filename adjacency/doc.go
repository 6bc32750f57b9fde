// Package adjacency answers one-ring and face-neighbour queries against the
// half-edge topology of a built core.Mesh.
//
// What:
//
//   - VertexHalfEdges(m, v): every half-edge starting at v.
//   - VertexFaces(m, v):     faces incident to v.
//   - VertexVertices(m, v):  the one-ring of v (vertices sharing an edge with v).
//   - FaceFaces(m, f):       faces sharing an edge with f.
//   - FaceHalfEdges, FindHalfEdge, IsBoundaryVertex, Valence, VertexNormal.
//   - Shells(m):             connected components of faces.
//
// How:
//
// The vertex queries sweep the fan around v twice. The first sweep starts at
// v's Outgoing half-edge and repeatedly steps to next(pair(e)); on an open
// fan it stops at the boundary gap. The second sweep steps to pair(prev(e))
// from the same start and recovers the half-edges on the other side of the
// gap. For an interior vertex both sweeps close on their own and coincide.
// A vertex where two separate fans touch (a non-manifold "bow tie") only
// reports the fan containing its Outgoing half-edge.
//
// Every query runs inside core.Mesh.WithTopology, so it sees one consistent
// build. Results are sets: they carry no duplicates and are returned sorted
// ascending for reproducible output, but callers should not read meaning
// into the order.
//
// Complexity:
//
//   - vertex queries: O(d) for a vertex of valence d
//   - FaceFaces:      O(|f|)
//   - Shells:         O(F + H)
//
// Errors:
//
//   - ErrMeshNil                 mesh pointer is nil
//   - core.ErrUnbuiltTopology    mesh not built since its last structural edit
//   - core.ErrInvalidIndex       vertex or face index out of range
package adjacency
