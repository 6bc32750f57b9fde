// Package core provides the indexed geometry store of a polygonal surface
// mesh and the half-edge topology built on top of it.
//
// The Mesh M = (V,F,H) holds:
//
//   - V: dense, 0-based vertex positions (r3.Vector) with an Outgoing
//     back-reference to any half-edge starting at the vertex
//   - F: faces as ordered cycles of ≥3 vertex indices with a Border
//     back-reference to any half-edge bordering the face
//   - H: half-edges (Start, Pair, Face, Next, Prev) derived by Build
//
// Every optional reference is a core.Index: the zero value means "absent"
// and is never confused with the valid index 0.
//
// Lifecycle:
//
//	m := core.NewMesh(core.WithName("bunny"))
//	a := m.AddPoint(0, 0, 0)              // geometry readers push positions…
//	_, err := m.AddTriangle(a, b, c)      // …and face index cycles
//	err = m.Build()                       // derive the half-edge array once
//	err = m.WithTopology(func(t core.Topology) error { … })
//
// Build discards any previous topology and recomputes it from scratch. The
// ordered-pair index used to match the two halves of an edge lives only for
// the duration of one Build call. Structural edits (AddVertex, AddFace,
// SetFace) invalidate the topology; queries then fail with
// ErrUnbuiltTopology until Build succeeds again.
//
// Configuration Options (MeshOption):
//
//	– WithName(name)            model name (default "unnamed_mesh")
//	– WithID(id)                model identifier, usually from registry.Container.NextID
//	– WithLogger(*zap.Logger)   destination for build diagnostics (default no-op)
//	– WithStrictManifold()      fail Build on an ordered pair claimed twice
//	– WithCapacity(v, f)        pre-size the vertex and face stores
//
// Errors:
//
//	ErrInvalidIndex          - index outside the current vertex/face/half-edge bounds.
//	ErrUnbuiltTopology       - topology query before a successful Build.
//	ErrNonManifoldAmbiguity  - ordered pair claimed by a second face (strict mode), or
//	                           ambiguous boundary chaining (see package boundary).
//	ErrDegenerateFace        - face with fewer than three vertices or a repeated
//	                           consecutive vertex.
//
// Concurrency:
//
// A sync.RWMutex guards all state: mutators and Build take the write lock,
// accessors and WithTopology the read lock. Sequences of calls (build, then
// query) are not atomic; callers sharing a Mesh across goroutines serialize
// those sequences themselves.
package core
