// Package damonsmesh is an in-memory half-edge topology library for
// polygonal surface meshes: load vertices and faces, build the directed
// half-edge structure once, then answer adjacency and boundary questions.
//
// What is in the box?
//
//	• Geometry store: vertices (r3.Vector positions), polygonal faces,
//	  per-vertex normals, bound box, guarded by an RWMutex
//	• Build: pair/next/prev wiring of every directed edge, with
//	  diagnostics for non-manifold input instead of silent corruption
//	• Adjacency: one-ring vertices, incident faces and half-edges,
//	  edge-adjacent faces, connected shells
//	• Boundary: ordered boundary loops of open surfaces
//	• Fixtures: deterministic grids, fans, annuli and Platonic solids
//	• Registry: models addressable by numeric ID
//
// Subpackages:
//
//	core/      — Mesh, Vertex, Face, HalfEdge, Index, Build, CheckTopology
//	adjacency/ — VertexHalfEdges, VertexFaces, VertexVertices, FaceFaces, Shells
//	boundary/  — FindBoundaries, IsClosed
//	builder/   — BuildMesh and shape constructors
//	registry/  — Container, IDGenerator
//
// Quick ASCII example (two triangles sharing edge 0–2):
//
//	3───2
//	│ ╱ │
//	0───1
//
// faces (0,1,2) and (0,2,3) produce 10 half-edges: 6 face-owned and
// 4 boundary, with one boundary loop 0→3→2→1 running clockwise.
//
//	go get github.com/DamonsJ/DamonsMesh
package damonsmesh
