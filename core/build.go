// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Topology builder. Derives the half-edge array, Vertex.Outgoing and
//       Face.Border from the face vertex cycles.
//
// Determinism:
//   - Half-edges are allocated in face order, two per newly seen undirected
//     edge: index 2k is the first direction met, 2k+1 its pair.
//
// Concurrency:
//   - Build holds the write lock for its whole duration.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

const methodBuild = "Build"

// pairKey is an ordered (start, end) vertex pair.
type pairKey struct {
	from, to int
}

// Build discards any previous topology and derives the half-edge array from
// the current faces.
//
// Implementation:
//   - Stage 1: Reset topology state and validate every face cycle.
//   - Stage 2: For each face, walk the closed cycle. For each (from, to):
//     look up or allocate the half-edges keyed (from, to) and (to, from); wire
//     them as pairs when both are new; claim (from, to) for the face; point
//     Outgoing of from and to at the two half-edges; record (from, to) as the
//     face's Border.
//   - Stage 3: Link Next/Prev over the face's own half-edges.
//
// A half-edge whose direction no face claims keeps Face absent: it is a
// boundary half-edge.
//
// An ordered pair claimed a second time (inconsistent orientation or a
// non-manifold edge) is a PairReclaimed diagnostic: the later face takes the
// half-edge, the event is logged at Warn and kept in Diagnostics. Under
// WithStrictManifold the build fails with ErrNonManifoldAmbiguity instead.
//
// Errors:
//   - ErrInvalidIndex: a face references a vertex outside the store.
//   - ErrDegenerateFace: a face has <3 vertices or repeats a vertex consecutively.
//   - ErrNonManifoldAmbiguity: strict mode only.
//
// A failed Build leaves the mesh unbuilt.
//
// Complexity: O(Σ|f|) time and space; the pair index is a hash map local to
// this call.
func (m *Mesh) Build() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidate()
	if err := m.validateFaces(); err != nil {
		return fmt.Errorf("%s: %w", methodBuild, err)
	}

	incidences := 0
	for i := range m.faces {
		incidences += len(m.faces[i].Vertices)
	}

	// Scoped to this call so no association survives a geometry edit.
	pairs := make(map[pairKey]int, 2*incidences)
	halfEdges := make([]HalfEdge, 0, 2*incidences)
	var diags []Diagnostic

	lookupOrAlloc := func(k pairKey) (int, bool) {
		if h, ok := pairs[k]; ok {
			return h, false
		}
		h := len(halfEdges)
		halfEdges = append(halfEdges, HalfEdge{})
		pairs[k] = h

		return h, true
	}

	m.linked = true
	cycle := make([]int, 0, minFaceVertices)
	for f := range m.faces {
		ids := m.faces[f].Vertices
		k := len(ids)
		cycle = cycle[:0]

		for i := 0; i < k; i++ {
			from, to := ids[i], ids[(i+1)%k]

			h, newH := lookupOrAlloc(pairKey{from, to})
			t, newT := lookupOrAlloc(pairKey{to, from})
			if newH && newT {
				// First sighting of this undirected edge.
				halfEdges[h].Start, halfEdges[h].Pair = from, Some(t)
				halfEdges[t].Start, halfEdges[t].Pair = to, Some(h)
			}

			if prev, claimed := halfEdges[h].Face.Get(); claimed {
				d := Diagnostic{
					Kind:         PairReclaimed,
					HalfEdge:     Some(h),
					Vertex:       Some(from),
					Face:         Some(f),
					PreviousFace: Some(prev),
				}
				if m.strict {
					m.invalidate()
					return fmt.Errorf("%s: face %d edge (%d,%d): %w", methodBuild, f, from, to, d.Err())
				}
				m.logger.Warn("ordered vertex pair claimed by a second face",
					zap.Int("half_edge", h),
					zap.Int("from", from),
					zap.Int("to", to),
					zap.Int("face", f),
					zap.Int("previous_face", prev),
				)
				diags = append(diags, d)
			}
			halfEdges[h].Face = Some(f)

			m.vertices[from].Outgoing = Some(h)
			m.vertices[to].Outgoing = Some(t)
			m.faces[f].Border = Some(h)
			cycle = append(cycle, h)
		}

		for i, h := range cycle {
			halfEdges[h].Next = Some(cycle[(i+1)%k])
			halfEdges[h].Prev = Some(cycle[(i+k-1)%k])
		}
	}

	m.halfEdges = halfEdges
	m.diagnostics = diags
	m.built = true

	m.logger.Debug("half-edge topology built",
		zap.String("mesh", m.name),
		zap.Int("vertices", len(m.vertices)),
		zap.Int("faces", len(m.faces)),
		zap.Int("half_edges", len(halfEdges)),
		zap.Int("diagnostics", len(diags)),
	)

	return nil
}

// validateFaces checks every face cycle against the current vertex store.
// Caller holds the write lock.
func (m *Mesh) validateFaces() error {
	n := len(m.vertices)
	for f := range m.faces {
		ids := m.faces[f].Vertices
		if len(ids) < minFaceVertices {
			return fmt.Errorf("face %d: %d vertices: %w", f, len(ids), ErrDegenerateFace)
		}
		for i, v := range ids {
			if v < 0 || v >= n {
				return fmt.Errorf("face %d: vertex %d: %w", f, v, ErrInvalidIndex)
			}
			if v == ids[(i+1)%len(ids)] {
				return fmt.Errorf("face %d: vertex %d repeated: %w", f, v, ErrDegenerateFace)
			}
		}
	}

	return nil
}

// invalidate drops the topology and every back-reference into it. It is
// O(1) when nothing was linked since the last call.
// Caller holds the write lock.
func (m *Mesh) invalidate() {
	m.built = false
	m.halfEdges = nil
	m.diagnostics = nil
	if !m.linked {
		return
	}
	m.linked = false
	for i := range m.vertices {
		m.vertices[i].Outgoing = Index{}
	}
	for i := range m.faces {
		m.faces[i].Border = Index{}
	}
}
