// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for model identity, build state and diagnostics.

package core

import (
	"fmt"
	"slices"
)

// ID returns the model identifier (0 when none was assigned).
func (m *Mesh) ID() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.id
}

// Name returns the model name.
func (m *Mesh) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.name
}

// SetName renames the model. An empty name restores DefaultMeshName.
func (m *Mesh) SetName(name string) {
	if name == "" {
		name = DefaultMeshName
	}
	m.mu.Lock()
	m.name = name
	m.mu.Unlock()
}

// Kind reports KindMesh.
func (m *Mesh) Kind() Kind { return KindMesh }

// Strict reports whether WithStrictManifold was applied.
func (m *Mesh) Strict() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.strict
}

// Built reports whether the half-edge topology matches the current geometry.
func (m *Mesh) Built() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.built
}

// Diagnostics returns a copy of the ambiguities recorded by the last Build.
func (m *Mesh) Diagnostics() []Diagnostic {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.diagnostics)
}

// Stats is a snapshot of store sizes and topology state.
type Stats struct {
	Vertices          int
	Faces             int
	Normals           int
	HalfEdges         int
	BoundaryHalfEdges int
	Diagnostics       int
	Built             bool
}

// Stats returns a consistent snapshot of the mesh's sizes.
// Complexity: O(H) for the boundary count.
func (m *Mesh) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{
		Vertices:    len(m.vertices),
		Faces:       len(m.faces),
		Normals:     len(m.normals),
		HalfEdges:   len(m.halfEdges),
		Diagnostics: len(m.diagnostics),
		Built:       m.built,
	}
	for _, h := range m.halfEdges {
		if h.IsBoundary() {
			s.BoundaryHalfEdges++
		}
	}

	return s
}

// Err wraps the diagnostic as an ErrNonManifoldAmbiguity error.
func (d Diagnostic) Err() error {
	return fmt.Errorf("%s: %w", d, ErrNonManifoldAmbiguity)
}

// String renders the diagnostic with its present fields.
func (d Diagnostic) String() string {
	switch d.Kind {
	case PairReclaimed:
		return fmt.Sprintf("%s: half-edge %s moved from face %s to face %s",
			d.Kind, d.HalfEdge, d.PreviousFace, d.Face)
	case BoundaryFork:
		return fmt.Sprintf("%s: vertex %s has several outgoing boundary half-edges", d.Kind, d.Vertex)
	case BoundaryOpen:
		return fmt.Sprintf("%s: chain stopped at vertex %s after half-edge %s", d.Kind, d.Vertex, d.HalfEdge)
	default:
		return d.Kind.String()
	}
}
