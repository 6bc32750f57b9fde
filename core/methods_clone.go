// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of the geometry store.

package core

import "slices"

// Clone returns a deep copy of the geometry store: vertex positions, face
// cycles, normals, name, logger and strictness. The clone has no ID and no
// topology; call Build on it before querying adjacency.
//
// Complexity: O(V + Σ|f| + N).
func (m *Mesh) Clone() *Mesh {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := &Mesh{
		name:     m.name,
		logger:   m.logger,
		strict:   m.strict,
		vertices: make([]Vertex, len(m.vertices)),
		faces:    make([]Face, len(m.faces)),
		normals:  slices.Clone(m.normals),
	}
	for i, v := range m.vertices {
		c.vertices[i] = Vertex{ID: v.ID, Position: v.Position}
	}
	for i, f := range m.faces {
		c.faces[i] = Face{ID: f.ID, Vertices: slices.Clone(f.Vertices)}
	}

	return c
}
