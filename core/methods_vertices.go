// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex store: append, edit, positional lookup, counts.
//
// Concurrency:
//   - Mutations under the write lock; lookups under the read lock.

package core

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// AddVertex appends a vertex at p and returns its index.
// The topology is invalidated.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(p r3.Vector) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{ID: id, Position: p})
	m.invalidate()

	return id
}

// AddPoint is AddVertex with scalar coordinates.
func (m *Mesh) AddPoint(x, y, z float64) int {
	return m.AddVertex(r3.Vector{X: x, Y: y, Z: z})
}

// SetVertex moves vertex i to p. Positions carry no topology, so a built
// mesh stays built.
func (m *Mesh) SetVertex(i int, p r3.Vector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.vertices) {
		return fmt.Errorf("SetVertex(%d): %w", i, ErrInvalidIndex)
	}
	m.vertices[i].Position = p

	return nil
}

// Vertex returns a copy of vertex i, including its Outgoing back-reference.
func (m *Mesh) Vertex(i int) (Vertex, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.vertices) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", i, ErrInvalidIndex)
	}

	return m.vertices[i], nil
}

// Position returns the coordinate of vertex i.
func (m *Mesh) Position(i int) (r3.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.vertices) {
		return r3.Vector{}, fmt.Errorf("Position(%d): %w", i, ErrInvalidIndex)
	}

	return m.vertices[i].Position, nil
}

// Positions returns a copy of all vertex coordinates in index order.
func (m *Mesh) Positions() []r3.Vector {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]r3.Vector, len(m.vertices))
	for i, v := range m.vertices {
		out[i] = v.Position
	}

	return out
}

// VertexCount returns the number of vertices in the store.
func (m *Mesh) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vertices)
}

// Outgoing returns the Outgoing back-reference of vertex v.
// It fails with ErrUnbuiltTopology before a successful Build.
func (m *Mesh) Outgoing(v int) (Index, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.built {
		return Index{}, fmt.Errorf("Outgoing(%d): %w", v, ErrUnbuiltTopology)
	}
	if v < 0 || v >= len(m.vertices) {
		return Index{}, fmt.Errorf("Outgoing(%d): %w", v, ErrInvalidIndex)
	}

	return m.vertices[v].Outgoing, nil
}

// Centroid returns the mean of all vertex positions, or the zero vector
// for an empty store.
func (m *Mesh) Centroid() r3.Vector {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sum r3.Vector
	if len(m.vertices) == 0 {
		return sum
	}
	for _, v := range m.vertices {
		sum = sum.Add(v.Position)
	}

	return sum.Mul(1 / float64(len(m.vertices)))
}
