// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Read-only access to the built half-edge array.
//
// Topology is a view handed to WithTopology callbacks; it reads the mesh
// arrays in place under the mesh's read lock, so a whole traversal sees one
// consistent build. A Topology must not escape its callback.

package core

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
)

// Topology is a read-only view of a built mesh.
type Topology struct {
	m *Mesh
}

// WithTopology runs fn with a view of the built topology while holding the
// read lock. fn must not call mutating Mesh methods.
//
// Errors:
//   - ErrUnbuiltTopology if the mesh has not been built since its last
//     structural edit.
//   - any error returned by fn.
func (m *Mesh) WithTopology(fn func(t Topology) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.built {
		return ErrUnbuiltTopology
	}

	return fn(Topology{m: m})
}

// VertexCount returns the number of vertices.
func (t Topology) VertexCount() int { return len(t.m.vertices) }

// FaceCount returns the number of faces.
func (t Topology) FaceCount() int { return len(t.m.faces) }

// HalfEdgeCount returns the number of half-edges.
func (t Topology) HalfEdgeCount() int { return len(t.m.halfEdges) }

// HalfEdge returns half-edge e.
func (t Topology) HalfEdge(e int) (HalfEdge, error) {
	if e < 0 || e >= len(t.m.halfEdges) {
		return HalfEdge{}, fmt.Errorf("half-edge %d: %w", e, ErrInvalidIndex)
	}

	return t.m.halfEdges[e], nil
}

// Outgoing returns the Outgoing back-reference of vertex v.
func (t Topology) Outgoing(v int) (Index, error) {
	if v < 0 || v >= len(t.m.vertices) {
		return Index{}, fmt.Errorf("vertex %d: %w", v, ErrInvalidIndex)
	}

	return t.m.vertices[v].Outgoing, nil
}

// Border returns the Border back-reference of face f.
func (t Topology) Border(f int) (Index, error) {
	if f < 0 || f >= len(t.m.faces) {
		return Index{}, fmt.Errorf("face %d: %w", f, ErrInvalidIndex)
	}

	return t.m.faces[f].Border, nil
}

// FaceSize returns the vertex count of face f.
func (t Topology) FaceSize(f int) (int, error) {
	if f < 0 || f >= len(t.m.faces) {
		return 0, fmt.Errorf("face %d: %w", f, ErrInvalidIndex)
	}

	return len(t.m.faces[f].Vertices), nil
}

// Target returns the end vertex of half-edge e: the start of its pair, or
// of its successor when the pair is absent.
func (t Topology) Target(e int) (int, error) {
	h, err := t.HalfEdge(e)
	if err != nil {
		return 0, err
	}
	if p, ok := h.Pair.Get(); ok {
		return t.m.halfEdges[p].Start, nil
	}
	if n, ok := h.Next.Get(); ok {
		return t.m.halfEdges[n].Start, nil
	}

	return 0, fmt.Errorf("half-edge %d has neither pair nor next: %w", e, ErrNonManifoldAmbiguity)
}

// Position returns the coordinate of vertex v.
func (t Topology) Position(v int) (r3.Vector, error) {
	if v < 0 || v >= len(t.m.vertices) {
		return r3.Vector{}, fmt.Errorf("vertex %d: %w", v, ErrInvalidIndex)
	}

	return t.m.vertices[v].Position, nil
}

// FaceAreaVector returns the normal of face f scaled by its area.
func (t Topology) FaceAreaVector(f int) (r3.Vector, error) {
	a, err := t.m.faceAreaVector(f)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("face %d: %w", f, err)
	}

	return a, nil
}

// HalfEdge returns a copy of half-edge e.
func (m *Mesh) HalfEdge(e int) (HalfEdge, error) {
	var h HalfEdge
	err := m.WithTopology(func(t Topology) error {
		var err error
		h, err = t.HalfEdge(e)

		return err
	})
	if err != nil {
		return HalfEdge{}, fmt.Errorf("HalfEdge(%d): %w", e, err)
	}

	return h, nil
}

// HalfEdges returns a copy of the whole half-edge array.
func (m *Mesh) HalfEdges() ([]HalfEdge, error) {
	var out []HalfEdge
	err := m.WithTopology(func(t Topology) error {
		out = slices.Clone(t.m.halfEdges)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("HalfEdges: %w", err)
	}

	return out, nil
}

// HalfEdgeCount returns the number of half-edges, or 0 when unbuilt.
func (m *Mesh) HalfEdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.halfEdges)
}

// Target returns the end vertex of half-edge e.
func (m *Mesh) Target(e int) (int, error) {
	var v int
	err := m.WithTopology(func(t Topology) error {
		var err error
		v, err = t.Target(e)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("Target(%d): %w", e, err)
	}

	return v, nil
}
