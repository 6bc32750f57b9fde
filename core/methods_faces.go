// SPDX-License-Identifier: MIT
//
// File: methods_faces.go
// Role: Face store: append, edit, lookup, per-face geometry.
//
// Face vertex indices are not checked against the vertex store on insert;
// readers may push faces before the last vertex. Build validates them.

package core

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
)

// AddFace appends a face with the given vertex cycle and returns its index.
// The cycle is copied. The topology is invalidated.
//
// Errors:
//   - ErrDegenerateFace: fewer than three vertices.
//   - ErrInvalidIndex: a negative vertex index.
func (m *Mesh) AddFace(ids ...int) (int, error) {
	if err := checkCycle(ids); err != nil {
		return 0, fmt.Errorf("AddFace: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := len(m.faces)
	m.faces = append(m.faces, Face{ID: id, Vertices: slices.Clone(ids)})
	m.invalidate()

	return id, nil
}

// AddTriangle appends the triangle (a, b, c).
func (m *Mesh) AddTriangle(a, b, c int) (int, error) {
	return m.AddFace(a, b, c)
}

// SetFace replaces the vertex cycle of face i. The topology is invalidated.
func (m *Mesh) SetFace(i int, ids ...int) error {
	if err := checkCycle(ids); err != nil {
		return fmt.Errorf("SetFace(%d): %w", i, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.faces) {
		return fmt.Errorf("SetFace(%d): %w", i, ErrInvalidIndex)
	}
	m.faces[i].Vertices = slices.Clone(ids)
	m.invalidate()

	return nil
}

// checkCycle rejects cycles that can never form a face.
func checkCycle(ids []int) error {
	if len(ids) < minFaceVertices {
		return fmt.Errorf("%d vertices: %w", len(ids), ErrDegenerateFace)
	}
	for _, id := range ids {
		if id < 0 {
			return fmt.Errorf("vertex %d: %w", id, ErrInvalidIndex)
		}
	}

	return nil
}

// Face returns a copy of face i, including its Border back-reference.
func (m *Mesh) Face(i int) (Face, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.faces) {
		return Face{}, fmt.Errorf("Face(%d): %w", i, ErrInvalidIndex)
	}
	f := m.faces[i]
	f.Vertices = slices.Clone(f.Vertices)

	return f, nil
}

// FaceVertices returns a copy of the vertex cycle of face i.
func (m *Mesh) FaceVertices(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.faces) {
		return nil, fmt.Errorf("FaceVertices(%d): %w", i, ErrInvalidIndex)
	}

	return slices.Clone(m.faces[i].Vertices), nil
}

// FaceVertexCount returns the number of vertices of face i.
func (m *Mesh) FaceVertexCount(i int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.faces) {
		return 0, fmt.Errorf("FaceVertexCount(%d): %w", i, ErrInvalidIndex)
	}

	return len(m.faces[i].Vertices), nil
}

// FaceCount returns the number of faces in the store.
func (m *Mesh) FaceCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.faces)
}

// TriangleCount returns the number of three-vertex faces.
func (m *Mesh) TriangleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, f := range m.faces {
		if len(f.Vertices) == 3 {
			n++
		}
	}

	return n
}

// FacePositions returns the coordinates of face i's vertices in cycle order.
func (m *Mesh) FacePositions(i int) ([]r3.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.faces) {
		return nil, fmt.Errorf("FacePositions(%d): %w", i, ErrInvalidIndex)
	}
	out := make([]r3.Vector, 0, len(m.faces[i].Vertices))
	for _, v := range m.faces[i].Vertices {
		if v >= len(m.vertices) {
			return nil, fmt.Errorf("FacePositions(%d): vertex %d: %w", i, v, ErrInvalidIndex)
		}
		out = append(out, m.vertices[v].Position)
	}

	return out, nil
}

// FaceNormal returns the unit normal of face i (Newell's method, so
// non-planar polygons get their best-fit normal). A zero-area face yields
// the zero vector.
func (m *Mesh) FaceNormal(i int) (r3.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, err := m.faceAreaVector(i)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("FaceNormal(%d): %w", i, err)
	}
	if a.Norm2() == 0 {
		return a, nil
	}

	return a.Normalize(), nil
}

// FaceArea returns the area of face i.
func (m *Mesh) FaceArea(i int) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, err := m.faceAreaVector(i)
	if err != nil {
		return 0, fmt.Errorf("FaceArea(%d): %w", i, err)
	}

	return a.Norm(), nil
}

// faceAreaVector returns the area-weighted normal of face i: half the sum
// of p_j × p_{j+1} over the cycle. Caller holds at least the read lock.
func (m *Mesh) faceAreaVector(i int) (r3.Vector, error) {
	if i < 0 || i >= len(m.faces) {
		return r3.Vector{}, ErrInvalidIndex
	}
	ids := m.faces[i].Vertices
	var sum r3.Vector
	for j, v := range ids {
		w := ids[(j+1)%len(ids)]
		if v >= len(m.vertices) || w >= len(m.vertices) {
			return r3.Vector{}, ErrInvalidIndex
		}
		sum = sum.Add(m.vertices[v].Position.Cross(m.vertices[w].Position))
	}

	return sum.Mul(0.5), nil
}

// Border returns the Border back-reference of face f.
// It fails with ErrUnbuiltTopology before a successful Build.
func (m *Mesh) Border(f int) (Index, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.built {
		return Index{}, fmt.Errorf("Border(%d): %w", f, ErrUnbuiltTopology)
	}
	if f < 0 || f >= len(m.faces) {
		return Index{}, fmt.Errorf("Border(%d): %w", f, ErrInvalidIndex)
	}

	return m.faces[f].Border, nil
}
