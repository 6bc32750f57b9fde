// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// AddNormal appends a per-vertex normal and returns its index. Normals are
// stored as supplied by the reader; they play no part in the topology.
func (m *Mesh) AddNormal(n r3.Vector) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.normals = append(m.normals, n)

	return len(m.normals) - 1
}

// SetNormal overwrites normal i.
func (m *Mesh) SetNormal(i int, n r3.Vector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.normals) {
		return fmt.Errorf("SetNormal(%d): %w", i, ErrInvalidIndex)
	}
	m.normals[i] = n

	return nil
}

// Normal returns normal i.
func (m *Mesh) Normal(i int) (r3.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.normals) {
		return r3.Vector{}, fmt.Errorf("Normal(%d): %w", i, ErrInvalidIndex)
	}

	return m.normals[i], nil
}

// NormalCount returns the number of stored normals.
func (m *Mesh) NormalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.normals)
}
