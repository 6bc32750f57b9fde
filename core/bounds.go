// SPDX-License-Identifier: MIT

package core

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// Box is an axis-aligned bound box, one closed interval per axis.
type Box struct {
	X, Y, Z r1.Interval
}

// EmptyBox returns a box containing no points.
func EmptyBox() Box {
	return Box{X: r1.EmptyInterval(), Y: r1.EmptyInterval(), Z: r1.EmptyInterval()}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool { return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty() }

// AddPoint returns the smallest box containing b and p.
func (b Box) AddPoint(p r3.Vector) Box {
	return Box{X: b.X.AddPoint(p.X), Y: b.Y.AddPoint(p.Y), Z: b.Z.AddPoint(p.Z)}
}

// Contains reports whether p lies inside the closed box.
func (b Box) Contains(p r3.Vector) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Center returns the box midpoint.
func (b Box) Center() r3.Vector {
	return r3.Vector{X: b.X.Center(), Y: b.Y.Center(), Z: b.Z.Center()}
}

// Size returns the edge lengths along each axis.
func (b Box) Size() r3.Vector {
	return r3.Vector{X: b.X.Length(), Y: b.Y.Length(), Z: b.Z.Length()}
}

// Min returns the lower corner.
func (b Box) Min() r3.Vector { return r3.Vector{X: b.X.Lo, Y: b.Y.Lo, Z: b.Z.Lo} }

// Max returns the upper corner.
func (b Box) Max() r3.Vector { return r3.Vector{X: b.X.Hi, Y: b.Y.Hi, Z: b.Z.Hi} }

// Bounds recomputes the bound box of all vertex positions. An empty store
// yields an empty box.
// Complexity: O(V).
func (m *Mesh) Bounds() Box {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b := EmptyBox()
	for _, v := range m.vertices {
		b = b.AddPoint(v.Position)
	}

	return b
}
