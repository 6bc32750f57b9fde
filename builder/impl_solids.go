// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_solids.go — closed triangulated solids.
//
// Every solid is watertight and consistently oriented: each undirected edge
// is used once in each direction, so a build yields no boundary half-edge.
// Faces are counter-clockwise seen from outside.

package builder

import (
	"github.com/golang/geo/r3"

	"github.com/DamonsJ/DamonsMesh/core"
)

var (
	tetrahedronPoints = []r3.Vector{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
	}
	tetrahedronFaces = [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

	octahedronPoints = []r3.Vector{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	octahedronFaces = [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	cubePoints = []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	cubeQuads = [][4]int{
		{0, 3, 2, 1}, // z=0
		{4, 5, 6, 7}, // z=1
		{0, 1, 5, 4}, // y=0
		{3, 7, 6, 2}, // y=1
		{0, 4, 7, 3}, // x=0
		{1, 2, 6, 5}, // x=1
	}
)

// Tetrahedron appends the regular tetrahedron inscribed in the cube [-1,1]³.
// 4 vertices, 4 faces.
func Tetrahedron() Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		_, err := cfg.emit(m, methodTetrahedron, tetrahedronPoints, tetrahedronFaces)

		return err
	}
}

// Octahedron appends the regular octahedron with vertices on the unit axes
// (+X, -X, +Y, -Y, +Z, -Z). 6 vertices, 8 faces.
func Octahedron() Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		_, err := cfg.emit(m, methodOctahedron, octahedronPoints, octahedronFaces)

		return err
	}
}

// Cube appends the unit cube [0,1]³ with every square side split into two
// triangles. 8 vertices, 12 faces.
func Cube() Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		faces := make([][]int, 0, 2*len(cubeQuads))
		for _, q := range cubeQuads {
			faces = append(faces, []int{q[0], q[1], q[2]}, []int{q[0], q[2], q[3]})
		}
		_, err := cfg.emit(m, methodCube, cubePoints, faces)

		return err
	}
}
