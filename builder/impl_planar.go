// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_planar.go — open surfaces in the z=0 plane.
//
// Contract:
//   • Faces are counter-clockwise seen from +Z.
//   • Vertices are appended in the documented order, offset by the number of
//     vertices already in the mesh.
//   • Each shape is a single edge-connected shell.

package builder

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/DamonsJ/DamonsMesh/core"
)

// Triangle appends the unit right triangle (0,0,0),(1,0,0),(0,1,0).
// One boundary loop of three vertices.
func Triangle() Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		pts := []r3.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
		_, err := cfg.emit(m, methodTriangle, pts, [][]int{{0, 1, 2}})

		return err
	}
}

// Quad appends the unit square split along its (0,0)-(1,1) diagonal into
// two triangles sharing one interior edge.
func Quad() Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		pts := []r3.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		_, err := cfg.emit(m, methodQuad, pts, [][]int{{0, 1, 2}, {0, 2, 3}})

		return err
	}
}

// Grid appends a rows×cols grid of unit cells, each split into two
// triangles. Vertex (r,c) has local index r*(cols+1)+c and position (c,r,0).
//
// Counts: (rows+1)(cols+1) vertices, 2·rows·cols faces, one boundary loop
// of 2(rows+cols) vertices.
func Grid(rows, cols int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if rows < MinGridDim {
			return tooFew(methodGrid, "rows", rows, MinGridDim)
		}
		if cols < MinGridDim {
			return tooFew(methodGrid, "cols", cols, MinGridDim)
		}

		stride := cols + 1
		pts := make([]r3.Vector, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				pts = append(pts, r3.Vector{X: float64(c), Y: float64(r)})
			}
		}

		faces := make([][]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := r*stride + c
				b := a + 1
				d := a + stride + 1
				e := a + stride
				faces = append(faces, []int{a, b, d}, []int{a, d, e})
			}
		}
		_, err := cfg.emit(m, methodGrid, pts, faces)

		return err
	}
}

// Fan appends a disc of n triangles around a centre vertex (local index 0)
// with n rim vertices on the unit circle (local indices 1..n).
// One boundary loop: the rim.
func Fan(n int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if n < MinFanRim {
			return tooFew(methodFan, "n", n, MinFanRim)
		}

		pts := make([]r3.Vector, 0, n+1)
		pts = append(pts, r3.Vector{})
		pts = append(pts, ring(n, 1)...)

		faces := make([][]int, 0, n)
		for i := 0; i < n; i++ {
			faces = append(faces, []int{0, 1 + i, 1 + (i+1)%n})
		}
		_, err := cfg.emit(m, methodFan, pts, faces)

		return err
	}
}

// Annulus appends a ring of 2n triangles between an inner circle of radius
// 0.5 (local indices 0..n-1) and an outer circle of radius 1 (n..2n-1).
// Two boundary loops: the inner and the outer circle.
func Annulus(n int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if n < MinAnnulusRing {
			return tooFew(methodAnnulus, "n", n, MinAnnulusRing)
		}

		pts := append(ring(n, 0.5), ring(n, 1)...)
		faces := make([][]int, 0, 2*n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			faces = append(faces, []int{i, n + i, n + j}, []int{i, n + j, j})
		}
		_, err := cfg.emit(m, methodAnnulus, pts, faces)

		return err
	}
}

// ring returns n points evenly spaced on a circle of radius r, starting on +X
// and turning counter-clockwise.
func ring(n int, r float64) []r3.Vector {
	pts := make([]r3.Vector, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r3.Vector{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return pts
}
