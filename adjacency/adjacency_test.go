package adjacency_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamonsJ/DamonsMesh/adjacency"
	"github.com/DamonsJ/DamonsMesh/builder"
	"github.com/DamonsJ/DamonsMesh/core"
)

// build runs BuildMesh and fails the test on error.
func build(t *testing.T, cons ...builder.Constructor) *core.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, nil, cons...)
	require.NoError(t, err)

	return m
}

// bowtie returns two triangles touching only at vertex 0.
func bowtie(t *testing.T) *core.Mesh {
	t.Helper()
	m := core.NewMesh()
	m.AddPoint(0, 0, 0)
	m.AddPoint(1, 0, 0)
	m.AddPoint(1, 1, 0)
	m.AddPoint(-1, 0, 0)
	m.AddPoint(-1, -1, 0)
	_, err := m.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = m.AddTriangle(0, 3, 4)
	require.NoError(t, err)
	require.NoError(t, m.Build())

	return m
}

// TestVertexQueries_Quad checks every vertex of two triangles sharing 0-2.
func TestVertexQueries_Quad(t *testing.T) {
	m := build(t, builder.Quad())

	cases := []struct {
		v         int
		halfEdges []int
		faces     []int
		ring      []int
	}{
		{v: 0, halfEdges: []int{0, 5, 9}, faces: []int{0, 1}, ring: []int{1, 2, 3}},
		{v: 1, halfEdges: []int{1, 2}, faces: []int{0}, ring: []int{0, 2}},
		{v: 2, halfEdges: []int{3, 4, 6}, faces: []int{0, 1}, ring: []int{0, 1, 3}},
		{v: 3, halfEdges: []int{7, 8}, faces: []int{1}, ring: []int{0, 2}},
	}
	for _, tc := range cases {
		hs, err := adjacency.VertexHalfEdges(m, tc.v)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.halfEdges, hs); diff != "" {
			t.Errorf("VertexHalfEdges(%d) mismatch (-want +got):\n%s", tc.v, diff)
		}

		fs, err := adjacency.VertexFaces(m, tc.v)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.faces, fs); diff != "" {
			t.Errorf("VertexFaces(%d) mismatch (-want +got):\n%s", tc.v, diff)
		}

		ring, err := adjacency.VertexVertices(m, tc.v)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.ring, ring); diff != "" {
			t.Errorf("VertexVertices(%d) mismatch (-want +got):\n%s", tc.v, diff)
		}

		n, err := adjacency.Valence(m, tc.v)
		require.NoError(t, err)
		assert.Equal(t, len(tc.ring), n)

		onBoundary, err := adjacency.IsBoundaryVertex(m, tc.v)
		require.NoError(t, err)
		assert.True(t, onBoundary)
	}
}

// TestVertexQueries_Start checks that every returned half-edge starts at v.
func TestVertexQueries_Start(t *testing.T) {
	m := build(t, builder.Grid(3, 3), builder.Octahedron())
	hsAll, err := m.HalfEdges()
	require.NoError(t, err)

	total := 0
	for v := 0; v < m.VertexCount(); v++ {
		hs, err := adjacency.VertexHalfEdges(m, v)
		require.NoError(t, err)
		for _, e := range hs {
			assert.Equal(t, v, hsAll[e].Start)
		}
		total += len(hs)
	}
	assert.Equal(t, len(hsAll), total, "every half-edge is reached from its start vertex")
}

// TestVertexQueries_Interior checks the centre of a 2x2 grid.
func TestVertexQueries_Interior(t *testing.T) {
	m := build(t, builder.Grid(2, 2))

	faces, err := adjacency.VertexFaces(m, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 6, 7}, faces)

	ring, err := adjacency.VertexVertices(m, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5, 7, 8}, ring)

	onBoundary, err := adjacency.IsBoundaryVertex(m, 4)
	require.NoError(t, err)
	assert.False(t, onBoundary)

	n, err := adjacency.VertexNormal(m, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Z, 1e-12)
}

// TestVertexQueries_Isolated checks a vertex no face references.
func TestVertexQueries_Isolated(t *testing.T) {
	m := core.NewMesh()
	require.NoError(t, builder.Apply(m, nil, builder.Triangle()))
	m.AddPoint(9, 9, 9)
	require.NoError(t, m.Build())

	hs, err := adjacency.VertexHalfEdges(m, 3)
	require.NoError(t, err)
	assert.Empty(t, hs)

	ring, err := adjacency.VertexVertices(m, 3)
	require.NoError(t, err)
	assert.Empty(t, ring)

	onBoundary, err := adjacency.IsBoundaryVertex(m, 3)
	require.NoError(t, err)
	assert.False(t, onBoundary)

	n, err := adjacency.VertexNormal(m, 3)
	require.NoError(t, err)
	assert.Equal(t, r3.Vector{}, n)
}

// TestVertexQueries_ClosedFan checks valence on the octahedron, where every
// vertex has four neighbours.
func TestVertexQueries_ClosedFan(t *testing.T) {
	m := build(t, builder.Octahedron())
	for v := 0; v < 6; v++ {
		n, err := adjacency.Valence(m, v)
		require.NoError(t, err)
		assert.Equal(t, 4, n, "vertex %d", v)

		faces, err := adjacency.VertexFaces(m, v)
		require.NoError(t, err)
		assert.Len(t, faces, 4)
	}

	fan := build(t, builder.Fan(6))
	n, err := adjacency.Valence(fan, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	onBoundary, err := adjacency.IsBoundaryVertex(fan, 0)
	require.NoError(t, err)
	assert.False(t, onBoundary)
}

// TestVertexNormal_Corner checks the area weighting on a cube corner.
func TestVertexNormal_Corner(t *testing.T) {
	m := build(t, builder.Cube())
	n, err := adjacency.VertexNormal(m, 0)
	require.NoError(t, err)

	want := -1 / math.Sqrt(3)
	assert.InDelta(t, want, n.X, 1e-12)
	assert.InDelta(t, want, n.Y, 1e-12)
	assert.InDelta(t, want, n.Z, 1e-12)
}

// TestFaceQueries checks face neighbours and cycles.
func TestFaceQueries(t *testing.T) {
	m := build(t, builder.Quad())

	ff, err := adjacency.FaceFaces(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ff)
	ff, err = adjacency.FaceFaces(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ff)

	cycle, err := adjacency.FaceHalfEdges(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 2}, cycle)
	cycle, err = adjacency.FaceHalfEdges(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 5, 6}, cycle)

	g := build(t, builder.Grid(2, 2))
	ff, err = adjacency.FaceFaces(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ff)

	single := build(t, builder.Triangle())
	ff, err = adjacency.FaceFaces(single, 0)
	require.NoError(t, err)
	assert.Empty(t, ff)

	cube := build(t, builder.Cube())
	for f := 0; f < 12; f++ {
		ff, err := adjacency.FaceFaces(cube, f)
		require.NoError(t, err)
		assert.Len(t, ff, 3, "face %d", f)
		assert.NotContains(t, ff, f)
	}
}

// TestFindHalfEdge checks directed lookups, including the scan fallback at
// a non-manifold vertex.
func TestFindHalfEdge(t *testing.T) {
	m := build(t, builder.Quad())

	e, err := adjacency.FindHalfEdge(m, 0, 2)
	require.NoError(t, err)
	assert.True(t, e.Is(5))
	e, err = adjacency.FindHalfEdge(m, 2, 0)
	require.NoError(t, err)
	assert.True(t, e.Is(4))
	e, err = adjacency.FindHalfEdge(m, 1, 3)
	require.NoError(t, err)
	assert.False(t, e.Valid())

	_, err = adjacency.FindHalfEdge(m, 0, 9)
	require.ErrorIs(t, err, core.ErrInvalidIndex)

	b := bowtie(t)
	e, err = adjacency.FindHalfEdge(b, 0, 1)
	require.NoError(t, err)
	assert.True(t, e.Is(0))
	e, err = adjacency.FindHalfEdge(b, 0, 3)
	require.NoError(t, err)
	assert.True(t, e.Is(6))
}

// TestBowtie_PartialFan documents that a vertex joining two fans reports the
// fan holding its Outgoing half-edge.
func TestBowtie_PartialFan(t *testing.T) {
	m := bowtie(t)

	hs, err := adjacency.VertexHalfEdges(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 11}, hs)

	faces, err := adjacency.VertexFaces(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, faces)
}

// TestShells checks connected components of faces.
func TestShells(t *testing.T) {
	m := build(t, builder.Triangle(), builder.Quad())
	shells, err := adjacency.Shells(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2}}, shells)

	m = build(t, builder.Tetrahedron(), builder.Cube())
	shells, err = adjacency.Shells(m)
	require.NoError(t, err)
	require.Len(t, shells, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, shells[0])
	assert.Len(t, shells[1], 12)

	empty := core.NewMesh()
	require.NoError(t, empty.Build())
	shells, err = adjacency.Shells(empty)
	require.NoError(t, err)
	assert.Empty(t, shells)
}

// TestErrors covers the shared failure modes of every query.
func TestErrors(t *testing.T) {
	_, err := adjacency.VertexHalfEdges(nil, 0)
	require.ErrorIs(t, err, adjacency.ErrMeshNil)
	_, err = adjacency.Shells(nil)
	require.ErrorIs(t, err, adjacency.ErrMeshNil)

	m := core.NewMesh()
	require.NoError(t, builder.Apply(m, nil, builder.Triangle()))
	queries := map[string]func() error{
		"VertexHalfEdges":  func() error { _, err := adjacency.VertexHalfEdges(m, 0); return err },
		"VertexFaces":      func() error { _, err := adjacency.VertexFaces(m, 0); return err },
		"VertexVertices":   func() error { _, err := adjacency.VertexVertices(m, 0); return err },
		"FaceFaces":        func() error { _, err := adjacency.FaceFaces(m, 0); return err },
		"FaceHalfEdges":    func() error { _, err := adjacency.FaceHalfEdges(m, 0); return err },
		"Valence":          func() error { _, err := adjacency.Valence(m, 0); return err },
		"IsBoundaryVertex": func() error { _, err := adjacency.IsBoundaryVertex(m, 0); return err },
		"FindHalfEdge":     func() error { _, err := adjacency.FindHalfEdge(m, 0, 1); return err },
		"VertexNormal":     func() error { _, err := adjacency.VertexNormal(m, 0); return err },
		"Shells":           func() error { _, err := adjacency.Shells(m); return err },
	}
	for name, q := range queries {
		assert.ErrorIs(t, q(), core.ErrUnbuiltTopology, name)
	}

	require.NoError(t, m.Build())
	_, err = adjacency.VertexFaces(m, 3)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
	_, err = adjacency.VertexVertices(m, -1)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
	_, err = adjacency.FaceFaces(m, 1)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
}
