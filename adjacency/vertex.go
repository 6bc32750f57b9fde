package adjacency

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r3"

	"github.com/DamonsJ/DamonsMesh/core"
)

// VertexHalfEdges returns the half-edges starting at vertex v.
// An isolated vertex (referenced by no face) yields an empty result.
func VertexHalfEdges(m *core.Mesh, v int) ([]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var out []int
	err := m.WithTopology(func(t core.Topology) error {
		var err error
		out, err = vertexHalfEdges(t, v)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("VertexHalfEdges(%d): %w", v, err)
	}

	return out, nil
}

// VertexFaces returns the distinct faces incident to vertex v.
func VertexFaces(m *core.Mesh, v int) ([]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var out []int
	err := m.WithTopology(func(t core.Topology) error {
		var err error
		out, err = vertexFaces(t, v)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("VertexFaces(%d): %w", v, err)
	}

	return out, nil
}

// VertexVertices returns the one-ring of vertex v: every vertex joined to v
// by an edge, once each.
func VertexVertices(m *core.Mesh, v int) ([]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var out []int
	err := m.WithTopology(func(t core.Topology) error {
		var err error
		out, err = vertexVertices(t, v)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("VertexVertices(%d): %w", v, err)
	}

	return out, nil
}

// Valence returns the number of edges incident to vertex v.
func Valence(m *core.Mesh, v int) (int, error) {
	ring, err := VertexVertices(m, v)
	if err != nil {
		return 0, err
	}

	return len(ring), nil
}

// IsBoundaryVertex reports whether vertex v lies on an open edge, i.e. one
// of its incident half-edges, or the pair of one, has no face. Isolated
// vertices are not on the boundary.
func IsBoundaryVertex(m *core.Mesh, v int) (bool, error) {
	if m == nil {
		return false, ErrMeshNil
	}
	var onBoundary bool
	err := m.WithTopology(func(t core.Topology) error {
		hs, err := vertexHalfEdges(t, v)
		if err != nil {
			return err
		}
		for _, e := range hs {
			h, err := t.HalfEdge(e)
			if err != nil {
				return err
			}
			if h.IsBoundary() {
				onBoundary = true
				return nil
			}
			if p, ok := h.Pair.Get(); ok {
				ph, err := t.HalfEdge(p)
				if err != nil {
					return err
				}
				if ph.IsBoundary() {
					onBoundary = true
					return nil
				}
			}
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("IsBoundaryVertex(%d): %w", v, err)
	}

	return onBoundary, nil
}

// FindHalfEdge returns the half-edge running from → to, or an absent Index
// when the two vertices share no edge.
func FindHalfEdge(m *core.Mesh, from, to int) (core.Index, error) {
	if m == nil {
		return core.None(), ErrMeshNil
	}
	var found core.Index
	err := m.WithTopology(func(t core.Topology) error {
		if _, err := t.Outgoing(to); err != nil {
			return err
		}
		hs, err := vertexHalfEdges(t, from)
		if err != nil {
			return err
		}
		for _, e := range hs {
			end, err := t.Target(e)
			if err != nil {
				return err
			}
			if end == to {
				found = core.Some(e)
				return nil
			}
		}
		// The fan sweep misses half-edges of a second fan at a
		// non-manifold vertex; fall back to a scan.
		for e := 0; e < t.HalfEdgeCount(); e++ {
			h, err := t.HalfEdge(e)
			if err != nil {
				return err
			}
			if h.Start != from {
				continue
			}
			if end, err := t.Target(e); err == nil && end == to {
				found = core.Some(e)
				return nil
			}
		}

		return nil
	})
	if err != nil {
		return core.None(), fmt.Errorf("FindHalfEdge(%d,%d): %w", from, to, err)
	}

	return found, nil
}

// VertexNormal returns the area-weighted mean normal of the faces around
// vertex v, normalised. A vertex with no incident face area yields the zero
// vector.
func VertexNormal(m *core.Mesh, v int) (r3.Vector, error) {
	if m == nil {
		return r3.Vector{}, ErrMeshNil
	}
	var sum r3.Vector
	err := m.WithTopology(func(t core.Topology) error {
		faces, err := vertexFaces(t, v)
		if err != nil {
			return err
		}
		for _, f := range faces {
			a, err := t.FaceAreaVector(f)
			if err != nil {
				return err
			}
			sum = sum.Add(a)
		}

		return nil
	})
	if err != nil {
		return r3.Vector{}, fmt.Errorf("VertexNormal(%d): %w", v, err)
	}
	if sum.Norm2() == 0 {
		return r3.Vector{}, nil
	}

	return sum.Normalize(), nil
}

// vertexHalfEdges sweeps the fan around v in both directions and returns
// the union, sorted.
func vertexHalfEdges(t core.Topology, v int) ([]int, error) {
	out, err := t.Outgoing(v)
	if err != nil {
		return nil, err
	}
	start, ok := out.Get()
	if !ok {
		return []int{}, nil
	}

	seen := map[int]struct{}{start: {}}
	result := []int{start}
	// A sweep can never visit more half-edges than exist, which bounds the
	// walk even on corrupted input.
	limit := t.HalfEdgeCount()

	// next(pair(e)) rotates to the following outgoing half-edge.
	cur := start
	for i := 0; i < limit; i++ {
		h, err := t.HalfEdge(cur)
		if err != nil {
			return nil, err
		}
		p, ok := h.Pair.Get()
		if !ok {
			break
		}
		ph, err := t.HalfEdge(p)
		if err != nil {
			return nil, err
		}
		n, ok := ph.Next.Get()
		if !ok {
			break
		}
		if _, dup := seen[n]; dup {
			break
		}
		seen[n] = struct{}{}
		result = append(result, n)
		cur = n
	}

	// pair(prev(e)) rotates the other way, across the gap the first sweep hit.
	cur = start
	for i := 0; i < limit; i++ {
		h, err := t.HalfEdge(cur)
		if err != nil {
			return nil, err
		}
		pr, ok := h.Prev.Get()
		if !ok {
			break
		}
		prh, err := t.HalfEdge(pr)
		if err != nil {
			return nil, err
		}
		n, ok := prh.Pair.Get()
		if !ok {
			break
		}
		if _, dup := seen[n]; dup {
			break
		}
		seen[n] = struct{}{}
		result = append(result, n)
		cur = n
	}

	slices.Sort(result)

	return result, nil
}

func vertexFaces(t core.Topology, v int) ([]int, error) {
	hs, err := vertexHalfEdges(t, v)
	if err != nil {
		return nil, err
	}
	faces := make([]int, 0, len(hs))
	for _, e := range hs {
		h, err := t.HalfEdge(e)
		if err != nil {
			return nil, err
		}
		if f, ok := h.Face.Get(); ok {
			faces = append(faces, f)
		}
	}

	return sortedSet(faces), nil
}

func vertexVertices(t core.Topology, v int) ([]int, error) {
	hs, err := vertexHalfEdges(t, v)
	if err != nil {
		return nil, err
	}
	ring := make([]int, 0, len(hs))
	for _, e := range hs {
		h, err := t.HalfEdge(e)
		if err != nil {
			return nil, err
		}
		p, ok := h.Pair.Get()
		if !ok {
			continue
		}
		ph, err := t.HalfEdge(p)
		if err != nil {
			return nil, err
		}
		ring = append(ring, ph.Start)
	}

	return sortedSet(ring), nil
}

// sortedSet sorts xs in place and drops duplicates.
func sortedSet(xs []int) []int {
	slices.Sort(xs)

	return slices.Compact(xs)
}
