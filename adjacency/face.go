package adjacency

import (
	"fmt"

	"github.com/DamonsJ/DamonsMesh/core"
)

// FaceFaces returns the distinct faces sharing an edge with face f.
// It walks f's cycle from its Border via next and collects the face on the
// other side of every paired half-edge.
func FaceFaces(m *core.Mesh, f int) ([]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var out []int
	err := m.WithTopology(func(t core.Topology) error {
		var err error
		out, err = faceFaces(t, f)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("FaceFaces(%d): %w", f, err)
	}

	return out, nil
}

// FaceHalfEdges returns the half-edges of face f in cycle order, starting
// at its Border.
func FaceHalfEdges(m *core.Mesh, f int) ([]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var out []int
	err := m.WithTopology(func(t core.Topology) error {
		var err error
		out, err = faceCycle(t, f)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("FaceHalfEdges(%d): %w", f, err)
	}

	return out, nil
}

// faceCycle follows next |f| times from f's Border. The walk stops early
// when a next link is missing, which only happens after a PairReclaimed
// overwrite.
func faceCycle(t core.Topology, f int) ([]int, error) {
	k, err := t.FaceSize(f)
	if err != nil {
		return nil, err
	}
	border, err := t.Border(f)
	if err != nil {
		return nil, err
	}
	cur, ok := border.Get()
	if !ok {
		return []int{}, nil
	}

	cycle := make([]int, 0, k)
	for i := 0; i < k; i++ {
		cycle = append(cycle, cur)
		h, err := t.HalfEdge(cur)
		if err != nil {
			return nil, err
		}
		n, ok := h.Next.Get()
		if !ok {
			break
		}
		cur = n
	}

	return cycle, nil
}

func faceFaces(t core.Topology, f int) ([]int, error) {
	cycle, err := faceCycle(t, f)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(cycle))
	for _, e := range cycle {
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
		if g, ok := ph.Face.Get(); ok && g != f {
			out = append(out, g)
		}
	}

	return sortedSet(out), nil
}
