package boundary

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/DamonsJ/DamonsMesh/core"
)

// FindBoundaries returns the boundary loops of m.
//
// Implementation:
//   - Stage 1: Collect boundary half-edges in index order and index them by
//     start vertex; flag start vertices owning more than one.
//   - Stage 2: Start a loop at the lowest unconsumed boundary half-edge and
//     record its start vertex.
//   - Stage 3: Repeatedly take the unconsumed boundary half-edge starting at
//     the current half-edge's end vertex and append that vertex, until the
//     loop's first vertex recurs.
//   - Stage 4: Repeat from Stage 2 until every boundary half-edge is consumed.
func FindBoundaries(m *core.Mesh, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{Loops: []Loop{}}
	err := m.WithTopology(func(t core.Topology) error {
		w := &walker{t: t, opts: o, res: res, byStart: make(map[int][]int)}

		return w.run()
	})
	if err != nil {
		return nil, fmt.Errorf("FindBoundaries: %w", err)
	}

	return res, nil
}

// IsClosed reports whether m has no boundary half-edge.
func IsClosed(m *core.Mesh) (bool, error) {
	if m == nil {
		return false, ErrMeshNil
	}
	closed := true
	err := m.WithTopology(func(t core.Topology) error {
		for e := 0; e < t.HalfEdgeCount(); e++ {
			h, err := t.HalfEdge(e)
			if err != nil {
				return err
			}
			if h.IsBoundary() {
				closed = false
				return nil
			}
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("IsClosed: %w", err)
	}

	return closed, nil
}

// walker holds the chaining state of one FindBoundaries call.
type walker struct {
	t    core.Topology
	opts Options
	res  *Result

	order   []int         // boundary half-edges, ascending
	byStart map[int][]int // start vertex → boundary half-edges, ascending
	used    map[int]bool  // consumed boundary half-edges
}

func (w *walker) run() error {
	for e := 0; e < w.t.HalfEdgeCount(); e++ {
		h, err := w.t.HalfEdge(e)
		if err != nil {
			return err
		}
		if h.IsBoundary() {
			w.order = append(w.order, e)
			w.byStart[h.Start] = append(w.byStart[h.Start], e)
		}
	}
	w.used = make(map[int]bool, len(w.order))

	forks := make([]int, 0)
	for v, hs := range w.byStart {
		if len(hs) > 1 {
			forks = append(forks, v)
		}
	}
	slices.Sort(forks)
	for _, v := range forks {
		d := core.Diagnostic{Kind: core.BoundaryFork, Vertex: core.Some(v)}
		if err := w.report(d, zap.Int("vertex", v), zap.Int("outgoing", len(w.byStart[v]))); err != nil {
			return err
		}
	}

	for _, s := range w.order {
		if w.used[s] {
			continue
		}
		loop, err := w.chain(s)
		if err != nil {
			return err
		}
		w.res.Loops = append(w.res.Loops, loop)
	}

	return nil
}

// chain consumes boundary half-edges from s until the loop closes.
func (w *walker) chain(s int) (Loop, error) {
	w.used[s] = true
	h, err := w.t.HalfEdge(s)
	if err != nil {
		return nil, err
	}
	first := h.Start
	loop := Loop{first}

	cur := s
	for {
		end, err := w.t.Target(cur)
		if err != nil {
			return nil, err
		}
		if end == first {
			return loop, nil
		}
		next, ok := w.take(end)
		if !ok {
			d := core.Diagnostic{Kind: core.BoundaryOpen, HalfEdge: core.Some(cur), Vertex: core.Some(end)}
			if err := w.report(d, zap.Int("half_edge", cur), zap.Int("vertex", end), zap.Int("first", first)); err != nil {
				return nil, err
			}

			return loop, nil
		}
		loop = append(loop, end)
		cur = next
	}
}

// take pops the lowest unconsumed boundary half-edge starting at v.
func (w *walker) take(v int) (int, bool) {
	hs := w.byStart[v]
	for len(hs) > 0 {
		e := hs[0]
		hs = hs[1:]
		if !w.used[e] {
			w.byStart[v] = hs
			w.used[e] = true

			return e, true
		}
	}
	w.byStart[v] = hs

	return 0, false
}

// report records d, logs it, and fails under Strict.
func (w *walker) report(d core.Diagnostic, fields ...zap.Field) error {
	if w.opts.Strict {
		return d.Err()
	}
	w.opts.Logger.Warn("ambiguous boundary", append(fields, zap.Stringer("kind", d.Kind))...)
	w.res.Diagnostics = append(w.res.Diagnostics, d)

	return nil
}
