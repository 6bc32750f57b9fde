// SPDX-License-Identifier: MIT
//
// File: check.go
// Role: Post-build verification of the half-edge invariants.

package core

import (
	"errors"
	"fmt"
)

// CheckTopology verifies the invariants a successful Build guarantees on
// consistently oriented manifold input:
//
//   - pair(pair(e)) == e
//   - start(pair(e)) == start(next(e)) whenever next(e) is defined
//   - following next |f| times from f.Border returns to f.Border, every
//     half-edge on the way belongs to f, and prev inverts next
//   - a boundary half-edge has neither next nor prev
//   - at most one half-edge per ordered (start, end) pair
//
// Every violation wraps ErrBrokenInvariant; all of them are returned joined.
// Meshes with PairReclaimed diagnostics are expected to fail this check.
//
// Complexity: O(H + Σ|f|).
func (m *Mesh) CheckTopology() error {
	return m.WithTopology(func(t Topology) error {
		var errs []error
		violate := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrBrokenInvariant)...))
		}

		hs := t.m.halfEdges
		inRange := func(x Index) bool {
			i, ok := x.Get()
			return !ok || i < len(hs)
		}

		seen := make(map[pairKey]int, len(hs))
		for e, h := range hs {
			if !inRange(h.Pair) || !inRange(h.Next) || !inRange(h.Prev) {
				violate("half-edge %d: reference out of range", e)
				continue
			}
			if p, ok := h.Pair.Get(); ok {
				if !hs[p].Pair.Is(e) {
					violate("half-edge %d: pair %d does not point back", e, p)
				}
				if n, ok := h.Next.Get(); ok && hs[p].Start != hs[n].Start {
					violate("half-edge %d: pair starts at %d, next starts at %d", e, hs[p].Start, hs[n].Start)
				}
				k := pairKey{h.Start, hs[p].Start}
				if other, dup := seen[k]; dup {
					violate("half-edges %d and %d share ordered pair (%d,%d)", other, e, k.from, k.to)
				}
				seen[k] = e
			}
			if h.IsBoundary() && (h.Next.Valid() || h.Prev.Valid()) {
				violate("half-edge %d: boundary half-edge with next/prev", e)
			}
		}

		for f := range t.m.faces {
			start, ok := t.m.faces[f].Border.Get()
			if !ok || start >= len(hs) {
				violate("face %d: no border", f)
				continue
			}
			k := len(t.m.faces[f].Vertices)
			cur := start
			for i := 0; i < k; i++ {
				h := hs[cur]
				if !h.Face.Is(f) {
					violate("face %d: half-edge %d belongs to face %s", f, cur, h.Face)
				}
				n, ok := h.Next.Get()
				if !ok || n >= len(hs) {
					violate("face %d: half-edge %d has no usable next", f, cur)
					break
				}
				if !hs[n].Prev.Is(cur) {
					violate("face %d: prev(next(%d)) != %d", f, cur, cur)
				}
				cur = n
			}
			if cur != start {
				violate("face %d: cycle of %d steps from %d ends at %d", f, k, start, cur)
			}
		}

		return errors.Join(errs...)
	})
}
