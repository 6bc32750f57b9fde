package adjacency

import (
	"fmt"

	"github.com/DamonsJ/DamonsMesh/core"
)

// Shells finds the edge-connected components of faces ("shells").
// Returns one slice of face indices per component, each sorted ascending;
// components are ordered by their smallest face.
//
// Time:   O(F + H), breadth-first over FaceFaces.
// Memory: O(F) for visited flags and output.
func Shells(m *core.Mesh) ([][]int, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	var comps [][]int
	err := m.WithTopology(func(t core.Topology) error {
		n := t.FaceCount()
		seen := make([]bool, n)

		for f0 := 0; f0 < n; f0++ {
			if seen[f0] {
				continue
			}
			// BFS to collect component
			queue := []int{f0}
			seen[f0] = true
			for qi := 0; qi < len(queue); qi++ {
				nbrs, err := faceFaces(t, queue[qi])
				if err != nil {
					return err
				}
				for _, g := range nbrs {
					if !seen[g] {
						seen[g] = true
						queue = append(queue, g)
					}
				}
			}
			comps = append(comps, sortedSet(queue))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Shells: %w", err)
	}

	return comps, nil
}
