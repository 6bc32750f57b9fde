// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin = (0,0,0)
//   • scale  = 1.0

package builder

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/DamonsJ/DamonsMesh/core"
)

const defaultScale = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	origin r3.Vector
	scale  float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a unit-shape point into mesh space.
func (c builderConfig) place(p r3.Vector) r3.Vector {
	return c.origin.Add(p.Mul(c.scale))
}

// emit appends pts and faces (indices relative to pts) to m and returns the
// offset of the first appended vertex.
func (c builderConfig) emit(m *core.Mesh, method string, pts []r3.Vector, faces [][]int) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: nil mesh: %w", method, ErrConstructFailed)
	}
	off := m.VertexCount()
	for _, p := range pts {
		m.AddVertex(c.place(p))
	}
	ids := make([]int, 0, 4)
	for fi, f := range faces {
		ids = ids[:0]
		for _, v := range f {
			ids = append(ids, off+v)
		}
		if _, err := m.AddFace(ids...); err != nil {
			return off, fmt.Errorf("%s: face %d: %v: %w", method, fi, err, ErrConstructFailed)
		}
	}

	return off, nil
}
