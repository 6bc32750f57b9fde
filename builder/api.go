// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves
//     cfg, runs cons in order, then builds the half-edge topology.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/DamonsJ/DamonsMesh/core"
)

// Constructor appends deterministic geometry to m using the resolved
// builderConfig. Constructors validate parameters before touching m and
// return sentinel errors (no panics).
type Constructor func(m *core.Mesh, cfg builderConfig) error

// BuildMesh creates a new core.Mesh with mesh options mopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// builds the topology. Any constructor error is wrapped with the context
// "BuildMesh: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus one Build.
func BuildMesh(mopts []core.MeshOption, bopts []BuilderOption, cons ...Constructor) (*core.Mesh, error) {
	m := core.NewMesh(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	if err := m.Build(); err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	return m, nil
}

// Apply runs constructors against an existing mesh without building it.
// Use it to append fixtures before adding hand-written faces.
func Apply(m *core.Mesh, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil mesh: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
