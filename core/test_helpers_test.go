// SPDX-License-Identifier: MIT
// Package core_test shares small fixtures between the core test files.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DamonsJ/DamonsMesh/core"
)

// newTriangle returns the unbuilt triangle (0,1,2) in the z=0 plane.
func newTriangle(t testing.TB, opts ...core.MeshOption) *core.Mesh {
	t.Helper()
	m := core.NewMesh(opts...)
	m.AddPoint(0, 0, 0)
	m.AddPoint(1, 0, 0)
	m.AddPoint(0, 1, 0)
	_, err := m.AddTriangle(0, 1, 2)
	require.NoError(t, err)

	return m
}

// newQuad returns the unbuilt unit square split into (0,1,2) and (0,2,3).
func newQuad(t testing.TB, opts ...core.MeshOption) *core.Mesh {
	t.Helper()
	m := core.NewMesh(opts...)
	m.AddPoint(0, 0, 0)
	m.AddPoint(1, 0, 0)
	m.AddPoint(1, 1, 0)
	m.AddPoint(0, 1, 0)
	_, err := m.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = m.AddTriangle(0, 2, 3)
	require.NoError(t, err)

	return m
}

// newReclaimed returns an unbuilt mesh whose two faces both claim (0,1).
func newReclaimed(t testing.TB, opts ...core.MeshOption) *core.Mesh {
	t.Helper()
	m := core.NewMesh(opts...)
	m.AddPoint(0, 0, 0)
	m.AddPoint(1, 0, 0)
	m.AddPoint(0, 1, 0)
	m.AddPoint(0, -1, 0)
	_, err := m.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = m.AddTriangle(0, 1, 3)
	require.NoError(t, err)

	return m
}

// mustBuild builds m and fails the test on error.
func mustBuild(t testing.TB, m *core.Mesh) *core.Mesh {
	t.Helper()
	require.NoError(t, m.Build())

	return m
}
