// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Model capability interface, ID generator and sentinel errors.

package registry

import (
	"errors"
	"sync/atomic"

	"github.com/DamonsJ/DamonsMesh/core"
)

// Sentinel errors for registry operations.
var (
	// ErrNilModel indicates a nil Model passed to Register.
	ErrNilModel = errors.New("registry: model is nil")

	// ErrDuplicateID indicates Register was called with an ID already held.
	ErrDuplicateID = errors.New("registry: duplicate model id")

	// ErrModelNotFound indicates a lookup or erase of an unknown ID.
	ErrModelNotFound = errors.New("registry: model not found")
)

// Model is what a Container stores. *core.Mesh satisfies it.
type Model interface {
	ID() uint64
	Name() string
	Kind() core.Kind
	Bounds() core.Box
}

var _ Model = (*core.Mesh)(nil)

// IDGenerator hands out increasing model IDs. The zero value is ready to use
// and its first Next returns 1, leaving 0 as "unassigned".
type IDGenerator struct {
	last atomic.Uint64
}

// Next returns a fresh ID.
func (g *IDGenerator) Next() uint64 { return g.last.Add(1) }

// Last returns the most recently issued (or observed) ID.
func (g *IDGenerator) Last() uint64 { return g.last.Load() }

// Update records an externally assigned id so that Next never returns it
// or anything below it.
func (g *IDGenerator) Update(id uint64) {
	for {
		cur := g.last.Load()
		if id <= cur || g.last.CompareAndSwap(cur, id) {
			return
		}
	}
}

// Reset restarts the sequence so the next ID is 1.
func (g *IDGenerator) Reset() { g.last.Store(0) }
