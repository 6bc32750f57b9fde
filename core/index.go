// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Optional index value used for every "may be absent" reference
//       (Outgoing, Border, Pair, Face, Next, Prev).

package core

import "strconv"

// Index is an optional non-negative index into one of the mesh arrays.
// The zero value is absent.
type Index struct {
	v  int
	ok bool
}

// Some returns a present Index holding i. A negative i yields an absent
// Index, so callers cannot smuggle a sentinel through.
func Some(i int) Index {
	if i < 0 {
		return Index{}
	}

	return Index{v: i, ok: true}
}

// None returns the absent Index.
func None() Index { return Index{} }

// Get returns the held index and whether it is present.
func (x Index) Get() (int, bool) { return x.v, x.ok }

// Valid reports whether the index is present.
func (x Index) Valid() bool { return x.ok }

// Or returns the held index, or def when absent.
func (x Index) Or(def int) int {
	if !x.ok {
		return def
	}

	return x.v
}

// Is reports whether the index is present and equal to i.
func (x Index) Is(i int) bool { return x.ok && x.v == i }

// String renders the index, or "none" when absent.
func (x Index) String() string {
	if !x.ok {
		return "none"
	}

	return strconv.Itoa(x.v)
}
