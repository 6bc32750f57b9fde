// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"math"

	"github.com/golang/geo/r3"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// any geometry is emitted.
type BuilderOption func(*builderConfig)

// WithOrigin translates every generated position by o.
func WithOrigin(o r3.Vector) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithScale multiplies every generated position by s before translation.
// Panics if s is not a positive finite number.
func WithScale(s float64) BuilderOption {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) {
		c.scale = s
	}
}
