// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not append its
// geometry (nil constructor, nil mesh, or a rejected face).
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tags used as error context.
const (
	methodTriangle    = "Triangle"
	methodQuad        = "Quad"
	methodGrid        = "Grid"
	methodFan         = "Fan"
	methodAnnulus     = "Annulus"
	methodTetrahedron = "Tetrahedron"
	methodOctahedron  = "Octahedron"
	methodCube        = "Cube"
)

// Minimum shape parameters.
const (
	MinGridDim     = 1
	MinFanRim      = 3
	MinAnnulusRing = 3
)

// tooFew reports a parameter below its minimum.
func tooFew(method, param string, got, floor int) error {
	return fmt.Errorf("%s: %s=%d < %d: %w", method, param, got, floor, ErrTooFewVertices)
}
