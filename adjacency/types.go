// Package adjacency defines the sentinel errors shared by all queries.
package adjacency

import "errors"

// ErrMeshNil is returned when a nil *core.Mesh is passed to a query.
var ErrMeshNil = errors.New("adjacency: mesh is nil")
