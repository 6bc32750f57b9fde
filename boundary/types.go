package boundary

import (
	"errors"

	"go.uber.org/zap"

	"github.com/DamonsJ/DamonsMesh/core"
)

// ErrMeshNil is returned when a nil *core.Mesh is passed.
var ErrMeshNil = errors.New("boundary: mesh is nil")

// Option configures FindBoundaries.
type Option func(*Options)

// Options holds the FindBoundaries settings.
type Options struct {
	// Logger receives one Warn entry per diagnostic. Defaults to a no-op logger.
	Logger *zap.Logger

	// Strict makes the first ambiguity fail the call.
	Strict bool
}

// DefaultOptions returns Options with a no-op logger and best-effort
// chaining.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Strict: false,
	}
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrict makes ambiguous chaining fail with core.ErrNonManifoldAmbiguity.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// Loop is a cyclic sequence of vertex indices; consecutive vertices, and the
// last and first, are joined by a boundary half-edge.
type Loop []int

// Len returns the number of vertices (and edges) of the loop.
func (l Loop) Len() int { return len(l) }

// Edges returns the loop's vertex pairs in order, closing pair included.
func (l Loop) Edges() [][2]int {
	out := make([][2]int, len(l))
	for i, v := range l {
		out[i] = [2]int{v, l[(i+1)%len(l)]}
	}

	return out
}

// Result captures the outcome of FindBoundaries.
type Result struct {
	// Loops holds one loop per boundary component, in order of their
	// lowest boundary half-edge.
	Loops []Loop

	// Diagnostics lists fork vertices and open chains met on the way.
	Diagnostics []core.Diagnostic
}
