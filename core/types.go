// SPDX-License-Identifier: MIT
//
// This file declares Vertex, Face, HalfEdge, Mesh, MeshOption,
// Diagnostic, Kind, sentinel errors, and the NewMesh constructor.
//
// Errors:
//
//	ErrInvalidIndex         - index outside current array bounds.
//	ErrUnbuiltTopology      - adjacency/boundary query before a successful Build.
//	ErrNonManifoldAmbiguity - directed edge claimed twice, or ambiguous boundary.
//	ErrDegenerateFace       - face with <3 vertices or a repeated consecutive vertex.
//	ErrBrokenInvariant      - CheckTopology found a half-edge invariant violation.

package core

import (
	"errors"
	"sync"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// Sentinel errors for core mesh operations.
var (
	// ErrInvalidIndex indicates a vertex, face, normal or half-edge index
	// outside the current array bounds.
	ErrInvalidIndex = errors.New("core: index out of range")

	// ErrUnbuiltTopology indicates a topology query on a mesh whose
	// half-edge array has not been (re)built since the last structural edit.
	ErrUnbuiltTopology = errors.New("core: topology not built")

	// ErrNonManifoldAmbiguity indicates input the half-edge structure cannot
	// represent unambiguously (inconsistent orientation or non-manifold edges).
	ErrNonManifoldAmbiguity = errors.New("core: non-manifold ambiguity")

	// ErrDegenerateFace indicates a face with fewer than three vertices or
	// with the same vertex twice in a row.
	ErrDegenerateFace = errors.New("core: degenerate face")

	// ErrBrokenInvariant is wrapped by every violation CheckTopology reports.
	ErrBrokenInvariant = errors.New("core: topology invariant violated")
)

// DefaultMeshName is the name given to meshes built without WithName.
const DefaultMeshName = "unnamed_mesh"

// minFaceVertices is the smallest legal face cycle.
const minFaceVertices = 3

// Kind classifies a model. Values keep the bit layout of the model type
// flags: every concrete kind carries the hierarchy bit.
type Kind int64

const (
	kindHierarchyBit Kind = 0x01
	kindCloudBit     Kind = 0x100
	kindMeshBit      Kind = 0x200
)

const (
	// KindObject is the root kind.
	KindObject Kind = 0
	// KindHierarchy marks hierarchical objects.
	KindHierarchy = kindHierarchyBit
	// KindPointCloud marks point clouds.
	KindPointCloud = kindHierarchyBit | kindCloudBit
	// KindMesh marks polygonal meshes.
	KindMesh = kindHierarchyBit | kindMeshBit
)

// IsA reports whether k is exactly the kind other.
func (k Kind) IsA(other Kind) bool { return k == other }

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindHierarchy:
		return "hierarchy"
	case KindPointCloud:
		return "point_cloud"
	case KindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// Vertex is one entry of the geometry store.
type Vertex struct {
	// ID is the vertex's position in the store.
	ID int

	// Position is the vertex coordinate.
	Position r3.Vector

	// Outgoing is any half-edge starting at this vertex; absent until Build.
	Outgoing Index
}

// Face is an ordered vertex-index cycle.
type Face struct {
	// ID is the face's position in the store.
	ID int

	// Vertices lists the cycle's vertex indices (≥3), implicitly closed.
	Vertices []int

	// Border is any half-edge bordering this face; absent until Build.
	Border Index
}

// HalfEdge is one directed side of an undirected mesh edge.
//
// Start is always set for a built half-edge. Face absent means this side of
// the edge lies on the mesh boundary; Next and Prev are then absent too.
type HalfEdge struct {
	Start int   // origin vertex
	Pair  Index // opposite half-edge
	Face  Index // owning face
	Next  Index // successor in the owning face's cycle
	Prev  Index // predecessor in the owning face's cycle
}

// IsBoundary reports whether the half-edge has no owning face.
func (h HalfEdge) IsBoundary() bool { return !h.Face.Valid() }

// DiagnosticKind enumerates the non-fatal ambiguities observed while
// building or walking the topology.
type DiagnosticKind int

const (
	// PairReclaimed: an ordered (start, end) pair was claimed by a second face,
	// which overwrote the half-edge's Face (inconsistent orientation or a
	// non-manifold edge).
	PairReclaimed DiagnosticKind = iota + 1
	// BoundaryFork: a vertex has more than one outgoing boundary half-edge,
	// i.e. more than two incident boundary half-edges.
	BoundaryFork
	// BoundaryOpen: a boundary chain ended before returning to its first vertex.
	BoundaryOpen
)

// String returns the diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case PairReclaimed:
		return "pair_reclaimed"
	case BoundaryFork:
		return "boundary_fork"
	case BoundaryOpen:
		return "boundary_open"
	default:
		return "unknown"
	}
}

// Diagnostic records one NonManifoldAmbiguity observation. Fields that do
// not apply to a kind stay absent.
type Diagnostic struct {
	Kind         DiagnosticKind
	HalfEdge     Index
	Vertex       Index
	Face         Index
	PreviousFace Index
}

// MeshOption configures a Mesh before creation.
type MeshOption func(m *Mesh)

// WithName sets the model name. An empty name keeps DefaultMeshName.
func WithName(name string) MeshOption {
	return func(m *Mesh) {
		if name != "" {
			m.name = name
		}
	}
}

// WithID sets the model identifier.
func WithID(id uint64) MeshOption {
	return func(m *Mesh) { m.id = id }
}

// WithLogger routes build diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) MeshOption {
	return func(m *Mesh) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithStrictManifold makes Build fail with ErrNonManifoldAmbiguity when an
// ordered vertex pair is claimed by a second face, instead of recording a
// diagnostic and letting the later face win.
func WithStrictManifold() MeshOption {
	return func(m *Mesh) { m.strict = true }
}

// WithCapacity pre-sizes the vertex and face stores.
func WithCapacity(vertices, faces int) MeshOption {
	return func(m *Mesh) {
		if vertices > 0 {
			m.vertices = make([]Vertex, 0, vertices)
		}
		if faces > 0 {
			m.faces = make([]Face, 0, faces)
		}
	}
}

// Mesh owns the vertex, face, normal and half-edge arrays of one polygonal
// surface. mu guards every field.
type Mesh struct {
	mu sync.RWMutex

	id     uint64
	name   string
	logger *zap.Logger
	strict bool

	// geometry store
	vertices []Vertex
	faces    []Face
	normals  []r3.Vector

	// topology, valid only while built is true
	halfEdges   []HalfEdge
	diagnostics []Diagnostic
	built       bool
	linked      bool // Outgoing/Border may hold values
}

// NewMesh creates an empty, unbuilt Mesh.
// Complexity: O(1)
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{
		name:   DefaultMeshName,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
