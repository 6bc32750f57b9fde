package builder_test

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/DamonsJ/DamonsMesh/builder"
	"github.com/DamonsJ/DamonsMesh/core"
)

// ExampleBuildMesh composes two shapes into one built mesh.
func ExampleBuildMesh() {
	m, err := builder.BuildMesh(
		[]core.MeshOption{core.WithName("fixtures")},
		[]builder.BuilderOption{builder.WithOrigin(r3.Vector{Z: 5})},
		builder.Grid(2, 2),
		builder.Cube(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := m.Stats()
	fmt.Println(m.Name(), s.Vertices, s.Faces, s.HalfEdges, s.BoundaryHalfEdges)

	// Output:
	// fixtures 17 20 68 8
}
