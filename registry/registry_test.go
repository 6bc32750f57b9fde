package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamonsJ/DamonsMesh/core"
	"github.com/DamonsJ/DamonsMesh/registry"
)

// cloud is a non-mesh model used to exercise kind filtering.
type cloud struct{ id uint64 }

func (c cloud) ID() uint64       { return c.id }
func (c cloud) Name() string     { return "cloud" }
func (c cloud) Kind() core.Kind  { return core.KindPointCloud }
func (c cloud) Bounds() core.Box { return core.EmptyBox() }

func TestIDGenerator(t *testing.T) {
	var g registry.IDGenerator
	assert.Zero(t, g.Last())
	assert.Equal(t, uint64(1), g.Next())
	assert.Equal(t, uint64(2), g.Next())
	assert.Equal(t, uint64(2), g.Last())

	g.Update(10)
	assert.Equal(t, uint64(11), g.Next())
	g.Update(3)
	assert.Equal(t, uint64(11), g.Last(), "Update never moves backwards")

	g.Reset()
	assert.Equal(t, uint64(1), g.Next())
}

func TestIDGenerator_Concurrent(t *testing.T) {
	var g registry.IDGenerator
	const workers, per = 8, 500
	var (
		mu   sync.Mutex
		seen = make(map[uint64]bool, workers*per)
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, per)
			for i := 0; i < per; i++ {
				local = append(local, g.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*per)
	assert.Equal(t, uint64(workers*per), g.Last())
}

func TestContainer_Lifecycle(t *testing.T) {
	c := registry.NewContainer()
	assert.Zero(t, c.Len())

	a := core.NewMesh(core.WithID(c.NextID()), core.WithName("a"))
	b := core.NewMesh(core.WithID(c.NextID()), core.WithName("b"))
	require.NoError(t, c.Register(a))
	require.NoError(t, c.Register(b))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Exists(1))
	assert.Equal(t, []uint64{1, 2}, c.IDs())

	got, err := c.Get(2)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Equal(t, "b", got.Name())

	dup := core.NewMesh(core.WithID(1))
	require.ErrorIs(t, c.Register(dup), registry.ErrDuplicateID)
	got, err = c.Get(1)
	require.NoError(t, err)
	assert.Same(t, a, got, "failed Register leaves the original in place")

	require.NoError(t, c.Erase(1))
	assert.False(t, c.Exists(1))
	require.ErrorIs(t, c.Erase(1), registry.ErrModelNotFound)
	_, err = c.Get(1)
	require.ErrorIs(t, err, registry.ErrModelNotFound)

	require.ErrorIs(t, c.Register(nil), registry.ErrNilModel)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, uint64(1), c.NextID())
}

func TestContainer_RegisterAdvancesGenerator(t *testing.T) {
	c := registry.NewContainer()
	require.NoError(t, c.Register(core.NewMesh(core.WithID(40))))
	assert.Equal(t, uint64(41), c.NextID())
}

func TestContainer_Meshes(t *testing.T) {
	c := registry.NewContainer()
	m1 := core.NewMesh(core.WithID(5))
	m2 := core.NewMesh(core.WithID(2))
	require.NoError(t, c.Register(m1))
	require.NoError(t, c.Register(cloud{id: 3}))
	require.NoError(t, c.Register(m2))

	meshes := c.Meshes()
	require.Len(t, meshes, 2)
	assert.Same(t, m2, meshes[0])
	assert.Same(t, m1, meshes[1])
	assert.Equal(t, []uint64{2, 3, 5}, c.IDs())

	got, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, core.KindPointCloud, got.Kind())
	assert.True(t, got.Bounds().IsEmpty())
}

func TestContainer_Concurrent(t *testing.T) {
	c := registry.NewContainer()
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			m := core.NewMesh(core.WithID(c.NextID()))
			require.NoError(t, c.Register(m))
			_ = c.IDs()
			_ = c.Meshes()
		}()
	}
	wg.Wait()
	assert.Equal(t, n, c.Len())
	assert.Len(t, c.Meshes(), n)
}
