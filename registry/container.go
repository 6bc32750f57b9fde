package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/DamonsJ/DamonsMesh/core"
)

// Container stores models by ID.
type Container struct {
	mu     sync.RWMutex
	models map[uint64]Model
	ids    IDGenerator
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{models: make(map[uint64]Model)}
}

// NextID returns a fresh ID not yet issued by this container.
func (c *Container) NextID() uint64 { return c.ids.Next() }

// Register stores model under model.ID(). An ID already present yields
// ErrDuplicateID and leaves the container unchanged. Registering an ID
// the generator has not issued advances the generator past it.
func (c *Container) Register(model Model) error {
	if model == nil {
		return ErrNilModel
	}
	id := model.ID()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.models[id]; ok {
		return fmt.Errorf("Register(%d): %w", id, ErrDuplicateID)
	}
	c.models[id] = model
	c.ids.Update(id)

	return nil
}

// Get returns the model stored under id.
func (c *Container) Get(id uint64) (Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	model, ok := c.models[id]
	if !ok {
		return nil, fmt.Errorf("Get(%d): %w", id, ErrModelNotFound)
	}

	return model, nil
}

// Erase removes id from the container.
func (c *Container) Erase(id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.models[id]; !ok {
		return fmt.Errorf("Erase(%d): %w", id, ErrModelNotFound)
	}
	delete(c.models, id)

	return nil
}

// Exists reports whether id is stored.
func (c *Container) Exists(id uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.models[id]

	return ok
}

// Len returns the number of stored models.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.models)
}

// IDs returns the stored IDs in ascending order.
func (c *Container) IDs() []uint64 {
	c.mu.RLock()
	ids := make([]uint64, 0, len(c.models))
	for id := range c.models {
		ids = append(ids, id)
	}
	c.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// Meshes returns the stored models of KindMesh that are *core.Mesh, in
// ascending ID order.
func (c *Container) Meshes() []*core.Mesh {
	ids := c.IDs()

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*core.Mesh, 0, len(ids))
	for _, id := range ids {
		model, ok := c.models[id]
		if !ok || !model.Kind().IsA(core.KindMesh) {
			continue
		}
		if m, ok := model.(*core.Mesh); ok {
			out = append(out, m)
		}
	}

	return out
}

// Clear drops every model and resets the ID generator.
func (c *Container) Clear() {
	c.mu.Lock()
	c.models = make(map[uint64]Model)
	c.ids.Reset()
	c.mu.Unlock()
}
