// Package registry keeps models addressable by numeric ID.
//
// A Container maps IDs to Model values (anything exposing ID, Name, Kind
// and Bounds, such as *core.Mesh) and owns an IDGenerator that hands out
// fresh IDs. Containers are ordinary values passed explicitly; there is no
// process-wide instance.
//
//	reg := registry.NewContainer()
//	m := core.NewMesh(core.WithID(reg.NextID()), core.WithName("part"))
//	if err := reg.Register(m); err != nil { ... }
//
// All Container methods are safe for concurrent use.
package registry
