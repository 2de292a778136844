package ecs

import "github.com/milk9111/burrow/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id. It reports
// false if e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Count returns the number of entities carrying the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := lookup(w, kind)
	if s == nil {
		return 0
	}
	return s.len()
}

func lookup[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	typed, _ := s.(*sparseSet[T])
	return typed
}

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if s := lookup(w, kind); s != nil {
		return s
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
