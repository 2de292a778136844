package ecs

import (
	"fmt"

	"github.com/milk9111/burrow/ecs/component"
)

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return fmt.Errorf("ecs: add %s: %w", kind, component.ErrInvalidComponentKind)
	}
	if value == nil {
		return fmt.Errorf("ecs: add %s to %s: %w", kind, e, component.ErrNilComponent)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("ecs: add %s to %s: %w", kind, e, component.ErrEntityNotAlive)
	}
	storeFor(w, kind).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := lookup(w, kind)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := lookup(w, kind)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// First returns the first live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := lookup(w, kind)
	if s == nil {
		return 0, false
	}
	for _, id := range s.dense {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := lookup(w, kind)
	if s == nil {
		return
	}
	for _, id := range s.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := lookup(w, kb)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := sb.get(e.id()); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := lookup(w, kc)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}
