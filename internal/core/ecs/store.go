package ecs

import "slices"

// Removable is implemented by all component stores so the World can
// bulk-remove an entity's data from every store on despawn.
type Removable interface {
	Remove(id EntityID) bool
}

// OrderedStore is a generic typed store that remembers insertion order.
// Iteration works on a snapshot of the order, so callbacks may remove any
// entity (including the current one) without skipping or revisiting others.
type OrderedStore[T any] struct {
	data  map[EntityID]*T
	order []EntityID
}

func NewOrderedStore[T any]() *OrderedStore[T] {
	return &OrderedStore[T]{
		data:  make(map[EntityID]*T, 16),
		order: make([]EntityID, 0, 16),
	}
}

// Set inserts or replaces c. A replaced entity keeps its original position.
func (s *OrderedStore[T]) Set(id EntityID, c *T) {
	if _, ok := s.data[id]; !ok {
		s.order = append(s.order, id)
	}
	s.data[id] = c
}

func (s *OrderedStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *OrderedStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

// Remove deletes id and reports whether it was present.
func (s *OrderedStore[T]) Remove(id EntityID) bool {
	if _, ok := s.data[id]; !ok {
		return false
	}
	delete(s.data, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

func (s *OrderedStore[T]) Len() int {
	return len(s.order)
}

// IDs returns a copy of the current insertion order.
func (s *OrderedStore[T]) IDs() []EntityID {
	return slices.Clone(s.order)
}

// Each visits entities oldest first. Returning false stops the walk.
func (s *OrderedStore[T]) Each(fn func(EntityID, *T) bool) {
	for _, id := range slices.Clone(s.order) {
		c, ok := s.data[id]
		if !ok {
			continue
		}
		if !fn(id, c) {
			return
		}
	}
}

// EachReverse visits entities newest first. Returning false stops the walk.
func (s *OrderedStore[T]) EachReverse(fn func(EntityID, *T) bool) {
	snapshot := slices.Clone(s.order)
	for i := len(snapshot) - 1; i >= 0; i-- {
		id := snapshot[i]
		c, ok := s.data[id]
		if !ok {
			continue
		}
		if !fn(id, c) {
			return
		}
	}
}

// Clear removes every entity and returns the removed ids, oldest first.
func (s *OrderedStore[T]) Clear() []EntityID {
	removed := s.order
	s.data = make(map[EntityID]*T, 16)
	s.order = make([]EntityID, 0, 16)
	return removed
}
