package generic

import (
	"container/list"
	"iter"
)

type orderedEntry[K comparable, V any] struct {
	key   K
	value V
}

// OrderedMap is a map that remembers insertion order. Re-inserting an existing key
// replaces its value but keeps its original position. It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	index map[K]*list.Element
	order *list.List
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: make(map[K]*list.Element),
		order: list.New(),
	}
}

// Set inserts or replaces the value for key. It reports whether the key was newly inserted.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if el, ok := m.index[key]; ok {
		el.Value.(*orderedEntry[K, V]).value = value
		return false
	}
	m.index[key] = m.order.PushBack(&orderedEntry[K, V]{key: key, value: value})
	return true
}

// Ensure inserts value only when key is absent. It reports whether the key was inserted.
func (m *OrderedMap[K, V]) Ensure(key K, value V) bool {
	if _, ok := m.index[key]; ok {
		return false
	}
	return m.Set(key, value)
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*orderedEntry[K, V]).value, true
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	el, ok := m.index[key]
	if !ok {
		return false
	}
	m.order.Remove(el)
	delete(m.index, key)
	return true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.index)
}

// First returns the earliest inserted entry still present.
func (m *OrderedMap[K, V]) First() (K, V, bool) {
	el := m.order.Front()
	if el == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	e := el.Value.(*orderedEntry[K, V])
	return e.key, e.value, true
}

func (m *OrderedMap[K, V]) Clear() {
	m.index = make(map[K]*list.Element)
	m.order.Init()
}

// All iterates entries in insertion order. Deleting the current entry while
// iterating is allowed.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for el := m.order.Front(); el != nil; {
			next := el.Next()
			e := el.Value.(*orderedEntry[K, V])
			if !yield(e.key, e.value) {
				return
			}
			el = next
		}
	}
}

// Values iterates values in insertion order.
func (m *OrderedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Snapshot copies the values in insertion order.
func (m *OrderedMap[K, V]) Snapshot() []V {
	out := make([]V, 0, len(m.index))
	for v := range m.Values() {
		out = append(out, v)
	}
	return out
}
