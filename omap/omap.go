// Package omap implements an ordered map whose entries live in an arena.
package omap

import (
	"cmp"
	"sort"

	"github.com/sharkee26/lab4-prog/alloc"
)

// Entry is the element type an arena backing a Map must be bound to.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Map keeps entries sorted by key. Entry storage comes from the arena one
// slot at a time; the map itself only holds handles, so arena growth
// cannot invalidate its index.
type Map[K cmp.Ordered, V any] struct {
	arena *alloc.Arena[Entry[K, V]]
	refs  []alloc.Ref
}

// New returns a map backed by a. A nil arena gets the default block size.
func New[K cmp.Ordered, V any](a *alloc.Arena[Entry[K, V]]) *Map[K, V] {
	if a == nil {
		a = alloc.New[Entry[K, V]](alloc.DefaultBlockSize)
	}
	return &Map[K, V]{arena: a}
}

func (m *Map[K, V]) search(k K) (int, bool) {
	i := sort.Search(len(m.refs), func(i int) bool {
		return m.arena.Load(m.refs[i]).Key >= k
	})
	return i, i < len(m.refs) && m.arena.Load(m.refs[i]).Key == k
}

// Set inserts k with value v, or updates the entry in place if k is
// already present.
func (m *Map[K, V]) Set(k K, v V) {
	i, ok := m.search(k)
	if ok {
		m.arena.Load(m.refs[i]).Value = v
		return
	}
	ref, p := m.arena.AllocRef(1)
	*p = Entry[K, V]{Key: k, Value: v}
	m.refs = append(m.refs, alloc.NilRef)
	copy(m.refs[i+1:], m.refs[i:])
	m.refs[i] = ref
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	i, ok := m.search(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.arena.Load(m.refs[i]).Value, true
}

func (m *Map[K, V]) Len() int {
	return len(m.refs)
}

// Each visits entries in ascending key order until fn returns false.
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	for _, ref := range m.refs {
		e := m.arena.Load(ref)
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Close releases every entry through the arena and drops the index. The
// arena stays usable.
func (m *Map[K, V]) Close() {
	for _, ref := range m.refs {
		m.arena.Dealloc(m.arena.Load(ref), 1)
	}
	m.refs = nil
}
