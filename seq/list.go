// Package seq provides a sequence container that owns its elements'
// storage through an alloc.Allocator.
package seq

import (
	"fmt"
	"io"

	"github.com/sharkee26/lab4-prog/alloc"
)

// List stores elements in allocator-provided slots and keeps their
// addresses in insertion order. Each slot is owned by exactly one list
// and is released back through the allocator by Close.
type List[T any] struct {
	alloc alloc.Allocator[T]
	ptrs  []*T
}

// NewList returns a list backed by a. A nil allocator gets a fresh arena
// with the default block size.
func NewList[T any](a alloc.Allocator[T]) *List[T] {
	if a == nil {
		a = alloc.New[T](alloc.DefaultBlockSize)
	}
	return &List[T]{alloc: a}
}

// Add copies v into a freshly allocated slot and appends its address.
func (l *List[T]) Add(v T) {
	p := l.alloc.Alloc(1)
	*p = v
	l.ptrs = append(l.ptrs, p)
}

// Display writes each value in insertion order, every value followed by a
// space, then a newline.
func (l *List[T]) Display(w io.Writer) {
	for _, p := range l.ptrs {
		fmt.Fprintf(w, "%v ", *p)
	}
	fmt.Fprintln(w)
}

func (l *List[T]) Size() int {
	return len(l.ptrs)
}

func (l *List[T]) Empty() bool {
	return len(l.ptrs) == 0
}

// Ptrs returns the owned addresses in insertion order. Callers get the
// slot, not the value; dereference to reach the element.
func (l *List[T]) Ptrs() []*T {
	return l.ptrs
}

// Each walks the owned addresses in insertion order until fn returns
// false.
func (l *List[T]) Each(fn func(*T) bool) {
	for _, p := range l.ptrs {
		if !fn(p) {
			return
		}
	}
}

// Close releases every owned slot through the allocator, in insertion
// order, and drops the address sequence.
func (l *List[T]) Close() {
	for _, p := range l.ptrs {
		l.alloc.Dealloc(p, 1)
	}
	l.ptrs = nil
}
