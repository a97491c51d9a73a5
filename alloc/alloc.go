// Package alloc implements a typed bump (arena) allocator over
// mmap-backed blocks, plus the Allocator contract containers build on.
package alloc

// DefaultBlockSize is the growth increment, in elements, used when an
// allocator is created without an explicit block size.
const DefaultBlockSize = 10

// Allocator hands out typed storage. Alloc returns a pointer to n
// contiguous uninitialized slots, or nil when n <= 0. Dealloc releases a
// previously returned pointer; releasing a pointer the allocator does not
// track is a no-op.
type Allocator[T any] interface {
	Alloc(n int) *T
	Dealloc(p *T, n int)
}

// Std allocates from the Go heap and leaves reclamation to the garbage
// collector. It exists so code written against Allocator can run without
// an arena.
type Std[T any] struct{}

var _ Allocator[int] = Std[int]{}

func (Std[T]) Alloc(n int) *T {
	if n <= 0 {
		return nil
	}
	s := make([]T, n)
	return &s[0]
}

func (Std[T]) Dealloc(p *T, n int) {
	// nothing
}
