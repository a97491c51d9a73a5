package alloc

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

// Ref is a stable handle to an allocation: block index plus byte offset.
// Unlike a raw pointer it survives being written to disk or compared for
// identity after an arena grows.
type Ref struct {
	Block int32
	Off   int32
}

var NilRef = Ref{Block: -1}

type block struct {
	buf []byte
	off int
}

// Arena is a bump allocator for values of type T. Storage grows in blocks
// of blockSize elements; blocks never move, so returned pointers stay
// valid. Freed slots are not reused; Dealloc only untracks the pointer
// and runs the release hook. Blocks live outside the Go heap and are not
// scanned, so T must not contain Go pointers; use Std for such types.
// Not goroutine-safe.
type Arena[T any] struct {
	blockSize int
	blocks    []block
	live      map[*T]struct{}

	// OnRelease, when set, is called once per live allocation, either on
	// Dealloc or on Close.
	OnRelease func(*T)
}

var _ Allocator[int] = &Arena[int]{}

// New returns an arena growing in blocks of blockSize elements. A
// blockSize <= 0 falls back to DefaultBlockSize. The first block is
// carved immediately.
func New[T any](blockSize int) *Arena[T] {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	a := &Arena[T]{blockSize: blockSize, live: make(map[*T]struct{})}
	a.extend(a.blockBytes())
	return a
}

// Rebind returns an arena for type U with the same block size as src but
// fresh storage and an empty live set.
func Rebind[U, T any](src *Arena[T]) *Arena[U] {
	return New[U](src.blockSize)
}

// zero-sized types still get one byte per slot so every allocation has a
// distinct address
func sizeOf[T any]() int {
	var zero T
	if s := int(unsafe.Sizeof(zero)); s > 0 {
		return s
	}
	return 1
}

func (a *Arena[T]) blockBytes() int {
	return a.blockSize * sizeOf[T]()
}

func (a *Arena[T]) extend(n int) {
	a.blocks = append(a.blocks, block{buf: ChunkGenerator.Gen(n)})
}

// Alloc returns a pointer to n contiguous uninitialized slots, or nil
// when n <= 0. A request that does not fit the current block carves a new
// one; a request larger than a whole block gets a block sized to fit.
func (a *Arena[T]) Alloc(n int) *T {
	_, p := a.AllocRef(n)
	return p
}

// AllocRef is Alloc plus the stable handle of the allocation.
func (a *Arena[T]) AllocRef(n int) (Ref, *T) {
	if n <= 0 {
		return NilRef, nil
	}
	if a.blocks == nil {
		panic("alloc: use after Close")
	}
	need := n * sizeOf[T]()
	cur := &a.blocks[len(a.blocks)-1]
	if cur.off+need > len(cur.buf) {
		bb := a.blockBytes()
		if need > bb {
			bb = need
		}
		a.extend(bb)
		cur = &a.blocks[len(a.blocks)-1]
	}
	ref := Ref{Block: int32(len(a.blocks) - 1), Off: int32(cur.off)}
	p := (*T)(unsafe.Pointer(&cur.buf[cur.off]))
	cur.off += need
	a.live[p] = struct{}{}
	return ref, p
}

// Load resolves a handle to the pointer it was allocated as. NilRef
// resolves to nil.
func (a *Arena[T]) Load(ref Ref) *T {
	if ref.Block < 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(&a.blocks[ref.Block].buf[ref.Off]))
}

// Get writes the address behind ref through out, which must be a pointer
// to a *T.
func (a *Arena[T]) Get(ref Ref, out interface{}) {
	addr := unsafe.Pointer(&a.blocks[ref.Block].buf[ref.Off])
	*(*unsafe.Pointer)(reflect2.PtrOf(out)) = addr
}

// Dealloc releases a tracked pointer: it is removed from the live set,
// the release hook runs once, and the n slots are scrubbed. The byte
// range is not reused. An untracked pointer is ignored.
func (a *Arena[T]) Dealloc(p *T, n int) {
	if p == nil {
		return
	}
	if _, ok := a.live[p]; !ok {
		return
	}
	delete(a.live, p)
	if a.OnRelease != nil {
		a.OnRelease(p)
	}
	if n > 0 {
		clear(unsafe.Slice(p, n))
	}
}

// Close runs the release hook over every still-live allocation and drops
// all blocks. Allocating from a closed arena panics; Close itself is
// idempotent.
func (a *Arena[T]) Close() {
	if a.blocks == nil {
		return
	}
	if a.OnRelease != nil {
		for p := range a.live {
			a.OnRelease(p)
		}
	}
	a.live = nil
	a.blocks = nil
}
