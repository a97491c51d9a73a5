package alloc_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/sharkee26/lab4-prog/alloc"
)

func TestNewArena(t *testing.T) {
	a := alloc.New[int32](10)
	require.Equal(t, 10, a.BlockSize())
	require.Equal(t, 1, a.NumBlocks())
	require.Equal(t, 40, a.Capacity())
	require.Equal(t, 0, a.InUse())

	// non-positive block sizes fall back to the default
	require.Equal(t, alloc.DefaultBlockSize, alloc.New[int32](0).BlockSize())
	require.Equal(t, alloc.DefaultBlockSize, alloc.New[int32](-5).BlockSize())
}

func TestAllocBoundary(t *testing.T) {
	a := alloc.New[int32](10)
	for i := 0; i < 10; i++ {
		p := a.Alloc(1)
		require.NotNil(t, p)
		*p = int32(i)
	}
	// the block is exactly full; growth waits for the next request
	require.Equal(t, 40, a.InUse())
	require.Equal(t, 40, a.Capacity())
	require.Equal(t, 1, a.NumBlocks())

	p := a.Alloc(1)
	require.NotNil(t, p)
	require.Equal(t, 80, a.Capacity())
	require.Equal(t, 2, a.NumBlocks())
}

func TestAllocZero(t *testing.T) {
	a := alloc.New[int32](10)
	before := a.Metrics()
	require.Nil(t, a.Alloc(0))
	require.Nil(t, a.Alloc(-1))
	require.Equal(t, before, a.Metrics())
}

func TestAllocSpansDisjoint(t *testing.T) {
	a := alloc.New[int64](16)
	type span struct{ lo, hi uintptr }
	var spans []span
	sizes := []int{1, 3, 16, 2, 40, 1, 7}
	var ptrs []*int64
	for _, n := range sizes {
		p := a.Alloc(n)
		require.NotNil(t, p)
		for i, s := 0, unsafe.Slice(p, n); i < n; i++ {
			s[i] = int64(len(spans)*1000 + i)
		}
		lo := uintptr(unsafe.Pointer(p))
		spans = append(spans, span{lo, lo + uintptr(n)*unsafe.Sizeof(int64(0))})
		ptrs = append(ptrs, p)
	}
	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			overlap := spans[i].lo < spans[j].hi && spans[j].lo < spans[i].hi
			require.Falsef(t, overlap, "span %d overlaps span %d", i, j)
		}
	}
	// no allocation disturbed an earlier one
	for i, p := range ptrs {
		s := unsafe.Slice(p, sizes[i])
		for j := range s {
			require.Equal(t, int64(i*1000+j), s[j])
		}
	}
}

func TestGrowthCapacity(t *testing.T) {
	a := alloc.New[int32](10)
	allocated := 0
	for i := 0; i < 57; i++ {
		a.Alloc(1)
		allocated += 4
		require.GreaterOrEqual(t, a.Capacity(), allocated)
		require.Zero(t, a.Capacity()%40)
	}
	require.Equal(t, 240, a.Capacity())
}

func TestAllocLargerThanBlock(t *testing.T) {
	a := alloc.New[int32](10)
	p := a.Alloc(25)
	require.NotNil(t, p)
	require.Equal(t, 140, a.Capacity())

	s := unsafe.Slice(p, 25)
	for i := range s {
		s[i] = int32(i)
	}
	for i := range s {
		require.Equal(t, int32(i), s[i])
	}
}

func TestDeallocTracked(t *testing.T) {
	a := alloc.New[int32](10)
	released := 0
	a.OnRelease = func(*int32) { released++ }

	p := a.Alloc(1)
	*p = 42
	require.Equal(t, 1, a.Live())

	a.Dealloc(p, 1)
	require.Equal(t, 1, released)
	require.Equal(t, 0, a.Live())
	require.Equal(t, int32(0), *p)

	// second release of the same pointer is a no-op
	a.Dealloc(p, 1)
	require.Equal(t, 1, released)
}

func TestDeallocUntracked(t *testing.T) {
	a := alloc.New[int32](10)
	released := 0
	a.OnRelease = func(*int32) { released++ }
	a.Alloc(1)

	foreign := new(int32)
	before := a.Metrics()
	a.Dealloc(foreign, 1)
	a.Dealloc(nil, 1)
	require.Equal(t, 0, released)
	require.Equal(t, before, a.Metrics())
}

func TestCloseReleasesLive(t *testing.T) {
	a := alloc.New[int32](10)
	released := 0
	a.OnRelease = func(*int32) { released++ }

	for i := 0; i < 5; i++ {
		a.Alloc(1)
	}
	p := a.Alloc(1)
	a.Dealloc(p, 1)
	require.Equal(t, 1, released)

	a.Close()
	require.Equal(t, 6, released)
	a.Close() // idempotent
	require.Equal(t, 6, released)

	require.Panics(t, func() { a.Alloc(1) })
}

func TestRebind(t *testing.T) {
	src := alloc.New[int32](7)
	src.Alloc(3)

	dst := alloc.Rebind[int64](src)
	require.Equal(t, 7, dst.BlockSize())
	require.Equal(t, 56, dst.Capacity())
	require.Equal(t, 0, dst.InUse())
	require.Equal(t, 0, dst.Live())

	// the source keeps its own storage
	require.Equal(t, 12, src.InUse())
}

func TestRefLoadGet(t *testing.T) {
	a := alloc.New[int64](10)
	ref, p := a.AllocRef(1)
	*p = 99

	require.Same(t, p, a.Load(ref))
	require.Nil(t, a.Load(alloc.NilRef))

	var out *int64
	a.Get(ref, &out)
	require.Same(t, p, out)
	require.Equal(t, int64(99), *out)

	nilRef, nilPtr := a.AllocRef(0)
	require.Equal(t, alloc.NilRef, nilRef)
	require.Nil(t, nilPtr)
}

func TestStd(t *testing.T) {
	var a alloc.Std[int32]
	require.Nil(t, a.Alloc(0))
	p := a.Alloc(3)
	require.NotNil(t, p)
	*p = 7
	a.Dealloc(p, 3)
	require.Equal(t, int32(7), *p)
}
