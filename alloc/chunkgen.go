package alloc

import (
	"log"

	"golang.org/x/sys/unix"
)

const SlabSize = 1 << 24

// ChunkGen carves arena blocks out of anonymous mmap'd slabs. Carved
// blocks are 64-byte aligned and never handed out twice, so pointers into
// them stay valid for the life of the process.
type ChunkGen struct {
	CurSlab []byte
}

// Gen returns a fresh block of exactly size bytes. A request of a slab or
// more gets a dedicated mapping.
func (g *ChunkGen) Gen(size int) []byte {
	span := (size + 63) &^ 63
	if span >= SlabSize {
		return mmap(span)[:size:size]
	}
	if span > len(g.CurSlab) {
		g.CurSlab = mmap(SlabSize)
	}
	res := g.CurSlab[:size:size]
	g.CurSlab = g.CurSlab[span:]
	return res
}

func mmap(size int) []byte {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		log.Fatal(err)
	}
	return buf
}

var ChunkGenerator ChunkGen
