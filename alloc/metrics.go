package alloc

// InUse returns the number of bytes the cursor has consumed, including
// tails abandoned when a block filled up.
func (a *Arena[T]) InUse() int {
	sum := 0
	for _, b := range a.blocks {
		sum += b.off
	}
	return sum
}

// Capacity returns the total byte size of all carved blocks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, b := range a.blocks {
		sum += len(b.buf)
	}
	return sum
}

// NumBlocks returns how many blocks the arena has carved.
func (a *Arena[T]) NumBlocks() int {
	return len(a.blocks)
}

// BlockSize returns the configured growth increment in elements.
func (a *Arena[T]) BlockSize() int {
	return a.blockSize
}

// Live returns the number of outstanding allocations.
func (a *Arena[T]) Live() int {
	return len(a.live)
}

// Metrics is a point-in-time snapshot of an arena.
type Metrics struct {
	BlockSize int `json:"block_size"`
	NumBlocks int `json:"num_blocks"`
	Capacity  int `json:"capacity"`
	InUse     int `json:"in_use"`
	Live      int `json:"live"`
}

func (a *Arena[T]) Metrics() Metrics {
	return Metrics{
		BlockSize: a.blockSize,
		NumBlocks: a.NumBlocks(),
		Capacity:  a.Capacity(),
		InUse:     a.InUse(),
		Live:      a.Live(),
	}
}
