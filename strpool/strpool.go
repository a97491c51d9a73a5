// Package strpool interns strings into arena storage. Interned bytes
// live outside the Go heap, so large string tables add nothing to GC
// scan work.
package strpool

import (
	"unsafe"

	"github.com/sharkee26/lab4-prog/alloc"
)

type handle struct {
	ref alloc.Ref
	n   int
}

// Pool deduplicates strings by content. Intern returns a string aliasing
// arena storage; it stays valid until Close.
type Pool struct {
	arena *alloc.Arena[byte]
	tbl   map[uint32][]handle
	count int
}

// NewPool returns a pool whose arena grows blockSize bytes at a time.
func NewPool(blockSize int) *Pool {
	return &Pool{
		arena: alloc.New[byte](blockSize),
		tbl:   make(map[uint32][]handle),
	}
}

// Intern returns the pooled copy of s, storing it on first sight.
func (p *Pool) Intern(s string) string {
	h := hash(s)
	for _, e := range p.tbl[h] {
		if p.str(e) == s {
			return p.str(e)
		}
	}
	ref, b := p.arena.AllocRef(len(s))
	copy(unsafe.Slice(b, len(s)), s)
	e := handle{ref: ref, n: len(s)}
	p.tbl[h] = append(p.tbl[h], e)
	p.count++
	return p.str(e)
}

func (p *Pool) str(e handle) string {
	return unsafe.String(p.arena.Load(e.ref), e.n)
}

// Len returns the number of distinct strings stored.
func (p *Pool) Len() int {
	return p.count
}

// Bytes returns the arena bytes consumed by stored strings.
func (p *Pool) Bytes() int {
	return p.arena.InUse()
}

// Close drops the table and the backing arena. Previously returned
// strings must not be used afterwards.
func (p *Pool) Close() {
	p.tbl = nil
	p.count = 0
	p.arena.Close()
}

func hash(s string) uint32 {
	res := uint32(0x123456)
	for _, b := range []byte(s) {
		res ^= uint32(b)
		res *= 0x51235995
	}
	res ^= (res<<8 | res>>24) ^ (res<<19 | res>>13)
	res *= 0x62435345
	return res ^ res>>16
}
