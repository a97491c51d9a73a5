package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/sharkee26/lab4-prog/alloc"
	"github.com/sharkee26/lab4-prog/omap"
	"github.com/sharkee26/lab4-prog/seq"
)

var valuesArena *alloc.Arena[int32]
var values *seq.List[int32]

// LoadValues builds the list served by /values and /metrics.
func LoadValues() {
	valuesArena = alloc.New[int32](alloc.DefaultBlockSize)
	values = seq.NewList[int32](valuesArena)
	for i := int32(0); i < 10; i++ {
		values.Add(i)
	}
}

// fillFactorials feeds set with (k, k!) for k in [0, n).
func fillFactorials(n int, set func(k int, v int64)) {
	f := int64(1)
	for i := 0; i < n; i++ {
		if i > 0 {
			f *= int64(i)
		}
		set(i, f)
	}
}

// Demo prints the walkthrough: a factorial map on the Go heap, the same
// map backed by the arena, then the owning container.
func Demo(w io.Writer) {
	std := map[int]int64{}
	fillFactorials(10, func(k int, v int64) { std[k] = v })
	fmt.Fprintln(w, "factorials, std allocator:")
	keys := make([]int, 0, len(std))
	for k := range std {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintln(w, k, std[k])
	}

	arena := alloc.New[omap.Entry[int, int64]](10)
	m := omap.New(arena)
	fillFactorials(10, m.Set)
	fmt.Fprintln(w, "\nfactorials, arena allocator:")
	m.Each(func(k int, v int64) bool {
		fmt.Fprintln(w, k, v)
		return true
	})

	l := seq.NewList[int32](nil)
	for i := int32(0); i < 10; i++ {
		l.Add(i)
	}
	fmt.Fprintln(w, "\ncontainer values:")
	l.Display(w)
	fmt.Fprintln(w, "size:", l.Size())
	fmt.Fprintln(w, "empty:", l.Empty())
	for _, p := range l.Ptrs() {
		fmt.Fprintf(w, "%d ", *p)
	}
	fmt.Fprintln(w)

	l.Close()
	m.Close()
	arena.Close()
}
