package strpool_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharkee26/lab4-prog/strpool"
)

func TestInternDeduplicates(t *testing.T) {
	p := strpool.NewPool(1 << 10)

	a := p.Intern("hello")
	b := p.Intern(strings.Repeat("hel", 1) + "lo") // equal, different backing
	require.Equal(t, "hello", a)
	require.Equal(t, a, b)
	require.Equal(t, 1, p.Len())
	require.Equal(t, 5, p.Bytes())

	p.Intern("world")
	require.Equal(t, 2, p.Len())
	require.Equal(t, 10, p.Bytes())
}

func TestInternEmptyAndLarge(t *testing.T) {
	p := strpool.NewPool(16)
	require.Equal(t, "", p.Intern(""))
	require.Equal(t, 1, p.Len())

	big := strings.Repeat("x", 100) // larger than one growth increment
	require.Equal(t, big, p.Intern(big))
	require.Equal(t, big, p.Intern(strings.Repeat("x", 100)))
	require.Equal(t, 2, p.Len())
	require.Equal(t, 100, p.Bytes())
}

func TestInternMany(t *testing.T) {
	p := strpool.NewPool(64)
	words := []string{"red", "green", "blue", "red", "green", "cyan"}
	seen := map[string]string{}
	for _, w := range words {
		got := p.Intern(w)
		require.Equal(t, w, got)
		if prev, ok := seen[w]; ok {
			require.Equal(t, prev, got)
		}
		seen[w] = got
	}
	require.Equal(t, 4, p.Len())
}
