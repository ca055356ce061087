package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainPoolReuse(t *testing.T) {
	p := &chainPool{}

	c := p.acquire()
	require.Empty(t, c, "fresh chain starts empty")
	require.Zero(t, p.hits, "first acquire allocates")

	c = append(c, Move{Row: 1, Col: 2, Score: 3})
	p.release(c)

	c2 := p.acquire()
	require.Empty(t, c2, "recycled chain must come back empty")
	require.Equal(t, int64(1), p.hits)
	require.Equal(t, cap(c), cap(c2), "recycled chain keeps its backing storage")
}

func TestChainPoolReleaseNil(t *testing.T) {
	p := &chainPool{}

	p.release(nil)
	require.Empty(t, p.free, "nil chains are not pooled")

	c := p.acquire()
	require.Zero(t, p.hits, "nothing was pooled to reuse")
	require.NotNil(t, c)
}
