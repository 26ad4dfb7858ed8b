package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(99), New(99)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSplitProducesDistinctStreams(t *testing.T) {
	t.Parallel()
	children := Split(New(1), 4)
	assert.Len(t, children, 4)

	seen := make(map[uint64]bool)
	for _, c := range children {
		v := c.Uint64()
		assert.False(t, seen[v], "children should not share a stream")
		seen[v] = true
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(5), Seed(5))
	assert.NotZero(t, Seed(0))
}
