package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/pathfind"
)

func TestFrontier_EmptyPop(t *testing.T) {
	f := pathfind.NewFrontier[string](0)
	assert.True(t, f.Empty())
	_, _, ok := f.PopMin()
	assert.False(t, ok)
}

func TestFrontier_OrdersByKey(t *testing.T) {
	f := pathfind.NewFrontier[string](4)
	f.Push(3, "C")
	f.Push(1, "A")
	f.Push(2, "B")
	require.Equal(t, 3, f.Len())

	var got []string
	for !f.Empty() {
		_, n, ok := f.PopMin()
		require.True(t, ok)
		got = append(got, n)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestFrontier_TiesKeepInsertionOrder(t *testing.T) {
	f := pathfind.NewFrontier[int](0)
	for i := 0; i < 10; i++ {
		f.Push(5, i)
	}
	for want := 0; want < 10; want++ {
		k, n, ok := f.PopMin()
		require.True(t, ok)
		assert.Equal(t, 5.0, k)
		assert.Equal(t, want, n)
	}
}

func TestFrontier_DuplicateNodes(t *testing.T) {
	f := pathfind.NewFrontier[string](0)
	f.Push(9, "X")
	f.Push(4, "X")
	f.Push(6, "Y")

	k, n, _ := f.PopMin()
	assert.Equal(t, "X", n)
	assert.Equal(t, 4.0, k)
	k, n, _ = f.PopMin()
	assert.Equal(t, "Y", n)
	assert.Equal(t, 6.0, k)
	k, n, _ = f.PopMin()
	assert.Equal(t, "X", n, "superseded entries stay until popped")
	assert.Equal(t, 9.0, k)
	assert.True(t, f.Empty())
}
