package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldBoundsEmpty(t *testing.T) {
	left, right, top, bottom := fieldBounds(nil, nil)
	assert.Equal(t, int64(0), left)
	assert.Equal(t, int64(0), right)
	assert.Equal(t, int64(0), top)
	assert.Equal(t, int64(0), bottom)
}

func TestFieldBounds(t *testing.T) {
	xs := []int64{-2, 3, 0}
	ys := []int64{5, -1, 0}
	left, right, top, bottom := fieldBounds(xs, ys)
	assert.Equal(t, int64(-2), left)
	assert.Equal(t, int64(3), right)
	assert.Equal(t, int64(-1), top)
	assert.Equal(t, int64(5), bottom)
}

func TestMoveField(t *testing.T) {
	xs := []int64{0, 1, 2}
	ys := []int64{0, -1, -2}
	moveField(xs, ys, 5, 10)
	assert.Equal(t, []int64{5, 6, 7}, xs)
	assert.Equal(t, []int64{10, 9, 8}, ys)
}

func TestPartitionSplitsOnBit(t *testing.T) {
	xs := []int64{0, 1, 2, 3, 4, 5, 6, 7}
	ys := make([]int64, len(xs))
	copy(ys, xs)

	split := partition(0, len(xs)-1, xs, ys, 4)
	for i := 0; i < split; i++ {
		assert.Zero(t, xs[i]&4)
	}
	for i := split; i < len(xs); i++ {
		assert.NotZero(t, xs[i]&4)
	}
	// otherField stayed aligned with testField through the swaps.
	assert.Equal(t, xs, ys)
}

func TestPartitionEmptyRange(t *testing.T) {
	xs := []int64{1, 2, 3}
	ys := []int64{1, 2, 3}
	split := partition(1, 0, xs, ys, 1) // start > end
	assert.Equal(t, 1, split)
}

func TestLoadFieldSinglePoint(t *testing.T) {
	u := New()
	xs := []int64{0}
	ys := []int64{0}

	u.LoadField(xs, ys)

	assert.Equal(t, Population(1), u.GetPopulation())
	assert.Equal(t, float64(0), u.GetGeneration())
	assert.False(t, u.HasRewind())
	assert.True(t, u.GetCell(0, 0))
}

func TestLoadFieldPreservesRelativePositions(t *testing.T) {
	u := New()
	xs := []int64{0, 1}
	ys := []int64{0, 0}

	u.LoadField(xs, ys)

	require.Equal(t, Population(2), u.GetPopulation())
	assert.True(t, u.GetCell(0, 0))
	assert.True(t, u.GetCell(1, 0))
	assert.False(t, u.GetCell(2, 0))
	assert.False(t, u.GetCell(-1, 0))
}

func TestLoadFieldResetsGenerationAndRewind(t *testing.T) {
	u := New()
	u.SetCell(0, 0, true)
	u.NextGeneration(true)
	u.SaveRewind()
	require.True(t, u.HasRewind())
	require.Greater(t, u.GetGeneration(), float64(0))

	u.LoadField([]int64{0}, []int64{0})

	assert.Equal(t, float64(0), u.GetGeneration())
	assert.False(t, u.HasRewind())
}

func TestLoadFieldPanicsOnMismatchedLengths(t *testing.T) {
	u := New()
	assert.Panics(t, func() {
		u.LoadField([]int64{0, 1}, []int64{0})
	})
}
