package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCellGetCellRoundTrip(t *testing.T) {
	u := New()

	assert.False(t, u.GetCell(0, 0))
	u.SetCell(0, 0, true)
	assert.True(t, u.GetCell(0, 0))
	assert.Equal(t, Population(1), u.GetPopulation())

	u.SetCell(0, 0, false)
	assert.False(t, u.GetCell(0, 0))
	assert.Equal(t, Population(0), u.GetPopulation())
}

func TestSetCellExpandsForOutOfBoundsLiveWrite(t *testing.T) {
	u := New()
	startLevel := u.GetLevel()

	// Far outside the minimal level-3 universe; must trigger growth.
	u.SetCell(1000, 1000, true)

	assert.Greater(t, u.GetLevel(), startLevel)
	assert.True(t, u.GetCell(1000, 1000))
	assert.Equal(t, Population(1), u.GetPopulation())
}

func TestSetCellDeadWriteOutOfBoundsIsNoop(t *testing.T) {
	u := New()
	startLevel := u.GetLevel()
	startRoot := u.Root()

	u.SetCell(1000, 1000, false)

	assert.Equal(t, startLevel, u.GetLevel())
	assert.Same(t, startRoot, u.Root())
}

func TestGetCellOutOfRangeReportsFalse(t *testing.T) {
	u := New()
	assert.False(t, u.GetCell(1_000_000, 1_000_000))
	assert.False(t, u.GetCell(-1_000_000, -1_000_000))
}

func TestSetCellMultipleCellsIndependent(t *testing.T) {
	u := New()
	pts := [][2]Dim{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, p := range pts {
		u.SetCell(p[0], p[1], true)
	}
	require.Equal(t, Population(len(pts)), u.GetPopulation())
	for _, p := range pts {
		assert.True(t, u.GetCell(p[0], p[1]), "expected (%v,%v) alive", p[0], p[1])
	}
	assert.False(t, u.GetCell(2, 2))
}

func TestLevelFromBounds(t *testing.T) {
	small := levelFromBounds(0, 0)
	assert.Equal(t, small, levelFromBounds(3, -3))
	// a coordinate requiring more room pushes the level up.
	assert.Greater(t, levelFromBounds(1000, 1000), small)
}
