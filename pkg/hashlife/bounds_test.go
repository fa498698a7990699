package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRootBoundsEmptyUniverse(t *testing.T) {
	u := New()
	bounds := u.GetRootBounds()
	assert.Equal(t, [4]Dim{0, 0, 0, 0}, bounds)
}

func TestGetRootBoundsSingleCell(t *testing.T) {
	u := New()
	u.SetCell(2, -1, true)
	bounds := u.GetRootBounds()
	assert.Equal(t, [4]Dim{2, 2, -1, -1}, bounds)
}

// TestGetRootBoundsTightness is P6: the reported box is the minimal
// axis-aligned rectangle containing every live cell, not merely a
// conservative superset.
func TestGetRootBoundsTightness(t *testing.T) {
	u := New()
	u.SetCell(-3, -2, true)
	u.SetCell(1, 0, true)
	u.SetCell(3, 2, true)

	left, right, top, bottom := boundsOf(u)
	assert.Equal(t, Dim(-3), left)
	assert.Equal(t, Dim(3), right)
	assert.Equal(t, Dim(-2), top)
	assert.Equal(t, Dim(2), bottom)
}

func TestGetRootBoundsShrinksAfterClear(t *testing.T) {
	u := New()
	u.SetCell(-3, -3, true)
	u.SetCell(0, 0, false)
	bounds := u.GetRootBounds()
	assert.Equal(t, Dim(-3), bounds[0])

	u.SetCell(-3, -3, false)
	bounds = u.GetRootBounds()
	assert.Equal(t, [4]Dim{0, 0, 0, 0}, bounds)
}

func boundsOf(u *Universe) (left, right, top, bottom Dim) {
	b := u.GetRootBounds()
	return b[0], b[1], b[2], b[3]
}
