package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func neighbours(g Grid[bool], row, col int) (ret [][2]int) {
	for r, c := range g.Neighbors(row, col) {
		ret = append(ret, [2]int{r, c})
	}
	return
}

func TestNeighbors(t *testing.T) {
	g := NewGrid[bool](3, 4)

	testCases := []struct {
		name     string
		row, col int
		want     [][2]int
	}{
		{"top left corner", 0, 0, [][2]int{{0, 1}, {1, 0}, {1, 1}}},
		{"top right corner", 0, 3, [][2]int{{0, 2}, {1, 2}, {1, 3}}},
		{"bottom left corner", 2, 0, [][2]int{{1, 0}, {1, 1}, {2, 1}}},
		{"bottom right corner", 2, 3, [][2]int{{1, 2}, {1, 3}, {2, 2}}},
		{"top edge", 0, 1, [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		{"left edge", 1, 0, [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 0}, {2, 1}}},
		{"inner", 1, 2, [][2]int{
			{0, 1}, {0, 2}, {0, 3},
			{1, 1}, {1, 3},
			{2, 1}, {2, 2}, {2, 3},
		}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, neighbours(g, test.row, test.col))
		})
	}
}

func TestNeighborsDegenerate(t *testing.T) {
	assert.Nil(t, neighbours(NewGrid[bool](1, 1), 0, 0))
	assert.Equal(t, [][2]int{{0, 0}, {0, 2}}, neighbours(NewGrid[bool](1, 3), 0, 1))
	assert.Equal(t, [][2]int{{1, 0}}, neighbours(NewGrid[bool](3, 1), 2, 0))
}

func TestNeighborsStopsEarly(t *testing.T) {
	g := NewGrid[bool](3, 3)
	n := 0
	for range g.Neighbors(1, 1) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestGridAccess(t *testing.T) {
	g := NewGrid[uint8](2, 3)
	assert.Equal(t, 6, g.Len())

	g.Set(1, 2, 7)
	assert.Equal(t, uint8(7), g.At(1, 2))
	assert.Equal(t, uint8(7), g.cells[5])

	g.Clear()
	assert.Equal(t, uint8(0), g.At(1, 2))

	assert.True(t, g.InBounds(0, 0))
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.InBounds(-1, 0))
}

func TestGridPanicsOutOfRange(t *testing.T) {
	g := NewGrid[bool](2, 2)

	// (0, 2) would alias (1, 0) in the flat buffer without the check
	assert.PanicsWithError(t, "cell (0, 2) is out of range for a 2x2 grid", func() {
		g.At(0, 2)
	})
	assert.Panics(t, func() { g.Set(2, 0, true) })
}
