package mines

import "iter"

// offsets of the Moore neighbourhood, row-major, centre excluded
var neighbourhood = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a dense rows×cols container stored row-major.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

func NewGrid[T any](rows, cols int) Grid[T] {
	return Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

func (g Grid[T]) Rows() int { return g.rows }

func (g Grid[T]) Cols() int { return g.cols }

func (g Grid[T]) Len() int { return len(g.cells) }

func (g Grid[T]) InBounds(row, col int) bool {
	return 0 <= row && row < g.rows && 0 <= col && col < g.cols
}

func (g Grid[T]) index(row, col int) int {
	return row*g.cols + col
}

// At panics if (row, col) is outside the grid.
func (g Grid[T]) At(row, col int) T {
	g.mustContain(row, col)
	return g.cells[g.index(row, col)]
}

// Set panics if (row, col) is outside the grid.
func (g Grid[T]) Set(row, col int, v T) {
	g.mustContain(row, col)
	g.cells[g.index(row, col)] = v
}

// Clear resets every cell to the zero value of T.
func (g Grid[T]) Clear() {
	clear(g.cells)
}

// Neighbors yields the coordinates of the existing cells within Chebyshev
// distance 1 of (row, col). Cells beyond the edges are skipped, there is no
// wraparound, so corners get 3 neighbours and a 1×1 grid gets none.
func (g Grid[T]) Neighbors(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, d := range neighbourhood {
			r, c := row+d[0], col+d[1]
			if !g.InBounds(r, c) {
				continue
			}
			if !yield(r, c) {
				return
			}
		}
	}
}

func (g Grid[T]) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(&OutOfRangeError{Row: row, Col: col, Rows: g.rows, Cols: g.cols})
	}
}
