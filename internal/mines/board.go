package mines

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"io"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board owns the mine layout, the adjacency counts and the reveal state of
// a rows×cols minefield. It is not safe for concurrent use.
type Board struct {
	rows, cols, mines int

	layout   Grid[bool]
	counts   Grid[uint8]
	revealed Grid[bool]

	rnd *rand.Rand
}

type Option func(*Board)

// WithRand makes Shuffle draw from r.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.rnd = r
	}
}

// WithSeed makes every layout produced by the board reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func ValidateParams(rows, cols, mines int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w (rows = %d, cols = %d)", ErrInvalidDimensions, rows, cols)
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%w (rows = %d, cols = %d overflows the cell count)",
			ErrInvalidDimensions, rows, cols)
	}
	if mines < 0 {
		return fmt.Errorf("%w (mines = %d)", ErrNegativeMines, mines)
	}
	if mines > rows*cols {
		return fmt.Errorf("%w (mines = %d, cells = %d)", ErrTooManyMines, mines, rows*cols)
	}
	return nil
}

// Make returns an empty board: no mines placed, nothing revealed. Call
// Shuffle to lay the mines.
func Make(rows, cols, mines int, opts ...Option) (*Board, error) {
	if err := ValidateParams(rows, cols, mines); err != nil {
		return nil, err
	}

	b := &Board{
		rows:     rows,
		cols:     cols,
		mines:    mines,
		layout:   NewGrid[bool](rows, cols),
		counts:   NewGrid[uint8](rows, cols),
		revealed: NewGrid[bool](rows, cols),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rnd == nil {
		b.rnd = createRand()
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) Mines() int { return b.mines }

// Shuffle discards the current layout, places the mines uniformly at random
// and recomputes every adjacency count.
//
// Reveal state is left as is: cells opened before a reshuffle stay open on
// the new layout.
func (b *Board) Shuffle() {
	b.placeMines()
	b.countNeighbours()

	Log.WithFields(logrus.Fields{
		"rows":  b.rows,
		"cols":  b.cols,
		"mines": b.mines,
	}).Debug("board shuffled")
}

func (b *Board) placeMines() {
	b.layout.Clear()

	/*
	 * The first `mines' entries of a random permutation of every cell
	 * index are a uniform sample without replacement.
	 */
	for _, i := range b.rnd.Perm(b.layout.Len())[:b.mines] {
		b.layout.cells[i] = true
	}
}

func (b *Board) countNeighbours() {
	b.counts.Clear()
	for row := range b.rows {
		for col := range b.cols {
			var n uint8
			for r, c := range b.layout.Neighbors(row, col) {
				if b.layout.At(r, c) {
					n++
				}
			}
			b.counts.Set(row, col, n)
		}
	}
}

// Open marks the cell as revealed. Opening an open cell does nothing.
func (b *Board) Open(row, col int) error {
	if !b.revealed.InBounds(row, col) {
		return &OutOfRangeError{Row: row, Col: col, Rows: b.rows, Cols: b.cols}
	}
	b.revealed.Set(row, col, true)
	return nil
}

// Revealed reports whether the cell has been opened. Out-of-range cells
// are never revealed.
func (b *Board) Revealed(row, col int) bool {
	return b.revealed.InBounds(row, col) && b.revealed.At(row, col)
}

func (b *Board) trueGlyph(i int) byte {
	return glyph(b.layout.cells[i], b.counts.cells[i])
}

func (b *Board) coverGlyph(i int) byte {
	if !b.revealed.cells[i] {
		return GlyphHidden
	}
	return b.trueGlyph(i)
}

// Dumps writes the true glyph of every cell, one line per row.
func (b *Board) Dumps(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range b.layout.Len() {
		bw.WriteByte(b.trueGlyph(i))
		if (i+1)%b.cols == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// DumpUncover renders the ground truth, ignoring reveal state.
func (b *Board) DumpUncover() *Dump {
	d := newDump(b.rows, b.cols)
	for i := range d.buf {
		d.buf[i] = b.trueGlyph(i)
	}
	return d
}

// DumpCover renders what the player sees: unopened cells are hidden.
func (b *Board) DumpCover() *Dump {
	d := newDump(b.rows, b.cols)
	for i := range d.buf {
		d.buf[i] = b.coverGlyph(i)
	}
	return d
}

// DumpSplit renders the cover view and the uncover view side by side,
// separated by a single blank column.
func (b *Board) DumpSplit() *Dump {
	d := newDump(b.rows, 2*b.cols+1)
	k := 0
	for row := range b.rows {
		for col := range b.cols {
			d.buf[k] = b.coverGlyph(b.layout.index(row, col))
			k++
		}
		d.buf[k] = GlyphSeparator
		k++
		for col := range b.cols {
			d.buf[k] = b.trueGlyph(b.layout.index(row, col))
			k++
		}
	}
	return d
}
