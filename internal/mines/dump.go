package mines

import (
	"bytes"
	"iter"
	"strings"
)

// Dump is a snapshot of rendered glyphs. It owns its buffer, so it stays
// valid after the board that produced it changes.
type Dump struct {
	rows, cols int
	buf        []byte
}

func newDump(rows, cols int) *Dump {
	return &Dump{
		rows: rows,
		cols: cols,
		buf:  make([]byte, rows*cols),
	}
}

func (d *Dump) Rows() int { return d.rows }

func (d *Dump) Cols() int { return d.cols }

func (d *Dump) Len() int { return len(d.buf) }

// At panics with an [*OutOfRangeError] if (row, col) is outside the dump.
func (d *Dump) At(row, col int) byte {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		panic(&OutOfRangeError{Row: row, Col: col, Rows: d.rows, Cols: d.cols})
	}
	return d.buf[row*d.cols+col]
}

// All yields every glyph in row-major order.
func (d *Dump) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, g := range d.buf {
			if !yield(g) {
				return
			}
		}
	}
}

func (d *Dump) Row(row int) string {
	if row < 0 || row >= d.rows {
		panic(&OutOfRangeError{Row: row, Col: 0, Rows: d.rows, Cols: d.cols})
	}
	return string(d.buf[row*d.cols : (row+1)*d.cols])
}

// Bytes returns a copy of the glyph buffer.
func (d *Dump) Bytes() []byte {
	return bytes.Clone(d.buf)
}

func (d *Dump) Count(g byte) int {
	return bytes.Count(d.buf, []byte{g})
}

func (d *Dump) Equal(other *Dump) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.rows == other.rows && d.cols == other.cols &&
		bytes.Equal(d.buf, other.buf)
}

// Dump implements [fmt.Stringer]
func (d *Dump) String() string {
	var b strings.Builder
	b.Grow(d.rows * (d.cols + 1))
	for row := range d.rows {
		b.Write(d.buf[row*d.cols : (row+1)*d.cols])
		b.WriteByte('\n')
	}
	return b.String()
}
