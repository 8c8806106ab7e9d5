package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dumpOf(rows, cols int, s string) *Dump {
	d := newDump(rows, cols)
	copy(d.buf, s)
	return d
}

func TestDumpAccessors(t *testing.T) {
	d := dumpOf(2, 3, "*1#012")

	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, byte('#'), d.At(0, 2))
	assert.Equal(t, byte('0'), d.At(1, 0))
	assert.Equal(t, "*1#", d.Row(0))
	assert.Equal(t, "012", d.Row(1))
	assert.Equal(t, "*1#\n012\n", d.String())
	assert.Equal(t, 1, d.Count(GlyphMine))
	assert.Equal(t, 1, d.Count(GlyphHidden))
}

func TestDumpAllIsReiterable(t *testing.T) {
	d := dumpOf(2, 2, "*012")

	for range 2 {
		var got []byte
		for g := range d.All() {
			got = append(got, g)
		}
		assert.Equal(t, []byte("*012"), got)
	}
}

func TestDumpBytesIsACopy(t *testing.T) {
	d := dumpOf(1, 3, "###")
	b := d.Bytes()
	b[0] = '*'
	assert.Equal(t, byte('#'), d.At(0, 0))
}

func TestDumpEqual(t *testing.T) {
	a := dumpOf(2, 2, "0123")

	assert.True(t, a.Equal(dumpOf(2, 2, "0123")))
	assert.False(t, a.Equal(dumpOf(2, 2, "0124")))
	assert.False(t, a.Equal(dumpOf(1, 4, "0123")))
	assert.False(t, a.Equal(nil))

	var nilDump *Dump
	assert.True(t, nilDump.Equal(nil))
}

func TestDumpAtOutOfRange(t *testing.T) {
	d := dumpOf(2, 2, "0000")

	assert.Panics(t, func() { d.At(0, 2) })
	assert.Panics(t, func() { d.At(2, 0) })
	assert.Panics(t, func() { d.At(-1, 0) })
	assert.Panics(t, func() { d.Row(2) })
}
