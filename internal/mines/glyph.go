package mines

const (
	GlyphMine      byte = '*'
	GlyphHidden    byte = '#'
	GlyphSeparator byte = ' '
)

// glyphs[0] is the mine, glyphs[1+n] the digit for n adjacent mines
const glyphs = "*012345678"

func glyph(mine bool, count uint8) byte {
	if mine {
		return GlyphMine
	}
	return glyphs[1+count]
}

// IsDigit reports whether g is one of the adjacency glyphs '0'..'8'.
func IsDigit(g byte) bool {
	return '0' <= g && g <= '8'
}
