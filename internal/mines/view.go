package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type View string

const (
	ViewCover   View = "cover"
	ViewUncover View = "uncover"
	ViewSplit   View = "split"
)

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewCover, ViewUncover, ViewSplit:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q (want cover, uncover or split)", s)
	}
}

// Render dispatches to the Dump* method for v. Unknown views render as
// cover, the only view that does not leak the layout.
func (b *Board) Render(v View) *Dump {
	switch v {
	case ViewUncover:
		return b.DumpUncover()
	case ViewSplit:
		return b.DumpSplit()
	default:
		return b.DumpCover()
	}
}

// ParsePosition reads a "row:col" pair.
func ParsePosition(s string) (row, col int, err error) {
	rs, cs, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, fmt.Errorf(`invalid position "%s" (want row:col)`, s)
	}
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf(`invalid row in position "%s": %w`, s, err)
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf(`invalid column in position "%s": %w`, s, err)
	}
	return row, col, nil
}
