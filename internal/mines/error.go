package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("board must have at least one row and one column")
	ErrNegativeMines     = errors.New("mine count cannot be negative")
	ErrTooManyMines      = errors.New("mine count exceeds number of cells")
)

// OutOfRangeError reports a coordinate outside a rows×cols grid.
type OutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

// [OutOfRangeError] implements [error]
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is out of range for a %dx%d grid",
		e.Row, e.Col, e.Rows, e.Cols)
}
