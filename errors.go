package orient

import (
	"fmt"
	"strings"
)

// ShapeError reports an input block or slice whose length does not match
// the arity the operation expects.
type ShapeError struct {
	What string // which input, e.g. "quaternion"
	Want string // expected length, e.g. "4" or "a multiple of 9"
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s input has length %d, want %s", e.What, e.Got, e.Want)
}

// DegenerateInputError reports quaternion rows with exactly zero norm,
// which carry no direction and cannot be normalized. Rows holds the index
// of every offending row; validation never stops at the first one.
type DegenerateInputError struct {
	Rows []int
}

func (e *DegenerateInputError) Error() string {
	if len(e.Rows) == 1 {
		return fmt.Sprintf("zero norm quaternion at row %d", e.Rows[0])
	}
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = fmt.Sprint(r)
	}
	return fmt.Sprintf("zero norm quaternions at rows [%s]", strings.Join(rows, " "))
}
