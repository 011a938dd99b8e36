package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is matched by every *InvalidColorError.
	ErrInvalidColor = errors.New("invalid color")
	// ErrEmptyColorList is returned when there is nothing to spread.
	ErrEmptyColorList = errors.New("no colors provided")
	// ErrNegativeLength is returned when asked to spread over a negative length or width.
	ErrNegativeLength = errors.New("cannot spread across a negative number of LEDs")
	// ErrEmptySequence is returned when rotating an empty sequence.
	ErrEmptySequence = errors.New("cannot rotate an empty sequence")
)

// InvalidColorError reports a string that is not in "#RRGGBB" form.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("please provide a color in the format '#RRGGBB', received %q", e.Value)
}

// Is lets errors.Is(err, ErrInvalidColor) match.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}
