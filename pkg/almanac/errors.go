package almanac

import (
	"errors"
	"fmt"
)

// Parse errors. Every error returned by Parse is a *ParseError wrapping one of
// these, or interval.ErrOverflow / interval.ErrOverlap for rows that cannot
// form a valid table.
var (
	// ErrMissingSeeds is returned when the input does not start with "seeds:".
	ErrMissingSeeds = errors.New("almanac: missing seeds line")

	// ErrNoSeeds is returned when the seeds line lists no values.
	ErrNoSeeds = errors.New("almanac: no seeds")

	// ErrMalformedInteger is returned for tokens that are not unsigned integers.
	ErrMalformedInteger = errors.New("almanac: malformed integer")

	// ErrTokenCount is returned for map rows without exactly three values.
	ErrTokenCount = errors.New("almanac: map row needs 3 values")

	// ErrMissingSeparator is returned when a section does not have the expected shape,
	// usually because a blank line between sections is missing.
	ErrMissingSeparator = errors.New("almanac: missing section separator")

	// ErrStageCount is returned when the number of map sections is not StageCount.
	ErrStageCount = errors.New("almanac: wrong number of map sections")
)

// ParseError reports where parsing stopped.
type ParseError struct {
	// Line is 1-based; 0 when the failure concerns the whole input.
	Line int

	// Section is the header of the section being parsed, "seeds" for the first.
	Section string

	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Section != "":
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Section, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
