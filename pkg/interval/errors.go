package interval

import "errors"

var (
	// ErrOverflow is returned when a range bound does not fit in a uint64.
	ErrOverflow = errors.New("interval: arithmetic overflow")

	// ErrOverlap is returned when two entries of one map share source points.
	ErrOverlap = errors.New("interval: overlapping map entries")
)
