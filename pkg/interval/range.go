package interval

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Range is a half-open interval [Start, End) of identifiers.
// A Range with Start >= End is empty.
type Range struct {
	// Start is the inclusive start of the range.
	Start uint64

	// End is the exclusive end of the range.
	End uint64
}

// NewRange returns the range [start, end).
func NewRange(start, end uint64) Range {
	return Range{Start: start, End: end}
}

// FromStartLength returns the range [start, start+length).
// It fails with ErrOverflow instead of wrapping.
func FromStartLength(start, length uint64) (Range, error) {
	end, carry := bits.Add64(start, length, 0)
	if carry != 0 {
		return Range{}, fmt.Errorf("%w: %d + %d", ErrOverflow, start, length)
	}
	return Range{Start: start, End: end}, nil
}

// Contains returns true if start <= p < end.
func (r Range) Contains(p uint64) bool {
	return r.Start <= p && p < r.End
}

// IsEmpty returns true if the range holds no points.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Len returns the number of points in the range.
func (r Range) Len() uint64 {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Overlaps returns true if r and o share at least one point.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End && !r.IsEmpty() && !o.IsEmpty()
}

// Compare orders ranges lexicographically by (Start, End).
func (r Range) Compare(o Range) int {
	if c := cmp.Compare(r.Start, o.Start); c != 0 {
		return c
	}
	return cmp.Compare(r.End, o.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
