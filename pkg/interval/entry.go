package interval

import (
	"cmp"
	"fmt"
	"math/bits"
)

// MapEntry maps every point p of Source to Destination + (p - Source.Start).
type MapEntry struct {
	Source      Range
	Destination uint64
}

// NewMapEntry builds an entry from one table row: destination start,
// source start and length. Both the source and the destination span must fit
// in a uint64, which keeps Translate total.
func NewMapEntry(destination, sourceStart, length uint64) (MapEntry, error) {
	src, err := FromStartLength(sourceStart, length)
	if err != nil {
		return MapEntry{}, fmt.Errorf("source: %w", err)
	}
	if _, carry := bits.Add64(destination, length, 0); carry != 0 {
		return MapEntry{}, fmt.Errorf("destination: %w: %d + %d", ErrOverflow, destination, length)
	}
	return MapEntry{Source: src, Destination: destination}, nil
}

// Translate maps p through the entry. p must lie in e.Source.
func (e MapEntry) Translate(p uint64) uint64 {
	return e.Destination + (p - e.Source.Start)
}

// Compare orders entries by source range, then destination.
func (e MapEntry) Compare(o MapEntry) int {
	if c := e.Source.Compare(o.Source); c != 0 {
		return c
	}
	return cmp.Compare(e.Destination, o.Destination)
}

func (e MapEntry) String() string {
	return fmt.Sprintf("%s -> %d", e.Source, e.Destination)
}
