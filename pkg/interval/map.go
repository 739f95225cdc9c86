package interval

import (
	"fmt"
	"slices"
	"sort"
)

// Map is an immutable remapping table. Entries are sorted by source start and
// their sources never overlap. Points outside every entry map to themselves.
type Map struct {
	name    string
	entries []MapEntry
}

// NewMap builds a Map from entries in any order. Zero-length entries are
// dropped. Overlapping sources fail with ErrOverlap.
func NewMap(name string, entries []MapEntry) (*Map, error) {
	sorted := make([]MapEntry, 0, len(entries))
	for _, e := range entries {
		if e.Source.IsEmpty() {
			continue
		}
		sorted = append(sorted, e)
	}
	slices.SortFunc(sorted, MapEntry.Compare)

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Source.Overlaps(sorted[i].Source) {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, sorted[i-1].Source, sorted[i].Source)
		}
	}

	return &Map{name: name, entries: sorted}, nil
}

// Name returns the stage name the map was built with.
func (m *Map) Name() string {
	return m.name
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the sorted entries.
func (m *Map) Entries() []MapEntry {
	return slices.Clone(m.entries)
}

// Lookup translates a single point.
func (m *Map) Lookup(src uint64) uint64 {
	// first entry starting after src; its predecessor is the only candidate
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Source.Start > src
	})
	if i == 0 {
		return src
	}

	e := m.entries[i-1]
	if !e.Source.Contains(src) {
		return src
	}
	return e.Translate(src)
}

// EntriesContaining returns, in source order, a copy of the entries whose
// source shares at least one point with r.
func (m *Map) EntriesContaining(r Range) []MapEntry {
	return slices.Clone(m.overlapping(r))
}

// overlapping returns the sub-slice of entries intersecting r.
//
// Sources are sorted and disjoint, so both starts and ends ascend. The window
// begins at the first entry ending after r.Start and stops before the first
// entry starting at or after r.End. An entry whose End equals r.Start or whose
// Start equals r.End only touches r and is excluded.
func (m *Map) overlapping(r Range) []MapEntry {
	if r.IsEmpty() {
		return nil
	}

	lo := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Source.End > r.Start
	})
	hi := lo + sort.Search(len(m.entries)-lo, func(i int) bool {
		return m.entries[lo+i].Source.Start >= r.End
	})
	return m.entries[lo:hi:hi]
}

// Decompose translates every point of r and returns the destination ranges,
// left to right in the order r is walked. The lengths of the returned ranges
// always sum to r.Len().
func (m *Map) Decompose(r Range) []Range {
	var out []Range
	m.Each(r, func(piece Range) {
		out = append(out, piece)
	})
	return out
}

// Each calls emit for every piece Decompose would return, in the same order,
// without building the intermediate slice.
func (m *Map) Each(r Range, emit func(Range)) {
	relevant := m.overlapping(r)

	for len(relevant) > 0 && !r.IsEmpty() {
		e := relevant[0]

		if !e.Source.Contains(r.Start) {
			// gap before the next entry passes through unchanged
			end := min(e.Source.Start, r.End)
			emit(Range{Start: r.Start, End: end})
			r.Start = end
			continue
		}

		end := min(e.Source.End, r.End)
		dst := e.Translate(r.Start)
		emit(Range{Start: dst, End: dst + (end - r.Start)})
		r.Start = end
		relevant = relevant[1:]
	}

	if !r.IsEmpty() {
		emit(r)
	}
}
