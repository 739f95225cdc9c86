// Package interval provides half-open unsigned ranges and the piecewise-linear
// remapping tables built from them.
//
// A [Map] is a sorted, non-overlapping table of [MapEntry] values. Points not
// covered by any entry map to themselves. Tables are built once and never
// mutated, so they are safe for concurrent readers.
//
// # Usage
//
// Build a map and translate a point:
//
//	e1, _ := interval.NewMapEntry(50, 98, 2)
//	e2, _ := interval.NewMapEntry(52, 50, 48)
//	m, err := interval.NewMap("seed-to-soil", []interval.MapEntry{e1, e2})
//	if err != nil {
//	    return err
//	}
//	m.Lookup(79) // 81
//
// Translate a whole range without enumerating its points:
//
//	for _, r := range m.Decompose(interval.NewRange(0, 150)) {
//	    // [0, 50) [52, 100) [50, 52) [100, 150)
//	}
//
// Decompose emits pieces in the order it walks the input range, not in
// destination order.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package interval
