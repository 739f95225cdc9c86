// Package almanac parses seed almanacs and computes minimum locations.
//
// An almanac is plain text made of blank-line separated sections. The first
// section lists seeds:
//
//	seeds: 79 14 55 13
//
// Each of the seven following sections is a header line naming the stage and
// one row per entry holding destination start, source start and length:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Header text is free-form; a trailing "map:" is stripped from the stage name.
//
// Seeds are used twice: individually as points, and pairwise as (start,
// length) ranges. [Solve] reports the lowest location reachable from each.
//
// Parse failures are returned as *[ParseError] wrapping one of the package
// sentinel errors. Once parsed, every lookup is total.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package almanac
