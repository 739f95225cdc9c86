// Package pipeline chains remapping tables into a multi-stage translator.
//
// A Pipeline is an ordered list of [interval.Map] stages. Points are folded
// through every stage in order. Ranges fan out: each stage may split an
// incoming range into several pieces, and every piece is fed into the next
// stage immediately (depth first), so no full intermediate generation is ever
// held in memory.
//
//	p := pipeline.New(maps)
//	loc := p.Lookup(79)
//	min, ok := p.MinStart([]interval.Range{seedRange})
//
// Pipelines are read-only after New and may be shared between goroutines.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package pipeline
