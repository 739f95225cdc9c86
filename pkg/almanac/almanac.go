package almanac

import (
	"slices"

	"github.com/bft-labs/rangemap/pkg/interval"
	"github.com/bft-labs/rangemap/pkg/log"
	"github.com/bft-labs/rangemap/pkg/pipeline"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger makes the parsed pipeline trace every stage output at debug level.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Almanac is a parsed, read-only input bundle.
type Almanac struct {
	seeds      []uint64
	seedRanges []interval.Range
	pipeline   *pipeline.Pipeline
}

// Seeds returns the discrete seed identifiers in input order.
func (a *Almanac) Seeds() []uint64 {
	return slices.Clone(a.seeds)
}

// SeedRanges returns the ranges formed by pairing seed values as (start, length).
func (a *Almanac) SeedRanges() []interval.Range {
	return slices.Clone(a.seedRanges)
}

// Pipeline returns the stage chain.
func (a *Almanac) Pipeline() *pipeline.Pipeline {
	return a.pipeline
}

// StageNames returns the map headers in application order.
func (a *Almanac) StageNames() []string {
	stages := a.pipeline.Stages()
	names := make([]string, len(stages))
	for i, m := range stages {
		names[i] = m.Name()
	}
	return names
}

// LocationForSeed folds one seed through every stage.
func (a *Almanac) LocationForSeed(seed uint64) uint64 {
	return a.pipeline.Lookup(seed)
}

// MinSeedLocation returns the lowest location of any discrete seed.
func (a *Almanac) MinSeedLocation() (uint64, bool) {
	return a.pipeline.MinLookup(a.seeds)
}

// MinRangeLocation returns the lowest location reachable from any seed range.
func (a *Almanac) MinRangeLocation() (uint64, bool) {
	return a.pipeline.MinStart(a.seedRanges)
}
