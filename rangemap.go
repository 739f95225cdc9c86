// Package rangemap finds the lowest identifier reachable through a fixed chain
// of piecewise-linear remapping tables, for discrete seeds and for seed ranges
// too large to enumerate.
//
// Example usage:
//
//	a, err := rangemap.LoadFile("almanac.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := rangemap.Solve(context.Background(), a, rangemap.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.SeedLocation, res.RangeLocation)
package rangemap

import (
	"context"
	"io"

	"github.com/bft-labs/rangemap/pkg/almanac"
	"github.com/bft-labs/rangemap/pkg/interval"
)

// Almanac is a parsed seed almanac.
type Almanac = almanac.Almanac

// Result holds the minimum locations computed by Solve.
type Result = almanac.Result

// Range is a half-open identifier interval.
type Range = interval.Range

// ParseError describes why an almanac could not be parsed.
type ParseError = almanac.ParseError

// Parse reads an almanac from r.
func Parse(r io.Reader, opts ...almanac.Option) (*Almanac, error) {
	return almanac.Parse(r, opts...)
}

// LoadFile reads the almanac stored at path.
func LoadFile(path string, opts ...almanac.Option) (*Almanac, error) {
	return almanac.LoadFile(path, opts...)
}

// Solve computes the lowest location for the seeds and for the seed ranges.
func Solve(ctx context.Context, a *Almanac, opts ...almanac.SolveOption) (Result, error) {
	return almanac.Solve(ctx, a, opts...)
}

// WithWorkers expands up to n seed ranges concurrently.
func WithWorkers(n int) almanac.SolveOption {
	return almanac.WithWorkers(n)
}
