package almanac

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/rangemap/pkg/interval"
)

// Result holds the answers for one almanac.
type Result struct {
	// SeedLocation is the lowest location of any discrete seed.
	SeedLocation    uint64 `json:"seed_location" toml:"seed_location"`
	HasSeedLocation bool   `json:"has_seed_location" toml:"has_seed_location"`

	// RangeLocation is the lowest location reachable from any seed range.
	RangeLocation    uint64 `json:"range_location" toml:"range_location"`
	HasRangeLocation bool   `json:"has_range_location" toml:"has_range_location"`

	Seeds      int `json:"seeds" toml:"seeds"`
	SeedRanges int `json:"seed_ranges" toml:"seed_ranges"`
	Stages     int `json:"stages" toml:"stages"`

	// Fragments counts the ranges leaving the last stage.
	Fragments int `json:"fragments" toml:"fragments"`

	Elapsed time.Duration `json:"elapsed" toml:"elapsed"`
}

// SolveOption configures Solve.
type SolveOption func(*solveOptions)

type solveOptions struct {
	workers int
}

// WithWorkers expands up to n seed ranges concurrently. n <= 1 is sequential.
// The result does not depend on n.
func WithWorkers(n int) SolveOption {
	return func(o *solveOptions) {
		o.workers = n
	}
}

// partial is the reduction of one or more seed ranges.
type partial struct {
	min       uint64
	ok        bool
	fragments int
}

func (p *partial) merge(o partial) {
	if o.ok && (!p.ok || o.min < p.min) {
		p.min = o.min
		p.ok = true
	}
	p.fragments += o.fragments
}

// Solve computes the lowest location for the discrete seeds and for the seed
// ranges. It only fails when ctx is done before the ranges are exhausted.
func Solve(ctx context.Context, a *Almanac, opts ...SolveOption) (Result, error) {
	o := solveOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res := Result{
		Seeds:      len(a.seeds),
		SeedRanges: len(a.seedRanges),
		Stages:     a.pipeline.Len(),
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.SeedLocation, res.HasSeedLocation = a.MinSeedLocation()

	var (
		total partial
		err   error
	)
	if o.workers <= 1 {
		total, err = a.solveSequential(ctx)
	} else {
		total, err = a.solveParallel(ctx, o.workers)
	}
	if err != nil {
		return res, err
	}

	res.RangeLocation, res.HasRangeLocation = total.min, total.ok
	res.Fragments = total.fragments
	res.Elapsed = time.Since(start)
	return res, nil
}

func (a *Almanac) solveSequential(ctx context.Context) (partial, error) {
	var total partial
	for _, r := range a.seedRanges {
		if err := ctx.Err(); err != nil {
			return partial{}, err
		}
		total.merge(a.expand(r))
	}
	return total, nil
}

func (a *Almanac) solveParallel(ctx context.Context, workers int) (partial, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu    sync.Mutex
		total partial
	)
	for _, r := range a.seedRanges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := a.expand(r)
			mu.Lock()
			total.merge(p)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return partial{}, err
	}
	return total, nil
}

// expand walks one seed range through the pipeline.
func (a *Almanac) expand(r interval.Range) partial {
	var p partial
	a.pipeline.Walk(r, func(out interval.Range) {
		p.fragments++
		if !p.ok || out.Start < p.min {
			p.min = out.Start
			p.ok = true
		}
	})
	return p
}
