// Package app runs the rangemap command: it loads an almanac, solves it and
// writes a report, once or every time the input changes.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/rangemap/internal/cliconfig"
	"github.com/bft-labs/rangemap/pkg/almanac"
	"github.com/bft-labs/rangemap/pkg/log"
)

// App holds everything a run needs. Create with New.
type App struct {
	cfg    cliconfig.Config
	logger log.Logger
	out    io.Writer
}

// New returns an App writing reports to out. cfg must already be validated.
// A nil logger disables logging.
func New(cfg cliconfig.Config, logger log.Logger, out io.Writer) *App {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &App{cfg: cfg, logger: logger, out: out}
}

// Run solves the input once, or keeps re-solving it until ctx is done when
// watch mode is enabled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Watch {
		return a.watch(ctx)
	}
	_, err := a.SolveOnce(ctx)
	return err
}

// SolveOnce loads, solves and reports the input file.
func (a *App) SolveOnce(ctx context.Context) (almanac.Result, error) {
	var opts []almanac.Option
	if a.cfg.Trace {
		opts = append(opts, almanac.WithLogger(a.logger))
	}

	alm, err := almanac.LoadFile(a.cfg.Input, opts...)
	if err != nil {
		return almanac.Result{}, fmt.Errorf("load %s: %w", a.cfg.Input, err)
	}
	a.logger.Debug("almanac loaded",
		log.String("input", a.cfg.Input),
		log.Int("seeds", len(alm.Seeds())),
		log.Int("seed_ranges", len(alm.SeedRanges())),
		log.Any("stages", alm.StageNames()),
	)

	res, err := almanac.Solve(ctx, alm, almanac.WithWorkers(a.cfg.Workers))
	if err != nil {
		return res, fmt.Errorf("solve: %w", err)
	}
	a.logger.Info("solved",
		log.Uint64("seed_location", res.SeedLocation),
		log.Uint64("range_location", res.RangeLocation),
		log.Int("fragments", res.Fragments),
		log.Duration("elapsed", res.Elapsed),
	)

	if err := WriteReport(a.out, a.cfg.Output, res); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	return res, nil
}
