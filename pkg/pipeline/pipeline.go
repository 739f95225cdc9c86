package pipeline

import (
	"slices"

	"github.com/bft-labs/rangemap/pkg/interval"
	"github.com/bft-labs/rangemap/pkg/log"
)

// Option configures optional behavior of a Pipeline.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger traces every range emitted by every stage at debug level.
// Without it the pipeline does not log.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Pipeline is an ordered, fixed sequence of remapping stages.
type Pipeline struct {
	stages []*interval.Map
	logger log.Logger
}

// New returns a pipeline applying stages in the given order.
func New(stages []*interval.Map, opts ...Option) *Pipeline {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		stages: slices.Clone(stages),
		logger: o.logger,
	}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*interval.Map {
	return slices.Clone(p.stages)
}

// Lookup folds a single point through every stage.
func (p *Pipeline) Lookup(point uint64) uint64 {
	for _, m := range p.stages {
		point = m.Lookup(point)
	}
	return point
}

// Walk expands r through every stage and calls visit for each range leaving
// the last stage. Ranges reach visit in input traversal order. The lengths of
// all visited ranges sum to r.Len().
func (p *Pipeline) Walk(r interval.Range, visit func(interval.Range)) {
	if r.IsEmpty() {
		return
	}
	p.walk(0, r, visit)
}

func (p *Pipeline) walk(stage int, r interval.Range, visit func(interval.Range)) {
	if stage == len(p.stages) {
		visit(r)
		return
	}

	m := p.stages[stage]
	m.Each(r, func(piece interval.Range) {
		if p.logger != nil {
			p.logger.Debug("stage output",
				log.Int("depth", stage+1),
				log.String("stage", m.Name()),
				log.Stringer("input", r),
				log.Stringer("output", piece),
			)
		}
		p.walk(stage+1, piece, visit)
	})
}

// MinStart returns the smallest start of any range leaving the last stage
// for the given inputs. ok is false when every input is empty.
func (p *Pipeline) MinStart(ranges []interval.Range) (lowest uint64, ok bool) {
	for _, r := range ranges {
		p.Walk(r, func(out interval.Range) {
			if !ok || out.Start < lowest {
				lowest = out.Start
				ok = true
			}
		})
	}
	return lowest, ok
}

// MinLookup returns the smallest Lookup result over points. ok is false when
// points is empty.
func (p *Pipeline) MinLookup(points []uint64) (lowest uint64, ok bool) {
	for _, pt := range points {
		if v := p.Lookup(pt); !ok || v < lowest {
			lowest = v
			ok = true
		}
	}
	return lowest, ok
}
