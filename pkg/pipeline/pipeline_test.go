package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/rangemap/pkg/interval"
	"github.com/bft-labs/rangemap/pkg/log"
)

var referenceTables = []struct {
	name string
	rows [][3]uint64
}{
	{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

func referenceStages(t *testing.T) []*interval.Map {
	t.Helper()
	stages := make([]*interval.Map, 0, len(referenceTables))
	for _, table := range referenceTables {
		entries := make([]interval.MapEntry, 0, len(table.rows))
		for _, row := range table.rows {
			e, err := interval.NewMapEntry(row[0], row[1], row[2])
			require.NoError(t, err)
			entries = append(entries, e)
		}
		m, err := interval.NewMap(table.name, entries)
		require.NoError(t, err)
		stages = append(stages, m)
	}
	return stages
}

func TestPipeline_Lookup(t *testing.T) {
	p := New(referenceStages(t))
	require.Equal(t, 7, p.Len())

	assert.Equal(t, uint64(82), p.Lookup(79))
	assert.Equal(t, uint64(43), p.Lookup(14))
	assert.Equal(t, uint64(86), p.Lookup(55))
	assert.Equal(t, uint64(35), p.Lookup(13))

	lowest, ok := p.MinLookup([]uint64{79, 14, 55, 13})
	require.True(t, ok)
	assert.Equal(t, uint64(35), lowest)
}

func TestPipeline_MinStart(t *testing.T) {
	p := New(referenceStages(t))

	lowest, ok := p.MinStart([]interval.Range{
		interval.NewRange(79, 79+14),
		interval.NewRange(55, 55+13),
	})
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
}

func TestPipeline_MinEmpty(t *testing.T) {
	p := New(referenceStages(t))

	_, ok := p.MinStart(nil)
	assert.False(t, ok)

	_, ok = p.MinStart([]interval.Range{interval.NewRange(5, 5)})
	assert.False(t, ok)

	_, ok = p.MinLookup(nil)
	assert.False(t, ok)
}

func TestPipeline_WalkMatchesPointwise(t *testing.T) {
	p := New(referenceStages(t))
	input := interval.NewRange(0, 120)

	var outputs []interval.Range
	var total uint64
	p.Walk(input, func(r interval.Range) {
		outputs = append(outputs, r)
		total += r.Len()
	})
	require.Equal(t, input.Len(), total)

	point := input.Start
	for _, out := range outputs {
		for v := out.Start; v < out.End; v++ {
			require.Equal(t, p.Lookup(point), v, "seed %d", point)
			point++
		}
	}
}

func TestPipeline_NoStagesIsIdentity(t *testing.T) {
	p := New(nil)

	assert.Equal(t, uint64(17), p.Lookup(17))

	var got []interval.Range
	p.Walk(interval.NewRange(3, 9), func(r interval.Range) { got = append(got, r) })
	assert.Equal(t, []interval.Range{interval.NewRange(3, 9)}, got)
}

func TestPipeline_StagesIsCopy(t *testing.T) {
	stages := referenceStages(t)
	p := New(stages)
	stages[0] = nil

	got := p.Stages()
	require.Len(t, got, 7)
	assert.Equal(t, "seed-to-soil", got[0].Name())
}

type recordingLogger struct {
	log.NoopLogger

	mu     sync.Mutex
	stages []string
}

func (r *recordingLogger) Debug(msg string, fields ...log.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range fields {
		if f.Key == "stage" {
			r.stages = append(r.stages, f.Value.(string))
		}
	}
}

func TestPipeline_WithLoggerTracesStages(t *testing.T) {
	rec := &recordingLogger{}
	p := New(referenceStages(t), WithLogger(rec))

	lowest, ok := p.MinStart([]interval.Range{interval.NewRange(79, 80)})
	require.True(t, ok)
	assert.Equal(t, uint64(82), lowest)

	// a single point never splits, so each stage logs exactly once
	require.Len(t, rec.stages, 7)
	assert.Equal(t, "seed-to-soil", rec.stages[0])
	assert.Equal(t, "humidity-to-location", rec.stages[6])
}
