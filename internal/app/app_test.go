package app

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/rangemap/internal/cliconfig"
	"github.com/bft-labs/rangemap/pkg/almanac"
	"github.com/bft-labs/rangemap/pkg/log"
)

func testConfig(t *testing.T, input string) cliconfig.Config {
	t.Helper()
	cfg := cliconfig.DefaultConfig()
	cfg.Input = input
	cfg.Workers = 2
	require.NoError(t, cfg.Validate())
	return cfg
}

func referencePath() string {
	return filepath.Join("testdata", "reference.txt")
}

func TestSolveOnce_Text(t *testing.T) {
	var out bytes.Buffer
	a := New(testConfig(t, referencePath()), nil, &out)

	res, err := a.SolveOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(35), res.SeedLocation)
	assert.Equal(t, uint64(46), res.RangeLocation)
	assert.Equal(t, "seeds: 35\nranges: 46\n", out.String())
}

func TestSolveOnce_JSON(t *testing.T) {
	cfg := testConfig(t, referencePath())
	cfg.Output = cliconfig.OutputJSON

	var out bytes.Buffer
	require.NoError(t, New(cfg, nil, &out).Run(context.Background()))

	var got almanac.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, uint64(35), got.SeedLocation)
	assert.Equal(t, uint64(46), got.RangeLocation)
	assert.Equal(t, 7, got.Stages)
}

func TestSolveOnce_TOML(t *testing.T) {
	cfg := testConfig(t, referencePath())
	cfg.Output = cliconfig.OutputTOML

	var out bytes.Buffer
	require.NoError(t, New(cfg, nil, &out).Run(context.Background()))

	var got struct {
		SeedLocation  string `toml:"seed_location"`
		RangeLocation string `toml:"range_location"`
		SeedRanges    int    `toml:"seed_ranges"`
	}
	require.NoError(t, toml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "35", got.SeedLocation)
	assert.Equal(t, "46", got.RangeLocation)
	assert.Equal(t, 2, got.SeedRanges)
}

func TestWriteReport_TOMLLocationsAboveInt64(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, cliconfig.OutputTOML, almanac.Result{
		SeedLocation:     math.MaxUint64,
		HasSeedLocation:  true,
		RangeLocation:    1 << 63,
		HasRangeLocation: true,
	}))

	var got struct {
		SeedLocation     string `toml:"seed_location"`
		RangeLocation    string `toml:"range_location"`
		HasRangeLocation bool   `toml:"has_range_location"`
	}
	require.NoError(t, toml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "18446744073709551615", got.SeedLocation)
	assert.Equal(t, "9223372036854775808", got.RangeLocation)
	assert.True(t, got.HasRangeLocation)
}

func TestWriteReport_JSONLocationsAboveInt64(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, cliconfig.OutputJSON, almanac.Result{
		RangeLocation:    1 << 63,
		HasRangeLocation: true,
	}))

	var got almanac.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, uint64(1<<63), got.RangeLocation)
}

func TestSolveOnce_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("seeds: 1 2\n\nnot a header\n"), 0644))

	var out bytes.Buffer
	_, err := New(testConfig(t, path), nil, &out).SolveOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, almanac.ErrMissingSeparator)
	assert.Zero(t, out.Len())
}

func TestSolveOnce_TraceLogsStages(t *testing.T) {
	cfg := testConfig(t, referencePath())
	cfg.Trace = true
	cfg.LogFormat = log.FormatJSON
	require.NoError(t, cfg.Validate())

	var logs, out bytes.Buffer
	zl, err := cliconfig.Logger(cfg, &logs)
	require.NoError(t, err)

	_, err = New(cfg, log.NewZerologAdapterWithLogger(zl), &out).SolveOnce(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"stage":"humidity-to-location"`)
	assert.Contains(t, logs.String(), `"message":"solved"`)
}

func TestWriteReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, cliconfig.OutputText, almanac.Result{
		SeedLocation:    3,
		HasSeedLocation: true,
	}))
	assert.Equal(t, "seeds: 3\nranges: none\n", out.String())

	assert.Error(t, WriteReport(&out, "csv", almanac.Result{}))
}

// syncBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_WatchResolvesOnWrite(t *testing.T) {
	ref, err := os.ReadFile(referencePath())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "almanac.txt")
	require.NoError(t, os.WriteFile(path, ref, 0644))

	cfg := testConfig(t, path)
	cfg.Watch = true

	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg, nil, &out).Run(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "seeds: 35\n")
	}, 5*time.Second, 20*time.Millisecond)

	// only seed 13 remains: 35 as a point, no ranges
	updated := strings.Replace(string(ref), "seeds: 79 14 55 13", "seeds: 13", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "ranges: none\n")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestRun_WatchMissingDirectory(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing", "almanac.txt"))
	cfg.Watch = true

	err := New(cfg, nil, &bytes.Buffer{}).Run(context.Background())
	assert.Error(t, err)
}
