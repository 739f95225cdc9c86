package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bft-labs/rangemap/pkg/interval"
	"github.com/bft-labs/rangemap/pkg/pipeline"
)

// StageCount is the number of map sections an almanac must contain.
const StageCount = 7

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"
	maxLineBytes = 16 << 20
)

type line struct {
	num  int
	text string
}

type section []line

// LoadFile parses the almanac stored at path.
func LoadFile(path string, opts ...Option) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open almanac: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// ParseString parses an almanac held in memory.
func ParseString(s string, opts ...Option) (*Almanac, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a complete almanac. Nothing is returned unless the whole input
// is valid.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sections, err := splitSections(r)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, &ParseError{Err: ErrMissingSeeds}
	}

	seeds, seedRanges, err := parseSeeds(sections[0])
	if err != nil {
		return nil, err
	}

	maps := make([]*interval.Map, 0, StageCount)
	for _, sec := range sections[1:] {
		m, err := parseMap(sec)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	if len(maps) != StageCount {
		pe := &ParseError{Err: fmt.Errorf("%w: got %d, want %d", ErrStageCount, len(maps), StageCount)}
		if len(maps) > StageCount {
			pe.Line = sections[StageCount+1][0].num
		}
		return nil, pe
	}

	var popts []pipeline.Option
	if o.logger != nil {
		popts = append(popts, pipeline.WithLogger(o.logger))
	}

	return &Almanac{
		seeds:      seeds,
		seedRanges: seedRanges,
		pipeline:   pipeline.New(maps, popts...),
	}, nil
}

// splitSections groups non-blank lines into blank-line separated sections.
func splitSections(r io.Reader) ([]section, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		sections []section
		cur      section
		num      int
	)
	for sc.Scan() {
		num++
		text := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))
		if text == "" {
			if len(cur) > 0 {
				sections = append(sections, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line{num: num, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: num + 1, Err: fmt.Errorf("read: %w", err)}
	}
	if len(cur) > 0 {
		sections = append(sections, cur)
	}
	return sections, nil
}

func parseSeeds(sec section) ([]uint64, []interval.Range, error) {
	first := sec[0]
	rest, ok := strings.CutPrefix(first.text, seedsPrefix)
	if !ok {
		return nil, nil, &ParseError{Line: first.num, Err: ErrMissingSeeds}
	}
	if len(sec) > 1 {
		return nil, nil, &ParseError{Line: sec[1].num, Section: "seeds", Err: ErrMissingSeparator}
	}

	seeds, err := parseUints(strings.Fields(rest))
	if err != nil {
		return nil, nil, &ParseError{Line: first.num, Section: "seeds", Err: err}
	}
	if len(seeds) == 0 {
		return nil, nil, &ParseError{Line: first.num, Section: "seeds", Err: ErrNoSeeds}
	}

	// a trailing unpaired value is still a seed point but forms no range
	ranges := make([]interval.Range, 0, len(seeds)/2)
	for i := 0; i+1 < len(seeds); i += 2 {
		r, err := interval.FromStartLength(seeds[i], seeds[i+1])
		if err != nil {
			return nil, nil, &ParseError{Line: first.num, Section: "seeds", Err: err}
		}
		ranges = append(ranges, r)
	}

	return seeds, ranges, nil
}

func parseMap(sec section) (*interval.Map, error) {
	header := sec[0]
	if isRow(header.text) {
		return nil, &ParseError{Line: header.num, Err: fmt.Errorf("%w: expected map header, got %q", ErrMissingSeparator, header.text)}
	}
	name := stageName(header.text)

	entries := make([]interval.MapEntry, 0, len(sec)-1)
	for _, row := range sec[1:] {
		if strings.HasSuffix(row.text, ":") {
			return nil, &ParseError{Line: row.num, Section: name, Err: ErrMissingSeparator}
		}

		fields := strings.Fields(row.text)
		if len(fields) != 3 {
			return nil, &ParseError{Line: row.num, Section: name, Err: fmt.Errorf("%w: got %d", ErrTokenCount, len(fields))}
		}
		v, err := parseUints(fields)
		if err != nil {
			return nil, &ParseError{Line: row.num, Section: name, Err: err}
		}

		e, err := interval.NewMapEntry(v[0], v[1], v[2])
		if err != nil {
			return nil, &ParseError{Line: row.num, Section: name, Err: err}
		}
		entries = append(entries, e)
	}

	m, err := interval.NewMap(name, entries)
	if err != nil {
		return nil, &ParseError{Line: header.num, Section: name, Err: err}
	}
	return m, nil
}

// stageName extracts "seed-to-soil" from "seed-to-soil map:". Any other
// header is kept as written, minus a trailing colon.
func stageName(header string) string {
	if name, ok := strings.CutSuffix(header, headerSuffix); ok {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(strings.TrimSuffix(header, ":"))
}

// isRow reports whether text is a table row: three unsigned integers.
// A section starting with one lost the blank line before its header.
func isRow(text string) bool {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return false
	}
	_, err := parseUints(fields)
	return err == nil
}

func parseUints(fields []string) ([]uint64, error) {
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedInteger, f)
		}
		out = append(out, v)
	}
	return out, nil
}
