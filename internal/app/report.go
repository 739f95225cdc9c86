package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/rangemap/internal/cliconfig"
	"github.com/bft-labs/rangemap/pkg/almanac"
)

// WriteReport renders res to w in the given output format.
func WriteReport(w io.Writer, format string, res almanac.Result) error {
	switch format {
	case cliconfig.OutputText, "":
		return writeText(w, res)
	case cliconfig.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case cliconfig.OutputTOML:
		return toml.NewEncoder(w).Encode(newTOMLReport(res))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, res almanac.Result) error {
	if _, err := fmt.Fprintf(w, "seeds: %s\n", textValue(res.SeedLocation, res.HasSeedLocation)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "ranges: %s\n", textValue(res.RangeLocation, res.HasRangeLocation))
	return err
}

func textValue(v uint64, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

// tomlReport is the TOML form of almanac.Result. TOML integers are signed
// 64-bit, so locations are written as decimal strings.
type tomlReport struct {
	SeedLocation     string `toml:"seed_location,omitempty"`
	HasSeedLocation  bool   `toml:"has_seed_location"`
	RangeLocation    string `toml:"range_location,omitempty"`
	HasRangeLocation bool   `toml:"has_range_location"`
	Seeds            int    `toml:"seeds"`
	SeedRanges       int    `toml:"seed_ranges"`
	Stages           int    `toml:"stages"`
	Fragments        int    `toml:"fragments"`
	Elapsed          string `toml:"elapsed"`
}

func newTOMLReport(res almanac.Result) tomlReport {
	r := tomlReport{
		HasSeedLocation:  res.HasSeedLocation,
		HasRangeLocation: res.HasRangeLocation,
		Seeds:            res.Seeds,
		SeedRanges:       res.SeedRanges,
		Stages:           res.Stages,
		Fragments:        res.Fragments,
		Elapsed:          res.Elapsed.String(),
	}
	if res.HasSeedLocation {
		r.SeedLocation = strconv.FormatUint(res.SeedLocation, 10)
	}
	if res.HasRangeLocation {
		r.RangeLocation = strconv.FormatUint(res.RangeLocation, 10)
	}
	return r
}
