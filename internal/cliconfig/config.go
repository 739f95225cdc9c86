package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/bft-labs/rangemap/pkg/log"
)

// Output formats for the solve report.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTOML = "toml"
)

// Config holds CLI configuration for rangemap.
type Config struct {
	// Input is the almanac file to solve.
	Input string

	// Workers bounds how many seed ranges are expanded concurrently.
	Workers int

	LogLevel  string
	LogFormat string

	// Output is one of OutputText, OutputJSON, OutputTOML.
	Output string

	// Watch re-solves whenever Input changes.
	Watch bool

	// Trace logs every range emitted by every stage. Forces debug logging.
	Trace bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
		Output:    OutputText,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	if c.Trace {
		c.LogLevel = "debug"
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputTOML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value. Non-positive values are ignored.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
