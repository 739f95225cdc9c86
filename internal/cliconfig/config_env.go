package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RANGEMAP_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("RANGEMAP_INPUT"), &cfg.Input)
	s.setString("log-level", os.Getenv("RANGEMAP_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("RANGEMAP_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("output", os.Getenv("RANGEMAP_OUTPUT"), &cfg.Output)

	if err := s.setIntFromString("workers", os.Getenv("RANGEMAP_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("RANGEMAP_WATCH"), &cfg.Watch)
	s.setBoolFromString("trace", os.Getenv("RANGEMAP_TRACE"), &cfg.Trace)

	return nil
}
