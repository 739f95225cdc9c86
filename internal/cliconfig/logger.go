package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/rangemap/pkg/log"
)

// Logger builds the process logger described by cfg, writing to w.
// cfg should already be validated.
func Logger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	return log.NewZerologLogger(log.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    w,
	})
}
