package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/rangemap/internal/app"
	"github.com/bft-labs/rangemap/internal/cliconfig"
	"github.com/bft-labs/rangemap/pkg/log"
)

const longHelp = `Translate seeds through a chain of seven remapping tables and report the
lowest location reached.

Seeds are evaluated twice: as individual points, and pairwise as
(start, length) ranges. Ranges are split along table boundaries instead of
being enumerated, so billions of seeds resolve in milliseconds.

Configuration is layered: defaults, then $HOME/.rangemap/config.toml (or
--config), then RANGEMAP_* environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  rangemap almanac.txt
  rangemap --output json --workers 8 almanac.txt
  rangemap --watch --trace almanac.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	// replaced once the configuration is known
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:           "rangemap [input]",
		Short:         "Find the lowest location reachable from an almanac's seeds",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// positional input wins over everything
			if len(args) == 1 {
				cfg.Input = args[0]
				changed["input"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl, err := cliconfig.Logger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			logger = zl
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := app.New(cfg, log.NewZerologAdapterWithLogger(logger), cmd.OutOrStdout())
			return a.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.rangemap/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "almanac file to solve (or pass it as the argument)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "seed ranges expanded concurrently")
	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "report format: text, json or toml")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-solve whenever the input file changes")
	root.Flags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every range emitted by every stage (implies debug)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("rangemap")
		os.Exit(1)
	}
}
