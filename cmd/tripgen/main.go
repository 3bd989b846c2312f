// Command tripgen converts a JSON file of card taps into a JSON file of charged trips.
//
//	tripgen [flags] <taps.json> <trips.json>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tripgen.codingchallenge.net/internal/app"
	"tripgen.codingchallenge.net/internal/appconf"
	"tripgen.codingchallenge.net/internal/logging"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args, converts one file and returns the process exit code.
// All diagnostics go to stderr as JSON log lines.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("tripgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: tripgen [flags] <taps.json> <trips.json>") // nolint:errcheck
		fs.PrintDefaults()
	}

	envFile := fs.String("env-file", ".env", "Optional dotenv file with TRIPGEN_* settings")
	envFlag := fs.String("env", "", "Environment (development|test|production)")
	logLevelFlag := fs.String("log-level", "", "Log level (debug|info|warn|error)")
	faresFlag := fs.String("fares", "", "YAML fare table; the built-in table when empty")
	gtfsFlag := fs.String("gtfs", "", "Optional GTFS static zip; every fare table stop must appear in it")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err) // nolint:errcheck
		return exitUsage
	}
	overrides := flagValues{env: *envFlag, logLevel: *logLevelFlag, fares: *faresFlag, gtfs: *gtfsFlag}
	if err := applyFlags(fs, &cfg, overrides); err != nil {
		fmt.Fprintf(stderr, "invalid flag: %v\n", err) // nolint:errcheck
		return exitUsage
	}

	logger := logging.NewStructuredLogger(stderr, cfg.LogLevel).
		With(slog.String("env", string(cfg.Env)))

	if fs.NArg() != 2 {
		logging.LogError(logger, "expected exactly two arguments: input and output file paths", nil,
			slog.Int("args", fs.NArg()))
		fs.Usage()
		return exitUsage
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to start", err)
		return exitFailure
	}

	summary, err := application.Converter.Convert(context.Background(), inputPath, outputPath)
	if err != nil {
		logging.LogError(logger, "conversion failed", err,
			slog.String("input", inputPath),
			slog.String("output", outputPath))
		return exitFailure
	}

	logging.LogOperation(logger, "conversion_finished",
		slog.String("batch_id", summary.BatchID),
		slog.Int("trips", summary.Total()))
	return exitOK
}

type flagValues struct {
	env      string
	logLevel string
	fares    string
	gtfs     string
}

// applyFlags overrides cfg with every flag that was set explicitly.
func applyFlags(fs *flag.FlagSet, cfg *app.Config, values flagValues) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "env":
			cfg.Env, err = appconf.ParseEnvironment(values.env)
		case "log-level":
			cfg.LogLevel, err = logging.ParseLevel(values.logLevel)
		case "fares":
			cfg.FaresPath = values.fares
		case "gtfs":
			cfg.GTFSPath = values.gtfs
		}
	})
	return err
}
