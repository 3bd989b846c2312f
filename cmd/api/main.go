// Command api serves trip generation and fare lookups over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripgen.codingchallenge.net/internal/app"
	"tripgen.codingchallenge.net/internal/appconf"
	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/restapi"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run serves until ctx is cancelled or a shutdown signal arrives and returns the
// process exit code. Deferred cleanup runs before the code is returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, err) // nolint:errcheck
		return exitUsage
	}

	logger := logging.NewStructuredLogger(stdout, cfg.LogLevel)

	srv, api, err := newServer(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		return exitFailure
	}
	defer api.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		return exitFailure
	}
	return exitOK
}

// parseConfig reads the environment (and .env) first, then applies explicitly set flags.
func parseConfig(args []string) (app.Config, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	envFile := fs.String("env-file", ".env", "Optional dotenv file with TRIPGEN_* settings")
	port := fs.Int("port", 0, "API server port")
	env := fs.String("env", "", "Environment (development|test|production)")
	apiKeys := fs.String("api-keys", "", "Comma Separated API Keys (test, etc)")
	rateLimit := fs.Int("rate-limit", 0, "Requests per second per API key; 0 disables limiting")
	logLevel := fs.String("log-level", "", "Log level (debug|info|warn|error)")
	faresPath := fs.String("fares", "", "YAML fare table; the built-in table when empty")
	gtfsPath := fs.String("gtfs", "", "Optional GTFS static zip; every fare table stop must appear in it")

	if err := fs.Parse(args); err != nil {
		return app.Config{}, err
	}

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		return app.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "env":
			cfg.Env, err = appconf.ParseEnvironment(*env)
		case "api-keys":
			cfg.ApiKeys = app.ParseAPIKeys(*apiKeys)
		case "rate-limit":
			cfg.RateLimit = *rateLimit
		case "log-level":
			cfg.LogLevel, err = logging.ParseLevel(*logLevel)
		case "fares":
			cfg.FaresPath = *faresPath
		case "gtfs":
			cfg.GTFSPath = *gtfsPath
		}
	})
	if err != nil {
		return app.Config{}, err
	}
	if len(cfg.ApiKeys) == 0 {
		return app.Config{}, errors.New("at least one API key is required")
	}
	return cfg, nil
}

func newServer(cfg app.Config, logger *slog.Logger) (*http.Server, *restapi.RestAPI, error) {
	application, err := app.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	api := restapi.NewRestAPI(application)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return srv, api, nil
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
