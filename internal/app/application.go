package app

import (
	"fmt"
	"log/slog"

	"tripgen.codingchallenge.net/internal/converter"
	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/stops"
	"tripgen.codingchallenge.net/internal/trips"
)

// Application holds the dependencies shared by the CLI, the HTTP handlers
// and their middleware. Everything in it is safe for concurrent use.
type Application struct {
	Config    Config
	Logger    *slog.Logger
	Fares     *fares.Table
	Stops     *stops.Catalog // nil without a GTFS feed
	Generator *trips.Generator
	Converter *converter.Converter
}

// New loads the fare table named by cfg and wires the conversion pipeline.
// With a GTFS feed configured, every fare table stop must appear in it.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	table, err := fares.LoadTableOrDefault(cfg.FaresPath)
	if err != nil {
		return nil, fmt.Errorf("loading fare table: %w", err)
	}

	application := NewWithTable(cfg, logger, table)
	if cfg.GTFSPath == "" {
		return application, nil
	}

	catalog, err := stops.LoadCatalog(cfg.GTFSPath)
	if err != nil {
		return nil, fmt.Errorf("loading stops: %w", err)
	}
	if err := catalog.CheckFares(table); err != nil {
		return nil, err
	}
	application.Stops = catalog
	application.Logger.Info("loaded GTFS stops",
		slog.String("path", cfg.GTFSPath),
		slog.Int("stops", catalog.Len()))
	return application, nil
}

// NewWithTable wires the pipeline around an already built fare table.
func NewWithTable(cfg Config, logger *slog.Logger, table *fares.Table) *Application {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	generator := trips.NewGenerator(table, logger.With(slog.String("component", "generator")))
	return &Application{
		Config:    cfg,
		Logger:    logger,
		Fares:     table,
		Generator: generator,
		Converter: converter.New(generator, logger),
	}
}
