// Package converter drives a tap file through trip generation and back out to a trip file.
package converter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/models"
	"tripgen.codingchallenge.net/internal/tapfile"
	"tripgen.codingchallenge.net/internal/trips"
)

// Converter runs one batch at a time; batches share only the read-only fare table.
type Converter struct {
	generator *trips.Generator
	logger    *slog.Logger
}

// New returns a Converter using generator. A logger carried by the context takes precedence over logger.
func New(generator *trips.Generator, logger *slog.Logger) *Converter {
	return &Converter{
		generator: generator,
		logger:    logger,
	}
}

func (c *Converter) loggerFor(ctx context.Context, batchID string) *slog.Logger {
	return logging.FromContextOr(ctx, c.logger).With(slog.String("batch_id", batchID), slog.String("component", "converter"))
}

// ConvertTaps generates the trips for an in-memory batch of taps.
func (c *Converter) ConvertTaps(ctx context.Context, taps []models.Tap) ([]models.Trip, models.TripSummary, error) {
	batchID := uuid.New().String()
	logger := c.loggerFor(ctx, batchID)
	start := time.Now()

	generated, err := c.generator.Generate(taps)
	if err != nil {
		logging.LogError(logger, "failed to generate trips", err, slog.Int("taps", len(taps)))
		return nil, models.TripSummary{}, err
	}

	summary := models.NewTripSummary(batchID, len(taps), len(trips.AllTapOns(taps)), generated)
	logging.LogOperation(logger, "trips_generated",
		slog.Int("taps", summary.Taps),
		slog.Int("tap_ons", summary.TapOns),
		slog.Int("completed", summary.Completed),
		slog.Int("cancelled", summary.Cancelled),
		slog.Int("incomplete", summary.Incomplete),
		slog.Duration("duration", time.Since(start)))

	return generated, summary, nil
}

// Convert validates both paths, reads the taps at inputPath and writes their
// trips to outputPath. Any failure leaves outputPath untouched. A batch
// without taps or without tap-ons produces no output file.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string) (models.TripSummary, error) {
	logger := logging.FromContextOr(ctx, c.logger).With(slog.String("input", inputPath), slog.String("output", outputPath))

	if err := tapfile.ValidatePaths(inputPath, outputPath); err != nil {
		return models.TripSummary{}, err
	}
	if tapfile.Exists(outputPath) {
		logger.Debug("output file exists and will be replaced")
	}

	logger.Debug("reading taps")
	taps, err := tapfile.ReadTaps(inputPath, logger)
	if err != nil {
		return models.TripSummary{}, err
	}
	if len(taps) == 0 {
		logger.Warn("no taps found in input file, nothing to write")
		return models.TripSummary{}, nil
	}

	generated, summary, err := c.ConvertTaps(logging.WithLogger(ctx, logger), taps)
	if err != nil {
		return models.TripSummary{}, err
	}
	if len(generated) == 0 {
		logger.Warn("no trips generated, nothing to write", slog.String("batch_id", summary.BatchID))
		return summary, nil
	}

	if err := tapfile.WriteTrips(outputPath, generated, logger); err != nil {
		return models.TripSummary{}, err
	}
	logging.LogOperation(logger, "trips_written",
		slog.String("batch_id", summary.BatchID),
		slog.Int("trips", len(generated)))

	return summary, nil
}
