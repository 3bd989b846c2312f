package trips

import (
	"log/slog"

	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/models"
)

// Generator converts a batch of taps into trips. It holds no per-batch state,
// so one Generator may serve independent batches concurrently.
type Generator struct {
	builder *Builder
	logger  *slog.Logger
}

// NewGenerator returns a Generator charging from table. A nil logger discards output.
func NewGenerator(table *fares.Table, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		builder: NewBuilder(table),
		logger:  logger,
	}
}

// Generate builds one trip per tap-on, in tap-on order. The first failure
// aborts the batch and no trips are returned.
func (g *Generator) Generate(taps []models.Tap) ([]models.Trip, error) {
	tapOns := AllTapOns(taps)
	if len(tapOns) == 0 {
		g.logger.Debug("no ON taps in batch", slog.Int("taps", len(taps)))
		return []models.Trip{}, nil
	}

	trips := make([]models.Trip, 0, len(tapOns))
	for _, tapOn := range tapOns {
		g.logger.Debug("looking for OFF tap", slog.Int("tap_id", tapOn.ID))

		var tapOff *models.Tap
		if match, ok := MatchOff(taps, tapOn); ok {
			g.logger.Debug("matched OFF tap",
				slog.Int("tap_id", tapOn.ID),
				slog.Int("off_tap_id", match.ID))
			tapOff = &match
		} else {
			g.logger.Debug("no OFF tap, charging maximum fare", slog.Int("tap_id", tapOn.ID))
		}

		trip, err := g.builder.Build(tapOn, tapOff)
		if err != nil {
			return nil, err
		}

		g.logger.Debug("trip generated",
			slog.Int("tap_id", tapOn.ID),
			slog.String("status", string(trip.Status)),
			slog.Float64("charge", trip.ChargeAmount))
		trips = append(trips, trip)
	}

	return trips, nil
}
