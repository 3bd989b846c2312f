package trips

import (
	"strings"

	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/models"
)

// CancelledTripCharge is what a trip that starts and ends at the same stop costs.
// It applies regardless of the fare table, which never prices a stop against itself.
const CancelledTripCharge = 0.00

// Builder derives a single trip from a tap-on and its optional tap-off.
type Builder struct {
	fares *fares.Table
}

// NewBuilder returns a Builder charging from table.
func NewBuilder(table *fares.Table) *Builder {
	return &Builder{fares: table}
}

// Build assembles the trip started by tapOn. A nil tapOff yields an INCOMPLETE
// trip charged the maximum fare from the origin.
func (b *Builder) Build(tapOn models.Tap, tapOff *models.Tap) (models.Trip, error) {
	origin := tapOn.StopID
	if strings.TrimSpace(origin) == "" {
		return models.Trip{}, &TripGenerationError{TapID: tapOn.ID, Reason: "tap ON has no stop id"}
	}

	trip := models.Trip{
		Started:              tapOn.DateTimeUTC,
		FromStopID:           origin,
		CompanyID:            tapOn.CompanyID,
		BusID:                tapOn.BusID,
		PrimaryAccountNumber: tapOn.PrimaryAccountNumber,
	}

	if tapOff == nil {
		charge, err := b.fares.MaxFareFrom(origin)
		if err != nil {
			return models.Trip{}, &TripGenerationError{TapID: tapOn.ID, Reason: "no maximum fare for incomplete trip", Err: err}
		}
		trip.ChargeAmount = charge
		trip.Status = models.TripStatusIncomplete
		return trip, nil
	}

	duration, err := tripDurationSecs(tapOn, *tapOff)
	if err != nil {
		return models.Trip{}, err
	}

	finished := tapOff.DateTimeUTC
	destination := tapOff.StopID
	trip.Finished = &finished
	trip.DurationSecs = &duration
	trip.ToStopID = &destination

	if origin == destination {
		trip.ChargeAmount = CancelledTripCharge
		trip.Status = models.TripStatusCancelled
		return trip, nil
	}

	charge, err := b.fares.FareBetween(origin, destination)
	if err != nil {
		return models.Trip{}, &TripGenerationError{TapID: tapOn.ID, Reason: "no fare for completed trip", Err: err}
	}
	trip.ChargeAmount = charge
	trip.Status = models.TripStatusCompleted
	return trip, nil
}

// tripDurationSecs truncates the elapsed time to whole seconds.
// It avoids time.Duration, which saturates after roughly 292 years.
func tripDurationSecs(tapOn, tapOff models.Tap) (int64, error) {
	if !tapOff.DateTimeUTC.After(tapOn.DateTimeUTC.Time) {
		return 0, &TripGenerationError{
			TapID:  tapOn.ID,
			Reason: "tap OFF " + tapOff.DateTimeUTC.String() + " is not after tap ON " + tapOn.DateTimeUTC.String(),
		}
	}
	start, finish := tapOn.DateTimeUTC.Time, tapOff.DateTimeUTC.Time
	secs := finish.Unix() - start.Unix()
	if finish.Nanosecond() < start.Nanosecond() {
		secs--
	}
	return secs, nil
}
