package trips

import (
	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/models"
)

const (
	panA = "5500005555555559"
	panB = "4111111111111111"
)

func newTap(id int, at string, kind models.TapType, stop, company, bus, pan string) models.Tap {
	return models.Tap{
		ID:                   id,
		DateTimeUTC:          models.MustParseTimestamp("22-01-2021 " + at),
		TapType:              kind,
		StopID:               stop,
		CompanyID:            company,
		BusID:                bus,
		PrimaryAccountNumber: pan,
	}
}

func on(id int, at, stop string) models.Tap {
	return newTap(id, at, models.TapTypeOn, stop, "Company1", "Bus37", panA)
}

func off(id int, at, stop string) models.Tap {
	return newTap(id, at, models.TapTypeOff, stop, "Company1", "Bus37", panA)
}

func defaultBuilder() *Builder {
	return NewBuilder(fares.DefaultTable())
}
