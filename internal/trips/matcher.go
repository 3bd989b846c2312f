// Package trips turns card taps into charged trips.
package trips

import "tripgen.codingchallenge.net/internal/models"

// AllTapOns returns every ON tap in input order.
func AllTapOns(taps []models.Tap) []models.Tap {
	tapOns := make([]models.Tap, 0, len(taps))
	for _, tap := range taps {
		if tap.TapType == models.TapTypeOn {
			tapOns = append(tapOns, tap)
		}
	}
	return tapOns
}

// MatchOff scans the whole list and returns the first OFF tap, in list order,
// made with the same card on the same company's bus strictly after tapOn.
// List order is the matching policy: the result is not necessarily the
// chronologically earliest candidate. Tap-offs are not consumed, so one
// tap-off can close more than one tap-on in malformed input.
func MatchOff(taps []models.Tap, tapOn models.Tap) (models.Tap, bool) {
	for _, tap := range taps {
		if tap.TapType != models.TapTypeOff {
			continue
		}
		if !tap.SameJourneyKey(tapOn) {
			continue
		}
		if tap.DateTimeUTC.After(tapOn.DateTimeUTC.Time) {
			return tap, true
		}
	}
	return models.Tap{}, false
}
