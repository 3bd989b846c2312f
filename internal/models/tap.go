package models

import (
	"encoding/json"
	"strings"
)

// TapType is the kind of a card scan. The zero value is TapTypeUnknown.
type TapType int

const (
	TapTypeUnknown TapType = iota
	TapTypeOn
	TapTypeOff
)

// ParseTapType maps "ON"/"OFF" (any case, no surrounding space) to a TapType.
// Anything else is TapTypeUnknown.
func ParseTapType(value string) TapType {
	switch strings.ToUpper(value) {
	case "ON":
		return TapTypeOn
	case "OFF":
		return TapTypeOff
	default:
		return TapTypeUnknown
	}
}

func (t TapType) String() string {
	switch t {
	case TapTypeOn:
		return "ON"
	case TapTypeOff:
		return "OFF"
	default:
		return UnknownValue
	}
}

// MarshalJSON writes unknown kinds as null so they round-trip to TapTypeUnknown.
func (t TapType) MarshalJSON() ([]byte, error) {
	if t == TapTypeUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON never fails on an unrecognised kind; it decodes to TapTypeUnknown.
func (t *TapType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = TapTypeUnknown
		return nil
	}
	*t = ParseTapType(raw)
	return nil
}

// Tap is a single scan at a stop.
type Tap struct {
	ID                   int       `json:"id"`
	DateTimeUTC          Timestamp `json:"datetimeUTC"`
	TapType              TapType   `json:"tapType"`
	StopID               string    `json:"stopId"`
	CompanyID            string    `json:"companyId"`
	BusID                string    `json:"busId"`
	PrimaryAccountNumber string    `json:"primaryAccountNumber"`
}

// SameJourneyKey reports whether other was made with the same card on the same company's bus.
func (t Tap) SameJourneyKey(other Tap) bool {
	return t.PrimaryAccountNumber == other.PrimaryAccountNumber &&
		t.CompanyID == other.CompanyID &&
		t.BusID == other.BusID
}

// Taps is the input document.
type Taps struct {
	Taps []Tap `json:"taps"`
}
