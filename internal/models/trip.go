package models

// TripStatus is the terminal outcome of a trip.
type TripStatus string

const (
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
	TripStatusIncomplete TripStatus = "INCOMPLETE"
)

// Trip is derived from a tap-on and its optional tap-off.
// Finished, DurationSecs and ToStopID are nil together, exactly when Status is INCOMPLETE.
type Trip struct {
	Started              Timestamp  `json:"started"`
	Finished             *Timestamp `json:"finished"`
	DurationSecs         *int64     `json:"durationSecs"`
	FromStopID           string     `json:"fromStopId"`
	ToStopID             *string    `json:"toStopId"`
	ChargeAmount         float64    `json:"chargeAmount"`
	CompanyID            string     `json:"companyId"`
	BusID                string     `json:"busId"`
	PrimaryAccountNumber string     `json:"primaryAccountNumber"`
	Status               TripStatus `json:"status"`
}

// Trips is the output document.
type Trips struct {
	Trips []Trip `json:"trips"`
}

// TripSummary counts the outcome of one conversion batch.
type TripSummary struct {
	BatchID    string `json:"batchId"`
	Taps       int    `json:"taps"`
	TapOns     int    `json:"tapOns"`
	Completed  int    `json:"completed"`
	Cancelled  int    `json:"cancelled"`
	Incomplete int    `json:"incomplete"`
}

// NewTripSummary tallies trips by status.
func NewTripSummary(batchID string, taps, tapOns int, trips []Trip) TripSummary {
	summary := TripSummary{
		BatchID: batchID,
		Taps:    taps,
		TapOns:  tapOns,
	}
	for _, trip := range trips {
		switch trip.Status {
		case TripStatusCompleted:
			summary.Completed++
		case TripStatusCancelled:
			summary.Cancelled++
		case TripStatusIncomplete:
			summary.Incomplete++
		}
	}
	return summary
}

// Total is the number of trips counted.
func (s TripSummary) Total() int {
	return s.Completed + s.Cancelled + s.Incomplete
}
