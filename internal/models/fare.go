package models

// FareModel is a fare table entry as exposed by the API.
type FareModel struct {
	FromStopID string  `json:"fromStopId"`
	ToStopID   string  `json:"toStopId,omitempty"`
	Amount     float64 `json:"amount"`
}

// TripsData is the payload of a conversion response.
type TripsData struct {
	Trips   []Trip      `json:"trips"`
	Summary TripSummary `json:"summary"`
}

// StopModel is a stop known to the fare table, optionally named by a GTFS feed.
type StopModel struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Priced  bool     `json:"priced"`
	MaxFare *float64 `json:"maxFare"`
}
