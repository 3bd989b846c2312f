package restapi

import (
	"errors"
	"net/http"

	"tripgen.codingchallenge.net/internal/models"
	"tripgen.codingchallenge.net/internal/tapfile"
	"tripgen.codingchallenge.net/internal/trips"
)

// maxTapsBodyBytes bounds a single POSTed batch.
const maxTapsBodyBytes = 8 << 20

func (api *RestAPI) tripsHandler(w http.ResponseWriter, r *http.Request) {
	taps, err := tapfile.DecodeTaps(http.MaxBytesReader(w, r.Body, maxTapsBodyBytes))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"taps": {"invalid taps document: " + err.Error()},
		})
		return
	}

	generated, summary, err := api.Converter.ConvertTaps(r.Context(), taps)
	if err != nil {
		var genErr *trips.TripGenerationError
		if errors.As(err, &genErr) {
			api.unprocessableResponse(w, r, err)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	if generated == nil {
		generated = []models.Trip{}
	}
	response := models.NewOKResponse(models.TripsData{
		Trips:   generated,
		Summary: summary,
	})
	api.sendResponse(w, r, response)
}
