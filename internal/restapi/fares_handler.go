package restapi

import (
	"errors"
	"net/http"

	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/models"
	"tripgen.codingchallenge.net/internal/trips"
	"tripgen.codingchallenge.net/internal/utils"
)

func (api *RestAPI) faresHandler(w http.ResponseWriter, r *http.Request) {
	entries := api.Fares.Entries()
	list := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		list = append(list, models.FareModel{
			FromStopID: entry.StopA,
			ToStopID:   entry.StopB,
			Amount:     entry.Amount,
		})
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

// fareHandler prices a trip between two stops. Ending where it started is
// a cancelled trip and is free, whether or not the stop is in the table.
func (api *RestAPI) fareHandler(w http.ResponseWriter, r *http.Request) {
	from := utils.ExtractParam(r, "from")
	to := utils.ExtractParam(r, "to")

	fieldErrors := utils.ValidateIDs(map[string]string{"from": from, "to": to})
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	amount := trips.CancelledTripCharge
	if from != to {
		var err error
		amount, err = api.Fares.FareBetween(from, to)
		if err != nil {
			api.fareLookupFailed(w, r, err)
			return
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.FareModel{
		FromStopID: from,
		ToStopID:   to,
		Amount:     amount,
	}))
}

// maxFareHandler returns what an incomplete trip from the stop is charged.
func (api *RestAPI) maxFareHandler(w http.ResponseWriter, r *http.Request) {
	stop := utils.ExtractParam(r, "stop")

	if err := utils.ValidateID(stop); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"stop": {err.Error()},
		})
		return
	}

	amount, err := api.Fares.MaxFareFrom(stop)
	if err != nil {
		api.fareLookupFailed(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.FareModel{
		FromStopID: stop,
		Amount:     amount,
	}))
}

func (api *RestAPI) fareLookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *fares.FareNotFoundError
	if errors.As(err, &notFound) {
		api.sendNotFound(w, r)
		return
	}
	api.serverErrorResponse(w, r, err)
}
