package restapi

import (
	"net/http"

	"tripgen.codingchallenge.net/internal/models"
	"tripgen.codingchallenge.net/internal/stops"
)

// stopsHandler lists the GTFS feed's stops when one is loaded, otherwise the
// stops named by the fare table. Each stop carries its incomplete-trip charge.
func (api *RestAPI) stopsHandler(w http.ResponseWriter, r *http.Request) {
	var catalog []stops.Stop
	if api.Stops != nil {
		catalog = api.Stops.Stops()
	} else {
		for _, id := range api.Fares.Stops() {
			catalog = append(catalog, stops.Stop{ID: id})
		}
	}

	list := make([]interface{}, 0, len(catalog))
	for _, stop := range catalog {
		model := models.StopModel{
			ID:   stop.ID,
			Name: stop.Name,
			Lat:  stop.Latitude,
			Lon:  stop.Longitude,
		}
		if amount, err := api.Fares.MaxFareFrom(stop.ID); err == nil {
			model.Priced = true
			model.MaxFare = &amount
		}
		list = append(list, model)
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
