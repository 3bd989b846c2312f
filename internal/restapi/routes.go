package restapi

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodPost, "/api/trips.json", validateAPIKey(api, api.tripsHandler))
	router.Handler(http.MethodGet, "/api/fares.json", validateAPIKey(api, api.faresHandler))
	router.Handler(http.MethodGet, "/api/stops.json", validateAPIKey(api, api.stopsHandler))
	router.Handler(http.MethodGet, "/api/fare/:from/:to", validateAPIKey(api, api.fareHandler))
	router.Handler(http.MethodGet, "/api/max-fare/:stop", validateAPIKey(api, api.maxFareHandler))
	router.Handler(http.MethodGet, "/api/current-time.json", validateAPIKey(api, api.currentTimeHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, recovered interface{}) {
		api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", recovered))
	}
}
