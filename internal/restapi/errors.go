package restapi

import (
	"encoding/json"
	"net/http"

	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// writeJSONError writes the response envelope with no data.
func writeJSONError(w http.ResponseWriter, code int, text string) error {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	setJSONResponseType(&w)
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(response)
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, code int, text string) {
	if err := writeJSONError(w, code, text); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode error response", err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)
	api.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// unprocessableResponse reports a batch that decoded but could not be turned into trips.
func (api *RestAPI) unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.sendError(w, r, http.StatusUnprocessableEntity, err.Error())
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode validation error response", err)
	}
}
