package restapi

import (
	"net/http"
	"time"

	"tripgen.codingchallenge.net/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeData(time.Now().UTC())
	response := models.NewOKResponse(timeData)

	api.sendResponse(w, r, response)
}
