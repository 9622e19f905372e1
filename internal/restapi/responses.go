package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/oriolmo/tasacion/internal/models"
	"github.com/oriolmo/tasacion/internal/valuation"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	response.CurrentTime = api.currentTime()
	if response.Code != 0 && response.Code != http.StatusOK {
		w.WriteHeader(response.Code)
	}
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

// currentTime stamps envelopes from the engine clock, the same instant /api/current-time.json reports.
func (api *RestAPI) currentTime() int64 {
	if api.Engine == nil {
		return models.ResponseCurrentTime()
	}
	return api.Engine.Now().UnixMilli()
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusNotFound, nil, "resource not found"))
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}

// sendAbsence answers a data-absence outcome: 404, the user-facing message as text and
// the entry carrying the outcome code.
func (api *RestAPI) sendAbsence(w http.ResponseWriter, r *http.Request, err error, entry interface{}) {
	response := models.NewResponse(http.StatusNotFound, map[string]interface{}{"entry": entry}, valuation.AbsenceMessage(err))
	api.sendResponse(w, r, response)
}
