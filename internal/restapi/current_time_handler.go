package restapi

import (
	"net/http"

	"github.com/oriolmo/tasacion/internal/models"
)

// currentTimeHandler reports the instant vehicle ages are measured against.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	now := api.Engine.Now().In(api.Config.Location())
	api.sendResponse(w, r, models.NewEntryResponse(models.NewCurrentTimeModel(now)))
}
