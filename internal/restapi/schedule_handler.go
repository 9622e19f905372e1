package restapi

import (
	"net/http"

	"github.com/oriolmo/tasacion/internal/models"
)

func (api *RestAPI) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(models.NewDepreciationBands(api.CatalogManager.Schedule())))
}
