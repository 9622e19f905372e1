package restapi

import (
	"net/http"
	"sort"

	"github.com/oriolmo/tasacion/internal/models"
)

func (api *RestAPI) brandsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.CatalogManager.Brands()))
}

// brandExists relies on Brands being sorted.
func (api *RestAPI) brandExists(brand string) bool {
	brands := api.CatalogManager.Brands()
	i := sort.SearchStrings(brands, brand)
	return i < len(brands) && brands[i] == brand
}
