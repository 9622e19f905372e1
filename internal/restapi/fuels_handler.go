package restapi

import (
	"net/http"

	"github.com/oriolmo/tasacion/internal/models"
	"github.com/oriolmo/tasacion/internal/valuation"
)

// fuelsHandler lists the fuel choices for a brand and registration date: the wildcard
// first, then the fuels of the brand's models on sale in that year.
func (api *RestAPI) fuelsHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := api.parseSelectionQuery(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	criteria, fieldErrors := api.criteria(query)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !api.brandExists(criteria.Brand) {
		api.sendNotFound(w, r)
		return
	}

	inPeriod := valuation.FilterByPeriod(
		valuation.FilterByBrand(api.CatalogManager.Vehicles(), criteria.Brand),
		criteria.RegistrationDate.Year,
	)

	api.sendResponse(w, r, models.NewEntryResponse(models.FuelOptions{
		Brand: criteria.Brand,
		Date:  criteria.RegistrationDate.String(),
		Fuels: valuation.FuelOptions(inPeriod),
	}))
}
