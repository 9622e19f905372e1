package restapi

import (
	"net/http"

	"github.com/oriolmo/tasacion/internal/models"
	"github.com/oriolmo/tasacion/internal/valuation"
)

func (api *RestAPI) modelsHandler(w http.ResponseWriter, r *http.Request) {
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

	candidates := valuation.Candidates(api.CatalogManager.Vehicles(), criteria.Brand, criteria.RegistrationDate, criteria.Fuel)

	entry := models.ModelOptions{
		Brand:  criteria.Brand,
		Date:   criteria.RegistrationDate.String(),
		Fuel:   criteria.Fuel,
		Models: valuation.ModelOptions(candidates),
	}

	if len(candidates) == 0 {
		entry.Outcome = valuation.OutcomeNoModelsAvailable
		api.sendAbsence(w, r, valuation.ErrNoModelsAvailable, entry)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
