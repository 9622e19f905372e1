package restapi

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/oriolmo/tasacion/internal/logging"
	"github.com/oriolmo/tasacion/internal/models"
	"github.com/oriolmo/tasacion/internal/valuation"
)

func (api *RestAPI) valuationHandler(w http.ResponseWriter, r *http.Request) {
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

	appraisal, err := api.Engine.Appraise(api.CatalogManager.Vehicles(), criteria)
	outcome := valuation.OutcomeOf(err)
	if outcome == "" {
		api.serverErrorResponse(w, r, fmt.Errorf("appraise %s %q: %w", criteria.Brand, criteria.ModelTrim, err))
		return
	}

	var report bytes.Buffer
	if renderErr := valuation.Render(&report, appraisal, err); renderErr != nil {
		api.serverErrorResponse(w, r, renderErr)
		return
	}

	recordValuation(outcome)
	attrs := []slog.Attr{slog.Int("matched", len(appraisal.Matched))}
	if appraisal.Result != nil {
		attrs = append(attrs, slog.Int("age_months", appraisal.Result.Age.Months))
	}
	logging.LogAppraisal(logging.FromContext(r.Context()), criteria.Brand, criteria.Fuel, criteria.ModelTrim, outcome, attrs...)

	entry := models.NewValuationEntry(appraisal, err, report.String())
	if err != nil {
		api.sendAbsence(w, r, err, entry)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
