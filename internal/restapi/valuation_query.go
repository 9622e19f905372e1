package restapi

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oriolmo/tasacion/internal/utils"
	"github.com/oriolmo/tasacion/internal/valuation"
)

// selectionQuery is the raw selection taken from the path and query string.
// Field names in validation errors are the wire names, taken from the query tag.
type selectionQuery struct {
	Brand string `query:"brand" validate:"required,max=200,catalog_label"`
	Date  string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Fuel  string `query:"fuel" validate:"omitempty,max=200,catalog_label"`
	Model string `query:"model" validate:"omitempty,max=200,catalog_label"`
}

func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("query")
	})
	_ = v.RegisterValidation("catalog_label", func(fl validator.FieldLevel) bool {
		return utils.ValidateLabel(fl.Field().String()) == nil
	})
	return v
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "datetime":
		return err.Field() + " must be a date in YYYY-MM-DD format"
	case "catalog_label":
		return err.Field() + " contains invalid characters"
	default:
		return err.Field() + " is invalid"
	}
}

// parseSelectionQuery reads the brand path parameter plus date, fuel and model. It returns
// field errors keyed by wire name when the input is malformed.
func (api *RestAPI) parseSelectionQuery(r *http.Request) (selectionQuery, map[string][]string) {
	q := r.URL.Query()
	query := selectionQuery{
		Brand: utils.ExtractParam(r, "brand"),
		Date:  strings.TrimSpace(q.Get("date")),
		Fuel:  strings.TrimSpace(q.Get("fuel")),
		Model: strings.TrimSpace(q.Get("model")),
	}

	fieldErrors := make(map[string][]string)
	if err := api.validate.Struct(query); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			fieldErrors["query"] = append(fieldErrors["query"], err.Error())
			return query, fieldErrors
		}
		for _, fe := range validationErrors {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], getValidationErrorMessage(fe))
		}
	}
	return query, fieldErrors
}

// criteria resolves the registration date against the engine clock and applies the fuel wildcard default.
func (api *RestAPI) criteria(query selectionQuery) (valuation.SelectionCriteria, map[string][]string) {
	date, fieldErrors, ok := utils.ParseDateParameter("date", query.Date, api.Engine.Now(), api.Config.Location())
	if !ok {
		return valuation.SelectionCriteria{}, fieldErrors
	}

	fuel := query.Fuel
	if fuel == "" {
		fuel = valuation.FuelWildcard
	}

	return valuation.SelectionCriteria{
		Brand:            query.Brand,
		RegistrationDate: date,
		Fuel:             fuel,
		ModelTrim:        query.Model,
	}, nil
}
