package valuation

import "errors"

// Absence outcomes. None of them is a failure of the program: each one means the data
// needed for a valuation is not there, and each maps to its own message for the user.
var (
	ErrNoModelsAvailable = errors.New("no models available for the selected criteria")
	ErrNoVehicleMatched  = errors.New("no vehicle matches the selected criteria")
	ErrNoPercentageBand  = errors.New("vehicle age is outside every depreciation band")
)

// Outcome codes used on the wire.
const (
	OutcomeValued            = "VALUED"
	OutcomeNoModelsAvailable = "NO_MODELS_AVAILABLE"
	OutcomeNoVehicleMatched  = "NO_VEHICLE_MATCHED"
	OutcomeNoPercentageBand  = "NO_PERCENTAGE_BAND"
)

// OutcomeOf returns the wire code for err, or "" when err is not an absence outcome.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeValued
	case errors.Is(err, ErrNoModelsAvailable):
		return OutcomeNoModelsAvailable
	case errors.Is(err, ErrNoVehicleMatched):
		return OutcomeNoVehicleMatched
	case errors.Is(err, ErrNoPercentageBand):
		return OutcomeNoPercentageBand
	default:
		return ""
	}
}

// IsAbsence reports whether err is one of the data-absence outcomes.
func IsAbsence(err error) bool {
	return err != nil && OutcomeOf(err) != ""
}

// AbsenceMessage returns the user-facing text for an absence outcome.
func AbsenceMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoModelsAvailable):
		return "No se encontraron modelos disponibles para los criterios seleccionados."
	case errors.Is(err, ErrNoVehicleMatched):
		return "No se encontraron coches que cumplan con los criterios seleccionados."
	case errors.Is(err, ErrNoPercentageBand):
		return "No existe un porcentaje de tasación para la antigüedad del coche."
	default:
		return ""
	}
}
