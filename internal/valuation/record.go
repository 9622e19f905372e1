package valuation

import (
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
)

// FuelWildcard is the fuel option that disables the fuel filter.
const FuelWildcard = "Todos"

// VehicleModelRecord is one catalog entry. Records are built once at load time and never mutated.
type VehicleModelRecord struct {
	Brand             string  `json:"brand"`
	ModelTrim         string  `json:"modelTrim"`
	ValidFrom         int     `json:"validFrom"`
	ValidTo           int     `json:"validTo"`
	FuelType          string  `json:"fuelType"`
	DisplacementCC    float64 `json:"displacementCc"`
	Cylinders         int     `json:"cylinders"`
	PowerKW           float64 `json:"powerKw"`
	FiscalCoefficient float64 `json:"fiscalCoefficient"`
	PowerCV           float64 `json:"powerCv"`
	BaseValue         float64 `json:"baseValue"`
}

// ValidIn reports whether year falls inside the inclusive commercial window.
func (r VehicleModelRecord) ValidIn(year int) bool {
	return r.ValidFrom <= year && year <= r.ValidTo
}

// Label is the text offered when choosing a model: "<modelTrim> - <powerCv> Cv".
func (r VehicleModelRecord) Label() string {
	return fmt.Sprintf("%s - %s Cv", r.ModelTrim, strconv.FormatFloat(r.PowerCV, 'f', -1, 64))
}

// DepreciationBand maps the closed interval [FromMonths, ToMonths] to a percentage of the base value.
type DepreciationBand struct {
	FromMonths int     `json:"fromMonths"`
	ToMonths   int     `json:"toMonths"`
	Percentage float64 `json:"percentage"`
}

// Contains reports whether ageMonths lies inside the band, both ends included.
func (b DepreciationBand) Contains(ageMonths int) bool {
	return b.FromMonths <= ageMonths && ageMonths <= b.ToMonths
}

// SelectionCriteria is what a user picked in one interaction.
type SelectionCriteria struct {
	Brand            string
	RegistrationDate civil.Date
	Fuel             string
	ModelTrim        string
}
