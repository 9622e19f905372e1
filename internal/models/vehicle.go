package models

import (
	"fmt"

	"github.com/oriolmo/tasacion/internal/valuation"
)

// FuelOptions is the entry of the fuels endpoint.
type FuelOptions struct {
	Brand string   `json:"brand"`
	Date  string   `json:"date"`
	Fuels []string `json:"fuels"`
}

// ModelOptions is the entry of the models endpoint. Outcome is only set when no model qualifies.
type ModelOptions struct {
	Outcome string                  `json:"outcome,omitempty"`
	Brand   string                  `json:"brand"`
	Date    string                  `json:"date"`
	Fuel    string                  `json:"fuel"`
	Models  []valuation.ModelOption `json:"models"`
}

// VehicleDetail is the information block shown for a matched catalog record.
type VehicleDetail struct {
	Brand             string  `json:"brand"`
	ModelTrim         string  `json:"modelTrim"`
	Label             string  `json:"label"`
	CommercialPeriod  string  `json:"commercialPeriod"`
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

func NewVehicleDetail(r valuation.VehicleModelRecord) VehicleDetail {
	return VehicleDetail{
		Brand:             r.Brand,
		ModelTrim:         r.ModelTrim,
		Label:             r.Label(),
		CommercialPeriod:  fmt.Sprintf("%d - %d", r.ValidFrom, r.ValidTo),
		ValidFrom:         r.ValidFrom,
		ValidTo:           r.ValidTo,
		FuelType:          r.FuelType,
		DisplacementCC:    r.DisplacementCC,
		Cylinders:         r.Cylinders,
		PowerKW:           r.PowerKW,
		FiscalCoefficient: r.FiscalCoefficient,
		PowerCV:           r.PowerCV,
		BaseValue:         r.BaseValue,
	}
}

func NewVehicleDetails(records []valuation.VehicleModelRecord) []VehicleDetail {
	details := make([]VehicleDetail, 0, len(records))
	for _, r := range records {
		details = append(details, NewVehicleDetail(r))
	}
	return details
}

// ValuationFigures are the figures of a valuation rounded to 2 decimals.
type ValuationFigures struct {
	AgeMonths          int     `json:"ageMonths"`
	AgeYears           int     `json:"ageYears"`
	AgeMonthsRemainder int     `json:"ageMonthsRemainder"`
	Percentage         float64 `json:"percentage"`
	BaseValue          float64 `json:"baseValue"`
	CurrentValue       float64 `json:"currentValue"`
	FinalValue         float64 `json:"finalValue"`
	UpliftRate         float64 `json:"upliftRate"`
}

func NewValuationFigures(result valuation.Result) ValuationFigures {
	rounded := result.Rounded()
	return ValuationFigures{
		AgeMonths:          rounded.Age.Months,
		AgeYears:           rounded.Age.Years,
		AgeMonthsRemainder: rounded.Age.MonthsRemainder,
		Percentage:         rounded.Percentage,
		BaseValue:          rounded.BaseValue,
		CurrentValue:       rounded.CurrentValue,
		FinalValue:         rounded.FinalValue,
		UpliftRate:         valuation.UpliftRate,
	}
}

// ValuationEntry is the entry of the valuation endpoint for every outcome.
// Valuation is only present when Outcome is VALUED; Message only when it is not.
type ValuationEntry struct {
	Outcome          string            `json:"outcome"`
	Message          string            `json:"message,omitempty"`
	Brand            string            `json:"brand"`
	RegistrationDate string            `json:"registrationDate"`
	Fuel             string            `json:"fuel"`
	ModelTrim        string            `json:"modelTrim"`
	Vehicles         []VehicleDetail   `json:"vehicles"`
	Valuation        *ValuationFigures `json:"valuation,omitempty"`
	Report           string            `json:"report"`
}

// NewValuationEntry builds the entry for appraisal. err must be nil or an absence outcome.
func NewValuationEntry(appraisal valuation.Appraisal, err error, report string) ValuationEntry {
	entry := ValuationEntry{
		Outcome:          valuation.OutcomeOf(err),
		Message:          valuation.AbsenceMessage(err),
		Brand:            appraisal.Criteria.Brand,
		RegistrationDate: appraisal.Criteria.RegistrationDate.String(),
		Fuel:             appraisal.Criteria.Fuel,
		ModelTrim:        appraisal.Criteria.ModelTrim,
		Vehicles:         NewVehicleDetails(appraisal.Matched),
		Report:           report,
	}
	if appraisal.Result != nil {
		figures := NewValuationFigures(*appraisal.Result)
		entry.Valuation = &figures
	}
	return entry
}

// DepreciationBand is one row of the schedule endpoint.
type DepreciationBand struct {
	Position   int     `json:"position"`
	FromMonths int     `json:"fromMonths"`
	ToMonths   int     `json:"toMonths"`
	Percentage float64 `json:"percentage"`
}

// NewDepreciationBands keeps the stored order; Position is 0-based.
func NewDepreciationBands(schedule []valuation.DepreciationBand) []DepreciationBand {
	bands := make([]DepreciationBand, 0, len(schedule))
	for i, b := range schedule {
		bands = append(bands, DepreciationBand{
			Position:   i,
			FromMonths: b.FromMonths,
			ToMonths:   b.ToMonths,
			Percentage: b.Percentage,
		})
	}
	return bands
}
