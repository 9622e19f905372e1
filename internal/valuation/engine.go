package valuation

import (
	"time"

	"cloud.google.com/go/civil"
)

// UpliftRate is the fixed addition applied to the depreciated value. It is a policy
// constant of the valuation and is not read from any table.
const UpliftRate = 0.20

// Age is the elapsed time between a registration date and "now".
// Years and MonthsRemainder are plain calendar differences: MonthsRemainder may be
// negative and Years is not floor(Months/12).
type Age struct {
	Months          int `json:"months"`
	Years           int `json:"years"`
	MonthsRemainder int `json:"monthsRemainder"`
}

// AgeAt computes the age of a vehicle registered on registration as of now.
func AgeAt(registration civil.Date, now time.Time) Age {
	years := now.Year() - registration.Year
	months := int(now.Month()) - int(registration.Month)
	return Age{
		Months:          years*12 + months,
		Years:           years,
		MonthsRemainder: months,
	}
}

// LookupPercentage scans schedule in stored order and returns the percentage of the first
// band containing ageMonths. Overlapping bands are resolved by position, not by fit.
func LookupPercentage(schedule []DepreciationBand, ageMonths int) (float64, bool) {
	for _, band := range schedule {
		if band.Contains(ageMonths) {
			return band.Percentage, true
		}
	}
	return 0, false
}

// Engine values resolved vehicles against a depreciation schedule.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	schedule []DepreciationBand
	now      func() time.Time
}

// NewEngine creates an Engine. A nil clock means time.Now.
func NewEngine(schedule []DepreciationBand, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{schedule: schedule, now: clock}
}

// In returns an engine whose clock reads in loc, so ages are counted on the calendar of
// loc. A nil loc returns e unchanged.
func (e *Engine) In(loc *time.Location) *Engine {
	if loc == nil {
		return e
	}
	clock := e.now
	return &Engine{
		schedule: e.schedule,
		now:      func() time.Time { return clock().In(loc) },
	}
}

// Now returns the instant the engine measures ages against.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Value computes the valuation of record for a vehicle registered on registration.
// It returns ErrNoPercentageBand, and no figures, when the age falls outside every band.
func (e *Engine) Value(record VehicleModelRecord, registration civil.Date) (Result, error) {
	age := AgeAt(registration, e.now())

	percentage, ok := LookupPercentage(e.schedule, age.Months)
	if !ok {
		return Result{}, ErrNoPercentageBand
	}

	current := record.BaseValue * (percentage / 100)
	return Result{
		Age:          age,
		Percentage:   percentage,
		BaseValue:    record.BaseValue,
		CurrentValue: current,
		FinalValue:   current * (1 + UpliftRate),
	}, nil
}

// Appraisal is everything one interaction produces. Result is nil unless the vehicle
// could be valued.
type Appraisal struct {
	Criteria   SelectionCriteria
	Candidates []VehicleModelRecord
	Matched    []VehicleModelRecord
	Result     *Result
}

// Appraise runs the filter pipeline over records and values the first matched record.
// The three absence outcomes are returned as ErrNoModelsAvailable, ErrNoVehicleMatched and
// ErrNoPercentageBand; the returned Appraisal still carries whatever was resolved.
func (e *Engine) Appraise(records []VehicleModelRecord, criteria SelectionCriteria) (Appraisal, error) {
	appraisal := Appraisal{Criteria: criteria}

	appraisal.Candidates = Candidates(records, criteria.Brand, criteria.RegistrationDate, criteria.Fuel)
	if len(appraisal.Candidates) == 0 {
		return appraisal, ErrNoModelsAvailable
	}

	appraisal.Matched = FilterByModel(appraisal.Candidates, criteria.ModelTrim)
	if len(appraisal.Matched) == 0 {
		return appraisal, ErrNoVehicleMatched
	}

	result, err := e.Value(appraisal.Matched[0], criteria.RegistrationDate)
	if err != nil {
		return appraisal, err
	}
	appraisal.Result = &result
	return appraisal, nil
}
