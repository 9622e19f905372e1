package valuation

import (
	"sort"

	"cloud.google.com/go/civil"
)

// ModelOption is one selectable model, labeled with its power for disambiguation.
type ModelOption struct {
	Label     string  `json:"label"`
	ModelTrim string  `json:"modelTrim"`
	PowerCV   float64 `json:"powerCv"`
}

// Brands returns the distinct brands of the catalog in ascending order.
func Brands(records []VehicleModelRecord) []string {
	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, r := range records {
		if seen[r.Brand] {
			continue
		}
		seen[r.Brand] = true
		brands = append(brands, r.Brand)
	}
	sort.Strings(brands)
	return brands
}

// FilterByBrand keeps the records whose brand equals brand exactly.
func FilterByBrand(records []VehicleModelRecord, brand string) []VehicleModelRecord {
	return keep(records, func(r VehicleModelRecord) bool {
		return r.Brand == brand
	})
}

// FilterByPeriod keeps the records commercially valid in year, window ends included.
func FilterByPeriod(records []VehicleModelRecord, year int) []VehicleModelRecord {
	return keep(records, func(r VehicleModelRecord) bool {
		return r.ValidIn(year)
	})
}

// FuelOptions lists the wildcard followed by the distinct fuels of records in the order
// they first appear. Callers pass the brand and period filtered set so the choices stay
// consistent with what was already selected.
func FuelOptions(records []VehicleModelRecord) []string {
	seen := make(map[string]bool)
	options := []string{FuelWildcard}
	for _, r := range records {
		if seen[r.FuelType] {
			continue
		}
		seen[r.FuelType] = true
		options = append(options, r.FuelType)
	}
	return options
}

// FilterByFuel keeps the records with the given fuel. The wildcard returns the input unchanged.
func FilterByFuel(records []VehicleModelRecord, fuel string) []VehicleModelRecord {
	if fuel == FuelWildcard {
		return keep(records, func(VehicleModelRecord) bool { return true })
	}
	return keep(records, func(r VehicleModelRecord) bool {
		return r.FuelType == fuel
	})
}

// ModelOptions lists one option per distinct label of records, in record order.
func ModelOptions(records []VehicleModelRecord) []ModelOption {
	seen := make(map[string]bool)
	options := make([]ModelOption, 0, len(records))
	for _, r := range records {
		label := r.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		options = append(options, ModelOption{
			Label:     label,
			ModelTrim: r.ModelTrim,
			PowerCV:   r.PowerCV,
		})
	}
	return options
}

// FilterByModel keeps the records whose model trim equals modelTrim. Power is not part of
// the match, so two trims with the same name and different power both survive.
func FilterByModel(records []VehicleModelRecord, modelTrim string) []VehicleModelRecord {
	return keep(records, func(r VehicleModelRecord) bool {
		return r.ModelTrim == modelTrim
	})
}

// Candidates runs the brand, period and fuel stages: the set models are chosen from.
func Candidates(records []VehicleModelRecord, brand string, registration civil.Date, fuel string) []VehicleModelRecord {
	filtered := FilterByBrand(records, brand)
	filtered = FilterByPeriod(filtered, registration.Year)
	return FilterByFuel(filtered, fuel)
}

// Filter runs the whole pipeline for criteria. An empty result at any stage is passed on
// to the next stage, never reported as an error here.
func Filter(records []VehicleModelRecord, criteria SelectionCriteria) []VehicleModelRecord {
	candidates := Candidates(records, criteria.Brand, criteria.RegistrationDate, criteria.Fuel)
	return FilterByModel(candidates, criteria.ModelTrim)
}

func keep(records []VehicleModelRecord, pred func(VehicleModelRecord) bool) []VehicleModelRecord {
	out := make([]VehicleModelRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
