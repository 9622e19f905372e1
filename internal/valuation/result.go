package valuation

import "github.com/shopspring/decimal"

// Result is a computed valuation at full precision.
type Result struct {
	Age          Age     `json:"age"`
	Percentage   float64 `json:"percentage"`
	BaseValue    float64 `json:"baseValue"`
	CurrentValue float64 `json:"currentValue"`
	FinalValue   float64 `json:"finalValue"`
}

// Rounded returns a copy with every figure rounded half away from zero to 2 decimals.
// Use it for display only; further arithmetic must use the unrounded Result.
func (r Result) Rounded() Result {
	r.Percentage = round2(r.Percentage)
	r.BaseValue = round2(r.BaseValue)
	r.CurrentValue = round2(r.CurrentValue)
	r.FinalValue = round2(r.FinalValue)
	return r
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatMoney renders v with exactly 2 decimals.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
