package valuation

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func standardSchedule() []DepreciationBand {
	return []DepreciationBand{
		{FromMonths: 0, ToMonths: 12, Percentage: 100},
		{FromMonths: 13, ToMonths: 24, Percentage: 84},
		{FromMonths: 25, ToMonths: 36, Percentage: 67},
		{FromMonths: 37, ToMonths: 48, Percentage: 56},
		{FromMonths: 49, ToMonths: 240, Percentage: 10},
	}
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name         string
		registration time.Time
		now          time.Time
		want         Age
	}{
		{
			name:         "month difference negative is kept as is",
			registration: time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC),
			now:          time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			want:         Age{Months: 46, Years: 4, MonthsRemainder: -2},
		},
		{
			name:         "same month",
			registration: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			now:          time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:         Age{Months: 0, Years: 0, MonthsRemainder: 0},
		},
		{
			name:         "day of month is ignored",
			registration: time.Date(2022, time.May, 31, 0, 0, 0, 0, time.UTC),
			now:          time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			want:         Age{Months: 13, Years: 1, MonthsRemainder: 1},
		},
		{
			name:         "registration in the future",
			registration: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			now:          time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			want:         Age{Months: -2, Years: -1, MonthsRemainder: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := date(tt.registration.Year(), tt.registration.Month(), tt.registration.Day())
			assert.Equal(t, tt.want, AgeAt(reg, tt.now))
		})
	}
}

func TestLookupPercentage(t *testing.T) {
	t.Run("first match wins on overlapping bands", func(t *testing.T) {
		schedule := []DepreciationBand{
			{FromMonths: 0, ToMonths: 12, Percentage: 90},
			{FromMonths: 6, ToMonths: 24, Percentage: 80},
		}
		pct, ok := LookupPercentage(schedule, 10)
		require.True(t, ok)
		assert.Equal(t, 90.0, pct)

		pct, ok = LookupPercentage(schedule, 13)
		require.True(t, ok)
		assert.Equal(t, 80.0, pct)
	})

	t.Run("band ends are inclusive", func(t *testing.T) {
		for _, age := range []int{13, 24} {
			pct, ok := LookupPercentage(standardSchedule(), age)
			require.True(t, ok)
			assert.Equal(t, 84.0, pct)
		}
	})

	t.Run("no band is absence, not zero", func(t *testing.T) {
		schedule := []DepreciationBand{{FromMonths: 0, ToMonths: 240, Percentage: 100}}
		pct, ok := LookupPercentage(schedule, 999)
		assert.False(t, ok)
		assert.Zero(t, pct)

		_, ok = LookupPercentage(nil, 0)
		assert.False(t, ok)
	})

	t.Run("a zero percentage band is still a match", func(t *testing.T) {
		schedule := []DepreciationBand{{FromMonths: 0, ToMonths: 10, Percentage: 0}}
		pct, ok := LookupPercentage(schedule, 5)
		assert.True(t, ok)
		assert.Zero(t, pct)
	})
}

func TestEngineValue(t *testing.T) {
	t.Run("applies percentage and uplift", func(t *testing.T) {
		schedule := []DepreciationBand{{FromMonths: 0, ToMonths: 240, Percentage: 75}}
		engine := NewEngine(schedule, fixedClock(2024, time.January, 15))

		result, err := engine.Value(VehicleModelRecord{BaseValue: 20000}, date(2020, time.March, 15))
		require.NoError(t, err)

		assert.Equal(t, 75.0, result.Percentage)
		assert.Equal(t, 20000.0, result.BaseValue)
		assert.InDelta(t, 15000.0, result.CurrentValue, 1e-9)
		assert.InDelta(t, 18000.0, result.FinalValue, 1e-9)
		assert.Equal(t, Age{Months: 46, Years: 4, MonthsRemainder: -2}, result.Age)
	})

	t.Run("age outside the schedule yields no figures", func(t *testing.T) {
		schedule := []DepreciationBand{{FromMonths: 0, ToMonths: 240, Percentage: 75}}
		engine := NewEngine(schedule, fixedClock(2024, time.January, 15))

		result, err := engine.Value(VehicleModelRecord{BaseValue: 20000}, date(1940, time.January, 1))
		assert.ErrorIs(t, err, ErrNoPercentageBand)
		assert.Equal(t, Result{}, result)
	})

	t.Run("In counts age on the calendar of the zone", func(t *testing.T) {
		schedule := []DepreciationBand{{FromMonths: 0, ToMonths: 12, Percentage: 100}}
		// 23:30 UTC on 31 January is 1 February one hour east.
		utc := NewEngine(schedule, func() time.Time { return time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC) })
		east := utc.In(time.FixedZone("CET", 3600))

		_, err := utc.Value(VehicleModelRecord{BaseValue: 100}, date(2024, time.February, 1))
		assert.ErrorIs(t, err, ErrNoPercentageBand)

		result, err := east.Value(VehicleModelRecord{BaseValue: 100}, date(2024, time.February, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, result.Age.Months)
		assert.Equal(t, time.February, east.Now().Month())
		assert.Same(t, utc, utc.In(nil))
	})

	t.Run("nil clock uses wall time", func(t *testing.T) {
		engine := NewEngine(nil, nil)
		assert.WithinDuration(t, time.Now(), engine.Now(), time.Minute)
	})
}

func TestEngineAppraise(t *testing.T) {
	engine := NewEngine(standardSchedule(), fixedClock(2024, time.January, 15))

	t.Run("values the first matched record", func(t *testing.T) {
		criteria := SelectionCriteria{
			Brand:            "VOLKSWAGEN",
			RegistrationDate: date(2019, time.November, 20),
			Fuel:             "Diesel",
			ModelTrim:        "Golf 2.0 TDI",
		}
		appraisal, err := engine.Appraise(sampleCatalog(), criteria)
		require.NoError(t, err)
		require.NotNil(t, appraisal.Result)

		assert.Len(t, appraisal.Candidates, 2)
		assert.Len(t, appraisal.Matched, 2)
		// 50 months old: last band
		assert.Equal(t, 50, appraisal.Result.Age.Months)
		assert.Equal(t, 10.0, appraisal.Result.Percentage)
		assert.Equal(t, 28000.0, appraisal.Result.BaseValue)
		assert.InDelta(t, 2800.0, appraisal.Result.CurrentValue, 1e-9)
		assert.InDelta(t, 3360.0, appraisal.Result.FinalValue, 1e-9)
	})

	tests := []struct {
		name     string
		criteria SelectionCriteria
		wantErr  error
	}{
		{
			name:     "no models for the period",
			criteria: SelectionCriteria{Brand: "AUDI", RegistrationDate: date(2016, time.May, 1), Fuel: FuelWildcard, ModelTrim: "A3 Sportback 30 TFSI"},
			wantErr:  ErrNoModelsAvailable,
		},
		{
			name:     "no models for the fuel",
			criteria: SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2018, time.May, 1), Fuel: "Diesel", ModelTrim: "Ibiza 1.0 TSI"},
			wantErr:  ErrNoModelsAvailable,
		},
		{
			name:     "model not among candidates",
			criteria: SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2018, time.May, 1), Fuel: FuelWildcard, ModelTrim: "Leon"},
			wantErr:  ErrNoVehicleMatched,
		},
		{
			name:     "no model selected",
			criteria: SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2018, time.May, 1), Fuel: FuelWildcard},
			wantErr:  ErrNoVehicleMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appraisal, err := engine.Appraise(sampleCatalog(), tt.criteria)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, appraisal.Result)
		})
	}

	t.Run("age outside every band", func(t *testing.T) {
		short := NewEngine([]DepreciationBand{{FromMonths: 0, ToMonths: 12, Percentage: 100}}, fixedClock(2024, time.January, 15))
		criteria := SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2018, time.May, 1), Fuel: FuelWildcard, ModelTrim: "Ibiza 1.0 TSI"}

		appraisal, err := short.Appraise(sampleCatalog(), criteria)
		assert.ErrorIs(t, err, ErrNoPercentageBand)
		assert.Nil(t, appraisal.Result)
		assert.Len(t, appraisal.Matched, 1)
	})
}

func TestOutcomes(t *testing.T) {
	assert.Equal(t, OutcomeValued, OutcomeOf(nil))
	assert.Equal(t, OutcomeNoModelsAvailable, OutcomeOf(ErrNoModelsAvailable))
	assert.Equal(t, OutcomeNoVehicleMatched, OutcomeOf(ErrNoVehicleMatched))
	assert.Equal(t, OutcomeNoPercentageBand, OutcomeOf(ErrNoPercentageBand))
	assert.Equal(t, "", OutcomeOf(errors.New("boom")))

	assert.True(t, IsAbsence(ErrNoPercentageBand))
	assert.False(t, IsAbsence(nil))
	assert.False(t, IsAbsence(errors.New("boom")))

	messages := map[string]bool{}
	for _, err := range []error{ErrNoModelsAvailable, ErrNoVehicleMatched, ErrNoPercentageBand} {
		msg := AbsenceMessage(err)
		assert.NotEmpty(t, msg)
		messages[msg] = true
	}
	assert.Len(t, messages, 3, "every outcome has its own message")
}

func TestResultRounded(t *testing.T) {
	r := Result{Percentage: 33.333, BaseValue: 12345.675, CurrentValue: 4115.2249, FinalValue: 4938.26988}
	rounded := r.Rounded()

	assert.Equal(t, 33.33, rounded.Percentage)
	assert.Equal(t, 12345.68, rounded.BaseValue)
	assert.Equal(t, 4115.22, rounded.CurrentValue)
	assert.Equal(t, 4938.27, rounded.FinalValue)
	assert.Equal(t, 4115.2249, r.CurrentValue, "the unrounded result keeps full precision")

	assert.Equal(t, "18000.00", FormatMoney(18000))
}

func TestRender(t *testing.T) {
	engine := NewEngine([]DepreciationBand{{FromMonths: 0, ToMonths: 240, Percentage: 75}}, fixedClock(2024, time.January, 15))
	catalog := []VehicleModelRecord{
		{Brand: "SEAT", ModelTrim: "Leon 2.0 TDI", ValidFrom: 2019, ValidTo: 2022, FuelType: "Diesel", DisplacementCC: 1968, Cylinders: 4, PowerKW: 110, FiscalCoefficient: 13.4, PowerCV: 150, BaseValue: 20000},
	}

	t.Run("valued vehicle", func(t *testing.T) {
		criteria := SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2020, time.March, 15), Fuel: FuelWildcard, ModelTrim: "Leon 2.0 TDI"}
		appraisal, err := engine.Appraise(catalog, criteria)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, appraisal, err))

		out := buf.String()
		assert.Contains(t, out, "Información del coche seleccionado:")
		assert.Contains(t, out, "Periodo comercial: 2019 - 2022")
		assert.Contains(t, out, "Coeficiente fiscal (cvf): 13.4")
		assert.Contains(t, out, "Antigüedad del coche: 4 años -2 meses")
		assert.Contains(t, out, "Porcentaje de tasación aplicado: 75%")
		assert.Contains(t, out, "Valor original del coche: 20000.00 euros")
		assert.Contains(t, out, "Valor actual del coche según su antigüedad: 15000.00 euros")
		assert.Contains(t, out, "--- El valor final con el 20% de la ayuda: 18000.00 euros ---")
	})

	t.Run("absence prints only the message", func(t *testing.T) {
		criteria := SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2010, time.March, 15), Fuel: FuelWildcard, ModelTrim: "Leon 2.0 TDI"}
		appraisal, err := engine.Appraise(catalog, criteria)
		require.ErrorIs(t, err, ErrNoModelsAvailable)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, appraisal, err))
		assert.Equal(t, AbsenceMessage(ErrNoModelsAvailable)+"\n", buf.String())
	})

	t.Run("missing band shows details but no figures", func(t *testing.T) {
		short := NewEngine([]DepreciationBand{{FromMonths: 0, ToMonths: 6, Percentage: 100}}, fixedClock(2024, time.January, 15))
		criteria := SelectionCriteria{Brand: "SEAT", RegistrationDate: date(2020, time.March, 15), Fuel: FuelWildcard, ModelTrim: "Leon 2.0 TDI"}
		appraisal, err := short.Appraise(catalog, criteria)
		require.ErrorIs(t, err, ErrNoPercentageBand)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, appraisal, err))
		out := buf.String()
		assert.Contains(t, out, "Periodo comercial: 2019 - 2022")
		assert.Contains(t, out, AbsenceMessage(ErrNoPercentageBand))
		assert.NotContains(t, out, "euros")
	})

	t.Run("unexpected errors are returned", func(t *testing.T) {
		var buf bytes.Buffer
		boom := errors.New("boom")
		assert.ErrorIs(t, Render(&buf, Appraisal{}, boom), boom)
	})
}
