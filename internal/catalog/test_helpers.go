package catalog

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WorkbookFixture describes the sheets written by WriteWorkbookFixture.
// Title is written above the vehicles header when non-empty, as in the published workbook.
type WorkbookFixture struct {
	Title          string
	VehicleHeader  []any
	Vehicles       [][]any
	ScheduleHeader []any
	Schedule       [][]any
}

// DefaultWorkbookFixture returns a small catalog with three brands, two VOLKSWAGEN
// "Golf 2.0 TDI" rows that differ only in power, and a five band schedule.
func DefaultWorkbookFixture() WorkbookFixture {
	return WorkbookFixture{
		Title:         "Tabla de valores de vehículos 2024",
		VehicleHeader: []any{"Marca", "Modelo-tipo", "Inicio", "Fin", "C.C.", "Cilindros", "Combustible", "PkW", "cvf", "CV", "Valor"},
		Vehicles: [][]any{
			{"SEAT", "Ibiza 1.0 TSI", 2017, 2021, 999, 3, "Gasolina", 70, 8.24, 95, 15000},
			{"VOLKSWAGEN", "Golf 2.0 TDI", 2015, 2020, 1968, 4, "Diesel", 110, 13.4, 150, 28000},
			{"VOLKSWAGEN", "Golf 1.5 TSI", 2017, 2020, 1498, 4, "Gasolina", 96, 11.2, 130, 24500},
			{"AUDI", "A3 Sportback 30 TFSI", 2020, 2024, 999, 3, "Gasolina", 81, 8.24, 110, 31000},
			{"VOLKSWAGEN", "Golf 2.0 TDI", 2015, 2020, 1968, 4, "Diesel", 85, 13.4, 115, 25000},
			{"VOLKSWAGEN", "e-Golf", 2014, 2020, nil, nil, "Eléctrico", 100, nil, 136, 35900},
		},
		ScheduleHeader: []any{"Desde", "Hasta", "Porcentajes"},
		Schedule: [][]any{
			{0, 12, 100},
			{13, 24, 84},
			{25, 36, 67},
			{37, 48, 56},
			{49, 240, 10},
		},
	}
}

// WriteWorkbookFixture writes fixture as an .xlsx file in a temporary directory and returns its path.
func WriteWorkbookFixture(t *testing.T, fixture WorkbookFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close() // nolint

	if err := f.SetSheetName(f.GetSheetName(0), VehiclesSheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	if _, err := f.NewSheet(ScheduleSheet); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}

	var vehicleRows [][]any
	if fixture.Title != "" {
		vehicleRows = append(vehicleRows, []any{fixture.Title})
	}
	vehicleRows = append(vehicleRows, fixture.VehicleHeader)
	vehicleRows = append(vehicleRows, fixture.Vehicles...)
	writeRows(t, f, VehiclesSheet, vehicleRows)

	scheduleRows := append([][]any{fixture.ScheduleHeader}, fixture.Schedule...)
	writeRows(t, f, ScheduleSheet, scheduleRows)

	path := filepath.Join(t.TempDir(), "tasacion_coches.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook fixture: %v", err)
	}
	return path
}

// NewFixtureManager loads DefaultWorkbookFixture through the regular loader.
func NewFixtureManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := InitCatalogManager(Config{SourcePath: WriteWorkbookFixture(t, DefaultWorkbookFixture())})
	if err != nil {
		t.Fatalf("Failed to load workbook fixture: %v", err)
	}
	return manager
}

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("Failed to write row %d of %s: %v", i+1, sheet, err)
		}
	}
}
