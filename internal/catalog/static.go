package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/oriolmo/tasacion/internal/logging"
	"github.com/oriolmo/tasacion/internal/valuation"
)

const (
	VehiclesSheet = "coches"
	ScheduleSheet = "tasacion"
)

// Column names after NormalizeColumnName.
const (
	colBrand        = "marca"
	colModelTrim    = "modelo-tipo"
	colValidFrom    = "inicio"
	colValidTo      = "fin"
	colDisplacement = "cc"
	colCylinders    = "cilindros"
	colFuel         = "combustible"
	colPowerKW      = "pkw"
	colFiscalCoef   = "cvf"
	colPowerCV      = "cv"
	colBaseValue    = "valor"

	colFromMonths = "desde"
	colToMonths   = "hasta"
	colPercentage = "porcentajes"
)

var (
	requiredVehicleColumns  = []string{colBrand, colModelTrim, colValidFrom, colValidTo, colFuel, colPowerCV, colBaseValue}
	requiredScheduleColumns = []string{colFromMonths, colToMonths, colPercentage}

	ErrSheetNotFound  = errors.New("sheet not found")
	ErrHeaderNotFound = errors.New("header row not found")
	ErrMissingColumn  = errors.New("required column missing")
)

// Static is one parsed snapshot of the workbook.
type Static struct {
	Vehicles []valuation.VehicleModelRecord
	Schedule []valuation.DepreciationBand
	Warnings []Warning
}

// Warning describes a row that was skipped while loading. Row is the 1-based spreadsheet row.
type Warning struct {
	Sheet   string `json:"sheet"`
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s!%d: %s", w.Sheet, w.Row, w.Message)
}

// NormalizeColumnName trims the name, turns spaces into underscores, drops dots and lowercases it.
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ".", "")
	return strings.ToLower(name)
}

func rawCatalogData(ctx context.Context, source string, isLocalFile bool) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local catalog file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building catalog request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading catalog: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading catalog: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog data: %w", err)
	}
	return b, nil
}

// loadStaticData reads and parses the workbook from either a URL or a local file.
func loadStaticData(source string, isLocalFile bool) (*Static, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	b, err := rawCatalogData(ctx, source, isLocalFile)
	if err != nil {
		return nil, err
	}

	static, err := ParseWorkbook(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %w", source, err)
	}
	return static, nil
}

// ParseWorkbook reads the vehicles and schedule sheets. Structural problems (missing sheet,
// header or column) fail the whole load; bad rows are skipped and reported as warnings.
func ParseWorkbook(r io.Reader) (static *Static, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, nil, "close workbook")

	static = &Static{}

	vehicleRows, err := sheetRows(f, VehiclesSheet)
	if err != nil {
		return nil, err
	}
	if err := parseVehicles(static, vehicleRows); err != nil {
		return nil, err
	}

	scheduleRows, err := sheetRows(f, ScheduleSheet)
	if err != nil {
		return nil, err
	}
	if err := parseSchedule(static, scheduleRows); err != nil {
		return nil, err
	}

	return static, nil
}

func sheetRows(f *excelize.File, name string) ([][]string, error) {
	for _, sheet := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(sheet), name) {
			rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
			}
			return rows, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// headerIndex finds the first row containing marker and returns its position and column map.
// The vehicles sheet carries a title row above the real header, so the header is searched for.
func headerIndex(rows [][]string, sheet, marker string, required []string) (int, map[string]int, error) {
	for i, row := range rows {
		columns := make(map[string]int, len(row))
		for j, cell := range row {
			name := NormalizeColumnName(cell)
			if _, seen := columns[name]; name != "" && !seen {
				columns[name] = j
			}
		}
		if _, ok := columns[marker]; !ok {
			continue
		}
		for _, col := range required {
			if _, ok := columns[col]; !ok {
				return 0, nil, fmt.Errorf("%w: %q in sheet %q", ErrMissingColumn, col, sheet)
			}
		}
		return i, columns, nil
	}
	return 0, nil, fmt.Errorf("%w: sheet %q has no %q column", ErrHeaderNotFound, sheet, marker)
}

type rowReader struct {
	row     []string
	columns map[string]int
	err     error
}

func (rr *rowReader) text(col string) string {
	idx, ok := rr.columns[col]
	if !ok || idx >= len(rr.row) {
		return ""
	}
	return strings.TrimSpace(rr.row[idx])
}

// number parses a numeric cell. Empty optional cells read as zero.
func (rr *rowReader) number(col string, required bool) float64 {
	if rr.err != nil {
		return 0
	}
	raw := rr.text(col)
	if raw == "" {
		if required {
			rr.err = fmt.Errorf("column %q is empty", col)
		}
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		rr.err = fmt.Errorf("column %q: %q is not a number", col, raw)
		return 0
	}
	return v
}

func (rr *rowReader) integer(col string, required bool) int {
	v := rr.number(col, required)
	if rr.err != nil {
		return 0
	}
	if v != math.Trunc(v) {
		rr.err = fmt.Errorf("column %q: %v is not a whole number", col, v)
		return 0
	}
	return int(v)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseVehicles(static *Static, rows [][]string) error {
	header, columns, err := headerIndex(rows, VehiclesSheet, colBrand, requiredVehicleColumns)
	if err != nil {
		return err
	}

	for i := header + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		record, err := parseVehicleRow(rows[i], columns)
		if err != nil {
			static.Warnings = append(static.Warnings, Warning{Sheet: VehiclesSheet, Row: i + 1, Message: err.Error()})
			continue
		}
		static.Vehicles = append(static.Vehicles, record)
	}
	return nil
}

func parseVehicleRow(row []string, columns map[string]int) (valuation.VehicleModelRecord, error) {
	rr := &rowReader{row: row, columns: columns}
	record := valuation.VehicleModelRecord{
		Brand:             rr.text(colBrand),
		ModelTrim:         rr.text(colModelTrim),
		FuelType:          rr.text(colFuel),
		ValidFrom:         rr.integer(colValidFrom, true),
		ValidTo:           rr.integer(colValidTo, true),
		DisplacementCC:    rr.number(colDisplacement, false),
		Cylinders:         rr.integer(colCylinders, false),
		PowerKW:           rr.number(colPowerKW, false),
		FiscalCoefficient: rr.number(colFiscalCoef, false),
		PowerCV:           rr.number(colPowerCV, true),
		BaseValue:         rr.number(colBaseValue, true),
	}
	if rr.err != nil {
		return valuation.VehicleModelRecord{}, rr.err
	}

	switch {
	case record.Brand == "":
		return record, errors.New("brand is empty")
	case record.ModelTrim == "":
		return record, errors.New("model is empty")
	case record.ValidFrom > record.ValidTo:
		return record, fmt.Errorf("commercial period %d-%d is reversed", record.ValidFrom, record.ValidTo)
	case record.BaseValue < 0:
		return record, fmt.Errorf("base value %v is negative", record.BaseValue)
	}
	return record, nil
}

func parseSchedule(static *Static, rows [][]string) error {
	header, columns, err := headerIndex(rows, ScheduleSheet, colFromMonths, requiredScheduleColumns)
	if err != nil {
		return err
	}

	for i := header + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		rr := &rowReader{row: rows[i], columns: columns}
		band := valuation.DepreciationBand{
			FromMonths: rr.integer(colFromMonths, true),
			ToMonths:   rr.integer(colToMonths, true),
			Percentage: rr.number(colPercentage, true),
		}
		if rr.err == nil && band.FromMonths > band.ToMonths {
			rr.err = fmt.Errorf("band %d-%d is reversed", band.FromMonths, band.ToMonths)
		}
		if rr.err == nil && band.Percentage < 0 {
			rr.err = fmt.Errorf("percentage %v is negative", band.Percentage)
		}
		if rr.err != nil {
			static.Warnings = append(static.Warnings, Warning{Sheet: ScheduleSheet, Row: i + 1, Message: rr.err.Error()})
			continue
		}
		static.Schedule = append(static.Schedule, band)
	}
	return nil
}
