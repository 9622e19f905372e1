// Command tasar values a single vehicle from the terminal. Each missing selector makes it
// print the choices for that step instead, so a valuation is reached by re-running it
// with one more flag each time.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/oriolmo/tasacion/internal/appconf"
	"github.com/oriolmo/tasacion/internal/catalog"
	"github.com/oriolmo/tasacion/internal/logging"
	"github.com/oriolmo/tasacion/internal/utils"
	"github.com/oriolmo/tasacion/internal/valuation"
)

// Exit codes.
const (
	exitOK      = 0
	exitAbsence = 1
	exitUsage   = 2
	exitFailure = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

func run(args []string, stdout, stderr io.Writer, clock func() time.Time) int {
	fs := flag.NewFlagSet("tasar", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg appconf.Config
	var brand, date, fuel, model string
	fs.StringVar(&cfg.CatalogPath, "catalog", appconf.EnvString("TASACION_CATALOG", "tasacion_coches.xlsx"), "Path or URL of the vehicle catalog workbook")
	fs.StringVar(&cfg.TimeZone, "tz", appconf.EnvString("TASACION_TZ", "Europe/Madrid"), "Time zone that decides the current date")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	fs.StringVar(&brand, "brand", "", "Brand, exactly as listed")
	fs.StringVar(&date, "date", "", "Registration date, YYYY-MM-DD (default today)")
	fs.StringVar(&fuel, "fuel", "", "Fuel type, or "+valuation.FuelWildcard)
	fs.StringVar(&model, "model", "", "Model trim, exactly as listed")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logger := logging.NewStructuredLogger(stderr, cfg.SlogLevel())
	manager, err := catalog.InitCatalogManager(catalog.Config{
		SourcePath: cfg.CatalogPath,
		Verbose:    true,
		Logger:     logger,
	})
	if err != nil {
		logging.LogError(logger, "failed to load catalog", err)
		return exitFailure
	}

	if brand == "" {
		printList(stdout, "Marcas disponibles:", manager.Brands())
		return exitOK
	}
	if !contains(manager.Brands(), brand) {
		fmt.Fprintf(stderr, "Marca desconocida: %s\n", brand)
		return exitUsage
	}

	engine := manager.NewEngine(clock).In(cfg.Location())
	registration, fieldErrors, ok := utils.ParseDateParameter("date", date, engine.Now(), cfg.Location())
	if !ok {
		for _, msg := range fieldErrors["date"] {
			fmt.Fprintln(stderr, msg)
		}
		return exitUsage
	}

	if fuel == "" && model == "" {
		inPeriod := valuation.FilterByPeriod(valuation.FilterByBrand(manager.Vehicles(), brand), registration.Year)
		printList(stdout, "Combustibles disponibles:", valuation.FuelOptions(inPeriod))
		return exitOK
	}
	if fuel == "" {
		fuel = valuation.FuelWildcard
	}

	if model == "" {
		candidates := valuation.Candidates(manager.Vehicles(), brand, registration, fuel)
		if len(candidates) == 0 {
			fmt.Fprintln(stdout, valuation.AbsenceMessage(valuation.ErrNoModelsAvailable))
			return exitAbsence
		}
		options := valuation.ModelOptions(candidates)
		labels := make([]string, 0, len(options))
		for _, o := range options {
			labels = append(labels, o.Label)
		}
		printList(stdout, "Modelos disponibles:", labels)
		return exitOK
	}

	appraisal, err := engine.Appraise(manager.Vehicles(), valuation.SelectionCriteria{
		Brand:            brand,
		RegistrationDate: registration,
		Fuel:             fuel,
		ModelTrim:        model,
	})
	if err != nil && !valuation.IsAbsence(err) {
		logging.LogError(logger, "appraisal failed", err)
		return exitFailure
	}
	if renderErr := valuation.Render(stdout, appraisal, err); renderErr != nil {
		logging.LogError(logger, "failed to write result", renderErr)
		return exitFailure
	}
	if err != nil {
		return exitAbsence
	}
	return exitOK
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
