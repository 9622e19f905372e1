package catalog

import (
	"log/slog"
	"time"

	"github.com/oriolmo/tasacion/internal/appconf"
	"github.com/oriolmo/tasacion/internal/logging"
	"github.com/oriolmo/tasacion/internal/valuation"
)

// Manager holds the catalog and depreciation schedule loaded at startup.
// Its data is never modified after construction, so it is safe for concurrent readers
// and the slices it returns must be treated as read-only.
type Manager struct {
	source      string
	static      *Static
	brands      []string
	lastUpdated time.Time
}

// InitCatalogManager loads the workbook named by config.SourcePath, which can be either
// a URL or a local file path.
func InitCatalogManager(config Config) (*Manager, error) {
	static, err := loadStaticData(config.SourcePath, config.isLocalFile())
	if err != nil {
		return nil, err
	}

	manager := NewManager(static, config.SourcePath)

	if config.Verbose && config.Env != appconf.Test {
		manager.LogStatistics(config.logger())
	}

	return manager, nil
}

// NewManager wraps an already parsed snapshot.
func NewManager(static *Static, source string) *Manager {
	if static == nil {
		static = &Static{}
	}
	return &Manager{
		source:      source,
		static:      static,
		brands:      valuation.Brands(static.Vehicles),
		lastUpdated: time.Now(),
	}
}

func (manager *Manager) Vehicles() []valuation.VehicleModelRecord {
	return manager.static.Vehicles
}

func (manager *Manager) Schedule() []valuation.DepreciationBand {
	return manager.static.Schedule
}

// Brands returns the sorted distinct brands, computed once at load.
func (manager *Manager) Brands() []string {
	return manager.brands
}

func (manager *Manager) Warnings() []Warning {
	return manager.static.Warnings
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) Source() string {
	return manager.source
}

// NewEngine builds a valuation engine over the loaded schedule. A nil clock means time.Now.
func (manager *Manager) NewEngine(clock func() time.Time) *valuation.Engine {
	return valuation.NewEngine(manager.static.Schedule, clock)
}

// LogStatistics logs what was loaded, plus one warning line per skipped row.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logging.LogOperation(logger, "catalog_loaded",
		slog.String("source", manager.source),
		slog.Int("vehicles", len(manager.static.Vehicles)),
		slog.Int("brands", len(manager.brands)),
		slog.Int("bands", len(manager.static.Schedule)),
		slog.Int("skipped_rows", len(manager.static.Warnings)))

	if logger == nil {
		return
	}
	for _, w := range manager.static.Warnings {
		logger.Warn("catalog_row_skipped",
			slog.String("sheet", w.Sheet),
			slog.Int("row", w.Row),
			slog.String("reason", w.Message))
	}
	if len(manager.static.Schedule) == 0 {
		logger.Warn("depreciation schedule is empty, every valuation will miss a band")
	}
}
