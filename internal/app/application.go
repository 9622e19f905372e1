package app

import (
	"log/slog"

	"github.com/oriolmo/tasacion/internal/appconf"
	"github.com/oriolmo/tasacion/internal/catalog"
	"github.com/oriolmo/tasacion/internal/valuation"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything in it is read-only once the server starts.
type Application struct {
	Config         appconf.Config
	CatalogConfig  catalog.Config
	Logger         *slog.Logger
	CatalogManager *catalog.Manager
	Engine         *valuation.Engine
}
