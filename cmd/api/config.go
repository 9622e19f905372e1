package main

import (
	"flag"
	"fmt"

	"github.com/oriolmo/tasacion/internal/appconf"
)

// parseConfig reads the command line. Every flag defaults to its TASACION_* environment variable.
func parseConfig(fs *flag.FlagSet, args []string) (appconf.Config, error) {
	var cfg appconf.Config
	var env, apiKeys string

	fs.IntVar(&cfg.Port, "port", appconf.EnvInt("TASACION_PORT", 4000), "API server port")
	fs.StringVar(&env, "env", appconf.EnvString("TASACION_ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", appconf.EnvString("TASACION_API_KEYS", "test"), "Comma separated API keys; empty leaves the API open")
	fs.IntVar(&cfg.RateLimit, "rate-limit", appconf.EnvInt("TASACION_RATE_LIMIT", 10), "Requests per second per API key, 0 disables limiting")
	fs.StringVar(&cfg.CatalogPath, "catalog", appconf.EnvString("TASACION_CATALOG", "tasacion_coches.xlsx"), "Path or URL of the vehicle catalog workbook")
	fs.StringVar(&cfg.LogLevel, "log-level", appconf.EnvString("TASACION_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFile, "log-file", appconf.EnvString("TASACION_LOG_FILE", ""), "Also write logs to this rotated file")
	fs.StringVar(&cfg.TimeZone, "tz", appconf.EnvString("TASACION_TZ", "Europe/Madrid"), "Time zone that decides the current date")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return appconf.Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.CatalogPath == "" {
		return appconf.Config{}, fmt.Errorf("a catalog path or URL is required")
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeys)
	return cfg, nil
}
