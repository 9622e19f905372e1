package catalog

import (
	"log/slog"
	"strings"

	"github.com/oriolmo/tasacion/internal/appconf"
)

type Config struct {
	// SourcePath is a local .xlsx path or an http(s) URL.
	SourcePath string
	Env        appconf.Environment
	Verbose    bool
	Logger     *slog.Logger
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.SourcePath, "http://") && !strings.HasPrefix(config.SourcePath, "https://")
}

func (config Config) logger() *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}
