package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/julienschmidt/httprouter"

	"github.com/oriolmo/tasacion/internal/app"
	"github.com/oriolmo/tasacion/internal/appconf"
	"github.com/oriolmo/tasacion/internal/catalog"
	"github.com/oriolmo/tasacion/internal/logging"
	"github.com/oriolmo/tasacion/internal/restapi"
	"github.com/oriolmo/tasacion/internal/webui"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output, closer := logging.NewOutput(os.Stdout, cfg.LogFile)
	logger := logging.NewStructuredLogger(output, cfg.SlogLevel())
	slog.SetDefault(logger)
	defer logging.SafeCloseWithLogging(closer, logger, "log_file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	catalogConfig := catalog.Config{
		SourcePath: cfg.CatalogPath,
		Env:        cfg.Env,
		Verbose:    true,
		Logger:     logger,
	}

	catalogManager, err := catalog.InitCatalogManager(catalogConfig)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	application := &app.Application{
		Config:         cfg,
		CatalogConfig:  catalogConfig,
		Logger:         logger,
		CatalogManager: catalogManager,
		Engine:         catalogManager.NewEngine(nil).In(cfg.Location()),
	}

	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)
	if cfg.Env != appconf.Production {
		webUI := &webui.WebUI{CatalogManager: catalogManager}
		webUI.SetWebUIRoutes(router)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String(), "catalog", cfg.CatalogPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
