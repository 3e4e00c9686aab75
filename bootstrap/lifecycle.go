package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdeck/config"
	"newsdeck/service"
	logger "newsdeck/utils/logger"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the HTTP server and the background refresh loop, then waits for a
// shutdown signal.
func Run(ctx context.Context) error {
	loggerConfig := logger.LoadConfigFromEnv()
	log := logger.New(os.Stdout, loggerConfig)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("Starting newsdeck service",
		"port", cfg.Server.Port,
		"sections", len(cfg.Scraper.Sections),
		"cache_configured", cfg.Cache.Configured(),
		"summarizer_enabled", cfg.Summarizer.Enabled(),
		"refresh_enabled", cfg.Refresh.Enabled())

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, cfg.Server.Port, log)

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	startRefreshLoop(refreshCtx, deps, log)

	log.Info("Newsdeck service started successfully")
	waitForShutdown(httpServer, cfg.Server.ShutdownTimeout, stopRefresh, log)

	return nil
}

// startRefreshLoop periodically re-scrapes every section so cache reads stay
// warm. The first pass runs after InitialDelay, subsequent passes on the
// configured interval.
func startRefreshLoop(ctx context.Context, deps *Dependencies, log *slog.Logger) {
	cfg := deps.Config.Refresh
	if !cfg.Enabled() {
		log.Info("Background refresh disabled")
		return
	}

	// HeadlineLimit of 0 means "keep everything".
	limit := deps.Config.Scraper.HeadlineLimit
	if limit == 0 {
		limit = service.Unlimited
	}

	refresh := func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Refresh job panicked", "panic", r)
			}
		}()
		headlines, _, _ := deps.HeadlineProvider.FetchHeadlines(ctx, limit, true)
		log.Info("Background refresh completed", "headlines", len(headlines))
	}

	go func() {
		select {
		case <-time.After(cfg.InitialDelay):
		case <-ctx.Done():
			return
		}
		refresh()

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				refresh()
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Background refresh started",
		"interval", cfg.Interval,
		"initial_delay", cfg.InitialDelay)
}

func waitForShutdown(httpServer interface{ Shutdown(context.Context) error }, timeout time.Duration, stopRefresh context.CancelFunc, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down newsdeck service")
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	log.Info("Newsdeck service stopped")
}
