package bootstrap

import (
	"context"
	"log/slog"

	"newsdeck/config"
	"newsdeck/driver"
	"newsdeck/handler"
	"newsdeck/repository"
	"newsdeck/service"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config          *config.Config
	Logger          *slog.Logger
	HeadlineHandler *handler.HeadlineHandler
	SummaryHandler  *handler.SummaryHandler
	CacheHandler    *handler.CacheHandler
	HealthHandler   *handler.HealthHandler

	// Exposed for the background refresh loop.
	HeadlineProvider service.HeadlineProvider
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	factory := service.NewHTTPClientFactory(cfg.HTTP, log)

	// Cache backend. A missing REDIS_URL degrades to an always-miss store
	// rather than failing startup.
	var store repository.KVStore
	cleanup := func() {}
	if cfg.Cache.Configured() {
		redisDriver, err := driver.NewRedisDriver(cfg.Cache.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		if err := redisDriver.Ping(ctx); err != nil {
			log.Warn("redis unreachable at startup, continuing", "error", err)
		}
		store = redisDriver
		cleanup = func() {
			if err := redisDriver.Close(); err != nil {
				log.Error("failed to close redis client", "error", err)
			}
		}
	} else {
		log.Warn("REDIS_URL not set, caching disabled")
		store = driver.NewUnavailableStore()
	}

	cacheRepo := repository.NewCacheRepository(store, cfg.Cache, log)

	resolver := service.NewURLResolver(factory.CreateResolverClient(), cfg.HTTP.UserAgent, cfg.HTTP.RequestTimeout, log)
	scraper := service.NewSectionScraper(factory.CreateScraperClient(), cfg.Scraper, cfg.HTTP.UserAgent, log)
	fetcher := service.NewArticleFetcher(factory.CreateArticleClient(), resolver, cfg.HTTP, log)

	var summarizer service.Summarizer
	if cfg.Summarizer.Enabled() {
		summarizer = driver.NewSummarizerAPIClient(factory.CreateSummarizerClient(cfg.Summarizer.Timeout), cfg.Summarizer, log)
	} else {
		log.Warn("summarizer not configured, serving article excerpts instead")
	}

	headlines := service.NewHeadlineService(scraper, cacheRepo, cfg.Scraper, log)
	summaries := service.NewSummaryService(cacheRepo, fetcher, summarizer, log)

	deps := &Dependencies{
		Config:           cfg,
		Logger:           log,
		HeadlineHandler:  handler.NewHeadlineHandler(headlines, log),
		SummaryHandler:   handler.NewSummaryHandler(summaries, log),
		CacheHandler:     handler.NewCacheHandler(cacheRepo, log),
		HealthHandler:    handler.NewHealthHandler(),
		HeadlineProvider: headlines,
	}

	return deps, cleanup, nil
}
