// Package repository defines the persistence boundary between the
// services and the cache backend.
package repository

import (
	"context"
	"time"

	"newsdeck/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// CacheRepository persists headline bundles and article summaries.
// Implementations degrade gracefully: a miss and an unreachable backend
// both surface as absent values so callers can keep scraping without a
// cache.
type CacheRepository interface {
	// LoadBundle returns the cached bundle trimmed to maxItems
	// headlines, or nil when nothing usable is cached. maxItems <= 0
	// means no trimming.
	LoadBundle(ctx context.Context, maxItems int) (*domain.HeadlineCache, error)

	// PersistHeadlines writes a fresh headline list and ticker line,
	// carrying forward every previously cached summary.
	PersistHeadlines(ctx context.Context, headlines []domain.Headline, tickerText string) error

	// GetArticleSummary looks up a cached summary for the URL/title
	// pair, trying title-qualified keys before bare URL keys.
	GetArticleSummary(ctx context.Context, articleURL, title string) (string, bool)

	// StoreArticleSummary indexes a summary under both the original and
	// the resolved URL without disturbing the cached headline list.
	StoreArticleSummary(ctx context.Context, originalURL, finalURL, title, summary string) error

	// ListSnapshots returns historical snapshots inside the retention
	// horizon, newest first, at most limit of them (limit <= 0 = all).
	ListSnapshots(ctx context.Context, limit int) ([]domain.HistoricalSnapshot, error)

	// Clear removes the primary bundle and every historical snapshot.
	// An empty cache clears successfully; an unreachable backend does
	// not.
	Clear(ctx context.Context) (bool, string)

	// Statistics assembles the diagnostic snapshot served by the stats
	// endpoint. Never fails: backend problems are reported inside the
	// result.
	Statistics(ctx context.Context) *domain.CacheStatistics

	// SetHistoryEnabled toggles snapshot capture at runtime.
	SetHistoryEnabled(enabled bool)
	HistoryEnabled() bool
}

// KVStore is the minimal key-value surface the repository needs from
// the backend driver.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
	Info(ctx context.Context) (map[string]string, error)
	DBSize(ctx context.Context) (int64, error)
}
