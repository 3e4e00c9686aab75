package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/metrics"
	"newsdeck/utils/timeutil"
)

const (
	snapshotDateLayout = "2006-01-02"
	snapshotTimeLayout = "150405"
)

// cacheRepository stores headline bundles in a key-value backend.
//
// Every write path reads the current bundle first and carries forward
// what it does not replace: a headline refresh keeps the cached
// summaries, a summary write keeps the headline list and ticker. That
// read-merge-write discipline is the central correctness property here.
type cacheRepository struct {
	store          KVStore
	cfg            config.CacheConfig
	logger         *slog.Logger
	historyEnabled atomic.Bool

	now func() time.Time
}

func NewCacheRepository(store KVStore, cfg config.CacheConfig, logger *slog.Logger) CacheRepository {
	r := &cacheRepository{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	r.historyEnabled.Store(cfg.HistoryEnabled)
	return r
}

func (r *cacheRepository) LoadBundle(ctx context.Context, maxItems int) (*domain.HeadlineCache, error) {
	bundle, err := r.loadFull(ctx)
	if err != nil {
		return nil, err
	}
	if bundle == nil || len(bundle.Headlines) == 0 {
		return nil, nil
	}
	return bundle.Limited(maxItems), nil
}

// PersistHeadlines replaces the headline list and ticker while keeping
// every cached summary. An empty tickerText leaves the previous ticker
// in place.
func (r *cacheRepository) PersistHeadlines(ctx context.Context, headlines []domain.Headline, tickerText string) error {
	existing, err := r.loadFull(ctx)
	if err != nil {
		r.logger.Debug("merge read before headline write failed", "error", err)
	}

	var summaries map[string]string
	ticker := tickerText
	if existing != nil {
		summaries = existing.Summaries
		if ticker == "" {
			ticker = existing.TickerText
		}
	}

	return r.storeBundle(ctx, domain.NewHeadlineCache(headlines, ticker, summaries))
}

func (r *cacheRepository) GetArticleSummary(ctx context.Context, articleURL, title string) (string, bool) {
	bundle, err := r.loadFull(ctx)
	if err != nil || bundle == nil {
		return "", false
	}
	for _, key := range summaryCacheKeys(articleURL, title) {
		if summary, ok := bundle.Summaries[key]; ok && strings.TrimSpace(summary) != "" {
			return summary, true
		}
	}
	return "", false
}

// StoreArticleSummary indexes the summary under every candidate key of
// both URLs so later lookups hit regardless of trailing-slash variation
// or which URL the caller holds.
func (r *cacheRepository) StoreArticleSummary(ctx context.Context, originalURL, finalURL, title, summary string) error {
	if strings.TrimSpace(summary) == "" {
		return nil
	}

	existing, err := r.loadFull(ctx)
	if err != nil {
		r.logger.Debug("merge read before summary write failed", "error", err)
	}

	merged := domain.NewHeadlineCache(nil, "", nil)
	if existing != nil {
		merged = domain.NewHeadlineCache(existing.Headlines, existing.TickerText, existing.Summaries)
	}
	for _, candidate := range []string{originalURL, finalURL} {
		for _, key := range summaryCacheKeys(candidate, title) {
			merged.Summaries[key] = summary
		}
	}

	return r.storeBundle(ctx, merged)
}

func (r *cacheRepository) ListSnapshots(ctx context.Context, limit int) ([]domain.HistoricalSnapshot, error) {
	if !r.HistoryEnabled() {
		return nil, nil
	}

	keys, err := r.store.ScanKeys(ctx, r.historyPrefix()+":*")
	if err != nil {
		// Degrade to an empty listing; a missing backend is a miss here,
		// same as on reads.
		r.logger.Warn("snapshot key scan failed", "error", err)
		return nil, nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	cutoff := r.now().UTC().Add(-r.cfg.HistoryHorizon)

	var snapshots []domain.HistoricalSnapshot
	for _, key := range keys {
		capturedAt, ok := parseSnapshotKey(key)
		if !ok || capturedAt.Before(cutoff) {
			continue
		}

		payload, found, err := r.store.Get(ctx, key)
		if err != nil || !found {
			continue
		}
		bundle, err := domain.DecodeBundle([]byte(payload))
		if err != nil {
			r.logger.Debug("skipping undecodable snapshot", "key", key, "error", err)
			continue
		}

		snapshots = append(snapshots, domain.HistoricalSnapshot{
			Key:           key,
			CapturedAt:    capturedAt,
			Cache:         bundle,
			HeadlineCount: len(bundle.Headlines),
			SummaryCount:  len(bundle.Summaries),
		})
		if limit > 0 && len(snapshots) >= limit {
			break
		}
	}
	return snapshots, nil
}

// Clear removes the primary key and all snapshots. Nothing-to-remove is
// success; an unconfigured or unreachable backend is not.
func (r *cacheRepository) Clear(ctx context.Context) (bool, string) {
	if !r.cfg.Configured() {
		r.logger.Info("cache not configured, nothing to clear")
		return false, "Cache not configured."
	}

	var historicalRemoved int64
	historyKeys, err := r.store.ScanKeys(ctx, r.historyPrefix()+":*")
	if err != nil {
		r.logger.Warn("historical key scan during clear failed", "error", err)
	} else if len(historyKeys) > 0 {
		historicalRemoved, err = r.store.Delete(ctx, historyKeys...)
		if err != nil {
			r.logger.Warn("clearing historical keys failed", "error", err)
			historicalRemoved = 0
		}
	}

	removed, err := r.store.Delete(ctx, r.cfg.CacheKey)
	if err != nil {
		r.logger.Warn("clearing cache key failed", "error", err)
		return false, "Failed to clear cache. Check logs for details."
	}

	if removed > 0 || historicalRemoved > 0 {
		var fragments []string
		if removed > 0 {
			fragments = append(fragments, "primary key")
		}
		if historicalRemoved > 0 {
			plural := ""
			if historicalRemoved != 1 {
				plural = "s"
			}
			fragments = append(fragments, fmt.Sprintf("%d historical snapshot%s", historicalRemoved, plural))
		}
		return true, fmt.Sprintf("Cache cleared (%s).", strings.Join(fragments, ", "))
	}
	return true, "Cache already empty."
}

func (r *cacheRepository) SetHistoryEnabled(enabled bool) {
	r.historyEnabled.Store(enabled)
}

func (r *cacheRepository) HistoryEnabled() bool {
	return r.historyEnabled.Load()
}

func (r *cacheRepository) loadFull(ctx context.Context) (*domain.HeadlineCache, error) {
	payload, found, err := r.store.Get(ctx, r.cfg.CacheKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	bundle, err := domain.DecodeBundle([]byte(payload))
	if err != nil {
		r.logger.Warn("cached payload is not decodable", "key", r.cfg.CacheKey, "error", err)
		return nil, nil
	}
	return bundle, nil
}

func (r *cacheRepository) storeBundle(ctx context.Context, bundle *domain.HeadlineCache) error {
	payload, err := bundle.Encode()
	if err != nil {
		return fmt.Errorf("encode cache bundle: %w", err)
	}

	if err := r.store.SetWithTTL(ctx, r.cfg.CacheKey, string(payload), r.cfg.TTL); err != nil {
		return fmt.Errorf("write cache bundle: %w", err)
	}

	r.persistSnapshot(ctx, string(payload))
	return nil
}

// persistSnapshot writes the timestamp-keyed historical copy. Best
// effort: failures are logged, never propagated.
func (r *cacheRepository) persistSnapshot(ctx context.Context, payload string) {
	if !r.HistoryEnabled() {
		return
	}
	key := r.snapshotKey(r.now())
	if err := r.store.SetWithTTL(ctx, key, payload, r.cfg.HistoryTTL); err != nil {
		r.logger.Debug("historical snapshot write failed", "key", key, "error", err)
	}
}

func (r *cacheRepository) historyPrefix() string {
	prefix := strings.TrimSpace(r.cfg.HistoryPrefix)
	if prefix == "" {
		prefix = "news"
	}
	return prefix
}

// snapshotKey encodes the capture time as {prefix}:{YYYY-MM-DD}:{HHMMSS}
// so keys sort lexicographically by capture time.
func (r *cacheRepository) snapshotKey(reference time.Time) string {
	ts := reference.UTC()
	return fmt.Sprintf("%s:%s:%s", r.historyPrefix(), ts.Format(snapshotDateLayout), ts.Format(snapshotTimeLayout))
}

func parseSnapshotKey(key string) (time.Time, bool) {
	timeIdx := strings.LastIndex(key, ":")
	if timeIdx < 0 {
		return time.Time{}, false
	}
	dateIdx := strings.LastIndex(key[:timeIdx], ":")
	if dateIdx < 0 {
		return time.Time{}, false
	}

	captured, err := time.Parse(snapshotDateLayout+snapshotTimeLayout, key[dateIdx+1:timeIdx]+key[timeIdx+1:])
	if err != nil {
		return time.Time{}, false
	}
	return captured.UTC(), true
}

// normalizeSummaryTitle collapses whitespace and lowercases for the
// title fingerprint.
func normalizeSummaryTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// summaryCacheKeys returns every candidate key for a URL/title pair:
// title-fingerprinted keys first (exact URL, then the trailing-slash
// stripped form), then the bare URL forms.
func summaryCacheKeys(articleURL, title string) []string {
	stripped := strings.TrimSpace(articleURL)
	if stripped == "" {
		return nil
	}

	urlCandidates := []string{stripped}
	if normalized := strings.TrimRight(stripped, "/"); normalized != "" && normalized != stripped {
		urlCandidates = append(urlCandidates, normalized)
	}

	var keys []string
	if normalized := normalizeSummaryTitle(title); normalized != "" {
		digest := sha256.Sum256([]byte(normalized))
		fingerprint := hex.EncodeToString(digest[:])[:16]
		for _, candidate := range urlCandidates {
			keys = append(keys, candidate+"#t:"+fingerprint)
		}
	}
	return append(keys, urlCandidates...)
}

// Statistics assembles the cache diagnostics snapshot. Each probe that
// fails contributes a warning instead of aborting the whole report.
func (r *cacheRepository) Statistics(ctx context.Context) *domain.CacheStatistics {
	stats := &domain.CacheStatistics{
		CacheConfigured: strings.TrimSpace(r.cfg.RedisURL) != "",
		CacheKey:        r.cfg.CacheKey,
	}

	if err := r.store.Ping(ctx); err != nil {
		metrics.CacheBackendUp.Set(0)
		stats.Error = err.Error()
		if stats.CacheConfigured {
			stats.Warnings = append(stats.Warnings, fmt.Sprintf("Cache backend ping failed: %v", err))
		} else {
			stats.Warnings = append(stats.Warnings, "Caching is disabled; set REDIS_URL to enable it.")
		}
		return stats
	}
	metrics.CacheBackendUp.Set(1)
	stats.Available = true

	payload, found, err := r.store.Get(ctx, r.cfg.CacheKey)
	if err != nil {
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("Unable to read cache payload: %v", err))
	}
	stats.KeyPresent = found

	if ttl, err := r.store.TTL(ctx, r.cfg.CacheKey); err != nil {
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("Unable to fetch TTL for cache key: %v", err))
	} else if ttl > 0 {
		stats.TTLSeconds = int64(ttl.Seconds())
	}

	if found {
		stats.PayloadBytes = len(payload)
		r.fillBundleStatistics(stats, payload)
	}

	if historyKeys, err := r.store.ScanKeys(ctx, r.historyPrefix()+":*"); err != nil {
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("Unable to scan historical keys: %v", err))
	} else if len(historyKeys) > 0 {
		stats.HistoricalSnapshotCount = len(historyKeys)
		stats.LatestSnapshotKey = slicesMax(historyKeys)
	}

	if size, err := r.store.DBSize(ctx); err != nil {
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("Unable to fetch database size: %v", err))
	} else {
		stats.DBSize = size
	}

	if info, err := r.store.Info(ctx); err != nil {
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("Unable to fetch server info: %v", err))
	} else {
		stats.ServerVersion = info["redis_version"]
		stats.UsedMemoryHuman = info["used_memory_human"]
		if clients, convErr := parseInt64(info["connected_clients"]); convErr == nil {
			stats.ConnectedClients = clients
		}
	}

	return stats
}

func (r *cacheRepository) fillBundleStatistics(stats *domain.CacheStatistics, payload string) {
	bundle, err := domain.DecodeBundle([]byte(payload))
	if err != nil {
		stats.Warnings = append(stats.Warnings, "Cache payload is not in the expected format.")
		return
	}

	stats.HeadlineCount = len(bundle.Headlines)
	stats.SummaryCount = len(bundle.Summaries)
	stats.TickerPresent = strings.TrimSpace(bundle.TickerText) != ""

	sections := make(map[string]struct{})
	sources := make(map[string]struct{})
	for _, h := range bundle.Headlines {
		if section := strings.TrimSpace(h.Section); section != "" {
			sections[section] = struct{}{}
		}
		if source := strings.TrimSpace(h.Source); source != "" {
			sources[source] = struct{}{}
		}

		published, ok := timeutil.ParseISO8601UTC(h.PublishedAt)
		if !ok {
			continue
		}
		if stats.LatestHeadlineTime.IsZero() || published.After(stats.LatestHeadlineTime) {
			stats.LatestHeadlineTime = published
			stats.LatestHeadlineTitle = h.Title
			stats.LatestHeadlineSource = h.Source
		}
	}
	if stats.LatestHeadlineTime.IsZero() && len(bundle.Headlines) > 0 {
		stats.LatestHeadlineTitle = bundle.Headlines[0].Title
		stats.LatestHeadlineSource = bundle.Headlines[0].Source
	}

	stats.Sections = sortedKeys(sections)
	stats.SectionCount = len(stats.Sections)
	stats.Sources = sortedKeys(sources)
	stats.SourceCount = len(stats.Sources)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func slicesMax(values []string) string {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}
