package repository

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/driver"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	down bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return "", false, domain.ErrCacheUnavailable
	}
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return domain.ErrCacheUnavailable
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Delete(_ context.Context, keys ...string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, domain.ErrCacheUnavailable
	}
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			delete(f.ttls, key)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeStore) ScanKeys(_ context.Context, pattern string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, domain.ErrCacheUnavailable
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeStore) TTL(_ context.Context, key string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, domain.ErrCacheUnavailable
	}
	return f.ttls[key], nil
}

func (f *fakeStore) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return domain.ErrCacheUnavailable
	}
	return nil
}

func (f *fakeStore) Info(context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, domain.ErrCacheUnavailable
	}
	return map[string]string{
		"redis_version":     "7.4.0",
		"connected_clients": "3",
		"used_memory_human": "1.2M",
	}, nil
}

func (f *fakeStore) DBSize(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, domain.ErrCacheUnavailable
	}
	return int64(len(f.data)), nil
}

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		RedisURL:       "redis://localhost:6379/0",
		CacheKey:       "test:headlines",
		TTL:            15 * time.Minute,
		HistoryPrefix:  "testnews",
		HistoryTTL:     24 * time.Hour,
		HistoryHorizon: 24 * time.Hour,
		HistoryEnabled: true,
	}
}

func newTestRepository(store KVStore) *cacheRepository {
	repo := NewCacheRepository(store, testCacheConfig(), slog.New(slog.DiscardHandler))
	return repo.(*cacheRepository)
}

func sampleHeadlines() []domain.Headline {
	return []domain.Headline{
		{Title: "Quantum chip breaks error correction record", URL: "https://example.com/quantum", Section: "Tech", Source: "Example Wire"},
		{Title: "New telescope spots distant galaxy cluster", URL: "https://example.com/galaxy", Section: "Science", Source: "Sky Daily", PublishedAt: "2026-08-30T10:00:00Z"},
	}
}

func TestPersistHeadlinesKeepsCachedSummaries(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/a", "https://final.example.com/a", "Some Story Title", "A concise summary."))
	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), "[Tech] Quantum chip breaks error correction record"))

	summary, ok := repo.GetArticleSummary(ctx, "https://example.com/a", "Some Story Title")
	require.True(t, ok, "headline refresh must not wipe cached summaries")
	assert.Equal(t, "A concise summary.", summary)

	bundle, err := repo.LoadBundle(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Len(t, bundle.Headlines, 2)
}

func TestStoreArticleSummaryKeepsHeadlinesAndTicker(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), "ticker line"))
	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/quantum", "", "Quantum chip breaks error correction record", "Summary text."))

	bundle, err := repo.LoadBundle(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Len(t, bundle.Headlines, 2)
	assert.Equal(t, "ticker line", bundle.TickerText)
}

func TestSummaryMergeUnionAcrossInterleavedWrites(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/1", "", "First Story Here", "summary one"))
	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), "t1"))
	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/2", "", "Second Story Here", "summary two"))
	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines()[:1], "t2"))
	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/3", "", "Third Story Here", "summary three"))

	for _, tc := range []struct{ url, title, want string }{
		{"https://example.com/1", "First Story Here", "summary one"},
		{"https://example.com/2", "Second Story Here", "summary two"},
		{"https://example.com/3", "Third Story Here", "summary three"},
	} {
		summary, ok := repo.GetArticleSummary(ctx, tc.url, tc.title)
		require.True(t, ok, "summary for %s lost", tc.url)
		assert.Equal(t, tc.want, summary)
	}
}

func TestSummaryLookupToleratesTrailingSlash(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.StoreArticleSummary(ctx, "https://x/a", "", "T is the headline", "cached"))

	summary, ok := repo.GetArticleSummary(ctx, "https://x/a/", "T is the headline")
	require.True(t, ok)
	assert.Equal(t, "cached", summary)
}

func TestSummaryTitleFingerprintDisambiguates(t *testing.T) {
	repo := newTestRepository(newFakeStore())
	ctx := context.Background()

	require.NoError(t, repo.StoreArticleSummary(ctx, "https://x/a", "", "First headline title", "summary A"))
	require.NoError(t, repo.StoreArticleSummary(ctx, "https://x/a", "", "Second headline title", "summary B"))

	summary, ok := repo.GetArticleSummary(ctx, "https://x/a", "First headline title")
	require.True(t, ok)
	assert.Equal(t, "summary A", summary)

	summary, ok = repo.GetArticleSummary(ctx, "https://x/a", "Second headline title")
	require.True(t, ok)
	assert.Equal(t, "summary B", summary)
}

func TestSummaryCacheKeysOrderAndDedup(t *testing.T) {
	keys := summaryCacheKeys("https://x/a/", "  Mixed   CASE  title ")

	require.Len(t, keys, 4)
	assert.Contains(t, keys[0], "https://x/a/#t:")
	assert.Contains(t, keys[1], "https://x/a#t:")
	assert.Equal(t, "https://x/a/", keys[2])
	assert.Equal(t, "https://x/a", keys[3])

	assert.Equal(t, summaryCacheKeys("https://x/a/", "mixed case title")[0], keys[0],
		"fingerprint must be whitespace- and case-insensitive")
	assert.Empty(t, summaryCacheKeys("   ", "title"))
}

func TestLoadBundleTrimsAndRequiresHeadlines(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	bundle, err := repo.LoadBundle(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, bundle, "empty cache reads as a miss")

	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), ""))
	bundle, err = repo.LoadBundle(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Len(t, bundle.Headlines, 1)
}

func TestLoadBundleDegradesOnMalformedPayload(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, testCacheConfig().CacheKey, "not json at all", time.Minute))

	bundle, err := repo.LoadBundle(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestSnapshotsNewestFirstWithinHorizon(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	writeAt := func(ts time.Time) {
		repo.now = func() time.Time { return ts }
		require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), ""))
	}

	writeAt(base.Add(-30 * time.Hour)) // outside the 24h horizon
	writeAt(base.Add(-2 * time.Hour))
	writeAt(base.Add(-1 * time.Hour))

	repo.now = func() time.Time { return base }
	snapshots, err := repo.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "testnews:2026-08-31:110000", snapshots[0].Key)
	assert.Equal(t, "testnews:2026-08-31:100000", snapshots[1].Key)
	assert.True(t, snapshots[0].CapturedAt.After(snapshots[1].CapturedAt))
	assert.Equal(t, 2, snapshots[0].HeadlineCount)

	limited, err := repo.ListSnapshots(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSnapshotsDisabledByToggle(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	repo.SetHistoryEnabled(false)
	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), ""))

	keys, err := store.ScanKeys(ctx, "testnews:*")
	require.NoError(t, err)
	assert.Empty(t, keys, "no snapshot may be written while history is off")

	snapshots, err := repo.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
	assert.False(t, repo.HistoryEnabled())
}

func TestSnapshotsDegradeWhenBackendUnavailable(t *testing.T) {
	downStore := newFakeStore()
	downStore.down = true

	tests := map[string]struct {
		store KVStore
	}{
		"backend_down":         {store: downStore},
		"backend_unconfigured": {store: driver.NewUnavailableStore()},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(tc.store)

			snapshots, err := repo.ListSnapshots(context.Background(), 0)
			require.NoError(t, err, "an unavailable backend is a miss, not a failure")
			assert.Empty(t, snapshots)
		})
	}
}

func TestClearReportsWhatWasRemoved(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	ok, message := repo.Clear(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Cache already empty.", message)

	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), ""))
	ok, message = repo.Clear(ctx)
	assert.True(t, ok)
	assert.Contains(t, message, "primary key")
	assert.Contains(t, message, "1 historical snapshot")

	bundle, err := repo.LoadBundle(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestClearFailsWhenBackendUnreachable(t *testing.T) {
	store := newFakeStore()
	store.down = true
	repo := newTestRepository(store)

	ok, message := repo.Clear(context.Background())
	assert.False(t, ok)
	assert.Contains(t, message, "Failed to clear")
}

func TestClearDistinguishesUnconfiguredCache(t *testing.T) {
	cfg := testCacheConfig()
	cfg.RedisURL = ""
	repo := NewCacheRepository(driver.NewUnavailableStore(), cfg, slog.New(slog.DiscardHandler))

	ok, message := repo.Clear(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "Cache not configured.", message)
}

func TestStatisticsAgainstPopulatedCache(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.PersistHeadlines(ctx, sampleHeadlines(), "ticker"))
	require.NoError(t, repo.StoreArticleSummary(ctx, "https://example.com/quantum", "", "Quantum chip breaks error correction record", "s"))

	stats := repo.Statistics(ctx)
	require.NotNil(t, stats)
	assert.True(t, stats.CacheConfigured)
	assert.True(t, stats.Available)
	assert.True(t, stats.KeyPresent)
	assert.True(t, stats.TickerPresent)
	assert.Equal(t, 2, stats.HeadlineCount)
	assert.Equal(t, []string{"Science", "Tech"}, stats.Sections)
	assert.Equal(t, []string{"Example Wire", "Sky Daily"}, stats.Sources)
	assert.Equal(t, "New telescope spots distant galaxy cluster", stats.LatestHeadlineTitle)
	assert.Equal(t, 1, stats.HistoricalSnapshotCount)
	assert.Equal(t, "7.4.0", stats.ServerVersion)
	assert.Equal(t, int64(3), stats.ConnectedClients)
	assert.Positive(t, stats.PayloadBytes)
	assert.Positive(t, stats.TTLSeconds)
}

func TestStatisticsWhenBackendDown(t *testing.T) {
	store := newFakeStore()
	store.down = true
	repo := newTestRepository(store)

	stats := repo.Statistics(context.Background())
	require.NotNil(t, stats)
	assert.False(t, stats.Available)
	assert.NotEmpty(t, stats.Error)
	assert.NotEmpty(t, stats.Warnings)
}
