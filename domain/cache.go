package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// HeadlineCache is the bundle persisted under a single cache key: the current
// headline list, the precomputed ticker line, and every article summary
// stored so far. Writers must read-merge-write so a headline refresh never
// drops summaries and a summary write never drops headlines.
type HeadlineCache struct {
	Headlines  []Headline        `json:"headlines"`
	TickerText string            `json:"ticker,omitempty"`
	Summaries  map[string]string `json:"summaries"`
}

// NewHeadlineCache builds a bundle with a non-nil summaries map.
func NewHeadlineCache(headlines []Headline, tickerText string, summaries map[string]string) *HeadlineCache {
	if summaries == nil {
		summaries = make(map[string]string)
	}
	return &HeadlineCache{Headlines: headlines, TickerText: tickerText, Summaries: summaries}
}

// Limited returns a view of the bundle capped at maxItems headlines.
// A non-positive cap or a cap at or above the current length returns the
// bundle unchanged.
func (c *HeadlineCache) Limited(maxItems int) *HeadlineCache {
	if maxItems <= 0 || maxItems >= len(c.Headlines) {
		return c
	}
	return &HeadlineCache{
		Headlines:  c.Headlines[:maxItems],
		TickerText: c.TickerText,
		Summaries:  c.Summaries,
	}
}

// Encode serializes the bundle to its cache payload.
func (c *HeadlineCache) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// DecodeBundle parses a cache payload into a HeadlineCache. Legacy payloads
// that are a bare headline array are accepted. Entries without a title or URL
// are skipped, blank ticker text and blank summaries are dropped, and any
// payload that is not object- or array-shaped yields ErrMalformedPayload.
func DecodeBundle(payload []byte) (*HeadlineCache, error) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" {
		return nil, ErrMalformedPayload
	}

	var envelope struct {
		Headlines []json.RawMessage `json:"headlines"`
		Ticker    string            `json:"ticker"`
		Summaries map[string]string `json:"summaries"`
	}

	var rawHeadlines []json.RawMessage
	switch trimmed[0] {
	case '{':
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return nil, ErrMalformedPayload
		}
		rawHeadlines = envelope.Headlines
	case '[':
		if err := json.Unmarshal(payload, &rawHeadlines); err != nil {
			return nil, ErrMalformedPayload
		}
	default:
		return nil, ErrMalformedPayload
	}

	headlines := make([]Headline, 0, len(rawHeadlines))
	for _, raw := range rawHeadlines {
		var h Headline
		if err := json.Unmarshal(raw, &h); err != nil {
			continue
		}
		if h.Title == "" || h.URL == "" {
			continue
		}
		if h.Section == "" {
			h.Section = DefaultSection
		}
		headlines = append(headlines, h)
	}

	ticker := envelope.Ticker
	if strings.TrimSpace(ticker) == "" {
		ticker = ""
	}

	summaries := make(map[string]string, len(envelope.Summaries))
	for key, value := range envelope.Summaries {
		if key == "" || strings.TrimSpace(value) == "" {
			continue
		}
		summaries[key] = value
	}

	return &HeadlineCache{Headlines: headlines, TickerText: ticker, Summaries: summaries}, nil
}

// HistoricalSnapshot is a read-only, timestamp-keyed copy of a cache bundle.
type HistoricalSnapshot struct {
	Key           string         `json:"key"`
	CapturedAt    time.Time      `json:"captured_at"`
	Cache         *HeadlineCache `json:"cache"`
	HeadlineCount int            `json:"headline_count"`
	SummaryCount  int            `json:"summary_count"`
}

// CacheStatistics describes the cache key and backing server for diagnostics.
// It is assembled fresh per request and never persisted.
type CacheStatistics struct {
	CacheConfigured         bool      `json:"cache_configured"`
	Available               bool      `json:"available"`
	CacheKey                string    `json:"cache_key"`
	KeyPresent              bool      `json:"key_present"`
	HeadlineCount           int       `json:"headline_count"`
	SummaryCount            int       `json:"summary_count"`
	TickerPresent           bool      `json:"ticker_present"`
	Sections                []string  `json:"sections"`
	SectionCount            int       `json:"section_count"`
	Sources                 []string  `json:"sources"`
	SourceCount             int       `json:"source_count"`
	TTLSeconds              int64     `json:"ttl_seconds"`
	PayloadBytes            int       `json:"payload_bytes"`
	LatestHeadlineTime      time.Time `json:"latest_headline_time,omitzero"`
	LatestHeadlineTitle     string    `json:"latest_headline_title,omitempty"`
	LatestHeadlineSource    string    `json:"latest_headline_source,omitempty"`
	HistoricalSnapshotCount int       `json:"historical_snapshot_count"`
	LatestSnapshotKey       string    `json:"latest_snapshot_key,omitempty"`
	DBSize                  int64     `json:"dbsize,omitempty"`
	ServerVersion           string    `json:"server_version,omitempty"`
	ConnectedClients        int64     `json:"connected_clients,omitempty"`
	UsedMemoryHuman         string    `json:"used_memory_human,omitempty"`
	Warnings                []string  `json:"warnings,omitempty"`
	Error                   string    `json:"error,omitempty"`
}
