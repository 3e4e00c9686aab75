// Package config manages service configuration from environment variables
// with validated defaults.
package config

import (
	"time"

	"newsdeck/domain"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	HTTP       HTTPConfig       `json:"http"`
	Scraper    ScraperConfig    `json:"scraper"`
	Cache      CacheConfig      `json:"cache"`
	Summarizer SummarizerConfig `json:"summarizer"`
	Refresh    RefreshConfig    `json:"refresh"`
}

type ServerConfig struct {
	Port            int           `json:"port"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
}

type HTTPConfig struct {
	RequestTimeout      time.Duration `json:"request_timeout"`
	ArticleTimeout      time.Duration `json:"article_timeout"`
	ArticleTotalBudget  time.Duration `json:"article_total_budget"`
	UserAgent           string        `json:"user_agent"`
	FallbackUserAgent   string        `json:"fallback_user_agent"`
	RetryStatuses       []int         `json:"retry_statuses"`
	RetryMaxAttempts    int           `json:"retry_max_attempts"`
	RetryBaseDelay      time.Duration `json:"retry_base_delay"`
	RetryMaxDelay       time.Duration `json:"retry_max_delay"`
	ScrapeInterval      time.Duration `json:"scrape_interval"`
	MaxIdleConns        int           `json:"max_idle_conns"`
	MaxIdleConnsPerHost int           `json:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout"`
}

type ScraperConfig struct {
	Sections           []domain.NewsSection `json:"sections"`
	SectionsFile       string               `json:"sections_file"`
	ContainerSelectors []string             `json:"container_selectors"`
	CandidateSelectors []string             `json:"candidate_selectors"`
	CutoffTokens       []string             `json:"cutoff_tokens"`
	CutoffTags         []string             `json:"cutoff_tags"`
	MinTitleWords      int                  `json:"min_title_words"`
	HeadlineLimit      int                  `json:"headline_limit"`
	TickerMaxChars     int                  `json:"ticker_max_chars"`
}

type CacheConfig struct {
	RedisURL       string        `json:"redis_url"`
	CacheKey       string        `json:"cache_key"`
	TTL            time.Duration `json:"ttl"`
	HistoryPrefix  string        `json:"history_prefix"`
	HistoryTTL     time.Duration `json:"history_ttl"`
	HistoryHorizon time.Duration `json:"history_horizon"`
	HistoryEnabled bool          `json:"history_enabled"`
}

type SummarizerConfig struct {
	BaseURL     string        `json:"base_url"`
	APIPath     string        `json:"api_path"`
	Model       string        `json:"model"`
	APIKey      string        `json:"-"`
	Timeout     time.Duration `json:"timeout"`
	Temperature float64       `json:"temperature"`
}

type RefreshConfig struct {
	Interval     time.Duration `json:"interval"`
	InitialDelay time.Duration `json:"initial_delay"`
}

// Enabled reports whether the background refresh loop should run.
func (r RefreshConfig) Enabled() bool {
	return r.Interval > 0
}

// Enabled reports whether a summarization backend is configured.
func (s SummarizerConfig) Enabled() bool {
	return s.BaseURL != ""
}

// Configured reports whether a cache backend is configured.
func (c CacheConfig) Configured() bool {
	return c.RedisURL != ""
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9300,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    120 * time.Second,
		},
		HTTP: HTTPConfig{
			RequestTimeout:     15 * time.Second,
			ArticleTimeout:     20 * time.Second,
			ArticleTotalBudget: 45 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
				"(KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
			FallbackUserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:118.0) Gecko/20100101 Firefox/118.0",
			RetryStatuses:       []int{401, 403, 404, 408, 409, 429, 500, 502, 503},
			RetryMaxAttempts:    2,
			RetryBaseDelay:      300 * time.Millisecond,
			RetryMaxDelay:       3 * time.Second,
			ScrapeInterval:      500 * time.Millisecond,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
		Scraper: ScraperConfig{
			Sections: []domain.NewsSection{
				{Label: "Tech latest", URL: "https://www.newsnow.com/us/Tech?type=ln"},
				{Label: "Science latest", URL: "https://www.newsnow.com/us/Science?type=ln"},
			},
			ContainerSelectors: []string{"#newsfeed", "div.newsfeed", "main", "#main", "body"},
			CandidateSelectors: []string{
				"a.newsfeed__title-link",
				"a.nn-feed-item__title-link",
				"div.newsfeed a",
				"#newsfeed a",
				"article a",
			},
			CutoffTokens:   []string{"more topics", "more news", "more stories"},
			CutoffTags:     []string{"h1", "h2", "h3", "h4", "h5", "h6", "header"},
			MinTitleWords:  3,
			HeadlineLimit:  0,
			TickerMaxChars: 180,
		},
		Cache: CacheConfig{
			CacheKey:       "ainews:headlines:v1",
			TTL:            900 * time.Second,
			HistoryPrefix:  "news",
			HistoryTTL:     86400 * time.Second,
			HistoryHorizon: 24 * time.Hour,
			HistoryEnabled: true,
		},
		Summarizer: SummarizerConfig{
			APIPath:     "/v1/chat/completions",
			Model:       "gpt-4o-mini",
			Timeout:     15 * time.Second,
			Temperature: 0.2,
		},
		Refresh: RefreshConfig{
			Interval:     5 * time.Minute,
			InitialDelay: 15 * time.Second,
		},
	}
}
