package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig builds the configuration from defaults and overrides provided
// via environment variables, then validates the result.
func LoadConfig() (*Config, error) {
	// Optional .env for local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("failed to load HTTP config: %w", err)
	}

	if err := loadScraperConfig(&config.Scraper); err != nil {
		return fmt.Errorf("failed to load scraper config: %w", err)
	}

	if err := loadCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("failed to load cache config: %w", err)
	}

	if err := loadSummarizerConfig(&config.Summarizer); err != nil {
		return fmt.Errorf("failed to load summarizer config: %w", err)
	}

	if err := loadRefreshConfig(&config.Refresh); err != nil {
		return fmt.Errorf("failed to load refresh config: %w", err)
	}

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT: %s", port)
		}
		cfg.Port = p
	}

	if err := overrideDuration(&cfg.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}
	if err := overrideDuration(&cfg.ReadTimeout, "SERVER_READ_TIMEOUT"); err != nil {
		return err
	}
	return overrideDuration(&cfg.WriteTimeout, "SERVER_WRITE_TIMEOUT")
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	if err := overrideSeconds(&cfg.RequestTimeout, "NEWS_HTTP_TIMEOUT", time.Second); err != nil {
		return err
	}
	if err := overrideSeconds(&cfg.ArticleTimeout, "NEWS_ARTICLE_TIMEOUT", time.Second); err != nil {
		return err
	}
	if err := overrideSeconds(&cfg.ArticleTotalBudget, "NEWS_ARTICLE_TOTAL_TIMEOUT", cfg.ArticleTimeout); err != nil {
		return err
	}

	if agent := strings.TrimSpace(os.Getenv("NEWS_USER_AGENT")); agent != "" {
		cfg.UserAgent = agent
	}
	if agent := strings.TrimSpace(os.Getenv("NEWS_FALLBACK_USER_AGENT")); agent != "" {
		cfg.FallbackUserAgent = agent
	}

	if statuses := os.Getenv("NEWS_RETRY_STATUSES"); statuses != "" {
		parsed, err := parseStatusList(statuses)
		if err != nil {
			return fmt.Errorf("invalid NEWS_RETRY_STATUSES: %w", err)
		}
		cfg.RetryStatuses = parsed
	}

	if attempts := os.Getenv("NEWS_RETRY_MAX_ATTEMPTS"); attempts != "" {
		a, err := strconv.Atoi(attempts)
		if err != nil || a < 0 {
			return fmt.Errorf("invalid NEWS_RETRY_MAX_ATTEMPTS: %s", attempts)
		}
		cfg.RetryMaxAttempts = a
	}

	if err := overrideDuration(&cfg.RetryBaseDelay, "NEWS_RETRY_BASE_DELAY"); err != nil {
		return err
	}
	if err := overrideDuration(&cfg.RetryMaxDelay, "NEWS_RETRY_MAX_DELAY"); err != nil {
		return err
	}
	return overrideDuration(&cfg.ScrapeInterval, "NEWS_SCRAPE_INTERVAL")
}

func loadScraperConfig(cfg *ScraperConfig) error {
	if file := strings.TrimSpace(os.Getenv("NEWS_SECTIONS_FILE")); file != "" {
		cfg.SectionsFile = file

		sections, err := LoadSectionsFile(file)
		if err != nil {
			return fmt.Errorf("failed to load sections file: %w", err)
		}
		cfg.Sections = sections
	}

	if limit := os.Getenv("NEWS_HEADLINE_LIMIT"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid NEWS_HEADLINE_LIMIT: %s", limit)
		}
		cfg.HeadlineLimit = n
	}

	return nil
}

func loadCacheConfig(cfg *CacheConfig) error {
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))

	if key := strings.TrimSpace(os.Getenv("NEWS_CACHE_KEY")); key != "" {
		cfg.CacheKey = key
	}
	if prefix := strings.TrimSpace(os.Getenv("NEWS_HISTORY_PREFIX")); prefix != "" {
		cfg.HistoryPrefix = prefix
	}

	// TTL knobs are plain second counts with floors, matching the knobs the
	// deployment already sets.
	if ttl := os.Getenv("NEWS_CACHE_TTL"); ttl != "" {
		seconds, err := strconv.Atoi(ttl)
		if err != nil {
			return fmt.Errorf("invalid NEWS_CACHE_TTL: %s", ttl)
		}
		cfg.TTL = time.Duration(max(60, seconds)) * time.Second
	}

	if ttl := os.Getenv("NEWS_HISTORY_TTL"); ttl != "" {
		seconds, err := strconv.Atoi(ttl)
		if err != nil {
			return fmt.Errorf("invalid NEWS_HISTORY_TTL: %s", ttl)
		}
		cfg.HistoryTTL = time.Duration(max(300, seconds)) * time.Second
	}

	if err := overrideDuration(&cfg.HistoryHorizon, "NEWS_HISTORY_HORIZON"); err != nil {
		return err
	}

	if enabled := os.Getenv("NEWS_HISTORY_ENABLED"); enabled != "" {
		b, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("invalid NEWS_HISTORY_ENABLED: %s", enabled)
		}
		cfg.HistoryEnabled = b
	}

	return nil
}

func loadSummarizerConfig(cfg *SummarizerConfig) error {
	if base := strings.TrimSpace(os.Getenv("NEWS_SUMMARY_API_BASE")); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	}
	if path := strings.TrimSpace(os.Getenv("NEWS_SUMMARY_API_PATH")); path != "" {
		cfg.APIPath = path
	}
	if model := strings.TrimSpace(os.Getenv("NEWS_SUMMARY_MODEL")); model != "" {
		cfg.Model = model
	}
	cfg.APIKey = strings.TrimSpace(os.Getenv("NEWS_SUMMARY_API_KEY"))

	if timeout := os.Getenv("NEWS_SUMMARY_TIMEOUT"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return fmt.Errorf("invalid NEWS_SUMMARY_TIMEOUT: %s", timeout)
		}
		cfg.Timeout = time.Duration(max(5, seconds)) * time.Second
	}

	if temp := os.Getenv("NEWS_SUMMARY_TEMPERATURE"); temp != "" {
		f, err := strconv.ParseFloat(temp, 64)
		if err != nil {
			return fmt.Errorf("invalid NEWS_SUMMARY_TEMPERATURE: %s", temp)
		}
		cfg.Temperature = f
	}

	return nil
}

func loadRefreshConfig(cfg *RefreshConfig) error {
	if err := overrideDuration(&cfg.InitialDelay, "NEWS_REFRESH_INITIAL_DELAY"); err != nil {
		return err
	}

	if interval := os.Getenv("NEWS_REFRESH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid NEWS_REFRESH_INTERVAL: %s", interval)
		}
		cfg.Interval = d
	}

	return nil
}

func overrideDuration(target *time.Duration, name string) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fmt.Errorf("invalid %s: %s", name, value)
	}
	*target = d
	return nil
}

// overrideSeconds accepts a plain second count and enforces a floor.
func overrideSeconds(target *time.Duration, name string, floor time.Duration) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %s", name, value)
	}
	d := time.Duration(seconds) * time.Second
	if d < floor {
		d = floor
	}
	*target = d
	return nil
}

func parseStatusList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	statuses := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		code, err := strconv.Atoi(trimmed)
		if err != nil || code < 100 || code > 599 {
			return nil, fmt.Errorf("bad status code %q", trimmed)
		}
		statuses = append(statuses, code)
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("empty status list")
	}
	return statuses, nil
}
