package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	if config.HTTP.ArticleTotalBudget < config.HTTP.ArticleTimeout {
		return fmt.Errorf("article total budget %s is below the per-attempt timeout %s",
			config.HTTP.ArticleTotalBudget, config.HTTP.ArticleTimeout)
	}

	if len(config.Scraper.Sections) == 0 {
		return fmt.Errorf("at least one section must be configured")
	}
	for _, section := range config.Scraper.Sections {
		if section.Label == "" || section.URL == "" {
			return fmt.Errorf("section entries need both a label and a url")
		}
	}

	if config.Cache.CacheKey == "" {
		return fmt.Errorf("cache key must not be empty")
	}
	if config.Cache.HistoryPrefix == "" {
		return fmt.Errorf("history prefix must not be empty")
	}

	if config.Summarizer.Enabled() && config.Summarizer.Model == "" {
		return fmt.Errorf("summarizer model must be set when a base URL is configured")
	}

	return nil
}
