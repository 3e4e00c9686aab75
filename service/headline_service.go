package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/metrics"
	"newsdeck/repository"
)

// headlineService aggregates the configured sections into one feed.
// Reads are cache-first; a fresh scrape interleaves sections round-robin
// so no single section dominates the head of the list, then persists the
// result together with a precomputed ticker line.
type headlineService struct {
	scraper  SectionScraper
	cache    repository.CacheRepository
	sections []domain.NewsSection
	cfg      config.ScraperConfig
	logger   *slog.Logger
}

func NewHeadlineService(scraper SectionScraper, cache repository.CacheRepository, cfg config.ScraperConfig, logger *slog.Logger) HeadlineProvider {
	return &headlineService{
		scraper:  scraper,
		cache:    cache,
		sections: cfg.Sections,
		cfg:      cfg,
		logger:   logger,
	}
}

// FetchHeadlines returns up to maxItems headlines (Unlimited for no
// cap), whether they came from the cache, and the ticker line. maxItems
// of zero yields an empty result.
func (s *headlineService) FetchHeadlines(ctx context.Context, maxItems int, forceRefresh bool) ([]domain.Headline, bool, string) {
	if maxItems == 0 || (maxItems < 0 && maxItems != Unlimited) {
		return nil, false, ""
	}

	if !forceRefresh {
		if bundle := s.loadCached(ctx, maxItems); bundle != nil {
			metrics.RecordCacheLookup(true)
			return bundle.Headlines, true, bundle.TickerText
		}
		metrics.RecordCacheLookup(false)
	}

	combined := s.scrapeAll(ctx, maxItems)
	if len(combined) > 0 {
		ticker := BuildTickerText(combined, s.cfg.TickerMaxChars)
		if err := s.cache.PersistHeadlines(ctx, combined, ticker); err != nil {
			s.logger.Warn("persisting headlines failed", "error", err)
		}
		metrics.RefreshTotal.WithLabelValues("scraped").Inc()
		metrics.HeadlinesScraped.Observe(float64(len(combined)))
		return combined, false, ticker
	}

	// Nothing scraped. Serve stale cache over nothing, even on a
	// forced refresh.
	if bundle := s.loadCached(ctx, maxItems); bundle != nil {
		metrics.RefreshTotal.WithLabelValues("stale_cache").Inc()
		return bundle.Headlines, true, bundle.TickerText
	}
	metrics.RefreshTotal.WithLabelValues("empty").Inc()
	return nil, false, ""
}

func (s *headlineService) loadCached(ctx context.Context, maxItems int) *domain.HeadlineCache {
	trim := maxItems
	if trim == Unlimited {
		trim = 0
	}
	bundle, err := s.cache.LoadBundle(ctx, trim)
	if err != nil {
		s.logger.Debug("cache read failed", "error", err)
		return nil
	}
	if bundle == nil || len(bundle.Headlines) == 0 {
		return nil
	}
	return bundle
}

// scrapeAll runs every section sequentially in configured order,
// isolating per-section failures, and interleaves the results.
func (s *headlineService) scrapeAll(ctx context.Context, maxItems int) []domain.Headline {
	quota := 0
	if maxItems != Unlimited && len(s.sections) > 0 {
		quota = (maxItems + len(s.sections) - 1) / len(s.sections)
	}

	seen := make(map[domain.HeadlineKey]struct{})
	perSection := make([][]domain.Headline, 0, len(s.sections))
	for _, section := range s.sections {
		headlines, err := s.scraper.FetchSectionHeadlines(ctx, section, quota, seen)
		if err != nil {
			s.logger.Warn("section scrape failed",
				"section", section.Label,
				"error", err)
			metrics.SectionScrapeFailures.WithLabelValues(section.Label).Inc()
			continue
		}
		perSection = append(perSection, headlines)
	}

	return interleave(perSection, maxItems)
}

// interleave merges the per-section lists round-robin (index 0 of every
// section, then index 1, ...) and de-duplicates by headline key.
func interleave(perSection [][]domain.Headline, maxItems int) []domain.Headline {
	var out []domain.Headline
	seen := make(map[domain.HeadlineKey]struct{})

	for i := 0; ; i++ {
		advanced := false
		for _, section := range perSection {
			if i >= len(section) {
				continue
			}
			advanced = true
			h := section[i]
			if _, dup := seen[h.Key()]; dup {
				continue
			}
			seen[h.Key()] = struct{}{}
			out = append(out, h)
			if maxItems > 0 && len(out) >= maxItems {
				return out
			}
		}
		if !advanced {
			return out
		}
	}
}

// BuildTickerText renders "[Section] Title | [Section] Title | ..."
// within the character budget, counted in runes. The first entry is
// truncated with an ellipsis when it alone exceeds the budget.
func BuildTickerText(headlines []domain.Headline, maxChars int) string {
	if len(headlines) == 0 {
		return "No headlines available right now."
	}

	var parts []string
	length := 0
	for _, h := range headlines {
		part := h.Title
		if h.Section != "" {
			part = "[" + h.Section + "] " + h.Title
		}
		candidate := length + utf8.RuneCountInString(part)
		if len(parts) > 0 {
			candidate += len(" | ")
		}
		if maxChars > 0 && candidate > maxChars {
			if len(parts) == 0 {
				parts = append(parts, truncateWithEllipsis(part, maxChars))
			}
			break
		}
		parts = append(parts, part)
		length = candidate
	}
	return strings.Join(parts, " | ")
}

func truncateWithEllipsis(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:maxChars-1])) + "…"
}
