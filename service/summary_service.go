package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"newsdeck/domain"
	"newsdeck/metrics"
	"newsdeck/repository"
)

const fallbackSummaryMaxChars = 800

// summaryService resolves the summary for a headline: cached summary
// first, then article fetch plus generation, with a truncated excerpt
// as the last resort. Only generated summaries are written back to the
// cache; fallbacks are served once and forgotten.
type summaryService struct {
	cache      repository.CacheRepository
	fetcher    ArticleFetcher
	summarizer Summarizer
	logger     *slog.Logger
}

// NewSummaryService builds the resolver. summarizer may be nil when no
// summary backend is configured; resolution then degrades to excerpts.
func NewSummaryService(cache repository.CacheRepository, fetcher ArticleFetcher, summarizer Summarizer, logger *slog.Logger) SummaryResolver {
	return &summaryService{
		cache:      cache,
		fetcher:    fetcher,
		summarizer: summarizer,
		logger:     logger,
	}
}

func (s *summaryService) ResolveSummary(ctx context.Context, headline domain.Headline) domain.SummaryResolution {
	if summary, ok := s.cache.GetArticleSummary(ctx, headline.URL, headline.Title); ok {
		s.logger.Info("serving cached summary", "url", headline.URL)
		metrics.SummaryResolutions.WithLabelValues("cache_hit").Inc()
		return domain.SummaryResolution{
			Summary:   summary,
			FromCache: true,
			SourceURL: headline.URL,
		}
	}

	article, err := s.fetcher.FetchArticleContent(ctx, headline.URL)
	if err != nil {
		s.logger.Info("serving headline-only fallback after fetch failure",
			"url", headline.URL,
			"error", err)
		metrics.SummaryResolutions.WithLabelValues("fetch_failed").Inc()
		return domain.SummaryResolution{
			Summary: fallbackSummary(headline, ""),
			Issue:   domain.IssueArticleFetchFailed,
		}
	}

	// The redirect may have landed on a URL another lookup already
	// summarized. Backfill the original URL so the next request hits
	// on the first probe.
	if summary, ok := s.cache.GetArticleSummary(ctx, article.URL, headline.Title); ok {
		s.logger.Info("serving cached summary for resolved url",
			"resolved_url", article.URL,
			"requested_url", headline.URL)
		if err := s.cache.StoreArticleSummary(ctx, headline.URL, article.URL, headline.Title, summary); err != nil {
			s.logger.Warn("backfilling summary cache failed", "error", err)
		}
		metrics.SummaryResolutions.WithLabelValues("cache_hit_resolved").Inc()
		return domain.SummaryResolution{
			Summary:     summary,
			ArticleText: article.Text,
			FromCache:   true,
			SourceURL:   article.URL,
		}
	}

	summary, err := s.generate(ctx, headline.Title, article.Text)
	if err != nil && !errors.Is(err, domain.ErrSummarizerDisabled) {
		s.logger.Warn("summary generation failed", "url", headline.URL, "error", err)
	}
	if strings.TrimSpace(summary) != "" {
		if err := s.cache.StoreArticleSummary(ctx, headline.URL, article.URL, headline.Title, summary); err != nil {
			s.logger.Warn("persisting summary failed", "error", err)
		}
		metrics.SummaryResolutions.WithLabelValues("generated").Inc()
		return domain.SummaryResolution{
			Summary:     summary,
			ArticleText: article.Text,
			SourceURL:   article.URL,
		}
	}

	metrics.SummaryResolutions.WithLabelValues("generation_empty").Inc()
	return domain.SummaryResolution{
		Summary:     fallbackSummary(headline, article.Text),
		ArticleText: article.Text,
		SourceURL:   article.URL,
		Issue:       domain.IssueSummaryGenerationEmpty,
	}
}

func (s *summaryService) generate(ctx context.Context, title, articleText string) (string, error) {
	if s.summarizer == nil {
		return "", domain.ErrSummarizerDisabled
	}
	return s.summarizer.Summarize(ctx, title, articleText)
}

// fallbackSummary builds the excerpt shown when no generated summary is
// available: the first four lines of the article capped to 800
// characters, or a headline-only notice when there is no article text.
func fallbackSummary(headline domain.Headline, articleText string) string {
	if strings.TrimSpace(articleText) == "" {
		return headline.Title + "\n\nSummary unavailable right now. Open the full article for details."
	}

	lines := strings.Split(articleText, "\n")
	if len(lines) > 4 {
		lines = lines[:4]
	}
	fallback := strings.Join(lines, "\n\n")
	if runes := []rune(fallback); len(runes) > fallbackSummaryMaxChars {
		fallback = strings.TrimRight(string(runes[:fallbackSummaryMaxChars]), " \t\n") + "…"
	}
	if strings.TrimSpace(fallback) == "" {
		return headline.Title
	}
	return fallback
}
