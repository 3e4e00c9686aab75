package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/metrics"
	"newsdeck/utils/html_parser"
	"newsdeck/utils/timeutil"
)

const articleBodyLimit = 4 << 20

// fetchAttempt is one strategy in the article retrieval sequence.
type fetchAttempt struct {
	name      string
	targetURL string
	userAgent string
	referer   string
}

// articleFetcher retrieves article body text. The redirect target is
// tried first, then the original URL, then the original URL wearing an
// alternate user agent, all under one total time budget. The strategy
// sequence is the retry policy: individual HTTP failures just advance
// to the next attempt.
type articleFetcher struct {
	client   Doer
	resolver URLResolver
	cfg      config.HTTPConfig
	logger   *slog.Logger
}

func NewArticleFetcher(client Doer, resolver URLResolver, cfg config.HTTPConfig, logger *slog.Logger) ArticleFetcher {
	return &articleFetcher{client: client, resolver: resolver, cfg: cfg, logger: logger}
}

func (f *articleFetcher) FetchArticleContent(ctx context.Context, articleURL string) (*domain.ArticleContent, error) {
	deadline := time.Now().Add(f.cfg.ArticleTotalBudget)

	finalURL := f.resolver.ResolveFinalURL(ctx, articleURL, deadline)
	resolved := finalURL != "" && finalURL != articleURL

	var attempts []fetchAttempt
	if resolved {
		attempts = append(attempts,
			fetchAttempt{name: "resolved", targetURL: finalURL, userAgent: f.cfg.UserAgent},
			fetchAttempt{name: "resolved_referer", targetURL: finalURL, userAgent: f.cfg.UserAgent, referer: articleURL},
		)
	}
	attempts = append(attempts,
		fetchAttempt{name: "original", targetURL: articleURL, userAgent: f.cfg.UserAgent},
		fetchAttempt{name: "original_alt_ua", targetURL: articleURL, userAgent: f.cfg.FallbackUserAgent, referer: articleURL},
	)

	for _, attempt := range attempts {
		timeout, ok := timeutil.DeadlineTimeout(deadline, f.cfg.ArticleTimeout)
		if !ok {
			f.logger.Debug("article fetch budget exhausted",
				"url", articleURL,
				"strategy", attempt.name)
			break
		}

		content, err := f.tryAttempt(ctx, attempt, timeout)
		if err != nil {
			metrics.ArticleFetchAttempts.WithLabelValues(attempt.name, "failure").Inc()
			f.logger.Debug("article fetch attempt failed",
				"url", attempt.targetURL,
				"strategy", attempt.name,
				"error", err)
			continue
		}
		metrics.ArticleFetchAttempts.WithLabelValues(attempt.name, "success").Inc()
		return content, nil
	}

	return nil, fmt.Errorf("fetch article %s: %w", articleURL, domain.ErrNoContent)
}

func (f *articleFetcher) tryAttempt(ctx context.Context, attempt fetchAttempt, timeout time.Duration) (*domain.ArticleContent, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, attempt.targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", attempt.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if attempt.referer != "" {
		req.Header.Set("Referer", attempt.referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, articleBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}

	text := html_parser.ExtractArticleText(doc)
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoContent
	}

	return &domain.ArticleContent{
		URL:  resp.Request.URL.String(),
		Text: text,
	}, nil
}
