package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdeck/utils/timeutil"
)

const resolverBodyLimit = 1 << 20

// urlResolver follows a headline link to its landing address. A cheap
// HEAD probe is tried first, then a GET whose body is checked for a
// meta-refresh target. Every failure path returns the input URL.
type urlResolver struct {
	client    Doer
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger
}

func NewURLResolver(client Doer, userAgent string, timeout time.Duration, logger *slog.Logger) URLResolver {
	return &urlResolver{
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
		logger:    logger,
	}
}

func (r *urlResolver) ResolveFinalURL(ctx context.Context, rawURL string, deadline time.Time) string {
	timeout, ok := timeutil.DeadlineTimeout(deadline, r.timeout)
	if !ok {
		return rawURL
	}

	if resolved, done := r.resolveByHead(ctx, rawURL, timeout); done {
		return resolved
	}

	timeout, ok = timeutil.DeadlineTimeout(deadline, r.timeout)
	if !ok {
		return rawURL
	}
	return r.resolveByMetaRefresh(ctx, rawURL, timeout)
}

// resolveByHead probes with a redirect-following HEAD. done is false
// when the probe was inconclusive and the GET stage should run.
func (r *urlResolver) resolveByHead(ctx context.Context, rawURL string, timeout time.Duration) (string, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return rawURL, true
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("head probe failed", "url", rawURL, "error", err)
		return "", false
	}
	defer drainAndClose(resp)

	if landed := resp.Request.URL.String(); landed != rawURL {
		return landed, true
	}
	if location := resp.Header.Get("Location"); location != "" && isRedirectStatus(resp.StatusCode) {
		return joinURL(rawURL, location), true
	}
	return "", false
}

func (r *urlResolver) resolveByMetaRefresh(ctx context.Context, rawURL string, timeout time.Duration) string {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return rawURL
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("resolve fetch failed", "url", rawURL, "error", err)
		return rawURL
	}
	defer drainAndClose(resp)

	landed := resp.Request.URL.String()

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, resolverBodyLimit))
	if err != nil {
		return landed
	}

	if target := metaRefreshTarget(doc); target != "" {
		return joinURL(landed, target)
	}
	return landed
}

// metaRefreshTarget pulls the destination out of a
// <meta http-equiv="refresh" content="0; url=..."> tag, if present.
func metaRefreshTarget(doc *goquery.Document) string {
	var target string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		equiv, _ := s.Attr("http-equiv")
		if !strings.EqualFold(equiv, "refresh") {
			return true
		}
		content, _ := s.Attr("content")
		idx := strings.Index(strings.ToLower(content), "url=")
		if idx < 0 {
			return true
		}
		target = strings.Trim(strings.TrimSpace(content[idx+len("url="):]), `'"`)
		return target == ""
	})
	return target
}

func isRedirectStatus(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// joinURL resolves a possibly relative reference against a base,
// falling back to the reference itself when parsing fails.
func joinURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
