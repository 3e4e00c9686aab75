package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"newsdeck/config"
	"newsdeck/retry"
	"newsdeck/utils"
)

// HTTPClientFactory builds the per-concern HTTP clients the pipeline
// uses. Section pages get a retrying client, article and summarizer
// calls get plain ones, and the redirect resolver gets a client without
// a fixed timeout so each attempt can be budgeted against the caller's
// deadline.
type HTTPClientFactory struct {
	cfg    config.HTTPConfig
	logger *slog.Logger
}

func NewHTTPClientFactory(cfg config.HTTPConfig, logger *slog.Logger) *HTTPClientFactory {
	return &HTTPClientFactory{cfg: cfg, logger: logger}
}

// CreateScraperClient returns the client used for section pages.
// Requests are spaced by the configured scrape interval, and responses
// with a retryable status are reissued with backoff before the last one
// is handed to the caller.
func (f *HTTPClientFactory) CreateScraperClient() *http.Client {
	return &http.Client{
		Timeout: f.cfg.RequestTimeout,
		Transport: &throttlingTransport{
			limiter: utils.NewRateLimiter(f.cfg.ScrapeInterval),
			base: &retryingTransport{
				base:    f.createTransport(),
				retrier: f.createRetrier(),
				statuses: func() map[int]bool {
					m := make(map[int]bool, len(f.cfg.RetryStatuses))
					for _, s := range f.cfg.RetryStatuses {
						m[s] = true
					}
					return m
				}(),
			},
		},
	}
}

// CreateArticleClient returns the client used for article bodies. The
// fetch strategies are the retry policy here, so the transport is plain.
func (f *HTTPClientFactory) CreateArticleClient() *http.Client {
	return &http.Client{
		Timeout:   f.cfg.ArticleTimeout,
		Transport: f.createTransport(),
	}
}

// CreateResolverClient returns the redirect-following client used for
// final-URL resolution. No client timeout: the resolver passes a
// deadline-derived context per request.
func (f *HTTPClientFactory) CreateResolverClient() *http.Client {
	return &http.Client{
		Transport: f.createTransport(),
	}
}

// CreateSummarizerClient returns the client for the summary API, with
// the given request timeout.
func (f *HTTPClientFactory) CreateSummarizerClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: f.createTransport(),
	}
}

func (f *HTTPClientFactory) createTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        f.cfg.MaxIdleConns,
		MaxIdleConnsPerHost: f.cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     f.cfg.IdleConnTimeout,
	}
}

func (f *HTTPClientFactory) createRetrier() *retry.Retrier {
	retryCfg := retry.Config{
		MaxAttempts:   f.cfg.RetryMaxAttempts,
		BaseDelay:     f.cfg.RetryBaseDelay,
		MaxDelay:      f.cfg.RetryMaxDelay,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}
	return retry.NewRetrier(retryCfg, isRetryableTransportError, f.logger)
}

var errRetryableStatus = errors.New("retryable status")

func isRetryableTransportError(err error) bool {
	// Network failures and listed statuses alike get another attempt;
	// the transport only carries idempotent methods.
	return err != nil
}

// retryingTransport reissues requests that fail or come back with one of
// the configured statuses. When every attempt yields a retryable status
// the last response is returned rather than an error, so callers see the
// real status code.
type retryingTransport struct {
	base     http.RoundTripper
	retrier  *retry.Retrier
	statuses map[int]bool
}

func (t *retryingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.GetBody == nil {
		// Cannot replay the body, so do not retry.
		return t.base.RoundTrip(req)
	}
	var lastResp *http.Response

	err := t.retrier.Do(req.Context(), func() error {
		attempt := req.Clone(req.Context())
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return fmt.Errorf("rewind request body: %w", err)
			}
			attempt.Body = body
		}

		resp, err := t.base.RoundTrip(attempt)
		if err != nil {
			return err
		}
		if lastResp != nil {
			drainAndClose(lastResp)
		}
		lastResp = resp
		if t.statuses[resp.StatusCode] {
			return fmt.Errorf("%w: %d", errRetryableStatus, resp.StatusCode)
		}
		return nil
	})

	if err != nil {
		if lastResp != nil {
			return lastResp, nil
		}
		return nil, err
	}
	return lastResp, nil
}

// throttlingTransport spaces outbound requests by a shared minimum
// interval before delegating to the wrapped transport.
type throttlingTransport struct {
	limiter *utils.RateLimiter
	base    http.RoundTripper
}

func (t *throttlingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// drainAndClose reads a response body to completion so the underlying
// connection can be reused, then closes it.
func drainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
