package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// respondAt builds a response that looks like it landed on landedURL.
func respondAt(t *testing.T, status int, landedURL, body string) *http.Response {
	t.Helper()
	parsed, err := url.Parse(landedURL)
	require.NoError(t, err)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    &http.Request{URL: parsed},
	}
}

func TestResolveFinalURLExpiredDeadlineSkipsNetwork(t *testing.T) {
	calls := 0
	client := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("must not be called")
	})
	resolver := NewURLResolver(client, "test-agent", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(-time.Second))

	assert.Equal(t, "https://example.com/story", got)
	assert.Zero(t, calls, "an expired deadline must not issue any request")
}

func TestResolveFinalURLHeadFollowsRedirect(t *testing.T) {
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodHead, req.Method)
		assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
		return respondAt(t, http.StatusOK, "https://publisher.example.com/full-story", ""), nil
	})
	resolver := NewURLResolver(client, "test-agent", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(10*time.Second))

	assert.Equal(t, "https://publisher.example.com/full-story", got)
}

func TestResolveFinalURLHeadLocationHeader(t *testing.T) {
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		resp := respondAt(t, http.StatusMovedPermanently, "https://example.com/story", "")
		resp.Header.Set("Location", "/moved/here")
		return resp, nil
	})
	resolver := NewURLResolver(client, "ua", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(10*time.Second))

	assert.Equal(t, "https://example.com/moved/here", got)
}

func TestResolveFinalURLMetaRefresh(t *testing.T) {
	page := `<html><head><meta http-equiv="Refresh" content="0; url=https://target.example.com/article"></head><body></body></html>`
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodHead {
			return respondAt(t, http.StatusOK, "https://example.com/story", ""), nil
		}
		return respondAt(t, http.StatusOK, "https://example.com/story", page), nil
	})
	resolver := NewURLResolver(client, "ua", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(10*time.Second))

	assert.Equal(t, "https://target.example.com/article", got)
}

func TestResolveFinalURLHeadFailureFallsThroughToGet(t *testing.T) {
	client := doerFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodHead {
			return nil, errors.New("head not supported")
		}
		return respondAt(t, http.StatusOK, "https://landed.example.com/a", "<html><body>hi</body></html>"), nil
	})
	resolver := NewURLResolver(client, "ua", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(10*time.Second))

	assert.Equal(t, "https://landed.example.com/a", got)
}

func TestResolveFinalURLNeverFails(t *testing.T) {
	client := doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})
	resolver := NewURLResolver(client, "ua", 5*time.Second, testLogger())

	got := resolver.ResolveFinalURL(context.Background(), "https://example.com/story", time.Now().Add(10*time.Second))

	assert.Equal(t, "https://example.com/story", got)
}
