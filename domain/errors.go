package domain

import "errors"

var (
	// ErrNoContent indicates every article fetch strategy was exhausted
	// without producing usable body text.
	ErrNoContent = errors.New("no article content retrievable")

	// ErrCacheUnavailable indicates the cache backend is not configured or
	// cannot be reached. Callers treat it as a miss, never as a failure.
	ErrCacheUnavailable = errors.New("cache backend unavailable")

	// ErrDeadlineExhausted indicates the operation's total time budget was
	// spent before a new attempt could start.
	ErrDeadlineExhausted = errors.New("deadline exhausted")

	// ErrMalformedPayload indicates a cache payload could not be decoded.
	ErrMalformedPayload = errors.New("malformed cache payload")

	// ErrSummarizerDisabled indicates no summarization backend is configured.
	ErrSummarizerDisabled = errors.New("summarizer not configured")

	// ErrEmptySummary indicates the summarization backend returned blank text.
	ErrEmptySummary = errors.New("summarizer returned empty text")
)
