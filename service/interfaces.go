package service

import (
	"context"
	"net/http"
	"time"

	"newsdeck/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// Unlimited requests every headline a section offers instead of a
// bounded slice.
const Unlimited = -1

// Doer issues a single HTTP request. Satisfied by *http.Client and by
// test doubles.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// URLResolver chases redirects to the address a headline link actually
// lands on. Resolution is best effort and never fails: when nothing
// better can be determined the input URL comes back unchanged.
type URLResolver interface {
	ResolveFinalURL(ctx context.Context, rawURL string, deadline time.Time) string
}

// SectionScraper pulls the headline list out of a single section page.
type SectionScraper interface {
	FetchSectionHeadlines(ctx context.Context, section domain.NewsSection, maxItems int, seen map[domain.HeadlineKey]struct{}) ([]domain.Headline, error)
}

// HeadlineProvider serves the aggregated, interleaved headline feed
// together with its ticker line.
type HeadlineProvider interface {
	FetchHeadlines(ctx context.Context, maxItems int, forceRefresh bool) (headlines []domain.Headline, fromCache bool, tickerText string)
}

// ArticleFetcher retrieves and extracts the readable text of a single
// article page.
type ArticleFetcher interface {
	FetchArticleContent(ctx context.Context, articleURL string) (*domain.ArticleContent, error)
}

// SummaryResolver produces the summary shown for a headline, consulting
// the cache before generating anything new.
type SummaryResolver interface {
	ResolveSummary(ctx context.Context, headline domain.Headline) domain.SummaryResolution
}

// Summarizer turns extracted article text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, title, articleText string) (string, error)
}
