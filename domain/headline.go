package domain

import "strings"

// DefaultSection is the section label applied when a payload omits one.
const DefaultSection = "News"

// NewsSection identifies one logical feed on the aggregation site.
type NewsSection struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Headline represents one scraped news item. Instances are immutable after
// the scraper produces them.
type Headline struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Section       string `json:"section"`
	Source        string `json:"source,omitempty"`
	PublishedTime string `json:"published_time,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
}

// Key returns the deduplication key: lowercased title plus the exact URL.
func (h Headline) Key() HeadlineKey {
	return HeadlineKey{Title: strings.ToLower(h.Title), URL: h.URL}
}

// HeadlineKey is the (lowercased title, url) pair used by the scraper and
// aggregator seen-sets.
type HeadlineKey struct {
	Title string
	URL   string
}
