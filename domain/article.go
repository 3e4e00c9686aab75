package domain

// ArticleContent is the ephemeral result of an article fetch: the final
// resolved URL and the extracted body text.
type ArticleContent struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Issue tags carried on a SummaryResolution when the pipeline degraded.
const (
	IssueArticleFetchFailed     = "article_fetch_failed"
	IssueSummaryGenerationEmpty = "summary_generation_empty"
)

// SummaryResolution is the outcome of resolving a summary for one headline.
type SummaryResolution struct {
	Summary     string `json:"summary"`
	ArticleText string `json:"article_text,omitempty"`
	FromCache   bool   `json:"from_cache"`
	SourceURL   string `json:"source_url,omitempty"`
	Issue       string `json:"issue,omitempty"`
}
