// Package html_parser extracts readable article text from fetched pages.
package html_parser

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Candidate containers probed in order; the first whose paragraph text
// passes the word threshold wins.
var contentSelectors = []string{
	"article",
	"[role='main'] article",
	"[role='main']",
	".article",
	".post",
	".story",
}

const (
	minFragmentWords = 5
	minContentWords  = 60
)

// ExtractArticleText pulls body text out of an article page. Each candidate
// container is scanned for paragraph and list-item fragments of at least
// five words; the first container whose combined text exceeds sixty words is
// used. When no container qualifies, every <p> on the page is scanned
// instead. The result may be empty when the page carries no usable prose.
func ExtractArticleText(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		content := collectFragments(node.Find("p, li"))
		if wordCount(content) > minContentWords {
			return content
		}
	}

	return collectFragments(doc.Find("p"))
}

func collectFragments(selection *goquery.Selection) string {
	var fragments []string
	selection.Each(func(_ int, s *goquery.Selection) {
		text := fragmentText(s)
		if wordCount(text) >= minFragmentWords {
			fragments = append(fragments, text)
		}
	})
	return strings.Join(fragments, "\n\n")
}

// fragmentText sanitizes a fragment's inner HTML so embedded script and
// style content never leaks into the extracted prose.
func fragmentText(s *goquery.Selection) string {
	inner, err := s.Html()
	if err != nil {
		return normalizeWhitespace(s.Text())
	}
	return StripTags(inner)
}

// StripTags removes markup from a string and returns plain text.
func StripTags(raw string) string {
	p := bluemonday.StrictPolicy()
	return normalizeWhitespace(html.UnescapeString(p.Sanitize(raw)))
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
