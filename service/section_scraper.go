package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/utils/timeutil"
)

const sectionBodyLimit = 4 << 20

// sectionScraper extracts headlines from one section page. The page is
// walked in document order so a cutoff marker ("more stories" and
// friends) reliably fences off the trailing link farm.
type sectionScraper struct {
	client Doer
	cfg    config.ScraperConfig
	ua     string
	logger *slog.Logger
}

func NewSectionScraper(client Doer, cfg config.ScraperConfig, userAgent string, logger *slog.Logger) SectionScraper {
	return &sectionScraper{client: client, cfg: cfg, ua: userAgent, logger: logger}
}

// FetchSectionHeadlines scrapes one section. maxItems caps the result
// when positive; seen carries the dedup keys shared across sections
// within a single refresh pass and is updated in place.
func (s *sectionScraper) FetchSectionHeadlines(ctx context.Context, section domain.NewsSection, maxItems int, seen map[domain.HeadlineKey]struct{}) ([]domain.Headline, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, section.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build section request: %w", err)
	}
	req.Header.Set("User-Agent", s.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch section %q: %w", section.Label, err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch section %q: status %d", section.Label, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, sectionBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("parse section %q: %w", section.Label, err)
	}

	return s.collectHeadlines(doc, section, maxItems, seen), nil
}

func (s *sectionScraper) collectHeadlines(doc *goquery.Document, section domain.NewsSection, maxItems int, seen map[domain.HeadlineKey]struct{}) []domain.Headline {
	container := s.findContainer(doc)
	if container.Length() == 0 {
		return nil
	}
	candidates := s.candidateAnchors(container)

	var out []domain.Headline
	stopped := false

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if stopped {
			return
		}
		switch n.Type {
		case html.TextNode:
			if s.containsCutoff(n.Data) {
				stopped = true
				return
			}
		case html.ElementNode:
			if slices.Contains(s.cfg.CutoffTags, n.Data) && s.containsCutoff(nodeText(n)) {
				stopped = true
				return
			}
			if n.Data == "a" && (len(candidates) == 0 || candidates[n]) {
				if h, ok := s.headlineFromAnchor(n, section, seen); ok {
					out = append(out, h)
					if maxItems > 0 && len(out) >= maxItems {
						stopped = true
						return
					}
				}
			}
		}
		for c := n.FirstChild; c != nil && !stopped; c = c.NextSibling {
			walk(c)
		}
	}
	walk(container.Get(0))

	return out
}

// findContainer probes the configured selectors in priority order and
// falls back to the document root when none match.
func (s *sectionScraper) findContainer(doc *goquery.Document) *goquery.Selection {
	for _, sel := range s.cfg.ContainerSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return doc.Selection
}

// candidateAnchors unions every configured anchor selector. An empty
// result means no restriction: every anchor in the container counts.
func (s *sectionScraper) candidateAnchors(container *goquery.Selection) map[*html.Node]bool {
	candidates := make(map[*html.Node]bool)
	for _, sel := range s.cfg.CandidateSelectors {
		for _, n := range container.Find(sel).Nodes {
			candidates[n] = true
		}
	}
	return candidates
}

func (s *sectionScraper) containsCutoff(text string) bool {
	norm := strings.ToLower(strings.Join(strings.Fields(text), " "))
	if norm == "" {
		return false
	}
	for _, token := range s.cfg.CutoffTokens {
		if strings.Contains(norm, token) {
			return true
		}
	}
	return false
}

func (s *sectionScraper) headlineFromAnchor(anchor *html.Node, section domain.NewsSection, seen map[domain.HeadlineKey]struct{}) (domain.Headline, bool) {
	title := nodeText(anchor)
	href := strings.TrimSpace(attrVal(anchor, "href"))
	if title == "" || href == "" || strings.HasPrefix(href, "#") {
		return domain.Headline{}, false
	}
	if len(strings.Fields(title)) < s.cfg.MinTitleWords {
		return domain.Headline{}, false
	}

	h := domain.Headline{
		Title:   title,
		URL:     joinURL(section.URL, href),
		Section: section.Label,
	}
	if _, dup := seen[h.Key()]; dup {
		return domain.Headline{}, false
	}

	s.attachMetadata(anchor, &h)
	seen[h.Key()] = struct{}{}
	return h, true
}

// attachMetadata fills source and publication fields from the two markup
// shapes the site serves: a span.meta next to the anchor, or an
// article-card wrapper further up the tree.
func (s *sectionScraper) attachMetadata(anchor *html.Node, h *domain.Headline) {
	if parent := anchor.Parent; parent != nil {
		if meta := findByClass(parent, "span", "meta"); meta != nil {
			if src := findByClass(meta, "", "src"); src != nil {
				h.Source = nodeText(src)
			}
			if t := findByClass(meta, "", "time"); t != nil {
				h.PublishedTime = nodeText(t)
				if epoch := attrVal(t, "data-time"); epoch != "" {
					h.PublishedAt = timeutil.EpochToISO8601(epoch)
				}
			}
		}
	}
	if h.Source != "" && h.PublishedAt != "" {
		return
	}

	for up := anchor.Parent; up != nil; up = up.Parent {
		if up.Type != html.ElementNode || !hasClass(up, "article-card__content-wrapper") {
			continue
		}
		if h.Source == "" {
			if name := findByClass(up, "", "article-publisher__name"); name != nil {
				h.Source = nodeText(name)
			}
		}
		if ts := findByClass(up, "", "article-publisher__timestamp"); ts != nil {
			if h.PublishedTime == "" {
				h.PublishedTime = nodeText(ts)
			}
			if h.PublishedAt == "" {
				if epoch := attrVal(ts, "data-timestamp"); epoch != "" {
					h.PublishedAt = timeutil.EpochToISO8601(epoch)
				}
			}
		}
		break
	}
}

// nodeText returns the whitespace-normalized text content of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attrVal(n, "class")), class)
}

// findByClass finds the first descendant carrying the class, optionally
// restricted to a tag name.
func findByClass(root *html.Node, tag, class string) *html.Node {
	var found *html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && (tag == "" || n.Data == tag) && hasClass(n, class) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return found
}
