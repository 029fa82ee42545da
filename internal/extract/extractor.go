package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"truthguard/internal/monitoring"
)

const (
	userAgent     = "Mozilla/5.0 (compatible; TruthGuard/1.0)"
	maxParagraphs = 15
)

// Content is the readable text derived from a fetched page.
type Content struct {
	Title string
	Body  string
	// FromFallback is set when fetching or parsing failed and the URL
	// itself stands in for both fields.
	FromFallback bool
}

// Extractor fetches a URL and derives a title/body pair from its HTML.
type Extractor struct {
	client  *http.Client
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

func NewExtractor(timeout time.Duration, m *monitoring.Metrics, l *zap.Logger) *Extractor {
	return &Extractor{
		client:  &http.Client{Timeout: timeout},
		metrics: m,
		logger:  l,
	}
}

// Extract fetches url and derives readable content from it. It never
// returns an error: any fetch or parse failure degrades to the URL
// standing in for both title and body.
func (e *Extractor) Extract(ctx context.Context, pageURL string) Content {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return e.fallback(pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return e.fallback(pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return e.fallback(pageURL, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return e.fallback(pageURL, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = pageURL
	}

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxParagraphs {
			return false
		}
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			paragraphs = append(paragraphs, text)
		}
		return true
	})

	body := strings.Join(paragraphs, " ")
	if body == "" {
		body = metaDescription(doc)
	}
	if body == "" {
		body = title
	}

	return Content{Title: title, Body: body}
}

// metaDescription returns the page's meta description, preferring the
// standard tag over the Open Graph one.
func metaDescription(doc *goquery.Document) string {
	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if trimmed := strings.TrimSpace(content); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func (e *Extractor) fallback(pageURL string, err error) Content {
	e.logger.Warn("content extraction failed, falling back to URL",
		zap.String("url", pageURL), zap.Error(err))
	e.metrics.IncErrorsTotal("extract_failed")
	return Content{Title: pageURL, Body: pageURL, FromFallback: true}
}
