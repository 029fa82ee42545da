package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"truthguard/internal/domain"
)

const scrapeUserAgent = "Mozilla/5.0"

// Result containers move around as the results page markup changes; each
// selector is tried in order and the first one that matches wins.
var containerSelectors = []string{".tF2Cxc", ".g", "div.yuRUbf"}

var snippetSelectors = []string{".VwiC3b", ".IsZvec"}

// scrape parses the public search results page for query. It fails soft:
// any error yields an empty slice.
func (c *Client) scrape(ctx context.Context, query string) []domain.SearchResult {
	target := fmt.Sprintf("%s?q=%s&num=%d", c.scrapeEndpoint, url.QueryEscape(query), c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return c.scrapeFailure(query, err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.scrapeFailure(query, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return c.scrapeFailure(query, err)
	}

	var containers *goquery.Selection
	for _, selector := range containerSelectors {
		if found := doc.Find(selector); found.Length() > 0 {
			containers = found
			break
		}
	}
	if containers == nil {
		return nil
	}

	var results []domain.SearchResult
	containers.EachWithBreak(func(i int, block *goquery.Selection) bool {
		if i >= c.limit {
			return false
		}

		title := strings.TrimSpace(block.Find("h3").First().Text())
		link, _ := block.Find("a").First().Attr("href")

		snippet := ""
		for _, selector := range snippetSelectors {
			if el := block.Find(selector).First(); el.Length() > 0 {
				snippet = strings.Join(strings.Fields(el.Text()), " ")
				break
			}
		}

		if title == "" && link == "" {
			return true
		}
		if title == "" {
			title = link
		}
		results = append(results, domain.SearchResult{Title: title, URL: link, Snippet: snippet})
		return true
	})
	return results
}

func (c *Client) scrapeFailure(query string, err error) []domain.SearchResult {
	c.logger.Warn("search scrape failed", zap.String("query", query), zap.Error(err))
	c.metrics.IncErrorsTotal("search_scrape_failed")
	return nil
}
