package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"truthguard/internal/domain"
	"truthguard/internal/monitoring"
)

const (
	defaultAPIEndpoint    = "https://serpapi.com/search.json"
	defaultScrapeEndpoint = "https://www.google.com/search"
)

// Client retrieves corroborating web search results for a query. The
// SerpApi endpoint is tried first; when it yields nothing (missing key,
// error, or genuinely zero hits) the public results page is scraped.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	limit          int
	apiEndpoint    string
	scrapeEndpoint string
	metrics        *monitoring.Metrics
	logger         *zap.Logger
}

func NewClient(apiKey string, limit int, timeout time.Duration, m *monitoring.Metrics, l *zap.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		apiKey:         apiKey,
		limit:          limit,
		apiEndpoint:    defaultAPIEndpoint,
		scrapeEndpoint: defaultScrapeEndpoint,
		metrics:        m,
		logger:         l,
	}
}

// Search returns up to the configured number of results for query. Both
// retrieval paths fail soft: any network or parsing error yields an empty
// slice, never an error. No retries.
func (c *Client) Search(ctx context.Context, query string) []domain.SearchResult {
	results := c.searchAPI(ctx, query)
	if len(results) == 0 {
		results = c.scrape(ctx, query)
	}
	return results
}

// serpResponse covers the single field consumed from the SerpApi payload.
type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

func (c *Client) searchAPI(ctx context.Context, query string) []domain.SearchResult {
	if c.apiKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return c.apiFailure(query, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.apiFailure(query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiFailure(query, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return c.apiFailure(query, err)
	}

	var results []domain.SearchResult
	for _, item := range decoded.OrganicResults {
		if len(results) >= c.limit {
			break
		}
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return results
}

func (c *Client) apiFailure(query string, err error) []domain.SearchResult {
	c.logger.Warn("search API call failed", zap.String("query", query), zap.Error(err))
	c.metrics.IncErrorsTotal("search_api_failed")
	return nil
}
