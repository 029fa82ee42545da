package domain

import "time"

// Label is the verdict assigned to analyzed text.
type Label string

const (
	LabelReal       Label = "real"
	LabelSuspicious Label = "suspicious"
	LabelFake       Label = "fake"
	LabelUncertain  Label = "uncertain"
)

// VerifyRequest is the payload for the verify API. One of URL or Text is
// expected; URL wins when both are present.
type VerifyRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Analysis holds the lexical verdict for a piece of text.
type Analysis struct {
	Tokens     []string `json:"tokens"`
	Sentiment  float64  `json:"sentiment"`
	Indicators int      `json:"indicators"`
	Label      Label    `json:"label"`
	Preview    string   `json:"preview"`
}

// SearchResult is one corroborating web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// VerifyResponse is the API response for a verification request.
type VerifyResponse struct {
	Analysis      Analysis       `json:"analysis"`
	SearchResults []SearchResult `json:"search_results"`
}

// Report is a persisted verdict row. Rows are insert-only, never updated
// or deleted.
type Report struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Label     Label     `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// LabelCounts aggregates stored reports over the three terminal labels.
type LabelCounts struct {
	TotalReports    int64 `json:"total_reports"`
	RealCount       int64 `json:"real_count"`
	SuspiciousCount int64 `json:"suspicious_count"`
	FakeCount       int64 `json:"fake_count"`
}

// LabelGroup is one row of the per-label breakdown.
type LabelGroup struct {
	Label Label `json:"label"`
	Count int64 `json:"count"`
}
