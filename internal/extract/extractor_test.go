package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"truthguard/internal/monitoring"
)

var testMetrics = monitoring.NewMetrics()

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(2*time.Second, testMetrics, zap.NewNop())
}

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtract_TitleAndParagraphs(t *testing.T) {
	srv := serve(t, `<html><head><title> Article Title </title></head>
		<body><p>First paragraph.</p><p>  Second   paragraph. </p></body></html>`)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	require.False(t, content.FromFallback)
	assert.Equal(t, "Article Title", content.Title)
	assert.Equal(t, "First paragraph. Second paragraph.", content.Body)
}

func TestExtract_CapsParagraphs(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><head><title>Long</title></head><body>")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&sb, "<p>para%d</p>", i)
	}
	sb.WriteString("</body></html>")
	srv := serve(t, sb.String())

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	require.False(t, content.FromFallback)
	assert.Contains(t, content.Body, "para15")
	assert.NotContains(t, content.Body, "para16")
}

func TestExtract_MetaDescriptionFallback(t *testing.T) {
	srv := serve(t, `<html><head><title>Bare</title>
		<meta name="description" content="A concise summary."></head><body></body></html>`)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	assert.Equal(t, "A concise summary.", content.Body)
}

func TestExtract_OGDescriptionFallback(t *testing.T) {
	srv := serve(t, `<html><head><title>Bare</title>
		<meta property="og:description" content="OG summary."></head><body></body></html>`)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	assert.Equal(t, "OG summary.", content.Body)
}

func TestExtract_TitleFallbackWhenNoText(t *testing.T) {
	srv := serve(t, `<html><head><title>Only Title</title></head><body></body></html>`)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	assert.Equal(t, "Only Title", content.Title)
	assert.Equal(t, "Only Title", content.Body)
}

func TestExtract_NoTitleUsesURL(t *testing.T) {
	srv := serve(t, `<html><body><p>text here</p></body></html>`)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	assert.Equal(t, srv.URL, content.Title)
	assert.Equal(t, "text here", content.Body)
}

func TestExtract_HTTPErrorFailsSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	content := newTestExtractor(t).Extract(context.Background(), srv.URL)

	require.True(t, content.FromFallback)
	assert.Equal(t, srv.URL, content.Title)
	assert.Equal(t, srv.URL, content.Body)
}

func TestExtract_NetworkErrorFailsSoft(t *testing.T) {
	content := newTestExtractor(t).Extract(context.Background(), "http://127.0.0.1:1")

	require.True(t, content.FromFallback)
	assert.Equal(t, "http://127.0.0.1:1", content.Title)
	assert.Equal(t, "http://127.0.0.1:1", content.Body)
}

func TestExtract_SendsBrowserLikeUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html><head><title>ua</title></head><body></body></html>")
	}))
	t.Cleanup(srv.Close)

	newTestExtractor(t).Extract(context.Background(), srv.URL)

	assert.Equal(t, "Mozilla/5.0 (compatible; TruthGuard/1.0)", gotUA)
}
