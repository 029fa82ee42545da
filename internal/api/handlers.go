package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"truthguard/internal/analyze"
	"truthguard/internal/domain"
)

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "No input provided")
		return
	}

	raw := req.URL
	if raw == "" {
		raw = req.Text
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.respondWithError(w, http.StatusBadRequest, "No input provided")
		return
	}

	ctx := r.Context()
	query, analysisText := s.deriveInput(ctx, raw)

	analysis := s.analyzer.Analyze(analysisText)

	results := []domain.SearchResult{}
	if query != "" {
		if found := s.searcher.Search(ctx, query); found != nil {
			results = found
		}
	}

	analysis.Label = analyze.AdjustForCorroboration(analysis.Label, len(results))

	// Persistence failure is logged and swallowed; the response still
	// carries the analysis.
	if err := s.store.Save(ctx, analysisText, analysis.Label); err != nil {
		s.logger.Warn("failed to save report", zap.Error(err))
		s.metrics.IncErrorsTotal("db_save_failed")
	}
	s.metrics.IncVerificationsTotal(string(analysis.Label))

	s.respondWithJSON(w, http.StatusOK, domain.VerifyResponse{
		Analysis:      analysis,
		SearchResults: results,
	})
}

// deriveInput maps the raw submission to a search query and the text to
// analyze. URLs are fetched and reduced to (title, body) with host and
// raw-URL fallbacks; free text stands for both.
func (s *Server) deriveInput(ctx context.Context, raw string) (query, analysisText string) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return raw, raw
	}

	content := s.extractor.Extract(ctx, raw)

	host := ""
	if u, err := url.Parse(raw); err == nil {
		host = u.Host
	}

	query = firstNonEmpty(content.Title, host, raw)
	analysisText = firstNonEmpty(content.Body, content.Title, raw)
	return query, analysisText
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.ListRecent(r.Context(), 0)
	if err != nil {
		s.logger.Error("failed to fetch reports", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "failed to fetch reports")
		return
	}
	s.respondWithJSON(w, http.StatusOK, reports)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountByLabel(r.Context())
	if err != nil {
		s.logger.Error("failed to fetch stats", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	s.respondWithJSON(w, http.StatusOK, counts)
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	groups, err := s.store.GroupCounts(r.Context())
	if err != nil {
		s.logger.Error("failed to fetch label groups", zap.Error(err))
		// Contract quirk kept from the original: an empty array body with
		// a 500 status, not an error object.
		s.respondWithJSON(w, http.StatusInternalServerError, []domain.LabelGroup{})
		return
	}
	s.respondWithJSON(w, http.StatusOK, groups)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// --- Helper Functions ---

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
