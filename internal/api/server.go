package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"truthguard/internal/config"
	"truthguard/internal/domain"
	"truthguard/internal/extract"
	"truthguard/internal/monitoring"
	"truthguard/internal/storage"
)

// ContentExtractor derives readable content from a URL.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) extract.Content
}

// Analyzer scores a piece of text.
type Analyzer interface {
	Analyze(text string) domain.Analysis
}

// Searcher retrieves corroborating web search results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) []domain.SearchResult
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	store      *storage.Store
	extractor  ContentExtractor
	analyzer   Analyzer
	searcher   Searcher
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, st *storage.Store, ex ContentExtractor, an Analyzer, se Searcher, m *monitoring.Metrics, l *zap.Logger) *Server {
	s := &Server{
		config:    cfg,
		store:     st,
		extractor: ex,
		analyzer:  an,
		searcher:  se,
		metrics:   m,
		logger:    l,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
