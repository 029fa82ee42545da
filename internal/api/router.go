package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleIndex)
	r.Post("/verify", s.handleVerify)
	r.Get("/reports", s.handleReports)
	r.Get("/stats", s.handleStats)
	r.Get("/top", s.handleTop)
	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// recoverer converts panics into the verify error contract: a 500 with a
// generic message plus the failure text.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic while serving request",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))
				s.respondWithJSON(w, http.StatusInternalServerError, map[string]string{
					"error":  "Internal server error",
					"detail": fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
