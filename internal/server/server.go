// Package server provides the HTTP REST API around the ranking engine:
// stateless analysis, resume uploads into an in-memory store, job analyses
// against the stored uploads, and result retrieval with CSV/JSON download.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/server/ratelimit"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
)

// Server hosts the ranking engine behind a REST API.
type Server struct {
	httpServer  *http.Server
	pipeline    *pipeline.Pipeline
	tax         *taxonomy.Taxonomy
	vocab       *taxonomy.Vocabulary
	store       *Store
	rateLimiter *ratelimit.Limiter
	cfg         *config.Config
	log         *zap.Logger
}

// New builds a server from validated configuration. Reference taxonomies
// compile once here; a load failure is fatal and no requests are served.
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tax, vocab, err := taxonomy.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference taxonomies: %w", err)
	}
	engine, err := scoring.NewEngine(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}

	s := &Server{
		pipeline: pipeline.New(tax, vocab, engine, log, pipeline.Options{
			Workers:    cfg.Workers,
			TopSkillsK: cfg.TopSkills,
		}),
		tax:         tax,
		vocab:       vocab,
		store:       NewStore(cfg.Server.MaxStoredResumes, cfg.Server.ResultTTL),
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromRequestsPerMinute(cfg.Server.RateLimitPerMin)),
		cfg:         cfg,
		log:         log,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analyses with browser-backed fetches take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires every endpoint onto a method-aware mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)

	mux.HandleFunc("POST /api/upload-resume", s.handleUploadResume)
	mux.HandleFunc("GET /api/resumes", s.handleListResumes)
	mux.HandleFunc("DELETE /api/resumes", s.handleClearResumes)

	mux.HandleFunc("POST /api/analyze-job", s.handleAnalyzeJob)
	mux.HandleFunc("POST /api/rank-single-resume", s.handleRankSingle)
	mux.HandleFunc("GET /api/results/{id}", s.handleGetResult)
	mux.HandleFunc("GET /api/results/{id}/download", s.handleDownloadResult)

	return mux
}

// Start listens until SIGINT or SIGTERM, then drains connections within
// the configured shutdown timeout.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.store.Stop()
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers and short-circuits preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client, per-endpoint token buckets.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs one structured line per completed request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// respondError maps a typed error to its status and writes it out.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// extractClientID identifies the client by IP address.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 with retry information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Duration("retry_after", info.RetryAfter))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
