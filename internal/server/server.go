// Package server provides the HTTP dashboard for the job tracker.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobtracker/internal/resumeparse"
	"github.com/jonathan/jobtracker/internal/server/middleware"
	"github.com/jonathan/jobtracker/internal/server/ratelimit"
	"github.com/jonathan/jobtracker/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	jobs        []types.Job
	sessions    *resumeparse.Sessions
	rateLimiter *ratelimit.Limiter
	maxUpload   int64
}

// Config holds server configuration
type Config struct {
	Port           int
	Jobs           []types.Job // Catalog served by the dashboard; never modified
	ParseDelay     time.Duration
	MaxUploadBytes int64
	RateLimit      *ratelimit.Config // nil reads RATE_LIMIT_* from the environment
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("server needs a non-empty job catalog")
	}

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = resumeparse.DefaultMaxUploadBytes
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		jobs:        cfg.Jobs,
		sessions:    resumeparse.NewSessions(resumeparse.NewParser(cfg.ParseDelay), maxUpload),
		rateLimiter: ratelimit.NewLimiter(rlConfig),
		maxUpload:   maxUpload,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
		// No WriteTimeout: the events stream stays open until the parse finishes.
	}

	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Dashboard
	mux.HandleFunc("GET /{$}", s.handleDashboard)

	// Job browser
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /jobs/{id}/cv", s.handleDownloadCV)

	// Login form
	mux.HandleFunc("POST /login", s.handleLogin)

	// Resume panel
	withSession := middleware.SessionMiddleware(s.sessions)
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.Handle("GET /resumes/{id}", withSession(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /resumes/{id}", withSession(http.HandlerFunc(s.handleUpdateResume)))
	mux.Handle("DELETE /resumes/{id}", withSession(http.HandlerFunc(s.handleDeleteResume)))
	mux.Handle("POST /resumes/{id}/file", withSession(http.HandlerFunc(s.handleReplaceResumeFile)))
	mux.Handle("GET /resumes/{id}/events", withSession(http.HandlerFunc(s.handleResumeEvents)))
	mux.Handle("POST /resumes/{id}/save", withSession(http.HandlerFunc(s.handleSaveResume)))
	mux.Handle("GET /resumes/{id}/download", withSession(http.HandlerFunc(s.handleDownloadResume)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start listens on the configured port and serves until SIGINT/SIGTERM or ctx ends.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		// Open event streams wait on their tasks; cancel them first.
		s.sessions.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.rateLimiter.Stop()
	log.Println("Server stopped")
	return err
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"jobs":     len(s.jobs),
		"sessions": s.sessions.Len(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// messageResponse writes the {"message": ...} notices the dashboard shows as toasts.
func (s *Server) messageResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}
