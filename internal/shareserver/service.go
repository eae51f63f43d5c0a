// Package shareserver serves shared CSV references over HTTP for as long as
// the process runs.
package shareserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/theirongolddev/presupuesto/internal/sink"
)

// Config controls the server.
type Config struct {
	Addr string
}

// ShareInfo is one entry of /v1/shares.
type ShareInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt time.Time `json:"started_at"`
	Addr      string    `json:"addr"`
	Shares    int       `json:"shares"`
	Downloads int64     `json:"downloads"`
}

// Service exposes a registry's blobs at /blob/{id}.
type Service struct {
	cfg      Config
	registry *sink.Registry
	logger   *slog.Logger

	mu        sync.RWMutex
	startedAt time.Time
	addr      string
	downloads int64
	ready     chan struct{}
}

// New returns a service over registry.
func New(cfg Config, registry *sink.Registry, logger *slog.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8799"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		registry:  registry,
		logger:    logger,
		startedAt: time.Now(),
		ready:     make(chan struct{}),
	}
}

// Handler returns the HTTP routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/shares", s.handleShares)
	mux.HandleFunc("GET /blob/{id}", s.handleBlob)
	return mux
}

// Ready is closed once the listener is bound.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// BaseURL is the http:// prefix for references. It is empty until Ready.
func (s *Service) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.addr == "" {
		return ""
	}
	return "http://" + s.addr
}

// Run listens and serves until ctx is canceled. While it runs the registry
// hands out http references; they revert to blob: references on return.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("share server listen: %w", err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	s.registry.SetBaseURL(s.BaseURL())
	defer s.registry.SetBaseURL("")
	close(s.ready)

	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("share server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("share server: %w", err)
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		StartedAt: s.startedAt,
		Addr:      s.addr,
		Shares:    s.registry.Len(),
		Downloads: s.downloads,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleShares(w http.ResponseWriter, _ *http.Request) {
	shares := s.registry.List()
	out := make([]ShareInfo, len(shares))
	for i, sh := range shares {
		out[i] = ShareInfo{ID: sh.ID, Name: sh.Name, Bytes: len(sh.Blob.Data), CreatedAt: sh.CreatedAt}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Service) handleBlob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	shared, ok := s.registry.Resolve(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.downloads++
	s.mu.Unlock()
	s.logger.Debug("serving share", "id", id, "file", shared.Name)

	w.Header().Set("Content-Type", shared.Blob.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": shared.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(shared.Blob.Data)))
	_, _ = w.Write(shared.Blob.Data)
}
