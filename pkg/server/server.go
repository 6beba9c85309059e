// Package server runs the HTTP listener of the menu site.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/navmenu/pkg/metric"
)

const (
	// DefaultPort is the port pages are served on.
	DefaultPort = 9876

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes caps request headers at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)

// Server serves registered handlers until its context is canceled.
type Server interface {
	// Serve blocks until ctx is canceled and the server has drained, or the
	// listener fails. A graceful shutdown returns nil.
	Serve(ctx context.Context) error

	// IsRunning reports whether connections are being accepted.
	IsRunning() bool

	// Addr returns the bound address, "" before Serve has bound it.
	Addr() string
}

type timeouts struct {
	read, write, idle, shutdown time.Duration
}

type server struct {
	mux            *http.ServeMux
	port           int
	timeouts       timeouts
	maxHeaderBytes int

	mu      sync.RWMutex
	running bool
	addr    string
}

// Option configures a Server.
type Option func(*server)

// WithPort sets the port. 0 binds any free port, see Server.Addr.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.timeouts.read = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.timeouts.write = d }
}

// WithShutdownTimeout sets how long in-flight requests get to finish once
// the context is canceled.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.timeouts.shutdown = d }
}

// WithHandler mounts handler at pattern.
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) { s.mux.Handle(pattern, handler) }
}

// WithSimpleHealth mounts a /healthz endpoint answering "ok".
func WithSimpleHealth() Option {
	return WithHandler("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
}

// WithMetrics mounts the metrics gathered by reg at /metrics.
func WithMetrics(reg prometheus.Gatherer) Option {
	return WithHandler("/metrics", metric.GetHandlerForRegistry(reg))
}

// New creates a server. Without options it listens on DefaultPort with the
// Default* timeouts and no handlers.
func New(opts ...Option) Server {
	s := &server{
		mux:  http.NewServeMux(),
		port: DefaultPort,
		timeouts: timeouts{
			read:     DefaultReadTimeout,
			write:    DefaultWriteTimeout,
			idle:     DefaultIdleTimeout,
			shutdown: DefaultShutdownTimeout,
		},
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	slog.Debug("server configured",
		"port", s.port,
		"read_timeout", s.timeouts.read,
		"write_timeout", s.timeouts.write,
		"shutdown_timeout", s.timeouts.shutdown)

	return s
}

func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

func (s *server) setState(running bool, addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
	s.addr = addr
}

func (s *server) Serve(ctx context.Context) error {
	hs := &http.Server{
		Handler:        s.mux,
		ReadTimeout:    s.timeouts.read,
		WriteTimeout:   s.timeouts.write,
		IdleTimeout:    s.timeouts.idle,
		MaxHeaderBytes: s.maxHeaderBytes,
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.port, err)
	}

	addr := ln.Addr().String()
	slog.Info("serving", "addr", addr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setState(true, addr)
		defer s.setState(false, "")

		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		drainCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.shutdown)
		defer cancel()

		start := time.Now()
		if err := hs.Shutdown(drainCtx); err != nil {
			slog.Error("shutdown did not complete", "error", err)
		}
		slog.Info("server stopped", "took", time.Since(start))

		return nil
	})

	return g.Wait()
}
