package mirror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/version"
)

// Config holds the mirror server configuration
type Config struct {
	Host      string
	Port      int  // 0 picks a free port
	Advertise bool // Announce the server over mDNS
	Instance  string
}

// Server runs the hub's HTTP endpoints and, optionally, an mDNS
// announcement.
type Server struct {
	config   Config
	hub      *Hub
	http     *http.Server
	listener net.Listener
	zc       *zeroconf.Server
	errCh    chan error
}

// NewServer creates a server for hub.
func NewServer(hub *Hub, config Config) *Server {
	if config.Instance == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "camset"
		}
		config.Instance = "camset on " + host
	}
	return &Server{
		config: config,
		hub:    hub,
		errCh:  make(chan error, 1),
	}
}

// Start begins listening and returns once the listener is bound.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	s.http = &http.Server{
		Handler:           s.hub.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Mirror server stopped", zap.Error(err))
			s.errCh <- err
		}
		close(s.errCh)
	}()

	logging.Info("Mirror listening", zap.String("addr", s.Addr()))

	if s.config.Advertise {
		zc, err := zeroconf.Register(s.config.Instance, ServiceType, ServiceDomain, s.Port(),
			[]string{"path=/ws", "version=" + version.Version}, nil)
		if err != nil {
			// The mirror still works by address without the announcement.
			logging.Warn("Failed to advertise mirror over mDNS", zap.Error(err))
		} else {
			s.zc = zc
		}
	}
	return nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if tcp, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Errors reports a serve failure. It is closed when serving stops.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Shutdown withdraws the announcement, disconnects clients and stops the
// HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.zc != nil {
		s.zc.Shutdown()
		s.zc = nil
	}
	s.hub.Close()
	if s.http == nil {
		return nil
	}
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down mirror: %w", err)
	}
	return nil
}
