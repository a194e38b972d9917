package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/iedon/happy-vibe-go/config"
	"github.com/iedon/happy-vibe-go/renderer"
)

// Server exposes the rendered page over HTTP.
type Server struct {
	cfg          *config.Config
	renderer     *renderer.Renderer
	logger       *slog.Logger
	mux          *http.ServeMux
	serverHeader string
}

// New constructs a server instance.
func New(cfg *config.Config, rend *renderer.Renderer, logger *slog.Logger, serverHeader string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	srv := &Server{cfg: cfg, renderer: rend, logger: logger, mux: http.NewServeMux(), serverHeader: strings.TrimSpace(serverHeader)}
	srv.routes()
	return srv
}

// Handler returns the routing table wrapped in the server's middleware.
func (s *Server) Handler() http.Handler {
	return chain(s.mux, s.logRequests, s.withServerHeader)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	listener, err := listen(s.cfg.Listen)
	if err != nil {
		return err
	}
	s.logger.Info("listening", "address", listener.Addr().String(), "tls", s.cfg.EnableTLS)

	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveDone := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-serveDone:
			return
		}
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}()

	var serveErr error
	if s.cfg.EnableTLS {
		serveErr = server.ServeTLS(listener, s.cfg.TLSCert, s.cfg.TLSKey)
	} else {
		serveErr = server.Serve(listener)
	}
	close(serveDone)
	<-shutdownDone

	if errors.Is(serveErr, http.ErrServerClosed) {
		return nil
	}
	_ = listener.Close()
	return serveErr
}

func (s *Server) routes() {
	s.mux.HandleFunc("/{$}", s.handlePage)
	s.mux.HandleFunc("/", s.handleNotFound)
}

func listen(address string) (net.Listener, error) {
	if path, ok := strings.CutPrefix(address, "unix:"); ok {
		if err := removeStaleSocket(path); err != nil {
			return nil, err
		}
		return net.Listen("unix", path)
	}
	return net.Listen("tcp", address)
}

// removeStaleSocket clears a socket left behind by a previous run. Anything
// other than a socket at path is left alone and reported.
func removeStaleSocket(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat socket %s: %w", path, err)
	}
	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("listen path %s exists and is not a socket", path)
	}
	return os.Remove(path)
}
