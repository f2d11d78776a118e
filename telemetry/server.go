package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/lixenwraith/platform-fighter/core"
	"github.com/lixenwraith/platform-fighter/parameter"
)

// Server serves the hub on TelemetryPath
type Server struct {
	Hub *Hub

	http     *http.Server
	listener net.Listener
	cancel   context.CancelFunc
	logger   *slog.Logger
}

func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		Hub:    NewHub(logger),
		logger: logger,
	}
}

// Start listens on addr and serves in the background until Shutdown
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln

	hubCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	core.Go(func() { s.Hub.Run(hubCtx) })

	mux := http.NewServeMux()
	mux.Handle(parameter.TelemetryPath, s.Hub)
	s.http = &http.Server{Handler: mux}

	s.logger.Info("telemetry listening", "addr", ln.Addr().String(), "path", parameter.TelemetryPath)
	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("telemetry server stopped", "error", err)
		}
	})
	return nil
}

// Addr returns the bound address, useful with port 0
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting connections and closes every client
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, parameter.TelemetryShutdownTimeout)
	defer cancel()
	s.cancel()
	return s.http.Shutdown(ctx)
}
