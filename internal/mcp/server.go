package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nexusai/nexus-mcp/internal/config"
	"github.com/nexusai/nexus-mcp/internal/mcp/tools"
	"github.com/nexusai/nexus-mcp/pkg/logging"
)

// Server wraps an MCP SDK server with an HTTP or stdio transport
type Server struct {
	logger *logging.Logger
	config config.Config

	mcpServer *sdkmcp.Server
	srv       *http.Server
	started   atomic.Bool

	mu        sync.Mutex
	stopStdio context.CancelFunc
}

// NewServer constructs the MCP server with all marketplace tools registered
func NewServer(log *logging.Logger, cfg config.Config, res Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "nexusai-marketplace",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	tools.Register(mcpServer,
		tools.WithSearchMarket(res.MarketService, log),
		tools.WithItemDetails(res.MarketService, log),
		tools.WithVendorRating(res.MarketService, log),
		tools.WithAnalyzeMatch(log),
	)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger:    log,
		config:    cfg,
		mcpServer: mcpServer,
		srv:       httpSrv,
	}
}

// Run serves the configured transport and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.config.Transport == config.TransportStdio {
		ctx, cancel := context.WithCancel(context.Background())
		s.mu.Lock()
		s.stopStdio = cancel
		s.mu.Unlock()

		s.logger.Info("MCP server serving on stdio")

		if err := s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")

	if s.config.Transport == config.TransportStdio {
		s.mu.Lock()
		stop := s.stopStdio
		s.mu.Unlock()
		if stop != nil {
			stop()
		}
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP server shutdown complete")
	return nil
}
