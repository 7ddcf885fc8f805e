package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/nexusai/nexus-mcp/internal/config"
	"github.com/nexusai/nexus-mcp/internal/mcp"
	"github.com/nexusai/nexus-mcp/pkg/logging"
	"github.com/nexusai/nexus-mcp/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.DefaultResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting",
		"transport", cfg.Transport,
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
