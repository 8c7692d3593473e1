// Package server exposes the window queries as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/window-getter/internal/logging"
	"github.com/mj1618/window-getter/internal/proctable"
	"github.com/mj1618/window-getter/internal/version"
	"github.com/mj1618/window-getter/window"
	"go.uber.org/zap"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string // "stdio" or "http"
	Port      int
}

// Server wraps the MCP server with the window source it queries.
type Server struct {
	src *window.Source
	log *logging.Logger
	mcp *mcpserver.MCPServer

	// srcMu serializes native queries; the handle backend's enumeration is
	// not reentrant.
	srcMu sync.Mutex

	running func(pid uint32) bool
}

// New creates a server with every tool registered.
func New(src *window.Source, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	s := &Server{
		src:     src,
		log:     log,
		running: proctable.Checker,
	}
	s.mcp = mcpserver.NewMCPServer(
		"window-getter",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// ValidateTransport rejects transports Serve cannot start.
func ValidateTransport(transport string) error {
	switch transport {
	case "stdio", "", "http", "streamable-http":
		return nil
	}
	return fmt.Errorf("unsupported transport: %s (use stdio or http)", transport)
}

// Serve starts the MCP server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio", "":
		s.log.Info("serving MCP", zap.String("transport", "stdio"))
		return mcpserver.ServeStdio(s.mcp)
	case "http", "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.log.Info("serving MCP", zap.String("transport", "http"), zap.String("addr", addr))
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return ValidateTransport(cfg.Transport)
	}
}
