package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "airtable-mcp"

// Server wraps the mcp-go MCPServer.
type Server struct {
	mcp    *server.MCPServer
	logger *zap.Logger
}

// NewServer creates a new MCP server instance. A non-nil auditor is
// attached through mcp-go hooks.
func NewServer(name, version string, logger *zap.Logger, auditor *ToolCallAuditor) *Server {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	}
	if auditor != nil {
		opts = append(opts, server.WithHooks(auditor.Hooks()))
	}

	return &Server{
		mcp:    server.NewMCPServer(name, version, opts...),
		logger: logger,
	}
}

// MCP returns the underlying MCPServer for tool registration.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// NewStreamableHTTPServer creates an HTTP transport server wrapping this MCP server.
// The HTTP mux handles routing to /mcp, so no endpoint path is configured here.
func (s *Server) NewStreamableHTTPServer() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s.mcp,
		server.WithStateLess(true),
	)
}

// ServeStdio serves MCP over the given streams until ctx is cancelled or
// stdin is closed. Only JSON-RPC is written to stdout; logs must go elsewhere.
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger.Named("stdio")))
	s.logger.Info("Serving MCP over stdio")
	return stdio.Listen(ctx, stdin, stdout)
}

