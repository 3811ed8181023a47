package handlers

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/mcp"
	"github.com/ekaya-inc/airtable-mcp/pkg/middleware"
)

// MCPPath is the endpoint serving MCP over streamable HTTP.
const MCPPath = "/mcp"

// MCPHandler handles MCP protocol requests over HTTP.
type MCPHandler struct {
	httpServer *server.StreamableHTTPServer
	logger     *zap.Logger
}

// NewMCPHandler creates a new MCP handler from an MCP server.
func NewMCPHandler(mcpServer *mcp.Server, logger *zap.Logger) *MCPHandler {
	return &MCPHandler{
		httpServer: mcpServer.NewStreamableHTTPServer(),
		logger:     logger,
	}
}

// RegisterRoutes registers the MCP endpoint.
// The endpoint is unauthenticated; Airtable access is bound to the single
// Nango connection configured for the process.
func (h *MCPHandler) RegisterRoutes(mux *http.ServeMux) {
	// JSON-RPC logging runs inside the method check so rejected requests are not parsed.
	loggedHandler := middleware.MCPRequestLogger(h.logger)(h.httpServer)
	mux.Handle(MCPPath, h.requirePOST(loggedHandler))
}

// requirePOST returns 405 Method Not Allowed for non-POST requests.
// The server is stateless, so there is no GET event stream or DELETE session.
func (h *MCPHandler) requirePOST(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
