package mcp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/logging"
	"github.com/ekaya-inc/airtable-mcp/pkg/metrics"
	"github.com/ekaya-inc/airtable-mcp/pkg/mcp/tools"
)

// ResultOK labels tool calls whose result is not an error.
const ResultOK = "ok"

// ToolCallAuditor logs every tool call and records it in metrics.
type ToolCallAuditor struct {
	logger  *zap.Logger
	metrics *metrics.Collector

	// startTimes tracks when tool calls begin, keyed by the request mcp-go
	// passes to every hook of one call. JSON-RPC ids are not unique across
	// stateless HTTP clients.
	startTimes sync.Map
}

// NewToolCallAuditor creates an auditor. collector may be nil.
func NewToolCallAuditor(logger *zap.Logger, collector *metrics.Collector) *ToolCallAuditor {
	return &ToolCallAuditor{
		logger:  logger.Named("mcp-audit"),
		metrics: collector,
	}
}

// Hooks returns mcp-go Hooks configured to capture tool call events.
func (a *ToolCallAuditor) Hooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(a.beforeCallTool)
	hooks.AddAfterCallTool(a.afterCallTool)
	hooks.AddOnError(a.onError)
	return hooks
}

func (a *ToolCallAuditor) beforeCallTool(_ context.Context, _ any, req *mcplib.CallToolRequest) {
	a.startTimes.Store(req, time.Now())
}

func (a *ToolCallAuditor) afterCallTool(_ context.Context, _ any, req *mcplib.CallToolRequest, result *mcplib.CallToolResult) {
	duration := a.loadAndDeleteStart(req)
	toolName := req.Params.Name
	code := resultCode(result)

	a.metrics.ObserveToolCall(toolName, code, duration)

	fields := []zap.Field{
		zap.String("tool", toolName),
		zap.String("result", code),
		zap.Duration("duration", duration),
		zap.Any("params", sanitizeParams(req.Params.Arguments)),
	}
	if code == ResultOK {
		a.logger.Info("MCP tool call", fields...)
		return
	}
	a.logger.Warn("MCP tool call returned error", fields...)
}

func (a *ToolCallAuditor) onError(_ context.Context, _ any, method mcplib.MCPMethod, message any, err error) {
	if method != mcplib.MethodToolsCall {
		return
	}

	req, ok := message.(*mcplib.CallToolRequest)
	if !ok {
		return
	}

	duration := a.loadAndDeleteStart(req)
	a.metrics.ObserveToolCall(req.Params.Name, "protocol_error", duration)
	a.logger.Error("MCP tool call failed",
		zap.String("tool", req.Params.Name),
		zap.Duration("duration", duration),
		zap.String("error", logging.SanitizeError(err)))
}

func (a *ToolCallAuditor) loadAndDeleteStart(req *mcplib.CallToolRequest) time.Duration {
	if v, ok := a.startTimes.LoadAndDelete(req); ok {
		return time.Since(v.(time.Time))
	}
	return 0
}

// resultCode returns ResultOK, or the code of a structured error result.
func resultCode(result *mcplib.CallToolResult) string {
	if result == nil || !result.IsError {
		return ResultOK
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			var resp tools.ErrorResponse
			if err := json.Unmarshal([]byte(tc.Text), &resp); err == nil && resp.Code != "" {
				return resp.Code
			}
			break
		}
	}
	return "error"
}

// maxParamLength bounds logged string arguments.
const maxParamLength = 1024

// sanitizeParams prepares tool arguments for logging: sensitive values are
// hashed, long strings truncated and nested objects and arrays walked.
func sanitizeParams(args any) map[string]any {
	params, ok := args.(map[string]any)
	if !ok || len(params) == 0 {
		return nil
	}
	return logging.SanitizeParams(params, maxParamLength, func(v any) any { return hashSensitiveValue(v) })
}

// hashSensitiveValue returns a SHA-256 hash prefix for sensitive values,
// allowing correlation across log entries without storing the actual value.
func hashSensitiveValue(value any) string {
	var str string
	switch v := value.(type) {
	case string:
		str = v
	default:
		str = fmt.Sprintf("%v", v)
	}
	hash := sha256.Sum256([]byte(str))
	return "sha256:" + hex.EncodeToString(hash[:8])
}
