// Package tools provides the MCP tools of the Airtable server. Each
// Airtable tool encodes its arguments into one request and runs it through
// the gateway.
package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
	"github.com/ekaya-inc/airtable-mcp/pkg/apperrors"
	"github.com/ekaya-inc/airtable-mcp/pkg/audit"
	"github.com/ekaya-inc/airtable-mcp/pkg/logging"
)

// AirtableToolDeps contains dependencies for the Airtable API tools.
// Auditor may be nil.
type AirtableToolDeps struct {
	Gateway airtable.Executor
	Auditor *audit.SecurityAuditor
	Logger  *zap.Logger
}

// RegisterAirtableTools registers every Airtable API tool.
func RegisterAirtableTools(s *server.MCPServer, deps *AirtableToolDeps) {
	registerRecordTools(s, deps)
	registerBaseTools(s, deps)
	registerTableTools(s, deps)
	registerViewTools(s, deps)
	registerCommentTools(s, deps)
	registerWebhookTools(s, deps)
	registerCollaboratorTools(s, deps)
	registerEnterpriseTools(s, deps)
}

// requestBuilder reads tool arguments into an encoded request. Problems
// are recorded on args rather than returned.
type requestBuilder func(args *toolArgs) airtable.Request

// addAirtableTool registers tool with a handler that validates arguments,
// executes the built request and renders the outcome.
func addAirtableTool(s *server.MCPServer, deps *AirtableToolDeps, tool mcp.Tool, build requestBuilder) {
	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := newToolArgs(req, deps.Logger)
		request := build(args)
		if result := args.errorResult(); result != nil {
			deps.Auditor.LogParameterValidation(tool.Name, args.problems())
			return result, nil
		}
		return execute(ctx, deps, tool, request)
	})
}

// execute runs request through the gateway. Gateway failures become error
// results; only a failure to render a successful outcome is a Go error.
func execute(ctx context.Context, deps *AirtableToolDeps, tool mcp.Tool, request airtable.Request) (*mcp.CallToolResult, error) {
	start := time.Now()
	outcome, err := deps.Gateway.Execute(ctx, request)
	if isDestructive(tool) {
		auditDestructive(deps.Auditor, tool.Name, request, outcome, err, time.Since(start))
	}
	if err != nil {
		logToolFailure(deps.Logger, tool.Name, err)
		if errors.Is(err, apperrors.ErrAuthentication) {
			auditCredentialFailure(deps.Auditor, tool.Name, err)
		}
		return NewGatewayErrorResult(err), nil
	}

	payload, err := outcome.Payload()
	if err != nil {
		return nil, fmt.Errorf("failed to render %s result: %w", tool.Name, err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// isDestructive follows MCP hint semantics: the destructive hint only
// applies to tools that are not read-only. mcp-go defaults it to true.
func isDestructive(tool mcp.Tool) bool {
	a := tool.Annotations
	if a.ReadOnlyHint != nil && *a.ReadOnlyHint {
		return false
	}
	return a.DestructiveHint != nil && *a.DestructiveHint
}

func auditDestructive(auditor *audit.SecurityAuditor, toolName string, request airtable.Request, outcome *airtable.Outcome, err error, duration time.Duration) {
	details := audit.OperationDetails{
		Method:     request.Method,
		Path:       request.PathString(),
		Success:    err == nil,
		DurationMs: duration.Milliseconds(),
	}
	if outcome != nil {
		details.StatusCode = outcome.StatusCode
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		details.StatusCode = appErr.StatusCode
		details.ErrorKind = string(appErr.Kind)
		details.Error = logging.SanitizeString(appErr.Message)
	} else if err != nil {
		details.ErrorKind = string(apperrors.KindUnexpected)
		details.Error = logging.SanitizeError(err)
	}
	auditor.LogDestructiveOperation(toolName, details)
}

func auditCredentialFailure(auditor *audit.SecurityAuditor, toolName string, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return
	}
	auditor.LogCredentialFailure(toolName, audit.CredentialFailureDetails{
		Kind:    string(appErr.Kind),
		Message: logging.SanitizeString(appErr.Message),
		Missing: appErr.Missing,
	})
}

func logToolFailure(logger *zap.Logger, toolName string, err error) {
	fields := []zap.Field{
		zap.String("tool", toolName),
		zap.String("kind", string(apperrors.KindOf(err))),
		zap.String("error", logging.SanitizeError(err)),
	}
	if isInputError(err) {
		logger.Debug("Tool call rejected by Airtable", fields...)
		return
	}
	logger.Error("Tool call failed", fields...)
}
