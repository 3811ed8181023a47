package tools

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ekaya-inc/airtable-mcp/pkg/apperrors"
)

// ErrorResponse represents a structured error in tool results.
// This is used to return actionable error information to the agent
// as a tool result, ensuring error details are visible rather than
// being swallowed by the MCP client.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewErrorResult creates a tool result containing a structured error.
// Use this for recoverable/actionable errors that the agent should see and
// can potentially fix (e.g., invalid parameters, a rejected Airtable call).
//
// Example:
//
//	if baseID == "" {
//	    return NewErrorResult("invalid_parameters", "parameter 'base_id' cannot be empty"), nil
//	}
func NewErrorResult(code, message string) *mcp.CallToolResult {
	return NewErrorResultWithDetails(code, message, nil)
}

// NewErrorResultWithDetails creates an error result with additional context.
func NewErrorResultWithDetails(code, message string, details any) *mcp.CallToolResult {
	resp := ErrorResponse{
		Error:   true,
		Code:    code,
		Message: message,
		Details: details,
	}
	jsonBytes, _ := json.Marshal(resp)
	result := mcp.NewToolResultText(string(jsonBytes))
	result.IsError = true
	return result
}

// NewGatewayErrorResult converts a gateway failure into an error result.
// The code is the failure kind; API status failures carry the HTTP status
// and configuration failures the missing names in details.
func NewGatewayErrorResult(err error) *mcp.CallToolResult {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return NewErrorResult(string(apperrors.KindUnexpected), "unexpected error: "+err.Error())
	}

	switch appErr.Kind {
	case apperrors.KindAPIStatus:
		return NewErrorResultWithDetails(string(appErr.Kind), appErr.Message, map[string]any{
			"status_code": appErr.StatusCode,
		})
	case apperrors.KindConfiguration:
		return NewErrorResultWithDetails(string(appErr.Kind), appErr.Message, map[string]any{
			"missing": appErr.Missing,
		})
	}
	return NewErrorResult(string(appErr.Kind), appErr.Message)
}

// isInputError reports whether a failure was most likely caused by the
// tool arguments rather than by this server or its dependencies. Input
// errors are logged at Debug level.
func isInputError(err error) bool {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindAPIStatus {
		return false
	}
	return appErr.StatusCode >= 400 && appErr.StatusCode < 500 &&
		appErr.StatusCode != http.StatusUnauthorized && appErr.StatusCode != http.StatusTooManyRequests
}
