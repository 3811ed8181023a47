// Package audit provides security audit logging for SIEM consumption.
// Destructive Airtable operations, credential failures and rejected tool
// arguments are logged as structured events on a dedicated logger.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SecurityEventType categorizes security-relevant events for filtering and alerting.
type SecurityEventType string

const (
	// EventDestructiveOperation is logged for every call of a tool that deletes
	// data or revokes access, whether or not Airtable accepted it.
	EventDestructiveOperation SecurityEventType = "destructive_operation"
	// EventCredentialFailure is logged when no Airtable token could be obtained.
	EventCredentialFailure SecurityEventType = "credential_failure"
	// EventParameterValidation is logged when tool arguments are rejected locally.
	EventParameterValidation SecurityEventType = "parameter_validation_failure"
)

// Severity levels carried on every event.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// SecurityEvent is the JSON document emitted in the event_json field.
type SecurityEvent struct {
	EventID   uuid.UUID         `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	EventType SecurityEventType `json:"event_type"`
	Tool      string            `json:"tool"`
	Details   any               `json:"details"`
	Severity  string            `json:"severity"`
}

// OperationDetails describes one destructive Airtable call.
type OperationDetails struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// CredentialFailureDetails describes why no token was available.
type CredentialFailureDetails struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

// SecurityAuditor logs security events. A nil *SecurityAuditor logs nothing.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates a new security auditor on the "security_audit"
// logger namespace.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogDestructiveOperation records a destructive tool call. Successful calls
// are logged at INFO, rejected or failed ones at WARN.
func (a *SecurityAuditor) LogDestructiveOperation(tool string, details OperationDetails) {
	if a == nil {
		return
	}

	severity := SeverityInfo
	if !details.Success {
		severity = SeverityWarning
	}
	event := newEvent(EventDestructiveOperation, tool, details, severity)

	fields := []zap.Field{
		zap.String("event_json", event.json()),
		zap.String("event_id", event.EventID.String()),
		zap.String("tool", tool),
		zap.String("method", details.Method),
		zap.String("path", details.Path),
		zap.Bool("success", details.Success),
		zap.Int64("duration_ms", details.DurationMs),
		zap.String("severity", severity),
	}
	if details.Success {
		a.logger.Info("Destructive operation executed", fields...)
		return
	}
	fields = append(fields,
		zap.String("error_kind", details.ErrorKind),
		zap.String("error", details.Error))
	a.logger.Warn("Destructive operation failed", fields...)
}

// LogCredentialFailure records a failure to obtain an Airtable token.
// Logged at ERROR with critical severity: every tool is unusable until fixed.
func (a *SecurityAuditor) LogCredentialFailure(tool string, details CredentialFailureDetails) {
	if a == nil {
		return
	}

	event := newEvent(EventCredentialFailure, tool, details, SeverityCritical)
	a.logger.Error("Credential acquisition failed",
		zap.String("event_json", event.json()),
		zap.String("event_id", event.EventID.String()),
		zap.String("tool", tool),
		zap.String("kind", details.Kind),
		zap.Strings("missing", details.Missing),
		zap.String("severity", SeverityCritical),
	)
}

// LogParameterValidation records tool arguments rejected before any request
// was sent. These are usually caller mistakes, so WARN.
func (a *SecurityAuditor) LogParameterValidation(tool, errorMessage string) {
	if a == nil {
		return
	}

	event := newEvent(EventParameterValidation, tool, map[string]string{"error": errorMessage}, SeverityWarning)
	a.logger.Warn("Parameter validation failed",
		zap.String("event_json", event.json()),
		zap.String("event_id", event.EventID.String()),
		zap.String("tool", tool),
		zap.String("error", errorMessage),
		zap.String("severity", SeverityWarning),
	)
}

func newEvent(eventType SecurityEventType, tool string, details any, severity string) SecurityEvent {
	return SecurityEvent{
		EventID:   uuid.New(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Tool:      tool,
		Details:   details,
		Severity:  severity,
	}
}

// json serializes the event; marshaling these known types cannot fail.
func (e SecurityEvent) json() string {
	b, _ := json.Marshal(e)
	return string(b)
}
