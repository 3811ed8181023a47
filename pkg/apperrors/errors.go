// Package apperrors defines the failure taxonomy shared by the credential
// broker client, the token provider and the Airtable request gateway.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure. The string value doubles as the error code
// surfaced in MCP tool results.
type Kind string

const (
	KindConfiguration   Kind = "configuration_error"
	KindBroker          Kind = "broker_error"
	KindCredentialShape Kind = "credential_shape_error"
	KindAPIStatus       Kind = "api_status_error"
	KindTransport       Kind = "transport_error"
	KindUnexpected      Kind = "unexpected_error"
)

var (
	// ErrAuthentication matches every failure that prevented obtaining an
	// access token (configuration, broker and credential shape failures).
	ErrAuthentication = errors.New("cannot authenticate")

	ErrConfiguration   = errors.New("configuration error")
	ErrBroker          = errors.New("credential broker error")
	ErrCredentialShape = errors.New("credential shape error")
	ErrAPIStatus       = errors.New("api status error")
	ErrTransport       = errors.New("transport error")
	ErrUnexpected      = errors.New("unexpected error")
)

var kindSentinels = map[Kind]error{
	KindConfiguration:   ErrConfiguration,
	KindBroker:          ErrBroker,
	KindCredentialShape: ErrCredentialShape,
	KindAPIStatus:       ErrAPIStatus,
	KindTransport:       ErrTransport,
	KindUnexpected:      ErrUnexpected,
}

// Error is a classified failure. Message is complete and human readable;
// it already embeds the cause text where one exists.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int      // HTTP status for KindAPIStatus, zero otherwise
	Missing    []string // missing configuration names for KindConfiguration
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's kind, or
// ErrAuthentication for any of the authentication kinds.
func (e *Error) Is(target error) bool {
	if target == ErrAuthentication {
		return e.IsAuthentication()
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsAuthentication returns true if the failure happened while obtaining credentials.
func (e *Error) IsAuthentication() bool {
	switch e.Kind {
	case KindConfiguration, KindBroker, KindCredentialShape:
		return true
	}
	return false
}

// NewConfigurationError reports the configuration names that are missing.
func NewConfigurationError(missing []string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: fmt.Sprintf("missing required Nango configuration: %s", strings.Join(missing, ", ")),
		Missing: append([]string(nil), missing...),
	}
}

// NewBrokerError reports a failed exchange with the credential broker.
func NewBrokerError(message string, cause error) *Error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &Error{
		Kind:    KindBroker,
		Message: message,
		Cause:   cause,
	}
}

// NewCredentialShapeError reports a broker payload without a usable access token.
func NewCredentialShapeError(message string) *Error {
	return &Error{
		Kind:    KindCredentialShape,
		Message: message,
	}
}

// NewAPIStatusError reports a non-2xx response from the remote API.
// The message format is "HTTP {status}: {reason} - {detail}".
func NewAPIStatusError(statusCode int, reason, detail string) *Error {
	return &Error{
		Kind:       KindAPIStatus,
		Message:    fmt.Sprintf("HTTP %d: %s - %s", statusCode, reason, detail),
		StatusCode: statusCode,
	}
}

// NewTransportError reports a network level failure (connection, DNS, timeout).
func NewTransportError(cause error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", cause),
		Cause:   cause,
	}
}

// NewUnexpectedError is the backstop for failures outside the other kinds.
func NewUnexpectedError(cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("unexpected error: %v", cause),
		Cause:   cause,
	}
}

// Wrap prefixes the message of a classified error while keeping its kind.
// Unclassified errors become KindUnexpected.
func Wrap(err error, prefix string) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = NewUnexpectedError(err)
	}
	return &Error{
		Kind:       appErr.Kind,
		Message:    fmt.Sprintf("%s: %s", prefix, appErr.Message),
		StatusCode: appErr.StatusCode,
		Missing:    appErr.Missing,
		Cause:      err,
	}
}

// KindOf returns the kind of a classified error, or KindUnexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
