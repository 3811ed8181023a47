package logging

import (
	"regexp"
)

const (
	// MaxBodyLogLength is the maximum length of a response body to log
	MaxBodyLogLength = 200
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match bearer credentials in headers or error strings
	bearerPattern = regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-_.~+/=]+`)

	// Pattern to match secrets passed as key=value pairs
	secretPattern = regexp.MustCompile(`(?i)(secret[_-]?key|secret|access[_-]?token|refresh[_-]?token|api[_-]?key|password)=[^;&\s]+`)

	// Pattern to match JSON encoded secrets, e.g. "access_token":"..."
	jsonSecretPattern = regexp.MustCompile(`(?i)"(access_token|refresh_token|secret_key|api_key)"\s*:\s*"[^"]*"`)
)

// SanitizeString removes bearer tokens and secrets from a string.
// Use this before logging any URL, header value, or response body.
func SanitizeString(s string) string {
	if s == "" {
		return ""
	}

	sanitized := bearerPattern.ReplaceAllString(s, "Bearer "+RedactedText)
	sanitized = secretPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	sanitized = jsonSecretPattern.ReplaceAllString(sanitized, `"${1}":"`+RedactedText+`"`)

	return sanitized
}

// SanitizeError sanitizes error messages that might contain credentials
// Use this before logging any error from broker or API calls
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeBody truncates and sanitizes a response body for logging
func SanitizeBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	return TruncateString(SanitizeString(string(body)), MaxBodyLogLength)
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
