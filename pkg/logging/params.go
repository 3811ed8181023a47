package logging

import "strings"

// sensitiveKeyFragments mark argument names whose values must never be
// logged as given. Matching is case-insensitive on substrings.
var sensitiveKeyFragments = []string{"password", "secret", "token", "api_key", "apikey", "credential", "authorization"}

// IsSensitiveKey reports whether values under key must be masked.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range sensitiveKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// SanitizeParams returns a copy of params that is safe to log. Values under
// sensitive keys are replaced by mask(value), strings are truncated to
// maxLen, and nested objects and arrays are walked at any depth.
// params itself is not modified. A nil map yields nil.
func SanitizeParams(params map[string]any, maxLen int, mask func(any) any) map[string]any {
	if params == nil {
		return nil
	}

	result := make(map[string]any, len(params))
	for k, v := range params {
		if IsSensitiveKey(k) {
			result[k] = mask(v)
			continue
		}
		result[k] = sanitizeValue(v, maxLen, mask)
	}
	return result
}

func sanitizeValue(value any, maxLen int, mask func(any) any) any {
	switch val := value.(type) {
	case string:
		return TruncateString(val, maxLen)
	case map[string]any:
		return SanitizeParams(val, maxLen, mask)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = sanitizeValue(item, maxLen, mask)
		}
		return items
	default:
		return value
	}
}
