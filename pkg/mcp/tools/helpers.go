package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

// trimString removes leading and trailing whitespace from a string.
// This is a common helper used across MCP tool parameter validation.
func trimString(s string) string {
	return strings.TrimSpace(s)
}

// extractArrayParam returns args[key] as an array. Some MCP clients send
// arrays as stringified JSON; those are parsed and a warning is logged.
// An absent key returns nil, nil.
func extractArrayParam(args map[string]any, key string, logger *zap.Logger) ([]any, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case []any:
		return v, nil
	case string:
		var parsed []any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil || parsed == nil {
			return nil, fmt.Errorf("parameter %q could not be parsed as an array; send a native JSON array", key)
		}
		if logger != nil {
			logger.Warn("Array parameter sent as stringified JSON", zap.String("param", key))
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("parameter %q must be an array, got %T", key, raw)
	}
}

// extractStringSlice is extractArrayParam for arrays of strings.
func extractStringSlice(args map[string]any, key string, logger *zap.Logger) ([]string, error) {
	items, err := extractArrayParam(args, key, logger)
	if err != nil || items == nil {
		return nil, err
	}

	result := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %q: element %d must be a string, got %T", key, i, item)
		}
		result = append(result, s)
	}
	return result, nil
}

// extractObjectSlice is extractArrayParam for arrays of JSON objects.
func extractObjectSlice(args map[string]any, key string, logger *zap.Logger) ([]map[string]any, error) {
	items, err := extractArrayParam(args, key, logger)
	if err != nil || items == nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parameter %q: element %d must be an object, got %T", key, i, item)
		}
		result = append(result, obj)
	}
	return result, nil
}

// extractObjectParam returns args[key] as a JSON object, accepting the
// stringified form the same way extractArrayParam does.
func extractObjectParam(args map[string]any, key string, logger *zap.Logger) (map[string]any, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil || parsed == nil {
			return nil, fmt.Errorf("parameter %q could not be parsed as an object; send a native JSON object", key)
		}
		if logger != nil {
			logger.Warn("Object parameter sent as stringified JSON", zap.String("param", key))
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("parameter %q must be an object, got %T", key, raw)
	}
}

// toolArgs reads tool arguments and collects every problem so a single
// error result can report them all.
type toolArgs struct {
	values  map[string]any
	logger  *zap.Logger
	missing []string
	invalid []string
}

func newToolArgs(req mcp.CallToolRequest, logger *zap.Logger) *toolArgs {
	values, _ := req.Params.Arguments.(map[string]any)
	if values == nil {
		values = map[string]any{}
	}
	return &toolArgs{values: values, logger: logger}
}

// required returns a trimmed, non-empty string argument.
func (a *toolArgs) required(key string) string {
	raw, ok := a.values[key]
	if !ok || raw == nil {
		a.missing = append(a.missing, key)
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be a string, got %T", key, raw))
		return ""
	}
	s = trimString(s)
	if s == "" {
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q cannot be empty", key))
	}
	return s
}

// text returns a required string argument verbatim. Empty is allowed.
func (a *toolArgs) text(key string) string {
	raw, ok := a.values[key]
	if !ok || raw == nil {
		a.missing = append(a.missing, key)
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be a string, got %T", key, raw))
	}
	return s
}

// optional returns a string argument, or "" when absent.
func (a *toolArgs) optional(key string) string {
	raw, ok := a.values[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be a string, got %T", key, raw))
	}
	return s
}

// optionalPtr distinguishes an absent string argument from an empty one.
func (a *toolArgs) optionalPtr(key string) *string {
	if raw, ok := a.values[key]; !ok || raw == nil {
		return nil
	}
	s := a.optional(key)
	return &s
}

// integer returns an optional whole-number argument. JSON numbers arrive
// as float64.
func (a *toolArgs) integer(key string) *int {
	raw, ok := a.values[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be an integer, got %v", key, v))
			return nil
		}
		n := int(v)
		return &n
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	default:
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be an integer, got %T", key, raw))
		return nil
	}
}

// boolean returns an optional boolean argument; nil when absent.
func (a *toolArgs) boolean(key string) *bool {
	raw, ok := a.values[key]
	if !ok || raw == nil {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		a.invalid = append(a.invalid, fmt.Sprintf("parameter %q must be a boolean, got %T", key, raw))
		return nil
	}
	return &b
}

// requiredBool returns a boolean argument that must be present.
func (a *toolArgs) requiredBool(key string) bool {
	if raw, ok := a.values[key]; !ok || raw == nil {
		a.missing = append(a.missing, key)
		return false
	}
	b := a.boolean(key)
	return b != nil && *b
}

func (a *toolArgs) strings(key string) []string {
	values, err := extractStringSlice(a.values, key, a.logger)
	if err != nil {
		a.invalid = append(a.invalid, err.Error())
	}
	return values
}

func (a *toolArgs) requiredStrings(key string) []string {
	if _, ok := a.values[key]; !ok {
		a.missing = append(a.missing, key)
		return nil
	}
	return a.strings(key)
}

func (a *toolArgs) objects(key string) []map[string]any {
	values, err := extractObjectSlice(a.values, key, a.logger)
	if err != nil {
		a.invalid = append(a.invalid, err.Error())
	}
	return values
}

func (a *toolArgs) requiredObjects(key string) []map[string]any {
	if _, ok := a.values[key]; !ok {
		a.missing = append(a.missing, key)
		return nil
	}
	return a.objects(key)
}

func (a *toolArgs) object(key string) map[string]any {
	value, err := extractObjectParam(a.values, key, a.logger)
	if err != nil {
		a.invalid = append(a.invalid, err.Error())
	}
	return value
}

func (a *toolArgs) requiredObject(key string) map[string]any {
	if _, ok := a.values[key]; !ok {
		a.missing = append(a.missing, key)
		return nil
	}
	return a.object(key)
}

// sort reads [{"field": "...", "direction": "asc|desc"}, ...]. Other keys are
// ignored.
func (a *toolArgs) sort(key string) []airtable.SortSpec {
	items := a.objects(key)
	if items == nil {
		return nil
	}

	specs := make([]airtable.SortSpec, 0, len(items))
	for i, item := range items {
		field, _ := item["field"].(string)
		if trimString(field) == "" {
			a.invalid = append(a.invalid, fmt.Sprintf("parameter %q: element %d needs a non-empty 'field'", key, i))
			continue
		}
		direction, _ := item["direction"].(string)
		specs = append(specs, airtable.SortSpec{Field: field, Direction: direction})
	}
	return specs
}

// errorResult returns an invalid_parameters result describing every
// problem seen so far, or nil when all arguments were usable.
func (a *toolArgs) errorResult() *mcp.CallToolResult {
	message := a.problems()
	if message == "" {
		return nil
	}

	details := map[string]any{}
	if len(a.missing) > 0 {
		details["missing"] = a.missing
	}
	if len(a.invalid) > 0 {
		details["invalid"] = a.invalid
	}
	return NewErrorResultWithDetails("invalid_parameters", message, details)
}

// problems summarizes every missing or invalid argument, or returns "" when
// there are none.
func (a *toolArgs) problems() string {
	var problems []string
	if len(a.missing) > 0 {
		problems = append(problems, "missing required parameters: "+strings.Join(a.missing, ", "))
	}
	problems = append(problems, a.invalid...)
	return strings.Join(problems, "; ")
}
