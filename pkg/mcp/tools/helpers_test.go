package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func TestTrimString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"leading whitespace", "  test", "test"},
		{"trailing whitespace", "test  ", "test"},
		{"both sides whitespace", "  test  ", "test"},
		{"tabs", "\ttest\t", "test"},
		{"newlines", "\ntest\n", "test"},
		{"mixed whitespace", " \t\ntest\n\t ", "test"},
		{"no whitespace", "test", "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := trimString(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractArrayParam(t *testing.T) {
	t.Run("native array", func(t *testing.T) {
		args := map[string]any{
			"tags": []any{"a", "b"},
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, result)
	})

	t.Run("stringified parsable string array", func(t *testing.T) {
		args := map[string]any{
			"tags": `["a","b"]`,
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, result)
	})

	t.Run("stringified parsable object array", func(t *testing.T) {
		args := map[string]any{
			"parameters": `[{"name":"limit","type":"integer","example":20}]`,
		}
		result, err := extractArrayParam(args, "parameters", nil)
		require.NoError(t, err)
		require.Len(t, result, 1)
		obj, ok := result[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "limit", obj["name"])
		assert.Equal(t, "integer", obj["type"])
		assert.Equal(t, float64(20), obj["example"]) // JSON numbers are float64
	})

	t.Run("unparsable string returns error with guidance", func(t *testing.T) {
		args := map[string]any{
			"tags": "not-an-array",
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "parameter \"tags\"")
		assert.Contains(t, err.Error(), "could not be parsed")
		assert.Contains(t, err.Error(), "native JSON array")
	})

	t.Run("wrong type (number) returns error with type info", func(t *testing.T) {
		args := map[string]any{
			"tags": 123,
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "parameter \"tags\"")
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("wrong type (bool) returns error with type info", func(t *testing.T) {
		args := map[string]any{
			"tags": true,
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "bool")
	})

	t.Run("absent key returns nil nil", func(t *testing.T) {
		args := map[string]any{}
		result, err := extractArrayParam(args, "tags", nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("string fallback logs warning", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		logger := zap.New(core)

		args := map[string]any{
			"tags": `["a","b"]`,
		}
		result, err := extractArrayParam(args, "tags", logger)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, result)

		require.Equal(t, 1, logs.Len())
		logEntry := logs.All()[0]
		assert.Equal(t, zap.WarnLevel, logEntry.Level)
		assert.Contains(t, logEntry.Message, "stringified JSON")
		assert.Equal(t, "tags", logEntry.ContextMap()["param"])
	})

	t.Run("native array does not log warning", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		logger := zap.New(core)

		args := map[string]any{
			"tags": []any{"a", "b"},
		}
		result, err := extractArrayParam(args, "tags", logger)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, result)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("empty native array", func(t *testing.T) {
		args := map[string]any{
			"tags": []any{},
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{}, result)
	})

	t.Run("empty stringified array", func(t *testing.T) {
		args := map[string]any{
			"tags": `[]`,
		}
		result, err := extractArrayParam(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{}, result)
	})
}

func TestExtractStringSlice(t *testing.T) {
	t.Run("native string array", func(t *testing.T) {
		args := map[string]any{
			"tags": []any{"billing", "analytics"},
		}
		result, err := extractStringSlice(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"billing", "analytics"}, result)
	})

	t.Run("stringified string array", func(t *testing.T) {
		args := map[string]any{
			"tags": `["billing","analytics"]`,
		}
		result, err := extractStringSlice(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"billing", "analytics"}, result)
	})

	t.Run("absent key returns nil nil", func(t *testing.T) {
		args := map[string]any{}
		result, err := extractStringSlice(args, "tags", nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("unparsable string returns error", func(t *testing.T) {
		args := map[string]any{
			"tags": "not-json",
		}
		result, err := extractStringSlice(args, "tags", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "parameter \"tags\"")
	})

	t.Run("non-string element returns error", func(t *testing.T) {
		args := map[string]any{
			"tags": []any{"valid", 123, "also-valid"},
		}
		result, err := extractStringSlice(args, "tags", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "element 1")
		assert.Contains(t, err.Error(), "string")
	})

	t.Run("empty array returns empty slice", func(t *testing.T) {
		args := map[string]any{
			"tags": []any{},
		}
		result, err := extractStringSlice(args, "tags", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{}, result)
	})
}

func TestExtractObjectSlice(t *testing.T) {
	t.Run("native object array", func(t *testing.T) {
		args := map[string]any{
			"records": []any{map[string]any{"fields": map[string]any{"Name": "A"}}},
		}
		result, err := extractObjectSlice(args, "records", nil)
		require.NoError(t, err)
		assert.Equal(t, []map[string]any{{"fields": map[string]any{"Name": "A"}}}, result)
	})

	t.Run("non-object element returns error", func(t *testing.T) {
		args := map[string]any{
			"records": []any{map[string]any{}, "rec1"},
		}
		result, err := extractObjectSlice(args, "records", nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "element 1")
		assert.Contains(t, err.Error(), "object")
	})
}

func TestExtractObjectParam(t *testing.T) {
	t.Run("native object", func(t *testing.T) {
		result, err := extractObjectParam(map[string]any{"fields": map[string]any{"Name": "A"}}, "fields", nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"Name": "A"}, result)
	})

	t.Run("stringified object", func(t *testing.T) {
		result, err := extractObjectParam(map[string]any{"fields": `{"Name":"A"}`}, "fields", nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"Name": "A"}, result)
	})

	t.Run("array is rejected", func(t *testing.T) {
		_, err := extractObjectParam(map[string]any{"fields": []any{}}, "fields", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be an object")
	})

	t.Run("absent key returns nil nil", func(t *testing.T) {
		result, err := extractObjectParam(map[string]any{}, "fields", nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func newArgsFrom(args map[string]any) *toolArgs {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return newToolArgs(req, zap.NewNop())
}

func TestToolArgs_Required(t *testing.T) {
	a := newArgsFrom(map[string]any{
		"base_id":  "  app1  ",
		"blank":    "   ",
		"number":   42.0,
		"nullable": nil,
	})

	assert.Equal(t, "app1", a.required("base_id"))
	assert.Equal(t, "", a.required("blank"))
	assert.Equal(t, "", a.required("number"))
	assert.Equal(t, "", a.required("nullable"))
	assert.Equal(t, "", a.required("absent"))

	assert.Equal(t, []string{"nullable", "absent"}, a.missing)
	require.Len(t, a.invalid, 2)
	assert.Contains(t, a.invalid[0], "cannot be empty")
	assert.Contains(t, a.invalid[1], "must be a string")
}

func TestToolArgs_Integer(t *testing.T) {
	a := newArgsFrom(map[string]any{
		"page_size":   10.0,
		"fractional":  2.5,
		"as_string":   "10",
		"max_records": float64(0),
	})

	require.NotNil(t, a.integer("page_size"))
	assert.Equal(t, 10, *a.integer("page_size"))
	assert.Equal(t, 0, *a.integer("max_records"))
	assert.Nil(t, a.integer("absent"))
	assert.Nil(t, a.integer("fractional"))
	assert.Nil(t, a.integer("as_string"))
	assert.Len(t, a.invalid, 2)
}

func TestToolArgs_Boolean(t *testing.T) {
	a := newArgsFrom(map[string]any{"typecast": false, "enable": true, "bad": "yes"})

	require.NotNil(t, a.boolean("typecast"))
	assert.False(t, *a.boolean("typecast"), "explicit false must be kept")
	assert.Nil(t, a.boolean("absent"))
	assert.True(t, a.requiredBool("enable"))
	assert.False(t, a.requiredBool("missing"))
	assert.Nil(t, a.boolean("bad"))

	assert.Equal(t, []string{"missing"}, a.missing)
	assert.Len(t, a.invalid, 1)
}

func TestToolArgs_OptionalPtr(t *testing.T) {
	a := newArgsFrom(map[string]any{"description": ""})

	desc := a.optionalPtr("description")
	require.NotNil(t, desc)
	assert.Equal(t, "", *desc)
	assert.Nil(t, a.optionalPtr("name"))
}

func TestToolArgs_Sort(t *testing.T) {
	a := newArgsFrom(map[string]any{
		"sort": []any{
			map[string]any{"field": "Name", "direction": "desc"},
			map[string]any{"field": "Created"},
		},
	})

	assert.Equal(t, []airtable.SortSpec{
		{Field: "Name", Direction: "desc"},
		{Field: "Created"},
	}, a.sort("sort"))
	assert.Nil(t, a.errorResult())

	extra := newArgsFrom(map[string]any{
		"sort": []any{map[string]any{"direction": "asc", "field": "Due", "color": "red"}},
	})
	var q airtable.Query
	q.AddSort(extra.sort("sort"))
	assert.Equal(t, airtable.Query{
		{Key: "sort[0][field]", Value: "Due"},
		{Key: "sort[0][direction]", Value: "asc"},
	}, q, "field precedes direction and unknown keys are dropped")

	bad := newArgsFrom(map[string]any{"sort": []any{map[string]any{"direction": "asc"}}})
	bad.sort("sort")
	assert.NotNil(t, bad.errorResult())
}

func TestToolArgs_ErrorResult(t *testing.T) {
	a := newArgsFrom(map[string]any{"fields": "not-json"})
	a.required("base_id")
	a.required("table_id_or_name")
	a.strings("fields")

	errResp := decodeErrorResponse(t, a.errorResult())
	assert.Equal(t, "invalid_parameters", errResp.Code)
	assert.Contains(t, errResp.Message, "missing required parameters: base_id, table_id_or_name")
	assert.Contains(t, errResp.Message, `parameter "fields" could not be parsed`)

	details, ok := errResp.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"base_id", "table_id_or_name"}, details["missing"])
}
