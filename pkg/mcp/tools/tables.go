package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerTableTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"create_table",
		mcp.WithDescription(
			"Create a table in a base. The first field becomes the primary field. "+
				"Example: create_table(base_id='appXXX', name='Projects', fields=[{'name':'Name','type':'singleLineText'}])",
		),
		withBaseID(),
		mcp.WithString("name", mcp.Required(), mcp.Description("Table name")),
		mcp.WithArray("fields", mcp.Required(), mcp.Description("Field definitions, each {name, type, description?, options?}"), mcp.Items(map[string]any{"type": "object"})),
		mcp.WithString("description", mcp.Description("Optional - Table description")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateTableParams{
			BaseID:      a.required("base_id"),
			Name:        a.required("name"),
			Fields:      a.requiredObjects("fields"),
			Description: a.optional("description"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_table",
		mcp.WithDescription("Rename a table or change its description. Omitted parameters are left unchanged; an empty description clears it."),
		withBaseID(),
		withTableIDOrName(),
		mcp.WithString("name", mcp.Description("Optional - New table name")),
		mcp.WithString("description", mcp.Description("Optional - New table description")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateTableParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			Name:          a.optionalPtr("name"),
			Description:   a.optionalPtr("description"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"create_field",
		mcp.WithDescription(
			"Add a field to a table. Some types require options, e.g. singleSelect needs {'choices':[{'name':'Open'}]}.",
		),
		withBaseID(),
		withTableID(),
		mcp.WithString("name", mcp.Required(), mcp.Description("Field name")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Field type (e.g., 'singleLineText', 'number', 'singleSelect')")),
		mcp.WithString("description", mcp.Description("Optional - Field description")),
		mcp.WithObject("options", mcp.Description("Optional - Type-specific field options")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateFieldParams{
			BaseID:      a.required("base_id"),
			TableID:     a.required("table_id"),
			Name:        a.required("name"),
			Type:        a.required("type"),
			Description: a.optionalPtr("description"),
			Options:     a.object("options"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_field",
		mcp.WithDescription("Rename a field or change its description"),
		withBaseID(),
		withTableID(),
		mcp.WithString("field_id", mcp.Required(), mcp.Description("Field id (starts with 'fld')")),
		mcp.WithString("name", mcp.Description("Optional - New field name")),
		mcp.WithString("description", mcp.Description("Optional - New field description")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateFieldParams{
			BaseID:      a.required("base_id"),
			TableID:     a.required("table_id"),
			FieldID:     a.required("field_id"),
			Name:        a.optionalPtr("name"),
			Description: a.optionalPtr("description"),
		}.Request()
	})
}

func withTableID() mcp.ToolOption {
	return mcp.WithString("table_id", mcp.Required(), mcp.Description("Table id (starts with 'tbl')"))
}
