package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerViewTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"list_views",
		mcp.WithDescription("List the views of a base"),
		withBaseID(),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListViewsParams{
			BaseID:  a.required("base_id"),
			Include: a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_view_metadata",
		mcp.WithDescription("Get the metadata of one view"),
		withBaseID(),
		withViewID(),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetViewMetadataParams{
			BaseID:  a.required("base_id"),
			ViewID:  a.required("view_id"),
			Include: a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_view",
		mcp.WithDescription("Delete a view"),
		withBaseID(),
		withViewID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteViewParams{
			BaseID: a.required("base_id"),
			ViewID: a.required("view_id"),
		}.Request()
	})
}

func withViewID() mcp.ToolOption {
	return mcp.WithString("view_id", mcp.Required(), mcp.Description("View id (starts with 'viw')"))
}
