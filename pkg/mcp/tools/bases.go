package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerBaseTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"list_bases",
		mcp.WithDescription("List the bases the connected account can access. Pass the returned 'offset' to fetch the next page."),
		mcp.WithString("offset", mcp.Description("Optional - Pagination cursor from a previous response")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListBasesParams{Offset: a.optional("offset")}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_base_schema",
		mcp.WithDescription("Get the schema of a base: its tables, fields and views"),
		withBaseID(),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetBaseSchemaParams{
			BaseID:  a.required("base_id"),
			Include: a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"create_base",
		mcp.WithDescription(
			"Create a base in a workspace. At least one table is required. "+
				"Example: create_base(name='CRM', workspace_id='wspXXX', tables=[{'name':'Contacts','fields':[{'name':'Name','type':'singleLineText'}]}])",
		),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new base")),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("Workspace id (starts with 'wsp')")),
		mcp.WithArray("tables", mcp.Required(), mcp.Description("Table definitions, each {name, description?, fields: [...]}"), mcp.Items(map[string]any{"type": "object"})),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateBaseParams{
			Name:        a.required("name"),
			WorkspaceID: a.required("workspace_id"),
			Tables:      a.requiredObjects("tables"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_base_collaborators",
		mcp.WithDescription("Get a base with its collaborators and their permission levels"),
		withBaseID(),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetBaseCollaboratorsParams{
			BaseID:  a.required("base_id"),
			Include: a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_base",
		mcp.WithDescription("Delete a base. This cannot be undone through the API."),
		withBaseID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteBaseParams{BaseID: a.required("base_id")}.Request()
	})
}

func withInclude() mcp.ToolOption {
	return mcp.WithArray("include", mcp.Description("Optional - Extra data to include in the response"), stringItems())
}
