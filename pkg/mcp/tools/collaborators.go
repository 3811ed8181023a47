package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

var permissionLevels = []string{"none", "read", "comment", "edit", "create"}

func registerCollaboratorTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"add_base_collaborator",
		mcp.WithDescription("Grant a user or a group access to a base. When both user_id and group_id are given, user_id is used."),
		withBaseID(),
		mcp.WithString("user_id", mcp.Description("Optional - User id (starts with 'usr')")),
		mcp.WithString("group_id", mcp.Description("Optional - User group id (starts with 'ugp')")),
		mcp.WithString("permission_level",
			mcp.Description("Optional - Permission to grant (default: 'read')"),
			mcp.Enum(permissionLevels...),
		),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.AddBaseCollaboratorParams{
			BaseID:          a.required("base_id"),
			UserID:          a.optional("user_id"),
			GroupID:         a.optional("group_id"),
			PermissionLevel: a.optional("permission_level"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_collaborator_base_permission",
		mcp.WithDescription("Change the permission level of a base collaborator"),
		withBaseID(),
		withUserOrGroupID(),
		mcp.WithString("permission_level",
			mcp.Required(),
			mcp.Description("New permission level"),
			mcp.Enum(permissionLevels...),
		),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateCollaboratorBasePermissionParams{
			BaseID:          a.required("base_id"),
			UserOrGroupID:   a.required("user_or_group_id"),
			PermissionLevel: a.required("permission_level"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_base_collaborator",
		mcp.WithDescription("Remove a user or group from a base"),
		withBaseID(),
		withUserOrGroupID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteBaseCollaboratorParams{
			BaseID:        a.required("base_id"),
			UserOrGroupID: a.required("user_or_group_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_workspace_collaborators",
		mcp.WithDescription("Get a workspace with its collaborators"),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("Workspace id (starts with 'wsp')")),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetWorkspaceCollaboratorsParams{
			WorkspaceID: a.required("workspace_id"),
			Include:     a.strings("include"),
		}.Request()
	})
}

func withUserOrGroupID() mcp.ToolOption {
	return mcp.WithString("user_or_group_id", mcp.Required(), mcp.Description("User id ('usr...') or group id ('ugp...')"))
}
