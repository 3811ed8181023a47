package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerEnterpriseTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"get_user_info",
		mcp.WithDescription("Get the id, email and scopes of the connected Airtable user"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetUserInfoParams{}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_enterprise",
		mcp.WithDescription("Get an enterprise account (enterprise plans only)"),
		withEnterpriseAccountID(),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetEnterpriseParams{
			EnterpriseAccountID: a.required("enterprise_account_id"),
			Include:             a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_user_by_id",
		mcp.WithDescription("Get one user of an enterprise account"),
		withEnterpriseAccountID(),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User id (starts with 'usr')")),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetUserByIDParams{
			EnterpriseAccountID: a.required("enterprise_account_id"),
			UserID:              a.required("user_id"),
			Include:             a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_users_by_id_or_email",
		mcp.WithDescription("Look up enterprise users by id and/or email"),
		withEnterpriseAccountID(),
		mcp.WithArray("user_ids", mcp.Description("Optional - User ids to look up"), stringItems()),
		mcp.WithArray("emails", mcp.Description("Optional - Emails to look up"), stringItems()),
		withInclude(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetUsersByIDOrEmailParams{
			EnterpriseAccountID: a.required("enterprise_account_id"),
			UserIDs:             a.strings("user_ids"),
			Emails:              a.strings("emails"),
			Include:             a.strings("include"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"remove_user_from_enterprise",
		mcp.WithDescription("Remove a user from an enterprise account. Use is_dry_run=true to preview the effect."),
		withEnterpriseAccountID(),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User id (starts with 'usr')")),
		mcp.WithString("replacement_owner_id", mcp.Description("Optional - User who takes over workspaces the removed user owns")),
		mcp.WithBoolean("remove_from_descendants", mcp.Description("Optional - Also remove from descendant enterprise accounts")),
		mcp.WithBoolean("is_dry_run", mcp.Description("Optional - Report what would change without changing it")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.RemoveUserFromEnterpriseParams{
			EnterpriseAccountID:   a.required("enterprise_account_id"),
			UserID:                a.required("user_id"),
			ReplacementOwnerID:    a.optional("replacement_owner_id"),
			RemoveFromDescendants: a.boolean("remove_from_descendants"),
			IsDryRun:              a.boolean("is_dry_run"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"list_shares",
		mcp.WithDescription("List the shares of a base"),
		withBaseID(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListSharesParams{BaseID: a.required("base_id")}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_share",
		mcp.WithDescription("Delete a base share"),
		withBaseID(),
		mcp.WithString("share_id", mcp.Required(), mcp.Description("Share id (starts with 'shr')")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteShareParams{
			BaseID:  a.required("base_id"),
			ShareID: a.required("share_id"),
		}.Request()
	})
}

func withEnterpriseAccountID() mcp.ToolOption {
	return mcp.WithString("enterprise_account_id", mcp.Required(), mcp.Description("Enterprise account id (starts with 'ent')"))
}
