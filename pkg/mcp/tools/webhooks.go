package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerWebhookTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"list_webhooks",
		mcp.WithDescription("List the webhooks registered on a base"),
		withBaseID(),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListWebhooksParams{BaseID: a.required("base_id")}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"create_webhook",
		mcp.WithDescription(
			"Register a webhook on a base. Webhooks expire after 7 days unless refreshed. "+
				"Example: create_webhook(base_id='appXXX', notification_url='https://example.com/hook', specification={'options':{'filters':{'dataTypes':['tableData']}}})",
		),
		withBaseID(),
		mcp.WithString("notification_url", mcp.Description("Optional - URL that receives change pings")),
		mcp.WithObject("specification", mcp.Description("Optional - Webhook specification ({options: {filters: ...}})")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateWebhookParams{
			BaseID:          a.required("base_id"),
			NotificationURL: a.optional("notification_url"),
			Specification:   a.object("specification"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_webhook",
		mcp.WithDescription("Delete a webhook"),
		withBaseID(),
		withWebhookID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteWebhookParams{
			BaseID:    a.required("base_id"),
			WebhookID: a.required("webhook_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"list_webhook_payloads",
		mcp.WithDescription("List the change payloads queued for a webhook. Pass the returned 'cursor' to continue."),
		withBaseID(),
		withWebhookID(),
		mcp.WithNumber("cursor", mcp.Description("Optional - Transaction number to start from")),
		mcp.WithNumber("limit", mcp.Description("Optional - Maximum number of payloads (max 50)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListWebhookPayloadsParams{
			BaseID:    a.required("base_id"),
			WebhookID: a.required("webhook_id"),
			Cursor:    a.integer("cursor"),
			Limit:     a.integer("limit"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"enable_disable_webhook_notifications",
		mcp.WithDescription("Turn notification pings for a webhook on or off"),
		withBaseID(),
		withWebhookID(),
		mcp.WithBoolean("enable", mcp.Required(), mcp.Description("true to enable notifications, false to disable")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.EnableWebhookNotificationsParams{
			BaseID:    a.required("base_id"),
			WebhookID: a.required("webhook_id"),
			Enable:    a.requiredBool("enable"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"refresh_webhook",
		mcp.WithDescription("Extend the expiration of a webhook by 7 days"),
		withBaseID(),
		withWebhookID(),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.RefreshWebhookParams{
			BaseID:    a.required("base_id"),
			WebhookID: a.required("webhook_id"),
		}.Request()
	})
}

func withWebhookID() mcp.ToolOption {
	return mcp.WithString("webhook_id", mcp.Required(), mcp.Description("Webhook id (starts with 'ach')"))
}
