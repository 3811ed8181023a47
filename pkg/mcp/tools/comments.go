package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerCommentTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"list_comments",
		mcp.WithDescription("List the comments on a record, newest first"),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		mcp.WithNumber("page_size", mcp.Description("Optional - Comments per page (max 100)")),
		mcp.WithString("offset", mcp.Description("Optional - Pagination cursor from a previous response")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListCommentsParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			RecordID:      a.required("record_id"),
			PageSize:      a.integer("page_size"),
			Offset:        a.optional("offset"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"create_comment",
		mcp.WithDescription("Comment on a record. Pass parent_comment_id to reply in a thread."),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		mcp.WithString("text", mcp.Required(), mcp.Description("Comment text")),
		mcp.WithString("parent_comment_id", mcp.Description("Optional - Id of the comment being replied to")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateCommentParams{
			BaseID:          a.required("base_id"),
			TableIDOrName:   a.required("table_id_or_name"),
			RecordID:        a.required("record_id"),
			Text:            a.text("text"),
			ParentCommentID: a.optional("parent_comment_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_comment",
		mcp.WithDescription("Replace the text of a comment"),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		withCommentID(),
		mcp.WithString("text", mcp.Required(), mcp.Description("New comment text")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateCommentParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			RecordID:      a.required("record_id"),
			CommentID:     a.required("comment_id"),
			Text:          a.text("text"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_comment",
		mcp.WithDescription("Delete a comment"),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		withCommentID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteCommentParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			RecordID:      a.required("record_id"),
			CommentID:     a.required("comment_id"),
		}.Request()
	})
}

func withCommentID() mcp.ToolOption {
	return mcp.WithString("comment_id", mcp.Required(), mcp.Description("Comment id (starts with 'com')"))
}
