package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
)

func registerRecordTools(s *server.MCPServer, deps *AirtableToolDeps) {
	addAirtableTool(s, deps, mcp.NewTool(
		"list_records",
		mcp.WithDescription(
			"List records in a table. Returns up to 100 records per page; pass the returned 'offset' to fetch the next page. "+
				"Example: list_records(base_id='appXXX', table_id_or_name='Tasks', fields=['Name','Status'], sort=[{'field':'Name','direction':'asc'}])",
		),
		withBaseID(),
		withTableIDOrName(),
		mcp.WithArray("fields", mcp.Description("Optional - Only return these fields"), stringItems()),
		mcp.WithString("filter_by_formula", mcp.Description("Optional - Airtable formula; only records for which it is truthy are returned (e.g., \"{Status}='Done'\")")),
		mcp.WithNumber("max_records", mcp.Description("Optional - Maximum total number of records to return")),
		mcp.WithNumber("page_size", mcp.Description("Optional - Records per page (max 100)")),
		mcp.WithArray("sort", mcp.Description("Optional - Sort order, each element {field, direction} with direction 'asc' or 'desc'"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"field":     map[string]any{"type": "string"},
					"direction": map[string]any{"type": "string", "enum": []string{"asc", "desc"}},
				},
				"required": []string{"field"},
			}),
		),
		mcp.WithString("view", mcp.Description("Optional - View name or id; records are filtered and sorted as in the view")),
		mcp.WithString("cell_format", mcp.Description("Optional - 'json' (default) or 'string'")),
		mcp.WithString("time_zone", mcp.Description("Optional - Time zone for string cell format")),
		mcp.WithString("user_locale", mcp.Description("Optional - Locale for string cell format")),
		mcp.WithString("offset", mcp.Description("Optional - Pagination cursor from a previous response")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.ListRecordsParams{
			BaseID:          a.required("base_id"),
			TableIDOrName:   a.required("table_id_or_name"),
			Fields:          a.strings("fields"),
			FilterByFormula: a.optional("filter_by_formula"),
			MaxRecords:      a.integer("max_records"),
			PageSize:        a.integer("page_size"),
			Sort:            a.sort("sort"),
			View:            a.optional("view"),
			CellFormat:      a.optional("cell_format"),
			TimeZone:        a.optional("time_zone"),
			UserLocale:      a.optional("user_locale"),
			Offset:          a.optional("offset"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"get_record",
		mcp.WithDescription("Retrieve a single record by id"),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		mcp.WithString("cell_format", mcp.Description("Optional - 'json' (default) or 'string'")),
		mcp.WithBoolean("return_fields_by_field_id", mcp.Description("Optional - Key fields by field id instead of name")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.GetRecordParams{
			BaseID:                a.required("base_id"),
			TableIDOrName:         a.required("table_id_or_name"),
			RecordID:              a.required("record_id"),
			CellFormat:            a.optional("cell_format"),
			ReturnFieldsByFieldID: a.boolean("return_fields_by_field_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"create_records",
		mcp.WithDescription(
			"Create one record (pass 'fields') or up to 10 records (pass 'records'). When both are given, 'records' wins. "+
				"Example: create_records(base_id='appXXX', table_id_or_name='Tasks', records=[{'fields':{'Name':'Write docs'}}])",
		),
		withBaseID(),
		withTableIDOrName(),
		mcp.WithArray("records", mcp.Description("Optional - Records to create, each {fields: {...}}"), mcp.Items(map[string]any{"type": "object"})),
		mcp.WithObject("fields", mcp.Description("Optional - Field values of a single record to create")),
		mcp.WithBoolean("typecast", mcp.Description("Optional - Let Airtable convert string values to the field type")),
		mcp.WithBoolean("return_fields_by_field_id", mcp.Description("Optional - Key fields by field id instead of name")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.CreateRecordsParams{
			BaseID:                a.required("base_id"),
			TableIDOrName:         a.required("table_id_or_name"),
			Records:               a.objects("records"),
			Fields:                a.object("fields"),
			Typecast:              a.boolean("typecast"),
			ReturnFieldsByFieldID: a.boolean("return_fields_by_field_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_record",
		mcp.WithDescription("Update fields of a single record. Fields not mentioned are left unchanged."),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Field values to set")),
		mcp.WithBoolean("typecast", mcp.Description("Optional - Let Airtable convert string values to the field type")),
		mcp.WithBoolean("return_fields_by_field_id", mcp.Description("Optional - Key fields by field id instead of name")),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateRecordParams{
			BaseID:                a.required("base_id"),
			TableIDOrName:         a.required("table_id_or_name"),
			RecordID:              a.required("record_id"),
			Fields:                a.requiredObject("fields"),
			Typecast:              a.boolean("typecast"),
			ReturnFieldsByFieldID: a.boolean("return_fields_by_field_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"update_multiple_records",
		mcp.WithDescription(
			"Update up to 10 records. With perform_upsert or fields_to_merge_on, records are matched on the merge fields "+
				"and created when no match exists; records then omit 'id'.",
		),
		withBaseID(),
		withTableIDOrName(),
		mcp.WithArray("records", mcp.Required(), mcp.Description("Records to update, each {id, fields: {...}}"), mcp.Items(map[string]any{"type": "object"})),
		mcp.WithBoolean("typecast", mcp.Description("Optional - Let Airtable convert string values to the field type")),
		mcp.WithBoolean("return_fields_by_field_id", mcp.Description("Optional - Key fields by field id instead of name")),
		mcp.WithBoolean("perform_upsert", mcp.Description("Optional - Upsert instead of update")),
		mcp.WithArray("fields_to_merge_on", mcp.Description("Optional - Field names used to match existing records when upserting"), stringItems()),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.UpdateMultipleRecordsParams{
			BaseID:                a.required("base_id"),
			TableIDOrName:         a.required("table_id_or_name"),
			Records:               a.requiredObjects("records"),
			Typecast:              a.boolean("typecast"),
			ReturnFieldsByFieldID: a.boolean("return_fields_by_field_id"),
			PerformUpsert:         a.boolean("perform_upsert"),
			FieldsToMergeOn:       a.strings("fields_to_merge_on"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_record",
		mcp.WithDescription("Delete a single record"),
		withBaseID(),
		withTableIDOrName(),
		withRecordID(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteRecordParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			RecordID:      a.required("record_id"),
		}.Request()
	})

	addAirtableTool(s, deps, mcp.NewTool(
		"delete_multiple_records",
		mcp.WithDescription("Delete up to 10 records by id"),
		withBaseID(),
		withTableIDOrName(),
		mcp.WithArray("record_ids", mcp.Required(), mcp.Description("Ids of the records to delete"), stringItems()),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	), func(a *toolArgs) airtable.Request {
		return airtable.DeleteMultipleRecordsParams{
			BaseID:        a.required("base_id"),
			TableIDOrName: a.required("table_id_or_name"),
			RecordIDs:     a.requiredStrings("record_ids"),
		}.Request()
	})
}

func withBaseID() mcp.ToolOption {
	return mcp.WithString("base_id", mcp.Required(), mcp.Description("Base id (starts with 'app')"))
}

func withTableIDOrName() mcp.ToolOption {
	return mcp.WithString("table_id_or_name", mcp.Required(), mcp.Description("Table id (starts with 'tbl') or table name"))
}

func withRecordID() mcp.ToolOption {
	return mcp.WithString("record_id", mcp.Required(), mcp.Description("Record id (starts with 'rec')"))
}

func stringItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}
