package airtable

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encoder interface {
	Request() Request
}

// bodyJSON marshals the request body the way the gateway does.
func bodyJSON(t *testing.T, req Request) string {
	t.Helper()
	require.NotNil(t, req.Body, "expected a request body")
	b, err := json.Marshal(req.Body)
	require.NoError(t, err)
	return string(b)
}

func TestOperations_MethodAndPath(t *testing.T) {
	tests := []struct {
		name   string
		op     encoder
		method string
		path   string
	}{
		{"list_records", ListRecordsParams{BaseID: "app1", TableIDOrName: "Tasks"}, http.MethodGet, "/app1/Tasks"},
		{"get_record", GetRecordParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}, http.MethodGet, "/app1/Tasks/rec1"},
		{"create_records", CreateRecordsParams{BaseID: "app1", TableIDOrName: "Tasks"}, http.MethodPost, "/app1/Tasks"},
		{"update_record", UpdateRecordParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}, http.MethodPatch, "/app1/Tasks/rec1"},
		{"update_multiple_records", UpdateMultipleRecordsParams{BaseID: "app1", TableIDOrName: "Tasks"}, http.MethodPatch, "/app1/Tasks"},
		{"delete_record", DeleteRecordParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}, http.MethodDelete, "/app1/Tasks/rec1"},
		{"delete_multiple_records", DeleteMultipleRecordsParams{BaseID: "app1", TableIDOrName: "Tasks"}, http.MethodDelete, "/app1/Tasks"},
		{"list_bases", ListBasesParams{}, http.MethodGet, "/meta/bases"},
		{"get_base_schema", GetBaseSchemaParams{BaseID: "app1"}, http.MethodGet, "/meta/bases/app1/tables"},
		{"create_base", CreateBaseParams{}, http.MethodPost, "/meta/bases"},
		{"get_base_collaborators", GetBaseCollaboratorsParams{BaseID: "app1"}, http.MethodGet, "/meta/bases/app1"},
		{"delete_base", DeleteBaseParams{BaseID: "app1"}, http.MethodDelete, "/meta/bases/app1"},
		{"create_table", CreateTableParams{BaseID: "app1"}, http.MethodPost, "/meta/bases/app1/tables"},
		{"update_table", UpdateTableParams{BaseID: "app1", TableIDOrName: "tbl1"}, http.MethodPatch, "/meta/bases/app1/tables/tbl1"},
		{"create_field", CreateFieldParams{BaseID: "app1", TableID: "tbl1"}, http.MethodPost, "/meta/bases/app1/tables/tbl1/fields"},
		{"update_field", UpdateFieldParams{BaseID: "app1", TableID: "tbl1", FieldID: "fld1"}, http.MethodPatch, "/meta/bases/app1/tables/tbl1/fields/fld1"},
		{"list_views", ListViewsParams{BaseID: "app1"}, http.MethodGet, "/meta/bases/app1/views"},
		{"get_view_metadata", GetViewMetadataParams{BaseID: "app1", ViewID: "viw1"}, http.MethodGet, "/meta/bases/app1/views/viw1"},
		{"delete_view", DeleteViewParams{BaseID: "app1", ViewID: "viw1"}, http.MethodDelete, "/meta/bases/app1/views/viw1"},
		{"list_comments", ListCommentsParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}, http.MethodGet, "/app1/Tasks/rec1/comments"},
		{"create_comment", CreateCommentParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}, http.MethodPost, "/app1/Tasks/rec1/comments"},
		{"update_comment", UpdateCommentParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1", CommentID: "com1"}, http.MethodPatch, "/app1/Tasks/rec1/comments/com1"},
		{"delete_comment", DeleteCommentParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1", CommentID: "com1"}, http.MethodDelete, "/app1/Tasks/rec1/comments/com1"},
		{"list_webhooks", ListWebhooksParams{BaseID: "app1"}, http.MethodGet, "/bases/app1/webhooks"},
		{"create_webhook", CreateWebhookParams{BaseID: "app1"}, http.MethodPost, "/bases/app1/webhooks"},
		{"delete_webhook", DeleteWebhookParams{BaseID: "app1", WebhookID: "ach1"}, http.MethodDelete, "/bases/app1/webhooks/ach1"},
		{"list_webhook_payloads", ListWebhookPayloadsParams{BaseID: "app1", WebhookID: "ach1"}, http.MethodGet, "/bases/app1/webhooks/ach1/payloads"},
		{"enable_disable_webhook_notifications", EnableWebhookNotificationsParams{BaseID: "app1", WebhookID: "ach1"}, http.MethodPost, "/bases/app1/webhooks/ach1/enableNotifications"},
		{"refresh_webhook", RefreshWebhookParams{BaseID: "app1", WebhookID: "ach1"}, http.MethodPost, "/bases/app1/webhooks/ach1/refresh"},
		{"add_base_collaborator", AddBaseCollaboratorParams{BaseID: "app1"}, http.MethodPost, "/meta/bases/app1/collaborators"},
		{"update_collaborator_base_permission", UpdateCollaboratorBasePermissionParams{BaseID: "app1", UserOrGroupID: "usr1"}, http.MethodPatch, "/meta/bases/app1/collaborators/usr1"},
		{"delete_base_collaborator", DeleteBaseCollaboratorParams{BaseID: "app1", UserOrGroupID: "usr1"}, http.MethodDelete, "/meta/bases/app1/collaborators/usr1"},
		{"get_workspace_collaborators", GetWorkspaceCollaboratorsParams{WorkspaceID: "wsp1"}, http.MethodGet, "/meta/workspaces/wsp1"},
		{"get_user_info", GetUserInfoParams{}, http.MethodGet, "/meta/whoami"},
		{"get_enterprise", GetEnterpriseParams{EnterpriseAccountID: "ent1"}, http.MethodGet, "/meta/enterpriseAccounts/ent1"},
		{"get_user_by_id", GetUserByIDParams{EnterpriseAccountID: "ent1", UserID: "usr1"}, http.MethodGet, "/meta/enterpriseAccounts/ent1/users/usr1"},
		{"get_users_by_id_or_email", GetUsersByIDOrEmailParams{EnterpriseAccountID: "ent1"}, http.MethodGet, "/meta/enterpriseAccounts/ent1/users"},
		{"remove_user_from_enterprise", RemoveUserFromEnterpriseParams{EnterpriseAccountID: "ent1", UserID: "usr1"}, http.MethodPost, "/meta/enterpriseAccounts/ent1/users/usr1/remove"},
		{"list_shares", ListSharesParams{BaseID: "app1"}, http.MethodGet, "/meta/bases/app1/shares"},
		{"delete_share", DeleteShareParams{BaseID: "app1", ShareID: "shr1"}, http.MethodDelete, "/meta/bases/app1/shares/shr1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.op.Request()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.PathString())
		})
	}
}

func TestListRecordsParams_Query(t *testing.T) {
	req := ListRecordsParams{
		BaseID:          "app1",
		TableIDOrName:   "Tasks",
		Fields:          []string{"Name", "Status"},
		FilterByFormula: "{Status}='Done'",
		MaxRecords:      ptr(50),
		Sort:            []SortSpec{{Field: "Name", Direction: "asc"}},
		View:            "Grid view",
	}.Request()

	assert.Equal(t, []string{"Name", "Status"}, req.Query.Get("fields[]"))
	assert.Equal(t, []string{"{Status}='Done'"}, req.Query.Get("filterByFormula"))
	assert.Equal(t, []string{"50"}, req.Query.Get("maxRecords"))
	assert.Equal(t, []string{"Name"}, req.Query.Get("sort[0][field]"))
	assert.Equal(t, []string{"asc"}, req.Query.Get("sort[0][direction]"))
	assert.Equal(t, []string{"Grid view"}, req.Query.Get("view"))
	assert.Empty(t, req.Query.Get("pageSize"))
	assert.Nil(t, req.Body)
}

func TestGetRecordParams_ExplicitFalseIsSent(t *testing.T) {
	req := GetRecordParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1", ReturnFieldsByFieldID: ptr(false)}.Request()

	assert.Equal(t, []string{"false"}, req.Query.Get("returnFieldsByFieldId"))
}

func TestCreateRecordsParams_Body(t *testing.T) {
	t.Run("single record from fields", func(t *testing.T) {
		req := CreateRecordsParams{
			BaseID:        "app1",
			TableIDOrName: "Tasks",
			Fields:        map[string]any{"Name": "Write tests"},
			Typecast:      ptr(true),
		}.Request()

		assert.JSONEq(t, `{"fields":{"Name":"Write tests"},"typecast":true}`, bodyJSON(t, req))
	})

	t.Run("records take precedence over fields", func(t *testing.T) {
		req := CreateRecordsParams{
			BaseID:        "app1",
			TableIDOrName: "Tasks",
			Records:       []map[string]any{{"fields": map[string]any{"Name": "A"}}},
			Fields:        map[string]any{"Name": "ignored"},
		}.Request()

		assert.JSONEq(t, `{"records":[{"fields":{"Name":"A"}}]}`, bodyJSON(t, req))
	})

	t.Run("explicit false typecast kept", func(t *testing.T) {
		req := CreateRecordsParams{BaseID: "app1", TableIDOrName: "Tasks", Typecast: ptr(false)}.Request()

		assert.JSONEq(t, `{"typecast":false}`, bodyJSON(t, req))
	})
}

func TestUpdateRecordParams_AlwaysSendsFields(t *testing.T) {
	req := UpdateRecordParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1"}.Request()

	assert.JSONEq(t, `{"fields":{}}`, bodyJSON(t, req))
}

func TestUpdateMultipleRecordsParams_Upsert(t *testing.T) {
	records := []map[string]any{{"fields": map[string]any{"Email": "a@example.com"}}}

	tests := []struct {
		name   string
		params UpdateMultipleRecordsParams
		want   string
	}{
		{
			name:   "plain update",
			params: UpdateMultipleRecordsParams{Records: records},
			want:   `{"records":[{"fields":{"Email":"a@example.com"}}]}`,
		},
		{
			name:   "merge fields imply upsert",
			params: UpdateMultipleRecordsParams{Records: records, FieldsToMergeOn: []string{"Email"}},
			want:   `{"records":[{"fields":{"Email":"a@example.com"}}],"performUpsert":{"fieldsToMergeOn":["Email"]}}`,
		},
		{
			name:   "explicit upsert without merge fields is passed through",
			params: UpdateMultipleRecordsParams{Records: records, PerformUpsert: ptr(true)},
			want:   `{"records":[{"fields":{"Email":"a@example.com"}}],"performUpsert":{"fieldsToMergeOn":[]}}`,
		},
		{
			name:   "explicit false disables upsert",
			params: UpdateMultipleRecordsParams{Records: records, PerformUpsert: ptr(false), FieldsToMergeOn: []string{"Email"}},
			want:   `{"records":[{"fields":{"Email":"a@example.com"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.BaseID = "app1"
			tt.params.TableIDOrName = "Contacts"
			assert.JSONEq(t, tt.want, bodyJSON(t, tt.params.Request()))
		})
	}
}

func TestDeleteMultipleRecordsParams_Query(t *testing.T) {
	req := DeleteMultipleRecordsParams{BaseID: "app1", TableIDOrName: "Tasks", RecordIDs: []string{"rec1", "rec2"}}.Request()

	assert.Equal(t, "records%5B%5D=rec1&records%5B%5D=rec2", req.Query.Encode())
	assert.Nil(t, req.Body)
}

func TestIncludeUsesArrayRule(t *testing.T) {
	for _, op := range []encoder{
		GetBaseSchemaParams{BaseID: "app1", Include: []string{"visibleFieldIds"}},
		ListViewsParams{BaseID: "app1", Include: []string{"visibleFieldIds"}},
		GetWorkspaceCollaboratorsParams{WorkspaceID: "wsp1", Include: []string{"visibleFieldIds"}},
		GetEnterpriseParams{EnterpriseAccountID: "ent1", Include: []string{"visibleFieldIds"}},
	} {
		assert.Equal(t, []string{"visibleFieldIds"}, op.Request().Query.Get("include[]"))
	}
}

func TestUpdateTableParams_Body(t *testing.T) {
	req := UpdateTableParams{BaseID: "app1", TableIDOrName: "tbl1", Description: ptr("")}.Request()

	assert.JSONEq(t, `{"description":""}`, bodyJSON(t, req), "an empty description clears it")
}

func TestCreateCommentParams_Body(t *testing.T) {
	req := CreateCommentParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1", Text: "LGTM"}.Request()
	assert.JSONEq(t, `{"text":"LGTM"}`, bodyJSON(t, req))

	req = CreateCommentParams{BaseID: "app1", TableIDOrName: "Tasks", RecordID: "rec1", Text: "+1", ParentCommentID: "com1"}.Request()
	assert.JSONEq(t, `{"text":"+1","parentCommentId":"com1"}`, bodyJSON(t, req))
}

func TestEnableWebhookNotificationsParams_SendsFalse(t *testing.T) {
	req := EnableWebhookNotificationsParams{BaseID: "app1", WebhookID: "ach1", Enable: false}.Request()

	assert.JSONEq(t, `{"enable":false}`, bodyJSON(t, req))
}

func TestRefreshWebhookParams_NoBody(t *testing.T) {
	assert.Nil(t, RefreshWebhookParams{BaseID: "app1", WebhookID: "ach1"}.Request().Body)
}

func TestListWebhookPayloadsParams_Query(t *testing.T) {
	req := ListWebhookPayloadsParams{BaseID: "app1", WebhookID: "ach1", Cursor: ptr(3), Limit: ptr(10)}.Request()

	assert.Equal(t, "cursor=3&limit=10", req.Query.Encode())
}

func TestAddBaseCollaboratorParams_Body(t *testing.T) {
	tests := []struct {
		name   string
		params AddBaseCollaboratorParams
		want   string
	}{
		{
			name:   "user with default permission",
			params: AddBaseCollaboratorParams{UserID: "usr1"},
			want:   `{"collaborators":[{"user":{"id":"usr1"},"permissionLevel":"read"}]}`,
		},
		{
			name:   "user wins over group",
			params: AddBaseCollaboratorParams{UserID: "usr1", GroupID: "ugp1", PermissionLevel: "edit"},
			want:   `{"collaborators":[{"user":{"id":"usr1"},"permissionLevel":"edit"}]}`,
		},
		{
			name:   "group",
			params: AddBaseCollaboratorParams{GroupID: "ugp1", PermissionLevel: "comment"},
			want:   `{"collaborators":[{"group":{"id":"ugp1"},"permissionLevel":"comment"}]}`,
		},
		{
			name:   "neither",
			params: AddBaseCollaboratorParams{},
			want:   `{"collaborators":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.BaseID = "app1"
			assert.JSONEq(t, tt.want, bodyJSON(t, tt.params.Request()))
		})
	}
}

func TestGetUsersByIDOrEmailParams_Query(t *testing.T) {
	req := GetUsersByIDOrEmailParams{
		EnterpriseAccountID: "ent1",
		UserIDs:             []string{"usr1", "usr2"},
		Emails:              []string{"a@example.com"},
	}.Request()

	assert.Equal(t, Query{
		{Key: "id[]", Value: "usr1"},
		{Key: "id[]", Value: "usr2"},
		{Key: "email[]", Value: "a@example.com"},
	}, req.Query)
}

func TestRemoveUserFromEnterpriseParams_Body(t *testing.T) {
	req := RemoveUserFromEnterpriseParams{EnterpriseAccountID: "ent1", UserID: "usr1", IsDryRun: ptr(true)}.Request()
	assert.JSONEq(t, `{"isDryRun":true}`, bodyJSON(t, req))

	req = RemoveUserFromEnterpriseParams{EnterpriseAccountID: "ent1", UserID: "usr1", ReplacementOwnerID: "usr2", RemoveFromDescendants: ptr(false)}.Request()
	assert.JSONEq(t, `{"replacementOwnerId":"usr2","removeFromDescendants":false}`, bodyJSON(t, req))
}
