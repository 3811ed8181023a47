package airtable

// Shapes of Airtable resources. Responses flow through the gateway as raw
// JSON; these are only populated when a caller decodes an Outcome into them.

// Record is a table row.
type Record struct {
	ID           string         `json:"id"`
	CreatedTime  string         `json:"createdTime"`
	Fields       map[string]any `json:"fields"`
	CommentCount *int           `json:"commentCount,omitempty"`
}

// RecordList is one page of list_records.
type RecordList struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// Field describes a table column.
type Field struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description *string        `json:"description,omitempty"`
	Options     map[string]any `json:"options,omitempty"`
}

// Table describes a table and its fields.
type Table struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	PrimaryFieldID string  `json:"primaryFieldId"`
	Fields         []Field `json:"fields"`
	Views          []View  `json:"views,omitempty"`
}

// BaseSchema is the get_base_schema response.
type BaseSchema struct {
	Tables []Table `json:"tables"`
}

// Base is an entry of list_bases.
type Base struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PermissionLevel string `json:"permissionLevel"`
}

// BaseList is one page of list_bases.
type BaseList struct {
	Bases  []Base `json:"bases"`
	Offset string `json:"offset,omitempty"`
}

// View describes a table view.
type View struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	PersonalForUserID *string  `json:"personalForUserId,omitempty"`
	VisibleFieldIDs   []string `json:"visibleFieldIds,omitempty"`
}

// Comment is a record comment.
type Comment struct {
	ID              string         `json:"id"`
	Text            string         `json:"text"`
	CreatedTime     string         `json:"createdTime"`
	LastUpdatedTime *string        `json:"lastUpdatedTime,omitempty"`
	Author          map[string]any `json:"author"`
}

// CommentList is one page of list_comments.
type CommentList struct {
	Comments []Comment `json:"comments"`
	Offset   *string   `json:"offset,omitempty"`
}

// User is an Airtable user, as returned by whoami and the enterprise endpoints.
type User struct {
	ID     string   `json:"id"`
	Email  *string  `json:"email,omitempty"`
	Name   *string  `json:"name,omitempty"`
	Scopes []string `json:"scopes,omitempty"`
}

// Webhook is a base webhook registration.
type Webhook struct {
	ID                             string  `json:"id"`
	NotificationURL                *string `json:"notificationUrl,omitempty"`
	IsHookEnabled                  bool    `json:"isHookEnabled"`
	AreNotificationsEnabled        bool    `json:"areNotificationsEnabled"`
	CursorForNextPayload           int     `json:"cursorForNextPayload"`
	LastSuccessfulNotificationTime *string `json:"lastSuccessfulNotificationTime,omitempty"`
	ExpirationTime                 *string `json:"expirationTime,omitempty"`
}

// Enterprise is an enterprise account.
type Enterprise struct {
	ID                      string   `json:"id"`
	CreatedTime             string   `json:"createdTime"`
	RootEnterpriseAccountID string   `json:"rootEnterpriseAccountId"`
	UserIDs                 []string `json:"userIds"`
	GroupIDs                []string `json:"groupIds"`
	WorkspaceIDs            []string `json:"workspaceIds"`
}
