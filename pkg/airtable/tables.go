package airtable

import "net/http"

// CreateTableParams creates a table in a base.
type CreateTableParams struct {
	BaseID      string
	Name        string
	Fields      []map[string]any
	Description string
}

// Request encodes POST /meta/bases/{base}/tables.
func (p CreateTableParams) Request() Request {
	fields := p.Fields
	if fields == nil {
		fields = []map[string]any{}
	}
	return Request{
		Method: http.MethodPost,
		Path:   []string{"meta", "bases", p.BaseID, "tables"},
		Body: struct {
			Name        string           `json:"name"`
			Fields      []map[string]any `json:"fields"`
			Description string           `json:"description,omitempty"`
		}{p.Name, fields, p.Description},
	}
}

// UpdateTableParams renames a table or changes its description.
// A non-nil empty Description clears it.
type UpdateTableParams struct {
	BaseID        string
	TableIDOrName string
	Name          *string
	Description   *string
}

// Request encodes PATCH /meta/bases/{base}/tables/{table}.
func (p UpdateTableParams) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   []string{"meta", "bases", p.BaseID, "tables", p.TableIDOrName},
		Body:   metadataPatch{Name: p.Name, Description: p.Description},
	}
}

// metadataPatch is the body shared by table and field metadata updates.
type metadataPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateFieldParams adds a field to a table.
type CreateFieldParams struct {
	BaseID      string
	TableID     string
	Name        string
	Type        string
	Description *string
	Options     map[string]any
}

// Request encodes POST /meta/bases/{base}/tables/{table}/fields.
func (p CreateFieldParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{"meta", "bases", p.BaseID, "tables", p.TableID, "fields"},
		Body: struct {
			Name        string         `json:"name"`
			Type        string         `json:"type"`
			Description *string        `json:"description,omitempty"`
			Options     map[string]any `json:"options,omitempty"`
		}{p.Name, p.Type, p.Description, p.Options},
	}
}

// UpdateFieldParams renames a field or changes its description.
type UpdateFieldParams struct {
	BaseID      string
	TableID     string
	FieldID     string
	Name        *string
	Description *string
}

// Request encodes PATCH /meta/bases/{base}/tables/{table}/fields/{field}.
func (p UpdateFieldParams) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   []string{"meta", "bases", p.BaseID, "tables", p.TableID, "fields", p.FieldID},
		Body:   metadataPatch{Name: p.Name, Description: p.Description},
	}
}
