package airtable

import "net/http"

// ListBasesParams lists the bases the token can access.
type ListBasesParams struct {
	Offset string
}

// Request encodes GET /meta/bases.
func (p ListBasesParams) Request() Request {
	var q Query
	q.AddString("offset", p.Offset)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases"},
		Query:  q,
	}
}

// GetBaseSchemaParams fetches the tables and fields of a base.
type GetBaseSchemaParams struct {
	BaseID  string
	Include []string
}

// Request encodes GET /meta/bases/{base}/tables.
func (p GetBaseSchemaParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases", p.BaseID, "tables"},
		Query:  q,
	}
}

// CreateBaseParams creates a base with its initial tables.
type CreateBaseParams struct {
	Name        string
	WorkspaceID string
	Tables      []map[string]any
}

// Request encodes POST /meta/bases.
func (p CreateBaseParams) Request() Request {
	tables := p.Tables
	if tables == nil {
		tables = []map[string]any{}
	}
	return Request{
		Method: http.MethodPost,
		Path:   []string{"meta", "bases"},
		Body: struct {
			Name        string           `json:"name"`
			WorkspaceID string           `json:"workspaceId"`
			Tables      []map[string]any `json:"tables"`
		}{p.Name, p.WorkspaceID, tables},
	}
}

// GetBaseCollaboratorsParams fetches a base with its collaborators.
type GetBaseCollaboratorsParams struct {
	BaseID  string
	Include []string
}

// Request encodes GET /meta/bases/{base}.
func (p GetBaseCollaboratorsParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases", p.BaseID},
		Query:  q,
	}
}

// DeleteBaseParams deletes a base.
type DeleteBaseParams struct {
	BaseID string
}

// Request encodes DELETE /meta/bases/{base}.
func (p DeleteBaseParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{"meta", "bases", p.BaseID},
	}
}
