package airtable

import "net/http"

// ListViewsParams lists the views of a base.
type ListViewsParams struct {
	BaseID  string
	Include []string
}

// Request encodes GET /meta/bases/{base}/views.
func (p ListViewsParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases", p.BaseID, "views"},
		Query:  q,
	}
}

// GetViewMetadataParams fetches one view.
type GetViewMetadataParams struct {
	BaseID  string
	ViewID  string
	Include []string
}

// Request encodes GET /meta/bases/{base}/views/{view}.
func (p GetViewMetadataParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases", p.BaseID, "views", p.ViewID},
		Query:  q,
	}
}

// DeleteViewParams deletes a view.
type DeleteViewParams struct {
	BaseID string
	ViewID string
}

// Request encodes DELETE /meta/bases/{base}/views/{view}.
func (p DeleteViewParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{"meta", "bases", p.BaseID, "views", p.ViewID},
	}
}
