package airtable

import "net/http"

// GetUserInfoParams fetches the user the token belongs to.
type GetUserInfoParams struct{}

// Request encodes GET /meta/whoami.
func (GetUserInfoParams) Request() Request {
	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "whoami"},
	}
}

// GetEnterpriseParams fetches an enterprise account.
type GetEnterpriseParams struct {
	EnterpriseAccountID string
	Include             []string
}

// Request encodes GET /meta/enterpriseAccounts/{enterprise}.
func (p GetEnterpriseParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "enterpriseAccounts", p.EnterpriseAccountID},
		Query:  q,
	}
}

// GetUserByIDParams fetches one enterprise user.
type GetUserByIDParams struct {
	EnterpriseAccountID string
	UserID              string
	Include             []string
}

// Request encodes GET /meta/enterpriseAccounts/{enterprise}/users/{user}.
func (p GetUserByIDParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "enterpriseAccounts", p.EnterpriseAccountID, "users", p.UserID},
		Query:  q,
	}
}

// GetUsersByIDOrEmailParams looks up enterprise users by id and/or email.
type GetUsersByIDOrEmailParams struct {
	EnterpriseAccountID string
	UserIDs             []string
	Emails              []string
	Include             []string
}

// Request encodes GET /meta/enterpriseAccounts/{enterprise}/users?id[]=...&email[]=...
func (p GetUsersByIDOrEmailParams) Request() Request {
	var q Query
	q.AddArray("id", p.UserIDs)
	q.AddArray("email", p.Emails)
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "enterpriseAccounts", p.EnterpriseAccountID, "users"},
		Query:  q,
	}
}

// RemoveUserFromEnterpriseParams removes a user from an enterprise account.
type RemoveUserFromEnterpriseParams struct {
	EnterpriseAccountID   string
	UserID                string
	ReplacementOwnerID    string
	RemoveFromDescendants *bool
	IsDryRun              *bool
}

// Request encodes POST /meta/enterpriseAccounts/{enterprise}/users/{user}/remove.
func (p RemoveUserFromEnterpriseParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{"meta", "enterpriseAccounts", p.EnterpriseAccountID, "users", p.UserID, "remove"},
		Body: struct {
			ReplacementOwnerID    string `json:"replacementOwnerId,omitempty"`
			RemoveFromDescendants *bool  `json:"removeFromDescendants,omitempty"`
			IsDryRun              *bool  `json:"isDryRun,omitempty"`
		}{p.ReplacementOwnerID, p.RemoveFromDescendants, p.IsDryRun},
	}
}

// ListSharesParams lists the shares of a base.
type ListSharesParams struct {
	BaseID string
}

// Request encodes GET /meta/bases/{base}/shares.
func (p ListSharesParams) Request() Request {
	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "bases", p.BaseID, "shares"},
	}
}

// DeleteShareParams deletes a base share.
type DeleteShareParams struct {
	BaseID  string
	ShareID string
}

// Request encodes DELETE /meta/bases/{base}/shares/{share}.
func (p DeleteShareParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{"meta", "bases", p.BaseID, "shares", p.ShareID},
	}
}
