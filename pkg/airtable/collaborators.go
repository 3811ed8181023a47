package airtable

import "net/http"

// DefaultPermissionLevel is granted when AddBaseCollaboratorParams has none.
const DefaultPermissionLevel = "read"

// AddBaseCollaboratorParams grants a user or a group access to a base.
// UserID takes precedence over GroupID.
type AddBaseCollaboratorParams struct {
	BaseID          string
	UserID          string
	GroupID         string
	PermissionLevel string
}

type collaboratorRef struct {
	ID string `json:"id"`
}

type collaboratorGrant struct {
	User            *collaboratorRef `json:"user,omitempty"`
	Group           *collaboratorRef `json:"group,omitempty"`
	PermissionLevel string           `json:"permissionLevel"`
}

// Request encodes POST /meta/bases/{base}/collaborators.
func (p AddBaseCollaboratorParams) Request() Request {
	level := p.PermissionLevel
	if level == "" {
		level = DefaultPermissionLevel
	}

	collaborators := []collaboratorGrant{}
	switch {
	case p.UserID != "":
		collaborators = append(collaborators, collaboratorGrant{User: &collaboratorRef{ID: p.UserID}, PermissionLevel: level})
	case p.GroupID != "":
		collaborators = append(collaborators, collaboratorGrant{Group: &collaboratorRef{ID: p.GroupID}, PermissionLevel: level})
	}

	return Request{
		Method: http.MethodPost,
		Path:   []string{"meta", "bases", p.BaseID, "collaborators"},
		Body: struct {
			Collaborators []collaboratorGrant `json:"collaborators"`
		}{collaborators},
	}
}

// UpdateCollaboratorBasePermissionParams changes a collaborator's permission.
type UpdateCollaboratorBasePermissionParams struct {
	BaseID          string
	UserOrGroupID   string
	PermissionLevel string
}

// Request encodes PATCH /meta/bases/{base}/collaborators/{user_or_group}.
func (p UpdateCollaboratorBasePermissionParams) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   []string{"meta", "bases", p.BaseID, "collaborators", p.UserOrGroupID},
		Body: struct {
			PermissionLevel string `json:"permissionLevel"`
		}{p.PermissionLevel},
	}
}

// DeleteBaseCollaboratorParams removes a collaborator from a base.
type DeleteBaseCollaboratorParams struct {
	BaseID        string
	UserOrGroupID string
}

// Request encodes DELETE /meta/bases/{base}/collaborators/{user_or_group}.
func (p DeleteBaseCollaboratorParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{"meta", "bases", p.BaseID, "collaborators", p.UserOrGroupID},
	}
}

// GetWorkspaceCollaboratorsParams fetches a workspace with its collaborators.
type GetWorkspaceCollaboratorsParams struct {
	WorkspaceID string
	Include     []string
}

// Request encodes GET /meta/workspaces/{workspace}.
func (p GetWorkspaceCollaboratorsParams) Request() Request {
	var q Query
	q.AddArray("include", p.Include)

	return Request{
		Method: http.MethodGet,
		Path:   []string{"meta", "workspaces", p.WorkspaceID},
		Query:  q,
	}
}
