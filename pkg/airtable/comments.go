package airtable

import "net/http"

// ListCommentsParams lists comments on a record, newest first.
type ListCommentsParams struct {
	BaseID        string
	TableIDOrName string
	RecordID      string
	PageSize      *int
	Offset        string
}

// Request encodes GET /{base}/{table}/{record}/comments.
func (p ListCommentsParams) Request() Request {
	var q Query
	q.AddInt("pageSize", p.PageSize)
	q.AddString("offset", p.Offset)

	return Request{
		Method: http.MethodGet,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID, "comments"},
		Query:  q,
	}
}

// CreateCommentParams comments on a record, optionally as a threaded reply.
type CreateCommentParams struct {
	BaseID          string
	TableIDOrName   string
	RecordID        string
	Text            string
	ParentCommentID string
}

// Request encodes POST /{base}/{table}/{record}/comments.
func (p CreateCommentParams) Request() Request {
	return Request{
		Method: http.MethodPost,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID, "comments"},
		Body: struct {
			Text            string `json:"text"`
			ParentCommentID string `json:"parentCommentId,omitempty"`
		}{p.Text, p.ParentCommentID},
	}
}

// UpdateCommentParams replaces the text of a comment.
type UpdateCommentParams struct {
	BaseID        string
	TableIDOrName string
	RecordID      string
	CommentID     string
	Text          string
}

// Request encodes PATCH /{base}/{table}/{record}/comments/{comment}.
func (p UpdateCommentParams) Request() Request {
	return Request{
		Method: http.MethodPatch,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID, "comments", p.CommentID},
		Body: struct {
			Text string `json:"text"`
		}{p.Text},
	}
}

// DeleteCommentParams deletes a comment.
type DeleteCommentParams struct {
	BaseID        string
	TableIDOrName string
	RecordID      string
	CommentID     string
}

// Request encodes DELETE /{base}/{table}/{record}/comments/{comment}.
func (p DeleteCommentParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID, "comments", p.CommentID},
	}
}
