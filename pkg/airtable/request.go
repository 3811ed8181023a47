package airtable

import (
	"net/http"
	"strings"
)

// Request is a fully encoded Airtable call. Path holds the segments joined
// under the API base URL; each is escaped on its own.
type Request struct {
	Method string
	Path   []string
	Query  Query
	Body   any         // marshaled as JSON when non-nil
	Header http.Header // extra headers, override the defaults
}

// PathString returns the unescaped path for logging.
func (r Request) PathString() string {
	return "/" + strings.Join(r.Path, "/")
}
