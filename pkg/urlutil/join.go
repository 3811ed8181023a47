// Package urlutil builds outbound request URLs.
package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// JoinPath parses baseURL and appends each segment as a single escaped path
// element, so values containing spaces or slashes stay inside their segment.
// Empty, "." and ".." segments are rejected since they would not address
// their own path element. Any query or fragment on baseURL is dropped.
func JoinPath(baseURL string, segments ...string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q is not absolute", baseURL)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(u.EscapedPath(), "/"))
	for _, seg := range segments {
		switch seg {
		case "":
			return nil, fmt.Errorf("empty path segment")
		case ".", "..":
			return nil, fmt.Errorf("invalid path segment %q", seg)
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	rawPath := b.String()
	if rawPath == "" {
		rawPath = "/"
	}

	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	u.Path = decoded
	u.RawPath = rawPath
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}

// StripQuery returns u as a string without its query, for logging.
func StripQuery(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	clean.RawQuery = ""
	return clean.String()
}
