package airtable

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParam is one key/value pair of a query string.
type QueryParam struct {
	Key   string
	Value string
}

// Query is an ordered multimap of query parameters. Unlike url.Values it
// keeps insertion order across keys, which the bracket-indexed sort keys
// rely on.
type Query []QueryParam

// SortSpec orders list_records results by one field.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// Add appends a parameter unconditionally.
func (q *Query) Add(key, value string) {
	*q = append(*q, QueryParam{Key: key, Value: value})
}

// AddString appends a parameter unless value is empty.
func (q *Query) AddString(key, value string) {
	if value == "" {
		return
	}
	q.Add(key, value)
}

// AddInt appends a parameter unless value is nil.
func (q *Query) AddInt(key string, value *int) {
	if value == nil {
		return
	}
	q.Add(key, strconv.Itoa(*value))
}

// AddBool appends "true" or "false" unless value is nil. An explicit false
// is kept so it stays distinguishable from "unset".
func (q *Query) AddBool(key string, value *bool) {
	if value == nil {
		return
	}
	q.Add(key, strconv.FormatBool(*value))
}

// AddArray appends one "name[]" parameter per value, in order.
func (q *Query) AddArray(name string, values []string) {
	for _, v := range values {
		q.Add(name+"[]", v)
	}
}

// AddSort appends sort[i][field] and sort[i][direction] for each spec, in
// order. Empty members are omitted. Only the two keys Airtable defines for
// a sort object are encoded, always field before direction; any other keys
// a caller sends are dropped when the spec is parsed.
func (q *Query) AddSort(specs []SortSpec) {
	for i, spec := range specs {
		prefix := "sort[" + strconv.Itoa(i) + "]"
		q.AddString(prefix+"[field]", spec.Field)
		q.AddString(prefix+"[direction]", spec.Direction)
	}
}

// Get returns every value for key in insertion order.
func (q Query) Get(key string) []string {
	var values []string
	for _, p := range q {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// Encode renders the query in insertion order, escaping keys and values.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
