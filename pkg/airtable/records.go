package airtable

import "net/http"

// ListRecordsParams lists records in a table.
type ListRecordsParams struct {
	BaseID          string
	TableIDOrName   string
	Fields          []string
	FilterByFormula string
	MaxRecords      *int
	PageSize        *int
	Sort            []SortSpec
	View            string
	CellFormat      string
	TimeZone        string
	UserLocale      string
	Offset          string
}

// Request encodes GET /{base}/{table}.
func (p ListRecordsParams) Request() Request {
	var q Query
	q.AddArray("fields", p.Fields)
	q.AddString("filterByFormula", p.FilterByFormula)
	q.AddInt("maxRecords", p.MaxRecords)
	q.AddInt("pageSize", p.PageSize)
	q.AddString("view", p.View)
	q.AddString("cellFormat", p.CellFormat)
	q.AddString("timeZone", p.TimeZone)
	q.AddString("userLocale", p.UserLocale)
	q.AddString("offset", p.Offset)
	q.AddSort(p.Sort)

	return Request{
		Method: http.MethodGet,
		Path:   []string{p.BaseID, p.TableIDOrName},
		Query:  q,
	}
}

// GetRecordParams retrieves a single record.
type GetRecordParams struct {
	BaseID                string
	TableIDOrName         string
	RecordID              string
	CellFormat            string
	ReturnFieldsByFieldID *bool
}

// Request encodes GET /{base}/{table}/{record}.
func (p GetRecordParams) Request() Request {
	var q Query
	q.AddString("cellFormat", p.CellFormat)
	q.AddBool("returnFieldsByFieldId", p.ReturnFieldsByFieldID)

	return Request{
		Method: http.MethodGet,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID},
		Query:  q,
	}
}

// createRecordsBody carries at most one of Records and Fields.
type createRecordsBody struct {
	Records               []map[string]any `json:"records,omitempty"`
	Fields                map[string]any   `json:"fields,omitempty"`
	Typecast              *bool            `json:"typecast,omitempty"`
	ReturnFieldsByFieldID *bool            `json:"returnFieldsByFieldId,omitempty"`
}

type upsertOptions struct {
	FieldsToMergeOn []string `json:"fieldsToMergeOn"`
}

// CreateRecordsParams creates one record (Fields) or a batch (Records).
// A non-empty Records batch takes precedence over Fields.
type CreateRecordsParams struct {
	BaseID                string
	TableIDOrName         string
	Records               []map[string]any
	Fields                map[string]any
	Typecast              *bool
	ReturnFieldsByFieldID *bool
}

// Request encodes POST /{base}/{table}.
func (p CreateRecordsParams) Request() Request {
	body := createRecordsBody{
		Typecast:              p.Typecast,
		ReturnFieldsByFieldID: p.ReturnFieldsByFieldID,
	}
	if len(p.Records) > 0 {
		body.Records = p.Records
	} else if len(p.Fields) > 0 {
		body.Fields = p.Fields
	}

	return Request{
		Method: http.MethodPost,
		Path:   []string{p.BaseID, p.TableIDOrName},
		Body:   body,
	}
}

// UpdateRecordParams updates a single record.
type UpdateRecordParams struct {
	BaseID                string
	TableIDOrName         string
	RecordID              string
	Fields                map[string]any
	Typecast              *bool
	ReturnFieldsByFieldID *bool
}

// Request encodes PATCH /{base}/{table}/{record}.
func (p UpdateRecordParams) Request() Request {
	fields := p.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return Request{
		Method: http.MethodPatch,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID},
		Body: struct {
			Fields                map[string]any `json:"fields"`
			Typecast              *bool          `json:"typecast,omitempty"`
			ReturnFieldsByFieldID *bool          `json:"returnFieldsByFieldId,omitempty"`
		}{fields, p.Typecast, p.ReturnFieldsByFieldID},
	}
}

// UpdateMultipleRecordsParams updates a batch of records. When PerformUpsert
// is true, or FieldsToMergeOn is given, records are matched on the merge
// fields and created when no match exists. The merge fields are passed
// through as given.
type UpdateMultipleRecordsParams struct {
	BaseID                string
	TableIDOrName         string
	Records               []map[string]any
	Typecast              *bool
	ReturnFieldsByFieldID *bool
	PerformUpsert         *bool
	FieldsToMergeOn       []string
}

// Request encodes PATCH /{base}/{table}.
func (p UpdateMultipleRecordsParams) Request() Request {
	records := p.Records
	if records == nil {
		records = []map[string]any{}
	}
	body := struct {
		Records               []map[string]any `json:"records"`
		Typecast              *bool            `json:"typecast,omitempty"`
		ReturnFieldsByFieldID *bool            `json:"returnFieldsByFieldId,omitempty"`
		PerformUpsert         *upsertOptions   `json:"performUpsert,omitempty"`
	}{
		Records:               records,
		Typecast:              p.Typecast,
		ReturnFieldsByFieldID: p.ReturnFieldsByFieldID,
	}

	upsert := p.PerformUpsert != nil && *p.PerformUpsert
	if p.PerformUpsert == nil && len(p.FieldsToMergeOn) > 0 {
		upsert = true
	}
	if upsert {
		merge := p.FieldsToMergeOn
		if merge == nil {
			merge = []string{}
		}
		body.PerformUpsert = &upsertOptions{FieldsToMergeOn: merge}
	}

	return Request{
		Method: http.MethodPatch,
		Path:   []string{p.BaseID, p.TableIDOrName},
		Body:   body,
	}
}

// DeleteRecordParams deletes a single record.
type DeleteRecordParams struct {
	BaseID        string
	TableIDOrName string
	RecordID      string
}

// Request encodes DELETE /{base}/{table}/{record}.
func (p DeleteRecordParams) Request() Request {
	return Request{
		Method: http.MethodDelete,
		Path:   []string{p.BaseID, p.TableIDOrName, p.RecordID},
	}
}

// DeleteMultipleRecordsParams deletes records by id.
type DeleteMultipleRecordsParams struct {
	BaseID        string
	TableIDOrName string
	RecordIDs     []string
}

// Request encodes DELETE /{base}/{table}?records[]=...
func (p DeleteMultipleRecordsParams) Request() Request {
	var q Query
	q.AddArray("records", p.RecordIDs)

	return Request{
		Method: http.MethodDelete,
		Path:   []string{p.BaseID, p.TableIDOrName},
		Query:  q,
	}
}
