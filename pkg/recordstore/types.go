// Package recordstore speaks the backend record protocol: table-scoped
// fetch/get/create/update/delete calls answered with a success envelope.
package recordstore

import "context"

// Record is one backend record: backend field names (Name_c, FarmId_c, ...)
// plus the store-assigned "Id".
type Record map[string]any

// IDField is the identity key of every record.
const IDField = "Id"

type FieldRef struct {
	Field struct {
		Name string `json:"Name"`
	} `json:"field"`
}

// Fields builds the field list of a fetch.
func Fields(names ...string) []FieldRef {
	out := make([]FieldRef, len(names))
	for i, n := range names {
		out[i].Field.Name = n
	}
	return out
}

type Operator string

const (
	EqualTo    Operator = "EqualTo"
	NotEqualTo Operator = "NotEqualTo"
)

type Condition struct {
	FieldName string   `json:"FieldName"`
	Operator  Operator `json:"Operator"`
	Values    []any    `json:"Values"`
}

type SortType string

const (
	Asc  SortType = "ASC"
	Desc SortType = "DESC"
)

type OrderBy struct {
	FieldName string   `json:"fieldName"`
	SortType  SortType `json:"sorttype"`
}

type Paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type FetchParams struct {
	Fields     []FieldRef  `json:"fields,omitempty"`
	Where      []Condition `json:"where,omitempty"`
	OrderBy    []OrderBy   `json:"orderBy,omitempty"`
	PagingInfo *Paging     `json:"pagingInfo,omitempty"`
}

type RecordsParams struct {
	Records []Record `json:"records"`
}

type DeleteParams struct {
	RecordIds []int `json:"RecordIds"`
}

// Result is the per-record outcome of a write.
type Result struct {
	Success bool   `json:"success"`
	Data    Record `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Response is the envelope every call answers with. Fetch fills Data with a
// list, get fills it with a single record; writes fill Results.
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results,omitempty"`
}

// FirstFailure returns the first failed result, if any.
func (r *Response) FirstFailure() (Result, bool) {
	for _, res := range r.Results {
		if !res.Success {
			return res, true
		}
	}
	return Result{}, false
}

// Backend is anything that answers the record protocol.
type Backend interface {
	FetchRecords(ctx context.Context, table string, p FetchParams) (*Response, error)
	GetRecordByID(ctx context.Context, table string, id int, p FetchParams) (*Response, error)
	CreateRecord(ctx context.Context, table string, p RecordsParams) (*Response, error)
	UpdateRecord(ctx context.Context, table string, p RecordsParams) (*Response, error)
	DeleteRecord(ctx context.Context, table string, p DeleteParams) (*Response, error)
}
