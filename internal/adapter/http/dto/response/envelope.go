package response

import (
	"encoding/json"

	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/pkg"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Envelope is the body of every successful response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Results *int   `json:"results,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Page    *int   `json:"page,omitempty"`
	Pages   *int   `json:"pages,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: pkg.StatusSuccess, Data: data}
}

func SuccessMessage(message string, data any) Envelope {
	return Envelope{Status: pkg.StatusSuccess, Message: message, Data: data}
}

// List maps a page of records and applies the field projection, if any.
func List[T any, R any](page query.Page[T], fields []string, mapFn func(T) R) Envelope {
	data := make([]any, 0, len(page.Items))
	for _, it := range page.Items {
		data = append(data, Project(mapFn(it), fields))
	}
	results := len(data)
	return Envelope{
		Status:  pkg.StatusSuccess,
		Data:    data,
		Results: &results,
		Total:   &page.Total,
		Page:    &page.Page,
		Pages:   &page.Pages,
	}
}

// Project keeps only the requested top-level fields of v. id is always kept.
// With no fields v is returned unchanged.
func Project(v any, fields []string) any {
	if len(fields) == 0 {
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var full map[string]json.RawMessage
	if err := json.Unmarshal(b, &full); err != nil {
		return v
	}
	out := make(map[string]json.RawMessage, len(fields)+1)
	if id, ok := full["id"]; ok {
		out["id"] = id
	}
	for _, f := range fields {
		if raw, ok := full[f]; ok {
			out[f] = raw
		}
	}
	return out
}
