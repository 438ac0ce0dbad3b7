// Package query holds the list options shared by every collection endpoint:
// equality/regex filters, sort, field projection and pagination.
package query

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	DefaultSort  = "-createdAt"
)

var reserved = map[string]bool{"page": true, "limit": true, "sort": true, "fields": true}

// ListQuery describes a list request.
//
// Filters are equality matches pushed down to the store; Patterns are regular
// expressions applied after the scan. Limit 0 means "no pagination".
type ListQuery struct {
	Filters  map[string]string
	Patterns map[string]*regexp.Regexp
	Sort     []string
	Fields   []string
	Page     int
	Limit    int
}

// Page is a slice of results plus pagination metadata.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Pages int
}

// All returns a query without pagination and with the default sort.
func All() ListQuery {
	return ListQuery{Sort: []string{DefaultSort}, Page: DefaultPage}
}

// Parse builds a ListQuery from URL query values. Invalid page/limit values
// fall back to the defaults; invalid regular expressions are reported.
func Parse(values url.Values) (ListQuery, error) {
	q := ListQuery{
		Filters:  map[string]string{},
		Patterns: map[string]*regexp.Regexp{},
		Sort:     []string{DefaultSort},
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	if v, err := strconv.Atoi(values.Get("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		q.Limit = v
	}
	if s := strings.TrimSpace(values.Get("sort")); s != "" {
		q.Sort = splitList(s)
	}
	if f := strings.TrimSpace(values.Get("fields")); f != "" {
		q.Fields = splitList(f)
	}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		if field, ok := strings.CutSuffix(key, "[regex]"); ok {
			re, err := regexp.Compile(vals[0])
			if err != nil {
				return ListQuery{}, err
			}
			q.Patterns[field] = re
			continue
		}
		q.Filters[key] = vals[0]
	}
	return q, nil
}

// WithFilter returns a copy of q with an extra equality filter.
func (q ListQuery) WithFilter(field, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[field] = value
	q.Filters = filters
	return q
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Field exposes a sortable/matchable attribute of T. The returned value must
// be a string, time.Time, decimal.Decimal, *decimal.Decimal or bool.
type Field[T any] func(T) any

// Apply runs regex filters, sort and pagination over already scanned items.
// Unknown sort or pattern fields are ignored.
func Apply[T any](items []T, q ListQuery, fields map[string]Field[T]) Page[T] {
	filtered := items
	if len(q.Patterns) > 0 {
		filtered = make([]T, 0, len(items))
		for _, it := range items {
			if matchesAll(it, q.Patterns, fields) {
				filtered = append(filtered, it)
			}
		}
	}

	sortItems(filtered, q.Sort, fields)

	total := len(filtered)
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	if q.Limit <= 0 {
		return Page[T]{Items: filtered, Total: total, Page: 1, Pages: 1}
	}

	pages := int(math.Ceil(float64(total) / float64(q.Limit)))
	start := (page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return Page[T]{Items: filtered[start:end], Total: total, Page: page, Pages: pages}
}

func matchesAll[T any](it T, patterns map[string]*regexp.Regexp, fields map[string]Field[T]) bool {
	for name, re := range patterns {
		f, ok := fields[name]
		if !ok {
			continue
		}
		if !re.MatchString(stringOf(f(it))) {
			return false
		}
	}
	return true
}

func sortItems[T any](items []T, keys []string, fields map[string]Field[T]) {
	type sortKey struct {
		get  Field[T]
		desc bool
	}
	resolved := make([]sortKey, 0, len(keys))
	for _, k := range keys {
		desc := strings.HasPrefix(k, "-")
		name := strings.TrimPrefix(k, "-")
		if f, ok := fields[name]; ok {
			resolved = append(resolved, sortKey{get: f, desc: desc})
		}
	}
	if len(resolved) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, k := range resolved {
			c := compare(k.get(items[i]), k.get(items[j]))
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		return strings.Compare(av, b.(string))
	case time.Time:
		return av.Compare(b.(time.Time))
	case decimal.Decimal:
		return av.Cmp(b.(decimal.Decimal))
	case *decimal.Decimal:
		bv := b.(*decimal.Decimal)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return -1
		case bv == nil:
			return 1
		}
		return av.Cmp(*bv)
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	}
	return 0
}

func stringOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}
