package recordstore

import (
	"cmp"
	"fmt"
	"slices"
)

// Matches reports whether a record satisfies every where condition.
func (p FetchParams) Matches(r Record) bool {
	for _, c := range p.Where {
		hit := false
		for _, want := range c.Values {
			if equalValues(lookup(r, c.FieldName), want) {
				hit = true
				break
			}
		}
		switch c.Operator {
		case NotEqualTo:
			if hit {
				return false
			}
		default:
			if !hit {
				return false
			}
		}
	}
	return true
}

// Apply filters, orders, pages and projects records the way a fetch does.
// The input slice is not modified.
func (p FetchParams) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	if len(p.OrderBy) > 0 {
		slices.SortStableFunc(out, func(a, b Record) int {
			for _, o := range p.OrderBy {
				c := compareValues(lookup(a, o.FieldName), lookup(b, o.FieldName))
				if o.SortType == Desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}
	if pg := p.PagingInfo; pg != nil {
		start := min(max(pg.Offset, 0), len(out))
		out = out[start:]
		if pg.Limit > 0 && pg.Limit < len(out) {
			out = out[:pg.Limit]
		}
	}
	if len(p.Fields) > 0 {
		for i, r := range out {
			out[i] = project(r, p.Fields)
		}
	}
	return out
}

func project(r Record, fields []FieldRef) Record {
	out := Record{IDField: r[IDField]}
	for _, f := range fields {
		if v, ok := r[f.Field.Name]; ok {
			out[f.Field.Name] = v
		}
	}
	return out
}

func lookup(r Record, field string) any {
	v := r[field]
	// lookup fields compare by their id
	if m, ok := v.(map[string]any); ok {
		return m[IDField]
	}
	return v
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func equalValues(a, b any) bool {
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return x == y
		}
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
