package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Records converts a fetch payload (a JSON array of objects once decoded)
// into records.
func Records(data any) ([]Record, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case []Record:
		return v, nil
	case []any:
		out := make([]Record, 0, len(v))
		for i, item := range v {
			rec, err := AsRecord(item)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			out = append(out, rec)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unexpected data of type %T", data)
}

// AsRecord converts a single decoded JSON object into a record. A nil value
// gives a nil record.
func AsRecord(data any) (Record, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case Record:
		return v, nil
	case map[string]any:
		return Record(v), nil
	}
	return nil, fmt.Errorf("unexpected record of type %T", data)
}

// ID returns the record identity.
func (r Record) ID() (int, bool) { return r.Int(IDField) }

// Int reads an integer field. Lookup fields come back either as a bare id or
// as an {"Id": n, "Name": ...} object; both are understood.
func (r Record) Int(key string) (int, bool) {
	return toInt(r[key])
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case float64:
		return int(n), n == float64(int(n))
	case json.Number:
		i, err := strconv.Atoi(n.String())
		return i, err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	case map[string]any:
		return toInt(n[IDField])
	case Record:
		return toInt(n[IDField])
	}
	return 0, false
}

// Float reads a numeric field.
func (r Record) Float(key string) (float64, bool) {
	switch n := r[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// String reads a text field; missing and null fields read as "".
func (r Record) String(key string) string {
	switch s := r[key].(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// Bool reads a boolean field; missing fields read as false.
func (r Record) Bool(key string) bool {
	switch b := r[key].(type) {
	case bool:
		return b
	case string:
		v, _ := strconv.ParseBool(b)
		return v
	}
	return false
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
