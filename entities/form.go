package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of every date field (plantingDate, dueDate, ...).
const DateLayout = "2006-01-02"

// FormValue is a string-typed form input. Browser forms post everything as
// strings, but API callers often send plain numbers, so both are accepted.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("form value: %w", err)
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) String() string { return string(v) }

// Empty reports whether the value is blank after trimming.
func (v FormValue) Empty() bool { return strings.TrimSpace(string(v)) == "" }

// Int parses the value as a base-10 integer.
func (v FormValue) Int() (int, error) {
	s := strings.TrimSpace(string(v))
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// "3.0" still names record 3.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

// Float parses the value as a decimal number.
func (v FormValue) Float() (float64, error) {
	s := strings.TrimSpace(string(v))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// IntValue formats n the way a form would hold it.
func IntValue(n int) FormValue { return FormValue(strconv.Itoa(n)) }

// FloatValue formats f the way a form would hold it.
func FloatValue(f float64) FormValue { return FormValue(strconv.FormatFloat(f, 'f', -1, 64)) }

// ParseDate parses a YYYY-MM-DD date in UTC. Longer ISO timestamps are accepted
// and truncated to their date part.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC(), nil
		}
		s = s[:len(DateLayout)]
	}
	return time.Parse(DateLayout, s)
}
