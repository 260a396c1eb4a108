// Package record defines the uniform result row produced by a parse.
// Records are ordered field-to-value mappings. Field order follows the
// template's declaration order, and renderers must not re-sort it.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one structured result row. Fields keep insertion order.
type Record struct {
	fields []string
	values map[string]any
}

// New creates an empty record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under field, appending the field on first use.
// Setting an existing field overwrites its value in place.
func (r *Record) Set(field string, value any) {
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Get returns the raw value for field and whether it is present.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// String renders the value for field as display text.
// Absent fields render as the empty string.
func (r *Record) String(field string) string {
	v, ok := r.values[field]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// Fields returns the field names in insertion order.
// The returned slice is shared; callers must not mutate it.
func (r *Record) Fields() []string {
	return r.fields
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// MarshalJSON emits the record as a JSON object with fields in
// insertion order. encoding/json would sort map keys, which loses the
// template's declaration order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[field])
		if err != nil {
			return nil, fmt.Errorf("marshaling field %q: %w", field, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
