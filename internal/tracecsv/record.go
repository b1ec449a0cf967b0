package tracecsv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// stateKey is the nested object every trace record is expected to carry.
const stateKey = "State"

// Record is an insertion-order-preserving JSON object. The field set of a trace
// record is only known at runtime, so records are ordered key/value containers
// rather than structs; key order is what later defines the column registry.
type Record struct {
	keys []string
	vals map[string]any
}

func newRecord() *Record {
	return &Record{vals: make(map[string]any)}
}

// Set stores v under key, appending the key to the order on first write.
// Re-setting an existing key keeps its original position (last write wins on
// the value only).
func (r *Record) Set(key string, v any) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Delete removes key from the record and from the key order.
func (r *Record) Delete(key string) {
	if _, ok := r.vals[key]; !ok {
		return
	}
	delete(r.vals, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the record's keys in insertion order. The slice is shared with
// the record; callers must not modify it.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// ParseRecord decodes one JSON object line into an ordered Record. Numbers are
// kept as json.Number so their original literal text survives into the CSV
// (a model writing "2.0" stays "2.0", not "2"). Nested objects become nested
// Records.
func ParseRecord(line string) (*Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	rec, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON object")
	}
	return rec, nil
}

func decodeObject(dec *json.Decoder) (*Record, error) {
	rec := newRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON: object key is %T", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		rec.Set(key, v)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return rec, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); ok {
		switch d {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("invalid JSON: unexpected %q", d.String())
	}
	// string, json.Number, bool, or nil
	return tok, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	var out []any
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return out, nil
}

// flattenState merges the keys of the record's State object into the record's
// top level, in State's own key order, then removes State itself. Key
// collisions overwrite the top-level value in place. A record without a State
// object is malformed.
func (r *Record) flattenState() error {
	v, ok := r.Get(stateKey)
	if !ok {
		return fmt.Errorf("record has no %q field", stateKey)
	}
	st, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("record field %q is not an object", stateKey)
	}
	for _, k := range st.keys {
		r.Set(k, st.vals[k])
	}
	r.Delete(stateKey)
	return nil
}

// cellString renders a record value the way it should appear in a CSV cell.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// floatField parses the named field as a float64 for rank sorting.
func (r *Record) floatField(key string) (float64, error) {
	v, ok := r.Get(key)
	if !ok {
		return 0, fmt.Errorf("record has no %q value", key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(cellString(v)), 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
	}
	return f, nil
}
