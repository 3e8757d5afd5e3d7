// Package jsonobj encodes and decodes JSON objects whose known members are
// written in a fixed order and whose unknown members are carried through
// untouched.
package jsonobj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Field is one member of an ordered object.
type Field struct {
	Key   string
	Value any
}

// Marshal writes fields in order, then every member of extra whose key is
// not among fields, sorted by key.
func Marshal(fields []Field, extra map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	known := make(map[string]struct{}, len(fields))
	n := 0
	write := func(key string, raw []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key) // string keys always encode
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(raw)
		n++
	}

	for _, f := range fields {
		raw, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("jsonobj: field %q: %w", f.Key, err)
		}
		known[f.Key] = struct{}{}
		write(f.Key, raw)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if _, ok := known[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		raw := extra[k]
		if len(raw) == 0 {
			raw = json.RawMessage("null")
		}
		write(k, raw)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Split decodes data as an object into its raw members.
func Split(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		// JSON null
		m = make(map[string]json.RawMessage)
	}
	return m, nil
}

// Take decodes member key of m into v and removes it from m.
// It reports whether the member was present and not null.
func Take(m map[string]json.RawMessage, key string, v any) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	delete(m, key)
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("jsonobj: member %q: %w", key, err)
	}
	return true, nil
}
