package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// fields holds the members of a JSON object which have not yet been
// decoded into a typed field
type fields map[string]json.RawMessage

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	errNotObject = errors.New("expected a JSON object")
	jsonNull     = []byte("null")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns v as indented JSON, or the marshalling error
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// objectFields splits a JSON object into its members
func objectFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	} else if f == nil {
		return nil, errNotObject
	}
	return f, nil
}

// require decodes the member key into v and removes it. A missing or
// null member is an error.
func (f fields) require(key string, v any) error {
	raw, exists := f[key]
	if !exists || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return fmt.Errorf("missing field %q", key)
	}
	delete(f, key)
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// optional decodes the member key into v and removes it, if it exists
func (f fields) optional(key string, v any) error {
	raw, exists := f[key]
	if !exists {
		return nil
	}
	delete(f, key)
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// extra decodes the members which remain, or returns nil if there are none
func (f fields) extra() (map[string]any, error) {
	if len(f) == 0 {
		return nil, nil
	}
	result := make(map[string]any, len(f))
	for key, raw := range f {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		result[key] = v
	}
	return result, nil
}

// merge returns a JSON object with the typed members of v and any extra
// members which do not collide with them
func merge(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var object map[string]any
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, exists := object[key]; !exists {
			object[key] = value
		}
	}
	return json.Marshal(object)
}
