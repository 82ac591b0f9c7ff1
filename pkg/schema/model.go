package schema

import (
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes a model which can be used with the API. The permission
// schema is not stable upstream, so it is kept as an untyped value. Fields
// which are not modelled are retained in Extra.
type Model struct {
	Id         string         `json:"id"`
	Object     string         `json:"object"`
	OwnedBy    string         `json:"owned_by"`
	Permission any            `json:"permission,omitempty"`
	Extra      map[string]any `json:"-"`
}

// ModelList is the response from listing models
type ModelList struct {
	Data   []Model        `json:"data"`
	Object string         `json:"object"`
	Extra  map[string]any `json:"-"`
}

// model and modelList have the same fields as Model and ModelList, without
// the marshalling methods
type model Model
type modelList ModelList

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}

func (m ModelList) String() string {
	return Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreatedAt returns the creation time of the model from the "created"
// field, or the zero time if it is missing or not a unix timestamp
func (m Model) CreatedAt() time.Time {
	if ts, ok := m.Extra["created"].(float64); ok && ts > 0 {
		return time.Unix(int64(ts), 0)
	}
	return time.Time{}
}

// Get returns the model with the given id, or nil
func (m ModelList) Get(id string) *Model {
	for i := range m.Data {
		if m.Data[i].Id == id {
			return &m.Data[i]
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// JSON

// UnmarshalJSON requires the id, object and owned_by fields, so that an
// error body is never mistaken for a model
func (m *Model) UnmarshalJSON(data []byte) error {
	f, err := objectFields(data)
	if err != nil {
		return err
	}

	var result Model
	if err := f.require("id", &result.Id); err != nil {
		return err
	}
	if err := f.require("object", &result.Object); err != nil {
		return err
	}
	if err := f.require("owned_by", &result.OwnedBy); err != nil {
		return err
	}
	if err := f.optional("permission", &result.Permission); err != nil {
		return err
	}
	if result.Extra, err = f.extra(); err != nil {
		return err
	}

	// Set the model
	*m = result
	return nil
}

func (m Model) MarshalJSON() ([]byte, error) {
	return merge(model(m), m.Extra)
}

// UnmarshalJSON requires the data and object fields
func (m *ModelList) UnmarshalJSON(data []byte) error {
	f, err := objectFields(data)
	if err != nil {
		return err
	}

	var result ModelList
	if err := f.require("data", &result.Data); err != nil {
		return err
	}
	if err := f.require("object", &result.Object); err != nil {
		return err
	}
	if result.Extra, err = f.extra(); err != nil {
		return err
	}

	// Set the list
	*m = result
	return nil
}

func (m ModelList) MarshalJSON() ([]byte, error) {
	return merge(modelList(m), m.Extra)
}
