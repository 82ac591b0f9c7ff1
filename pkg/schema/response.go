package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the result of an API call, which is either a value (on success)
// or an error reported by the API. Exactly one of Value and Err is set.
//
// There is no field which says which case applies. A body is decoded as the
// value first, and only if that fails as an error of the form
// {"error": {...}}. Value types require their mandatory fields when decoding,
// so that an error body is not accepted as an empty value.
type Response[T any] struct {
	Value *T
	Err   *ErrorDetail
}

// ErrorDetail is an error reported by the API. The upstream error shape is
// not fully specified, so every field is optional and the code and param
// fields can hold any JSON value (strings and numbers have both been used).
type ErrorDetail struct {
	Code    any     `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Param   any     `json:"param,omitempty"`
	Type    *string `json:"type,omitempty"`
}

type errorResponse struct {
	Error *ErrorDetail `json:"error"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	errEmptyBody     = errors.New("empty response body")
	errEmptyResponse = errors.New("empty response")
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Decode returns a response from a JSON body, trying the value first and then
// the error shape. It returns an error if the body matches neither.
func Decode[T any](data []byte) (*Response[T], error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil, errEmptyBody
	}

	// Value
	var value T
	errValue := json.Unmarshal(data, &value)
	if errValue == nil {
		return &Response[T]{Value: &value}, nil
	}

	// API error
	detail, errError := DecodeError(data)
	if errError == nil {
		return &Response[T]{Err: detail}, nil
	}

	// Neither
	return nil, errors.Join(errValue, errError)
}

// DecodeError returns an error reported by the API from a JSON body of the
// form {"error": {...}}
func DecodeError(data []byte) (*ErrorDetail, error) {
	var outer errorResponse
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, err
	} else if outer.Error == nil {
		return nil, fmt.Errorf("missing field %q", "error")
	}
	return outer.Error, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response[T]) String() string {
	return Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsErr returns true if the API reported an error
func (r Response[T]) IsErr() bool {
	return r.Err != nil
}

// Result returns the value, or the API error as a Go error. A response
// with neither set returns an error.
func (r Response[T]) Result() (*T, error) {
	if r.Err != nil {
		return nil, r.Err
	} else if r.Value == nil {
		return nil, errEmptyResponse
	}
	return r.Value, nil
}

// Error returns the message with the type and code when present, for example
// "invalid_request_error: Invalid URL (GET /v1/model/text-babbage:001)"
func (e *ErrorDetail) Error() string {
	var parts []string
	if e.Type != nil && *e.Type != "" {
		parts = append(parts, *e.Type+":")
	}
	if e.Message != nil && *e.Message != "" {
		parts = append(parts, *e.Message)
	}
	if e.Code != nil {
		parts = append(parts, fmt.Sprintf("(code %v)", e.Code))
	}
	if len(parts) == 0 {
		return "unknown api error"
	}
	return strings.Join(parts, " ")
}

// GetMessage returns the message, or an empty string
func (e *ErrorDetail) GetMessage() string {
	if e == nil || e.Message == nil {
		return ""
	}
	return *e.Message
}

// GetType returns the type, or an empty string
func (e *ErrorDetail) GetType() string {
	if e == nil || e.Type == nil {
		return ""
	}
	return *e.Type
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (r *Response[T]) UnmarshalJSON(data []byte) error {
	if resp, err := Decode[T](data); err != nil {
		return err
	} else {
		*r = *resp
	}
	return nil
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(errorResponse{Error: r.Err})
	}
	return json.Marshal(r.Value)
}
