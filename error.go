package openai

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrMissingToken
	ErrAuthHeader
	ErrOrgHeader
	ErrTransportInit
	ErrURL
	ErrTransport
	ErrDecode
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrMissingToken:
		return "no OpenAI token provided"
	case ErrAuthHeader:
		return "invalid authorization header"
	case ErrOrgHeader:
		return "invalid organization header"
	case ErrTransportInit:
		return "cannot create http client"
	case ErrURL:
		return "invalid url"
	case ErrTransport:
		return "transport error"
	case ErrDecode:
		return "cannot decode response"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error which matches both e and err with errors.Is
func (e Err) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", e, err)
}
