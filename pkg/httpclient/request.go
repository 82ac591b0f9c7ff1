package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// response decodes a body into a response, keeping any decode error
// so it is not rewrapped by the HTTP client
type response[T any] struct {
	value *schema.Response[T]
	err   error
}

// Ensure response implements client.Unmarshaler
var _ client.Unmarshaler = (*response[schema.Model])(nil)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// get issues a single GET request to u and decodes the body
func get[T any](ctx context.Context, c *Client, u *url.URL) (*schema.Response[T], error) {
	var resp response[T]
	if err := c.DoWithContext(ctx, client.NewRequest(), &resp, client.OptReqEndpoint(u.String())); err != nil {
		// An error reported by the API with an unsuccessful status is
		// returned as data
		if detail, err := statusError(err); err != nil {
			return nil, err
		} else if detail != nil {
			return &schema.Response[T]{Err: detail}, nil
		}
		return nil, openai.ErrTransport.Wrap(err)
	}
	if resp.err != nil {
		return nil, resp.err
	} else if resp.value == nil {
		return nil, openai.ErrDecode.With("no response body")
	}
	return resp.value, nil
}

// statusError returns the API error in the body of an unsuccessful
// response. It returns nil values if err is not an HTTP status error or
// carries no JSON body, and ErrDecode if the body is JSON which is not an
// API error.
//
// go-client does not pass the body of an unsuccessful response to the
// unmarshaler. It formats the status error as "<status>: <body>", so the
// body is read back from the error message, starting at the first "{".
func statusError(err error) (*schema.ErrorDetail, error) {
	var status httpresponse.Err
	if !errors.As(err, &status) {
		return nil, nil
	}

	message := err.Error()
	start := strings.Index(message, "{")
	if start < 0 {
		return nil, nil
	}
	var body json.RawMessage
	if decodeErr := json.NewDecoder(strings.NewReader(message[start:])).Decode(&body); decodeErr != nil {
		return nil, openai.ErrDecode.Wrap(errors.Join(err, decodeErr))
	}
	detail, decodeErr := schema.DecodeError(body)
	if decodeErr != nil {
		return nil, openai.ErrDecode.Wrap(errors.Join(err, decodeErr))
	}
	return detail, nil
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (r *response[T]) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		r.err = openai.ErrTransport.Wrap(err)
	} else if resp, err := schema.Decode[T](data); err != nil {
		r.err = openai.ErrDecode.Wrap(err)
	} else {
		r.value = resp
	}
	return nil
}
