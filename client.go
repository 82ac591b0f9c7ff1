/*
openai implements a typed client for the OpenAI API
https://platform.openai.com/docs/api-reference

The root package defines the feature contracts which a client satisfies
and the errors it returns. The HTTP implementation is in pkg/httpclient,
and the request and response types are in pkg/schema.
*/
package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelFeature lists and describes the models available in the API.
//
// Both methods issue a single request. A response which the API reports
// as an error is returned as data in the Err field of the response, and
// a nil error. Transport failures wrap ErrTransport, and bodies which
// cannot be decoded wrap ErrDecode.
type ModelFeature interface {
	// ListModels lists the currently available models, and provides basic
	// information about each one such as the owner and availability.
	ListModels(ctx context.Context) (*schema.Response[schema.ModelList], error)

	// GetModel retrieves a model instance, providing basic information
	// about the model such as the owner and permissioning.
	GetModel(ctx context.Context, id string) (*schema.Response[schema.Model], error)
}
