package httpclient

import (
	"context"
	"net/url"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels lists the currently available models
func (c *Client) ListModels(ctx context.Context) (*schema.Response[schema.ModelList], error) {
	u, err := c.URL("models")
	if err != nil {
		return nil, err
	}
	return get[schema.ModelList](ctx, c, u)
}

// GetModel retrieves a model by id. The id is escaped and appended to the
// models endpoint as a single path segment.
func (c *Client) GetModel(ctx context.Context, id string) (*schema.Response[schema.Model], error) {
	if id == "" || id == "." || id == ".." {
		return nil, openai.ErrBadParameter.Withf("model id: %q", id)
	}
	u, err := c.URL("models")
	if err != nil {
		return nil, err
	}
	return get[schema.Model](ctx, c, u.JoinPath(url.PathEscape(id)))
}
