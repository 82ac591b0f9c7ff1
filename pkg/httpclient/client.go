/*
httpclient implements a client for the OpenAI API over HTTP
https://platform.openai.com/docs/api-reference

A client is created with an API key and optionally an organization:

	c, err := httpclient.New(httpclient.WithToken(os.Getenv("OPENAI_API_KEY")))
	if err != nil {
		return err
	}
	response, err := c.ListModels(ctx)

The client cannot be changed once it has been created and can be shared
between goroutines.
*/
package httpclient

import (
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	endpoint "github.com/mutablelogic/go-openai/pkg/endpoint"
	version "github.com/mutablelogic/go-openai/pkg/version"
	httpguts "golang.org/x/net/http/httpguts"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an OpenAI HTTP client that wraps the base HTTP client
// and provides typed methods for the API
type Client struct {
	*client.Client
	urls    *endpoint.Cache
	version string
	headers http.Header
}

var _ openai.ModelFeature = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	headerAuthorization = "Authorization"
	headerOrganization  = "OpenAI-Organization"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. A token is required, and no requests are made.
func New(opts ...Opt) (*Client, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Check the token and organization can be sent as headers
	if o.token == "" {
		return nil, openai.ErrMissingToken
	}
	headers := make(http.Header, 2)
	if value := "Bearer " + o.token; !httpguts.ValidHeaderFieldValue(value) {
		return nil, openai.ErrAuthHeader.With("token contains invalid characters")
	} else {
		headers.Set(headerAuthorization, value)
	}
	if o.organization != "" {
		if !httpguts.ValidHeaderFieldValue(o.organization) {
			return nil, openai.ErrOrgHeader.Withf("%q", o.organization)
		}
		headers.Set(headerOrganization, o.organization)
	}

	// Endpoints are resolved against the base URL
	urls, err := endpoint.New(o.endpoint)
	if err != nil {
		return nil, err
	}

	// Create the HTTP client with default headers
	clientOpts := append(o.clientOpts,
		client.OptEndpoint(urls.Base().String()),
		client.OptUserAgent(version.UserAgent()),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: o.token}),
	)
	if o.organization != "" {
		clientOpts = append(clientOpts, client.OptHeader(headerOrganization, o.organization))
	}
	c, err := client.New(clientOpts...)
	if err != nil {
		return nil, openai.ErrTransportInit.Wrap(err)
	}

	// Return the client
	return &Client{
		Client:  c,
		urls:    urls,
		version: o.version,
		headers: headers,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Headers returns the headers sent with every request, apart from the
// User-Agent
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// Version returns the API version
func (c *Client) Version() string {
	return c.version
}

// URL returns the URL of an endpoint for the API version of the client
func (c *Client) URL(path string) (*url.URL, error) {
	return c.urls.URL(c.version, path)
}
