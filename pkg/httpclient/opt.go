package httpclient

import (
	"io"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	endpoint "github.com/mutablelogic/go-openai/pkg/endpoint"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt sets an option when creating a client
type Opt func(*opts) error

// opts holds the configuration for a client until it is built
type opts struct {
	token        string
	organization string
	endpoint     string
	version      string
	clientOpts   []client.ClientOpt
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	result := &opts{
		endpoint: endpoint.DefaultBase,
		version:  endpoint.DefaultVersion,
	}
	for _, fn := range o {
		if err := fn(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToken sets the API key, which is required
func WithToken(token string) Opt {
	return func(o *opts) error {
		o.token = token
		return nil
	}
}

// WithOrganization sets the organization for requests, which is optional.
// Usage is billed to this organization.
func WithOrganization(org string) Opt {
	return func(o *opts) error {
		o.organization = org
		return nil
	}
}

// WithEndpoint sets the base URL of the API. The default is
// https://api.openai.com/
func WithEndpoint(url string) Opt {
	return func(o *opts) error {
		if url == "" {
			return openai.ErrBadParameter.With("endpoint is empty")
		}
		o.endpoint = url
		return nil
	}
}

// WithVersion sets the API version, which must start with "v" and cannot
// contain "/". The default is "v1".
func WithVersion(version string) Opt {
	return func(o *opts) error {
		if err := endpoint.CheckVersion(version); err != nil {
			return err
		}
		o.version = version
		return nil
	}
}

// WithTrace writes requests and responses to w. If verbose is true then
// the bodies are also written.
func WithTrace(w io.Writer, verbose bool) Opt {
	return WithClientOpts(client.OptTrace(w, verbose))
}

// WithTimeout sets the timeout for each request
func WithTimeout(timeout time.Duration) Opt {
	return WithClientOpts(client.OptTimeout(timeout))
}

// WithTracer creates OpenTelemetry spans for each request
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		if tracer != nil {
			o.clientOpts = append(o.clientOpts, client.OptTracer(tracer))
		}
		return nil
	}
}

// WithClientOpts passes options to the underlying HTTP client
func WithClientOpts(clientOpts ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.clientOpts = append(o.clientOpts, clientOpts...)
		return nil
	}
}
