package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	endpoint "github.com/mutablelogic/go-openai/pkg/endpoint"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	version "github.com/mutablelogic/go-openai/pkg/version"
	otelapi "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// API
	Token        string        `name:"token" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	Organization string        `name:"org" env:"OPENAI_ORGANIZATION" help:"OpenAI organization"`
	Endpoint     string        `name:"endpoint" env:"OPENAI_ENDPOINT" default:"${endpoint}" help:"API endpoint"`
	APIVersion   string        `name:"api-version" default:"${version}" help:"API version"`
	Timeout      time.Duration `name:"timeout" default:"30s" help:"Request timeout"`

	// Output
	Format string `name:"format" enum:"auto,table,markdown,json,yaml" default:"auto" help:"Output format (auto, table, markdown, json, yaml)"`

	// Context
	ctx      context.Context
	tracer   trace.Tracer
	execName string
}

type CLI struct {
	Globals
	ModelCommands
	VersionCommands
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"endpoint": endpoint.DefaultBase,
			"version":  endpoint.DefaultVersion,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Spans go to the globally registered provider, which is a no-op unless
	// the process registers one
	cli.Globals.tracer = otelapi.Tracer(version.Name)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a client configured from the global flags
func (g *Globals) Client() (*httpclient.Client, error) {
	opts := []httpclient.Opt{
		httpclient.WithToken(g.Token),
		httpclient.WithOrganization(g.Organization),
		httpclient.WithEndpoint(g.Endpoint),
		httpclient.WithVersion(g.APIVersion),
		httpclient.WithTracer(g.tracer),
	}
	if g.Debug || g.Verbose {
		opts = append(opts, httpclient.WithTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(g.Timeout))
	}
	return httpclient.New(opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
