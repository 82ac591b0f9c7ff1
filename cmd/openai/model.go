package main

import (
	"context"
	"os"
	"sort"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelCommands struct {
	ListModels ListModelsCommand `cmd:"" name:"models" help:"List models." group:"MODEL"`
	GetModel   GetModelCommand   `cmd:"" name:"model" help:"Get one or more models." group:"MODEL"`
}

type ListModelsCommand struct {
	Owner  string `name:"owner" help:"Only return models owned by this organization" optional:""`
	Prefix string `name:"prefix" help:"Only return models whose id starts with this prefix" optional:""`
}

type GetModelCommand struct {
	Ids []string `arg:"" name:"id" help:"Model identifiers"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand",
		attribute.String("owner", cmd.Owner),
		attribute.String("prefix", cmd.Prefix),
	)
	defer func() { endSpan(err) }()

	// List models
	response, err := client.ListModels(parent)
	if err != nil {
		return err
	}
	list, err := response.Result()
	if err != nil {
		return err
	}

	// Filter and sort by id
	models := make([]schema.Model, 0, len(list.Data))
	for _, model := range list.Data {
		if cmd.Owner != "" && model.OwnedBy != cmd.Owner {
			continue
		}
		if !strings.HasPrefix(model.Id, cmd.Prefix) {
			continue
		}
		models = append(models, model)
	}
	sort.Slice(models, func(a, b int) bool {
		return models[a].Id < models[b].Id
	})

	// Write the models
	return write(os.Stdout, ctx.format(), models)
}

func (cmd *GetModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand",
		attribute.StringSlice("ids", cmd.Ids),
	)
	defer func() { endSpan(err) }()

	// Get the models concurrently, stopping at the first error
	models := make([]schema.Model, len(cmd.Ids))
	g, child := errgroup.WithContext(parent)
	for i, id := range cmd.Ids {
		g.Go(func() error {
			return getModel(child, client, id, &models[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Write the models, in the order requested
	return write(os.Stdout, ctx.format(), models)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

type modelGetter interface {
	GetModel(ctx context.Context, id string) (*schema.Response[schema.Model], error)
}

func getModel(ctx context.Context, client modelGetter, id string, dest *schema.Model) error {
	response, err := client.GetModel(ctx, id)
	if err != nil {
		return err
	}
	model, err := response.Result()
	if err != nil {
		return err
	}
	*dest = *model
	return nil
}
