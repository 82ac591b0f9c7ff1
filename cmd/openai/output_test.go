package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func testModels() []schema.Model {
	return []schema.Model{
		{Id: "gpt-4o", Object: "model", OwnedBy: "system", Extra: map[string]any{"created": float64(1715367049)}},
		{Id: "ft:gpt-x", Object: "model", OwnedBy: "user-1"},
	}
}

func Test_output_001(t *testing.T) {
	// JSON output includes extra fields
	assert := assert.New(t)
	var buf bytes.Buffer
	require.NoError(t, write(&buf, formatJSON, testModels()))

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal("gpt-4o", result[0]["id"])
	assert.Equal(float64(1715367049), result[0]["created"])
	assert.Equal("user-1", result[1]["owned_by"])
}

func Test_output_002(t *testing.T) {
	// YAML output uses block style and keeps numbers as written
	assert := assert.New(t)
	var buf bytes.Buffer
	require.NoError(t, write(&buf, formatYAML, testModels()))

	out := buf.String()
	assert.True(strings.HasPrefix(out, "- "))
	assert.Contains(out, "id: gpt-4o\n")
	assert.Contains(out, "created: 1715367049\n")
	assert.Contains(out, "  owned_by: user-1\n")
	assert.NotContains(out, "{")
}

func Test_output_003(t *testing.T) {
	// Markdown and table output
	assert := assert.New(t)
	var buf bytes.Buffer
	require.NoError(t, write(&buf, formatMarkdown, testModels()))
	assert.True(strings.HasPrefix(buf.String(), "| Model | Owner | Created |\n"))
	assert.Contains(buf.String(), "| ft:gpt-x | user-1 | - |")

	buf.Reset()
	require.NoError(t, write(&buf, formatTable, testModels()))
	assert.Contains(buf.String(), "gpt-4o")
}

func Test_output_004(t *testing.T) {
	// Unknown formats are rejected
	assert := assert.New(t)
	assert.Error(write(&bytes.Buffer{}, "xml", testModels()))
}

func Test_output_005(t *testing.T) {
	// An explicit format is used as given
	assert := assert.New(t)
	g := &Globals{Format: formatYAML}
	assert.Equal(formatYAML, g.format())
}

///////////////////////////////////////////////////////////////////////////////
// MODEL LOOKUP

type stubGetter map[string]*schema.Response[schema.Model]

func (s stubGetter) GetModel(_ context.Context, id string) (*schema.Response[schema.Model], error) {
	if resp, exists := s[id]; exists {
		return resp, nil
	}
	return nil, errors.New("transport")
}

func Test_model_001(t *testing.T) {
	// A model is copied to the destination, and API errors are returned
	assert := assert.New(t)
	message := "The model does not exist"
	stub := stubGetter{
		"m1": {Value: &schema.Model{Id: "m1", Object: "model", OwnedBy: "org"}},
		"m2": {Err: &schema.ErrorDetail{Message: &message}},
	}

	var model schema.Model
	require.NoError(t, getModel(context.TODO(), stub, "m1", &model))
	assert.Equal("m1", model.Id)

	err := getModel(context.TODO(), stub, "m2", &model)
	assert.ErrorContains(err, message)

	err = getModel(context.TODO(), stub, "m3", &model)
	assert.EqualError(err, "transport")
}
