package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_response_001(t *testing.T) {
	// A model list body decodes as a value
	assert := assert.New(t)
	resp, err := schema.Decode[schema.ModelList]([]byte(`{"data": [{"id":"m1","object":"model","owned_by":"org","permission":[]}], "object":"list"}`))
	require.NoError(t, err)
	assert.False(resp.IsErr())
	assert.Nil(resp.Err)
	require.NotNil(t, resp.Value)
	assert.Equal("list", resp.Value.Object)
	require.Len(t, resp.Value.Data, 1)
	assert.Equal("m1", resp.Value.Data[0].Id)
	assert.Equal("model", resp.Value.Data[0].Object)
	assert.Equal("org", resp.Value.Data[0].OwnedBy)
	assert.Equal([]any{}, resp.Value.Data[0].Permission)
}

func Test_response_002(t *testing.T) {
	// An error body decodes as an error
	assert := assert.New(t)
	resp, err := schema.Decode[schema.ModelList]([]byte(`{"error": {"message": "Invalid URL", "type": "invalid_request_error", "code": null, "param": null}}`))
	require.NoError(t, err)
	assert.True(resp.IsErr())
	assert.Nil(resp.Value)
	require.NotNil(t, resp.Err)
	assert.Equal("Invalid URL", resp.Err.GetMessage())
	assert.Equal("invalid_request_error", resp.Err.GetType())
	assert.Nil(resp.Err.Code)
	assert.Nil(resp.Err.Param)
}

func Test_response_003(t *testing.T) {
	// An error body never decodes as a single model
	assert := assert.New(t)
	resp, err := schema.Decode[schema.Model]([]byte(`{"error": {"message": "The model 'x' does not exist", "type": "invalid_request_error", "param": "model", "code": "model_not_found"}}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Err)
	assert.Nil(resp.Value)
	assert.Equal("model_not_found", resp.Err.Code)
	assert.Equal("model", resp.Err.Param)
}

func Test_response_004(t *testing.T) {
	// Numeric error codes are kept as JSON numbers
	assert := assert.New(t)
	resp, err := schema.Decode[schema.Model]([]byte(`{"error": {"message": "Too many requests", "code": 429}}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Err)
	assert.Equal(float64(429), resp.Err.Code)
	assert.Equal("", resp.Err.GetType())
}

func Test_response_005(t *testing.T) {
	// Malformed and unexpected bodies return an error rather than panic
	assert := assert.New(t)
	for _, body := range []string{
		``,
		`null`,
		`{"data": [{"id":"m1"`,
		`[]`,
		`"text"`,
		`{}`,
		`{"object":"list"}`,
		`{"error": null}`,
		`{"error": "oops"}`,
		`{"data": [{"id":"m1"}], "object":"list"}`,
	} {
		assert.NotPanics(func() {
			resp, err := schema.Decode[schema.ModelList]([]byte(body))
			assert.Error(err, "body %q", body)
			assert.Nil(resp, "body %q", body)
		})
	}
}

func Test_response_006(t *testing.T) {
	// A value body takes precedence over an error member
	assert := assert.New(t)
	resp, err := schema.Decode[schema.Model]([]byte(`{"id":"m1","object":"model","owned_by":"org","error":{"message":"ignored"}}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Value)
	assert.Nil(resp.Err)
	assert.Contains(resp.Value.Extra, "error")
}

func Test_response_007(t *testing.T) {
	// Result converts an API error into a Go error
	assert := assert.New(t)
	resp, err := schema.Decode[schema.Model]([]byte(`{"error": {"message": "Invalid URL", "type": "invalid_request_error"}}`))
	require.NoError(t, err)

	value, err := resp.Result()
	assert.Nil(value)
	assert.EqualError(err, "invalid_request_error: Invalid URL")

	var detail *schema.ErrorDetail
	assert.True(errors.As(err, &detail))
	assert.Equal("Invalid URL", detail.GetMessage())
}

func Test_response_008(t *testing.T) {
	// Result returns the value on success
	assert := assert.New(t)
	resp, err := schema.Decode[schema.Model]([]byte(`{"id":"m1","object":"model","owned_by":"org"}`))
	require.NoError(t, err)

	value, err := resp.Result()
	assert.NoError(err)
	require.NotNil(t, value)
	assert.Equal("m1", value.Id)

	// An empty response is an error
	value, err = schema.Response[schema.Model]{}.Result()
	assert.Error(err)
	assert.Nil(value)
}

func Test_response_009(t *testing.T) {
	// The response can be used with json.Unmarshal and marshals back to its shape
	assert := assert.New(t)

	var resp schema.Response[schema.Model]
	require.NoError(t, json.Unmarshal([]byte(`{"error": {"message": "Invalid URL"}}`), &resp))
	require.NotNil(t, resp.Err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(`{"error": {"message": "Invalid URL"}}`, string(data))

	assert.Error(json.Unmarshal([]byte(`{"unexpected": true}`), &resp))
}

func Test_response_010(t *testing.T) {
	// Error strings for sparse error details
	assert := assert.New(t)
	assert.Equal("unknown api error", (&schema.ErrorDetail{}).Error())

	message := "Rate limit reached"
	assert.Equal("Rate limit reached (code rate_limit_exceeded)", (&schema.ErrorDetail{
		Message: &message,
		Code:    "rate_limit_exceeded",
	}).Error())

	var detail *schema.ErrorDetail
	assert.Equal("", detail.GetMessage())
	assert.Equal("", detail.GetType())
}
