package openapi_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linearbtools/linearb-mcp/internal/adapter/outbound/openapi"
	"github.com/linearbtools/linearb-mcp/internal/domain"
)

func buildTestModel(t *testing.T) *domain.APIModel {
	t.Helper()
	loader := openapi.NewSpecLoader(testLogger())
	doc, err := loader.Load(context.Background(), filepath.Join("testdata", "openapi.json"))
	require.NoError(t, err)
	return openapi.NewModelBuilder(testLogger()).Build(doc, "https://fallback.example.com")
}

func TestModelBuilder_Build(t *testing.T) {
	assert := assert.New(t)

	model := buildTestModel(t)

	// Base URL comes from the document's servers, not the fallback.
	assert.Equal("https://public-api.linearb.io", model.BaseURL)

	assert.Equal([]string{
		"/api/v1/deployments",
		"/api/v1/health",
		"/api/v1/incidents/search",
		"/api/v2/measurements",
		"/api/v2/teams",
	}, model.Paths())
	assert.Len(model.Endpoints(), 6)
	assert.Equal([]string{"GET", "POST"}, model.Methods("/api/v1/deployments"))
}

func TestModelBuilder_Build_Parameters(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	model := buildTestModel(t)

	ep, ok := model.Lookup("/api/v1/deployments", "GET")
	require.True(ok)
	assert.Equal("list_deployments", ep.ToolName)
	assert.Equal("listDeployments", ep.OperationID)
	assert.Equal([]string{"Deployments"}, ep.Tags)
	assert.Empty(ep.Parameters.Path)
	assert.Empty(ep.Parameters.Header)
	require.Len(ep.Parameters.Query, 4)

	byName := make(map[string]domain.Parameter)
	for _, p := range ep.Parameters.Query {
		byName[p.Name] = p
	}

	limit := byName["limit"]
	assert.Equal("integer", limit.Type)
	assert.False(limit.Required)
	require.NotNil(limit.Minimum)
	require.NotNil(limit.Maximum)
	assert.Equal(float64(1), *limit.Minimum)
	assert.Equal(float64(100), *limit.Maximum)
	assert.EqualValues(10, limit.Default)

	sortDir := byName["sort_dir"]
	assert.Equal("string", sortDir.Type)
	assert.Equal([]interface{}{"asc", "desc"}, sortDir.Enum)

	resp, ok := ep.Responses["200"]
	require.True(ok)
	assert.Equal("Deployment list", resp.Description)
	assert.NotNil(resp.Schema)

	resp401, ok := ep.Responses["401"]
	require.True(ok)
	assert.Equal("Missing or invalid API key", resp401.Description)
	assert.Nil(resp401.Schema)
}

func TestModelBuilder_Build_RequestBody(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	model := buildTestModel(t)

	ep, ok := model.Lookup("/api/v1/incidents/search", "POST")
	require.True(ok)
	assert.Equal("search_incidents", ep.ToolName)
	require.NotNil(ep.RequestBody)
	assert.True(ep.RequestBody.Required)
	assert.Equal("application/json", ep.RequestBody.ContentType)
	assert.NotNil(ep.RequestBody.Schema)
	assert.NotNil(ep.RequestBody.Examples)

	// GET endpoints carry no body.
	ep, ok = model.Lookup("/api/v2/teams", "GET")
	require.True(ok)
	assert.Nil(ep.RequestBody)
}

func TestModelBuilder_Build_WriteEndpointHasNoToolName(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	model := buildTestModel(t)

	ep, ok := model.Lookup("/api/v1/deployments", "POST")
	require.True(ok)
	assert.Empty(ep.ToolName, "write operations are never exposed as tools")
}

func TestModelBuilder_Build_Categories(t *testing.T) {
	assert := assert.New(t)

	model := buildTestModel(t)
	categories := model.Categories()

	// All buckets exist even when empty.
	for _, name := range []string{"deployments", "teams", "services", "incidents", "measurements", "health"} {
		_, ok := categories[name]
		assert.True(ok, name)
	}

	assert.ElementsMatch([]string{"GET /api/v1/deployments", "POST /api/v1/deployments"}, categories["deployments"])
	assert.Equal([]string{"GET /api/v2/teams"}, categories["teams"])
	assert.Equal([]string{"POST /api/v2/measurements"}, categories["measurements"])
	assert.Equal([]string{"POST /api/v1/incidents/search"}, categories["incidents"])
	assert.Equal([]string{"GET /api/v1/health"}, categories["health"])
	assert.Empty(categories["services"])
}

func TestModelBuilder_Build_NoServers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	loader := openapi.NewSpecLoader(testLogger())
	doc, err := loader.Load(context.Background(), filepath.Join("testdata", "openapi.json"))
	require.NoError(err)
	doc.Servers = nil

	model := openapi.NewModelBuilder(testLogger()).Build(doc, "https://fallback.example.com")
	assert.Equal("https://fallback.example.com", model.BaseURL)
}
