package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linearbtools/linearb-mcp/internal/domain"
	"github.com/linearbtools/linearb-mcp/internal/usecase"
)

func discoveryModel() *domain.APIModel {
	endpoints := []domain.Endpoint{
		{
			Path:     "/api/v1/deployments",
			Method:   "GET",
			Summary:  "List deployments",
			Tags:     []string{"Deployments"},
			ToolName: "list_deployments",
			Parameters: domain.ParameterSet{
				Query:  []domain.Parameter{{Name: "limit", Type: "integer"}},
				Path:   []domain.Parameter{},
				Header: []domain.Parameter{},
			},
			Responses: map[string]domain.Response{"200": {Description: "Deployment list"}},
		},
		{
			Path:    "/api/v1/deployments",
			Method:  "POST",
			Summary: "Create deployment",
			Tags:    []string{"Deployments"},
		},
		{
			Path:     "/api/v1/health",
			Method:   "GET",
			Summary:  "Health check",
			Tags:     []string{"Health"},
			ToolName: "health_check",
		},
	}
	categories := map[string][]string{
		"deployments": {"GET /api/v1/deployments", "POST /api/v1/deployments"},
		"health":      {"GET /api/v1/health"},
	}
	return domain.NewAPIModel(map[string]interface{}{"title": "LinearB Public API"}, "https://public-api.linearb.io", endpoints, categories)
}

func newDiscovery(t *testing.T) *usecase.Discovery {
	return usecase.NewDiscovery(discoveryModel(), t.TempDir(), testLogger())
}

func TestDiscovery_DiscoverAPI(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	d := newDiscovery(t)
	assert.False(d.Degraded())

	result := d.DiscoverAPI()
	assert.NotContains(result, "error")
	assert.Equal("https://public-api.linearb.io", result["base_url"])

	endpoints, ok := result["endpoints"].(map[string]domain.Endpoint)
	require.True(ok)
	assert.Len(endpoints, 3)
	assert.Contains(endpoints, "GET /api/v1/deployments")
	assert.Contains(endpoints, "POST /api/v1/deployments")
}

func TestDiscovery_DiscoverAPI_Degraded(t *testing.T) {
	assert := assert.New(t)

	d := usecase.NewDiscovery(nil, t.TempDir(), testLogger())
	assert.True(d.Degraded())

	result := d.DiscoverAPI()
	assert.Equal(domain.ErrSpecUnavailable.Error(), result["error"])
	assert.Equal(domain.FallbackToolNames(), result["available_tools"])
}

func TestDiscovery_EndpointDetails(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	d := newDiscovery(t)

	// Method defaults to GET and the tool name is surfaced.
	result, err := d.EndpointDetails("/api/v1/deployments", "")
	require.NoError(err)
	assert.Equal("GET /api/v1/deployments", result["endpoint"])
	assert.Equal("List deployments", result["summary"])
	assert.Equal("list_deployments", result["mcp_tool_name"])

	// Lowercase method is accepted; POST has no tool name.
	result, err = d.EndpointDetails("/api/v1/deployments", "post")
	require.NoError(err)
	assert.Equal("POST /api/v1/deployments", result["endpoint"])
	assert.Nil(result["mcp_tool_name"])
}

func TestDiscovery_EndpointDetails_UnknownPath(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	_, err := newDiscovery(t).EndpointDetails("/api/v9/nothing", "GET")

	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)
	assert.Equal("available_endpoints", notFound.AltLabel)
	assert.Equal([]string{"/api/v1/deployments", "/api/v1/health"}, notFound.Alternatives)
}

func TestDiscovery_EndpointDetails_UnknownMethod(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	_, err := newDiscovery(t).EndpointDetails("/api/v1/deployments", "DELETE")

	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)
	assert.Contains(notFound.Message, "DELETE")
	assert.Equal("available_methods", notFound.AltLabel)
	assert.Equal([]string{"GET", "POST"}, notFound.Alternatives)
}

func TestDiscovery_EndpointDetails_Degraded(t *testing.T) {
	assert := assert.New(t)

	d := usecase.NewDiscovery(nil, t.TempDir(), testLogger())

	_, err := d.EndpointDetails("/api/v1/health", "GET")
	assert.ErrorIs(err, domain.ErrSpecUnavailable)
}

func TestDiscovery_APICategories(t *testing.T) {
	assert := assert.New(t)

	result := newDiscovery(t).APICategories()

	assert.Equal(8, result["total_categories"])
	assert.Equal(23, result["total_endpoints"])
}

func TestDiscovery_UsageExamples(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	d := newDiscovery(t)

	// Tool lookup wins over category.
	result, err := d.UsageExamples("metrics", "list_deployments")
	require.NoError(err)
	assert.Equal("list_deployments", result["tool"])
	assert.Equal("deployments", result["category"])

	// Category lookup.
	result, err = d.UsageExamples("teams", "")
	require.NoError(err)
	assert.Equal("teams", result["category"])

	// Full corpus when nothing is narrowed.
	result, err = d.UsageExamples("", "")
	require.NoError(err)
	categories, ok := result["all_categories"].([]string)
	require.True(ok)
	assert.Contains(categories, "metrics_discovery")

	// Unknown tool.
	_, err = d.UsageExamples("", "create_deployment")
	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)

	// Unknown category lists the valid ones.
	_, err = d.UsageExamples("nonsense", "")
	require.ErrorAs(err, &notFound)
	assert.Equal("available_categories", notFound.AltLabel)
	assert.NotEmpty(notFound.Alternatives)
}

func TestDiscovery_MetricQueryExamples(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	result := newDiscovery(t).MetricQueryExamples()

	examples, ok := result["examples"].(map[string]interface{})
	require.True(ok)
	assert.Contains(examples, "cycle_time_analysis")
	assert.Contains(result, "aggregation_guide")
	assert.Contains(result, "best_practices")
}

func TestDiscovery_DocumentationFiles(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	for _, name := range []string{
		"Metrics - Cycle Time.pdf",
		"Metrics - Deploy Frequency.PDF",
		"Teams Overview.pdf",
		"notes.txt",
	} {
		require.NoError(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755))

	d := usecase.NewDiscovery(discoveryModel(), dir, testLogger())

	result, err := d.DocumentationFiles()
	require.NoError(err)
	assert.Equal(dir, result["documentation_path"])
	assert.Equal(3, result["total_files"])
}

func TestDiscovery_DocumentationFiles_MissingDir(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	d := usecase.NewDiscovery(discoveryModel(), filepath.Join(t.TempDir(), "missing"), testLogger())

	_, err := d.DocumentationFiles()
	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)
	assert.Equal("Documentation directory not found", notFound.Message)
}
