// Package mcptools registers the server's MCP tool surface: the discovery
// and reference tools answered from in-memory data, and the read-only
// remote-call tools forwarded to the LinearB API. No write-capable tool is
// defined anywhere in this package.
package mcptools

import "github.com/mark3labs/mcp-go/mcp"

// --- Discovery tools ---

var discoverAPITool = mcp.NewTool("discover_api",
	mcp.WithDescription("Get comprehensive API information and available endpoints"),
)

var getEndpointDetailsTool = mcp.NewTool("get_endpoint_details",
	mcp.WithDescription("Get detailed information about a specific API endpoint"),
	mcp.WithString("endpoint_path",
		mcp.Required(),
		mcp.Description("The API endpoint path (e.g. '/api/v1/deployments')"),
	),
	mcp.WithString("method",
		mcp.Description("HTTP method (GET, POST, PUT, DELETE, default: GET)"),
		mcp.DefaultString("GET"),
	),
)

var getAPICategoriesTool = mcp.NewTool("get_api_categories",
	mcp.WithDescription("Get API endpoints organized by categories"),
)

var getUsageExamplesTool = mcp.NewTool("get_usage_examples",
	mcp.WithDescription("Get usage examples for API endpoints"),
	mcp.WithString("category",
		mcp.Description("Filter examples by category (deployments, teams, services, incidents, metrics, health)"),
	),
	mcp.WithString("tool_name",
		mcp.Description("Get examples for a specific tool name"),
	),
)

var getDocumentationFilesTool = mcp.NewTool("get_documentation_files",
	mcp.WithDescription("List available documentation files"),
)

// --- Metric reference tools ---

var getSupportedMetricsTool = mcp.NewTool("get_supported_metrics",
	mcp.WithDescription("Get comprehensive list of supported LinearB metrics"),
)

var getMetricsByCategoryTool = mcp.NewTool("get_metrics_by_category",
	mcp.WithDescription("Get metrics organized by category"),
	mcp.WithString("category",
		mcp.Description("Optional category name (cycle_time, pull_requests, commits, releases, activity, branches, incidents)"),
	),
)

var searchMetricsTool = mcp.NewTool("search_metrics",
	mcp.WithDescription("Search metrics by name or description"),
	mcp.WithString("search_term",
		mcp.Required(),
		mcp.Description("Search term to match against metric names and descriptions"),
	),
	mcp.WithString("category",
		mcp.Description("Optional category filter"),
	),
	mcp.WithBoolean("has_aggregation",
		mcp.Description("Optional filter for metrics that support aggregation (p75, p50, avg)"),
	),
)

var getMetricExamplesTool = mcp.NewTool("get_metric_examples",
	mcp.WithDescription("Get usage examples for metrics queries"),
)

// --- Team reference tools ---

var getActiveTeamsTool = mcp.NewTool("get_active_teams",
	mcp.WithDescription("Get list of active teams for analysis"),
)

var getTeamsByTypeTool = mcp.NewTool("get_teams_by_type",
	mcp.WithDescription("Get teams filtered by type"),
	mcp.WithString("team_type",
		mcp.Description("Optional team type filter ('engineering' or 'qa')"),
	),
)

var getComparableTeamsTool = mcp.NewTool("get_comparable_teams",
	mcp.WithDescription("Get teams that can be compared for analysis"),
)

var searchTeamsByFocusTool = mcp.NewTool("search_teams_by_focus",
	mcp.WithDescription("Search teams by focus area or name"),
	mcp.WithString("search_term",
		mcp.Required(),
		mcp.Description("Search term to match against team names, descriptions, or focus areas"),
	),
	mcp.WithString("team_type",
		mcp.Description("Optional team type filter ('engineering' or 'qa')"),
	),
	mcp.WithBoolean("comparable_only",
		mcp.Description("If true, only return comparable teams"),
	),
)

// --- Remote API tools (read-only) ---

var listDeploymentsTool = mcp.NewTool("list_deployments",
	mcp.WithDescription("List deployments with optional filtering parameters"),
	mcp.WithNumber("repository_id", mcp.Description("Filter by repository ID")),
	mcp.WithString("after", mcp.Description("Filter deployments after this date (ISO format)")),
	mcp.WithString("before", mcp.Description("Filter deployments before this date (ISO format)")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-100, default: 10)"), mcp.DefaultNumber(10)),
	mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	mcp.WithString("stage", mcp.Description("Filter by deployment stage")),
	mcp.WithString("sort_by", mcp.Description("Sort field (default: published_at)"), mcp.DefaultString("published_at")),
	mcp.WithString("sort_dir", mcp.Description("Sort direction (asc/desc, default: desc)"), mcp.DefaultString("desc")),
	mcp.WithString("commit_sha", mcp.Description("Filter by specific commit SHA")),
)

var searchTeamsTool = mcp.NewTool("search_teams_v2",
	mcp.WithDescription("Search teams with pagination (V2 API)"),
	mcp.WithNumber("offset", mcp.Description("Pagination offset (default: 0)")),
	mcp.WithNumber("page_size", mcp.Description("Number of teams per page (1-50, default: 50)"), mcp.DefaultNumber(50)),
	mcp.WithString("search_term", mcp.Description("Search term to filter teams (1-100 characters)")),
	mcp.WithBoolean("nonmerged_members_only", mcp.Description("If true, returns only contributors without parent contributors")),
)

var searchUsersTool = mcp.NewTool("search_users",
	mcp.WithDescription("Search users with pagination and filtering"),
	mcp.WithNumber("offset", mcp.Description("Pagination offset (default: 0)")),
	mcp.WithNumber("page_size", mcp.Description("Number of users per page (1-50, default: 50)"), mcp.DefaultNumber(50)),
	mcp.WithString("order_by", mcp.Description("Field to order by ('name' or 'email')")),
	mcp.WithString("order_dir", mcp.Description("Order direction ('ASC' or 'DESC')")),
	mcp.WithString("search_by_field", mcp.Description("Field to search by ('name' or 'email')")),
	mcp.WithString("search_term", mcp.Description("Search term (1-100 characters)")),
	mcp.WithString("user_role", mcp.Description("User role filter ('admin', 'editor', 'viewer', 'external', 'basic')")),
	mcp.WithBoolean("include_user_children", mcp.Description("Include user children in response")),
)

var getServicesTool = mcp.NewTool("get_services",
	mcp.WithDescription("Get all services, optionally filtered by repository"),
	mcp.WithNumber("repository_id", mcp.Description("Optional repository ID to filter services")),
)

var getServiceTool = mcp.NewTool("get_service",
	mcp.WithDescription("Get a specific service by ID"),
	mcp.WithNumber("service_id",
		mcp.Required(),
		mcp.Description("The service ID to retrieve"),
	),
)

var getIncidentTool = mcp.NewTool("get_incident",
	mcp.WithDescription("Get a specific incident by provider ID"),
	mcp.WithString("provider_id",
		mcp.Required(),
		mcp.Description("The incident provider ID to retrieve"),
	),
)

var searchIncidentsTool = mcp.NewTool("search_incidents",
	mcp.WithDescription("Search incidents with filtering"),
	mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 10)"), mcp.DefaultNumber(10)),
	mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	mcp.WithString("status", mcp.Description("Filter by incident status")),
	mcp.WithString("severity", mcp.Description("Filter by incident severity")),
	mcp.WithString("after", mcp.Description("Filter incidents after this date (ISO format)")),
	mcp.WithString("before", mcp.Description("Filter incidents before this date (ISO format)")),
)

var postMetricsTool = mcp.NewTool("post_metrics",
	mcp.WithDescription("Query metrics data from LinearB"),
	mcp.WithString("group_by",
		mcp.Required(),
		mcp.Description("Grouping level (e.g. 'organization', 'team', 'repository')"),
	),
	mcp.WithString("roll_up",
		mcp.Required(),
		mcp.Description("Time aggregation (e.g. '1d', '1w', '1mo', 'custom')"),
	),
	mcp.WithArray("requested_metrics",
		mcp.Required(),
		mcp.Description(`List of metrics with optional aggregation (e.g. [{"name": "branch.computed.cycle_time", "agg": "p75"}])`),
		mcp.Items(map[string]interface{}{"type": "object"}),
	),
	mcp.WithArray("time_ranges",
		mcp.Required(),
		mcp.Description(`List of time ranges (e.g. [{"after": "2023-01-01", "before": "2023-01-31"}])`),
		mcp.Items(map[string]interface{}{"type": "object"}),
	),
	mcp.WithArray("repository_ids",
		mcp.Description("Optional list of repository IDs to filter"),
		mcp.Items(map[string]interface{}{"type": "integer"}),
	),
	mcp.WithArray("team_ids",
		mcp.Description("Optional list of team IDs to filter"),
		mcp.Items(map[string]interface{}{"type": "integer"}),
	),
)

var exportMetricsTool = mcp.NewTool("export_metrics",
	mcp.WithDescription("Export metrics data in CSV or JSON format"),
	mcp.WithString("group_by",
		mcp.Required(),
		mcp.Description("Grouping level (e.g. 'organization', 'team', 'repository')"),
	),
	mcp.WithString("roll_up",
		mcp.Required(),
		mcp.Description("Time aggregation (e.g. '1d', '1w', '1mo', 'custom')"),
	),
	mcp.WithArray("requested_metrics",
		mcp.Required(),
		mcp.Description("List of metrics with optional aggregation"),
		mcp.Items(map[string]interface{}{"type": "object"}),
	),
	mcp.WithArray("time_ranges",
		mcp.Required(),
		mcp.Description("List of time ranges"),
		mcp.Items(map[string]interface{}{"type": "object"}),
	),
	mcp.WithString("file_format",
		mcp.Description("Export format ('csv' or 'json', default: 'csv')"),
		mcp.DefaultString("csv"),
		mcp.Enum("csv", "json"),
	),
	mcp.WithArray("repository_ids",
		mcp.Description("Optional list of repository IDs to filter"),
		mcp.Items(map[string]interface{}{"type": "integer"}),
	),
	mcp.WithArray("team_ids",
		mcp.Description("Optional list of team IDs to filter"),
		mcp.Items(map[string]interface{}{"type": "integer"}),
	),
)

var healthCheckTool = mcp.NewTool("health_check",
	mcp.WithDescription("Check API health status"),
)
