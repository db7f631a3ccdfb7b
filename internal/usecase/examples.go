package usecase

// Hand-authored reference corpora served by the discovery tools. These are
// deliberately independent of the OpenAPI-derived endpoint model: they exist
// for human browsing and may diverge from the derived categorization.

type curatedEndpoint struct {
	Tool        string `json:"tool"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type curatedCategory struct {
	Description string            `json:"description"`
	Endpoints   []curatedEndpoint `json:"endpoints"`
}

var curatedCategories = map[string]curatedCategory{
	"deployments": {
		Description: "View deployment information (read-only)",
		Endpoints: []curatedEndpoint{
			{"list_deployments", "GET", "/api/v1/deployments", "List deployments with filtering"},
		},
	},
	"teams": {
		Description: "View team information using V2 API (read-only)",
		Endpoints: []curatedEndpoint{
			{"search_teams_v2", "GET", "/api/v2/teams", "Search teams with pagination"},
		},
	},
	"users": {
		Description: "View user information (read-only)",
		Endpoints: []curatedEndpoint{
			{"search_users", "GET", "/api/v1/users", "Search users with pagination"},
		},
	},
	"services": {
		Description: "Retrieve service information",
		Endpoints: []curatedEndpoint{
			{"get_services", "GET", "/api/v1/services/", "Get all services"},
			{"get_service", "GET", "/api/v1/services/{service_id}", "Get specific service by ID"},
		},
	},
	"incidents": {
		Description: "View incident information (read-only)",
		Endpoints: []curatedEndpoint{
			{"get_incident", "GET", "/api/v1/incidents/{provider_id}", "Get specific incident"},
			{"search_incidents", "POST", "/api/v1/incidents/search", "Search incidents with filtering"},
		},
	},
	"metrics": {
		Description: "Query and export metrics data (read-only)",
		Endpoints: []curatedEndpoint{
			{"post_metrics", "POST", "/api/v2/measurements", "Query metrics data"},
			{"export_metrics", "POST", "/api/v2/measurements/export", "Export metrics in CSV/JSON"},
		},
	},
	"health": {
		Description: "Monitor API health",
		Endpoints: []curatedEndpoint{
			{"health_check", "GET", "/api/v1/health", "Check API health status"},
		},
	},
	"discovery": {
		Description: "API discovery and reference tools",
		Endpoints: []curatedEndpoint{
			{"discover_api", "N/A", "N/A", "Get comprehensive API information"},
			{"get_endpoint_details", "N/A", "N/A", "Get detailed endpoint information"},
			{"get_api_categories", "N/A", "N/A", "Get API endpoints by categories"},
			{"get_usage_examples", "N/A", "N/A", "Get usage examples"},
			{"get_documentation_files", "N/A", "N/A", "List documentation files"},
			{"get_supported_metrics", "N/A", "N/A", "Get all supported metrics"},
			{"get_metrics_by_category", "N/A", "N/A", "Get metrics by category"},
			{"search_metrics", "N/A", "N/A", "Search metrics by name/description"},
			{"get_metric_examples", "N/A", "N/A", "Get metric usage examples"},
			{"get_active_teams", "N/A", "N/A", "Get all active teams"},
			{"get_teams_by_type", "N/A", "N/A", "Get teams by type (engineering/qa)"},
			{"get_comparable_teams", "N/A", "N/A", "Get comparable engineering teams"},
			{"search_teams_by_focus", "N/A", "N/A", "Search teams by focus area"},
		},
	},
}

type toolExample struct {
	Title      string                 `json:"title"`
	Code       string                 `json:"code"`
	Parameters map[string]interface{} `json:"parameters"`
}

type toolExamples struct {
	Description string        `json:"description"`
	Examples    []toolExample `json:"examples"`
}

var usageExamples = map[string]map[string]toolExamples{
	"deployments": {
		"list_deployments": {
			Description: "List recent deployments with filtering (read-only)",
			Examples: []toolExample{
				{
					Title:      "List 10 most recent deployments",
					Code:       `list_deployments(limit=10, sort_dir="desc")`,
					Parameters: map[string]interface{}{"limit": 10, "sort_dir": "desc"},
				},
				{
					Title:      "List deployments for specific repository",
					Code:       `list_deployments(repository_id=12345, limit=20)`,
					Parameters: map[string]interface{}{"repository_id": 12345, "limit": 20},
				},
				{
					Title:      "List deployments in date range",
					Code:       `list_deployments(after="2023-01-01", before="2023-12-31")`,
					Parameters: map[string]interface{}{"after": "2023-01-01", "before": "2023-12-31"},
				},
			},
		},
	},
	"teams": {
		"search_teams_v2": {
			Description: "Search teams with V2 API (read-only)",
			Examples: []toolExample{
				{
					Title:      "Search all teams",
					Code:       `search_teams_v2(page_size=50)`,
					Parameters: map[string]interface{}{"page_size": 50},
				},
				{
					Title:      "Search teams by name",
					Code:       `search_teams_v2(search_term="backend", page_size=20)`,
					Parameters: map[string]interface{}{"search_term": "backend", "page_size": 20},
				},
			},
		},
	},
	"users": {
		"search_users": {
			Description: "Search users with filtering (read-only)",
			Examples: []toolExample{
				{
					Title:      "Search all users",
					Code:       `search_users(page_size=50)`,
					Parameters: map[string]interface{}{"page_size": 50},
				},
				{
					Title: "Search users by name",
					Code:  `search_users(search_by_field="name", search_term="john", order_by="name")`,
					Parameters: map[string]interface{}{
						"search_by_field": "name",
						"search_term":     "john",
						"order_by":        "name",
					},
				},
			},
		},
	},
	"metrics": {
		"post_metrics": {
			Description: "Query metrics data",
			Examples: []toolExample{
				{
					Title: "Get cycle time metrics",
					Code: `post_metrics(
    group_by="organization",
    roll_up="1w",
    requested_metrics=[{"name": "branch.computed.cycle_time", "agg": "p75"}],
    time_ranges=[{"after": "2023-01-01", "before": "2023-01-31"}])`,
					Parameters: map[string]interface{}{
						"group_by":          "organization",
						"roll_up":           "1w",
						"requested_metrics": []interface{}{map[string]interface{}{"name": "branch.computed.cycle_time", "agg": "p75"}},
						"time_ranges":       []interface{}{map[string]interface{}{"after": "2023-01-01", "before": "2023-01-31"}},
					},
				},
			},
		},
	},
	"incidents": {
		"search_incidents": {
			Description: "Search incidents with filtering (read-only)",
			Examples: []toolExample{
				{
					Title:      "Search recent incidents",
					Code:       `search_incidents(limit=20, after="2023-01-01")`,
					Parameters: map[string]interface{}{"limit": 20, "after": "2023-01-01"},
				},
				{
					Title:      "Search incidents by status",
					Code:       `search_incidents(status="open", limit=10)`,
					Parameters: map[string]interface{}{"status": "open", "limit": 10},
				},
			},
		},
		"get_incident": {
			Description: "Get specific incident details (read-only)",
			Examples: []toolExample{
				{
					Title:      "Get incident by provider ID",
					Code:       `get_incident(provider_id="INC-001")`,
					Parameters: map[string]interface{}{"provider_id": "INC-001"},
				},
			},
		},
	},
	"metrics_discovery": {
		"get_supported_metrics": {
			Description: "Get comprehensive metrics reference",
			Examples: []toolExample{
				{
					Title:      "Get all supported metrics",
					Code:       `get_supported_metrics()`,
					Parameters: map[string]interface{}{},
				},
			},
		},
		"search_metrics": {
			Description: "Search for specific metrics",
			Examples: []toolExample{
				{
					Title:      "Search cycle time metrics",
					Code:       `search_metrics("cycle", category="cycle_time")`,
					Parameters: map[string]interface{}{"search_term": "cycle", "category": "cycle_time"},
				},
				{
					Title:      "Find metrics with aggregation support",
					Code:       `search_metrics("time", has_aggregation=true)`,
					Parameters: map[string]interface{}{"search_term": "time", "has_aggregation": true},
				},
			},
		},
		"get_metrics_by_category": {
			Description: "Get metrics organized by category",
			Examples: []toolExample{
				{
					Title:      "Get all pull request metrics",
					Code:       `get_metrics_by_category("pull_requests")`,
					Parameters: map[string]interface{}{"category": "pull_requests"},
				},
				{
					Title:      "Get all categories overview",
					Code:       `get_metrics_by_category()`,
					Parameters: map[string]interface{}{},
				},
			},
		},
	},
	"teams_discovery": {
		"get_active_teams": {
			Description: "Get comprehensive active teams reference",
			Examples: []toolExample{
				{
					Title:      "Get all active teams",
					Code:       `get_active_teams()`,
					Parameters: map[string]interface{}{},
				},
			},
		},
		"get_comparable_teams": {
			Description: "Get teams suitable for comparison",
			Examples: []toolExample{
				{
					Title:      "Get engineering teams for comparison",
					Code:       `get_comparable_teams()`,
					Parameters: map[string]interface{}{},
				},
			},
		},
		"search_teams_by_focus": {
			Description: "Search teams by focus area",
			Examples: []toolExample{
				{
					Title:      "Find integration teams",
					Code:       `search_teams_by_focus("integration", comparable_only=true)`,
					Parameters: map[string]interface{}{"search_term": "integration", "comparable_only": true},
				},
				{
					Title:      "Find QA teams",
					Code:       `search_teams_by_focus("automation", team_type="qa")`,
					Parameters: map[string]interface{}{"search_term": "automation", "team_type": "qa"},
				},
			},
		},
	},
}

func metricQueryExamples() map[string]interface{} {
	return map[string]interface{}{
		"examples": map[string]interface{}{
			"cycle_time_analysis": map[string]interface{}{
				"description": "Analyze development cycle time with different aggregations",
				"code": `post_metrics(
    group_by="team",
    roll_up="1w",
    requested_metrics=[
        {"name": "branch.computed.cycle_time", "agg": "p75"},
        {"name": "branch.time_to_pr", "agg": "p50"},
        {"name": "branch.review_time", "agg": "avg"}
    ],
    time_ranges=[{"after": "2023-01-01", "before": "2023-01-31"}])`,
				"metrics_used": []string{"branch.computed.cycle_time", "branch.time_to_pr", "branch.review_time"},
			},
			"pr_quality_metrics": map[string]interface{}{
				"description": "Analyze pull request quality and review patterns",
				"code": `post_metrics(
    group_by="repository",
    roll_up="1mo",
    requested_metrics=[
        {"name": "pr.merged"},
        {"name": "pr.review_depth"},
        {"name": "pr.merged.without.review.count"},
        {"name": "pr.merged.size", "agg": "p75"}
    ],
    time_ranges=[{"after": "2023-01-01", "before": "2023-12-31"}])`,
				"metrics_used": []string{"pr.merged", "pr.review_depth", "pr.merged.without.review.count", "pr.merged.size"},
			},
			"activity_overview": map[string]interface{}{
				"description": "Get overview of development activity",
				"code": `post_metrics(
    group_by="organization",
    roll_up="1d",
    requested_metrics=[
        {"name": "commit.total.count"},
        {"name": "pr.new"},
        {"name": "pr.reviews"},
        {"name": "commit.activity_days"}
    ],
    time_ranges=[{"after": "2023-12-01", "before": "2023-12-31"}])`,
				"metrics_used": []string{"commit.total.count", "pr.new", "pr.reviews", "commit.activity_days"},
			},
			"code_quality_analysis": map[string]interface{}{
				"description": "Analyze code quality through rework and refactor metrics",
				"code": `post_metrics(
    group_by="team",
    roll_up="1w",
    requested_metrics=[
        {"name": "commit.activity.new_work.count"},
        {"name": "commit.activity.rework.count"},
        {"name": "commit.activity.refactor.count"},
        {"name": "commit.total_changes"}
    ],
    time_ranges=[{"after": "2023-01-01", "before": "2023-03-31"}])`,
				"metrics_used": []string{"commit.activity.new_work.count", "commit.activity.rework.count", "commit.activity.refactor.count", "commit.total_changes"},
			},
			"reliability_metrics": map[string]interface{}{
				"description": "Monitor system reliability and incident metrics",
				"code": `post_metrics(
    group_by="organization",
    roll_up="1mo",
    requested_metrics=[
        {"name": "pm.mttr"},
        {"name": "pm.cfr.issues.done"},
        {"name": "releases.count"}
    ],
    time_ranges=[{"after": "2023-01-01", "before": "2023-12-31"}])`,
				"metrics_used": []string{"pm.mttr", "pm.cfr.issues.done", "releases.count"},
			},
		},
		"aggregation_guide": map[string]interface{}{
			"p75": "75th percentile - good for understanding typical high-end performance",
			"p50": "50th percentile (median) - represents typical performance",
			"avg": "Average - useful for overall trends but can be skewed by outliers",
		},
		"best_practices": []string{
			"Use p75 for cycle time metrics to understand realistic delivery times",
			"Use p50 for median performance analysis",
			"Combine count metrics with time-based metrics for comprehensive analysis",
			"Use appropriate roll_up periods: 1d for detailed analysis, 1w for trends, 1mo for high-level overview",
		},
	}
}
