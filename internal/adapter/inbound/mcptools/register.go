package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/linearbtools/linearb-mcp/internal/domain"
	"github.com/linearbtools/linearb-mcp/internal/usecase"
)

// Handlers wires the MCP tool surface to the use cases behind it.
type Handlers struct {
	discovery *usecase.Discovery
	reference *usecase.Reference
	query     *usecase.Query
	logger    *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(discovery *usecase.Discovery, reference *usecase.Reference, query *usecase.Query, logger *slog.Logger) *Handlers {
	return &Handlers{
		discovery: discovery,
		reference: reference,
		query:     query,
		logger:    logger.With("component", "mcptools"),
	}
}

// Register adds every tool to the MCP server. This is the complete tool
// surface; it is static for the lifetime of the process.
func (h *Handlers) Register(s *server.MCPServer) {
	s.AddTool(discoverAPITool, h.handleDiscoverAPI)
	s.AddTool(getEndpointDetailsTool, h.handleEndpointDetails)
	s.AddTool(getAPICategoriesTool, h.handleAPICategories)
	s.AddTool(getUsageExamplesTool, h.handleUsageExamples)
	s.AddTool(getDocumentationFilesTool, h.handleDocumentationFiles)

	s.AddTool(getSupportedMetricsTool, h.handleSupportedMetrics)
	s.AddTool(getMetricsByCategoryTool, h.handleMetricsByCategory)
	s.AddTool(searchMetricsTool, h.handleSearchMetrics)
	s.AddTool(getMetricExamplesTool, h.handleMetricExamples)

	s.AddTool(getActiveTeamsTool, h.handleActiveTeams)
	s.AddTool(getTeamsByTypeTool, h.handleTeamsByType)
	s.AddTool(getComparableTeamsTool, h.handleComparableTeams)
	s.AddTool(searchTeamsByFocusTool, h.handleSearchTeamsByFocus)

	s.AddTool(listDeploymentsTool, h.handleListDeployments)
	s.AddTool(searchTeamsTool, h.handleSearchTeams)
	s.AddTool(searchUsersTool, h.handleSearchUsers)
	s.AddTool(getServicesTool, h.handleServices)
	s.AddTool(getServiceTool, h.handleService)
	s.AddTool(getIncidentTool, h.handleIncident)
	s.AddTool(searchIncidentsTool, h.handleSearchIncidents)
	s.AddTool(postMetricsTool, h.handlePostMetrics)
	s.AddTool(exportMetricsTool, h.handleExportMetrics)
	s.AddTool(healthCheckTool, h.handleHealthCheck)

	h.logger.Info("Registered MCP tools.", slog.Int("count", 23))
}

// jsonResult marshals a structured result into a text content block.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// failure maps a use-case error to a tool result. NotFound conditions and the
// degraded-spec condition are structured results carrying an "error" key plus
// the valid alternatives, matching what callers branch on; invalid arguments
// and upstream failures are tool errors.
func (h *Handlers) failure(err error) (*mcp.CallToolResult, error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		result := map[string]interface{}{"error": notFound.Message}
		if notFound.AltLabel != "" {
			result[notFound.AltLabel] = notFound.Alternatives
		}
		return jsonResult(result)
	}
	if errors.Is(err, domain.ErrSpecUnavailable) {
		return jsonResult(map[string]interface{}{"error": domain.ErrSpecUnavailable.Error()})
	}
	var invalid *domain.InvalidArgumentError
	if errors.As(err, &invalid) {
		return mcp.NewToolResultError(invalid.Reason), nil
	}
	h.logger.Error("Tool invocation failed.", slog.Any("error", err))
	return mcp.NewToolResultError(err.Error()), nil
}

// --- Discovery handlers ---

func (h *Handlers) handleDiscoverAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.discovery.DiscoverAPI())
}

func (h *Handlers) handleEndpointDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("endpoint_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.discovery.EndpointDetails(path, req.GetString("method", "GET"))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleAPICategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.discovery.APICategories())
}

func (h *Handlers) handleUsageExamples(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.discovery.UsageExamples(req.GetString("category", ""), req.GetString("tool_name", ""))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleDocumentationFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.discovery.DocumentationFiles()
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

// --- Metric reference handlers ---

func (h *Handlers) handleSupportedMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.reference.SupportedMetrics())
}

func (h *Handlers) handleMetricsByCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.reference.MetricsByCategory(req.GetString("category", ""))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleSearchMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := req.RequireString("search_term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var hasAggregation *bool
	if v, ok := req.GetArguments()["has_aggregation"].(bool); ok {
		hasAggregation = &v
	}
	result, err := h.reference.SearchMetrics(term, req.GetString("category", ""), hasAggregation)
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleMetricExamples(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.discovery.MetricQueryExamples())
}

// --- Team reference handlers ---

func (h *Handlers) handleActiveTeams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.reference.ActiveTeams())
}

func (h *Handlers) handleTeamsByType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.reference.TeamsByType(req.GetString("team_type", ""))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleComparableTeams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.reference.ComparableTeams())
}

func (h *Handlers) handleSearchTeamsByFocus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := req.RequireString("search_term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.reference.SearchTeamsByFocus(term,
		req.GetString("team_type", ""),
		req.GetBool("comparable_only", false))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

// --- Remote API handlers ---

func (h *Handlers) handleListDeployments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.ListDeployments(ctx, usecase.DeploymentFilter{
		RepositoryID: int64(req.GetInt("repository_id", 0)),
		After:        req.GetString("after", ""),
		Before:       req.GetString("before", ""),
		Limit:        req.GetInt("limit", 10),
		Offset:       req.GetInt("offset", 0),
		Stage:        req.GetString("stage", ""),
		SortBy:       req.GetString("sort_by", "published_at"),
		SortDir:      req.GetString("sort_dir", "desc"),
		CommitSHA:    req.GetString("commit_sha", ""),
	})
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleSearchTeams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.SearchTeams(ctx, usecase.TeamSearch{
		Offset:               req.GetInt("offset", 0),
		PageSize:             req.GetInt("page_size", 50),
		SearchTerm:           req.GetString("search_term", ""),
		NonmergedMembersOnly: req.GetBool("nonmerged_members_only", false),
	})
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleSearchUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.SearchUsers(ctx, usecase.UserSearch{
		Offset:              req.GetInt("offset", 0),
		PageSize:            req.GetInt("page_size", 50),
		OrderBy:             req.GetString("order_by", ""),
		OrderDir:            req.GetString("order_dir", ""),
		SearchByField:       req.GetString("search_by_field", ""),
		SearchTerm:          req.GetString("search_term", ""),
		UserRole:            req.GetString("user_role", ""),
		IncludeUserChildren: req.GetBool("include_user_children", false),
	})
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleServices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.Services(ctx, int64(req.GetInt("repository_id", 0)))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleService(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("service_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.query.Service(ctx, int64(id))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleIncident(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	providerID, err := req.RequireString("provider_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.query.Incident(ctx, providerID)
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleSearchIncidents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.SearchIncidents(ctx, usecase.IncidentSearch{
		Limit:    req.GetInt("limit", 10),
		Offset:   req.GetInt("offset", 0),
		Status:   req.GetString("status", ""),
		Severity: req.GetString("severity", ""),
		After:    req.GetString("after", ""),
		Before:   req.GetString("before", ""),
	})
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handlePostMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := metricsQueryFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.query.Metrics(ctx, query)
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleExportMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := metricsQueryFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.query.ExportMetrics(ctx, query, req.GetString("file_format", "csv"))
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func (h *Handlers) handleHealthCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.query.HealthCheck(ctx)
	if err != nil {
		return h.failure(err)
	}
	return jsonResult(result)
}

func metricsQueryFromRequest(req mcp.CallToolRequest) (usecase.MetricsQuery, error) {
	groupBy, err := req.RequireString("group_by")
	if err != nil {
		return usecase.MetricsQuery{}, err
	}
	rollUp, err := req.RequireString("roll_up")
	if err != nil {
		return usecase.MetricsQuery{}, err
	}
	args := req.GetArguments()
	return usecase.MetricsQuery{
		GroupBy:          groupBy,
		RollUp:           rollUp,
		RequestedMetrics: anySlice(args["requested_metrics"]),
		TimeRanges:       anySlice(args["time_ranges"]),
		RepositoryIDs:    anySlice(args["repository_ids"]),
		TeamIDs:          anySlice(args["team_ids"]),
	}, nil
}

func anySlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}
