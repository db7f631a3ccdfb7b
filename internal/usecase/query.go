package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/linearbtools/linearb-mcp/internal/domain"
)

// Per-endpoint pagination ceilings imposed by the LinearB API.
const (
	maxDeploymentLimit = 100
	maxIncidentLimit   = 100
	maxPageSize        = 50
	maxSearchTermLen   = 100
)

// Query validates, clamps and forwards read-only calls to the LinearB API.
// Out-of-range page sizes and offsets are clamped rather than rejected, and
// enum-valued parameters outside the allowed set are silently dropped from
// the outgoing request; only genuinely unusable input (empty IDs, bad export
// formats, oversized search terms) is an InvalidArgument error.
type Query struct {
	client APICaller
	logger *slog.Logger
}

// NewQuery creates a new Query over the given API caller.
func NewQuery(client APICaller, logger *slog.Logger) *Query {
	return &Query{
		client: client,
		logger: logger.With("usecase", "Query"),
	}
}

// DeploymentFilter narrows a deployment listing. Zero values mean "unset".
type DeploymentFilter struct {
	RepositoryID int64
	After        string
	Before       string
	Limit        int
	Offset       int
	Stage        string
	SortBy       string
	SortDir      string
	CommitSHA    string
}

// ListDeployments lists deployments with optional filtering.
func (q *Query) ListDeployments(ctx context.Context, f DeploymentFilter) (interface{}, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(f.Limit, 10, maxDeploymentLimit)))
	params.Set("offset", strconv.Itoa(floorZero(f.Offset)))
	params.Set("sort_by", defaultString(f.SortBy, "published_at"))
	params.Set("sort_dir", defaultString(f.SortDir, "desc"))
	if f.RepositoryID != 0 {
		params.Set("repository_id", strconv.FormatInt(f.RepositoryID, 10))
	}
	setIfPresent(params, "after", f.After)
	setIfPresent(params, "before", f.Before)
	setIfPresent(params, "stage", f.Stage)
	setIfPresent(params, "commit_sha", f.CommitSHA)

	return q.client.Do(ctx, "GET", "/api/v1/deployments", params, nil)
}

// TeamSearch narrows a paginated team search.
type TeamSearch struct {
	Offset               int
	PageSize             int
	SearchTerm           string
	NonmergedMembersOnly bool
}

// SearchTeams searches teams with pagination using the V2 API.
func (q *Query) SearchTeams(ctx context.Context, s TeamSearch) (interface{}, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(floorZero(s.Offset)))
	params.Set("page_size", strconv.Itoa(clampLimit(s.PageSize, maxPageSize, maxPageSize)))
	params.Set("nonmerged_members_only", strconv.FormatBool(s.NonmergedMembersOnly))

	if term := strings.TrimSpace(s.SearchTerm); term != "" {
		if len(term) > maxSearchTermLen {
			return nil, domain.NewInvalidArgument("search_term must be between 1 and %d characters", maxSearchTermLen)
		}
		params.Set("search_term", term)
	}

	return q.client.Do(ctx, "GET", "/api/v2/teams", params, nil)
}

// UserSearch narrows a paginated user search. The enum-valued fields are
// dropped silently when outside their allowed sets.
type UserSearch struct {
	Offset              int
	PageSize            int
	OrderBy             string
	OrderDir            string
	SearchByField       string
	SearchTerm          string
	UserRole            string
	IncludeUserChildren bool
}

// SearchUsers searches users with pagination and filtering.
func (q *Query) SearchUsers(ctx context.Context, s UserSearch) (interface{}, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(floorZero(s.Offset)))
	params.Set("page_size", strconv.Itoa(clampLimit(s.PageSize, maxPageSize, maxPageSize)))
	params.Set("include_user_children", strconv.FormatBool(s.IncludeUserChildren))

	setIfAllowed(params, "order_by", s.OrderBy, "name", "email")
	setIfAllowed(params, "order_dir", s.OrderDir, "ASC", "DESC")
	setIfAllowed(params, "search_by_field", s.SearchByField, "name", "email")
	setIfAllowed(params, "user_role", s.UserRole, "admin", "editor", "viewer", "external", "basic")

	if term := strings.TrimSpace(s.SearchTerm); term != "" {
		if len(term) > maxSearchTermLen {
			return nil, domain.NewInvalidArgument("search_term must be between 1 and %d characters", maxSearchTermLen)
		}
		params.Set("search_term", term)
	}

	return q.client.Do(ctx, "GET", "/api/v1/users", params, nil)
}

// Services returns all services, optionally filtered by repository.
func (q *Query) Services(ctx context.Context, repositoryID int64) (interface{}, error) {
	params := url.Values{}
	if repositoryID != 0 {
		params.Set("repository_id", strconv.FormatInt(repositoryID, 10))
	}
	return q.client.Do(ctx, "GET", "/api/v1/services/", params, nil)
}

// Service returns a single service by ID.
func (q *Query) Service(ctx context.Context, serviceID int64) (interface{}, error) {
	if serviceID <= 0 {
		return nil, domain.NewInvalidArgument("service_id must be a positive integer")
	}
	return q.client.Do(ctx, "GET", fmt.Sprintf("/api/v1/services/%d", serviceID), nil, nil)
}

// Incident returns a single incident by provider ID.
func (q *Query) Incident(ctx context.Context, providerID string) (interface{}, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, domain.NewInvalidArgument("provider_id is required and cannot be empty")
	}
	return q.client.Do(ctx, "GET", "/api/v1/incidents/"+providerID, nil, nil)
}

// IncidentSearch narrows an incident search.
type IncidentSearch struct {
	Limit    int
	Offset   int
	Status   string
	Severity string
	After    string
	Before   string
}

// SearchIncidents searches incidents with filtering.
func (q *Query) SearchIncidents(ctx context.Context, s IncidentSearch) (interface{}, error) {
	payload := map[string]interface{}{
		"limit":  clampLimit(s.Limit, 10, maxIncidentLimit),
		"offset": floorZero(s.Offset),
	}
	putIfPresent(payload, "status", s.Status)
	putIfPresent(payload, "severity", s.Severity)
	putIfPresent(payload, "after", s.After)
	putIfPresent(payload, "before", s.Before)

	return q.client.Do(ctx, "POST", "/api/v1/incidents/search", nil, payload)
}

// MetricsQuery describes a measurements request. RequestedMetrics entries are
// objects of the form {"name": ..., "agg": ...}; TimeRanges entries are
// {"after": ..., "before": ...}.
type MetricsQuery struct {
	GroupBy          string
	RollUp           string
	RequestedMetrics []interface{}
	TimeRanges       []interface{}
	RepositoryIDs    []interface{}
	TeamIDs          []interface{}
}

func (m MetricsQuery) payload() (map[string]interface{}, error) {
	if len(m.RequestedMetrics) == 0 {
		return nil, domain.NewInvalidArgument("requested_metrics is required and cannot be empty")
	}
	if len(m.TimeRanges) == 0 {
		return nil, domain.NewInvalidArgument("time_ranges is required and cannot be empty")
	}
	payload := map[string]interface{}{
		"group_by":          m.GroupBy,
		"roll_up":           m.RollUp,
		"requested_metrics": m.RequestedMetrics,
		"time_ranges":       m.TimeRanges,
	}
	if len(m.RepositoryIDs) > 0 {
		payload["repository_ids"] = m.RepositoryIDs
	}
	if len(m.TeamIDs) > 0 {
		payload["team_ids"] = m.TeamIDs
	}
	return payload, nil
}

// Metrics queries metrics data.
func (q *Query) Metrics(ctx context.Context, m MetricsQuery) (interface{}, error) {
	payload, err := m.payload()
	if err != nil {
		return nil, err
	}
	return q.client.Do(ctx, "POST", "/api/v2/measurements", nil, payload)
}

// ExportMetrics exports metrics data in CSV or JSON format.
func (q *Query) ExportMetrics(ctx context.Context, m MetricsQuery, fileFormat string) (interface{}, error) {
	if fileFormat == "" {
		fileFormat = "csv"
	}
	if fileFormat != "csv" && fileFormat != "json" {
		return nil, domain.NewInvalidArgument("file_format must be 'csv' or 'json'")
	}
	payload, err := m.payload()
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("file_format", fileFormat)
	return q.client.Do(ctx, "POST", "/api/v2/measurements/export", params, payload)
}

// HealthCheck checks the health status of the API.
func (q *Query) HealthCheck(ctx context.Context) (interface{}, error) {
	return q.client.Do(ctx, "GET", "/api/v1/health", nil, nil)
}

// clampLimit substitutes def for unset values and clamps the result into
// [1, max].
func clampLimit(v, def, max int) int {
	if v == 0 {
		v = def
	}
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// setIfAllowed sets an enum-valued parameter only when the value is in the
// allowed set; anything else is dropped rather than rejected.
func setIfAllowed(params url.Values, key, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			params.Set(key, value)
			return
		}
	}
}

func putIfPresent(payload map[string]interface{}, key, value string) {
	if value != "" {
		payload[key] = value
	}
}
