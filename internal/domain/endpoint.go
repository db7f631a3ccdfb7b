package domain

import (
	"sort"
	"strings"
)

// Parameter describes a single operation parameter from the API specification.
type Parameter struct {
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Required    bool          `json:"required"`
	Description string        `json:"description"`
	Default     interface{}   `json:"default,omitempty"`
	Enum        []interface{} `json:"enum,omitempty"`
	Minimum     *float64      `json:"minimum,omitempty"`
	Maximum     *float64      `json:"maximum,omitempty"`
}

// ParameterSet partitions an endpoint's parameters by their location.
type ParameterSet struct {
	Query  []Parameter `json:"query"`
	Path   []Parameter `json:"path"`
	Header []Parameter `json:"header"`
}

// RequestBody describes the JSON request body of an endpoint.
type RequestBody struct {
	Required    bool        `json:"required"`
	ContentType string      `json:"content_type"`
	Schema      interface{} `json:"schema"`
	Examples    interface{} `json:"examples,omitempty"`
}

// Response describes one response of an endpoint, keyed by status code.
type Response struct {
	Description string      `json:"description"`
	Schema      interface{} `json:"schema,omitempty"`
}

// Endpoint is the normalized descriptor for one (method, path) pair of the
// upstream API. ToolName is set only for endpoints this server actually
// exposes as a tool; an empty value is legal and means "no tool".
type Endpoint struct {
	Path        string              `json:"path"`
	Method      string              `json:"method"`
	Summary     string              `json:"summary"`
	Description string              `json:"description"`
	Tags        []string            `json:"tags"`
	OperationID string              `json:"operation_id,omitempty"`
	Parameters  ParameterSet        `json:"parameters"`
	RequestBody *RequestBody        `json:"request_body"`
	Responses   map[string]Response `json:"responses"`
	ToolName    string              `json:"mcp_tool_name,omitempty"`
}

// Key returns the canonical "METHOD path" key for the endpoint.
func (e Endpoint) Key() string { return e.Method + " " + e.Path }

// APIModel is the queryable model derived from the loaded specification.
// It is built once at startup and read-only afterwards.
type APIModel struct {
	Info       interface{}
	BaseURL    string
	endpoints  map[string]map[string]Endpoint // path -> METHOD -> endpoint
	categories map[string][]string
}

// NewAPIModel assembles a model from prepared endpoints and the derived
// tag categorization.
func NewAPIModel(info interface{}, baseURL string, endpoints []Endpoint, categories map[string][]string) *APIModel {
	m := &APIModel{
		Info:       info,
		BaseURL:    baseURL,
		endpoints:  make(map[string]map[string]Endpoint),
		categories: categories,
	}
	for _, ep := range endpoints {
		byMethod, ok := m.endpoints[ep.Path]
		if !ok {
			byMethod = make(map[string]Endpoint)
			m.endpoints[ep.Path] = byMethod
		}
		byMethod[strings.ToUpper(ep.Method)] = ep
	}
	return m
}

// Endpoints returns all endpoint descriptors keyed by "METHOD path".
func (m *APIModel) Endpoints() map[string]Endpoint {
	out := make(map[string]Endpoint)
	for _, byMethod := range m.endpoints {
		for _, ep := range byMethod {
			out[ep.Key()] = ep
		}
	}
	return out
}

// Categories returns the tag-derived endpoint categorization.
func (m *APIModel) Categories() map[string][]string {
	out := make(map[string][]string, len(m.categories))
	for k, v := range m.categories {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Paths returns all known path templates, sorted.
func (m *APIModel) Paths() []string {
	out := make([]string, 0, len(m.endpoints))
	for p := range m.endpoints {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Methods returns the HTTP methods defined for a path, sorted.
func (m *APIModel) Methods(path string) []string {
	byMethod, ok := m.endpoints[path]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(byMethod))
	for method := range byMethod {
		out = append(out, method)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the endpoint for the given path and method. Method matching
// is case-insensitive.
func (m *APIModel) Lookup(path, method string) (Endpoint, bool) {
	byMethod, ok := m.endpoints[path]
	if !ok {
		return Endpoint{}, false
	}
	ep, ok := byMethod[strings.ToUpper(method)]
	return ep, ok
}

// HasPath reports whether the path exists in the specification.
func (m *APIModel) HasPath(path string) bool {
	_, ok := m.endpoints[path]
	return ok
}

// toolNameByEndpoint maps upstream endpoints to the MCP tool exposing them.
// Only read-only operations appear here; endpoints with no entry simply carry
// no tool name.
var toolNameByEndpoint = map[[2]string]string{
	{"GET", "/api/v1/deployments"}:             "list_deployments",
	{"GET", "/api/v2/teams"}:                   "search_teams_v2",
	{"GET", "/api/v1/users"}:                   "search_users",
	{"GET", "/api/v1/services/"}:               "get_services",
	{"GET", "/api/v1/services/{service_id}"}:   "get_service",
	{"GET", "/api/v1/incidents/{provider_id}"}: "get_incident",
	{"GET", "/api/v1/health"}:                  "health_check",
	{"POST", "/api/v1/incidents/search"}:       "search_incidents",
	{"POST", "/api/v2/measurements"}:           "post_metrics",
	{"POST", "/api/v2/measurements/export"}:    "export_metrics",
}

// ToolNameForEndpoint returns the MCP tool name serving the given endpoint,
// or "" when no tool covers it.
func ToolNameForEndpoint(method, path string) string {
	return toolNameByEndpoint[[2]string{strings.ToUpper(method), path}]
}

// FallbackToolNames lists the remote-call tools this server always exposes.
// Discovery returns this list when the specification document is unavailable.
func FallbackToolNames() []string {
	return []string{
		"list_deployments",
		"search_teams_v2",
		"search_users",
		"get_services",
		"get_service",
		"get_incident",
		"search_incidents",
		"post_metrics",
		"export_metrics",
		"health_check",
	}
}
