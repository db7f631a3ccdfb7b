package openapi

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/linearbtools/linearb-mcp/internal/domain"
)

// tagBuckets defines the derived categorization of endpoints by tag keyword.
// For a given tag, the first matching bucket wins; an endpoint with several
// matching tags can land in several buckets. This view is independent of the
// hand-maintained taxonomy served by get_api_categories.
var tagBuckets = []struct {
	name     string
	keywords []string
}{
	{"deployments", []string{"deployment"}},
	{"teams", []string{"team"}},
	{"services", []string{"service"}},
	{"incidents", []string{"incident"}},
	{"measurements", []string{"measurement", "metric"}},
	{"health", []string{"health"}},
}

// ModelBuilder transforms a parsed OpenAPI document into the normalized
// endpoint model used by the discovery tools.
type ModelBuilder struct {
	logger *slog.Logger
}

// NewModelBuilder creates a new ModelBuilder.
func NewModelBuilder(logger *slog.Logger) *ModelBuilder {
	return &ModelBuilder{logger: logger.With("component", "openapi_builder")}
}

// Build walks every (path, method) pair of the document and produces one
// endpoint descriptor each, plus the tag-derived categorization.
// fallbackBaseURL is used when the document declares no servers.
func (b *ModelBuilder) Build(doc *openapi3.T, fallbackBaseURL string) *domain.APIModel {
	baseURL := fallbackBaseURL
	if len(doc.Servers) > 0 && doc.Servers[0].URL != "" {
		baseURL = doc.Servers[0].URL
	}

	var endpoints []domain.Endpoint
	for path, pathItem := range doc.Paths.Map() {
		if pathItem == nil {
			continue
		}
		for method, op := range pathItem.Operations() {
			if op == nil {
				continue
			}
			endpoints = append(endpoints, b.buildEndpoint(path, method, op))
		}
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Key() < endpoints[j].Key() })

	categories := make(map[string][]string, len(tagBuckets))
	for _, bucket := range tagBuckets {
		categories[bucket.name] = []string{}
	}
	for _, ep := range endpoints {
		for _, tag := range ep.Tags {
			if bucket := bucketForTag(tag); bucket != "" {
				categories[bucket] = append(categories[bucket], ep.Key())
			}
		}
	}

	b.logger.Info("Built endpoint model from OpenAPI specification.",
		slog.Int("endpoint_count", len(endpoints)),
		slog.String("base_url", baseURL))
	return domain.NewAPIModel(doc.Info, baseURL, endpoints, categories)
}

func (b *ModelBuilder) buildEndpoint(path, method string, op *openapi3.Operation) domain.Endpoint {
	ep := domain.Endpoint{
		Path:        path,
		Method:      strings.ToUpper(method),
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        append([]string(nil), op.Tags...),
		OperationID: op.OperationID,
		Parameters: domain.ParameterSet{
			Query:  []domain.Parameter{},
			Path:   []domain.Parameter{},
			Header: []domain.Parameter{},
		},
		Responses: make(map[string]domain.Response),
		ToolName:  domain.ToolNameForEndpoint(method, path),
	}

	for _, ref := range op.Parameters {
		if ref == nil || ref.Value == nil {
			continue
		}
		p := ref.Value
		param := domain.Parameter{
			Name:        p.Name,
			Type:        schemaTypeName(p.Schema),
			Required:    p.Required,
			Description: p.Description,
		}
		if p.Schema != nil && p.Schema.Value != nil {
			param.Default = p.Schema.Value.Default
			param.Enum = p.Schema.Value.Enum
			param.Minimum = p.Schema.Value.Min
			param.Maximum = p.Schema.Value.Max
		}
		switch p.In {
		case openapi3.ParameterInPath:
			ep.Parameters.Path = append(ep.Parameters.Path, param)
		case openapi3.ParameterInHeader:
			ep.Parameters.Header = append(ep.Parameters.Header, param)
		default:
			ep.Parameters.Query = append(ep.Parameters.Query, param)
		}
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		body := op.RequestBody.Value
		rb := &domain.RequestBody{
			Required:    body.Required,
			ContentType: "application/json",
		}
		if mt := body.Content.Get("application/json"); mt != nil {
			rb.Schema = mt.Schema
			if len(mt.Examples) > 0 {
				rb.Examples = mt.Examples
			}
		}
		ep.RequestBody = rb
	}

	if op.Responses != nil {
		for status, ref := range op.Responses.Map() {
			if ref == nil || ref.Value == nil {
				continue
			}
			resp := domain.Response{}
			if ref.Value.Description != nil {
				resp.Description = *ref.Value.Description
			}
			if mt := ref.Value.Content.Get("application/json"); mt != nil {
				resp.Schema = mt.Schema
			}
			ep.Responses[status] = resp
		}
	}

	return ep
}

func bucketForTag(tag string) string {
	lower := strings.ToLower(tag)
	for _, bucket := range tagBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.name
			}
		}
	}
	return ""
}

func schemaTypeName(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil || ref.Value.Type == nil {
		return "string"
	}
	if types := ref.Value.Type.Slice(); len(types) > 0 {
		return types[0]
	}
	return "string"
}
