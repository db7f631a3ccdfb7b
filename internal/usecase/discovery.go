package usecase

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/linearbtools/linearb-mcp/internal/domain"
)

// Discovery answers structured queries about the upstream API surface: the
// endpoint model derived from the OpenAPI document, the hand-maintained
// category taxonomy, the usage-example corpus and the documentation files.
//
// The model may be nil when the specification document failed to load; in
// that case discover_api degrades to a static capability list and endpoint
// detail lookups report the specification as unavailable. Everything
// hand-authored keeps working.
type Discovery struct {
	model   *domain.APIModel
	docsDir string
	logger  *slog.Logger
}

// NewDiscovery creates a new Discovery. model may be nil.
func NewDiscovery(model *domain.APIModel, docsDir string, logger *slog.Logger) *Discovery {
	return &Discovery{
		model:   model,
		docsDir: docsDir,
		logger:  logger.With("usecase", "Discovery"),
	}
}

// Degraded reports whether the specification document is unavailable.
func (d *Discovery) Degraded() bool { return d.model == nil }

// DiscoverAPI returns the full endpoint enumeration with the tag-derived
// categorization. Without a loaded specification it returns an error-keyed
// result carrying the static tool list instead; callers branch on the
// presence of the "error" key.
func (d *Discovery) DiscoverAPI() map[string]interface{} {
	if d.model == nil {
		return map[string]interface{}{
			"error":           domain.ErrSpecUnavailable.Error(),
			"available_tools": domain.FallbackToolNames(),
		}
	}
	return map[string]interface{}{
		"api_info":   d.model.Info,
		"base_url":   d.model.BaseURL,
		"endpoints":  d.model.Endpoints(),
		"categories": d.model.Categories(),
	}
}

// EndpointDetails returns the descriptor for one (path, method) pair.
// method defaults to GET and is matched case-insensitively. Unknown paths
// and methods come back as NotFound errors enumerating what is available.
func (d *Discovery) EndpointDetails(path, method string) (map[string]interface{}, error) {
	if d.model == nil {
		return nil, domain.ErrSpecUnavailable
	}
	if method == "" {
		method = "GET"
	}
	method = strings.ToUpper(method)

	if !d.model.HasPath(path) {
		return nil, &domain.NotFoundError{
			Message:      "Endpoint '" + path + "' not found",
			AltLabel:     "available_endpoints",
			Alternatives: d.model.Paths(),
		}
	}
	ep, ok := d.model.Lookup(path, method)
	if !ok {
		return nil, &domain.NotFoundError{
			Message:      "Method '" + method + "' not available for '" + path + "'",
			AltLabel:     "available_methods",
			Alternatives: d.model.Methods(path),
		}
	}

	var toolName interface{}
	if ep.ToolName != "" {
		toolName = ep.ToolName
	}
	return map[string]interface{}{
		"endpoint":      method + " " + path,
		"summary":       ep.Summary,
		"description":   ep.Description,
		"tags":          ep.Tags,
		"parameters":    ep.Parameters,
		"request_body":  ep.RequestBody,
		"responses":     ep.Responses,
		"mcp_tool_name": toolName,
	}, nil
}

// APICategories returns the curated category taxonomy with totals. It is
// hand-authored, so it works regardless of specification-load success.
func (d *Discovery) APICategories() map[string]interface{} {
	total := 0
	for _, cat := range curatedCategories {
		total += len(cat.Endpoints)
	}
	return map[string]interface{}{
		"total_categories": len(curatedCategories),
		"total_endpoints":  total,
		"categories":       curatedCategories,
	}
}

// UsageExamples returns the example corpus, narrowed to one tool or one
// category when requested. toolName takes precedence over category.
func (d *Discovery) UsageExamples(category, toolName string) (map[string]interface{}, error) {
	if toolName != "" {
		for catName, tools := range usageExamples {
			if examples, ok := tools[toolName]; ok {
				return map[string]interface{}{
					"tool":     toolName,
					"category": catName,
					"examples": examples,
				}, nil
			}
		}
		return nil, &domain.NotFoundError{
			Message: "No examples found for tool '" + toolName + "'",
		}
	}

	if category != "" {
		tools, ok := usageExamples[category]
		if !ok {
			return nil, &domain.NotFoundError{
				Message:      "Category '" + category + "' not found",
				AltLabel:     "available_categories",
				Alternatives: usageExampleCategories(),
			}
		}
		return map[string]interface{}{
			"category": category,
			"tools":    tools,
		}, nil
	}

	return map[string]interface{}{
		"all_categories": usageExampleCategories(),
		"examples":       usageExamples,
	}, nil
}

// MetricQueryExamples returns the worked metric-query corpus together with
// the aggregation guide.
func (d *Discovery) MetricQueryExamples() map[string]interface{} {
	return metricQueryExamples()
}

// DocumentationFiles enumerates the PDF reference documents under the
// configured directory. The file's category is the part of its name before
// the " - " separator, or the whole name when the separator is absent.
func (d *Discovery) DocumentationFiles() (map[string]interface{}, error) {
	entries, err := os.ReadDir(d.docsDir)
	if err != nil {
		d.logger.Warn("Documentation directory not readable",
			slog.String("dir", d.docsDir), slog.Any("error", err))
		return nil, &domain.NotFoundError{Message: "Documentation directory not found"}
	}

	type docFile struct {
		Filename string `json:"filename"`
		Category string `json:"category"`
		Path     string `json:"path"`
	}
	var files []docFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		category := stem
		if idx := strings.Index(stem, " - "); idx >= 0 {
			category = stem[:idx]
		}
		files = append(files, docFile{
			Filename: entry.Name(),
			Category: category,
			Path:     filepath.Join(d.docsDir, entry.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].Category != files[j].Category {
			return files[i].Category < files[j].Category
		}
		return files[i].Filename < files[j].Filename
	})

	return map[string]interface{}{
		"documentation_path": d.docsDir,
		"total_files":        len(files),
		"files":              files,
	}, nil
}

func usageExampleCategories() []string {
	out := make([]string, 0, len(usageExamples))
	for cat := range usageExamples {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
