package usecase

import (
	"log/slog"
	"strings"

	"github.com/linearbtools/linearb-mcp/internal/domain"
)

const minSearchTermLen = 2

// Reference answers queries against the static metric and team reference
// tables. The tables are immutable after construction, so every method is
// safe for concurrent callers.
type Reference struct {
	metrics *domain.MetricCatalog
	teams   *domain.TeamCatalog
	logger  *slog.Logger
}

// NewReference creates a new Reference over the given catalogs.
func NewReference(metrics *domain.MetricCatalog, teams *domain.TeamCatalog, logger *slog.Logger) *Reference {
	return &Reference{
		metrics: metrics,
		teams:   teams,
		logger:  logger.With("usecase", "Reference"),
	}
}

// SupportedMetrics returns the complete metrics reference.
func (r *Reference) SupportedMetrics() map[string]interface{} {
	return map[string]interface{}{
		"total_metrics":   r.metrics.Len(),
		"categories":      len(r.metrics.CategoryIDs()),
		"metrics":         r.metrics.Metrics(),
		"categories_info": r.metrics.Categories(),
		"usage_note":      "Use these metric names in post_metrics() calls. Specify aggregation (p75, p50, avg) where supported.",
	}
}

// MetricsByCategory returns the metrics of one category, or an index of all
// categories when category is empty. An unknown category is a NotFound error
// listing the valid identifiers.
func (r *Reference) MetricsByCategory(category string) (map[string]interface{}, error) {
	if category != "" {
		cat, ok := r.metrics.Category(category)
		if !ok {
			return nil, &domain.NotFoundError{
				Message:      "Category '" + category + "' not found",
				AltLabel:     "available_categories",
				Alternatives: r.metrics.CategoryIDs(),
			}
		}
		details := make(map[string]domain.Metric, len(cat.Metrics))
		for _, name := range cat.Metrics {
			if m, ok := r.metrics.Get(name); ok {
				details[name] = m
			}
		}
		return map[string]interface{}{
			"category":      category,
			"name":          cat.Name,
			"description":   cat.Description,
			"total_metrics": len(cat.Metrics),
			"metrics":       details,
		}, nil
	}

	categories := make(map[string]interface{})
	for id, cat := range r.metrics.Categories() {
		categories[id] = map[string]interface{}{
			"name":         cat.Name,
			"description":  cat.Description,
			"metric_count": len(cat.Metrics),
			"metrics":      cat.Metrics,
		}
	}
	return map[string]interface{}{
		"total_categories": len(r.metrics.CategoryIDs()),
		"categories":       categories,
	}, nil
}

// SearchMetrics matches the term against metric names and descriptions, then
// applies the category and aggregation filters. hasAggregation is a tristate:
// nil means no filter.
func (r *Reference) SearchMetrics(term, category string, hasAggregation *bool) (map[string]interface{}, error) {
	normalized, err := normalizeSearchTerm(term)
	if err != nil {
		return nil, err
	}

	matches := make(map[string]domain.Metric)
	for _, name := range r.metrics.Names() {
		m, _ := r.metrics.Get(name)
		if !strings.Contains(strings.ToLower(m.Name), normalized) &&
			!strings.Contains(strings.ToLower(m.Description), normalized) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		if hasAggregation != nil && *hasAggregation != (len(m.Aggregations) > 0) {
			continue
		}
		matches[name] = m
	}

	r.logger.Debug("Metric search completed",
		slog.String("term", normalized), slog.Int("matches", len(matches)))
	return map[string]interface{}{
		"search_term": normalized,
		"filters": map[string]interface{}{
			"category":        nilIfEmpty(category),
			"has_aggregation": hasAggregation,
		},
		"total_matches": len(matches),
		"metrics":       matches,
	}, nil
}

// ActiveTeams returns the complete teams reference.
func (r *Reference) ActiveTeams() map[string]interface{} {
	return map[string]interface{}{
		"total_teams": r.teams.Len(),
		"team_types":  len(r.teams.TypeIDs()),
		"teams":       r.teams.Teams(),
		"types":       r.teams.Types(),
		"usage_note":  "Use team names in metrics queries. Engineering teams are comparable, QA teams should be analyzed separately.",
	}
}

// TeamsByType returns the teams of one type, or an index of all types when
// teamType is empty. An unknown type is a NotFound error listing the valid
// identifiers.
func (r *Reference) TeamsByType(teamType string) (map[string]interface{}, error) {
	if teamType != "" {
		info, ok := r.teams.Type(teamType)
		if !ok {
			return nil, &domain.NotFoundError{
				Message:      "Team type '" + teamType + "' not found",
				AltLabel:     "available_types",
				Alternatives: r.teams.TypeIDs(),
			}
		}
		details := make(map[string]domain.Team, len(info.Teams))
		for _, id := range info.Teams {
			if t, ok := r.teams.Get(id); ok {
				details[id] = t
			}
		}
		return map[string]interface{}{
			"team_type":   teamType,
			"name":        info.Name,
			"description": info.Description,
			"comparable":  info.Comparable,
			"total_teams": len(info.Teams),
			"teams":       details,
		}, nil
	}

	types := make(map[string]interface{})
	for id, info := range r.teams.Types() {
		types[id] = map[string]interface{}{
			"name":        info.Name,
			"description": info.Description,
			"comparable":  info.Comparable,
			"team_count":  len(info.Teams),
			"teams":       info.Teams,
		}
	}
	return map[string]interface{}{
		"total_types": len(r.teams.TypeIDs()),
		"types":       types,
	}, nil
}

// ComparableTeams partitions the team table by the comparability flag. The
// two sets are disjoint and together cover every team.
func (r *Reference) ComparableTeams() map[string]interface{} {
	comparable := make(map[string]domain.Team)
	excluded := make(map[string]domain.Team)
	for _, id := range r.teams.IDs() {
		t, _ := r.teams.Get(id)
		if t.Comparable {
			comparable[id] = t
		} else {
			excluded[id] = t
		}
	}
	return map[string]interface{}{
		"total_comparable_teams": len(comparable),
		"teams":                  comparable,
		"excluded_teams":         excluded,
		"usage_note":             "These teams can be compared in metrics analysis. QA teams are tracked separately.",
	}
}

// SearchTeamsByFocus matches the term against team names, descriptions and
// focus areas, then applies the type and comparability filters.
func (r *Reference) SearchTeamsByFocus(term, teamType string, comparableOnly bool) (map[string]interface{}, error) {
	normalized, err := normalizeSearchTerm(term)
	if err != nil {
		return nil, err
	}

	matches := make(map[string]domain.Team)
	for _, id := range r.teams.IDs() {
		t, _ := r.teams.Get(id)
		if !teamMatches(t, normalized) {
			continue
		}
		if teamType != "" && t.Type != teamType {
			continue
		}
		if comparableOnly && !t.Comparable {
			continue
		}
		matches[id] = t
	}

	r.logger.Debug("Team search completed",
		slog.String("term", normalized), slog.Int("matches", len(matches)))
	return map[string]interface{}{
		"search_term": normalized,
		"filters": map[string]interface{}{
			"team_type":       nilIfEmpty(teamType),
			"comparable_only": comparableOnly,
		},
		"total_matches": len(matches),
		"teams":         matches,
	}, nil
}

func teamMatches(t domain.Team, term string) bool {
	if strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	for _, area := range t.FocusAreas {
		if strings.Contains(strings.ToLower(area), term) {
			return true
		}
	}
	return false
}

// normalizeSearchTerm lower-cases and trims the term, rejecting terms that
// end up shorter than two characters.
func normalizeSearchTerm(term string) (string, error) {
	trimmed := strings.TrimSpace(term)
	if len(trimmed) < minSearchTermLen {
		return "", domain.NewInvalidArgument("search_term must be at least %d characters long", minSearchTermLen)
	}
	return strings.ToLower(trimmed), nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
