package usecase_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linearbtools/linearb-mcp/internal/domain"
	"github.com/linearbtools/linearb-mcp/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newReference() *usecase.Reference {
	return usecase.NewReference(domain.NewMetricCatalog(), domain.NewTeamCatalog(), testLogger())
}

func TestReference_SupportedMetrics(t *testing.T) {
	assert := assert.New(t)

	result := newReference().SupportedMetrics()

	assert.Equal(22, result["total_metrics"])
	assert.Equal(7, result["categories"])

	metrics, ok := result["metrics"].(map[string]domain.Metric)
	require.True(t, ok)
	assert.Len(metrics, 22)
	assert.Contains(metrics, "branch.computed.cycle_time")

	categories, ok := result["categories_info"].(map[string]domain.MetricCategory)
	require.True(t, ok)
	assert.Len(categories, 7)
}

func TestReference_MetricsByCategory(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ref := newReference()

	result, err := ref.MetricsByCategory("cycle_time")
	require.NoError(err)
	assert.Equal("cycle_time", result["category"])
	assert.Equal(5, result["total_metrics"])
	metrics := result["metrics"].(map[string]domain.Metric)
	assert.Contains(metrics, "branch.time_to_prod")
}

func TestReference_MetricsByCategory_Overview(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	result, err := newReference().MetricsByCategory("")
	require.NoError(err)
	assert.Equal(7, result["total_categories"])
	categories := result["categories"].(map[string]interface{})
	assert.Len(categories, 7)
	assert.Contains(categories, "incidents")
}

func TestReference_MetricsByCategory_Unknown(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	result, err := newReference().MetricsByCategory("velocity")
	assert.Nil(result)

	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)
	assert.Contains(notFound.Message, "velocity")
	assert.Equal("available_categories", notFound.AltLabel)
	assert.Len(notFound.Alternatives, 7)
}

func TestReference_SearchMetrics(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ref := newReference()
	truthy := true

	tests := []struct {
		name           string
		term           string
		category       string
		hasAggregation *bool
		wantNames      []string
	}{
		{
			name: "matches name and description",
			term: "review",
			wantNames: []string{
				"branch.computed.cycle_time",
				"branch.time_to_review",
				"branch.review_time",
				"pr.review_depth",
				"pr.merged.without.review.count",
				"pr.reviews",
				"commit.activity_days",
			},
		},
		{
			name:           "aggregation filter narrows to one",
			term:           "cycle",
			hasAggregation: &truthy,
			wantNames:      []string{"branch.computed.cycle_time"},
		},
		{
			name:      "category filter drops cross-category matches",
			term:      "done",
			category:  "branches",
			wantNames: []string{"branch.state.computed.done"},
		},
		{
			name:      "case-insensitive and trimmed",
			term:      "  MTTR  ",
			wantNames: []string{"pm.mttr"},
		},
		{
			name:      "no matches",
			term:      "kubernetes",
			wantNames: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ref.SearchMetrics(tc.term, tc.category, tc.hasAggregation)
			require.NoError(err)
			assert.Equal(len(tc.wantNames), result["total_matches"])
			matches := result["metrics"].(map[string]domain.Metric)
			for _, name := range tc.wantNames {
				assert.Contains(matches, name)
			}
			assert.Len(matches, len(tc.wantNames))
		})
	}
}

func TestReference_SearchMetrics_TermTooShort(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, term := range []string{"", "x", "  a  "} {
		result, err := newReference().SearchMetrics(term, "", nil)
		assert.Nil(result, "term %q", term)

		var invalid *domain.InvalidArgumentError
		require.ErrorAs(err, &invalid)
		assert.Contains(invalid.Error(), "at least 2 characters")
	}
}

func TestReference_ActiveTeams(t *testing.T) {
	assert := assert.New(t)

	result := newReference().ActiveTeams()

	assert.Equal(7, result["total_teams"])
	assert.Equal(2, result["team_types"])
	teams := result["teams"].(map[string]domain.Team)
	assert.Len(teams, 7)
}

func TestReference_TeamsByType(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ref := newReference()

	result, err := ref.TeamsByType("engineering")
	require.NoError(err)
	assert.Equal(true, result["comparable"])
	assert.Equal(6, result["total_teams"])

	result, err = ref.TeamsByType("qa")
	require.NoError(err)
	assert.Equal(false, result["comparable"])
	teams := result["teams"].(map[string]domain.Team)
	assert.Contains(teams, "qa_automation")

	_, err = ref.TeamsByType("design")
	var notFound *domain.NotFoundError
	require.ErrorAs(err, &notFound)
	assert.Equal("available_types", notFound.AltLabel)
	assert.Equal([]string{"engineering", "qa"}, notFound.Alternatives)
}

func TestReference_ComparableTeams(t *testing.T) {
	assert := assert.New(t)

	result := newReference().ComparableTeams()

	assert.Equal(6, result["total_comparable_teams"])
	comparable := result["teams"].(map[string]domain.Team)
	excluded := result["excluded_teams"].(map[string]domain.Team)
	assert.Len(comparable, 6)
	assert.Len(excluded, 1)
	assert.Contains(excluded, "qa_automation")
	for id := range comparable {
		assert.NotContains(excluded, id)
	}
}

func TestReference_SearchTeamsByFocus(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ref := newReference()

	// Focus areas are searched, not just names.
	result, err := ref.SearchTeamsByFocus("automation", "", false)
	require.NoError(err)
	teams := result["teams"].(map[string]domain.Team)
	assert.Contains(teams, "qa_automation")

	// comparableOnly drops the QA team.
	result, err = ref.SearchTeamsByFocus("automation", "", true)
	require.NoError(err)
	assert.Equal(0, result["total_matches"])

	// Type filter.
	result, err = ref.SearchTeamsByFocus("team", "engineering", false)
	require.NoError(err)
	for _, team := range result["teams"].(map[string]domain.Team) {
		assert.Equal("engineering", team.Type)
	}

	_, err = ref.SearchTeamsByFocus("a", "", false)
	var invalid *domain.InvalidArgumentError
	require.ErrorAs(err, &invalid)
}
