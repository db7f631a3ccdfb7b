package domain

// Metric describes a single LinearB metric that can be requested through the
// measurements endpoints, including which aggregations it supports.
type Metric struct {
	Name         string   `json:"name"`
	Aggregations []string `json:"aggregations"`
	Description  string   `json:"description"`
	Units        string   `json:"units"`
	Category     string   `json:"category"`
}

// MetricCategory groups metrics that measure the same area of delivery.
// The Metrics list is derived from Metric.Category at construction time,
// never authored by hand, so it cannot drift from the metric table.
type MetricCategory struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Metrics     []string `json:"metrics"`
}

// Metric category identifiers.
const (
	CategoryCycleTime    = "cycle_time"
	CategoryPullRequests = "pull_requests"
	CategoryCommits      = "commits"
	CategoryReleases     = "releases"
	CategoryActivity     = "activity"
	CategoryBranches     = "branches"
	CategoryIncidents    = "incidents"
)

// MetricCatalog is the immutable metric reference table. It is built once at
// startup and safe for concurrent readers without locking.
type MetricCatalog struct {
	metrics    map[string]Metric
	order      []string
	categories map[string]MetricCategory
	catOrder   []string
}

var aggregationModes = []string{"p75", "p50", "avg"}

var metricTable = []Metric{
	{
		Name:         "branch.computed.cycle_time",
		Aggregations: aggregationModes,
		Description:  "Full cycle time (Coding time + Pickup time + Review time + Time to production)",
		Units:        "min",
		Category:     CategoryCycleTime,
	},
	{
		Name:         "branch.time_to_pr",
		Aggregations: aggregationModes,
		Description:  "Coding time (Time to PR)",
		Units:        "min",
		Category:     CategoryCycleTime,
	},
	{
		Name:         "branch.time_to_review",
		Aggregations: aggregationModes,
		Description:  "Pickup time (Time to review)",
		Units:        "min",
		Category:     CategoryCycleTime,
	},
	{
		Name:         "branch.review_time",
		Aggregations: aggregationModes,
		Description:  "Review time",
		Units:        "min",
		Category:     CategoryCycleTime,
	},
	{
		Name:         "branch.time_to_prod",
		Aggregations: aggregationModes,
		Description:  "Time to production (Time to deploy)",
		Units:        "min",
		Category:     CategoryCycleTime,
	},
	{
		Name:         "pr.merged.size",
		Aggregations: aggregationModes,
		Description:  "The sum of PR sizes of merged PRs",
		Units:        "lines of code",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "pr.merged",
		Aggregations: []string{},
		Description:  "The number of PRs that got merged",
		Units:        "count",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "pr.review_depth",
		Aggregations: []string{},
		Description:  "The sum of comments divided by the sum of PRs",
		Units:        "lines of comments",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "commit.activity.new_work.count",
		Aggregations: []string{},
		Description:  "The total new lines of code",
		Units:        "count",
		Category:     CategoryCommits,
	},
	{
		Name:         "commit.total_changes",
		Aggregations: []string{},
		Description:  "The total lines of code that have been replaced",
		Units:        "lines of code",
		Category:     CategoryCommits,
	},
	{
		Name:         "commit.activity.refactor.count",
		Aggregations: []string{},
		Description:  "The total lines of code that have been replaced that are older then 25 days",
		Units:        "lines of code",
		Category:     CategoryCommits,
	},
	{
		Name:         "commit.activity.rework.count",
		Aggregations: []string{},
		Description:  "The total lines of code that have replaced code written within the last 25 days, but outside this branch",
		Units:        "lines of code",
		Category:     CategoryCommits,
	},
	{
		Name:         "pr.merged.without.review.count",
		Aggregations: []string{},
		Description:  "The number of PRs that got merged without review",
		Units:        "count",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "commit.total.count",
		Aggregations: []string{},
		Description:  "The sum of commits",
		Units:        "count",
		Category:     CategoryCommits,
	},
	{
		Name:         "pr.new",
		Aggregations: []string{},
		Description:  "The number of opened PRs",
		Units:        "count",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "pr.reviews",
		Aggregations: []string{},
		Description:  "The number of reviews on all PRs",
		Units:        "count",
		Category:     CategoryPullRequests,
	},
	{
		Name:         "releases.count",
		Aggregations: []string{},
		Description:  "The number of releases",
		Units:        "count",
		Category:     CategoryReleases,
	},
	{
		Name:         "commit.activity_days",
		Aggregations: []string{},
		Description:  "The amount of day of developer activity (commit/comment/PR/merge/review)",
		Units:        "days",
		Category:     CategoryActivity,
	},
	{
		Name:         "branch.state.computed.done",
		Aggregations: []string{},
		Description:  "Number of branches that reached state done",
		Units:        "count",
		Category:     CategoryBranches,
	},
	{
		Name:         "branch.state.active",
		Aggregations: []string{},
		Description:  "Number of active branches",
		Units:        "count",
		Category:     CategoryBranches,
	},
	{
		Name:         "pm.mttr",
		Aggregations: []string{},
		Description:  "Mean time to repair",
		Units:        "min",
		Category:     CategoryIncidents,
	},
	{
		Name:         "pm.cfr.issues.done",
		Aggregations: []string{},
		Description:  "The sum of issues that are considered as incidents that reached a done state",
		Units:        "count",
		Category:     CategoryIncidents,
	},
}

type categoryMeta struct {
	id          string
	name        string
	description string
}

var metricCategoryMeta = []categoryMeta{
	{CategoryCycleTime, "Cycle Time Metrics", "Metrics related to development cycle time and flow"},
	{CategoryPullRequests, "Pull Request Metrics", "Metrics related to pull requests and code reviews"},
	{CategoryCommits, "Commit Metrics", "Metrics related to commits and code changes"},
	{CategoryReleases, "Release Metrics", "Metrics related to software releases"},
	{CategoryActivity, "Activity Metrics", "Metrics related to developer activity"},
	{CategoryBranches, "Branch Metrics", "Metrics related to branch states"},
	{CategoryIncidents, "Incident Metrics", "Metrics related to incidents and reliability"},
}

// NewMetricCatalog builds the metric reference table. Category membership is
// computed by a grouping pass over the metric table.
func NewMetricCatalog() *MetricCatalog {
	c := &MetricCatalog{
		metrics:    make(map[string]Metric, len(metricTable)),
		order:      make([]string, 0, len(metricTable)),
		categories: make(map[string]MetricCategory, len(metricCategoryMeta)),
		catOrder:   make([]string, 0, len(metricCategoryMeta)),
	}
	for _, m := range metricTable {
		c.metrics[m.Name] = m
		c.order = append(c.order, m.Name)
	}
	for _, meta := range metricCategoryMeta {
		members := make([]string, 0)
		for _, name := range c.order {
			if c.metrics[name].Category == meta.id {
				members = append(members, name)
			}
		}
		c.categories[meta.id] = MetricCategory{
			Name:        meta.name,
			Description: meta.description,
			Metrics:     members,
		}
		c.catOrder = append(c.catOrder, meta.id)
	}
	return c
}

// Len returns the number of metrics in the catalog.
func (c *MetricCatalog) Len() int { return len(c.metrics) }

// Names returns metric names in table order.
func (c *MetricCatalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the metric with the given name.
func (c *MetricCatalog) Get(name string) (Metric, bool) {
	m, ok := c.metrics[name]
	return m, ok
}

// Metrics returns the full metric table keyed by metric name.
func (c *MetricCatalog) Metrics() map[string]Metric {
	out := make(map[string]Metric, len(c.metrics))
	for k, v := range c.metrics {
		out[k] = v
	}
	return out
}

// Categories returns the derived category index keyed by category id.
func (c *MetricCatalog) Categories() map[string]MetricCategory {
	out := make(map[string]MetricCategory, len(c.categories))
	for k, v := range c.categories {
		out[k] = v
	}
	return out
}

// CategoryIDs returns the category identifiers in declaration order.
func (c *MetricCatalog) CategoryIDs() []string {
	out := make([]string, len(c.catOrder))
	copy(out, c.catOrder)
	return out
}

// Category returns the derived category with the given id.
func (c *MetricCatalog) Category(id string) (MetricCategory, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}
