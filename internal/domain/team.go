package domain

// Team describes an active team tracked in LinearB, including whether it may
// participate in cross-team metric comparisons.
type Team struct {
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Comparable  bool     `json:"comparable"`
	FocusAreas  []string `json:"focus_areas"`
}

// TeamType groups teams of the same kind. The Teams list is derived from
// Team.Type at construction time, same discipline as MetricCategory.
type TeamType struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Comparable  bool     `json:"comparable"`
	Teams       []string `json:"teams"`
}

// Team type identifiers.
const (
	TeamTypeEngineering = "engineering"
	TeamTypeQA          = "qa"
)

// TeamCatalog is the immutable team reference table.
type TeamCatalog struct {
	teams     map[string]Team
	order     []string
	types     map[string]TeamType
	typeOrder []string
}

type teamEntry struct {
	id   string
	team Team
}

var teamTable = []teamEntry{
	{"analytics", Team{
		Name:        "Analytics",
		ShortName:   "Aly",
		Type:        TeamTypeEngineering,
		Description: "Analytics and data engineering team",
		Color:       "#DC143C",
		Comparable:  true,
		FocusAreas:  []string{"data analytics", "business intelligence", "data engineering"},
	}},
	{"cfd_titans", Team{
		Name:        "CFD (Titans)",
		ShortName:   "CFD",
		Type:        TeamTypeEngineering,
		Description: "CFD Titans engineering team",
		Color:       "#32CD32",
		Comparable:  true,
		FocusAreas:  []string{"Client Focus Delivery", "Support"},
	}},
	{"core_crm", Team{
		Name:        "Core CRM",
		ShortName:   "CC",
		Type:        TeamTypeEngineering,
		Description: "Core CRM platform team",
		Color:       "#4169E1",
		Comparable:  true,
		FocusAreas:  []string{"customer relationship management", "core platform"},
	}},
	{"integrations_synergy", Team{
		Name:        "Integrations(Synergy)",
		ShortName:   "I",
		Type:        TeamTypeEngineering,
		Description: "Integrations and Synergy team",
		Color:       "#FF8C00",
		Comparable:  true,
		FocusAreas:  []string{"system integrations", "api development", "third-party connections"},
	}},
	{"media", Team{
		Name:        "Media",
		ShortName:   "Med",
		Type:        TeamTypeEngineering,
		Description: "Media and content management team",
		Color:       "#00BFFF",
		Comparable:  true,
		FocusAreas:  []string{"media processing", "content management", "digital assets"},
	}},
	{"shinsei", Team{
		Name:        "Shinsei",
		ShortName:   "S",
		Type:        TeamTypeEngineering,
		Description: "Shinsei development team",
		Color:       "#DA70D6",
		Comparable:  true,
		FocusAreas:  []string{"new product development", "innovation"},
	}},
	{"qa_automation", Team{
		Name:        "QA-Automation",
		ShortName:   "QA",
		Type:        TeamTypeQA,
		Description: "Quality Assurance and Test Automation team",
		Color:       "#FFD700",
		Comparable:  false,
		FocusAreas:  []string{"test automation", "quality assurance", "testing frameworks"},
	}},
}

var teamTypeMeta = []struct {
	id          string
	name        string
	description string
	comparable  bool
}{
	{TeamTypeEngineering, "Engineering Teams", "Software development and engineering teams", true},
	{TeamTypeQA, "Quality Assurance Teams", "QA and testing teams - tracked separately from engineering squads", false},
}

// NewTeamCatalog builds the team reference table, grouping teams into types.
func NewTeamCatalog() *TeamCatalog {
	c := &TeamCatalog{
		teams:     make(map[string]Team, len(teamTable)),
		order:     make([]string, 0, len(teamTable)),
		types:     make(map[string]TeamType, len(teamTypeMeta)),
		typeOrder: make([]string, 0, len(teamTypeMeta)),
	}
	for _, e := range teamTable {
		c.teams[e.id] = e.team
		c.order = append(c.order, e.id)
	}
	for _, meta := range teamTypeMeta {
		members := make([]string, 0)
		for _, id := range c.order {
			if c.teams[id].Type == meta.id {
				members = append(members, id)
			}
		}
		c.types[meta.id] = TeamType{
			Name:        meta.name,
			Description: meta.description,
			Comparable:  meta.comparable,
			Teams:       members,
		}
		c.typeOrder = append(c.typeOrder, meta.id)
	}
	return c
}

// Len returns the number of teams in the catalog.
func (c *TeamCatalog) Len() int { return len(c.teams) }

// IDs returns team identifiers in table order.
func (c *TeamCatalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the team with the given id.
func (c *TeamCatalog) Get(id string) (Team, bool) {
	t, ok := c.teams[id]
	return t, ok
}

// Teams returns the full team table keyed by team id.
func (c *TeamCatalog) Teams() map[string]Team {
	out := make(map[string]Team, len(c.teams))
	for k, v := range c.teams {
		out[k] = v
	}
	return out
}

// Types returns the derived team type index keyed by type id.
func (c *TeamCatalog) Types() map[string]TeamType {
	out := make(map[string]TeamType, len(c.types))
	for k, v := range c.types {
		out[k] = v
	}
	return out
}

// TypeIDs returns the team type identifiers in declaration order.
func (c *TeamCatalog) TypeIDs() []string {
	out := make([]string, len(c.typeOrder))
	copy(out, c.typeOrder)
	return out
}

// Type returns the derived team type with the given id.
func (c *TeamCatalog) Type(id string) (TeamType, bool) {
	t, ok := c.types[id]
	return t, ok
}
