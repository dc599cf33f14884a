// Package catalog holds the static achievement and team catalogs. Both are
// immutable configuration loaded once at process start; there is no mutation
// API and no lifecycle beyond that.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Achievement categories.
const (
	CategoryWins       = "wins"
	CategoryGoals      = "goals"
	CategoryDefense    = "defense"
	CategoryStreaks    = "streaks"
	CategoryTeams      = "teams"
	CategoryMilestones = "milestones"
	CategorySpecial    = "special"
	CategoryShame      = "shame"
)

// Achievement rarities.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// AchievementType is a catalog entry describing an unlockable achievement.
type AchievementType struct {
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Category    string `yaml:"category" json:"category"`
	Rarity      string `yaml:"rarity" json:"rarity"`
}

// Team is a catalog entry for a selectable team. Rating is a static skill
// score used by the relative-strength achievement rules.
type Team struct {
	ID             int    `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	ShortName      string `yaml:"short_name" json:"shortName"`
	League         string `yaml:"league" json:"league"`
	Rating         int    `yaml:"rating" json:"rating"`
	PrimaryColor   string `yaml:"primary_color" json:"primaryColor"`
	SecondaryColor string `yaml:"secondary_color" json:"secondaryColor"`
	Logo           string `yaml:"logo" json:"logo"`
}

// Catalog is the loaded, indexed view over both tables. Declaration order
// of achievement types is preserved; the evaluator relies on it for
// deterministic output.
type Catalog struct {
	achievements []AchievementType
	achIndex     map[string]int
	teams        []Team
	teamIndex    map[int]int
}

// New builds a catalog from explicit tables.
func New(achievements []AchievementType, teams []Team) *Catalog {
	c := &Catalog{
		achievements: achievements,
		achIndex:     make(map[string]int, len(achievements)),
		teams:        teams,
		teamIndex:    make(map[int]int, len(teams)),
	}
	for i, a := range achievements {
		c.achIndex[a.Type] = i
	}
	for i, t := range teams {
		c.teamIndex[t.ID] = i
	}
	return c
}

// Default returns the catalog built from the embedded tables.
func Default() *Catalog {
	return New(defaultAchievementTypes, defaultTeams)
}

// catalogFile is the YAML document shape for catalog overrides.
type catalogFile struct {
	Achievements []AchievementType `yaml:"achievements"`
	Teams        []Team            `yaml:"teams"`
}

// LoadFile reads a catalog override from a YAML file. Sections left empty
// in the file fall back to the embedded defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	achievements := file.Achievements
	if len(achievements) == 0 {
		achievements = defaultAchievementTypes
	}
	teams := file.Teams
	if len(teams) == 0 {
		teams = defaultTeams
	}

	return New(achievements, teams), nil
}

// AchievementTypes returns all achievement types in declaration order.
func (c *Catalog) AchievementTypes() []AchievementType {
	return c.achievements
}

// AchievementType looks up a single achievement type by id.
func (c *Catalog) AchievementType(typeID string) (AchievementType, bool) {
	i, ok := c.achIndex[typeID]
	if !ok {
		return AchievementType{}, false
	}
	return c.achievements[i], true
}

// Teams returns all teams in declaration order.
func (c *Catalog) Teams() []Team {
	return c.teams
}

// Team looks up a team by id.
func (c *Catalog) Team(id int) (Team, bool) {
	i, ok := c.teamIndex[id]
	if !ok {
		return Team{}, false
	}
	return c.teams[i], true
}

// TeamsByLeague returns the subset of teams belonging to a league.
func (c *Catalog) TeamsByLeague(league string) []Team {
	var out []Team
	for _, t := range c.teams {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}

// Leagues returns the distinct league names in first-seen order.
func (c *Catalog) Leagues() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.teams {
		if !seen[t.League] {
			seen[t.League] = true
			out = append(out, t.League)
		}
	}
	return out
}
