package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AchievementTypes(t *testing.T) {
	cat := Default()

	types := cat.AchievementTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, "ON_FIRE", types[0].Type, "Declaration order must be preserved")

	seen := make(map[string]bool, len(types))
	for _, entry := range types {
		assert.False(t, seen[entry.Type], "Duplicate type %s", entry.Type)
		seen[entry.Type] = true
		assert.NotEmpty(t, entry.Name, "%s has no name", entry.Type)
		assert.NotEmpty(t, entry.Category, "%s has no category", entry.Type)
		assert.NotEmpty(t, entry.Rarity, "%s has no rarity", entry.Type)
	}
}

func TestDefault_Lookup(t *testing.T) {
	cat := Default()

	entry, ok := cat.AchievementType("HAT_TRICK")
	require.True(t, ok)
	assert.Equal(t, CategoryGoals, entry.Category)

	_, ok = cat.AchievementType("NOPE")
	assert.False(t, ok)
}

func TestDefault_Teams(t *testing.T) {
	cat := Default()

	require.Len(t, cat.Teams(), 35)

	team, ok := cat.Team(1)
	require.True(t, ok)
	assert.Equal(t, "Real Madrid", team.Name)
	assert.Equal(t, "La Liga", team.League)
	assert.Equal(t, 90, team.Rating)

	_, ok = cat.Team(999)
	assert.False(t, ok)
}

func TestTeamsByLeague(t *testing.T) {
	cat := Default()

	laLiga := cat.TeamsByLeague("La Liga")
	require.NotEmpty(t, laLiga)
	for _, team := range laLiga {
		assert.Equal(t, "La Liga", team.League)
	}

	assert.Empty(t, cat.TeamsByLeague("Sunday League"))
	assert.Contains(t, cat.Leagues(), "Premier League")
}

func TestLoadFile_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
achievements:
  - type: CUSTOM_ONE
    name: Custom One
    description: First custom achievement
    icon: "X"
    category: wins
    rarity: common
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	cat, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, cat.AchievementTypes(), 1)
	assert.Equal(t, "CUSTOM_ONE", cat.AchievementTypes()[0].Type)

	// Teams section was absent, defaults apply.
	assert.Len(t, cat.Teams(), 35)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("achievements: {not: [a list"), 0o640))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
