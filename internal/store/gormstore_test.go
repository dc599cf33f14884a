package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// newTestGormStore creates a store backed by in-memory SQLite.
func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open in-memory database")

	s, err := NewGormStore(db, logger.Nop())
	require.NoError(t, err)
	return s
}

func addGormMatch(t *testing.T, s *GormStore, p1Score, p2Score int) int {
	t.Helper()

	m, err := s.AddMatch(AddMatchData{
		Player1ID:     1,
		Player2ID:     2,
		Player1Score:  p1Score,
		Player2Score:  p2Score,
		Player1TeamID: 1,
		Player2TeamID: 2,
	})
	require.NoError(t, err)
	return m.ID
}

func TestGormStore_SeedsRosterOnce(t *testing.T) {
	s := newTestGormStore(t)

	players, err := s.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Pavlo", players[0].Name)
	assert.Equal(t, "Summet", players[1].Name)

	// Re-wrapping the same connection must not duplicate the roster.
	again, err := NewGormStore(s.db, logger.Nop())
	require.NoError(t, err)
	players, err = again.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestGormStore_GetMatch_Absent(t *testing.T) {
	s := newTestGormStore(t)

	m, err := s.GetMatch(999)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestGormStore_AddListMatches(t *testing.T) {
	s := newTestGormStore(t)

	first := addGormMatch(t, s, 2, 1)
	second := addGormMatch(t, s, 0, 0)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, second, matches[0].ID)
	assert.Equal(t, first, matches[1].ID)
}

func TestGormStore_UpdateMatch(t *testing.T) {
	s := newTestGormStore(t)
	id := addGormMatch(t, s, 1, 1)

	score := 2
	pens := true
	m, err := s.UpdateMatch(id, MatchUpdate{Player2Score: &score, Penalties: &pens})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Player1Score)
	assert.Equal(t, 2, m.Player2Score)
	assert.True(t, m.Penalties)

	absent, err := s.UpdateMatch(999, MatchUpdate{Player2Score: &score})
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestGormStore_DeleteMatch_Cascades(t *testing.T) {
	s := newTestGormStore(t)

	target := addGormMatch(t, s, 3, 0)
	other := addGormMatch(t, s, 1, 2)

	_, err := s.AddComment(target, 1, "rigged")
	require.NoError(t, err)
	_, err = s.AddAchievement(1, "HAT_TRICK", target)
	require.NoError(t, err)
	_, err = s.AddAchievement(2, "DEBUT", other)
	require.NoError(t, err)

	deleted, err := s.DeleteMatch(target)
	require.NoError(t, err)
	require.True(t, deleted)

	m, err := s.GetMatch(target)
	require.NoError(t, err)
	assert.Nil(t, m)

	comments, err := s.ListComments(target)
	require.NoError(t, err)
	assert.Empty(t, comments)

	unlocks, err := s.ListAchievements(0)
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
	assert.Equal(t, "DEBUT", unlocks[0].Type)
}

func TestGormStore_DeleteMatch_Absent(t *testing.T) {
	s := newTestGormStore(t)

	deleted, err := s.DeleteMatch(42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGormStore_Achievements_FilterByPlayer(t *testing.T) {
	s := newTestGormStore(t)
	id := addGormMatch(t, s, 2, 2)

	_, err := s.AddAchievement(1, "DEBUT", id)
	require.NoError(t, err)
	_, err = s.AddAchievement(2, "DEBUT", id)
	require.NoError(t, err)

	mine, err := s.ListAchievements(2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 2, mine[0].PlayerID)
}
