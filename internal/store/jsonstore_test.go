package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoval/fifa-rivals/pkg/logger"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	s, err := NewJSONStore(path, logger.Nop())
	require.NoError(t, err)
	return s
}

func addTestMatch(t *testing.T, s *JSONStore, p1Score, p2Score int) int {
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

func TestJSONStore_SeedsRoster(t *testing.T) {
	s := newTestJSONStore(t)

	players, err := s.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Pavlo", players[0].Name)
	assert.Equal(t, "Summet", players[1].Name)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestJSONStore_GetPlayer_Absent(t *testing.T) {
	s := newTestJSONStore(t)

	p, err := s.GetPlayer(42)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestJSONStore_AddAndGetMatch(t *testing.T) {
	s := newTestJSONStore(t)

	id := addTestMatch(t, s, 3, 1)
	assert.Equal(t, 1, id)

	m, err := s.GetMatch(id)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 3, m.Player1Score)
	assert.Equal(t, 1, m.Player2Score)
	assert.False(t, m.Date.IsZero())

	absent, err := s.GetMatch(99)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestJSONStore_NextIDFollowsMax(t *testing.T) {
	s := newTestJSONStore(t)

	first := addTestMatch(t, s, 1, 0)
	addTestMatch(t, s, 2, 0)
	third := addTestMatch(t, s, 3, 0)

	deleted, err := s.DeleteMatch(first)
	require.NoError(t, err)
	require.True(t, deleted)

	next := addTestMatch(t, s, 4, 0)
	assert.Equal(t, third+1, next)
}

func TestJSONStore_ListMatches_MostRecentFirst(t *testing.T) {
	s := newTestJSONStore(t)

	first := addTestMatch(t, s, 1, 0)
	second := addTestMatch(t, s, 2, 0)
	third := addTestMatch(t, s, 3, 0)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, third, matches[0].ID)
	assert.Equal(t, second, matches[1].ID)
	assert.Equal(t, first, matches[2].ID)
}

func TestJSONStore_UpdateMatch(t *testing.T) {
	s := newTestJSONStore(t)
	id := addTestMatch(t, s, 1, 1)

	newScore := 4
	et := true
	m, err := s.UpdateMatch(id, MatchUpdate{Player1Score: &newScore, ExtraTime: &et})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 4, m.Player1Score)
	assert.Equal(t, 1, m.Player2Score)
	assert.True(t, m.ExtraTime)

	absent, err := s.UpdateMatch(99, MatchUpdate{Player1Score: &newScore})
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestJSONStore_DeleteMatch_Cascades(t *testing.T) {
	s := newTestJSONStore(t)

	target := addTestMatch(t, s, 2, 0)
	other := addTestMatch(t, s, 0, 1)

	_, err := s.AddComment(target, 1, "what a game")
	require.NoError(t, err)
	_, err = s.AddComment(other, 2, "unlucky")
	require.NoError(t, err)

	_, err = s.AddAchievement(1, "FIRST_BLOOD", target)
	require.NoError(t, err)
	_, err = s.AddAchievement(2, "FIRST_BLOOD", other)
	require.NoError(t, err)

	deleted, err := s.DeleteMatch(target)
	require.NoError(t, err)
	require.True(t, deleted)

	m, err := s.GetMatch(target)
	require.NoError(t, err)
	assert.Nil(t, m)

	// The deleted match's comments go with it, the other match keeps its own.
	comments, err := s.ListComments(target)
	require.NoError(t, err)
	assert.Empty(t, comments)
	comments, err = s.ListComments(other)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	// Only unlocks earned at the deleted match disappear.
	unlocks, err := s.ListAchievements(0)
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
	assert.Equal(t, other, unlocks[0].MatchID)
}

func TestJSONStore_DeleteMatch_Absent(t *testing.T) {
	s := newTestJSONStore(t)

	deleted, err := s.DeleteMatch(123)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestJSONStore_Comments(t *testing.T) {
	s := newTestJSONStore(t)
	id := addTestMatch(t, s, 1, 1)

	c1, err := s.AddComment(id, 1, "first")
	require.NoError(t, err)
	c2, err := s.AddComment(id, 2, "second")
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)

	comments, err := s.ListComments(id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func TestJSONStore_Achievements_FilterByPlayer(t *testing.T) {
	s := newTestJSONStore(t)
	id := addTestMatch(t, s, 2, 1)

	_, err := s.AddAchievement(1, "DEBUT", id)
	require.NoError(t, err)
	_, err = s.AddAchievement(2, "DEBUT", id)
	require.NoError(t, err)

	all, err := s.ListAchievements(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListAchievements(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].PlayerID)
	assert.Equal(t, "DEBUT", mine[0].Type)
}

func TestJSONStore_CorruptFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o640))

	s, err := NewJSONStore(path, logger.Nop())
	require.NoError(t, err)

	players, err := s.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)

	matches, err := s.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestJSONStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s, err := NewJSONStore(path, logger.Nop())
	require.NoError(t, err)

	id := addTestMatch(t, s, 5, 0)

	reopened, err := NewJSONStore(path, logger.Nop())
	require.NoError(t, err)

	m, err := reopened.GetMatch(id)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 5, m.Player1Score)
}
