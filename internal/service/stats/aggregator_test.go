package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
)

var base = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func mkMatch(id, day, p1Score, p2Score, p1Team, p2Team int) models.Match {
	return models.Match{
		ID:            id,
		Date:          base.AddDate(0, 0, day),
		Player1ID:     1,
		Player2ID:     2,
		Player1Score:  p1Score,
		Player2Score:  p2Score,
		Player1TeamID: p1Team,
		Player2TeamID: p2Team,
	}
}

func TestComputePlayerStats_Basic(t *testing.T) {
	cat := catalog.Default()
	matches := []models.Match{
		mkMatch(1, 0, 3, 1, 1, 2), // win
		mkMatch(2, 1, 0, 2, 1, 2), // loss
		mkMatch(3, 2, 2, 2, 5, 2), // draw
	}

	ps := ComputePlayerStats(cat, 1, matches)

	assert.Equal(t, 1, ps.Wins)
	assert.Equal(t, 1, ps.Losses)
	assert.Equal(t, 1, ps.Draws)
	assert.Equal(t, 3, ps.MatchesPlayed)
	assert.Equal(t, 5, ps.GoalsScored)
	assert.Equal(t, 5, ps.GoalsConceded)
	assert.Equal(t, 33, ps.WinRate)
	assert.InDelta(t, 1.7, ps.AvgGoalsScored, 0.001)
	assert.InDelta(t, 1.7, ps.AvgGoalsConceded, 0.001)
	assert.Equal(t, 0, ps.CleanSheets)
}

func TestComputePlayerStats_Empty(t *testing.T) {
	ps := ComputePlayerStats(catalog.Default(), 1, nil)

	assert.Equal(t, 0, ps.MatchesPlayed)
	assert.Equal(t, 0, ps.WinRate)
	assert.Equal(t, 0.0, ps.AvgGoalsScored)
	assert.Equal(t, 0, ps.CurrentStreak.Count)
	assert.Nil(t, ps.FavoriteTeam)
}

func TestComputePlayerStats_CleanSheets(t *testing.T) {
	cat := catalog.Default()
	matches := []models.Match{
		mkMatch(1, 0, 2, 0, 1, 2), // clean sheet win
		mkMatch(2, 1, 0, 0, 1, 2), // clean sheet draw counts too
		mkMatch(3, 2, 1, 3, 1, 2),
	}

	ps := ComputePlayerStats(cat, 1, matches)
	assert.Equal(t, 2, ps.CleanSheets)
}

func TestComputePlayerStats_Streaks(t *testing.T) {
	cat := catalog.Default()
	// Chronological: W W W L L W
	matches := []models.Match{
		mkMatch(1, 0, 2, 1, 1, 2),
		mkMatch(2, 1, 1, 0, 1, 2),
		mkMatch(3, 2, 3, 1, 1, 2),
		mkMatch(4, 3, 0, 1, 1, 2),
		mkMatch(5, 4, 1, 2, 1, 2),
		mkMatch(6, 5, 2, 0, 1, 2),
	}

	ps := ComputePlayerStats(cat, 1, matches)

	assert.Equal(t, 3, ps.BestStreak)
	assert.Equal(t, 2, ps.WorstStreak)
	assert.Equal(t, models.OutcomeWin, ps.CurrentStreak.Type)
	assert.Equal(t, 1, ps.CurrentStreak.Count)
}

func TestComputePlayerStats_CurrentLossStreak(t *testing.T) {
	cat := catalog.Default()
	matches := []models.Match{
		mkMatch(1, 0, 2, 1, 1, 2),
		mkMatch(2, 1, 0, 1, 1, 2),
		mkMatch(3, 2, 1, 4, 1, 2),
	}

	ps := ComputePlayerStats(cat, 1, matches)
	assert.Equal(t, models.OutcomeLoss, ps.CurrentStreak.Type)
	assert.Equal(t, 2, ps.CurrentStreak.Count)
}

func TestComputePlayerStats_TeamUsage(t *testing.T) {
	cat := catalog.Default()
	matches := []models.Match{
		mkMatch(1, 0, 2, 1, 1, 2),
		mkMatch(2, 1, 1, 1, 1, 3),
		mkMatch(3, 2, 0, 1, 5, 2),
	}

	ps := ComputePlayerStats(cat, 1, matches)

	if assert.NotNil(t, ps.FavoriteTeam) {
		assert.Equal(t, 1, ps.FavoriteTeam.TeamID)
		assert.Equal(t, "Real Madrid", ps.FavoriteTeam.TeamName)
		assert.Equal(t, 2, ps.FavoriteTeam.TimesUsed)
	}
	assert.Len(t, ps.MostUsedTeams, 2)
	assert.Equal(t, 1, ps.MostUsedTeams[0].TeamID)
	assert.Equal(t, 5, ps.MostUsedTeams[1].TeamID)
}

func TestComputePlayerStats_IgnoresOtherPlayers(t *testing.T) {
	cat := catalog.Default()
	other := mkMatch(9, 4, 5, 0, 1, 2)
	other.Player1ID = 7
	other.Player2ID = 8
	matches := []models.Match{
		mkMatch(1, 0, 2, 1, 1, 2),
		other,
	}

	ps := ComputePlayerStats(cat, 1, matches)
	assert.Equal(t, 1, ps.MatchesPlayed)
	assert.Equal(t, 2, ps.GoalsScored)
}

func TestComputeHeadToHead(t *testing.T) {
	matches := []models.Match{
		mkMatch(1, 0, 3, 1, 1, 2), // p1 win
		mkMatch(2, 1, 0, 2, 1, 2), // p2 win
		mkMatch(3, 2, 2, 2, 1, 2), // draw
		mkMatch(4, 3, 1, 0, 1, 2), // p1 win
	}

	h2h := ComputeHeadToHead(matches, 1, 2)

	assert.Equal(t, 2, h2h.Player1Wins)
	assert.Equal(t, 1, h2h.Player2Wins)
	assert.Equal(t, 1, h2h.Draws)
	assert.Equal(t, 6, h2h.Player1Goals)
	assert.Equal(t, 5, h2h.Player2Goals)
	assert.Equal(t, 4, h2h.TotalMatches)

	// Most recent first.
	if assert.NotEmpty(t, h2h.RecentMatches) {
		assert.Equal(t, 4, h2h.RecentMatches[0].ID)
	}
}

func TestComputeHeadToHead_RecentCapped(t *testing.T) {
	var matches []models.Match
	for i := 0; i < 8; i++ {
		matches = append(matches, mkMatch(i+1, i, 1, 0, 1, 2))
	}

	h2h := ComputeHeadToHead(matches, 1, 2)
	assert.Len(t, h2h.RecentMatches, 5)
	assert.Equal(t, 8, h2h.RecentMatches[0].ID)
}
