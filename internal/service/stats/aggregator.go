// Package stats computes derived career statistics and head-to-head
// summaries from the raw match history. Both entry points are pure
// functions that recompute from scratch on every call; there is no cached
// state to invalidate.
package stats

import (
	"math"
	"sort"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
)

// Streak is a run of consecutive same-outcome matches.
type Streak struct {
	Type  models.Outcome `json:"type"`
	Count int            `json:"count"`
}

// TeamUsage is how often a player picked one team.
type TeamUsage struct {
	TeamID    int    `json:"teamId"`
	TeamName  string `json:"teamName"`
	TimesUsed int    `json:"timesUsed"`
}

// PlayerStats is a player's full career summary.
type PlayerStats struct {
	PlayerID         int         `json:"playerId"`
	Wins             int         `json:"wins"`
	Losses           int         `json:"losses"`
	Draws            int         `json:"draws"`
	GoalsScored      int         `json:"goalsScored"`
	GoalsConceded    int         `json:"goalsConceded"`
	CleanSheets      int         `json:"cleanSheets"`
	MatchesPlayed    int         `json:"matchesPlayed"`
	WinRate          int         `json:"winRate"`
	AvgGoalsScored   float64     `json:"avgGoalsScored"`
	AvgGoalsConceded float64     `json:"avgGoalsConceded"`
	CurrentStreak    Streak      `json:"currentStreak"`
	BestStreak       int         `json:"bestStreak"`
	WorstStreak      int         `json:"worstStreak"`
	FavoriteTeam     *TeamUsage  `json:"favoriteTeam"`
	MostUsedTeams    []TeamUsage `json:"mostUsedTeams"`
}

// HeadToHead aggregates the rivalry between the two players.
type HeadToHead struct {
	Player1ID     int            `json:"player1Id"`
	Player2ID     int            `json:"player2Id"`
	Player1Wins   int            `json:"player1Wins"`
	Player2Wins   int            `json:"player2Wins"`
	Draws         int            `json:"draws"`
	Player1Goals  int            `json:"player1Goals"`
	Player2Goals  int            `json:"player2Goals"`
	TotalMatches  int            `json:"totalMatches"`
	RecentMatches []models.Match `json:"recentMatches"`
}

// ComputePlayerStats derives a career summary from the full match list.
// One forward chronological pass accumulates totals and best/worst streaks;
// the current streak is then read backward from the most recent match.
func ComputePlayerStats(cat *catalog.Catalog, playerID int, allMatches []models.Match) *PlayerStats {
	var matches []models.Match
	for _, m := range allMatches {
		if m.HasPlayer(playerID) {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})

	s := &PlayerStats{PlayerID: playerID, MatchesPlayed: len(matches)}
	teamUsage := make(map[int]int)
	var teamOrder []int

	winRun, lossRun := 0, 0
	for _, m := range matches {
		own, opp := m.ScoreFor(playerID), m.ScoreAgainst(playerID)
		s.GoalsScored += own
		s.GoalsConceded += opp
		if opp == 0 {
			s.CleanSheets++
		}

		teamID := m.TeamFor(playerID)
		if teamUsage[teamID] == 0 {
			teamOrder = append(teamOrder, teamID)
		}
		teamUsage[teamID]++

		switch m.OutcomeFor(playerID) {
		case models.OutcomeWin:
			s.Wins++
			winRun++
			lossRun = 0
			if winRun > s.BestStreak {
				s.BestStreak = winRun
			}
		case models.OutcomeLoss:
			s.Losses++
			lossRun++
			winRun = 0
			if lossRun > s.WorstStreak {
				s.WorstStreak = lossRun
			}
		default:
			s.Draws++
			winRun = 0
			lossRun = 0
		}
	}

	if len(matches) > 0 {
		s.WinRate = int(math.Round(float64(s.Wins) / float64(len(matches)) * 100))
		s.AvgGoalsScored = round1(float64(s.GoalsScored) / float64(len(matches)))
		s.AvgGoalsConceded = round1(float64(s.GoalsConceded) / float64(len(matches)))
		s.CurrentStreak = currentStreak(playerID, matches)
	}

	s.MostUsedTeams = rankTeamUsage(cat, teamUsage, teamOrder)
	if len(s.MostUsedTeams) > 0 {
		fav := s.MostUsedTeams[0]
		s.FavoriteTeam = &fav
	}
	if len(s.MostUsedTeams) > 5 {
		s.MostUsedTeams = s.MostUsedTeams[:5]
	}

	return s
}

// currentStreak walks backward from the most recent match, counting
// consecutive matches sharing its outcome. Older interruptions are
// irrelevant.
func currentStreak(playerID int, ascending []models.Match) Streak {
	last := ascending[len(ascending)-1]
	streak := Streak{Type: last.OutcomeFor(playerID), Count: 1}
	for i := len(ascending) - 2; i >= 0; i-- {
		if ascending[i].OutcomeFor(playerID) != streak.Type {
			break
		}
		streak.Count++
	}
	return streak
}

// rankTeamUsage sorts usage counts descending; ties keep first-picked
// order so the favorite team is stable.
func rankTeamUsage(cat *catalog.Catalog, usage map[int]int, order []int) []TeamUsage {
	out := make([]TeamUsage, 0, len(usage))
	for _, teamID := range order {
		name := "Unknown"
		if team, ok := cat.Team(teamID); ok {
			name = team.Name
		}
		out = append(out, TeamUsage{TeamID: teamID, TeamName: name, TimesUsed: usage[teamID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimesUsed > out[j].TimesUsed
	})
	return out
}

// ComputeHeadToHead aggregates matches played exclusively between the two
// given players. RecentMatches holds the 5 most recent.
func ComputeHeadToHead(allMatches []models.Match, player1ID, player2ID int) *HeadToHead {
	var between []models.Match
	for _, m := range allMatches {
		if m.HasPlayer(player1ID) && m.HasPlayer(player2ID) && m.Player1ID != m.Player2ID {
			between = append(between, m)
		}
	}
	sort.SliceStable(between, func(i, j int) bool {
		return between[i].Date.After(between[j].Date)
	})

	h := &HeadToHead{
		Player1ID:    player1ID,
		Player2ID:    player2ID,
		TotalMatches: len(between),
	}
	for _, m := range between {
		p1, p2 := m.ScoreFor(player1ID), m.ScoreFor(player2ID)
		h.Player1Goals += p1
		h.Player2Goals += p2
		switch {
		case p1 > p2:
			h.Player1Wins++
		case p2 > p1:
			h.Player2Wins++
		default:
			h.Draws++
		}
	}

	h.RecentMatches = between
	if len(h.RecentMatches) > 5 {
		h.RecentMatches = h.RecentMatches[:5]
	}
	return h
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
