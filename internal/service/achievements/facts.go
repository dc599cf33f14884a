package achievements

import (
	"sort"
	"time"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
)

// MatchFacts is one match seen from the evaluated player's side.
type MatchFacts struct {
	MatchID   int
	Date      time.Time
	OwnScore  int
	OppScore  int
	OwnTeamID int
	OppTeamID int
	ExtraTime bool
	Penalties bool
	Outcome   models.Outcome
}

// Margin is the goal difference, positive for wins.
func (m MatchFacts) Margin() int {
	return m.OwnScore - m.OppScore
}

// TotalGoals is the combined score of both sides.
func (m MatchFacts) TotalGoals() int {
	return m.OwnScore + m.OppScore
}

// Facts is everything a rule predicate may inspect: the triggering match,
// the player's full history (most recent first, triggering match included),
// and the catalog for team lookups.
type Facts struct {
	Current MatchFacts
	History []MatchFacts
	Catalog *catalog.Catalog
}

// buildFacts derives per-match facts for a player from the full match list.
// The returned history is sorted most-recent-first; streak rules depend on
// that ordering.
func buildFacts(cat *catalog.Catalog, playerID int, current *models.Match, allMatches []models.Match) *Facts {
	var history []MatchFacts
	for i := range allMatches {
		m := &allMatches[i]
		if !m.HasPlayer(playerID) {
			continue
		}
		history = append(history, factsFor(m, playerID))
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return &Facts{
		Current: factsFor(current, playerID),
		History: history,
		Catalog: cat,
	}
}

func factsFor(m *models.Match, playerID int) MatchFacts {
	return MatchFacts{
		MatchID:   m.ID,
		Date:      m.Date,
		OwnScore:  m.ScoreFor(playerID),
		OppScore:  m.ScoreAgainst(playerID),
		OwnTeamID: m.TeamFor(playerID),
		OppTeamID: m.TeamAgainst(playerID),
		ExtraTime: m.ExtraTime,
		Penalties: m.Penalties,
		Outcome:   m.OutcomeFor(playerID),
	}
}

// StreakAtLeast reports whether the run of consecutive matches with the
// given outcome, counted from the most recent match backward, reaches n.
func (f *Facts) StreakAtLeast(outcome models.Outcome, n int) bool {
	if len(f.History) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if f.History[i].Outcome != outcome {
			return false
		}
	}
	return true
}

// Played is the number of matches in the player's history.
func (f *Facts) Played() int {
	return len(f.History)
}

// CountOutcome counts matches with the given outcome across the history.
func (f *Facts) CountOutcome(outcome models.Outcome) int {
	count := 0
	for _, m := range f.History {
		if m.Outcome == outcome {
			count++
		}
	}
	return count
}

// GoalsScored is the career total of the player's own goals.
func (f *Facts) GoalsScored() int {
	total := 0
	for _, m := range f.History {
		total += m.OwnScore
	}
	return total
}

// GoalsConceded is the career total of goals scored against the player.
func (f *Facts) GoalsConceded() int {
	total := 0
	for _, m := range f.History {
		total += m.OppScore
	}
	return total
}

// CleanSheets counts matches where the opponent failed to score.
func (f *Facts) CleanSheets() int {
	count := 0
	for _, m := range f.History {
		if m.OppScore == 0 {
			count++
		}
	}
	return count
}

// DistinctWinningTeams counts the different teams the player has won with.
func (f *Facts) DistinctWinningTeams() int {
	teams := make(map[int]bool)
	for _, m := range f.History {
		if m.Outcome == models.OutcomeWin {
			teams[m.OwnTeamID] = true
		}
	}
	return len(teams)
}

// WinsWithTeam counts wins using one specific team.
func (f *Facts) WinsWithTeam(teamID int) int {
	count := 0
	for _, m := range f.History {
		if m.Outcome == models.OutcomeWin && m.OwnTeamID == teamID {
			count++
		}
	}
	return count
}

// WinsInLeague counts wins using any team from the named league. Matches
// whose team id does not resolve in the catalog are skipped.
func (f *Facts) WinsInLeague(league string) int {
	count := 0
	for _, m := range f.History {
		if m.Outcome != models.OutcomeWin {
			continue
		}
		team, ok := f.Catalog.Team(m.OwnTeamID)
		if ok && team.League == league {
			count++
		}
	}
	return count
}

// WinsByMargin counts wins with exactly the given goal difference.
func (f *Facts) WinsByMargin(margin int) int {
	count := 0
	for _, m := range f.History {
		if m.Outcome == models.OutcomeWin && m.Margin() == margin {
			count++
		}
	}
	return count
}

// PenaltyResults counts penalty-decided wins and losses across the history.
func (f *Facts) PenaltyResults(outcome models.Outcome) int {
	count := 0
	for _, m := range f.History {
		if m.Penalties && m.Outcome == outcome {
			count++
		}
	}
	return count
}

// Previous returns the match played immediately before the triggering one,
// or false when the triggering match is the player's first (or absent from
// the history).
func (f *Facts) Previous() (MatchFacts, bool) {
	for i, m := range f.History {
		if m.MatchID == f.Current.MatchID {
			if i+1 < len(f.History) {
				return f.History[i+1], true
			}
			return MatchFacts{}, false
		}
	}
	return MatchFacts{}, false
}

// RatingDiff resolves both current teams through the catalog and returns
// opponent rating minus own rating. ok is false when either team id is
// unknown; rating rules cannot fire in that case.
func (f *Facts) RatingDiff() (int, bool) {
	own, okOwn := f.Catalog.Team(f.Current.OwnTeamID)
	opp, okOpp := f.Catalog.Team(f.Current.OppTeamID)
	if !okOwn || !okOpp {
		return 0, false
	}
	return opp.Rating - own.Rating, true
}

// ScoredInEachOfLast reports whether the player found the net in every one
// of the n most recent matches.
func (f *Facts) ScoredInEachOfLast(n int) bool {
	if len(f.History) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if f.History[i].OwnScore == 0 {
			return false
		}
	}
	return true
}

// BlankedInEachOfLast reports whether the player failed to score in every
// one of the n most recent matches.
func (f *Facts) BlankedInEachOfLast(n int) bool {
	if len(f.History) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if f.History[i].OwnScore > 0 {
			return false
		}
	}
	return true
}

// CleanSheetWinsInLastTwo reports whether the two most recent matches were
// both clean-sheet wins.
func (f *Facts) CleanSheetWinsInLastTwo() bool {
	if len(f.History) < 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		m := f.History[i]
		if m.Outcome != models.OutcomeWin || m.OppScore != 0 {
			return false
		}
	}
	return true
}
