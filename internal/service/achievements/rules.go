package achievements

import (
	"github.com/pkoval/fifa-rivals/internal/models"
)

// Rule decides whether one achievement type qualifies for the evaluated
// player given the derived facts. Rules are independent, side-effect-free
// boolean functions; the evaluator handles the already-unlocked check, so
// none of them need to.
type Rule func(f *Facts) bool

func win(f *Facts) bool  { return f.Current.Outcome == models.OutcomeWin }
func loss(f *Facts) bool { return f.Current.Outcome == models.OutcomeLoss }

func winStreak(n int) Rule {
	return func(f *Facts) bool { return f.StreakAtLeast(models.OutcomeWin, n) }
}

func lossStreak(n int) Rule {
	return func(f *Facts) bool { return f.StreakAtLeast(models.OutcomeLoss, n) }
}

func winMarginAtLeast(n int) Rule {
	return func(f *Facts) bool { return win(f) && f.Current.Margin() >= n }
}

func lossMarginAtLeast(n int) Rule {
	return func(f *Facts) bool { return loss(f) && -f.Current.Margin() >= n }
}

func careerWins(n int) Rule {
	return func(f *Facts) bool { return f.CountOutcome(models.OutcomeWin) >= n }
}

func careerLosses(n int) Rule {
	return func(f *Facts) bool { return f.CountOutcome(models.OutcomeLoss) >= n }
}

func played(n int) Rule {
	return func(f *Facts) bool { return f.Played() >= n }
}

func careerGoals(n int) Rule {
	return func(f *Facts) bool { return f.GoalsScored() >= n }
}

func careerConceded(n int) Rule {
	return func(f *Facts) bool { return f.GoalsConceded() >= n }
}

func distinctWinningTeams(n int) Rule {
	return func(f *Facts) bool { return f.DistinctWinningTeams() >= n }
}

func teamWins(teamID, n int) Rule {
	return func(f *Facts) bool { return f.WinsWithTeam(teamID) >= n }
}

func leagueWins(league string, n int) Rule {
	return func(f *Facts) bool { return f.WinsInLeague(league) >= n }
}

// scoreline matches an exact own-opponent score in the triggering match.
func scoreline(own, opp int) Rule {
	return func(f *Facts) bool {
		return f.Current.OwnScore == own && f.Current.OppScore == opp
	}
}

// beatRatedAbove fires on a win where the opponent's team is rated at least
// diff above the player's own. Unresolvable teams silently disqualify.
func beatRatedAbove(diff int) Rule {
	return func(f *Facts) bool {
		d, ok := f.RatingDiff()
		return ok && win(f) && d >= diff
	}
}

// lostToRatedBelow is the shame mirror: a loss against a team rated at
// least diff below the player's own.
func lostToRatedBelow(diff int) Rule {
	return func(f *Facts) bool {
		d, ok := f.RatingDiff()
		return ok && loss(f) && -d >= diff
	}
}

// rules maps each catalog type id to its predicate. The evaluator walks the
// catalog in declaration order and looks each type up here, so adding a
// catalog entry without a rule simply means it never fires.
var rules = map[string]Rule{
	// Win streaks.
	"ON_FIRE":          winStreak(3),
	"UNSTOPPABLE":      winStreak(5),
	"DOMINATOR":        winStreak(7),
	"PERFECT_TEN":      winStreak(10),
	"IMMORTAL":         winStreak(15),
	"STALEMATE_ARTIST": func(f *Facts) bool { return f.StreakAtLeast(models.OutcomeDraw, 3) },

	// Single-match scoring.
	"HAT_TRICK":     func(f *Facts) bool { return f.Current.OwnScore == 3 },
	"SNIPER":        func(f *Facts) bool { return f.Current.OwnScore >= 5 },
	"GOAL_MACHINE":  func(f *Facts) bool { return f.Current.OwnScore >= 7 },
	"PERFECT_STORM": func(f *Facts) bool { return f.Current.OwnScore >= 10 },

	// Career scoring.
	"CENTURION":         careerGoals(100),
	"GOAL_COLLECTOR":    careerGoals(250),
	"HALF_THOUSAND":     careerGoals(500),
	"CONSISTENT_THREAT": func(f *Facts) bool { return f.ScoredInEachOfLast(10) },

	// Defense.
	"THE_WALL":       func(f *Facts) bool { return win(f) && f.Current.OppScore == 0 },
	"FORTRESS":       func(f *Facts) bool { return f.CleanSheets() >= 3 },
	"IRON_CURTAIN":   func(f *Facts) bool { return f.CleanSheets() >= 5 },
	"DOUBLE_SHUTOUT": func(f *Facts) bool { return f.CleanSheetWinsInLastTwo() },

	// Winning margins.
	"NAIL_BITER":    func(f *Facts) bool { return win(f) && f.Current.Margin() == 1 },
	"DEMOLITION":    winMarginAtLeast(5),
	"MASSACRE":      winMarginAtLeast(7),
	"ANNIHILATION":  winMarginAtLeast(10),
	"CLUTCH_MASTER": func(f *Facts) bool { return f.WinsByMargin(1) >= 5 },

	// Win milestones.
	"FIRST_BLOOD":   careerWins(1),
	"HIGH_FIVE":     careerWins(5),
	"DOUBLE_DIGITS": careerWins(10),
	"VETERAN":       careerWins(25),
	"CHAMPION":      careerWins(50),
	"CONQUEROR":     careerWins(75),
	"LEGEND":        careerWins(100),

	// Participation milestones.
	"DEBUT":        played(1),
	"REGULAR":      played(10),
	"DEDICATED":    played(50),
	"CENTURY_CLUB": played(100),
	"PEACEMAKER":   func(f *Facts) bool { return f.CountOutcome(models.OutcomeDraw) >= 10 },

	// Team variety.
	"GLOBETROTTER": distinctWinningTeams(5),
	"WORLD_TOUR":   distinctWinningTeams(10),
	"COLLECTOR":    distinctWinningTeams(20),
	"AMBASSADOR":   distinctWinningTeams(30),

	// Club loyalty. Team ids come from the built-in catalog.
	"MADRIDISTA": teamWins(1, 10),
	"CULE":       teamWins(2, 10),
	"RED_DEVIL":  teamWins(9, 10),

	// League loyalty.
	"PREMIER_CLASS":    leagueWins("Premier League", 10),
	"LA_LIGA_LOYALIST": leagueWins("La Liga", 10),
	"BUNDESLIGA_BOSS":  leagueWins("Bundesliga", 10),
	"SERIE_A_SCHOLAR":  leagueWins("Serie A", 10),

	// Relative strength.
	"GIANT_KILLER":   beatRatedAbove(3),
	"DAVID":          beatRatedAbove(5),
	"MIRACLE_WORKER": beatRatedAbove(7),

	// Scorelines and drama.
	"CLASSIC_FINISH": scoreline(2, 1),
	"MANITA":         scoreline(5, 0),
	"SEVEN_NIL":      scoreline(7, 0),
	"GOAL_FEST":      func(f *Facts) bool { return f.Current.TotalGoals() >= 8 },
	"SNOOZE_FEST":    scoreline(0, 0),
	"EXTRA_TIME_HERO": func(f *Facts) bool {
		return win(f) && f.Current.ExtraTime && !f.Current.Penalties
	},
	"NERVES_OF_STEEL":     func(f *Facts) bool { return win(f) && f.Current.Penalties },
	"SHOOTOUT_SPECIALIST": func(f *Facts) bool { return f.PenaltyResults(models.OutcomeWin) >= 3 },
	"MARATHON_MATCH": func(f *Facts) bool {
		return win(f) && f.Current.ExtraTime && f.Current.Penalties
	},

	// Comebacks.
	"BOUNCE_BACK": func(f *Facts) bool {
		prev, ok := f.Previous()
		return ok && win(f) && prev.Outcome == models.OutcomeLoss
	},
	"REDEMPTION_ARC": func(f *Facts) bool {
		prev, ok := f.Previous()
		return ok && win(f) && f.Current.Margin() >= 3 &&
			prev.Outcome == models.OutcomeLoss && -prev.Margin() >= 3
	},

	// Hall of shame: losing streaks.
	"ROCK_BOTTOM": lossStreak(5),
	"FREE_FALL":   lossStreak(7),
	"CURSED":      lossStreak(10),

	// Hall of shame: single-match lowlights.
	"HUMILIATED":    lossMarginAtLeast(5),
	"STEAMROLLED":   lossMarginAtLeast(7),
	"OBLITERATED":   lossMarginAtLeast(10),
	"LEAKY_DEFENSE": func(f *Facts) bool { return f.Current.OppScore >= 5 },
	"SIEVE":         func(f *Facts) bool { return f.Current.OppScore >= 7 },
	"BLANKED":       func(f *Facts) bool { return loss(f) && f.Current.OwnScore == 0 },
	"MANITA_VICTIM": scoreline(0, 5),
	"DROUGHT":       func(f *Facts) bool { return f.BlankedInEachOfLast(5) },

	// Hall of shame: career lowlights.
	"PUNCHING_BAG":        careerLosses(10),
	"GLUTTON":             careerLosses(25),
	"PROFESSIONAL_VICTIM": careerLosses(50),
	"OPEN_GOAL":           careerConceded(100),
	"REVOLVING_DOOR":      careerConceded(250),

	// Hall of shame: drama.
	"EXTRA_TIME_HEARTBREAK": func(f *Facts) bool {
		return loss(f) && f.Current.ExtraTime && !f.Current.Penalties
	},
	"SHOOTOUT_CHOKER": func(f *Facts) bool { return loss(f) && f.Current.Penalties },
	"SERIAL_CHOKER":   func(f *Facts) bool { return f.PenaltyResults(models.OutcomeLoss) >= 3 },

	// Hall of shame: relative strength.
	"GIANT_SLAIN":   lostToRatedBelow(3),
	"DOWNFALL":      lostToRatedBelow(5),
	"EMBARRASSMENT": lostToRatedBelow(7),
}
