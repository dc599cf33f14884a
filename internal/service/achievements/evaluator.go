package achievements

import (
	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
)

// Evaluate computes which achievement types newly qualify for a player
// after a match. Pure function: the caller persists the returned unlocks.
//
// The result is deterministic (catalog declaration order), monotonic and
// idempotent: a type already present in existing never fires again, and
// identical inputs always produce identical output. A matchID that does
// not resolve in allMatches yields an empty result.
func Evaluate(cat *catalog.Catalog, playerID, matchID int, allMatches []models.Match, existing []models.Achievement) []string {
	var current *models.Match
	for i := range allMatches {
		if allMatches[i].ID == matchID {
			current = &allMatches[i]
			break
		}
	}
	if current == nil || !current.HasPlayer(playerID) {
		return nil
	}

	facts := buildFacts(cat, playerID, current, allMatches)

	unlocked := make(map[string]bool, len(existing))
	for _, a := range existing {
		if a.PlayerID == playerID {
			unlocked[a.Type] = true
		}
	}

	var fired []string
	for _, t := range cat.AchievementTypes() {
		if unlocked[t.Type] {
			continue
		}
		rule, ok := rules[t.Type]
		if !ok {
			continue
		}
		if rule(facts) {
			fired = append(fired, t.Type)
		}
	}
	return fired
}
