// Package achievements provides achievement evaluation and unlock services.
package achievements

import (
	"fmt"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	prommetrics "github.com/pkoval/fifa-rivals/internal/metrics"
	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// Store is the persistence surface the service needs.
type Store interface {
	ListMatches() ([]models.Match, error)
	ListAchievements(playerID int) ([]models.Achievement, error)
	AddAchievement(playerID int, typeID string, matchID int) (*models.Achievement, error)
}

// Service runs the evaluator against the store and persists new unlocks.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	log     *logger.Logger
}

// NewService creates a new achievement service.
func NewService(store Store, cat *catalog.Catalog, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		log:     log,
	}
}

// CheckAndUnlock evaluates a player against the current match history and
// persists every newly qualifying unlock. Returns the created records.
func (s *Service) CheckAndUnlock(playerID, matchID int) ([]models.Achievement, error) {
	allMatches, err := s.store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	existing, err := s.store.ListAchievements(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	fired := Evaluate(s.catalog, playerID, matchID, allMatches, existing)

	var unlocked []models.Achievement
	for _, typeID := range fired {
		record, err := s.store.AddAchievement(playerID, typeID, matchID)
		if err != nil {
			return unlocked, fmt.Errorf("failed to persist unlock %s: %w", typeID, err)
		}
		unlocked = append(unlocked, *record)

		entry, _ := s.catalog.AchievementType(typeID)
		prommetrics.RecordUnlock(typeID, entry.Category, entry.Rarity)
		s.log.Info().
			Int("player_id", playerID).
			Int("match_id", matchID).
			Str("type", typeID).
			Str("rarity", entry.Rarity).
			Msg("Achievement unlocked")
	}

	return unlocked, nil
}

// ListPlayerAchievements retrieves unlock records, optionally filtered by
// player (0 lists everyone's).
func (s *Service) ListPlayerAchievements(playerID int) ([]models.Achievement, error) {
	return s.store.ListAchievements(playerID)
}

// CatalogEntries returns the full achievement catalog in declaration order.
func (s *Service) CatalogEntries() []catalog.AchievementType {
	return s.catalog.AchievementTypes()
}

// CatalogEntry looks up one catalog entry for enrichment.
func (s *Service) CatalogEntry(typeID string) (catalog.AchievementType, bool) {
	return s.catalog.AchievementType(typeID)
}
