// Package matches orchestrates the write and read paths: recording results,
// triggering achievement evaluation for both participants, corrections,
// cascading deletes and the aggregated stats view.
package matches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pkoval/fifa-rivals/internal/cache"
	"github.com/pkoval/fifa-rivals/internal/catalog"
	prommetrics "github.com/pkoval/fifa-rivals/internal/metrics"
	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/internal/service/stats"
	"github.com/pkoval/fifa-rivals/internal/store"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// Domain errors surfaced to the API boundary for 404-style responses.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)

// AchievementChecker evaluates and persists unlocks after a write.
type AchievementChecker interface {
	CheckAndUnlock(playerID, matchID int) ([]models.Achievement, error)
}

// Service coordinates the store, the achievement engine and the stats
// cache. The cache is optional; a nil cache disables it.
type Service struct {
	store        store.Store
	achievements AchievementChecker
	catalog      *catalog.Catalog
	cache        cache.Cache
	cacheTTL     time.Duration
	log          *logger.Logger
}

// NewService creates a new match service.
func NewService(st store.Store, ach AchievementChecker, cat *catalog.Catalog, c cache.Cache, cacheTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		store:        st,
		achievements: ach,
		catalog:      cat,
		cache:        c,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// NewUnlocks groups the unlocks earned by each participant of one match.
type NewUnlocks struct {
	Player1 []models.Achievement `json:"player1"`
	Player2 []models.Achievement `json:"player2"`
}

// RecordResult is the write-path response: the stored match plus whatever
// achievements it triggered.
type RecordResult struct {
	Match           *models.Match `json:"match"`
	NewAchievements NewUnlocks    `json:"newAchievements"`
}

// RecordMatch stores a new result and immediately evaluates achievements
// for both participants, player 1 first. Unlock persistence failures are
// surfaced but never unwind the already-stored match.
func (s *Service) RecordMatch(ctx context.Context, data store.AddMatchData) (*RecordResult, error) {
	if err := s.checkReferences(data); err != nil {
		return nil, err
	}

	match, err := s.store.AddMatch(data)
	if err != nil {
		return nil, fmt.Errorf("failed to store match: %w", err)
	}

	result := &RecordResult{Match: match}

	result.NewAchievements.Player1, err = s.achievements.CheckAndUnlock(match.Player1ID, match.ID)
	if err != nil {
		return result, err
	}
	result.NewAchievements.Player2, err = s.achievements.CheckAndUnlock(match.Player2ID, match.ID)
	if err != nil {
		return result, err
	}

	prommetrics.RecordMatch(decidedBy(match), match.Player1Score+match.Player2Score)
	s.publishStreaks()
	s.invalidateStats(ctx)

	s.log.Info().
		Int("match_id", match.ID).
		Int("player1_score", match.Player1Score).
		Int("player2_score", match.Player2Score).
		Int("unlocks", len(result.NewAchievements.Player1)+len(result.NewAchievements.Player2)).
		Msg("Match recorded")

	return result, nil
}

// checkReferences verifies both players and both teams resolve.
func (s *Service) checkReferences(data store.AddMatchData) error {
	for _, playerID := range []int{data.Player1ID, data.Player2ID} {
		player, err := s.store.GetPlayer(playerID)
		if err != nil {
			return fmt.Errorf("failed to look up player: %w", err)
		}
		if player == nil {
			return ErrPlayerNotFound
		}
	}
	for _, teamID := range []int{data.Player1TeamID, data.Player2TeamID} {
		if _, ok := s.catalog.Team(teamID); !ok {
			return ErrTeamNotFound
		}
	}
	return nil
}

// ListMatches returns all matches, most recent first.
func (s *Service) ListMatches() ([]models.Match, error) {
	return s.store.ListMatches()
}

// MatchDetail is a match enriched with display names and its comments.
type MatchDetail struct {
	models.Match
	Player1Name string           `json:"player1Name"`
	Player2Name string           `json:"player2Name"`
	Team1Name   string           `json:"team1Name"`
	Team2Name   string           `json:"team2Name"`
	Comments    []models.Comment `json:"comments"`
}

// GetMatchDetail returns one match with enrichment, or nil when absent.
func (s *Service) GetMatchDetail(id int) (*MatchDetail, error) {
	match, err := s.store.GetMatch(id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}

	detail := &MatchDetail{Match: *match}
	detail.Player1Name = s.playerName(match.Player1ID)
	detail.Player2Name = s.playerName(match.Player2ID)
	if team, ok := s.catalog.Team(match.Player1TeamID); ok {
		detail.Team1Name = team.Name
	}
	if team, ok := s.catalog.Team(match.Player2TeamID); ok {
		detail.Team2Name = team.Name
	}

	detail.Comments, err = s.store.ListComments(id)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *Service) playerName(id int) string {
	player, err := s.store.GetPlayer(id)
	if err != nil || player == nil {
		return "Unknown"
	}
	return player.Name
}

// UpdateMatch applies a correction. Achievements are not re-evaluated and
// existing unlocks are never revoked; corrections only affect future
// evaluations and recomputed stats.
func (s *Service) UpdateMatch(ctx context.Context, id int, upd store.MatchUpdate) (*models.Match, error) {
	match, err := s.store.UpdateMatch(id, upd)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	s.invalidateStats(ctx)
	s.log.Info().Int("match_id", id).Msg("Match updated")
	return match, nil
}

// DeleteMatch removes a match with its comments and the unlock records
// that reference it. Unlocks earned at other matches stay untouched.
func (s *Service) DeleteMatch(ctx context.Context, id int) error {
	deleted, err := s.store.DeleteMatch(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMatchNotFound
	}
	prommetrics.MatchesDeletedTotal.Inc()
	s.publishStreaks()
	s.invalidateStats(ctx)
	s.log.Info().Int("match_id", id).Msg("Match deleted")
	return nil
}

// ListComments returns a match's comments after checking it exists.
func (s *Service) ListComments(matchID int) ([]models.Comment, error) {
	match, err := s.store.GetMatch(matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return s.store.ListComments(matchID)
}

// AddComment attaches a comment to a match. Content is expected trimmed
// and non-empty by the boundary.
func (s *Service) AddComment(matchID, playerID int, content string) (*models.Comment, error) {
	match, err := s.store.GetMatch(matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	player, err := s.store.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	comment, err := s.store.AddComment(matchID, playerID, content)
	if err != nil {
		return nil, err
	}
	prommetrics.CommentsPostedTotal.Inc()
	return comment, nil
}

// FullStats is the aggregated read-path payload.
type FullStats struct {
	HeadToHead    *stats.HeadToHead  `json:"headToHead"`
	Player1Stats  *stats.PlayerStats `json:"player1Stats"`
	Player2Stats  *stats.PlayerStats `json:"player2Stats"`
	RecentMatches []models.Match     `json:"recentMatches"`
	TotalMatches  int                `json:"totalMatches"`
}

// GetFullStats aggregates everything the stats view needs. Served from the
// cache when one is configured; recomputed and re-cached on miss.
func (s *Service) GetFullStats(ctx context.Context) (*FullStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cache.KeyFullStats); err == nil && cached != "" {
			var full FullStats
			if err := json.Unmarshal([]byte(cached), &full); err == nil {
				return &full, nil
			}
		}
	}

	players, err := s.store.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if len(players) < 2 {
		return nil, ErrPlayerNotFound
	}

	allMatches, err := s.store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	full := &FullStats{
		HeadToHead:    stats.ComputeHeadToHead(allMatches, players[0].ID, players[1].ID),
		Player1Stats:  stats.ComputePlayerStats(s.catalog, players[0].ID, allMatches),
		Player2Stats:  stats.ComputePlayerStats(s.catalog, players[1].ID, allMatches),
		RecentMatches: allMatches,
		TotalMatches:  len(allMatches),
	}
	if len(full.RecentMatches) > 10 {
		full.RecentMatches = full.RecentMatches[:10]
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(full); err == nil {
			if err := s.cache.Set(ctx, cache.KeyFullStats, string(encoded), s.cacheTTL); err != nil {
				s.log.Warn().Err(err).Msg("Failed to cache stats")
			}
		}
	}

	return full, nil
}

// ListPlayers returns the roster.
func (s *Service) ListPlayers() ([]models.Player, error) {
	return s.store.ListPlayers()
}

// invalidateStats drops the cached stats payload after any match write.
func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cache.KeyFullStats); err != nil {
		s.log.Warn().Err(err).Msg("Failed to invalidate stats cache")
	}
}

// publishStreaks refreshes the per-player streak gauges after a write.
func (s *Service) publishStreaks() {
	players, err := s.store.ListPlayers()
	if err != nil {
		return
	}
	allMatches, err := s.store.ListMatches()
	if err != nil {
		return
	}
	for _, p := range players {
		ps := stats.ComputePlayerStats(s.catalog, p.ID, allMatches)
		streak := 0
		switch ps.CurrentStreak.Type {
		case models.OutcomeWin:
			streak = ps.CurrentStreak.Count
		case models.OutcomeLoss:
			streak = -ps.CurrentStreak.Count
		}
		prommetrics.SetCurrentStreak(p.Name, streak)
	}
}

// decidedBy labels how a match was settled, for metrics.
func decidedBy(m *models.Match) string {
	switch {
	case m.Penalties:
		return "penalties"
	case m.ExtraTime:
		return "extra_time"
	default:
		return "regulation"
	}
}
