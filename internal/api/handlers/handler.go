// Package handlers provides the REST API for the match tracker. It exposes
// endpoints for match history, comments, achievement unlocks, the catalog,
// and the aggregated statistics view.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/internal/service/achievements"
	"github.com/pkoval/fifa-rivals/internal/service/matches"
	"github.com/pkoval/fifa-rivals/internal/store"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// MatchService interface for match, comment and stats operations.
type MatchService interface {
	RecordMatch(ctx context.Context, data store.AddMatchData) (*matches.RecordResult, error)
	ListMatches() ([]models.Match, error)
	GetMatchDetail(id int) (*matches.MatchDetail, error)
	UpdateMatch(ctx context.Context, id int, upd store.MatchUpdate) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
	ListComments(matchID int) ([]models.Comment, error)
	AddComment(matchID, playerID int, content string) (*models.Comment, error)
	GetFullStats(ctx context.Context) (*matches.FullStats, error)
	ListPlayers() ([]models.Player, error)
}

// AchievementService interface for unlock history and the catalog.
type AchievementService interface {
	ListPlayerAchievements(playerID int) ([]models.Achievement, error)
	CatalogEntries() []catalog.AchievementType
}

// Handler handles tracker API requests.
type Handler struct {
	matchService       MatchService
	achievementService AchievementService
	log                *logger.Logger
}

// NewHandler creates a new tracker handler.
func NewHandler(matchService *matches.Service, achievementService *achievements.Service, log *logger.Logger) *Handler {
	return &Handler{
		matchService:       matchService,
		achievementService: achievementService,
		log:                log,
	}
}

// NewHandlerWithInterfaces creates a new tracker handler with interface dependencies (useful for testing).
func NewHandlerWithInterfaces(matchService MatchService, achievementService AchievementService, log *logger.Logger) *Handler {
	return &Handler{
		matchService:       matchService,
		achievementService: achievementService,
		log:                log,
	}
}

// RegisterRoutes attaches all API routes under /api/v1.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.GET("/players", h.ListPlayers)
	api.GET("/matches", h.ListMatches)
	api.POST("/matches", h.RecordMatch)
	api.GET("/matches/:id", h.GetMatch)
	api.PUT("/matches/:id", h.UpdateMatch)
	api.DELETE("/matches/:id", h.DeleteMatch)
	api.GET("/comments", h.ListComments)
	api.POST("/comments", h.AddComment)
	api.GET("/achievements", h.ListAchievements)
	api.GET("/achievements/catalog", h.GetCatalog)
	api.GET("/stats", h.GetStats)
}

// ListPlayers returns the roster.
// GET /api/v1/players.
func (h *Handler) ListPlayers(c *gin.Context) {
	players, err := h.matchService.ListPlayers()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list players")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve players")
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// ListMatches returns all matches, most recent first.
// GET /api/v1/matches.
func (h *Handler) ListMatches(c *gin.Context) {
	allMatches, err := h.matchService.ListMatches()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list matches")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve matches")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matches":       allMatches,
		"total_matches": len(allMatches),
	})
}

type recordMatchRequest struct {
	Player1ID     *int `json:"player1Id"`
	Player2ID     *int `json:"player2Id"`
	Player1Score  *int `json:"player1Score"`
	Player2Score  *int `json:"player2Score"`
	Player1TeamID *int `json:"player1TeamId"`
	Player2TeamID *int `json:"player2TeamId"`
	ExtraTime     bool `json:"extraTime"`
	Penalties     bool `json:"penalties"`
}

func (r *recordMatchRequest) validate() error {
	for name, field := range map[string]*int{
		"player1Id":     r.Player1ID,
		"player2Id":     r.Player2ID,
		"player1Score":  r.Player1Score,
		"player2Score":  r.Player2Score,
		"player1TeamId": r.Player1TeamID,
		"player2TeamId": r.Player2TeamID,
	} {
		if field == nil {
			return fmt.Errorf("missing required field: %s", name)
		}
	}
	if *r.Player1Score < 0 || *r.Player2Score < 0 {
		return fmt.Errorf("scores must be non-negative")
	}
	if *r.Player1ID == *r.Player2ID {
		return fmt.Errorf("players must be different")
	}
	return nil
}

// RecordMatch stores a new result and returns it together with the
// achievements it unlocked for each player.
// POST /api/v1/matches.
func (h *Handler) RecordMatch(c *gin.Context) {
	var req recordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.matchService.RecordMatch(c.Request.Context(), store.AddMatchData{
		Player1ID:     *req.Player1ID,
		Player2ID:     *req.Player2ID,
		Player1Score:  *req.Player1Score,
		Player2Score:  *req.Player2Score,
		Player1TeamID: *req.Player1TeamID,
		Player2TeamID: *req.Player2TeamID,
		ExtraTime:     req.ExtraTime,
		Penalties:     req.Penalties,
	})
	if err != nil {
		if errors.Is(err, matches.ErrPlayerNotFound) || errors.Is(err, matches.ErrTeamNotFound) {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to record match")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to record match")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetMatch returns one match enriched with names and comments.
// GET /api/v1/matches/:id.
func (h *Handler) GetMatch(c *gin.Context) {
	id, err := h.parseID(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.matchService.GetMatchDetail(id)
	if err != nil {
		h.log.Error().Err(err).Int("match_id", id).Msg("Failed to get match")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve match")
		return
	}
	if detail == nil {
		h.errorResponse(c, http.StatusNotFound, "Match not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

type updateMatchRequest struct {
	Player1Score  *int  `json:"player1Score"`
	Player2Score  *int  `json:"player2Score"`
	Player1TeamID *int  `json:"player1TeamId"`
	Player2TeamID *int  `json:"player2TeamId"`
	ExtraTime     *bool `json:"extraTime"`
	Penalties     *bool `json:"penalties"`
}

// UpdateMatch applies a partial correction to a stored match.
// PUT /api/v1/matches/:id.
func (h *Handler) UpdateMatch(c *gin.Context) {
	id, err := h.parseID(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req updateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if (req.Player1Score != nil && *req.Player1Score < 0) ||
		(req.Player2Score != nil && *req.Player2Score < 0) {
		h.errorResponse(c, http.StatusBadRequest, "scores must be non-negative")
		return
	}

	match, err := h.matchService.UpdateMatch(c.Request.Context(), id, store.MatchUpdate{
		Player1Score:  req.Player1Score,
		Player2Score:  req.Player2Score,
		Player1TeamID: req.Player1TeamID,
		Player2TeamID: req.Player2TeamID,
		ExtraTime:     req.ExtraTime,
		Penalties:     req.Penalties,
	})
	if err != nil {
		if errors.Is(err, matches.ErrMatchNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Match not found")
			return
		}
		h.log.Error().Err(err).Int("match_id", id).Msg("Failed to update match")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to update match")
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// DeleteMatch removes a match, its comments, and the unlocks it triggered.
// DELETE /api/v1/matches/:id.
func (h *Handler) DeleteMatch(c *gin.Context) {
	id, err := h.parseID(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.matchService.DeleteMatch(c.Request.Context(), id); err != nil {
		if errors.Is(err, matches.ErrMatchNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Match not found")
			return
		}
		h.log.Error().Err(err).Int("match_id", id).Msg("Failed to delete match")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to delete match")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "match_id": id})
}

// ListComments returns a match's comments, oldest first.
// GET /api/v1/comments?match_id=1.
func (h *Handler) ListComments(c *gin.Context) {
	matchID, err := h.parseQueryID(c, "match_id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := h.matchService.ListComments(matchID)
	if err != nil {
		if errors.Is(err, matches.ErrMatchNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Match not found")
			return
		}
		h.log.Error().Err(err).Int("match_id", matchID).Msg("Failed to list comments")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"match_id": matchID,
		"comments": comments,
	})
}

type addCommentRequest struct {
	MatchID  *int   `json:"matchId"`
	PlayerID *int   `json:"playerId"`
	Content  string `json:"content"`
}

// AddComment attaches a comment to a match.
// POST /api/v1/comments.
func (h *Handler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MatchID == nil || req.PlayerID == nil {
		h.errorResponse(c, http.StatusBadRequest, "matchId and playerId are required")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		h.errorResponse(c, http.StatusBadRequest, "content must not be empty")
		return
	}

	comment, err := h.matchService.AddComment(*req.MatchID, *req.PlayerID, content)
	if err != nil {
		switch {
		case errors.Is(err, matches.ErrMatchNotFound):
			h.errorResponse(c, http.StatusNotFound, "Match not found")
		case errors.Is(err, matches.ErrPlayerNotFound):
			h.errorResponse(c, http.StatusNotFound, "Player not found")
		default:
			h.log.Error().Err(err).Msg("Failed to add comment")
			h.errorResponse(c, http.StatusInternalServerError, "Failed to add comment")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ListAchievements returns unlock records, optionally for one player.
// GET /api/v1/achievements?player_id=1.
func (h *Handler) ListAchievements(c *gin.Context) {
	playerID := 0
	if raw := c.Query("player_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.errorResponse(c, http.StatusBadRequest, fmt.Sprintf("invalid player_id: %s", raw))
			return
		}
		playerID = parsed
	}

	unlocks, err := h.achievementService.ListPlayerAchievements(playerID)
	if err != nil {
		h.log.Error().Err(err).Int("player_id", playerID).Msg("Failed to list achievements")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve achievements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements":  unlocks,
		"total_unlocks": len(unlocks),
	})
}

// GetCatalog returns every achievement definition in declaration order.
// GET /api/v1/achievements/catalog.
func (h *Handler) GetCatalog(c *gin.Context) {
	entries := h.achievementService.CatalogEntries()
	c.JSON(http.StatusOK, gin.H{
		"achievements":       entries,
		"total_achievements": len(entries),
	})
}

// GetStats returns the aggregated statistics view.
// GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	full, err := h.matchService.GetFullStats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get stats")
		h.errorResponse(c, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	c.JSON(http.StatusOK, full)
}

// Helper functions

// parseID extracts and validates a numeric URL parameter.
func (h *Handler) parseID(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}

// parseQueryID extracts and validates a required numeric query parameter.
func (h *Handler) parseQueryID(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}

// errorResponse sends a standardized error response.
func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error":     message,
		"timestamp": time.Now().UTC(),
	})
}
