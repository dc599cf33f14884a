// Package store provides the persistence layer for matches, comments,
// achievement unlocks and the player roster. Two backends implement the
// same contract: a whole-document JSON file store and a GORM-backed SQL
// store. Absent entities are signalled with nil/false returns; only I/O
// failures surface as errors.
package store

import (
	"github.com/pkoval/fifa-rivals/internal/models"
)

// AddMatchData carries the caller-supplied fields of a new match. The store
// assigns the id and timestamp.
type AddMatchData struct {
	Player1ID     int  `json:"player1Id"`
	Player2ID     int  `json:"player2Id"`
	Player1Score  int  `json:"player1Score"`
	Player2Score  int  `json:"player2Score"`
	Player1TeamID int  `json:"player1TeamId"`
	Player2TeamID int  `json:"player2TeamId"`
	ExtraTime     bool `json:"extraTime"`
	Penalties     bool `json:"penalties"`
}

// MatchUpdate carries the correctable fields of a match. Nil fields are
// left untouched.
type MatchUpdate struct {
	Player1Score  *int  `json:"player1Score"`
	Player2Score  *int  `json:"player2Score"`
	Player1TeamID *int  `json:"player1TeamId"`
	Player2TeamID *int  `json:"player2TeamId"`
	ExtraTime     *bool `json:"extraTime"`
	Penalties     *bool `json:"penalties"`
}

// Store is the persistence contract shared by all backends.
type Store interface {
	// Players. The roster is seeded once and read-only afterwards.
	ListPlayers() ([]models.Player, error)
	GetPlayer(id int) (*models.Player, error)

	// Matches. ListMatches returns most-recent-first.
	ListMatches() ([]models.Match, error)
	GetMatch(id int) (*models.Match, error)
	AddMatch(data AddMatchData) (*models.Match, error)
	UpdateMatch(id int, upd MatchUpdate) (*models.Match, error)
	// DeleteMatch cascades: comments first, then achievement unlocks
	// referencing the match, then the match itself. Returns false when
	// the match does not exist.
	DeleteMatch(id int) (bool, error)

	// Comments.
	ListComments(matchID int) ([]models.Comment, error)
	AddComment(matchID, playerID int, content string) (*models.Comment, error)

	// Achievement unlocks. playerID 0 lists all players.
	ListAchievements(playerID int) ([]models.Achievement, error)
	AddAchievement(playerID int, typeID string, matchID int) (*models.Achievement, error)
}

// apply copies non-nil update fields onto a match.
func (u MatchUpdate) apply(m *models.Match) {
	if u.Player1Score != nil {
		m.Player1Score = *u.Player1Score
	}
	if u.Player2Score != nil {
		m.Player2Score = *u.Player2Score
	}
	if u.Player1TeamID != nil {
		m.Player1TeamID = *u.Player1TeamID
	}
	if u.Player2TeamID != nil {
		m.Player2TeamID = *u.Player2TeamID
	}
	if u.ExtraTime != nil {
		m.ExtraTime = *u.ExtraTime
	}
	if u.Penalties != nil {
		m.Penalties = *u.Penalties
	}
}

// DefaultPlayers is the two-player seed used when a backend is initialized
// against an empty dataset.
var DefaultPlayers = []models.Player{
	{ID: 1, Name: "Pavlo", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Pavlo"},
	{ID: 2, Name: "Summet", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Summet"},
}
