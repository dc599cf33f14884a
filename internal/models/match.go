package models

import (
	"time"
)

// Match is a single recorded head-to-head result. Scores are final
// (after extra time / penalties when those flags are set).
type Match struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Player1ID     int       `gorm:"not null;index" json:"player1Id"`
	Player2ID     int       `gorm:"not null;index" json:"player2Id"`
	Player1Score  int       `gorm:"not null" json:"player1Score"`
	Player2Score  int       `gorm:"not null" json:"player2Score"`
	Player1TeamID int       `gorm:"not null" json:"player1TeamId"`
	Player2TeamID int       `gorm:"not null" json:"player2TeamId"`
	ExtraTime     bool      `gorm:"default:false" json:"extraTime"`
	Penalties     bool      `gorm:"default:false" json:"penalties"`
}

// TableName specifies the table name for Match model.
func (Match) TableName() string {
	return "matches"
}

// Outcome classifies a match result from one player's perspective.
type Outcome string

// Outcome constants.
const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// HasPlayer reports whether the given player took part in the match.
func (m *Match) HasPlayer(playerID int) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}

// ScoreFor returns the given player's own score.
func (m *Match) ScoreFor(playerID int) int {
	if m.Player1ID == playerID {
		return m.Player1Score
	}
	return m.Player2Score
}

// ScoreAgainst returns the opponent's score from the given player's side.
func (m *Match) ScoreAgainst(playerID int) int {
	if m.Player1ID == playerID {
		return m.Player2Score
	}
	return m.Player1Score
}

// TeamFor returns the team the given player used.
func (m *Match) TeamFor(playerID int) int {
	if m.Player1ID == playerID {
		return m.Player1TeamID
	}
	return m.Player2TeamID
}

// TeamAgainst returns the team the opponent used.
func (m *Match) TeamAgainst(playerID int) int {
	if m.Player1ID == playerID {
		return m.Player2TeamID
	}
	return m.Player1TeamID
}

// OutcomeFor classifies the match from the given player's perspective.
func (m *Match) OutcomeFor(playerID int) Outcome {
	own, opp := m.ScoreFor(playerID), m.ScoreAgainst(playerID)
	switch {
	case own > opp:
		return OutcomeWin
	case own < opp:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
