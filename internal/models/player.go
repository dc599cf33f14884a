// Package models defines domain models for the match tracker.
package models

// Player is one of the two registered rivals. The roster is seeded at
// first initialization and never changes at runtime.
type Player struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null;size:100" json:"name"`
	Avatar string `gorm:"type:text" json:"avatar"`
}

// TableName specifies the table name for Player model.
func (Player) TableName() string {
	return "players"
}
