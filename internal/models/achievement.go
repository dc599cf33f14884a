package models

import (
	"time"
)

// Achievement is a persisted unlock record: a player earned a catalog
// achievement type at a specific match. At most one record exists per
// (player, type) pair. Corrections never revoke a record; deleting a
// match removes only the records that reference it.
type Achievement struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	PlayerID   int       `gorm:"not null;index" json:"playerId"`
	Type       string    `gorm:"not null;size:100;index" json:"type"`
	MatchID    int       `gorm:"not null;index" json:"matchId"`
	UnlockedAt time.Time `gorm:"not null" json:"unlockedAt"`
}

// TableName specifies the table name for Achievement model.
func (Achievement) TableName() string {
	return "achievements"
}
