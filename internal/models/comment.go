package models

import (
	"time"
)

// Comment is a free-text note attached to a match. Comments are never
// edited; they are removed only when their parent match is deleted.
type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	MatchID   int       `gorm:"not null;index" json:"matchId"`
	PlayerID  int       `gorm:"not null;index" json:"playerId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for Comment model.
func (Comment) TableName() string {
	return "comments"
}
