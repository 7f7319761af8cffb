package types

import (
	"time"
)

const (
	DefaultBoardName = "My Board"
	NewBoardName     = "New Board"
)

// Board is a named canvas grouping the notes of a single owner.
type Board struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:100;not null"`
	Notes     []Note `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
