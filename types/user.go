package types

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:150;uniqueIndex;not null"`
	Password  string `json:"-"`
	Boards    []Board
	Notes     []Note
	CreatedAt time.Time
	UpdatedAt time.Time
}
