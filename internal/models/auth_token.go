package models

import "time"

// AuthToken is the opaque bearer credential for a user. Each user holds at
// most one token; sign-in returns the existing one when present, so the
// token value is stable across logins.
type AuthToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	Key       string    `gorm:"column:token_key;type:varchar(64);uniqueIndex;not null" json:"key"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
