package models

import "time"

// Profile is an optional one-to-one extension of a user. It is created
// lazily on the first profile write and never deleted.
type Profile struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	GitPAC    string    `gorm:"type:text" json:"git_pac"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
