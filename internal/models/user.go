package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);index" json:"email"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"first_name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Projects []Project  `gorm:"foreignKey:CreatedByID" json:"-"`
	Profile  *Profile   `gorm:"foreignKey:UserID" json:"-"`
	Token    *AuthToken `gorm:"foreignKey:UserID" json:"-"`
}
