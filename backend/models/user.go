package models

import "gorm.io/gorm"

// User is the directory entry. Registration order (ID) is the last leaderboard tie-break.
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"password_hash,omitempty"`
	Role         string `gorm:"default:user" json:"role"` // user, admin
}
