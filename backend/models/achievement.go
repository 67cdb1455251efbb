package models

import "time"

// EarnedAchievement is unique per (user, badge); a second award of the same
// badge is rejected by the index.
type EarnedAchievement struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"userId"`
	BadgeName  string    `gorm:"size:64;not null;uniqueIndex:idx_user_badge" json:"badgeName"`
	EarnedDate time.Time `gorm:"not null" json:"earnedDate"`
}
