package models

import "gorm.io/gorm"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Problem struct {
	gorm.Model
	Title      string `gorm:"not null" json:"title"`
	Topic      string `gorm:"size:128;index" json:"topic"`
	Difficulty string `gorm:"size:16;not null" json:"difficulty"` // easy, medium, hard
	IsActive   bool   `gorm:"default:true;index" json:"isActive"`
}
