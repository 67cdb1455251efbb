package repository

import (
	"context"
	"fmt"
	"time"

	"prephub/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) FindByUser(ctx context.Context, userID uint) ([]models.EarnedAchievement, error) {
	var earned []models.EarnedAchievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_date ASC, id ASC").
		Find(&earned).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements for user %d: %w", userID, err)
	}
	return earned, nil
}

// Award inserts the badge unless the (user, badge) pair already exists.
// It reports whether this call created the row.
func (r *AchievementRepository) Award(ctx context.Context, userID uint, badge string, at time.Time) (*models.EarnedAchievement, bool, error) {
	earned := models.EarnedAchievement{
		UserID:     userID,
		BadgeName:  badge,
		EarnedDate: at.UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_name"}},
			DoNothing: true,
		}).
		Create(&earned)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to award %s to user %d: %w", badge, userID, result.Error)
	}
	return &earned, result.RowsAffected == 1, nil
}
