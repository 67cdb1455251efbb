package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prephub/backend/models"
	"prephub/backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) FindByDate(ctx context.Context, date time.Time) (*models.DailyChallenge, error) {
	var challenge models.DailyChallenge
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("no daily challenge for %s", date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to get daily challenge: %w", err)
	}
	return &challenge, nil
}

// CreateOrGet inserts the challenge for its date. When another writer already
// holds the date, the unique index rejects this insert and the existing row is
// returned instead. created reports which of the two happened.
func (r *ChallengeRepository) CreateOrGet(ctx context.Context, challenge *models.DailyChallenge) (*models.DailyChallenge, bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "date"}}, DoNothing: true}).
		Create(challenge)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create daily challenge: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return challenge, true, nil
	}

	existing, err := r.FindByDate(ctx, challenge.Date)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// CountByDate is used to check the one-per-date invariant.
func (r *ChallengeRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.DailyChallenge{}).Where("date = ?", date).Count(&n).Error
	return n, err
}

func (r *ChallengeRepository) FindParticipant(ctx context.Context, challengeID, userID uint) (*models.DailyChallengeParticipant, error) {
	var p models.DailyChallengeParticipant
	err := r.db.WithContext(ctx).Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return &p, nil
}

// AddParticipant adds the user to the participant set; an existing member is left untouched.
func (r *ChallengeRepository) AddParticipant(ctx context.Context, challengeID, userID uint, at time.Time) (bool, error) {
	p := models.DailyChallengeParticipant{
		ChallengeID:    challengeID,
		UserID:         userID,
		ParticipatedAt: at.UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&p)
	if result.Error != nil {
		return false, fmt.Errorf("failed to add participant: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// MarkCompleted stamps the completion time once. It reports whether this call
// set it; a missing participant row is not an error here.
func (r *ChallengeRepository) MarkCompleted(ctx context.Context, challengeID, userID uint, at time.Time) (bool, error) {
	completedAt := at.UTC()
	result := r.db.WithContext(ctx).
		Model(&models.DailyChallengeParticipant{}).
		Where("challenge_id = ? AND user_id = ? AND completed_at IS NULL", challengeID, userID).
		Update("completed_at", completedAt)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark completion: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *ChallengeRepository) CountParticipants(ctx context.Context, challengeID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.DailyChallengeParticipant{}).
		Where("challenge_id = ?", challengeID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return n, nil
}

func (r *ChallengeRepository) CountCompletions(ctx context.Context, challengeID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.DailyChallengeParticipant{}).
		Where("challenge_id = ? AND completed_at IS NOT NULL", challengeID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}
	return n, nil
}
