package repository

import (
	"context"
	"fmt"
	"time"

	"prephub/backend/analytics"
	"prephub/backend/models"

	"gorm.io/gorm"
)

// AttemptRepository is the append-only attempt store.
type AttemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// FindByUser returns the user's whole history, oldest first.
func (r *AttemptRepository) FindByUser(ctx context.Context, userID uint) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at ASC, id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts for user %d: %w", userID, err)
	}
	return attempts, nil
}

// FindByUserAndDateRange returns attempts with start <= attempted_at < end.
func (r *AttemptRepository) FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND attempted_at >= ? AND attempted_at < ?", userID, start.UTC(), end.UTC()).
		Order("attempted_at ASC, id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts for user %d: %w", userID, err)
	}
	return attempts, nil
}

type HistoryFilter string

const (
	HistoryAll      HistoryFilter = "all"
	HistoryMockTest HistoryFilter = "mocktest"
	HistoryDSA      HistoryFilter = "dsa"
)

type HistorySort string

const (
	SortRecent   HistorySort = "recent"
	SortOldest   HistorySort = "oldest"
	SortScore    HistorySort = "score"
	SortAccuracy HistorySort = "accuracy"
)

const accuracyExpr = "CASE WHEN total_questions > 0 THEN correct_answers * 100.0 / total_questions ELSE 0 END"

type HistoryQuery struct {
	Filter HistoryFilter
	Sort   HistorySort
	Offset int
	Limit  int
}

// History returns one page of the user's attempts plus the unpaged total.
func (r *AttemptRepository) History(ctx context.Context, userID uint, q HistoryQuery) ([]models.Attempt, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Attempt{}).Where("user_id = ?", userID)
	switch q.Filter {
	case HistoryMockTest:
		query = query.Where("test_type = ?", models.TestTypeMockTest)
	case HistoryDSA:
		query = query.Where("test_type = ?", models.TestTypeDSA)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	switch q.Sort {
	case SortOldest:
		query = query.Order("attempted_at ASC").Order("id ASC")
	case SortScore:
		query = query.Order("score DESC").Order("attempted_at DESC").Order("id DESC")
	case SortAccuracy:
		query = query.Order(accuracyExpr + " DESC").Order("attempted_at DESC").Order("id DESC")
	default:
		query = query.Order("attempted_at DESC").Order("id DESC")
	}

	var attempts []models.Attempt
	if err := query.Offset(q.Offset).Limit(q.Limit).Find(&attempts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get attempt history: %w", err)
	}
	return attempts, total, nil
}

// UserScores aggregates score and mean accuracy per user for the attempts in scope.
// Users without attempts in scope are absent.
func (r *AttemptRepository) UserScores(ctx context.Context, scope analytics.Scope, now time.Time, loc *time.Location) ([]models.UserScore, error) {
	query := r.db.WithContext(ctx).
		Table("attempts").
		Select("attempts.user_id AS user_id, users.username AS user_name, " +
			"SUM(attempts.score) AS total_score, " +
			"AVG(CASE WHEN attempts.total_questions > 0 THEN attempts.correct_answers * 100.0 / attempts.total_questions ELSE 0 END) AS accuracy, " +
			"COUNT(*) AS attempts").
		Joins("JOIN users ON users.id = attempts.user_id AND users.deleted_at IS NULL").
		Group("attempts.user_id, users.username")

	if scope.Exam != "" {
		query = query.Where("attempts.exam = ?", scope.Exam)
	}
	if scope.Subject != "" {
		query = query.Where("attempts.subject = ?", scope.Subject)
	}
	if scope.Chapter != "" {
		query = query.Where("attempts.chapter = ?", scope.Chapter)
	}
	if since := scope.Timeframe.Since(now, loc); since != nil {
		query = query.Where("attempts.attempted_at >= ?", *since)
	}

	var scores []models.UserScore
	if err := query.Scan(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate user scores: %w", err)
	}
	return scores, nil
}

// DistinctFilters lists the exams, subjects and chapters present in the store.
func (r *AttemptRepository) DistinctFilters(ctx context.Context) (models.LeaderboardFilters, error) {
	filters := models.LeaderboardFilters{Exams: []string{}, Subjects: []string{}, Chapters: []string{}}
	columns := []struct {
		name string
		dest *[]string
	}{
		{"exam", &filters.Exams},
		{"subject", &filters.Subjects},
		{"chapter", &filters.Chapters},
	}
	for _, col := range columns {
		err := r.db.WithContext(ctx).
			Model(&models.Attempt{}).
			Distinct(col.name).
			Where(col.name+" <> ''").
			Order(col.name).
			Pluck(col.name, col.dest).Error
		if err != nil {
			return filters, fmt.Errorf("failed to list distinct %s: %w", col.name, err)
		}
	}
	return filters, nil
}
