package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prephub/backend/models"
	"prephub/backend/utils"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// FindActive returns active problems ordered by id.
func (r *ProblemRepository) FindActive(ctx context.Context) ([]models.Problem, error) {
	var problems []models.Problem
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&problems).Error; err != nil {
		return nil, fmt.Errorf("failed to get active problems: %w", err)
	}
	return problems, nil
}

func (r *ProblemRepository) FindByID(ctx context.Context, id uint) (*models.Problem, error) {
	var problem models.Problem
	if err := r.db.WithContext(ctx).First(&problem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("problem %d not found", id)
		}
		return nil, fmt.Errorf("failed to get problem %d: %w", id, err)
	}
	return &problem, nil
}

type ProblemSearch struct {
	Search     string
	Topic      string
	Difficulty string
	// newest, title or difficulty; anything else orders by id
	Sort string
}

// Search lists active problems matching every non-empty criterion.
func (r *ProblemRepository) Search(ctx context.Context, q ProblemSearch) ([]models.Problem, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if q.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.Topic != "" {
		query = query.Where("topic = ?", q.Topic)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty = ?", q.Difficulty)
	}

	switch q.Sort {
	case "newest":
		query = query.Order("created_at DESC").Order("id DESC")
	case "title":
		query = query.Order("title ASC").Order("id ASC")
	case "difficulty":
		query = query.Order("CASE difficulty WHEN 'easy' THEN 1 WHEN 'medium' THEN 2 WHEN 'hard' THEN 3 ELSE 4 END").Order("id ASC")
	default:
		query = query.Order("id ASC")
	}

	var problems []models.Problem
	if err := query.Find(&problems).Error; err != nil {
		return nil, fmt.Errorf("failed to search problems: %w", err)
	}
	return problems, nil
}
