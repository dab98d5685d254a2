package services

import (
	"context"
	"errors"
	"fmt"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// AllCategoriesType is the quiz_category.type the web client sends when the
// player picks "All".
const AllCategoriesType = "click"

// QuizSelection describes the pool a quiz draws from.
type QuizSelection struct {
	AllCategories bool
	// CategoryIndex is the zero-based client index; ignored when
	// AllCategories is set.
	CategoryIndex int
	Previous      []uint
}

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion returns the lowest-id question of the pool that is not in
// sel.Previous. A nil question with a nil error means the pool is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, sel QuizSelection) (*models.Question, error) {
	var question models.Question
	err := s.pool(ctx, sel).Order("id ASC").First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select quiz question: %w: %w", ErrPersistence, err)
	}
	return &question, nil
}

// Remaining counts the questions of the pool not yet in sel.Previous.
func (s *QuizService) Remaining(ctx context.Context, sel QuizSelection) (int64, error) {
	var count int64
	if err := s.pool(ctx, sel).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count quiz pool: %w: %w", ErrPersistence, err)
	}
	return count, nil
}

func (s *QuizService) pool(ctx context.Context, sel QuizSelection) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if !sel.AllCategories {
		query = query.Where("category = ?", CategoryStoreID(sel.CategoryIndex))
	}
	// An empty NOT IN list would render as NOT IN (NULL) and match nothing.
	if len(sel.Previous) > 0 {
		query = query.Where("id NOT IN ?", sel.Previous)
	}
	return query
}
