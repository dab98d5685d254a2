package services

import (
	"context"
	"fmt"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// CategoryStoreID maps the zero-based category index used by clients in
// paths and quiz requests to the one-based store id.
func CategoryStoreID(index int) int {
	return index + 1
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns every category ordered by id. An empty store is ErrNotFound.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("list categories: %w", ErrNotFound)
	}
	return categories, nil
}

// Labels returns every category label ordered by id; empty is not an error.
func (s *CategoryService) Labels(ctx context.Context) ([]string, error) {
	categories, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return models.Labels(categories), nil
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w: %w", ErrPersistence, err)
	}
	return count, nil
}

func (s *CategoryService) all(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w: %w", ErrPersistence, err)
	}
	return categories, nil
}
