package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db         *gorm.DB
	categories *CategoryService
}

func NewQuestionService(db *gorm.DB, categories *CategoryService) *QuestionService {
	return &QuestionService{db: db, categories: categories}
}

// QuestionPage is one page of questions plus the category labels the
// listing screens render alongside it.
type QuestionPage struct {
	Questions  []models.FormattedQuestion
	Total      int
	Categories []string
}

type DeleteResult struct {
	Deleted   models.Question
	Questions []models.FormattedQuestion
	Total     int
}

type CategoryPage struct {
	Questions       []models.FormattedQuestion
	CurrentCategory string
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

func (in QuestionInput) Validate() error {
	if strings.TrimSpace(in.Question) == "" {
		return fmt.Errorf("question text is required: %w", ErrValidation)
	}
	if strings.TrimSpace(in.Answer) == "" {
		return fmt.Errorf("answer text is required: %w", ErrValidation)
	}
	return nil
}

// List returns the requested page of all questions ordered by id. An empty
// page, including one past the end, is ErrNotFound.
func (s *QuestionService) List(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	current := Paginate(models.FormatQuestions(questions), page)
	if len(current) == 0 {
		return nil, fmt.Errorf("list questions page %d: %w", page, ErrNotFound)
	}

	labels, err := s.categories.Labels(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  current,
		Total:      len(questions),
		Categories: labels,
	}, nil
}

// Delete removes the question with the given path id and returns the
// refreshed listing. A non-numeric id is ErrValidation; an unknown one is
// ErrNotFound.
func (s *QuestionService) Delete(ctx context.Context, rawID string, page int) (*DeleteResult, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("question id %q: %w", rawID, ErrValidation)
	}

	var deleted models.Question
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("question %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("load question %d: %w: %w", id, ErrPersistence, err)
		}
		if err := tx.Delete(&deleted).Error; err != nil {
			return fmt.Errorf("delete question %d: %w: %w", id, ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	remaining, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	return &DeleteResult{
		Deleted:   deleted,
		Questions: Paginate(models.FormatQuestions(remaining), page),
		Total:     len(remaining),
	}, nil
}

func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&question).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create question: %w: %w", ErrPersistence, err)
	}
	return &question, nil
}

// Search matches term as a case-insensitive substring of the question text.
// No matches is a valid, empty result. Total counts every match, not just
// the returned page.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var matches []models.Question
	err := s.db.WithContext(ctx).
		Where(database.LowerFunc(s.db)+`(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w: %w", ErrPersistence, err)
	}

	labels, err := s.categories.Labels(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  Paginate(models.FormatQuestions(matches), page),
		Total:      len(matches),
		Categories: labels,
	}, nil
}

// ByCategory lists questions of the category at the zero-based index
// rawIndex. Every failure, including a malformed or out-of-range index, is
// ErrNotFound.
func (s *QuestionService) ByCategory(ctx context.Context, rawIndex string, page int) (*CategoryPage, error) {
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return nil, fmt.Errorf("category index %q: %w", rawIndex, ErrNotFound)
	}

	storeID := CategoryStoreID(index)
	if storeID <= 0 {
		return nil, fmt.Errorf("category index %d: %w", index, ErrNotFound)
	}

	count, err := s.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("category index %d: %w: %w", index, ErrNotFound, err)
	}
	if int64(storeID) > count {
		return nil, fmt.Errorf("category index %d of %d: %w", index, count, ErrNotFound)
	}

	var questions []models.Question
	err = s.db.WithContext(ctx).
		Where("category = ?", storeID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("questions for category %d: %w: %w", storeID, ErrNotFound, err)
	}

	return &CategoryPage{
		Questions:       Paginate(models.FormatQuestions(questions), page),
		CurrentCategory: rawIndex,
	}, nil
}

func (s *QuestionService) all(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("load questions: %w: %w", ErrPersistence, err)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
