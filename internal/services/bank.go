package services

import (
	"context"
	"fmt"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// importBatchSize keeps each INSERT under the bound-parameter limits of
// SQLite and Postgres.
const importBatchSize = 500

// Export returns every category and question in bank form, ordered by id.
func (s *QuestionService) Export(ctx context.Context) (*database.SeedData, error) {
	categories, err := s.categories.all(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	bank := &database.SeedData{
		Categories: models.Labels(categories),
		Questions:  make([]database.SeedQuestion, 0, len(questions)),
	}
	position := make(map[int]int, len(categories))
	for i, c := range categories {
		position[int(c.ID)] = i + 1
	}
	for _, q := range questions {
		bank.Questions = append(bank.Questions, database.SeedQuestion{
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   position[q.Category],
			Difficulty: q.Difficulty,
		})
	}
	return bank, nil
}

// Import appends the bank's questions to the store. Categories are matched
// by label against the existing ones; an unknown label rejects the whole
// import.
func (s *QuestionService) Import(ctx context.Context, bank *database.SeedData) (int, error) {
	categories, err := s.categories.all(ctx)
	if err != nil {
		return 0, err
	}
	storeIDs := make(map[string]int, len(categories))
	for _, c := range categories {
		storeIDs[c.Type] = int(c.ID)
	}

	questions := make([]models.Question, 0, len(bank.Questions))
	for i, q := range bank.Questions {
		input := QuestionInput{Question: q.Question, Answer: q.Answer, Difficulty: q.Difficulty}
		if q.Category < 1 || q.Category > len(bank.Categories) {
			return 0, fmt.Errorf("import question %d: category %d out of range: %w", i, q.Category, ErrValidation)
		}
		label := bank.Categories[q.Category-1]
		id, ok := storeIDs[label]
		if !ok {
			return 0, fmt.Errorf("import question %d: unknown category %q: %w", i, label, ErrValidation)
		}
		input.Category = id
		if err := input.Validate(); err != nil {
			return 0, fmt.Errorf("import question %d: %w", i, err)
		}
		questions = append(questions, models.Question{
			Question:   input.Question,
			Answer:     input.Answer,
			Category:   input.Category,
			Difficulty: input.Difficulty,
		})
	}
	if len(questions) == 0 {
		return 0, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&questions, importBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import questions: %w: %w", ErrPersistence, err)
	}
	return len(questions), nil
}
