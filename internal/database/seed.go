package database

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"

	"trivia-api/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/trivia.yaml
var defaultSeed []byte

// SeedData is the on-disk shape of a question bank.
// Question categories are 1-based positions in Categories.
type SeedData struct {
	Categories []string       `yaml:"categories" json:"categories"`
	Questions  []SeedQuestion `yaml:"questions" json:"questions"`
}

type SeedQuestion struct {
	Question   string `yaml:"question" json:"question"`
	Answer     string `yaml:"answer" json:"answer"`
	Category   int    `yaml:"category" json:"category"`
	Difficulty int    `yaml:"difficulty" json:"difficulty"`
}

// ParseSeed decodes a YAML question bank, rejecting unknown fields.
func ParseSeed(data []byte) (*SeedData, error) {
	var seed SeedData
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, q := range seed.Questions {
		if q.Question == "" || q.Answer == "" {
			return nil, fmt.Errorf("parse seed: question %d is missing text or answer", i)
		}
		if q.Category < 1 || q.Category > len(seed.Categories) {
			return nil, fmt.Errorf("parse seed: question %d references unknown category %d", i, q.Category)
		}
	}
	return &seed, nil
}

// MarshalSeed encodes a bank in the same YAML layout ParseSeed reads.
func MarshalSeed(seed *SeedData) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(seed); err != nil {
		return nil, fmt.Errorf("marshal seed: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("marshal seed: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultSeed returns the embedded question bank.
func DefaultSeed() (*SeedData, error) {
	return ParseSeed(defaultSeed)
}

// Seed loads the bank into an empty store. A store that already has
// categories is left untouched.
func Seed(db *gorm.DB, seed *SeedData) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		slog.Info("seed skipped, store not empty", "categories", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := make([]models.Category, 0, len(seed.Categories))
		for _, label := range seed.Categories {
			categories = append(categories, models.Category{Type: label})
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}

		if len(seed.Questions) == 0 {
			return nil
		}
		questions := make([]models.Question, 0, len(seed.Questions))
		for _, q := range seed.Questions {
			questions = append(questions, models.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   int(categories[q.Category-1].ID),
				Difficulty: q.Difficulty,
			})
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}

		slog.Info("database seeded", "categories", len(categories), "questions", len(questions))
		return nil
	})
}
