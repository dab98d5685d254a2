// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an empty, migrated SQLite store in a temp directory.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trivia.db")
	db, err := gorm.Open(database.OpenSQLite(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SetupSeededDB creates a test store loaded with the embedded question bank:
// six categories (ids 1-6) and nineteen questions (ids 1-19).
func SetupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := SetupTestDB(t)
	seed, err := database.DefaultSeed()
	if err != nil {
		t.Fatalf("parse default seed: %v", err)
	}
	if err := database.Seed(db, seed); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}

// CreateQuestions inserts questions in order and returns them with ids set.
func CreateQuestions(t *testing.T, db *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
	}
	return questions
}

// CreateCategories inserts one category per label.
func CreateCategories(t *testing.T, db *gorm.DB, labels ...string) []models.Category {
	t.Helper()
	categories := make([]models.Category, 0, len(labels))
	for _, label := range labels {
		c := models.Category{Type: label}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("create category: %v", err)
		}
		categories = append(categories, c)
	}
	return categories
}

// CountQuestions returns the number of stored questions.
func CountQuestions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	return count
}
