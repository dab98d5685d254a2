package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trivia-api/internal/database"
	"trivia-api/internal/testutil"
)

func TestExportMatchesSeed(t *testing.T) {
	svc := newQuestionService(t)

	bank, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	seed, err := database.DefaultSeed()
	if err != nil {
		t.Fatalf("default seed: %v", err)
	}

	if len(bank.Categories) != len(seed.Categories) || len(bank.Questions) != len(seed.Questions) {
		t.Fatalf("expected %d/%d, got %d/%d", len(seed.Categories), len(seed.Questions), len(bank.Categories), len(bank.Questions))
	}
	for i := range seed.Questions {
		if bank.Questions[i] != seed.Questions[i] {
			t.Fatalf("question %d: expected %+v, got %+v", i, seed.Questions[i], bank.Questions[i])
		}
	}
}

func TestImportMatchesCategoriesByLabel(t *testing.T) {
	svc := newQuestionService(t)
	ctx := context.Background()

	n, err := svc.Import(ctx, &database.SeedData{
		Categories: []string{"Sports", "Art"},
		Questions: []database.SeedQuestion{
			{Question: "How many players in a rugby union team?", Answer: "15", Category: 1, Difficulty: 2},
			{Question: "Who painted Guernica?", Answer: "Picasso", Category: 2, Difficulty: 1},
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}

	result, err := svc.ByCategory(ctx, "5", 1)
	if err != nil {
		t.Fatalf("sports questions: %v", err)
	}
	last := result.Questions[len(result.Questions)-1]
	if last.Question != "How many players in a rugby union team?" || last.Category != 6 {
		t.Fatalf("unexpected imported question %+v", last)
	}

	if total := testutil.CountQuestions(t, svc.db); total != 21 {
		t.Fatalf("expected 21 questions, got %d", total)
	}
}

func TestImportRejectsWholeBatch(t *testing.T) {
	svc := newQuestionService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		bank *database.SeedData
	}{
		{"unknown label", &database.SeedData{
			Categories: []string{"Science", "Cooking"},
			Questions: []database.SeedQuestion{
				{Question: "Q1", Answer: "A", Category: 1},
				{Question: "Q2", Answer: "A", Category: 2},
			},
		}},
		{"out of range category", &database.SeedData{
			Categories: []string{"Science"},
			Questions:  []database.SeedQuestion{{Question: "Q", Answer: "A", Category: 2}},
		}},
		{"blank answer", &database.SeedData{
			Categories: []string{"Science"},
			Questions:  []database.SeedQuestion{{Question: "Q", Answer: " ", Category: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Import(ctx, tt.bank); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	if total := testutil.CountQuestions(t, svc.db); total != 19 {
		t.Fatalf("expected nothing imported, store has %d questions", total)
	}
}

func TestImportLargeBankInBatches(t *testing.T) {
	svc := newQuestionService(t)

	// 9000 rows of at least four columns each pass SQLite's 32766
	// bound-parameter limit for a single INSERT.
	bank := &database.SeedData{Categories: []string{"History"}}
	for i := 0; i < 9000; i++ {
		bank.Questions = append(bank.Questions, database.SeedQuestion{
			Question:   fmt.Sprintf("History question %d?", i),
			Answer:     "A",
			Category:   1,
			Difficulty: 1 + i%5,
		})
	}

	n, err := svc.Import(context.Background(), bank)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 9000 {
		t.Fatalf("expected 9000 imported, got %d", n)
	}
	if total := testutil.CountQuestions(t, svc.db); total != 19+9000 {
		t.Fatalf("expected %d questions, got %d", 19+9000, total)
	}
}
