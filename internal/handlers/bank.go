package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"trivia-api/internal/database"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploads; larger files are rejected, not truncated.
const maxImportSize = 1 << 20

var csvHeader = []string{"category", "question", "answer", "difficulty"}

type ImportResponse struct {
	Success  bool `json:"success" example:"true"`
	Imported int  `json:"imported" example:"12"`
}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Every category and question as yaml (default), json or csv
// @Tags         questions
// @Produce      json
// @Produce      plain
// @Security     BearerAuth
// @Param        format query string false "yaml, json or csv" default(yaml)
// @Success      200 {object} database.SeedData
// @Failure      401 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	bank, err := h.questionService.Export(c.Request.Context())
	if err != nil {
		respondError(c, "export questions", err)
		return
	}

	format := c.DefaultQuery("format", "yaml")
	switch format {
	case "json":
		c.Header("Content-Disposition", `attachment; filename="trivia.json"`)
		c.JSON(http.StatusOK, bank)
	case "csv":
		var buf bytes.Buffer
		if err := writeCSV(&buf, bank); err != nil {
			respondError(c, "export questions", fmt.Errorf("write csv: %w: %w", services.ErrPersistence, err))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="trivia.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "yaml":
		data, err := database.MarshalSeed(bank)
		if err != nil {
			respondError(c, "export questions", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="trivia.yaml"`)
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	default:
		respondError(c, "export questions", fmt.Errorf("format %q: %w", format, services.ErrValidation))
	}
}

// ImportQuestions godoc
// @Summary      Import questions
// @Description  Append questions from an uploaded .yaml, .json or .csv bank. Categories are matched by label; one bad row rejects the file.
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Question bank"
// @Success      200 {object} ImportResponse
// @Failure      401 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/import [post]
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, "import questions", fmt.Errorf("file required: %w: %w", services.ErrValidation, err))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxImportSize+1))
	if err != nil {
		respondError(c, "import questions", fmt.Errorf("read upload: %w: %w", services.ErrValidation, err))
		return
	}
	if len(body) > maxImportSize {
		respondError(c, "import questions", fmt.Errorf("upload exceeds %d bytes: %w", maxImportSize, services.ErrValidation))
		return
	}

	bank, err := parseBank(strings.ToLower(filepath.Ext(header.Filename)), body)
	if err != nil {
		respondError(c, "import questions", fmt.Errorf("%w: %w", services.ErrValidation, err))
		return
	}

	n, err := h.questionService.Import(c.Request.Context(), bank)
	if err != nil {
		respondError(c, "import questions", err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Success: true, Imported: n})
}

func parseBank(ext string, body []byte) (*database.SeedData, error) {
	switch ext {
	case ".yaml", ".yml":
		return database.ParseSeed(body)
	case ".json":
		var bank database.SeedData
		if err := json.Unmarshal(body, &bank); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return &bank, nil
	case ".csv":
		return parseCSV(body)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

func writeCSV(w io.Writer, bank *database.SeedData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, q := range bank.Questions {
		label := ""
		if q.Category >= 1 && q.Category <= len(bank.Categories) {
			label = bank.Categories[q.Category-1]
		}
		row := []string{label, q.Question, q.Answer, strconv.Itoa(q.Difficulty)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// parseCSV reads rows of category label, question, answer and difficulty.
// Labels become bank categories in first-seen order.
func parseCSV(data []byte) (*database.SeedData, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have header + at least 1 row")
	}

	bank := &database.SeedData{}
	positions := make(map[string]int)
	for i, row := range records[1:] {
		if len(row) < len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(row))
		}

		label := strings.TrimSpace(row[0])
		pos, ok := positions[label]
		if !ok {
			bank.Categories = append(bank.Categories, label)
			pos = len(bank.Categories)
			positions[label] = pos
		}

		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: difficulty %q is not a number", i+2, row[3])
		}

		bank.Questions = append(bank.Questions, database.SeedQuestion{
			Question:   strings.TrimSpace(row[1]),
			Answer:     strings.TrimSpace(row[2]),
			Category:   pos,
			Difficulty: difficulty,
		})
	}
	return bank, nil
}
