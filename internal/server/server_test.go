package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-api/internal/handlers"
	"trivia-api/internal/services"
	"trivia-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiResponse struct {
	Success           bool                         `json:"success"`
	Error             int                          `json:"error"`
	Message           string                       `json:"message"`
	Categories        []string                     `json:"categories"`
	TotalCategories   int                          `json:"total_categories"`
	Questions         []handlers.FormattedQuestion `json:"questions"`
	Question          json.RawMessage              `json:"question"`
	TotalQuestions    int                          `json:"total_questions"`
	CurrentCategory   string                       `json:"currentCategory"`
	Deleted           string                       `json:"deleted"`
	PreviousQuestions []uint                       `json:"previousQuestions"`
	Category          json.RawMessage              `json:"category"`
	Token             string                       `json:"token"`
}

func newTestServer(t *testing.T, auth *services.AuthService) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupSeededDB(t)
	r := New(Options{
		DB:     db,
		Auth:   auth,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r, db
}

func request(t *testing.T, r http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: unmarshal %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, resp
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, resp apiResponse, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	if resp.Success || resp.Error != status || resp.Message != message {
		t.Fatalf("unexpected error envelope %+v", resp)
	}
}

func questionIDs(questions []handlers.FormattedQuestion) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t, nil)
	w, resp := request(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestGetCategories(t *testing.T) {
	r, _ := newTestServer(t, nil)
	w, resp := request(t, r, http.MethodGet, "/categories", "")

	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	want := []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}
	if len(resp.Categories) != len(want) || resp.TotalCategories != len(want) {
		t.Fatalf("expected %v, got %v (%d)", want, resp.Categories, resp.TotalCategories)
	}
	for i := range want {
		if resp.Categories[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], resp.Categories[i])
		}
	}
}

func TestGetCategoriesEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := New(Options{DB: db, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	w, resp := request(t, r, http.MethodGet, "/categories", "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)
}

func TestGetQuestionsPaginated(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodGet, "/questions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("page 1: %d", w.Code)
	}
	if len(resp.Questions) != 10 || resp.TotalQuestions != 19 || resp.TotalCategories != 6 {
		t.Fatalf("page 1: %d questions, total %d, %d categories", len(resp.Questions), resp.TotalQuestions, resp.TotalCategories)
	}
	if resp.Questions[0].ID != 1 {
		t.Fatalf("expected first question id 1, got %d", resp.Questions[0].ID)
	}

	w, resp = request(t, r, http.MethodGet, "/questions?page=2", "")
	if w.Code != http.StatusOK || len(resp.Questions) != 9 || resp.Questions[0].ID != 11 {
		t.Fatalf("page 2: %d, ids %v", w.Code, questionIDs(resp.Questions))
	}

	w, resp = request(t, r, http.MethodGet, "/questions?page=1000", "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)

	// Non-integer page falls back to the first page.
	w, resp = request(t, r, http.MethodGet, "/questions?page=abc", "")
	if w.Code != http.StatusOK || resp.Questions[0].ID != 1 {
		t.Fatalf("page=abc: %d", w.Code)
	}
}

func TestHugePageNumbers(t *testing.T) {
	r, _ := newTestServer(t, nil)
	const huge = "1000000000000000001"

	w, resp := request(t, r, http.MethodGet, "/questions?page="+huge, "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)

	w, resp = request(t, r, http.MethodGet, "/categories/3/questions?page="+huge, "")
	if w.Code != http.StatusOK || len(resp.Questions) != 0 {
		t.Fatalf("by category: %d %s", w.Code, w.Body.String())
	}

	w, resp = request(t, r, http.MethodPost, "/questions/search?page="+huge, `{"searchTerm":"title"}`)
	if w.Code != http.StatusOK || len(resp.Questions) != 0 || resp.TotalQuestions != 2 {
		t.Fatalf("search: %d %s", w.Code, w.Body.String())
	}
}

func TestDeleteQuestion(t *testing.T) {
	r, db := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodDelete, "/questions/5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp.Deleted != "5" || resp.Message != "Question 5 deleted" || resp.TotalQuestions != 18 {
		t.Fatalf("unexpected body %+v", resp)
	}
	for _, id := range questionIDs(resp.Questions) {
		if id == 5 {
			t.Fatal("deleted question still listed")
		}
	}

	var count int64
	db.Table("questions").Where("id = ?", 5).Count(&count)
	if count != 0 {
		t.Fatal("question 5 still stored")
	}
}

func TestDeleteQuestionErrors(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodDelete, "/questions/1000", "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)

	w, resp = request(t, r, http.MethodDelete, "/questions/abc", "")
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)
}

func TestCreateQuestion(t *testing.T) {
	r, _ := newTestServer(t, nil)

	body := `{"question":"Who painted the Mona Lisa?","answer":"Leonardo da Vinci","category":2,"difficulty":1}`
	w, resp := request(t, r, http.MethodPost, "/questions", body)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	_, list := request(t, r, http.MethodGet, "/questions?page=2", "")
	if list.TotalQuestions != 20 {
		t.Fatalf("expected 20 questions after create, got %d", list.TotalQuestions)
	}
	last := list.Questions[len(list.Questions)-1]
	if last.ID != 20 || last.Question != "Who painted the Mona Lisa?" || last.Category != 2 {
		t.Fatalf("unexpected stored question %+v", last)
	}
}

func TestCreateQuestionWithoutBody(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodPost, "/questions", "")
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)

	w, resp = request(t, r, http.MethodPost, "/questions", `{"question":"Q?"}`)
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)
}

func TestSearchQuestions(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodPost, "/questions/search", `{"searchTerm":"dung"}`)
	if w.Code != http.StatusOK || len(resp.Questions) != 1 || resp.TotalQuestions != 1 {
		t.Fatalf("dung: %d %s", w.Code, w.Body.String())
	}
	if resp.Questions[0].ID != 19 {
		t.Fatalf("expected question 19, got %d", resp.Questions[0].ID)
	}

	_, resp = request(t, r, http.MethodPost, "/questions/search", `{"searchTerm":"TITLE"}`)
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 case-insensitive matches, got %d", len(resp.Questions))
	}

	w, resp = request(t, r, http.MethodPost, "/questions/search", `{"searchTerm":"zzzqqq"}`)
	if w.Code != http.StatusOK || len(resp.Questions) != 0 || resp.TotalQuestions != 0 {
		t.Fatalf("no match: %d %s", w.Code, w.Body.String())
	}
	if resp.Questions == nil {
		t.Fatal("expected empty questions array, got null")
	}

	w, resp = request(t, r, http.MethodPost, "/questions/search", `{"term":"dung"}`)
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)

	w, resp = request(t, r, http.MethodPost, "/questions/search", "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)
}

func TestQuestionsByCategory(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodGet, "/categories/1/questions", "")
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(resp.Questions) != 4 || resp.CurrentCategory != "1" {
		t.Fatalf("expected 4 Art questions for index 1, got %v (%q)", questionIDs(resp.Questions), resp.CurrentCategory)
	}
	for _, q := range resp.Questions {
		if q.Category != 2 {
			t.Fatalf("question %d has category %d, expected store id 2", q.ID, q.Category)
		}
	}

	for _, path := range []string{"/categories/100/questions", "/categories/-1/questions", "/categories/abc/questions"} {
		w, resp = request(t, r, http.MethodGet, path, "")
		expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)
	}
}

func TestQuizzes(t *testing.T) {
	r, _ := newTestServer(t, nil)

	body := `{"previous_questions":[3,5],"quiz_category":{"type":"History","id":"3"}}`
	w, resp := request(t, r, http.MethodPost, "/quizzes", body)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var question handlers.FormattedQuestion
	if err := json.Unmarshal(resp.Question, &question); err != nil {
		t.Fatalf("unmarshal question: %v", err)
	}
	if question.ID != 8 || question.Category != 4 {
		t.Fatalf("expected question 8 of category 4, got %+v", question)
	}
	if len(resp.PreviousQuestions) != 2 || resp.PreviousQuestions[0] != 3 || resp.PreviousQuestions[1] != 5 {
		t.Fatalf("previousQuestions not echoed: %v", resp.PreviousQuestions)
	}
	if string(resp.Category) != `{"type":"History","id":"3"}` {
		t.Fatalf("category not echoed: %s", resp.Category)
	}
}

func TestQuizzesExhaustedOmitsQuestion(t *testing.T) {
	r, _ := newTestServer(t, nil)

	body := `{"previous_questions":[3,5,8,19],"quiz_category":{"type":"History","id":3}}`
	w, resp := request(t, r, http.MethodPost, "/quizzes", body)
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Question != nil {
		t.Fatalf("expected no question, got %s", resp.Question)
	}
	if strings.Contains(w.Body.String(), `"question"`) {
		t.Fatalf("question key present in %s", w.Body.String())
	}
}

func TestQuizzesAllCategories(t *testing.T) {
	r, _ := newTestServer(t, nil)

	body := `{"previous_questions":[1,2],"quiz_category":{"type":"click","id":0}}`
	_, resp := request(t, r, http.MethodPost, "/quizzes", body)

	var question handlers.FormattedQuestion
	if err := json.Unmarshal(resp.Question, &question); err != nil {
		t.Fatalf("unmarshal question: %v", err)
	}
	if question.ID != 3 {
		t.Fatalf("expected question 3, got %d", question.ID)
	}
}

func TestQuizzesMissingCategory(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodPost, "/quizzes", `{"previous_questions":[]}`)
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)

	w, resp = request(t, r, http.MethodPost, "/quizzes", "")
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodGet, "/nope", "")
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)

	w, resp = request(t, r, http.MethodPut, "/categories", "")
	expectError(t, w, resp, http.StatusMethodNotAllowed, handlers.MessageMethodNotAllowed)
}

func TestCORSHeaders(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, _ := request(t, r, http.MethodGet, "/categories", "", "Origin", "http://localhost:3000")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, _ := request(t, r, http.MethodGet, "/categories", "", "X-Request-ID", "abc-123")
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}

func TestAdminAuthGuardsMutations(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	r, _ := newTestServer(t, services.NewAuthService(string(hash), "test-secret"))

	w, resp := request(t, r, http.MethodDelete, "/questions/1", "")
	expectError(t, w, resp, http.StatusUnauthorized, handlers.MessageUnauthorized)

	w, resp = request(t, r, http.MethodPost, "/auth/login", `{"password":"wrong"}`)
	expectError(t, w, resp, http.StatusUnauthorized, handlers.MessageUnauthorized)

	w, resp = request(t, r, http.MethodPost, "/auth/login", `{"password":"s3cret"}`)
	if w.Code != http.StatusOK || resp.Token == "" {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}

	w, _ = request(t, r, http.MethodDelete, "/questions/1", "", "Authorization", "Bearer "+resp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("authorized delete: %d %s", w.Code, w.Body.String())
	}

	// Reads stay public.
	w, _ = request(t, r, http.MethodGet, "/questions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("public read: %d", w.Code)
	}
}

func TestLoginRouteAbsentWhenAuthDisabled(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, resp := request(t, r, http.MethodPost, "/auth/login", `{"password":"x"}`)
	expectError(t, w, resp, http.StatusNotFound, handlers.MessageNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w, _ := request(t, r, http.MethodGet, "/questions/export?format=csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 20 || lines[0] != "category,question,answer,difficulty" {
		t.Fatalf("unexpected csv export (%d lines): %q", len(lines), lines[0])
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bank.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write(w.Body.Bytes())
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/questions/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	iw := httptest.NewRecorder()
	r.ServeHTTP(iw, req)
	if iw.Code != http.StatusOK || !strings.Contains(iw.Body.String(), `"imported":19`) {
		t.Fatalf("import: %d %s", iw.Code, iw.Body.String())
	}

	_, list := request(t, r, http.MethodGet, "/questions", "")
	if list.TotalQuestions != 38 {
		t.Fatalf("expected 38 questions after import, got %d", list.TotalQuestions)
	}

	w, _ = request(t, r, http.MethodGet, "/questions/export", "")
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/yaml") || !strings.Contains(w.Body.String(), "categories:") {
		t.Fatalf("unexpected yaml export %q", w.Header().Get("Content-Type"))
	}

	w, resp := request(t, r, http.MethodGet, "/questions/export?format=xml", "")
	expectError(t, w, resp, http.StatusUnprocessableEntity, handlers.MessageUnprocessable)
}
