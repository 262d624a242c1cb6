package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"triviaapi/handlers"
	"triviaapi/models"
	"triviaapi/services"

	"github.com/rs/zerolog"
)

type emptyStore struct{}

func (emptyStore) ListQuestions(context.Context) ([]models.Question, error) {
	return []models.Question{}, nil
}
func (emptyStore) CountQuestions(context.Context) (int, error) { return 0, nil }
func (emptyStore) SearchQuestions(context.Context, string) ([]models.Question, error) {
	return []models.Question{}, nil
}
func (emptyStore) QuestionsByCategory(context.Context, string) ([]models.Question, error) {
	return []models.Question{}, nil
}
func (emptyStore) QuizCandidates(context.Context, *string, []int) ([]models.Question, error) {
	return []models.Question{}, nil
}
func (emptyStore) GetQuestion(context.Context, int) (models.Question, error) {
	return models.Question{}, nil
}
func (emptyStore) InsertQuestion(_ context.Context, q models.Question) (models.Question, error) {
	q.ID = 1
	return q, nil
}
func (emptyStore) DeleteQuestion(context.Context, int) error { return nil }
func (emptyStore) ListCategories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Type: "Science"}}, nil
}

func newTestServer() http.Handler {
	h := handlers.New(emptyStore{}, emptyStore{}, services.NewQuizPicker(), nil)
	health := func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"status":"ok"}`)
	}
	return newRouter(h, health, zerolog.New(io.Discard), []string{"*"})
}

func TestAPIResponsesCarryCORSHeaders(t *testing.T) {
	srv := newTestServer()

	for _, tt := range []struct {
		method, target string
		preflight      string
		status         int
	}{
		{http.MethodGet, "/api/categories", "", http.StatusOK},
		{http.MethodGet, "/api/questions", "", http.StatusNotFound},
		{http.MethodPut, "/api/categories", "", http.StatusMethodNotAllowed},
		{http.MethodOptions, "/api/questions", http.MethodPost, http.StatusOK},
		{http.MethodOptions, "/api/questions/1", http.MethodDelete, http.StatusOK},
		{http.MethodOptions, "/api/quizzes", "", http.StatusOK},
	} {
		req := httptest.NewRequest(tt.method, tt.target, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		if tt.preflight != "" {
			req.Header.Set("Access-Control-Request-Method", tt.preflight)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.target, rec.Code, tt.status)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,DELETE,OPTIONS" {
			t.Errorf("%s %s: Allow-Methods = %q", tt.method, tt.target, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); got == "" {
			t.Errorf("%s %s: missing Allow-Headers", tt.method, tt.target)
		}
		// go-chi/cors only answers origins for methods it allows.
		if got := rec.Header().Get("Access-Control-Allow-Origin"); (tt.method == http.MethodGet || tt.preflight != "") && got != "*" {
			t.Errorf("%s %s: Allow-Origin = %q", tt.method, tt.target, got)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s %s: missing X-Request-ID", tt.method, tt.target)
		}
	}
}

func TestHealthRouteOutsideAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("non-API route got Allow-Methods %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHashPasswordArgs(t *testing.T) {
	if err := hashPassword(nil); err == nil {
		t.Error("expected usage error without a password")
	}
	if err := hashPassword([]string{"a", "b"}); err == nil {
		t.Error("expected usage error with extra arguments")
	}
}
