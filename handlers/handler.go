package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"triviaapi/auth"
	"triviaapi/db"
	appmiddleware "triviaapi/middleware"
	"triviaapi/models"
	"triviaapi/services"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"
)

const maxBodyBytes = 1 << 20

type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	QuestionsByCategory(ctx context.Context, category string) ([]models.Question, error)
	QuizCandidates(ctx context.Context, category *string, exclude []int) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int) (models.Question, error)
	InsertQuestion(ctx context.Context, q models.Question) (models.Question, error)
	DeleteQuestion(ctx context.Context, id int) error
}

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Handler serves the /api routes. Every request reads straight from the stores.
type Handler struct {
	questions  QuestionStore
	categories CategoryStore
	picker     *services.QuizPicker
	auth       *auth.Authenticator
	validate   *validator.Validate
}

// New builds a Handler. A nil authenticator leaves every route open.
func New(questions QuestionStore, categories CategoryStore, picker *services.QuizPicker, authenticator *auth.Authenticator) *Handler {
	if picker == nil {
		picker = services.NewQuizPicker()
	}
	return &Handler{
		questions:  questions,
		categories: categories,
		picker:     picker,
		auth:       authenticator,
		validate:   validator.New(),
	}
}

// Mount registers the API routes on r, which is expected to be mounted under /api.
func (h *Handler) Mount(r chi.Router) {
	r.NotFound(utils.NotFound)
	r.MethodNotAllowed(utils.MethodNotAllowed)

	r.Get("/categories", h.GetCategories)
	r.Get("/categories/{id:[0-9]+}/questions", h.GetQuestionsByCategory)

	r.Get("/questions", h.GetQuestions)
	r.Post("/questions", h.AddQuestion)
	r.With(appmiddleware.RequireAdmin(h.auth)).Delete("/questions/{id:[0-9]+}", h.DeleteQuestion)

	r.Post("/quizzes", h.PlayQuiz)

	if h.auth.Enabled() {
		r.Post("/auth/token", h.IssueToken)
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// idParam parses the numeric {id} URL parameter. The route pattern already
// restricts it to digits, so a failure here means the value overflowed.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func logStoreError(r *http.Request, err error, msg string) {
	event := hlog.FromRequest(r).Error().Err(err)
	if code := db.ErrorCode(err); code != "" {
		event = event.Str("sqlstate", code)
	}
	event.Msg(msg)
}

func isNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
