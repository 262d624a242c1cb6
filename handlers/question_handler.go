package handlers

import (
	"encoding/json"
	"net/http"
	"triviaapi/models"
	"triviaapi/services"
	"triviaapi/utils"

	"github.com/rs/zerolog/hlog"
)

const emptyQuestionMessage = "empty question or answer"

// GET /api/questions?page=N
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.ListQuestions(r.Context())
	if err != nil {
		logStoreError(r, err, "listing questions")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	page := services.Paginate(questions, services.PageFromQuery(r.URL.Query()))
	if len(page) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		logStoreError(r, err, "listing categories")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	utils.SendSuccess(w, models.QuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: nil,
	})
}

// DELETE /api/questions/{id}
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := idParam(r)
	if !ok {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	if _, err := h.questions.GetQuestion(r.Context(), questionID); err != nil {
		if isNotFound(err) {
			utils.SendError(w, http.StatusNotFound)
			return
		}
		logStoreError(r, err, "fetching question")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	if err := h.questions.DeleteQuestion(r.Context(), questionID); err != nil {
		logStoreError(r, err, "deleting question")
		utils.SendError(w, http.StatusUnprocessableEntity)
		return
	}

	hlog.FromRequest(r).Info().Int("question_id", questionID).Msg("question deleted")
	utils.SendSuccess(w, models.DeletedResponse{
		Success: true,
		Deleted: questionID,
	})
}

// POST /api/questions
//
// A body carrying a searchTerm key is a search, anything else creates a question.
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	if _, ok := fields["searchTerm"]; ok {
		h.searchQuestions(w, r, body)
		return
	}
	h.createQuestion(w, r, body)
}

func (h *Handler) searchQuestions(w http.ResponseWriter, r *http.Request, body []byte) {
	var req models.SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	questions, err := h.questions.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		logStoreError(r, err, "searching questions")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	total, err := h.questions.CountQuestions(r.Context())
	if err != nil {
		logStoreError(r, err, "counting questions")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	utils.SendSuccess(w, models.SearchResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: nil,
	})
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request, body []byte) {
	if err := h.auth.Authorize(r); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("admin authorization failed")
		utils.SendError(w, http.StatusUnauthorized)
		return
	}

	var req models.QuestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	if !req.HasText() {
		utils.SendErrorMessage(w, http.StatusBadRequest, emptyQuestionMessage)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("invalid question")
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	question, err := h.questions.InsertQuestion(r.Context(), req.ToQuestion())
	if err != nil {
		logStoreError(r, err, "inserting question")
		utils.SendError(w, http.StatusUnprocessableEntity)
		return
	}

	hlog.FromRequest(r).Info().Int("question_id", question.ID).Msg("question added")
	utils.SendSuccess(w, models.AddedResponse{
		Success: true,
		Added:   question.ID,
	})
}
