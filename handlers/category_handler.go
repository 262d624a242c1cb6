package handlers

import (
	"net/http"
	"strconv"
	"triviaapi/models"
	"triviaapi/services"
	"triviaapi/utils"
)

// GET /api/categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		logStoreError(r, err, "listing categories")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	utils.SendSuccess(w, models.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// GET /api/categories/{id}/questions
//
// totalQuestions is the size of the returned page, unlike GET /api/questions.
func (h *Handler) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := idParam(r)
	if !ok {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	questions, err := h.questions.QuestionsByCategory(r.Context(), strconv.Itoa(categoryID))
	if err != nil {
		logStoreError(r, err, "listing questions by category")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	page := services.Paginate(questions, services.PageFromQuery(r.URL.Query()))
	if len(page) == 0 {
		utils.SendError(w, http.StatusNotFound)
		return
	}

	utils.SendSuccess(w, models.CategoryQuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(page),
		CurrentCategory: categoryID,
	})
}
