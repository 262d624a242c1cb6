package handlers

import (
	"encoding/json"
	"net/http"
	"triviaapi/models"
	"triviaapi/utils"
)

// POST /api/quizzes
//
// Answers {success: true} without a question once the eligible set is exhausted.
func (h *Handler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	var req models.QuizRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusBadRequest)
		return
	}

	candidates, err := h.questions.QuizCandidates(r.Context(), req.CategoryFilter(), req.PreviousQuestions)
	if err != nil {
		logStoreError(r, err, "listing quiz candidates")
		utils.SendError(w, http.StatusInternalServerError)
		return
	}

	question, ok := h.picker.Pick(candidates)
	if !ok {
		utils.SendSuccess(w, models.QuizResponse{Success: true})
		return
	}

	utils.SendSuccess(w, models.QuizResponse{
		Success:  true,
		Question: &question,
	})
}
