package services

import (
	"math/rand/v2"
	"triviaapi/models"
)

// QuizPicker chooses the next quiz question among the remaining candidates.
type QuizPicker struct {
	intn func(n int) int
}

func NewQuizPicker() *QuizPicker {
	return &QuizPicker{intn: rand.IntN}
}

// NewQuizPickerWithSource is used by tests that need a deterministic choice.
func NewQuizPickerWithSource(src rand.Source) *QuizPicker {
	r := rand.New(src)
	return &QuizPicker{intn: r.IntN}
}

// Pick returns a uniformly random question, or false when no candidate is left.
func (p *QuizPicker) Pick(candidates []models.Question) (models.Question, bool) {
	if len(candidates) == 0 {
		return models.Question{}, false
	}
	return candidates[p.intn(len(candidates))], true
}
