package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryRef is a category id as stored on a question. Clients send it either
// as a JSON string or a number; it is kept in its decimal text form.
type CategoryRef string

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CategoryRef(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("category must be a string or a number: %w", err)
	}
	*c = CategoryRef(n.String())
	return nil
}

// QuestionRequest is the create-mode body of POST /api/questions.
type QuestionRequest struct {
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Category   *CategoryRef `json:"category" validate:"required"`
	Difficulty *Difficulty  `json:"difficulty" validate:"required"`
}

// HasText reports whether both the question and the answer carry non-blank text.
func (r QuestionRequest) HasText() bool {
	return strings.TrimSpace(r.Question) != "" && strings.TrimSpace(r.Answer) != ""
}

func (r QuestionRequest) ToQuestion() Question {
	q := Question{
		Question: r.Question,
		Answer:   r.Answer,
	}
	if r.Category != nil {
		q.Category = string(*r.Category)
	}
	if r.Difficulty != nil {
		q.Difficulty = int(*r.Difficulty)
	}
	return q
}

// SearchRequest is the search-mode body of POST /api/questions.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategoryID accepts the quiz category id as a JSON number or a numeric string.
type QuizCategoryID int

func (id *QuizCategoryID) UnmarshalJSON(data []byte) error {
	n, err := unmarshalInt(data)
	if err != nil {
		return fmt.Errorf("invalid quiz category id %q", data)
	}
	*id = QuizCategoryID(n)
	return nil
}

// Difficulty accepts the question difficulty as a JSON number or a numeric string.
type Difficulty int

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	n, err := unmarshalInt(data)
	if err != nil {
		return fmt.Errorf("invalid difficulty %q", data)
	}
	*d = Difficulty(n)
	return nil
}

func unmarshalInt(data []byte) (int, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		data = []byte(strings.TrimSpace(s))
	}
	return strconv.Atoi(string(data))
}

type QuizCategory struct {
	ID   *QuizCategoryID `json:"id" validate:"required"`
	Type string          `json:"type,omitempty"`
}

// QuizRequest is the body of POST /api/quizzes.
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// CategoryFilter returns the stored category text to filter on, or nil for
// category id 0 which means every category.
func (r QuizRequest) CategoryFilter() *string {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil || *r.QuizCategory.ID == 0 {
		return nil
	}
	s := strconv.Itoa(int(*r.QuizCategory.ID))
	return &s
}
