package handlers

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"triviaapi/db"
	"triviaapi/models"
)

var errStoreDown = errors.New("connection refused")

// fakeStore is an in-memory QuestionStore and CategoryStore.
type fakeStore struct {
	mu         sync.Mutex
	questions  []models.Question
	categories []models.Category
	nextID     int

	failList     bool
	failInsert   bool
	failDelete   bool
	failGet      bool
	failCategory bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: []models.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
		},
		nextID: 1,
	}
}

func (s *fakeStore) add(question, category string) models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := models.Question{
		ID:         s.nextID,
		Question:   question,
		Answer:     "answer " + question,
		Category:   category,
		Difficulty: 1,
	}
	s.nextID++
	s.questions = append(s.questions, q)
	return q
}

func (s *fakeStore) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.filter(func(models.Question) bool { return true })
}

func (s *fakeStore) CountQuestions(ctx context.Context) (int, error) {
	qs, err := s.ListQuestions(ctx)
	return len(qs), err
}

func (s *fakeStore) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	term = strings.ToLower(term)
	return s.filter(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (s *fakeStore) QuestionsByCategory(ctx context.Context, category string) ([]models.Question, error) {
	return s.filter(func(q models.Question) bool { return q.Category == category })
}

func (s *fakeStore) QuizCandidates(ctx context.Context, category *string, exclude []int) ([]models.Question, error) {
	return s.filter(func(q models.Question) bool {
		if category != nil && q.Category != *category {
			return false
		}
		return !slices.Contains(exclude, q.ID)
	})
}

func (s *fakeStore) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return models.Question{}, errStoreDown
	}
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Question{}, db.ErrNotFound
}

func (s *fakeStore) InsertQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert {
		return q, errStoreDown
	}
	q.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *fakeStore) DeleteQuestion(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errStoreDown
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (s *fakeStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCategory {
		return nil, errStoreDown
	}
	return slices.Clone(s.categories), nil
}

func (s *fakeStore) filter(keep func(models.Question) bool) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList {
		return nil, errStoreDown
	}
	out := []models.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }
