package services

import (
	"math/rand/v2"
	"testing"
	"triviaapi/models"
)

func TestQuizPickerEmpty(t *testing.T) {
	if _, ok := NewQuizPicker().Pick(nil); ok {
		t.Error("Pick on no candidates should report false")
	}
}

func TestQuizPickerSingle(t *testing.T) {
	q := models.Question{ID: 4, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"}
	got, ok := NewQuizPicker().Pick([]models.Question{q})
	if !ok || got.ID != 4 {
		t.Errorf("Pick = %+v, %v", got, ok)
	}
}

func TestQuizPickerCoversAllCandidates(t *testing.T) {
	candidates := []models.Question{{ID: 1}, {ID: 2}, {ID: 3}}
	picker := NewQuizPickerWithSource(rand.NewPCG(1, 2))

	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		q, ok := picker.Pick(candidates)
		if !ok {
			t.Fatal("Pick reported no candidate")
		}
		seen[q.ID] = true
	}
	if len(seen) != len(candidates) {
		t.Errorf("picked %v, want every candidate at least once", seen)
	}
}
