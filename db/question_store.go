package db

import (
	"context"
	"errors"
	"fmt"

	"triviaapi/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const questionColumns = `id, question, answer, category, difficulty`

type QuestionStore struct {
	pool *pgxpool.Pool
}

func NewQuestionStore(pool *pgxpool.Pool) *QuestionStore {
	return &QuestionStore{pool: pool}
}

func (s *QuestionStore) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

func (s *QuestionStore) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return n, nil
}

// SearchQuestions returns the questions whose text contains term, ignoring case.
func (s *QuestionStore) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	return s.query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE $1 ESCAPE '\'
		 ORDER BY id`,
		containsPattern(term))
}

func (s *QuestionStore) QuestionsByCategory(ctx context.Context, category string) ([]models.Question, error) {
	return s.query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`,
		category)
}

// QuizCandidates returns the questions not listed in exclude. A nil category
// means every category.
func (s *QuestionStore) QuizCandidates(ctx context.Context, category *string, exclude []int) ([]models.Question, error) {
	if exclude == nil {
		exclude = []int{}
	}
	if category == nil {
		return s.query(ctx,
			`SELECT `+questionColumns+` FROM questions WHERE id <> ALL($1) ORDER BY id`,
			exclude)
	}
	return s.query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE category = $1 AND id <> ALL($2)
		 ORDER BY id`,
		*category, exclude)
}

func (s *QuestionStore) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	var q models.Question
	err := s.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return q, ErrNotFound
	}
	if err != nil {
		return q, fmt.Errorf("fetching question %d: %w", id, err)
	}
	return q, nil
}

// InsertQuestion stores q and returns it with the generated id.
func (s *QuestionStore) InsertQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return q, fmt.Errorf("inserting question: %w", err)
	}
	return q, nil
}

func (s *QuestionStore) DeleteQuestion(ctx context.Context, id int) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting question %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *QuestionStore) query(ctx context.Context, sql string, args ...any) ([]models.Question, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading questions: %w", err)
	}
	return questions, nil
}
