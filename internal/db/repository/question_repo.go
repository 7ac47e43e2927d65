package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/triviahub/trivia-api/internal/question"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const uniqueViolation = "23505"

// QuestionRepository implements question.Store on Postgres.
type QuestionRepository struct {
	db DB
}

var _ question.Store = (*QuestionRepository)(nil)

func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = "id, question, answer, category_id, difficulty"

// List returns every question ordered by id ascending.
func (r *QuestionRepository) List(ctx context.Context) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory returns one category's questions ordered by id ascending.
// An unknown category id is simply an empty result.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category_id = $1 ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Get returns one question or question.ErrNotFound.
func (r *QuestionRepository) Get(ctx context.Context, id int) (*question.Question, error) {
	var q question.Question
	err := r.db.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`,
		id).Scan(&q.ID, &q.Question, &q.Answer, &q.CategoryID, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, question.ErrNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

// Insert stores a new question and returns its assigned id. A duplicate
// question text trips the UNIQUE(question) constraint and surfaces as
// question.ErrDuplicate.
func (r *QuestionRepository) Insert(ctx context.Context, q question.Question) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category_id, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Question, q.Answer, q.CategoryID, q.Difficulty).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, question.ErrDuplicate
		}
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question by id; a missing row is question.ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return question.ErrNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	var out []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
