package ideas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateIdea inserts a new idea and returns it with the assigned id and timestamp.
func (r *PGRepo) CreateIdea(ctx context.Context, title, description string) (Idea, error) {
	const query = `
INSERT INTO ideas (title, description)
VALUES ($1, $2)
RETURNING id, created_at`

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Idea{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	idea := Idea{Title: title, Description: description}
	if err := tx.QueryRowContext(ctx, query, title, nullableString(description)).Scan(&idea.ID, &idea.CreatedAt); err != nil {
		return Idea{}, fmt.Errorf("insert idea: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Idea{}, fmt.Errorf("commit idea: %w", err)
	}
	return idea, nil
}

// AddRecommendation inserts a recommendation for an existing idea.
func (r *PGRepo) AddRecommendation(ctx context.Context, ideaID int64, text string) (Recommendation, error) {
	const query = `
INSERT INTO recommendations (idea_id, recommendation_text)
VALUES ($1, $2)
RETURNING id, created_at`

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Recommendation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rec := Recommendation{IdeaID: ideaID, Text: text}
	if err := tx.QueryRowContext(ctx, query, ideaID, text).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return Recommendation{}, fmt.Errorf("insert recommendation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Recommendation{}, fmt.Errorf("commit recommendation: %w", err)
	}
	return rec, nil
}

// ListIdeas returns every stored idea in insertion order.
func (r *PGRepo) ListIdeas(ctx context.Context) ([]Idea, error) {
	const query = `
SELECT id, title, description, created_at
FROM ideas
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	var out []Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIdea returns the idea for the given id or ErrNotFound.
func (r *PGRepo) GetIdea(ctx context.Context, id int64) (Idea, error) {
	const query = `
SELECT id, title, description, created_at
FROM ideas
WHERE id = $1`

	idea, err := scanIdea(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Idea{}, ErrNotFound
		}
		return Idea{}, err
	}
	return idea, nil
}

// DeleteIdea removes an idea in one transaction. The foreign key cascades the
// delete to the idea's recommendations. Returns ErrNotFound when no row exists.
func (r *PGRepo) DeleteIdea(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var found int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM ideas WHERE id = $1`, id).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup idea: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ideas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// RecommendationsForIdea returns the idea's recommendations, newest first.
func (r *PGRepo) RecommendationsForIdea(ctx context.Context, ideaID int64) ([]Recommendation, error) {
	const query = `
SELECT id, idea_id, recommendation_text, created_at
FROM recommendations
WHERE idea_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var out []Recommendation
	for rows.Next() {
		var rec Recommendation
		if err := rows.Scan(&rec.ID, &rec.IdeaID, &rec.Text, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (Idea, error) {
	var idea Idea
	var description sql.NullString
	if err := row.Scan(&idea.ID, &idea.Title, &description, &idea.CreatedAt); err != nil {
		return Idea{}, err
	}
	if description.Valid {
		idea.Description = description.String
	}
	return idea, nil
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
