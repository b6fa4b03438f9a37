package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"photofeed/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (time.Time, error)
	ListByPostID(ctx context.Context, postID string) ([]*models.Comment, error)
	RemoveByPostID(ctx context.Context, postID string) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (time.Time, error) {
	query := `
		INSERT INTO comments (id, post_id, body)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, comment.ID, comment.PostID, comment.Body).Scan(&createdAt)
	if err != nil {
		slog.Info(err.Error())
		return time.Time{}, err
	}

	return createdAt, nil
}

func (r *commentRepository) ListByPostID(ctx context.Context, postID string) ([]*models.Comment, error) {
	query := `SELECT id, post_id, body, created_at FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.Body, &comment.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) RemoveByPostID(ctx context.Context, postID string) error {
	query := `DELETE FROM comments WHERE post_id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
