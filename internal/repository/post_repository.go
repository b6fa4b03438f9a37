package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"photofeed/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (time.Time, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListAll(ctx context.Context) ([]*models.Post, error)
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (time.Time, error) {
	query := `
		INSERT INTO posts (id, caption, image_key)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, post.ID, post.Caption, post.ImageKey).Scan(&createdAt)
	if err != nil {
		slog.Info(err.Error())
		return time.Time{}, err
	}

	return createdAt, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, caption, image_key, created_at FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.Caption, &post.ImageKey, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, caption, image_key, created_at FROM posts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Caption, &post.ImageKey, &post.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
