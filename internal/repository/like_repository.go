package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"photofeed/internal/models"

	"github.com/lib/pq"
)

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	SumByPostIDs(ctx context.Context, postIDs []string) (map[string]int64, error)
	RemoveByPostID(ctx context.Context, postID string) error
}

type likeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, post_id, count)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, like.ID, like.PostID, like.Count)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

// SumByPostIDs aggregates like counts for the given posts in one query.
// Posts with no likes are absent from the result map.
func (r *likeRepository) SumByPostIDs(ctx context.Context, postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	// SUM(bigint) comes back as numeric; cast so the int64 scan is exact.
	query := `SELECT post_id, SUM(count)::bigint FROM likes WHERE post_id = ANY($1) GROUP BY post_id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var total int64
		if err := rows.Scan(&postID, &total); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts[postID] = total
	}
	return counts, rows.Err()
}

func (r *likeRepository) RemoveByPostID(ctx context.Context, postID string) error {
	query := `DELETE FROM likes WHERE post_id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
