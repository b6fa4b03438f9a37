package repository

import (
	"context"
	"regexp"
	"testing"

	"photofeed/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO likes (id, post_id, count)`)).
		WithArgs("l1", "p1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(ctx, &models.Like{ID: "l1", PostID: "p1", Count: 1})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_SumByPostIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, SUM(count)::bigint FROM likes WHERE post_id = ANY($1) GROUP BY post_id`)).
		WithArgs(pq.Array([]string{"p1", "p2", "p3"})).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "sum"}).
			AddRow("p1", int64(2)).
			AddRow("p2", int64(1)))

	counts, err := repo.SumByPostIDs(ctx, []string{"p1", "p2", "p3"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts["p1"])
	assert.Equal(t, int64(1), counts["p2"])

	// p3 has no likes and is simply absent.
	_, ok := counts["p3"]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_SumByPostIDs_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	// No ids means no query at all.
	counts, err := repo.SumByPostIDs(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_RemoveByPostID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM likes WHERE post_id = $1`)).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.RemoveByPostID(ctx, "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
