package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"photofeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture() (*fakeCommentRepo, CommentService) {
	journal := []string{}
	cr := &fakeCommentRepo{journal: &journal, createdAt: time.Now()}
	return cr, NewCommentService(cr)
}

func TestCommentService_Create(t *testing.T) {
	cr, svc := newCommentFixture()

	comment, err := svc.Create(context.Background(), "p1", "great shot")
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "p1", comment.PostID)
	assert.Equal(t, "great shot", comment.Body)
	assert.Equal(t, cr.createdAt, comment.CreatedAt)
}

func TestCommentService_Create_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\t "} {
		cr, svc := newCommentFixture()

		_, err := svc.Create(context.Background(), "p1", body)
		assert.ErrorIs(t, err, ErrEmptyBody)
		assert.Nil(t, cr.created)
	}
}

func TestCommentService_Create_ClipsBody(t *testing.T) {
	cr, svc := newCommentFixture()

	long := strings.Repeat("ü", BodyMaxLen+50)
	comment, err := svc.Create(context.Background(), "p1", long)
	require.NoError(t, err)
	assert.Equal(t, BodyMaxLen, len([]rune(comment.Body)))
	assert.Equal(t, comment.Body, cr.created.Body)
}

func TestCommentService_ListByPost(t *testing.T) {
	cr, svc := newCommentFixture()
	cr.comments = []*models.Comment{
		{ID: "c1", PostID: "p1", Body: "first"},
		{ID: "c2", PostID: "p1", Body: "second"},
	}

	comments, err := svc.ListByPost(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
}
