package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"photofeed/internal/models"
	"photofeed/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrEmptyBody marks a comment whose body is empty after trimming.
var ErrEmptyBody = errors.New("comment body is empty")

const BodyMaxLen = 500

type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Create(ctx context.Context, postID, body string) (*models.Comment, error)
}

type commentService struct {
	cr repository.CommentRepository
}

func NewCommentService(cr repository.CommentRepository) CommentService {
	return &commentService{cr: cr}
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.cr.ListByPostID(ctx, postID)
}

func (s *commentService) Create(ctx context.Context, postID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		slog.Info(ErrEmptyBody.Error())
		return nil, ErrEmptyBody
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	comment := models.Comment{
		ID:     id,
		PostID: postID,
		Body:   clipRunes(body, BodyMaxLen),
	}

	createdAt, err := s.cr.Create(ctx, &comment)
	if err != nil {
		return nil, err
	}
	comment.CreatedAt = createdAt

	return &comment, nil
}
