package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"sync"

	"photofeed/internal/models"
	"photofeed/internal/repository"
	"photofeed/internal/transfer"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrPostNotFound marks a lookup for a post id that has no row.
var ErrPostNotFound = errors.New("post not found")

const (
	CaptionMaxLen = 2000

	// presignWorkers bounds the signed-URL fan-out during listing.
	presignWorkers = 10
)

type PostService interface {
	List(ctx context.Context) ([]*transfer.PostResponse, error)
	Create(ctx context.Context, file *multipart.FileHeader, caption string) (*transfer.PostResponse, error)
	Like(ctx context.Context, postID string) error
	Remove(ctx context.Context, postID string) error
}

type postService struct {
	pr    repository.PostRepository
	lr    repository.LikeRepository
	cr    repository.CommentRepository
	store ObjectStore
}

func NewPostService(
	pr repository.PostRepository,
	lr repository.LikeRepository,
	cr repository.CommentRepository,
	store ObjectStore) PostService {
	return &postService{
		pr:    pr,
		lr:    lr,
		cr:    cr,
		store: store,
	}
}

func (s *postService) List(ctx context.Context) ([]*transfer.PostResponse, error) {
	posts, err := s.pr.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	counts, err := s.lr.SumByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*transfer.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = &transfer.PostResponse{
			Post:      *post,
			LikeCount: counts[post.ID],
		}
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, presignWorkers)

	for _, resp := range responses {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(resp *transfer.PostResponse) {
			defer wg.Done()
			defer func() { <-semaphore }()

			resp.SignedURL = s.presignOrNil(ctx, resp.ImageKey)
		}(resp)
	}
	wg.Wait()

	return responses, nil
}

func (s *postService) Create(ctx context.Context, file *multipart.FileHeader, caption string) (*transfer.PostResponse, error) {
	fileContent, err := file.Open()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	key := id + "." + extensionOf(file.Filename)

	// The blob write must precede the row insert. A failed insert can
	// leave an orphan blob; there is no compensation.
	if err := s.store.Upload(ctx, key, fileBytes, sniffContentType(fileBytes)); err != nil {
		return nil, err
	}

	post := models.Post{
		ID:       id,
		Caption:  clipRunes(caption, CaptionMaxLen),
		ImageKey: key,
	}

	createdAt, err := s.pr.Create(ctx, &post)
	if err != nil {
		return nil, err
	}
	post.CreatedAt = createdAt

	return &transfer.PostResponse{
		Post:      post,
		SignedURL: s.presignOrNil(ctx, key),
		LikeCount: 0,
	}, nil
}

// Like records one like row with count fixed at 1. The post is not
// probed first; an orphan reference is the store's to reject.
func (s *postService) Like(ctx context.Context, postID string) error {
	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return err
	}

	return s.lr.Create(ctx, &models.Like{
		ID:     id,
		PostID: postID,
		Count:  1,
	})
}

// Remove deletes the blob, the comments, the likes and finally the
// post row, in that order. Only the final deletion is checked; the
// earlier steps are best-effort and a failure there leaves orphans.
func (s *postService) Remove(ctx context.Context, postID string) error {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.store.Remove(ctx, post.ImageKey); err != nil {
		slog.Info(err.Error())
	}
	if err := s.cr.RemoveByPostID(ctx, postID); err != nil {
		slog.Info(err.Error())
	}
	if err := s.lr.RemoveByPostID(ctx, postID); err != nil {
		slog.Info(err.Error())
	}

	return s.pr.Remove(ctx, postID)
}

func (s *postService) presignOrNil(ctx context.Context, key string) *string {
	url, err := s.store.PresignGet(ctx, key, SignedURLExpiry)
	if err != nil {
		slog.Info(err.Error())
		return nil
	}
	return &url
}

func sniffContentType(fileBytes []byte) string {
	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return "application/octet-stream"
	}
	return fileType.MIME.Value
}
