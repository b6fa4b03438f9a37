package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"photofeed/internal/models"
	"photofeed/internal/service"
	"photofeed/internal/transfer"
)

type CommentHandler struct {
	s service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{s: service}
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	postID := c.Params("id")

	comments, err := h.s.ListByPost(c.Context(), postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	postID := c.Params("id")

	// An unparsable or absent body casts to an empty comment.
	var payload transfer.CommentCreation
	_ = c.BodyParser(&payload)

	comment, err := h.s.Create(c.Context(), postID, payload.Body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBody) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "empty",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
