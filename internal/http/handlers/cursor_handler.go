package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/log"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/repos"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/services"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/validate"
)

type CursorHandler struct {
	Cursors *services.CursorService
}

type cursorBody struct {
	UserID string   `json:"userId"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Page   string   `json:"page"`
}

func (h *CursorHandler) Create(c *fiber.Ctx) error {
	var body cursorBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	cp, err := h.Cursors.Record(body.UserID, body.X, body.Y, body.Page)
	var ve *validate.Error
	if errors.As(err, &ve) {
		log.Security(c, "validation.fail", map[string]any{"entity": "cursor", "reason": ve.Msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Msg})
	}
	if err != nil {
		log.Error(c, "cursor.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cp)
}

func (h *CursorHandler) ListByUser(c *fiber.Ctx) error {
	positions, err := h.Cursors.ByUser(c.Params("userId"))
	if err != nil {
		log.Error(c, "cursor.list_user.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(positions)
}

func (h *CursorHandler) ListByPage(c *fiber.Ctx) error {
	positions, err := h.Cursors.ByPage(c.Params("page"))
	if err != nil {
		log.Error(c, "cursor.list_page.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(positions)
}

func (h *CursorHandler) ListAll(c *fiber.Ctx) error {
	positions, err := h.Cursors.All()
	if err != nil {
		log.Error(c, "cursor.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(positions)
}

func (h *CursorHandler) Delete(c *fiber.Ctx) error {
	err := h.Cursors.Delete(c.Params("id"))
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cursor position not found"})
	}
	if err != nil {
		log.Error(c, "cursor.delete.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Cursor position deleted successfully"})
}
