package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/log"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/repos"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/services"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))

	products, err := h.Catalog.List(category, search)
	if err != nil {
		log.Error(c, "products.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.Catalog.Get(c.Params("id"))
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		log.Error(c, "products.get.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var fields domain.ProductPatch
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	p, err := h.Catalog.Create(fields)
	var ve *validate.Error
	if errors.As(err, &ve) {
		log.Security(c, "validation.fail", map[string]any{"entity": "product", "reason": ve.Msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Msg})
	}
	if err != nil {
		log.Error(c, "products.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	log.Info(c, "products.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	p, err := h.Catalog.Update(c.Params("id"), patch)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	var ve *validate.Error
	if errors.As(err, &ve) {
		log.Security(c, "validation.fail", map[string]any{"entity": "product", "reason": ve.Msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Msg})
	}
	if err != nil {
		log.Error(c, "products.update.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.Catalog.Delete(c.Params("id"))
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		log.Error(c, "products.delete.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	log.Info(c, "products.delete", map[string]any{"id": c.Params("id")})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
