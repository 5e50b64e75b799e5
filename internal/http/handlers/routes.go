package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/log"
)

// ErrorHandler is the catch-all boundary: log the full error, answer with a
// generic body so internals never reach the response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.Error(c, "server.error", err, nil)
	if code >= fiber.StatusInternalServerError {
		return c.Status(code).JSON(fiber.Map{"error": "Something went wrong!"})
	}
	return c.Status(code).JSON(fiber.Map{"error": fe.Message})
}

// Register mounts the API surface on app.
func Register(app *fiber.App, deps *Deps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// Products
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", deps.ProductHandler.Create)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	// Cursor positions; the POST path is throttled since trackers fire on
	// every mouse move.
	cursorLimiter := limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|cursor"
		},
		LimitReached: func(c *fiber.Ctx) error {
			log.Security(c, "rate.cursor.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/cursor", cursorLimiter, deps.CursorHandler.Create)
	api.Get("/cursor/user/:userId", deps.CursorHandler.ListByUser)
	api.Get("/cursor/page/:page", deps.CursorHandler.ListByPage)
	api.Get("/cursor", deps.CursorHandler.ListAll)
	api.Delete("/cursor/:id", deps.CursorHandler.Delete)

	// Unknown routes get a JSON 404 rather than fiber's default text body.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
}
