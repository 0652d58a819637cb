package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-product-match-openai/internal/port"
	"github.com/arturoeanton/go-product-match-openai/internal/service"
)

// MatchHandler handles the product match endpoint.
type MatchHandler struct {
	matchService *service.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Register sets up the routes.
func (h *MatchHandler) Register(app *fiber.App) {
	app.Get("/", h.Hello)
	app.Post("/match", h.Match)
}

// Hello is the liveness probe.
func (h *MatchHandler) Hello(c fiber.Ctx) error {
	return c.SendString("Hello World!")
}

// Match answers a shopper query. The query text comes from the "query"
// request parameter, not the body.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	result, err := h.matchService.Match(c.Context(), c.Query("query"))
	if err != nil {
		switch {
		case errors.Is(err, port.ErrEmptyQuery):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter is required"})
		case errors.Is(err, port.ErrStoreFailure):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(result)
}
