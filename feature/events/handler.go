package events

import (
	"fmt"

	"count-diff/core/logger"
	"count-diff/core/server"
	"count-diff/core/upstream"
	"count-diff/core/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FeedRequest holds the query parameters of a listing lookup.
type FeedRequest struct {
	Domain string `query:"domain" validate:"required,allowed_domain"`
	Type   string `query:"type" validate:"required,oneof=upcoming past"`
}

// CompareRequest holds the query parameters of a listing comparison.
type CompareRequest struct {
	Domain1 string `query:"domain1" validate:"required,allowed_domain"`
	Domain2 string `query:"domain2" validate:"required,allowed_domain"`
	Type    string `query:"type" validate:"required,oneof=upcoming past"`
}

// Handler handles HTTP requests for event listings.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// RegisterRoutes registers the events routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/events")
	group.Get("", h.HandleFeed)
	group.Get("/compare", h.HandleCompare)
}

// HandleFeed returns the events listed on one server.
// @Summary Event Feed
// @Description Scrapes the upcoming or past event listing page of one server.
// @Tags events
// @Produce json
// @Param domain query string false "Server host" default(www.dentons.com)
// @Param type query string false "Listing type (upcoming, past)" default(upcoming)
// @Success 200 {object} Feed
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Fetch failed"
// @Failure 504 {object} map[string]string "Upstream timeout"
// @Router /events [get]
func (h *Handler) HandleFeed(c *fiber.Ctx) error {
	req := FeedRequest{Domain: server.DefaultDomain, Type: string(TypeUpcoming)}
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": validation.Message(err)})
	}

	feed, err := h.service.Feed(c.Context(), req.Domain, Type(req.Type))
	if err != nil {
		return h.fail(c, err, zap.String("domain", req.Domain))
	}

	c.Set(fiber.HeaderCacheControl, "public, s-maxage=60, stale-while-revalidate=120")
	return c.JSON(feed)
}

// HandleCompare diffs the event listings of two servers.
// @Summary Compare Event Feeds
// @Description Scrapes the same event listing on two servers and reports events present on one side only.
// @Tags events
// @Produce json
// @Param domain1 query string true "Left server host"
// @Param domain2 query string true "Right server host"
// @Param type query string false "Listing type (upcoming, past)" default(upcoming)
// @Success 200 {object} Comparison
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Fetch failed"
// @Failure 504 {object} map[string]string "Upstream timeout"
// @Router /events/compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	req := CompareRequest{Type: string(TypeUpcoming)}
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": validation.Message(err)})
	}

	cmp, err := h.service.Compare(c.Context(), req.Domain1, req.Domain2, Type(req.Type))
	if err != nil {
		return h.fail(c, err, zap.String("domain1", req.Domain1), zap.String("domain2", req.Domain2))
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	return c.JSON(cmp)
}

func (h *Handler) fail(c *fiber.Ctx, err error, fields ...zap.Field) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Warn("Event fetch failed", append(fields, zap.Error(err))...)

	if upstream.IsTimeout(err) {
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error":   "Failed to fetch events",
			"message": fmt.Sprintf("Timeout after %s", h.service.Timeout()),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events", "message": err.Error()})
}
