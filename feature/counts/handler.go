package counts

import (
	"count-diff/core/logger"
	"count-diff/core/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request holds the query parameters of a counts lookup.
type Request struct {
	Domain string `query:"domain" validate:"required,allowed_domain"`
}

// Handler handles HTTP requests for listing totals.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// RegisterRoutes registers the counts routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/counts")
	group.Get("", h.HandleCounts)
}

// HandleCounts returns the totals of every listing service on one server.
// @Summary Batch Counts
// @Description Reads the reported total of the insights, people and news services. Each service reports either a count or an error.
// @Tags counts
// @Produce json
// @Param domain query string true "Server host"
// @Success 200 {object} Report
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /counts [get]
func (h *Handler) HandleCounts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid domain", "message": validation.Message(err)})
	}

	report := h.service.Counts(c.Context(), req.Domain)
	l.Info("Counts fetched", zap.String("domain", req.Domain))

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	return c.JSON(report)
}
