package compare

import (
	"errors"

	"count-diff/core/logger"
	"count-diff/core/middleware/rayid"
	"count-diff/core/reconcile"
	"count-diff/core/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("", h.HandleCompare)
}

// HandleCompare compares one listing service across two servers.
// @Summary Compare Servers
// @Description Fetches the totals of a listing service on two servers and, when they differ, scans both to find the records present on one side only.
// @Tags compare
// @Produce json
// @Param domain1 query string true "First server host"
// @Param domain2 query string true "Second server host"
// @Param service query string true "Listing service (insights, people, news)"
// @Param mode query string false "full (default) or incremental"
// @Param batchSize query int false "Page size for incremental scans (max 200)"
// @Param maxPages query int false "Page cap for incremental scans (max 300)"
// @Param data query string false "Opaque upstream filter"
// @Param keywords query string false "People search keywords"
// @Param names query string false "People search names"
// @Param alpha query string false "People last name initial"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} map[string]string "Totals unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": validation.Message(err)})
	}

	l.Info("Comparison requested",
		zap.String("domain1", req.Domain1),
		zap.String("domain2", req.Domain2),
		zap.String("service", req.Service),
		zap.String("mode", req.Mode),
	)

	res, err := h.service.Compare(rayid.Context(c), req, l)
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		var te *reconcile.TotalsError
		if errors.As(err, &te) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": "Comparison failed", "message": err.Error()})
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	return c.JSON(res)
}
