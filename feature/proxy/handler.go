package proxy

import (
	"count-diff/core/logger"
	"count-diff/core/middleware/rayid"
	"count-diff/core/upstream"
	"count-diff/core/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles proxied page requests.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, validate *validator.Validate, logger *zap.Logger) *Handler {
	return &Handler{service: service, validate: validate, logger: logger}
}

// RegisterRoutes registers the proxy route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/proxy", h.HandleProxy)
}

// HandleProxy fetches one upstream page and returns its decoded payload.
// @Summary Server Proxy
// @Description Fetches one page from an allowed server and returns the decoded JSON payload. Remote instances configured with a proxy URL call this endpoint.
// @Tags proxy
// @Produce json
// @Param domain query string true "Server host"
// @Param service query string true "Listing service (insights, people, news)"
// @Param data query string false "Opaque filter"
// @Param keywords query string false "People search keywords"
// @Param names query string false "People search names"
// @Param alpha query string false "People last name initial"
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Failure 504 {object} map[string]string "Upstream timeout"
// @Router /proxy [get]
func (h *Handler) HandleProxy(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req := Request{PageNumber: 1, PageSize: 10}
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request", "message": validation.Message(err)})
	}

	payload, err := h.service.Fetch(rayid.Context(c), req)
	if err != nil {
		l.Warn("Proxy fetch failed", zap.String("source", req.Source().String()), zap.Int("page", req.PageNumber), zap.Error(err))
		if upstream.IsTimeout(err) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "Failed to fetch", "message": "Timeout"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch", "message": err.Error()})
	}

	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	return c.JSON(payload)
}
