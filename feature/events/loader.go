package events

import (
	"count-diff/core/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Events feature.
func NewFeature(client *upstream.Client, cfg upstream.Config, validate *validator.Validate, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(client, cfg, logger), validate)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "events"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
