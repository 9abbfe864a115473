package proxy

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates a new Proxy feature. It is disabled when this instance
// itself forwards through a proxy.
func NewFeature(fetcher PayloadFetcher, validate *validator.Validate, logger *zap.Logger, enabled bool) *Feature {
	return &Feature{
		handler: NewHandler(NewService(fetcher), validate, logger),
		enabled: enabled,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "proxy"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
