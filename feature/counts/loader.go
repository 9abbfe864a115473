package counts

import (
	"count-diff/core/reconcile"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Counts feature.
func NewFeature(totals *reconcile.TotalsCache, validate *validator.Validate, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(totals, logger), validate)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "counts"
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
