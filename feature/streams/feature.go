package streams

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the livestream lookup endpoints into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the streams feature.
func NewFeature(service *Service, logg *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(service, logg)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "streams"
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
