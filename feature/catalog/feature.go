package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the catalog endpoints into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the catalog feature.
func NewFeature(db *gorm.DB, logg *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(NewRepository(db), logg),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "catalog"
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
