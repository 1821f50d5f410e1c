package sync

import (
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the manual sync trigger used for debugging. The normal
// entry point is the scheduled sync command, not this endpoint.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logg *zap.Logger) *Handler {
	return &Handler{service: service, logger: logg}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/run", h.HandleRun)
}

// HandleRun triggers one synchronous sync run.
// @Summary Run sync
// @Description Trigger one full catalog sync run and return its run log. Blocks until the run finishes.
// @Tags sync
// @Produce json
// @Success 200 {object} models.SyncLog "Run log of a successful run"
// @Failure 502 {object} models.SyncLog "Run log of a failed run"
// @Router /sync/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Manual sync run triggered")

	entry, err := h.service.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(entry)
	}
	return c.JSON(entry)
}
