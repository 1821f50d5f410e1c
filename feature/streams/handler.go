package streams

import (
	"errors"

	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// defaultFirst is how many streams or clips a request returns unless the
// caller asks otherwise.
const defaultFirst = 10

// Handler handles HTTP requests for livestream lookups.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logg *zap.Logger) *Handler {
	return &Handler{service: service, logger: logg}
}

// RegisterRoutes registers the streams routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/streams/:slug", h.HandleLiveStreams)
	app.Get("/clips/:slug", h.HandleTopClips)
}

// HandleLiveStreams returns live broadcasts for a catalog game.
// @Summary Live streams
// @Description Get current live broadcasts of a catalog game, resolving the provider id on demand.
// @Tags streams
// @Produce json
// @Param slug path string true "Game slug (e.g. 'elden-ring')"
// @Param first query int false "Maximum results" default(10)
// @Success 200 {array} twitch.Stream "Live broadcasts"
// @Failure 404 {object} map[string]string "Unknown game or unresolvable title"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /streams/{slug} [get]
func (h *Handler) HandleLiveStreams(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRayID(h.logger, c)

	streams, err := h.service.LiveStreams(c.Context(), slug, c.QueryInt("first", defaultFirst))
	if err != nil {
		return h.lookupError(c, l, slug, err)
	}
	return c.JSON(streams)
}

// HandleTopClips returns top clips for a catalog game.
// @Summary Top clips
// @Description Get top clips of a catalog game, resolving the provider id on demand.
// @Tags streams
// @Produce json
// @Param slug path string true "Game slug (e.g. 'elden-ring')"
// @Param first query int false "Maximum results" default(10)
// @Success 200 {array} twitch.Clip "Clips"
// @Failure 404 {object} map[string]string "Unknown game or unresolvable title"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /clips/{slug} [get]
func (h *Handler) HandleTopClips(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRayID(h.logger, c)

	clips, err := h.service.TopClips(c.Context(), slug, c.QueryInt("first", defaultFirst))
	if err != nil {
		return h.lookupError(c, l, slug, err)
	}
	return c.JSON(clips)
}

func (h *Handler) lookupError(c *fiber.Ctx, l *zap.Logger, slug string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown game: " + slug,
		})
	case errors.Is(err, ErrUnresolved):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no livestream match for: " + slug,
		})
	default:
		l.Error("Livestream lookup failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
