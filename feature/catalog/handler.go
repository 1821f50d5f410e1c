package catalog

import (
	"errors"

	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the canonical catalog.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo Repository, logg *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logg}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/games", h.HandleListGames)
	group.Get("/games/:slug", h.HandleGetGame)
	group.Get("/status", h.HandleStatus)
}

// HandleListGames returns the current generation of canonical records.
// @Summary List games
// @Description List all canonical game records of the current sync generation, best score first.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Game "Canonical records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/games [get]
func (h *Handler) HandleListGames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	games, err := h.repo.List(c.Context())
	if err != nil {
		l.Error("Catalog listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(games)
}

// HandleGetGame returns a single canonical record by slug.
// @Summary Get game
// @Description Get one canonical game record by its slug.
// @Tags catalog
// @Produce json
// @Param slug path string true "Game slug (e.g. 'elden-ring')"
// @Success 200 {object} models.Game "Canonical record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/games/{slug} [get]
func (h *Handler) HandleGetGame(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRayID(h.logger, c)

	game, err := h.repo.GetBySlug(c.Context(), slug)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown game: " + slug,
		})
	}
	if err != nil {
		l.Error("Catalog lookup failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(game)
}

// HandleStatus returns the freshness indicator of the catalog.
// @Summary Catalog status
// @Description Get the most recent sync run log: status, timestamp, and counts.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.SyncLog "Latest sync run"
// @Failure 404 {object} map[string]string "No sync has run yet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	entry, err := h.repo.LatestSyncLog(c.Context(), models.OperationCatalogSync)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync has run yet",
		})
	}
	if err != nil {
		l.Error("Status lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entry)
}
