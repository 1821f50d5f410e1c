package sync

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/provider/opencritic"
	"catalog-sync/provider/rawg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PrimarySource is the critic-aggregation adapter the orchestrator drives.
type PrimarySource interface {
	// Pages returns how many fixed-size pages a run fetches.
	Pages() int
	// FetchTopTitles fetches one page at the given skip offset.
	FetchTopTitles(ctx context.Context, skip int) ([]opencritic.Game, error)
}

// Enricher is the best-effort game-database adapter.
type Enricher interface {
	Search(ctx context.Context, title string) (*rawg.SearchResult, error)
	GetDetails(ctx context.Context, id int64) (*rawg.Details, error)
}

// Service is the sync orchestrator. One Run replaces the whole canonical
// dataset: fetch every primary page, delete the previous generation, then
// enrich, reconcile, and persist each item with per-item fault isolation.
type Service struct {
	primary  PrimarySource
	enricher Enricher
	repo     catalog.Repository
	logger   *zap.Logger
}

// NewService creates the sync orchestrator.
func NewService(primary PrimarySource, enricher Enricher, repo catalog.Repository, logg *zap.Logger) *Service {
	return &Service{
		primary:  primary,
		enricher: enricher,
		repo:     repo,
		logger:   logg,
	}
}

// Run executes one full sync. It always attempts to append a run log, and
// returns the log together with the fatal error, if any. Execution is
// strictly sequential; the provider pacers assume no overlapping requests.
func (s *Service) Run(ctx context.Context) (*models.SyncLog, error) {
	runID := uuid.NewString()
	logg := s.logger.With(zap.String("run_id", runID))
	start := time.Now()
	logg.Info("Sync run started")

	// Phase 1: fetch the full primary listing before any destructive step,
	// so a failed page leaves the previous generation untouched.
	var items []opencritic.Game
	for page := 0; page < s.primary.Pages(); page++ {
		skip := page * opencritic.PageSize
		batch, err := s.primary.FetchTopTitles(ctx, skip)
		if err != nil {
			logg.Error("Primary fetch failed, aborting run", zap.Int("skip", skip), zap.Error(err))
			return s.finish(ctx, logg, runID, models.StatusError,
				fmt.Sprintf("primary fetch failed: %v", err),
				models.SyncDetails{Fetched: len(items)}, err)
		}
		items = append(items, batch...)
	}
	logg.Info("Primary listing fetched", zap.Int("items", len(items)))

	// Phase 2: start a new generation.
	if err := s.repo.DeleteAll(ctx); err != nil {
		logg.Error("Deletion of previous generation failed, aborting run", zap.Error(err))
		return s.finish(ctx, logg, runID, models.StatusError,
			fmt.Sprintf("deletion failed: %v", err),
			models.SyncDetails{Fetched: len(items)}, err)
	}

	// Phase 3: per-item enrich, reconcile, persist. A failure here only
	// costs that one item, never the rest of the run.
	details := models.SyncDetails{Fetched: len(items)}
	for _, item := range items {
		enrichment := s.enrich(ctx, logg, item.Name)
		record := BuildRecord(item, enrichment)

		if err := s.repo.Insert(ctx, &record); err != nil {
			details.Failed++
			logg.Warn("Failed to persist item, skipping",
				zap.String("name", item.Name), zap.Error(err))
			continue
		}
		details.Persisted++
	}

	logg.Info("Sync run completed",
		zap.Int("fetched", details.Fetched),
		zap.Int("persisted", details.Persisted),
		zap.Int("failed", details.Failed),
		zap.Duration("duration", time.Since(start)))

	return s.finish(ctx, logg, runID, models.StatusSuccess,
		fmt.Sprintf("synced %d titles", details.Persisted), details, nil)
}

// enrich consults the game database for one title. Best effort by contract:
// any failure or missing match returns what was gathered so far, possibly
// nothing.
func (s *Service) enrich(ctx context.Context, logg *zap.Logger, title string) *Enrichment {
	match, err := s.enricher.Search(ctx, title)
	if err != nil {
		logg.Warn("Enrichment search failed", zap.String("title", title), zap.Error(err))
		return nil
	}
	if match == nil {
		return nil
	}

	enrichment := &Enrichment{RawgID: &match.ID}
	for _, g := range match.Genres {
		enrichment.Genres = append(enrichment.Genres, g.Name)
	}
	for _, p := range match.Platforms {
		enrichment.Platforms = append(enrichment.Platforms, p.Platform.Name)
	}

	// The search endpoint omits long-form fields; the description needs a
	// second call. Losing it keeps the rest of the enrichment.
	details, err := s.enricher.GetDetails(ctx, match.ID)
	if err != nil {
		logg.Warn("Enrichment details failed", zap.String("title", title), zap.Error(err))
		return enrichment
	}
	if details != nil && details.DescriptionRaw != "" {
		enrichment.Description = &details.DescriptionRaw
	}

	return enrichment
}

// finish appends the run log and pairs it with the run's fatal error.
func (s *Service) finish(ctx context.Context, logg *zap.Logger, runID, status, message string, details models.SyncDetails, runErr error) (*models.SyncLog, error) {
	entry := &models.SyncLog{
		OperationType: models.OperationCatalogSync,
		RunID:         runID,
		Status:        status,
		Message:       message,
		Details:       details,
	}
	if err := s.repo.AppendSyncLog(ctx, entry); err != nil {
		logg.Error("Failed to append sync log", zap.Error(err))
		if runErr == nil {
			runErr = err
		}
	}
	return entry, runErr
}
