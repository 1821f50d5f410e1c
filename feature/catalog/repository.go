package catalog

import (
	"context"
	"errors"
	"time"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("catalog: not found")

// Repository is the persistence boundary of the canonical catalog.
//
// The delete and each insert are deliberately independent statements rather
// than one transaction spanning the run: the dataset is fully re-derivable
// from the providers, and the transient window is an accepted trade-off of
// the full-replace strategy.
type Repository interface {
	// DeleteAll removes every canonical record, starting a new generation.
	DeleteAll(ctx context.Context) error
	// Insert persists one canonical record.
	Insert(ctx context.Context, game *models.Game) error
	// List returns all records ordered by score, best first.
	List(ctx context.Context) ([]models.Game, error)
	// GetBySlug returns the record with the given slug or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Game, error)
	// UpdateTwitchID caches a freshly resolved livestream id on a record.
	UpdateTwitchID(ctx context.Context, gameID uint, twitchID string, checkedAt time.Time) error
	// AppendSyncLog records one orchestrator execution. Append-only.
	AppendSyncLog(ctx context.Context, entry *models.SyncLog) error
	// LatestSyncLog returns the most recent log entry for an operation
	// type, or ErrNotFound if the pipeline has never run.
	LatestSyncLog(ctx context.Context, operationType string) (*models.SyncLog, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed catalog repository.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Game{}).Error
}

func (r *gormRepository) Insert(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gormRepository) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("score DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormRepository) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gormRepository) UpdateTwitchID(ctx context.Context, gameID uint, twitchID string, checkedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]any{
			"twitch_id":            twitchID,
			"twitch_id_checked_at": checkedAt,
		}).Error
}

func (r *gormRepository) AppendSyncLog(ctx context.Context, entry *models.SyncLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormRepository) LatestSyncLog(ctx context.Context, operationType string) (*models.SyncLog, error) {
	var entry models.SyncLog
	err := r.db.WithContext(ctx).
		Where("operation_type = ?", operationType).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
