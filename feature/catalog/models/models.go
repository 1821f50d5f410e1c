package models

import "time"

// TwitchIDTTL is how long a cached livestream-provider id is trusted before
// it is treated as stale and re-resolved.
const TwitchIDTTL = 7 * 24 * time.Hour

// Operation types discriminate sync log rows per pipeline.
const (
	OperationCatalogSync = "catalog_sync"
)

// Sync log statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Game is the canonical record reconciled from all providers.
//
// The dataset lives one full generation per sync: every run deletes all rows
// and re-inserts one per item of the primary provider's listing, so surrogate
// ids change across runs and nothing outside this pipeline may rely on them.
type Game struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// External identifiers. The primary-provider id is the only one
	// guaranteed to be present.
	OpenCriticID int64   `gorm:"not null;index" json:"opencritic_id"`
	Slug         string  `gorm:"size:255;index" json:"slug"`
	RawgID       *int64  `json:"rawg_id,omitempty"`
	TwitchID     *string `gorm:"size:64" json:"twitch_id,omitempty"`
	// TwitchIDCheckedAt records when the livestream id was last resolved;
	// the id is trusted for TwitchIDTTL from this instant.
	TwitchIDCheckedAt *time.Time `json:"twitch_id_checked_at,omitempty"`

	// Scored fields, primary provider only.
	Name               string  `gorm:"size:255;not null" json:"name"`
	Score              int     `json:"score"`
	ReviewCount        int     `json:"review_count"`
	PercentRecommended float64 `json:"percent_recommended"`
	Tier               string  `gorm:"size:32" json:"tier"`

	// Enrichment fields, secondary provider only. May be absent without
	// invalidating the record.
	Description *string  `gorm:"type:text" json:"description,omitempty"`
	Genres      []string `gorm:"serializer:json" json:"genres,omitempty"`

	// Shared and derived fields.
	Platforms    []string   `gorm:"serializer:json" json:"platforms,omitempty"`
	ThumbnailURL *string    `gorm:"size:512" json:"thumbnail_url,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the GORM table name.
func (Game) TableName() string {
	return "games"
}

// TwitchIDFresh reports whether the cached livestream id can still be
// trusted at the given instant.
func (g *Game) TwitchIDFresh(now time.Time) bool {
	return g.TwitchID != nil && g.TwitchIDCheckedAt != nil &&
		now.Sub(*g.TwitchIDCheckedAt) < TwitchIDTTL
}

// SyncDetails is the structured payload of a sync log entry.
type SyncDetails struct {
	Fetched   int `json:"fetched"`
	Persisted int `json:"persisted"`
	Failed    int `json:"failed"`
}

// SyncLog is one append-only record of an orchestrator execution.
// Rows are never mutated after insert; the most recent row per operation
// type is surfaced to end users as the dataset's freshness indicator.
type SyncLog struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OperationType string      `gorm:"size:64;index" json:"operation_type"`
	RunID         string      `gorm:"size:36" json:"run_id"`
	Status        string      `gorm:"size:16" json:"status"`
	Message       string      `gorm:"size:1024" json:"message"`
	Details       SyncDetails `gorm:"serializer:json" json:"details"`
	CreatedAt     time.Time   `json:"created_at"`
}

// TableName overrides the GORM table name.
func (SyncLog) TableName() string {
	return "sync_logs"
}
