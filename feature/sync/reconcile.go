package sync

import (
	"math"
	"strings"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/provider/opencritic"
)

// Enrichment is the best-effort data the secondary provider contributed for
// one title. A nil Enrichment (or nil fields) means the record is persisted
// without those fields, which is valid.
type Enrichment struct {
	RawgID      *int64
	Description *string
	Genres      []string
	Platforms   []string
}

// BuildRecord merges one primary-provider item and its optional enrichment
// into a canonical record, applying the per-field precedence rules.
func BuildRecord(item opencritic.Game, enrichment *Enrichment) models.Game {
	game := models.Game{
		OpenCriticID:       item.ID,
		Slug:               DeriveSlug(item.URL, item.Name),
		Name:               item.Name,
		Score:              RoundScore(item.TopCriticScore),
		ReviewCount:        item.NumReviews,
		PercentRecommended: item.PercentRecommended,
		Tier:               item.Tier,
		ThumbnailURL:       DeriveThumbnail(item.Images.Box.OG),
		ReleaseDate:        item.FirstReleaseDate,
	}

	// Description and genres belong to the enrichment provider alone. An
	// item the enricher could not match keeps them null; the primary
	// provider's genre taxonomy is never substituted.
	var enrichmentPlatforms []string
	if enrichment != nil {
		game.RawgID = enrichment.RawgID
		game.Description = enrichment.Description
		game.Genres = enrichment.Genres
		enrichmentPlatforms = enrichment.Platforms
	}

	game.Platforms = MergePlatforms(item.Platforms, enrichmentPlatforms)

	return game
}

// RoundScore rounds the fractional aggregate score to the nearest integer.
// The store's score column is integral; the provider's is fractional.
func RoundScore(score float64) int {
	return int(math.Round(score))
}

// DeriveSlug derives the canonical slug from the provider URL's final path
// segment, or from a lower-cased, space-to-hyphen form of the title when no
// canonical URL is present.
func DeriveSlug(canonicalURL, title string) string {
	if canonicalURL != "" {
		trimmed := strings.TrimSuffix(canonicalURL, "/")
		if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx < len(trimmed)-1 {
			return trimmed[idx+1:]
		}
	}
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}

// DeriveThumbnail builds the full thumbnail URL from the provider's relative
// box-art path, or nil when the item has no image descriptor.
func DeriveThumbnail(imagePath string) *string {
	if imagePath == "" {
		return nil
	}
	full := opencritic.CDNBase + strings.TrimPrefix(imagePath, "/")
	return &full
}

// MergePlatforms unions platform names across sources, preferring the
// primary provider's short codes. Enrichment names that duplicate a primary
// platform (by either its display name or short code) are dropped.
func MergePlatforms(primary []opencritic.Platform, enrichment []string) []string {
	merged := make([]string, 0, len(primary)+len(enrichment))
	seen := make(map[string]struct{})

	for _, p := range primary {
		name := p.ShortName
		if name == "" {
			name = p.Name
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		// Register the display name too, so enrichment spellings of the
		// same platform don't sneak back in.
		seen[strings.ToLower(p.Name)] = struct{}{}
		merged = append(merged, name)
	}

	for _, name := range enrichment {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, name)
	}

	return merged
}
