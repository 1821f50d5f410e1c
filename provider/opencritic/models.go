package opencritic

import "time"

// PageSize is the fixed number of items the API returns per page.
const PageSize = 20

// CDNBase is the image CDN prefix box-art paths are relative to.
const CDNBase = "https://img.opencritic.com/"

// Game is one item of the top-titles listing.
type Game struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	TopCriticScore     float64    `json:"topCriticScore"`
	NumReviews         int        `json:"numReviews"`
	PercentRecommended float64    `json:"percentRecommended"`
	Tier               string     `json:"tier"`
	Platforms          []Platform `json:"Platforms"`
	Genres             []Genre    `json:"Genres"`
	Images             Images     `json:"images"`
	FirstReleaseDate   *time.Time `json:"firstReleaseDate"`
	// URL is the canonical page URL; its final path segment is the
	// provider's slug. Optional.
	URL string `json:"url"`
}

// Platform is a platform entry with display name and short code.
type Platform struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Genre is a genre entry.
type Genre struct {
	Name string `json:"name"`
}

// Images holds the image descriptors of a game. Paths are relative to CDNBase.
type Images struct {
	Box struct {
		OG string `json:"og"`
	} `json:"box"`
}
