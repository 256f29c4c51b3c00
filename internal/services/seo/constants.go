package seo

import "soko/internal/models"

// Title length bands (characters).
const (
	titleOptimalMin = 30
	titleOptimalMax = 60
	titleGoodMin    = 20
	titleGoodMax    = 70
)

// Description length bands (characters).
const (
	descOptimalMin = 100
	descOptimalMax = 160
	descGoodMin    = 80
	descGoodMax    = 200
)

// Tag count bands.
const (
	tagsIdealMin = 3
	tagsIdealMax = 5
	tagsSoftMax  = 10
)

// Stock level bands.
const (
	stockLowWater  = 5
	stockHighWater = 10
)

// Mobile content limits.
const (
	mobileTitleMax = 70
	mobileDescMax  = 300
)

// Grade boundaries over the aggregate score.
const (
	gradeAMin = 90
	gradeBMin = 80
	gradeCMin = 70
	gradeDMin = 60
)

// recommendable is the fixed allow-list of checks whose failure
// messages surface as seller recommendations. The other four checks
// still fail and still drag the score down, but are not actionable
// enough to show; keep this asymmetry explicit.
var recommendable = map[models.CheckName]bool{
	models.CheckTitleLength:       true,
	models.CheckDescriptionLength: true,
	models.CheckImageAltText:      true,
	models.CheckTagsUsage:         true,
	models.CheckKeywordDensity:    true,
	models.CheckStockIndicator:    true,
}
