package models

// CheckName identifies one of the fixed SEO checks.
type CheckName string

const (
	CheckTitleLength       CheckName = "title_length"
	CheckDescriptionLength CheckName = "description_length"
	CheckKeywordDensity    CheckName = "keyword_density"
	CheckImageAltText      CheckName = "image_alt_text"
	CheckCategory          CheckName = "category_optimization"
	CheckTagsUsage         CheckName = "tags_usage"
	CheckPriceTransparency CheckName = "price_transparency"
	CheckStockIndicator    CheckName = "stock_indicator"
	CheckMobileFriendly    CheckName = "mobile_friendly"
	CheckUniqueContent     CheckName = "unique_content"
)

// CheckResult is the outcome of a single SEO check. The message always
// embeds the measured value so it can be shown to the seller as-is.
type CheckResult struct {
	Check   CheckName `json:"check"`
	Score   int       `json:"score"`
	Passed  bool      `json:"passed"`
	Message string    `json:"message"`
}

// SEOAnalysis is the aggregate scoring result for one listing.
// It is derived data: recomputed whenever any listing fact changes,
// never stored as a source of truth.
type SEOAnalysis struct {
	Score           int                       `json:"score"`
	Grade           string                    `json:"grade"`
	Checks          map[CheckName]CheckResult `json:"checks"`
	Recommendations []string                  `json:"recommendations"`
}
