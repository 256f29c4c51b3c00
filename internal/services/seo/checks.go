package seo

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"soko/internal/models"
)

type checkFunc func(models.ListingFacts) models.CheckResult

// checkOrder is the fixed evaluation order. Recommendation ordering
// follows this list, so do not reorder it.
var checkOrder = []checkFunc{
	checkTitleLength,
	checkDescriptionLength,
	checkKeywordDensity,
	checkImageCount,
	checkCategory,
	checkTagsUsage,
	checkPriceTransparency,
	checkStockIndicator,
	checkMobileFriendly,
	checkUniqueContent,
}

func checkTitleLength(f models.ListingFacts) models.CheckResult {
	n := utf8.RuneCountInString(f.Title)
	r := models.CheckResult{Check: models.CheckTitleLength, Passed: true}

	switch {
	case n >= titleOptimalMin && n <= titleOptimalMax:
		r.Score = 100
		r.Message = fmt.Sprintf("Title length is optimal (%d characters)", n)
	case n >= titleGoodMin && n <= titleGoodMax:
		r.Score = 80
		r.Message = fmt.Sprintf("Title length is acceptable (%d characters)", n)
	case n < titleGoodMin:
		r.Score = 40
		r.Passed = false
		r.Message = fmt.Sprintf("Title is too short (%d characters); aim for %d-%d", n, titleOptimalMin, titleOptimalMax)
	default:
		r.Score = 60
		r.Message = fmt.Sprintf("Title is too long (%d characters); aim for %d-%d", n, titleOptimalMin, titleOptimalMax)
	}
	return r
}

func checkDescriptionLength(f models.ListingFacts) models.CheckResult {
	n := utf8.RuneCountInString(f.Description)
	r := models.CheckResult{Check: models.CheckDescriptionLength, Passed: true}

	switch {
	case n >= descOptimalMin && n <= descOptimalMax:
		r.Score = 100
		r.Message = fmt.Sprintf("Description length is optimal (%d characters)", n)
	case n >= descGoodMin && n <= descGoodMax:
		r.Score = 80
		r.Message = fmt.Sprintf("Description length is acceptable (%d characters)", n)
	case n < descGoodMin:
		r.Score = 40
		r.Passed = false
		r.Message = fmt.Sprintf("Description is too short (%d characters); aim for %d-%d", n, descOptimalMin, descOptimalMax)
	default:
		r.Score = 60
		r.Message = fmt.Sprintf("Description is too long (%d characters); aim for %d-%d", n, descOptimalMin, descOptimalMax)
	}
	return r
}

func checkKeywordDensity(f models.ListingFacts) models.CheckResult {
	r := models.CheckResult{Check: models.CheckKeywordDensity}

	// A nil keyword means none was supplied; an empty string would be a
	// caller bug but takes the same branch rather than matching everything.
	if f.TargetKeyword == nil || *f.TargetKeyword == "" {
		r.Score = 50
		r.Passed = false
		r.Message = "No target keyword set; pick one to optimize for"
		return r
	}

	kw := strings.ToLower(*f.TargetKeyword)
	matches := strings.Count(strings.ToLower(f.Description), kw)
	if strings.Contains(strings.ToLower(f.Title), kw) {
		matches++
	}

	switch {
	case matches >= 2:
		r.Score = 100
		r.Passed = true
		r.Message = fmt.Sprintf("Keyword %q appears %d times across title and description", *f.TargetKeyword, matches)
	case matches == 1:
		r.Score = 70
		r.Passed = true
		r.Message = fmt.Sprintf("Keyword %q appears only %d time; mention it again", *f.TargetKeyword, matches)
	default:
		r.Score = 30
		r.Message = fmt.Sprintf("Keyword %q appears %d times; work it into the title and description", *f.TargetKeyword, matches)
	}
	return r
}

func checkImageCount(f models.ListingFacts) models.CheckResult {
	n := f.ImageCount
	r := models.CheckResult{Check: models.CheckImageAltText, Passed: true}

	switch {
	case n >= 5:
		r.Score = 100
		r.Message = fmt.Sprintf("Listing has %d images", n)
	case n >= 3:
		r.Score = 80
		r.Message = fmt.Sprintf("Listing has %d images; 5 or more is ideal", n)
	case n >= 1:
		r.Score = 60
		r.Message = fmt.Sprintf("Listing has only %d image(s); add more angles", n)
	default:
		r.Score = 0
		r.Passed = false
		r.Message = fmt.Sprintf("Listing has %d images; add at least one photo", n)
	}
	return r
}

func checkCategory(f models.ListingFacts) models.CheckResult {
	r := models.CheckResult{Check: models.CheckCategory}
	if f.Category == "" {
		r.Score = 0
		r.Message = "Listing has no category assigned"
		return r
	}
	r.Score = 100
	r.Passed = true
	r.Message = fmt.Sprintf("Category %q is set", f.Category)
	return r
}

func checkTagsUsage(f models.ListingFacts) models.CheckResult {
	n := len(f.Tags)
	r := models.CheckResult{Check: models.CheckTagsUsage, Passed: true}

	switch {
	case n == 0:
		r.Score = 30
		r.Passed = false
		r.Message = fmt.Sprintf("Listing has %d tags; add %d-%d relevant tags", n, tagsIdealMin, tagsIdealMax)
	case n >= tagsIdealMin && n <= tagsIdealMax:
		r.Score = 100
		r.Message = fmt.Sprintf("Listing has %d tags", n)
	case n <= tagsSoftMax:
		r.Score = 80
		r.Message = fmt.Sprintf("Listing has %d tags; %d-%d is ideal", n, tagsIdealMin, tagsIdealMax)
	default:
		r.Score = 60
		r.Passed = false
		r.Message = fmt.Sprintf("Listing has %d tags; trim to at most %d", n, tagsSoftMax)
	}
	return r
}

func checkPriceTransparency(f models.ListingFacts) models.CheckResult {
	r := models.CheckResult{Check: models.CheckPriceTransparency, Passed: true}

	if f.Price <= 0 {
		r.Score = 0
		r.Passed = false
		r.Message = fmt.Sprintf("Price is not set (%.2f)", f.Price)
		return r
	}
	if f.DiscountPrice != nil && *f.DiscountPrice > 0 && *f.DiscountPrice < f.Price {
		pct := int(math.Round((f.Price - *f.DiscountPrice) / f.Price * 100))
		r.Score = 100
		r.Message = fmt.Sprintf("Discount displayed: %d%% off", pct)
		return r
	}
	r.Score = 80
	r.Message = fmt.Sprintf("Price %.2f is clearly displayed", f.Price)
	return r
}

func checkStockIndicator(f models.ListingFacts) models.CheckResult {
	n := f.StockQuantity
	r := models.CheckResult{Check: models.CheckStockIndicator, Passed: true}

	switch {
	case n <= 0:
		r.Score = 40
		r.Passed = false
		r.Message = fmt.Sprintf("Out of stock (%d units); restock to stay visible", n)
	case n < stockLowWater:
		r.Score = 60
		r.Message = fmt.Sprintf("Low stock (%d units)", n)
	case n >= stockHighWater:
		r.Score = 100
		r.Message = fmt.Sprintf("%d units in stock", n)
	default:
		r.Score = 80
		r.Message = fmt.Sprintf("%d units in stock; consider restocking soon", n)
	}
	return r
}

func checkMobileFriendly(f models.ListingFacts) models.CheckResult {
	titleLen := utf8.RuneCountInString(f.Title)
	descLen := utf8.RuneCountInString(f.Description)

	// Informational check: it can lower the score but never fails.
	r := models.CheckResult{Check: models.CheckMobileFriendly, Passed: true}
	if titleLen < mobileTitleMax && descLen < mobileDescMax && f.ImageCount >= 1 {
		r.Score = 100
		r.Message = fmt.Sprintf("Content fits small screens (title %d chars, description %d chars)", titleLen, descLen)
		return r
	}
	r.Score = 70
	r.Message = fmt.Sprintf("Tighten content for mobile (title %d chars, description %d chars, %d images)", titleLen, descLen, f.ImageCount)
	return r
}

func checkUniqueContent(f models.ListingFacts) models.CheckResult {
	n := utf8.RuneCountInString(f.Description)
	r := models.CheckResult{Check: models.CheckUniqueContent}

	if n > descOptimalMin {
		r.Score = 100
		r.Passed = true
		r.Message = fmt.Sprintf("Description is detailed (%d characters)", n)
		return r
	}
	r.Score = 50
	r.Message = fmt.Sprintf("Description is thin (%d characters); write at least %d", n, descOptimalMin)
	return r
}
