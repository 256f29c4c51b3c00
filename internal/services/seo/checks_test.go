package seo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"soko/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCheckTitleLength(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantScore  int
		wantPassed bool
	}{
		{"optimal at lower bound", strings.Repeat("a", 30), 100, true},
		{"optimal at upper bound", strings.Repeat("a", 60), 100, true},
		{"acceptable short side", strings.Repeat("a", 20), 80, true},
		{"acceptable long side", strings.Repeat("a", 70), 80, true},
		{"too short", strings.Repeat("a", 19), 40, false},
		{"single character", "A", 40, false},
		{"too long", strings.Repeat("a", 71), 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := checkTitleLength(models.ListingFacts{Title: tt.title})
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantPassed, r.Passed)
			assert.Contains(t, r.Message, fmt.Sprintf("%d characters", len(tt.title)))
		})
	}
}

func TestCheckDescriptionLength(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantScore  int
		wantPassed bool
	}{
		{"optimal at lower bound", 100, 100, true},
		{"optimal at upper bound", 160, 100, true},
		{"acceptable short side", 80, 80, true},
		{"acceptable long side", 200, 80, true},
		{"too short", 79, 40, false},
		{"empty", 0, 40, false},
		{"too long", 201, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := checkDescriptionLength(models.ListingFacts{Description: strings.Repeat("a", tt.length)})
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantPassed, r.Passed)
			assert.Contains(t, r.Message, fmt.Sprintf("%d characters", tt.length))
		})
	}
}

func TestCheckKeywordDensity(t *testing.T) {
	t.Run("no keyword supplied", func(t *testing.T) {
		r := checkKeywordDensity(models.ListingFacts{Title: "Red Shoes"})
		assert.Equal(t, 50, r.Score)
		assert.False(t, r.Passed)
	})

	t.Run("keyword in title and twice in description", func(t *testing.T) {
		r := checkKeywordDensity(models.ListingFacts{
			Title:         "Red Shoes",
			Description:   "These red shoes are great red shoes",
			TargetKeyword: strPtr("red"),
		})
		assert.Equal(t, 100, r.Score)
		assert.True(t, r.Passed)
		assert.Contains(t, r.Message, "3 times")
	})

	t.Run("single occurrence", func(t *testing.T) {
		r := checkKeywordDensity(models.ListingFacts{
			Title:         "Blue Shoes",
			Description:   "These are red sneakers",
			TargetKeyword: strPtr("red"),
		})
		assert.Equal(t, 70, r.Score)
		assert.True(t, r.Passed)
		assert.Contains(t, r.Message, "1 time")
	})

	t.Run("no occurrences", func(t *testing.T) {
		r := checkKeywordDensity(models.ListingFacts{
			Title:         "Blue Shoes",
			Description:   "Classic sneakers",
			TargetKeyword: strPtr("red"),
		})
		assert.Equal(t, 30, r.Score)
		assert.False(t, r.Passed)
		assert.Contains(t, r.Message, "0 times")
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		r := checkKeywordDensity(models.ListingFacts{
			Title:         "RED Shoes",
			Description:   "Red shoes in stock",
			TargetKeyword: strPtr("red"),
		})
		assert.Equal(t, 100, r.Score)
	})
}

func TestCheckImageCount(t *testing.T) {
	tests := []struct {
		count      int
		wantScore  int
		wantPassed bool
	}{
		{0, 0, false},
		{1, 60, true},
		{2, 60, true},
		{3, 80, true},
		{4, 80, true},
		{5, 100, true},
		{8, 100, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d images", tt.count), func(t *testing.T) {
			r := checkImageCount(models.ListingFacts{ImageCount: tt.count})
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantPassed, r.Passed)
			assert.Contains(t, r.Message, fmt.Sprintf("%d", tt.count))
		})
	}
}

func TestCheckCategory(t *testing.T) {
	r := checkCategory(models.ListingFacts{})
	assert.Equal(t, 0, r.Score)
	assert.False(t, r.Passed)

	r = checkCategory(models.ListingFacts{Category: "Accessories"})
	assert.Equal(t, 100, r.Score)
	assert.True(t, r.Passed)
	assert.Contains(t, r.Message, "Accessories")
}

func TestCheckTagsUsage(t *testing.T) {
	tests := []struct {
		name       string
		tags       int
		wantScore  int
		wantPassed bool
	}{
		{"no tags", 0, 30, false},
		{"ideal lower bound", 3, 100, true},
		{"ideal upper bound", 5, 100, true},
		{"below ideal", 2, 80, true},
		{"soft maximum", 10, 80, true},
		{"too many", 11, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := make([]string, tt.tags)
			for i := range tags {
				tags[i] = fmt.Sprintf("tag%d", i)
			}
			r := checkTagsUsage(models.ListingFacts{Tags: tags})
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantPassed, r.Passed)
			assert.Contains(t, r.Message, fmt.Sprintf("%d tags", tt.tags))
		})
	}
}

func TestCheckPriceTransparency(t *testing.T) {
	t.Run("zero price fails", func(t *testing.T) {
		r := checkPriceTransparency(models.ListingFacts{Price: 0})
		assert.Equal(t, 0, r.Score)
		assert.False(t, r.Passed)
	})

	t.Run("negative price fails", func(t *testing.T) {
		r := checkPriceTransparency(models.ListingFacts{Price: -5})
		assert.Equal(t, 0, r.Score)
		assert.False(t, r.Passed)
	})

	t.Run("valid discount shows percent off", func(t *testing.T) {
		r := checkPriceTransparency(models.ListingFacts{Price: 100, DiscountPrice: floatPtr(75)})
		assert.Equal(t, 100, r.Score)
		assert.True(t, r.Passed)
		assert.Contains(t, r.Message, "25% off")
	})

	t.Run("discount above price is ignored", func(t *testing.T) {
		r := checkPriceTransparency(models.ListingFacts{Price: 100, DiscountPrice: floatPtr(120)})
		assert.Equal(t, 80, r.Score)
		assert.True(t, r.Passed)
	})

	t.Run("plain price", func(t *testing.T) {
		r := checkPriceTransparency(models.ListingFacts{Price: 49.99})
		assert.Equal(t, 80, r.Score)
		assert.True(t, r.Passed)
		assert.Contains(t, r.Message, "49.99")
	})
}

func TestCheckStockIndicator(t *testing.T) {
	tests := []struct {
		stock      int
		wantScore  int
		wantPassed bool
	}{
		{0, 40, false},
		{-1, 40, false},
		{1, 60, true},
		{4, 60, true},
		{5, 80, true},
		{9, 80, true},
		{10, 100, true},
		{50, 100, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("stock %d", tt.stock), func(t *testing.T) {
			r := checkStockIndicator(models.ListingFacts{StockQuantity: tt.stock})
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantPassed, r.Passed)
			assert.Contains(t, r.Message, fmt.Sprintf("%d units", tt.stock))
		})
	}
}

func TestCheckMobileFriendly(t *testing.T) {
	t.Run("compact content with images", func(t *testing.T) {
		r := checkMobileFriendly(models.ListingFacts{
			Title:       "Short title",
			Description: "Short description",
			ImageCount:  2,
		})
		assert.Equal(t, 100, r.Score)
		assert.True(t, r.Passed)
	})

	t.Run("long title downgrades but never fails", func(t *testing.T) {
		r := checkMobileFriendly(models.ListingFacts{
			Title:       strings.Repeat("a", 80),
			Description: "Short",
			ImageCount:  2,
		})
		assert.Equal(t, 70, r.Score)
		assert.True(t, r.Passed)
	})

	t.Run("no images downgrades but never fails", func(t *testing.T) {
		r := checkMobileFriendly(models.ListingFacts{Title: "Short", Description: "Short"})
		assert.Equal(t, 70, r.Score)
		assert.True(t, r.Passed)
	})
}

func TestCheckUniqueContent(t *testing.T) {
	r := checkUniqueContent(models.ListingFacts{Description: strings.Repeat("a", 101)})
	assert.Equal(t, 100, r.Score)
	assert.True(t, r.Passed)

	r = checkUniqueContent(models.ListingFacts{Description: strings.Repeat("a", 100)})
	assert.Equal(t, 50, r.Score)
	assert.False(t, r.Passed)
}
