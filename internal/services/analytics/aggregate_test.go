package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soko/internal/models"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregateDaily(t *testing.T) {
	records := []models.CommerceRecord{
		{Kind: models.EventPageView, OccurredAt: day(1, 9)},
		{Kind: models.EventPageView, OccurredAt: day(1, 10)},
		{Kind: models.EventPageView, OccurredAt: day(1, 11)},
		{Kind: models.EventPageView, OccurredAt: day(1, 12)},
		{Kind: models.EventPurchase, Amount: 25, OccurredAt: day(1, 13)},
		{Kind: models.EventPurchase, Amount: 30, OccurredAt: day(2, 9)},
		{Kind: models.EventCartAdd, OccurredAt: day(2, 10)},
	}

	series := AggregateDaily(records)
	require.Len(t, series, 2)

	first := series[0]
	assert.Equal(t, "2026-08-01", first.Date)
	assert.Equal(t, 25.0, first.Revenue)
	assert.Equal(t, int64(1), first.Orders)
	assert.Equal(t, int64(4), first.Views)
	assert.Equal(t, 25.0, first.Conversion)

	second := series[1]
	assert.Equal(t, "2026-08-02", second.Date)
	assert.Equal(t, 30.0, second.Revenue)
	assert.Equal(t, int64(1), second.Orders)
	// No views that day: conversion must be 0, not Inf.
	assert.Equal(t, int64(0), second.Views)
	assert.Equal(t, 0.0, second.Conversion)
}

func TestAggregateDaily_EmptyInput(t *testing.T) {
	series := AggregateDaily(nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestAggregateDaily_SortedAscending(t *testing.T) {
	records := []models.CommerceRecord{
		{Kind: models.EventPageView, OccurredAt: day(15, 9)},
		{Kind: models.EventPageView, OccurredAt: day(3, 9)},
		{Kind: models.EventPageView, OccurredAt: day(9, 9)},
	}

	series := AggregateDaily(records)
	require.Len(t, series, 3)
	assert.Equal(t, "2026-08-03", series[0].Date)
	assert.Equal(t, "2026-08-09", series[1].Date)
	assert.Equal(t, "2026-08-15", series[2].Date)
}

func TestAggregateByCategory(t *testing.T) {
	records := []models.CommerceRecord{
		{Kind: models.EventPurchase, Category: "Shoes", Amount: 50, OccurredAt: day(1, 9)},
		{Kind: models.EventPurchase, Category: "Shoes", Amount: 70, OccurredAt: day(2, 9)},
		{Kind: models.EventPurchase, Category: "Bags", Amount: 200, OccurredAt: day(1, 9)},
		{Kind: models.EventPageView, Category: "Bags", OccurredAt: day(1, 9)},
		{Kind: models.EventPurchase, Amount: 10, OccurredAt: day(1, 9)},
	}

	breakdown := AggregateByCategory(records)
	require.Len(t, breakdown, 3)

	// Sorted by revenue descending.
	assert.Equal(t, "Bags", breakdown[0].Category)
	assert.Equal(t, 200.0, breakdown[0].Revenue)
	assert.Equal(t, int64(1), breakdown[0].Views)
	assert.Equal(t, "Shoes", breakdown[1].Category)
	assert.Equal(t, 120.0, breakdown[1].Revenue)
	assert.Equal(t, "uncategorized", breakdown[2].Category)
}

func TestTotals(t *testing.T) {
	records := []models.CommerceRecord{
		{Kind: models.EventPageView},
		{Kind: models.EventPageView},
		{Kind: models.EventCartAdd},
		{Kind: models.EventPurchase, Amount: 25},
	}

	totals := Totals(records)
	assert.Equal(t, int64(2), totals.PageViews)
	assert.Equal(t, int64(1), totals.CartAdds)
	assert.Equal(t, int64(1), totals.Purchases)
	assert.Equal(t, int64(1), totals.Orders)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	start := WindowStart(now, 90)
	assert.Equal(t, time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC), start)
}
