package analytics

import (
	"sort"
	"time"

	"soko/internal/models"
)

const dayFormat = "2006-01-02"

// AggregateDaily reduces raw storefront records into a per-day series,
// sorted by date ascending. An empty input yields an empty series.
func AggregateDaily(records []models.CommerceRecord) []models.DailyMetric {
	byDay := make(map[string]*models.DailyMetric)
	for _, rec := range records {
		day := rec.OccurredAt.UTC().Format(dayFormat)
		m, ok := byDay[day]
		if !ok {
			m = &models.DailyMetric{Date: day}
			byDay[day] = m
		}
		switch rec.Kind {
		case models.EventPurchase:
			m.Orders++
			m.Revenue += rec.Amount
		case models.EventPageView:
			m.Views++
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]models.DailyMetric, 0, len(days))
	for _, day := range days {
		m := byDay[day]
		m.Conversion = round2(ratio(float64(m.Orders), float64(m.Views)) * 100)
		out = append(out, *m)
	}
	return out
}

// AggregateByCategory reduces raw records into per-category totals,
// sorted by revenue descending. Records without a category fall into
// the "uncategorized" bucket.
func AggregateByCategory(records []models.CommerceRecord) []models.CategoryMetric {
	byCat := make(map[string]*models.CategoryMetric)
	for _, rec := range records {
		cat := rec.Category
		if cat == "" {
			cat = "uncategorized"
		}
		m, ok := byCat[cat]
		if !ok {
			m = &models.CategoryMetric{Category: cat}
			byCat[cat] = m
		}
		switch rec.Kind {
		case models.EventPurchase:
			m.Orders++
			m.Revenue += rec.Amount
		case models.EventPageView:
			m.Views++
		}
	}

	out := make([]models.CategoryMetric, 0, len(byCat))
	for _, m := range byCat {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Totals folds raw records into funnel totals for rate computation.
func Totals(records []models.CommerceRecord) models.FunnelTotals {
	var t models.FunnelTotals
	for _, rec := range records {
		switch rec.Kind {
		case models.EventPageView:
			t.PageViews++
		case models.EventCartAdd:
			t.CartAdds++
		case models.EventPurchase:
			t.Purchases++
			t.Orders++
		}
	}
	return t
}

// WindowStart returns the inclusive start of a trailing window ending
// now, truncated to the day boundary.
func WindowStart(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}
