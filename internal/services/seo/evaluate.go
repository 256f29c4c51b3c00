package seo

import (
	"math"

	"soko/internal/models"
)

// EvaluateListing runs every check against the given facts and folds
// the results into a single analysis. It is pure: no I/O, no hidden
// state, identical facts always produce an identical analysis.
func EvaluateListing(facts models.ListingFacts) models.SEOAnalysis {
	checks := make(map[models.CheckName]models.CheckResult, len(checkOrder))
	recommendations := make([]string, 0, len(recommendable))

	total := 0
	for _, check := range checkOrder {
		result := check(facts)
		checks[result.Check] = result
		total += result.Score
		if !result.Passed && recommendable[result.Check] {
			recommendations = append(recommendations, result.Message)
		}
	}

	score := int(math.Round(float64(total) / float64(len(checkOrder))))
	return models.SEOAnalysis{
		Score:           score,
		Grade:           gradeFor(score),
		Checks:          checks,
		Recommendations: recommendations,
	}
}

// gradeFor buckets an aggregate score into a letter grade.
func gradeFor(score int) string {
	switch {
	case score >= gradeAMin:
		return "A"
	case score >= gradeBMin:
		return "B"
	case score >= gradeCMin:
		return "C"
	case score >= gradeDMin:
		return "D"
	default:
		return "F"
	}
}
