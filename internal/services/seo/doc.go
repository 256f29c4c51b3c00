/*
Package seo scores marketplace listings for discoverability.

The scoring engine is a fixed set of ten pure checks over a listing
snapshot (title, description, category, tags, price, stock, images,
target keyword). Each check returns a 0-100 score, a pass/fail flag and
a human-readable message embedding the measured value. The aggregate
analysis is the rounded mean of the ten scores, a letter grade, and an
ordered recommendation list built from the failing checks that are
worth surfacing to sellers.

Usage:

	// Pure evaluation over an in-memory snapshot
	analysis := seo.EvaluateListing(facts)

	// Or through the service, which fetches the listing and caches
	// the computed analysis until the listing changes
	svc := seo.NewService(listingRepo, cache)
	analysis, err := svc.AnalyzeListing(ctx, listingID)

Evaluation is deterministic and stateless: identical facts always yield
an identical analysis, and concurrent calls need no coordination.
*/
package seo
