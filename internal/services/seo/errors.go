package seo

import "errors"

// Service errors
var (
	ErrListingNotFound = errors.New("listing not found")
)
