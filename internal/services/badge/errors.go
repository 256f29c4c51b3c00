package badge

import "errors"

// Service errors
var (
	ErrSellerNotFound = errors.New("seller not found")
)
