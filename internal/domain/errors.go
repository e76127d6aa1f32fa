package domain

import "errors"

// Lookup failures. The catalog is static, so these are never retryable; the
// UI recovers by showing a not-found state.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)
