// internal/domain/product/errors.go
package product

import "errors"

// Domain errors surfaced to the API layer.
var (
	ErrNotFound          = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrImageNotFound     = errors.New("product image not found")
	ErrReviewNotFound    = errors.New("review not found")
	ErrSKUTaken          = errors.New("a product with this SKU already exists")
	ErrCategoryNameTaken = errors.New("a category with this name already exists")
	ErrBrandNameTaken    = errors.New("a brand with this name already exists")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidPosition   = errors.New("image position must be at least 1")
)
