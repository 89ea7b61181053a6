package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidInput     = errors.New("name and slug are required")
)
