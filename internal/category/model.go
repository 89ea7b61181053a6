package category

import "time"

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description *string
	Image       *string
	CreatedAt   time.Time
}

type CreateCategoryParams struct {
	Name        string
	Slug        string
	Description *string
	Image       *string
}
