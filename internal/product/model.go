package product

import "time"

type Product struct {
	ID               string
	Name             string
	Slug             string
	Description      *string
	ShortDescription *string
	Price            float64
	CompareAtPrice   *float64
	Images           []string
	CategoryID       *string
	CategoryName     *string
	Vendor           *string
	SKU              *string
	Stock            int
	IsActive         bool
	IsFeatured       bool
	Hashrate         *string
	Algorithm        *string
	PowerConsumption *string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type CreateProductParams struct {
	Name             string
	Slug             string
	Description      *string
	ShortDescription *string
	Price            float64
	CompareAtPrice   *float64
	Images           []string
	CategoryID       *string
	Vendor           *string
	SKU              *string
	Stock            int
	IsActive         bool
	IsFeatured       bool
	Hashrate         *string
	Algorithm        *string
	PowerConsumption *string
}

// Sort orders accepted by the catalog listing.
const (
	SortNewest    = ""
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// Query narrows the public catalog listing. Zero value lists every active
// product, newest first.
type Query struct {
	CategorySlug *string
	Search       *string
	Sort         string
}
