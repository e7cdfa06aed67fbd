package catalog

import (
	"context"

	"mehfil/models"
)

// PageSize is the number of vendors per browsing page.
const PageSize = 9

// Sort orders accepted by Browse.
const (
	SortRecommended = "recommended"
	SortRating      = "rating"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
)

// BrowseQuery holds the vendor listing filters. Zero values disable a filter;
// BudgetMax of zero means no upper bound.
type BrowseQuery struct {
	Categories []models.VendorCategory
	Location   string
	BudgetMin  int64
	BudgetMax  int64
	Date       string
	MinRating  float64
	SortBy     string
	Page       int
}

// VendorView is a vendor as shown to clients.
type VendorView struct {
	models.Vendor
	ImageURL string `json:"imageUrl,omitempty"`
}

// BrowsePage is one page of a vendor listing.
type BrowsePage struct {
	Vendors    []VendorView `json:"vendors"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	Total      int          `json:"total"`
	TotalPages int          `json:"totalPages"`
}

// CatalogService serves the public vendor pages.
type CatalogService interface {
	Browse(ctx context.Context, q BrowseQuery) (*BrowsePage, error)
	Get(ctx context.Context, id string) (*VendorView, error)
}
