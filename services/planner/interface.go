package planner

import (
	"context"

	"mehfil/models"
)

// MaxResults caps every category search.
const MaxResults = 5

// availabilityWindow is how many days past a booked date are scanned for alternatives.
const availabilityWindow = 60

// maxAlternatives is how many alternative dates are suggested.
const maxAlternatives = 3

// VendorReader is the read side of the catalog.
type VendorReader interface {
	Find(ctx context.Context, id string) (*models.Vendor, error)
	List(ctx context.Context, category models.VendorCategory) ([]models.Vendor, error)
}

// Criteria narrows a category search. Zero values disable a filter.
type Criteria struct {
	GuestCount int    `json:"guestCount,omitempty"`
	Budget     int64  `json:"budget,omitempty"`
	Location   string `json:"location,omitempty"`
	Date       string `json:"date,omitempty"`
}

// SearchHit is one vendor in a search result.
type SearchHit struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	PricePerHead *int64   `json:"pricePerHead,omitempty"`
	PackagePrice *int64   `json:"packagePrice,omitempty"`
	TotalCost    int64    `json:"totalCost"`
	Rating       float64  `json:"rating"`
	Features     []string `json:"features"`
	Capacity     string   `json:"capacity,omitempty"`
	Phone        string   `json:"phone"`
	WithinBudget bool     `json:"withinBudget"`
}

// SearchResult is the outcome of a category search.
type SearchResult struct {
	Category models.VendorCategory `json:"category"`
	Count    int                   `json:"count"`
	Results  []SearchHit           `json:"results"`
	Message  string                `json:"message"`
}

// AvailabilityResult answers whether a vendor is free on a date.
type AvailabilityResult struct {
	Available          bool                  `json:"available"`
	VendorID           string                `json:"vendorId"`
	VendorName         string                `json:"vendorName"`
	Category           models.VendorCategory `json:"category"`
	RequestedDate      string                `json:"requestedDate"`
	Reason             string                `json:"reason,omitempty"`
	NextAvailableDates []string              `json:"nextAvailableDates,omitempty"`
	Message            string                `json:"message,omitempty"`
}

// BudgetLine is the cost of one selected vendor.
type BudgetLine struct {
	VendorID   string `json:"vendorId"`
	VendorName string `json:"vendorName"`
	Cost       int64  `json:"cost"`
	Details    string `json:"details"`
}

// BudgetSummary totals a set of selected vendors.
type BudgetSummary struct {
	Breakdown    map[models.VendorCategory]BudgetLine `json:"breakdown"`
	Total        int64                                `json:"total"`
	PerGuestCost int64                                `json:"perGuestCost"`
	GuestCount   int                                  `json:"guestCount"`
	Summary      string                               `json:"summary"`
	Skipped      []string                             `json:"skipped,omitempty"`
}

// PlannerService answers catalog questions for the assistant.
type PlannerService interface {
	Search(ctx context.Context, category models.VendorCategory, c Criteria) (*SearchResult, error)
	SearchHalls(ctx context.Context, c Criteria) (*SearchResult, error)
	SearchCatering(ctx context.Context, c Criteria) (*SearchResult, error)
	SearchPhotography(ctx context.Context, c Criteria) (*SearchResult, error)
	SearchCars(ctx context.Context, c Criteria) (*SearchResult, error)
	SearchBuses(ctx context.Context, c Criteria) (*SearchResult, error)
	CheckAvailability(ctx context.Context, vendorID, date string) (*AvailabilityResult, error)
	AggregateBudget(ctx context.Context, guestCount int, vendorIDs []string) (*BudgetSummary, error)
}

// DefaultPlannerService implements PlannerService over the vendor catalog.
type DefaultPlannerService struct {
	Catalog VendorReader
}
