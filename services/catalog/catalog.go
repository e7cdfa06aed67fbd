package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	vendorRepo "mehfil/database/repository/vendor"
	"mehfil/models"
	"mehfil/utils"
)

// ErrVendorNotFound is returned by Get for unknown ids.
var ErrVendorNotFound = utils.NewNotFoundError("Vendor not found")

var categorySlugs = map[string]models.VendorCategory{
	"halls":       models.CategoryHall,
	"catering":    models.CategoryCatering,
	"photography": models.CategoryPhotography,
	"cars":        models.CategoryCar,
	"buses":       models.CategoryBus,
}

// CategoryFromSlug maps a URL segment such as "halls" to its category.
// Singular names are accepted too.
func CategoryFromSlug(slug string) (models.VendorCategory, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if c, ok := categorySlugs[slug]; ok {
		return c, true
	}
	c := models.VendorCategory(slug)
	return c, c.Valid()
}

// DefaultCatalogService reads from the vendor repository.
type DefaultCatalogService struct {
	Repo   vendorRepo.VendorRepository
	Images *utils.ImageResolver
}

// Bootstrap loads the seed catalog into repo.
func Bootstrap(ctx context.Context, repo vendorRepo.VendorRepository) error {
	if err := repo.Seed(ctx, SeedVendors()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) view(v models.Vendor) VendorView {
	return VendorView{Vendor: v, ImageURL: s.Images.URL(v.Image)}
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*VendorView, error) {
	v, err := s.Repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVendorNotFound
	}
	view := s.view(*v)
	return &view, nil
}

func validateQuery(q *BrowseQuery) error {
	for _, c := range q.Categories {
		if !c.Valid() {
			return utils.NewValidationError(fmt.Sprintf("Unknown category: %s", c))
		}
	}
	if q.Date != "" {
		if _, err := time.Parse(utils.DateLayout, q.Date); err != nil {
			return utils.NewValidationError("Date must be in YYYY-MM-DD format")
		}
	}
	switch q.SortBy {
	case "":
		q.SortBy = SortRecommended
	case SortRecommended, SortRating, SortPriceLow, SortPriceHigh:
	default:
		return utils.NewValidationError(fmt.Sprintf("Unknown sort order: %s", q.SortBy))
	}
	if q.BudgetMin < 0 || q.BudgetMax < 0 || q.MinRating < 0 {
		return utils.NewValidationError("Filters must not be negative")
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return nil
}

func (q BrowseQuery) matches(v models.Vendor) bool {
	if len(q.Categories) > 0 {
		found := false
		for _, c := range q.Categories {
			if v.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Location != "" && q.Location != "all" && !strings.EqualFold(v.City, q.Location) {
		return false
	}
	price := v.Price()
	if price < q.BudgetMin || (q.BudgetMax > 0 && price > q.BudgetMax) {
		return false
	}
	if q.Date != "" && v.IsBooked(q.Date) {
		return false
	}
	return v.Rating >= q.MinRating
}

func (s *DefaultCatalogService) Browse(ctx context.Context, q BrowseQuery) (*BrowsePage, error) {
	if err := validateQuery(&q); err != nil {
		return nil, err
	}

	all, err := s.Repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	matched := make([]models.Vendor, 0, len(all))
	for _, v := range all {
		if q.matches(v) {
			matched = append(matched, v)
		}
	}

	switch q.SortBy {
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price() < matched[j].Price() })
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price() > matched[j].Price() })
	}

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
	start := (q.Page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	views := make([]VendorView, 0, end-start)
	for _, v := range matched[start:end] {
		views = append(views, s.view(v))
	}
	return &BrowsePage{
		Vendors:    views,
		Page:       q.Page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
