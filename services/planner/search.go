package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mehfil/models"
	"mehfil/utils"
)

func validateCriteria(category models.VendorCategory, c *Criteria) error {
	if !category.Valid() {
		return utils.NewValidationError(fmt.Sprintf("Unknown category: %s", category))
	}
	if c.GuestCount < 0 {
		return utils.NewValidationError("Guest count must not be negative")
	}
	if c.Budget < 0 {
		return utils.NewValidationError("Budget must not be negative")
	}
	if c.Budget > 0 && category.PerHead() && c.GuestCount <= 0 {
		return utils.NewValidationError("Guest count is required to apply a budget to per-head pricing")
	}
	if c.Date != "" {
		date, err := utils.NormalizeDate(c.Date)
		if err != nil {
			return utils.NewValidationError("Date must be in YYYY-MM-DD format")
		}
		c.Date = date
	}
	return nil
}

func searchMessage(category models.VendorCategory, count int, c Criteria) string {
	switch category {
	case models.CategoryHall:
		return fmt.Sprintf("Found %d halls for %d guests", count, c.GuestCount)
	case models.CategoryCatering:
		return fmt.Sprintf("Found %d caterers for %d guests", count, c.GuestCount)
	case models.CategoryPhotography:
		return fmt.Sprintf("Found %d photographers available on %s", count, c.Date)
	case models.CategoryCar:
		return fmt.Sprintf("Found %d cars available on %s", count, c.Date)
	default:
		return fmt.Sprintf("Found %d buses for %d guests on %s", count, c.GuestCount, c.Date)
	}
}

// Search filters the category by city, date and budget, then returns the
// five best-rated matches with their cost for the event.
func (s *DefaultPlannerService) Search(ctx context.Context, category models.VendorCategory, c Criteria) (*SearchResult, error) {
	if err := validateCriteria(category, &c); err != nil {
		return nil, err
	}

	vendors, err := s.Catalog.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s vendors: %w", category, err)
	}

	location := strings.ToLower(strings.TrimSpace(c.Location))
	hits := make([]SearchHit, 0, len(vendors))
	for _, v := range vendors {
		if location != "" && !strings.Contains(strings.ToLower(v.City), location) {
			continue
		}
		if c.Date != "" && v.IsBooked(c.Date) {
			continue
		}
		cost := v.Cost(c.GuestCount)
		if c.Budget > 0 && cost > c.Budget {
			continue
		}
		hits = append(hits, SearchHit{
			ID:           v.ID,
			Name:         v.Name,
			Location:     v.Location,
			City:         v.City,
			PricePerHead: v.PricePerHead,
			PackagePrice: v.PackagePrice,
			TotalCost:    cost,
			Rating:       v.Rating,
			Features:     v.Features,
			Capacity:     v.Capacity,
			Phone:        v.Phone,
			WithinBudget: c.Budget == 0 || cost <= c.Budget,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Rating > hits[j].Rating })
	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}

	return &SearchResult{
		Category: category,
		Count:    len(hits),
		Results:  hits,
		Message:  searchMessage(category, len(hits), c),
	}, nil
}

func (s *DefaultPlannerService) SearchHalls(ctx context.Context, c Criteria) (*SearchResult, error) {
	return s.Search(ctx, models.CategoryHall, c)
}

func (s *DefaultPlannerService) SearchCatering(ctx context.Context, c Criteria) (*SearchResult, error) {
	return s.Search(ctx, models.CategoryCatering, c)
}

func (s *DefaultPlannerService) SearchPhotography(ctx context.Context, c Criteria) (*SearchResult, error) {
	return s.Search(ctx, models.CategoryPhotography, c)
}

func (s *DefaultPlannerService) SearchCars(ctx context.Context, c Criteria) (*SearchResult, error) {
	return s.Search(ctx, models.CategoryCar, c)
}

func (s *DefaultPlannerService) SearchBuses(ctx context.Context, c Criteria) (*SearchResult, error) {
	return s.Search(ctx, models.CategoryBus, c)
}
