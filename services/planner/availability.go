package planner

import (
	"context"
	"fmt"
	"time"

	"mehfil/utils"
)

// ErrVendorNotFound is returned for an unknown vendor id.
var ErrVendorNotFound = utils.NewNotFoundError("Vendor not found")

// CheckAvailability reports whether the vendor is free on date. When it is
// not, up to three free dates from the following sixty days are suggested.
func (s *DefaultPlannerService) CheckAvailability(ctx context.Context, vendorID, date string) (*AvailabilityResult, error) {
	normalized, err := utils.NormalizeDate(date)
	if err != nil {
		return nil, utils.NewValidationError("Date must be in YYYY-MM-DD format")
	}

	vendor, err := s.Catalog.Find(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", vendorID, err)
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	result := &AvailabilityResult{
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		Category:      vendor.Category,
		RequestedDate: normalized,
	}

	if !vendor.IsBooked(normalized) {
		result.Available = true
		result.Message = fmt.Sprintf("%s is available on %s", vendor.Name, normalized)
		return result, nil
	}

	start, _ := time.Parse(utils.DateLayout, normalized)
	alternatives := make([]string, 0, maxAlternatives)
	for i := 1; i <= availabilityWindow && len(alternatives) < maxAlternatives; i++ {
		candidate := start.AddDate(0, 0, i).Format(utils.DateLayout)
		if !vendor.IsBooked(candidate) {
			alternatives = append(alternatives, candidate)
		}
	}

	result.Reason = fmt.Sprintf("Already booked on %s", normalized)
	result.NextAvailableDates = alternatives
	return result, nil
}
