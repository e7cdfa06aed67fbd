package planner

import (
	"context"
	"fmt"
	"math"

	"mehfil/models"
	"mehfil/utils"
)

func costDetails(v models.Vendor, guestCount int) string {
	if v.IsPerHead() {
		return fmt.Sprintf("%d guests × PKR %s/head", guestCount, utils.FormatAmount(*v.PricePerHead))
	}
	return fmt.Sprintf("Package: PKR %s", utils.FormatAmount(v.Price()))
}

// AggregateBudget totals the cost of the selected vendors. Ids that do not
// resolve contribute nothing and are listed in Skipped. The breakdown holds
// one line per category; a later vendor of the same category replaces the
// earlier line while both still count toward Total.
func (s *DefaultPlannerService) AggregateBudget(ctx context.Context, guestCount int, vendorIDs []string) (*BudgetSummary, error) {
	if guestCount <= 0 {
		return nil, utils.NewValidationError("Guest count must be greater than zero")
	}

	summary := &BudgetSummary{
		Breakdown:  make(map[models.VendorCategory]BudgetLine),
		GuestCount: guestCount,
	}
	for _, id := range vendorIDs {
		v, err := s.Catalog.Find(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load vendor %s: %w", id, err)
		}
		if v == nil {
			summary.Skipped = append(summary.Skipped, id)
			continue
		}
		cost := v.Cost(guestCount)
		summary.Breakdown[v.Category] = BudgetLine{
			VendorID:   v.ID,
			VendorName: v.Name,
			Cost:       cost,
			Details:    costDetails(*v, guestCount),
		}
		summary.Total += cost
	}

	summary.PerGuestCost = int64(math.Round(float64(summary.Total) / float64(guestCount)))
	summary.Summary = fmt.Sprintf("Total: PKR %s for %d guests", utils.FormatAmount(summary.Total), guestCount)
	return summary, nil
}
