package planner

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	vendorRepo "mehfil/database/repository/vendor"
	"mehfil/models"
	"mehfil/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkr(v int64) *int64 { return &v }

func newPlanner(t *testing.T, vendors ...models.Vendor) (*DefaultPlannerService, *vendorRepo.MemoryVendorRepo) {
	t.Helper()
	repo := vendorRepo.NewMemoryVendorRepo()
	require.NoError(t, repo.Seed(context.Background(), vendors))
	return &DefaultPlannerService{Catalog: repo}, repo
}

func fixtureCatalog() []models.Vendor {
	return []models.Vendor{
		{ID: "hall_001", Category: models.CategoryHall, Name: "Royal Palace", City: "Lahore", Capacity: "300-800", PricePerHead: pkr(2000), Rating: 4.8, BookedDates: []string{"2025-12-20"}},
		{ID: "hall_002", Category: models.CategoryHall, Name: "Shalimar Marquee", City: "Lahore", PricePerHead: pkr(1500), Rating: 4.5, BookedDates: []string{"2025-12-25"}},
		{ID: "hall_003", Category: models.CategoryHall, Name: "PC Ballroom", City: "Karachi", PricePerHead: pkr(4500), Rating: 4.9},
		{ID: "cater_001", Category: models.CategoryCatering, Name: "Dastarkhwan", City: "Lahore", PricePerHead: pkr(1800), Rating: 4.6},
		{ID: "photo_001", Category: models.CategoryPhotography, Name: "Lens & Light", City: "Lahore", PackagePrice: pkr(150000), Rating: 4.9},
		{ID: "photo_002", Category: models.CategoryPhotography, Name: "Shutter Stories", City: "Lahore", PackagePrice: pkr(85000), Rating: 4.4},
		{ID: "car_001", Category: models.CategoryCar, Name: "Bridal Limo", City: "Lahore", PackagePrice: pkr(60000), Rating: 4.7},
		{ID: "bus_001", Category: models.CategoryBus, Name: "Guest Shuttle", City: "Lahore", PackagePrice: pkr(40000), Rating: 4.6},
	}
}

func TestSearchHalls_ScenarioHall001(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)

	res, err := svc.SearchHalls(context.Background(), Criteria{GuestCount: 400, Budget: 1000000, Date: "2025-12-25"})
	require.NoError(t, err)

	var hit *SearchHit
	for i := range res.Results {
		if res.Results[i].ID == "hall_001" {
			hit = &res.Results[i]
		}
	}
	require.NotNil(t, hit)
	assert.Equal(t, int64(800000), hit.TotalCost)
	assert.True(t, hit.WithinBudget)
	assert.Equal(t, fmt.Sprintf("Found %d halls for 400 guests", res.Count), res.Message)

	for _, h := range res.Results {
		assert.NotEqual(t, "hall_002", h.ID, "booked hall must be excluded")
		assert.NotEqual(t, "hall_003", h.ID, "over-budget hall must be excluded")
	}
}

func TestSearch_LocationIsCaseInsensitiveSubstring(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)

	res, err := svc.SearchHalls(context.Background(), Criteria{GuestCount: 100, Location: "kara"})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "hall_003", res.Results[0].ID)
}

func TestSearch_PackageBudget(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)

	res, err := svc.SearchPhotography(context.Background(), Criteria{Budget: 100000, Date: "2025-12-25"})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "photo_002", res.Results[0].ID)
	assert.Equal(t, int64(85000), res.Results[0].TotalCost)
	assert.Equal(t, "Found 1 photographers available on 2025-12-25", res.Message)
}

func TestSearch_Messages(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)
	ctx := context.Background()
	c := Criteria{GuestCount: 300, Date: "2026-02-14"}

	cat, err := svc.SearchCatering(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Found 1 caterers for 300 guests", cat.Message)

	cars, err := svc.SearchCars(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Found 1 cars available on 2026-02-14", cars.Message)

	buses, err := svc.SearchBuses(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Found 1 buses for 300 guests on 2026-02-14", buses.Message)
}

func TestSearch_Validation(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)
	ctx := context.Background()

	_, err := svc.SearchHalls(ctx, Criteria{Budget: 500000})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err), "per-head budget needs guests")

	_, err = svc.SearchCars(ctx, Criteria{Date: "14/02/2026"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.Search(ctx, "florist", Criteria{})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	res, err := svc.SearchCars(ctx, Criteria{Budget: 100000})
	require.NoError(t, err, "package budget does not need guests")
	assert.Equal(t, 1, res.Count)
}

func randomCatalog(r *rand.Rand, n int) []models.Vendor {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	vendors := make([]models.Vendor, 0, n)
	for i := 0; i < n; i++ {
		cat := models.Categories[r.Intn(len(models.Categories))]
		v := models.Vendor{
			ID:       fmt.Sprintf("v_%03d", i),
			Category: cat,
			Name:     fmt.Sprintf("Vendor %d", i),
			City:     []string{"Lahore", "Karachi", "Islamabad"}[r.Intn(3)],
			Rating:   float64(30+r.Intn(21)) / 10,
		}
		if cat.PerHead() {
			v.PricePerHead = pkr(int64(500 + r.Intn(5000)))
		} else {
			v.PackagePrice = pkr(int64(20000 + r.Intn(200000)))
		}
		seen := map[string]bool{}
		bookings := r.Intn(20)
		for j := 0; j < bookings; j++ {
			d := base.AddDate(0, 0, r.Intn(90)).Format(utils.DateLayout)
			if !seen[d] {
				seen[d] = true
				v.BookedDates = append(v.BookedDates, d)
			}
		}
		vendors = append(vendors, v)
	}
	return vendors
}

func TestSearchProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ctx := context.Background()
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	for round := 0; round < 25; round++ {
		catalog := randomCatalog(r, 60)
		svc, _ := newPlanner(t, catalog...)
		byID := map[string]models.Vendor{}
		for _, v := range catalog {
			byID[v.ID] = v
		}

		for _, cat := range models.Categories {
			date := base.AddDate(0, 0, r.Intn(90)).Format(utils.DateLayout)
			res, err := svc.Search(ctx, cat, Criteria{GuestCount: 100 + r.Intn(500), Date: date})
			require.NoError(t, err)

			assert.LessOrEqual(t, len(res.Results), MaxResults)
			for i, hit := range res.Results {
				assert.False(t, byID[hit.ID].IsBooked(date), "%s booked on %s", hit.ID, date)
				if i > 0 {
					assert.GreaterOrEqual(t, res.Results[i-1].Rating, hit.Rating)
				}
			}
		}
	}
}

func TestCheckAvailability_Free(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)

	res, err := svc.CheckAvailability(context.Background(), "hall_001", "2025-12-25")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, "Royal Palace", res.VendorName)
	assert.Equal(t, models.CategoryHall, res.Category)
	assert.Empty(t, res.NextAvailableDates)
}

func TestCheckAvailability_AfterBooking(t *testing.T) {
	svc, repo := newPlanner(t, fixtureCatalog()...)
	ctx := context.Background()
	require.NoError(t, repo.MarkBooked(ctx, "hall_001", "2025-12-25"))

	res, err := svc.CheckAvailability(ctx, "hall_001", "2025-12-25")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, "Already booked on 2025-12-25", res.Reason)
	assert.LessOrEqual(t, len(res.NextAvailableDates), 3)
	assert.NotContains(t, res.NextAvailableDates, "2025-12-25")
	assert.Equal(t, []string{"2025-12-26", "2025-12-27", "2025-12-28"}, res.NextAvailableDates)
}

func TestCheckAvailability_SkipsBookedAlternatives(t *testing.T) {
	svc, _ := newPlanner(t, models.Vendor{
		ID: "hall_x", Category: models.CategoryHall, PricePerHead: pkr(1000),
		BookedDates: []string{"2025-12-31", "2026-01-01", "2026-01-03"},
	})

	res, err := svc.CheckAvailability(context.Background(), "hall_x", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-02", "2026-01-04", "2026-01-05"}, res.NextAvailableDates)
}

func TestCheckAvailability_AlternativesProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for round := 0; round < 50; round++ {
		// A dense run of bookings makes the 60-day window matter.
		var booked []string
		run := r.Intn(70)
		for i := 0; i <= run; i++ {
			booked = append(booked, start.AddDate(0, 0, i).Format(utils.DateLayout))
		}
		svc, _ := newPlanner(t, models.Vendor{ID: "dense", Category: models.CategoryCar, PackagePrice: pkr(1), BookedDates: booked})

		res, err := svc.CheckAvailability(ctx, "dense", booked[0])
		require.NoError(t, err)
		require.False(t, res.Available)
		assert.LessOrEqual(t, len(res.NextAvailableDates), 3)

		limit := start.AddDate(0, 0, availabilityWindow)
		for _, d := range res.NextAvailableDates {
			parsed, err := time.Parse(utils.DateLayout, d)
			require.NoError(t, err)
			assert.True(t, parsed.After(start))
			assert.False(t, parsed.After(limit))
			assert.NotContains(t, booked, d)
		}
	}
}

func TestCheckAvailability_Errors(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)
	ctx := context.Background()

	_, err := svc.CheckAvailability(ctx, "hall_404", "2025-12-25")
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = svc.CheckAvailability(ctx, "hall_001", "next friday")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestAggregateBudget(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)

	sum, err := svc.AggregateBudget(context.Background(), 300, []string{"hall_001", "cater_001", "photo_001", "ghost_001"})
	require.NoError(t, err)

	assert.Equal(t, int64(600000+540000+150000), sum.Total)
	assert.Equal(t, int64(4300), sum.PerGuestCost)
	assert.Equal(t, []string{"ghost_001"}, sum.Skipped)
	assert.Equal(t, "Total: PKR 1,290,000 for 300 guests", sum.Summary)
	assert.Equal(t, "300 guests × PKR 2,000/head", sum.Breakdown[models.CategoryHall].Details)
	assert.Equal(t, "Package: PKR 150,000", sum.Breakdown[models.CategoryPhotography].Details)
}

func TestAggregateBudget_TotalMatchesSumProperty(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	catalog := randomCatalog(r, 40)
	svc, _ := newPlanner(t, catalog...)
	byID := map[string]models.Vendor{}
	for _, v := range catalog {
		byID[v.ID] = v
	}

	for round := 0; round < 30; round++ {
		guests := 1 + r.Intn(800)
		var ids []string
		var want int64
		picks := r.Intn(8)
		for i := 0; i < picks; i++ {
			if r.Intn(4) == 0 {
				ids = append(ids, fmt.Sprintf("missing_%d", i))
				continue
			}
			v := catalog[r.Intn(len(catalog))]
			ids = append(ids, v.ID)
			want += byID[v.ID].Cost(guests)
		}

		sum, err := svc.AggregateBudget(context.Background(), guests, ids)
		require.NoError(t, err)
		assert.Equal(t, want, sum.Total)
	}
}

func TestAggregateBudget_RejectsZeroGuests(t *testing.T) {
	svc, _ := newPlanner(t, fixtureCatalog()...)
	_, err := svc.AggregateBudget(context.Background(), 0, []string{"hall_001"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
