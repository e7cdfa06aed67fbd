package booking

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"sync"
	"testing"
	"time"

	bookingRepo "mehfil/database/repository/booking"
	vendorRepo "mehfil/database/repository/vendor"
	"mehfil/models"
	"mehfil/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.bookings {
		if existing.VendorID == b.VendorID && existing.BookingDate == b.BookingDate {
			return bookingRepo.ErrDuplicateBooking
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate > out[j].BookingDate })
	return out, nil
}

type fakeUsers map[string]*models.User

func (f fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return f[id], nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*models.Booking
	err  error
}

func (f *fakeMailer) SendBookingConfirmation(_ context.Context, _, _ string, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, b)
	return f.err
}

func pkr(v int64) *int64 { return &v }

type fixture struct {
	svc      *DefaultBookingService
	catalog  *vendorRepo.MemoryVendorRepo
	bookings *fakeBookingRepo
	mailer   *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := vendorRepo.NewMemoryVendorRepo()
	require.NoError(t, catalog.Seed(context.Background(), []models.Vendor{
		{ID: "hall_001", Category: models.CategoryHall, Name: "Royal Palace", PricePerHead: pkr(2000), BookedDates: []string{"2025-12-20"}},
		{ID: "photo_001", Category: models.CategoryPhotography, Name: "Lens & Light", PackagePrice: pkr(150000)},
	}))
	f := &fixture{
		catalog:  catalog,
		bookings: &fakeBookingRepo{},
		mailer:   &fakeMailer{},
	}
	f.svc = &DefaultBookingService{
		Catalog:  catalog,
		Bookings: f.bookings,
		Users:    fakeUsers{"u1": {ID: "u1", Name: "Ayesha", Email: "ayesha@example.com"}},
		Mailer:   f.mailer,
		Now:      func() time.Time { return time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC) },
	}
	return f
}

var member = Caller{UserID: "u1", Level: LevelMember}
var guest = Caller{Level: LevelGuest}

func TestCreateBooking_MemberPersistsAndMails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conf, err := f.svc.CreateBooking(ctx, Request{VendorID: "hall_001", EventDate: "2025-12-25T00:00:00Z", GuestCount: 400, Caller: member})
	require.NoError(t, err)

	assert.True(t, conf.Success)
	assert.True(t, conf.Persisted)
	assert.Equal(t, "2025-12-25", conf.EventDate)
	assert.Equal(t, int64(800000), conf.TotalAmount)
	assert.Equal(t, models.BookingStatusConfirmed, conf.Status)
	assert.Regexp(t, regexp.MustCompile(`^MF-2025-[0-9A-F]{6}$`), conf.BookingNumber)
	assert.Contains(t, conf.ConfirmationMessage, "Amount: PKR 800,000")

	require.Len(t, f.bookings.bookings, 1)
	assert.Equal(t, "u1", f.bookings.bookings[0].UserID)
	require.Len(t, f.mailer.sent, 1)

	require.NotNil(t, conf.Record)
	assert.Equal(t, f.bookings.bookings[0], *conf.Record)
	assert.Equal(t, "2025-12-25", conf.Record.BookingDate)
	assert.Equal(t, int64(800000), conf.Record.TotalPrice)
	assert.Equal(t, time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC), conf.Record.CreatedAt)

	v, _ := f.catalog.Find(ctx, "hall_001")
	assert.True(t, v.IsBooked("2025-12-25"))
}

func TestCreateBooking_GuestHoldsCatalogOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conf, err := f.svc.CreateBooking(ctx, Request{VendorID: "photo_001", EventDate: "2026-01-15", Caller: guest})
	require.NoError(t, err)
	assert.False(t, conf.Persisted)
	assert.Empty(t, conf.BookingID)
	assert.Nil(t, conf.Record)
	assert.Equal(t, int64(150000), conf.TotalAmount)
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.mailer.sent)

	v, _ := f.catalog.Find(ctx, "photo_001")
	assert.True(t, v.IsBooked("2026-01-15"))
}

func TestCreateBooking_ConflictDoesNotMutate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, caller := range []Caller{guest, member} {
		_, err := f.svc.CreateBooking(ctx, Request{VendorID: "hall_001", EventDate: "2025-12-20", GuestCount: 100, Caller: caller})
		assert.ErrorIs(t, err, ErrDateUnavailable)
		assert.Equal(t, utils.KindConflict, utils.KindOf(err))

		var taken *DateTakenError
		require.ErrorAs(t, err, &taken)
		assert.Equal(t, "Royal Palace", taken.VendorName)
		assert.Equal(t, "2025-12-20", taken.Date)
		assert.EqualError(t, err, "Royal Palace is already booked on 2025-12-20")
	}

	v, _ := f.catalog.Find(ctx, "hall_001")
	assert.Equal(t, []string{"2025-12-20"}, v.BookedDates)
	assert.Empty(t, f.bookings.bookings)
	assert.Empty(t, f.mailer.sent)
}

func TestCreateBooking_SequentialSucceedsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := Request{VendorID: "photo_001", EventDate: "2026-02-14", Caller: member}

	_, err := f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	assert.Len(t, f.bookings.bookings, 1)
}

func TestCreateBooking_ConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			caller := guest
			if i%2 == 0 {
				caller = member
			}
			_, err := f.svc.CreateBooking(ctx, Request{VendorID: "photo_001", EventDate: "2026-03-01", Caller: caller})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// Members are arbitrated by the store and guests by the catalog, so the
	// catalog holds the date exactly once.
	v, _ := f.catalog.Find(ctx, "photo_001")
	assert.Equal(t, []string{"2026-03-01"}, v.BookedDates)
	assert.LessOrEqual(t, len(f.bookings.bookings), 1)
	assert.GreaterOrEqual(t, wins, 1)
}

func TestCreateBooking_DuplicateIndexMapsToConflict(t *testing.T) {
	f := newFixture(t)
	f.bookings.err = bookingRepo.ErrDuplicateBooking

	_, err := f.svc.CreateBooking(context.Background(), Request{VendorID: "photo_001", EventDate: "2026-04-01", Caller: member})
	assert.ErrorIs(t, err, ErrDateUnavailable)

	v, _ := f.catalog.Find(context.Background(), "photo_001")
	assert.Empty(t, v.BookedDates)
}

func TestCreateBooking_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"missing vendor", Request{EventDate: "2026-01-01", Caller: guest}, ErrMissingFields},
		{"missing date", Request{VendorID: "hall_001", Caller: guest}, ErrMissingFields},
		{"bad date", Request{VendorID: "hall_001", EventDate: "tomorrow", GuestCount: 10, Caller: guest}, ErrInvalidDate},
		{"per-head without guests", Request{VendorID: "hall_001", EventDate: "2026-01-01", Caller: guest}, ErrInvalidGuests},
		{"member without id", Request{VendorID: "hall_001", EventDate: "2026-01-01", GuestCount: 10, Caller: Caller{Level: LevelMember}}, ErrUnauthenticated},
		{"unknown vendor", Request{VendorID: "hall_404", EventDate: "2026-01-01", GuestCount: 10, Caller: guest}, ErrVendorNotFound},
		{"unknown user", Request{VendorID: "hall_001", EventDate: "2026-01-01", GuestCount: 10, Caller: Caller{UserID: "ghost", Level: LevelMember}}, ErrUserNotFound},
		{"unknown user on booked date", Request{VendorID: "hall_001", EventDate: "2025-12-20", GuestCount: 10, Caller: Caller{UserID: "ghost", Level: LevelMember}}, ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateBooking(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateBooking_MailFailureKeepsBooking(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")

	conf, err := f.svc.CreateBooking(context.Background(), Request{VendorID: "photo_001", EventDate: "2026-05-01", Caller: member})
	require.NoError(t, err)
	assert.True(t, conf.Persisted)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.CreateBooking(ctx, Request{VendorID: "photo_001", EventDate: "2026-01-10", Caller: member})
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, Request{VendorID: "hall_001", EventDate: "2026-06-10", GuestCount: 200, Caller: member})
	require.NoError(t, err)

	list, err := f.svc.ListBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-06-10", list[0].BookingDate)

	_, err = f.svc.ListBookings(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
