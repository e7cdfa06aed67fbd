package models

import "slices"

// VendorCategory is one of the five bookable vendor kinds.
type VendorCategory string

const (
	CategoryHall        VendorCategory = "hall"
	CategoryCatering    VendorCategory = "catering"
	CategoryPhotography VendorCategory = "photography"
	CategoryCar         VendorCategory = "car"
	CategoryBus         VendorCategory = "bus"
)

// Categories lists every category in display order.
var Categories = []VendorCategory{
	CategoryHall,
	CategoryCatering,
	CategoryPhotography,
	CategoryCar,
	CategoryBus,
}

// Valid reports whether c is a known category.
func (c VendorCategory) Valid() bool {
	return slices.Contains(Categories, c)
}

// PerHead reports whether vendors in c are priced per guest.
func (c VendorCategory) PerHead() bool {
	return c == CategoryHall || c == CategoryCatering
}

// Vendor is a bookable wedding service provider.
// Exactly one of PricePerHead and PackagePrice is set.
type Vendor struct {
	ID           string         `bson:"id" json:"id"`
	Category     VendorCategory `bson:"category" json:"category"`
	Name         string         `bson:"name" json:"name"`
	Location     string         `bson:"location" json:"location"`
	City         string         `bson:"city" json:"city"`
	Phone        string         `bson:"phone" json:"phone"`
	Features     []string       `bson:"features" json:"features"`
	Capacity     string         `bson:"capacity,omitempty" json:"capacity,omitempty"`
	PricePerHead *int64         `bson:"pricePerHead,omitempty" json:"pricePerHead,omitempty"`
	PackagePrice *int64         `bson:"packagePrice,omitempty" json:"packagePrice,omitempty"`
	BookedDates  []string       `bson:"bookedDates" json:"bookedDates"`
	Rating       float64        `bson:"rating" json:"rating"`
	Image        string         `bson:"image,omitempty" json:"image,omitempty"`
	Seq          int            `bson:"seq" json:"-"`
}

// Price returns the per-head or package price, whichever applies.
func (v Vendor) Price() int64 {
	if v.PricePerHead != nil {
		return *v.PricePerHead
	}
	if v.PackagePrice != nil {
		return *v.PackagePrice
	}
	return 0
}

// IsPerHead reports whether the vendor charges per guest.
func (v Vendor) IsPerHead() bool {
	return v.PricePerHead != nil
}

// Cost is the amount the vendor charges for an event of guestCount guests.
func (v Vendor) Cost(guestCount int) int64 {
	if v.PricePerHead != nil {
		return *v.PricePerHead * int64(guestCount)
	}
	return v.Price()
}

// IsBooked reports whether date is already taken.
func (v Vendor) IsBooked(date string) bool {
	return slices.Contains(v.BookedDates, date)
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (v Vendor) Clone() Vendor {
	out := v
	out.Features = slices.Clone(v.Features)
	out.BookedDates = slices.Clone(v.BookedDates)
	if v.PricePerHead != nil {
		p := *v.PricePerHead
		out.PricePerHead = &p
	}
	if v.PackagePrice != nil {
		p := *v.PackagePrice
		out.PackagePrice = &p
	}
	return out
}
