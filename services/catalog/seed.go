package catalog

import "mehfil/models"

func pkr(p int64) *int64 { return &p }

// SeedVendors returns the launch catalog. Seq follows slice order.
func SeedVendors() []models.Vendor {
	vendors := []models.Vendor{
		// Halls
		{ID: "hall_001", Category: models.CategoryHall, Name: "Royal Palace Banquet", Location: "Gulberg III", City: "Lahore", Phone: "+92-42-35761234",
			Features: []string{"Central AC", "Valet parking", "Bridal room", "Stage decor"}, Capacity: "300-800", PricePerHead: pkr(2000),
			BookedDates: []string{"2025-12-20", "2025-12-27", "2026-01-03"}, Rating: 4.8, Image: "mehfil/halls/royal-palace"},
		{ID: "hall_002", Category: models.CategoryHall, Name: "Shalimar Marquee", Location: "Canal Road", City: "Lahore", Phone: "+92-42-35112233",
			Features: []string{"Open lawn", "Generator backup", "Parking for 200 cars"}, Capacity: "200-600", PricePerHead: pkr(1500),
			BookedDates: []string{"2025-12-25", "2025-12-26"}, Rating: 4.5, Image: "mehfil/halls/shalimar"},
		{ID: "hall_003", Category: models.CategoryHall, Name: "Pearl Continental Ballroom", Location: "Club Road", City: "Karachi", Phone: "+92-21-35633000",
			Features: []string{"Five-star service", "In-house catering", "Valet parking"}, Capacity: "250-1000", PricePerHead: pkr(4500),
			BookedDates: []string{"2025-12-19"}, Rating: 4.9, Image: "mehfil/halls/pc-ballroom"},
		{ID: "hall_004", Category: models.CategoryHall, Name: "Sea Breeze Banquet", Location: "Clifton", City: "Karachi", Phone: "+92-21-35870011",
			Features: []string{"Sea view terrace", "Central AC", "Bridal room"}, Capacity: "150-500", PricePerHead: pkr(2500),
			BookedDates: []string{}, Rating: 4.4},
		{ID: "hall_005", Category: models.CategoryHall, Name: "Margalla Grand Hall", Location: "F-7 Markaz", City: "Islamabad", Phone: "+92-51-2654321",
			Features: []string{"Mountain view", "Separate family hall", "Prayer area"}, Capacity: "200-700", PricePerHead: pkr(3000),
			BookedDates: []string{"2025-12-25"}, Rating: 4.7, Image: "mehfil/halls/margalla"},
		{ID: "hall_006", Category: models.CategoryHall, Name: "Faisal Garden Marquee", Location: "Susan Road", City: "Faisalabad", Phone: "+92-41-8711223",
			Features: []string{"Lawn and hall", "Budget friendly", "Generator backup"}, Capacity: "300-900", PricePerHead: pkr(1200),
			BookedDates: []string{}, Rating: 4.1},

		// Catering
		{ID: "cater_001", Category: models.CategoryCatering, Name: "Lahori Dastarkhwan", Location: "Model Town", City: "Lahore", Phone: "+92-300-4412233",
			Features: []string{"Mutton karahi", "Live BBQ", "Desi desserts"}, PricePerHead: pkr(1800),
			BookedDates: []string{"2025-12-21"}, Rating: 4.6},
		{ID: "cater_002", Category: models.CategoryCatering, Name: "Royal Degh Caterers", Location: "Johar Town", City: "Lahore", Phone: "+92-321-4455667",
			Features: []string{"Biryani", "Qorma", "Waiters included"}, PricePerHead: pkr(1200),
			BookedDates: []string{}, Rating: 4.3},
		{ID: "cater_003", Category: models.CategoryCatering, Name: "Karachi Feast Co.", Location: "DHA Phase 6", City: "Karachi", Phone: "+92-333-2211445",
			Features: []string{"Continental and desi", "Live stations", "Tasting session"}, PricePerHead: pkr(2200),
			BookedDates: []string{"2025-12-25"}, Rating: 4.8},
		{ID: "cater_004", Category: models.CategoryCatering, Name: "Capital Kitchens", Location: "Blue Area", City: "Islamabad", Phone: "+92-345-5566778",
			Features: []string{"Chinese corner", "Dessert bar", "Crockery included"}, PricePerHead: pkr(2000),
			BookedDates: []string{}, Rating: 4.5},
		{ID: "cater_005", Category: models.CategoryCatering, Name: "Pindi Handi House", Location: "Saddar", City: "Rawalpindi", Phone: "+92-312-5544332",
			Features: []string{"Handi specialities", "Budget menus"}, PricePerHead: pkr(950),
			BookedDates: []string{}, Rating: 4.0},

		// Photography
		{ID: "photo_001", Category: models.CategoryPhotography, Name: "Lens & Light Studio", Location: "DHA Phase 5", City: "Lahore", Phone: "+92-300-1234567",
			Features: []string{"Two photographers", "Cinematic highlight film", "Drone coverage"}, PackagePrice: pkr(150000),
			BookedDates: []string{"2025-12-25"}, Rating: 4.9, Image: "mehfil/photography/lens-light"},
		{ID: "photo_002", Category: models.CategoryPhotography, Name: "Shutter Stories", Location: "Bahria Town", City: "Lahore", Phone: "+92-322-7654321",
			Features: []string{"Candid coverage", "Printed album"}, PackagePrice: pkr(85000),
			BookedDates: []string{}, Rating: 4.4},
		{ID: "photo_003", Category: models.CategoryPhotography, Name: "Clifton Frames", Location: "Clifton", City: "Karachi", Phone: "+92-331-2223344",
			Features: []string{"Same-day edit", "Pre-wedding shoot"}, PackagePrice: pkr(120000),
			BookedDates: []string{"2025-12-20"}, Rating: 4.7},
		{ID: "photo_004", Category: models.CategoryPhotography, Name: "Capital Captures", Location: "G-11", City: "Islamabad", Phone: "+92-344-9988776",
			Features: []string{"Three events covered", "Raw files"}, PackagePrice: pkr(100000),
			BookedDates: []string{}, Rating: 4.6},
		{ID: "photo_005", Category: models.CategoryPhotography, Name: "Budget Clicks", Location: "Satellite Town", City: "Rawalpindi", Phone: "+92-313-1112223",
			Features: []string{"Single photographer", "Digital gallery"}, PackagePrice: pkr(45000),
			BookedDates: []string{}, Rating: 4.0},

		// Cars
		{ID: "car_001", Category: models.CategoryCar, Name: "Bridal Limo Lahore", Location: "Gulberg", City: "Lahore", Phone: "+92-300-8899001",
			Features: []string{"Stretch limousine", "Floral decor", "Chauffeur"}, PackagePrice: pkr(60000),
			BookedDates: []string{"2025-12-25"}, Rating: 4.7},
		{ID: "car_002", Category: models.CategoryCar, Name: "Classic Rides", Location: "Cantt", City: "Lahore", Phone: "+92-321-7788990",
			Features: []string{"Vintage Mercedes", "Decor included"}, PackagePrice: pkr(45000),
			BookedDates: []string{}, Rating: 4.5},
		{ID: "car_003", Category: models.CategoryCar, Name: "Karachi Wedding Cars", Location: "PECHS", City: "Karachi", Phone: "+92-333-4455661",
			Features: []string{"Audi A6", "Chauffeur", "Four hours"}, PackagePrice: pkr(35000),
			BookedDates: []string{}, Rating: 4.3},
		{ID: "car_004", Category: models.CategoryCar, Name: "Capital Luxury Fleet", Location: "F-10", City: "Islamabad", Phone: "+92-345-1239876",
			Features: []string{"Land Cruiser", "Fresh flowers"}, PackagePrice: pkr(55000),
			BookedDates: []string{}, Rating: 4.6},

		// Buses
		{ID: "bus_001", Category: models.CategoryBus, Name: "Daewoo Guest Shuttle", Location: "Thokar Niaz Baig", City: "Lahore", Phone: "+92-42-111007008",
			Features: []string{"AC coaches", "Round trip"}, Capacity: "45 seats per coach", PackagePrice: pkr(40000),
			BookedDates: []string{}, Rating: 4.6},
		{ID: "bus_002", Category: models.CategoryBus, Name: "Baraat Express", Location: "Shahdara", City: "Lahore", Phone: "+92-300-5566112",
			Features: []string{"Decorated coaster", "Dhol on board"}, Capacity: "30 seats", PackagePrice: pkr(25000),
			BookedDates: []string{"2025-12-25"}, Rating: 4.2},
		{ID: "bus_003", Category: models.CategoryBus, Name: "Karachi Coach Service", Location: "Saddar", City: "Karachi", Phone: "+92-21-32720011",
			Features: []string{"AC coaches", "Multiple pickups"}, Capacity: "50 seats per coach", PackagePrice: pkr(50000),
			BookedDates: []string{}, Rating: 4.4},
		{ID: "bus_004", Category: models.CategoryBus, Name: "Twin Cities Transport", Location: "I-8", City: "Islamabad", Phone: "+92-51-4433221",
			Features: []string{"Coaster and coach", "Islamabad and Rawalpindi pickups"}, Capacity: "25-50 seats", PackagePrice: pkr(38000),
			BookedDates: []string{}, Rating: 4.5},
	}
	for i := range vendors {
		vendors[i].Seq = i + 1
	}
	return vendors
}
