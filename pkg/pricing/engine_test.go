package pricing

import (
	"errors"
	"reflect"
	"testing"

	"carrent/pkg/models"
)

// testCatalog mirrors the default seed: same-city factors sum to 1.0 so a
// same-city trip prices at exactly the daily rate.
func testCatalog() *models.Catalog {
	return &models.Catalog{
		CarTypes: []*models.CarType{
			{ID: "economy", Name: "Economy", Enabled: true, Mode: models.PricingDaily, DailyPrice: 50},
			{ID: "vintage", Name: "Vintage", Enabled: false, Mode: models.PricingDaily, DailyPrice: 200},
			{ID: "shuttle", Name: "Airport Shuttle", Enabled: true, Mode: models.PricingFlatTransfer, DailyPrice: 30,
				TransferFees: &models.AirportTransferFees{
					SameCity:      models.TransferLeg{Reception: 20, Departure: 20},
					DifferentCity: models.TransferLeg{Reception: 45, Departure: 45},
				}},
		},
		Locations: []*models.Location{
			{ID: "tbilisi", Name: "Tbilisi", Kind: models.LocationCity, PriceFactor: 0.5, Enabled: true},
			{ID: "batumi-airport", Name: "Batumi Airport", Kind: models.LocationAirport, ParentCityID: "batumi", PriceFactor: 0.6, Enabled: true},
			{ID: "batumi", Name: "Batumi", Kind: models.LocationCity, PriceFactor: 0.6, Enabled: true},
			{ID: "far-away", Name: "Far Away", Kind: models.LocationCity, PriceFactor: 9.0, Enabled: true},
		},
		Nationalities: []*models.FactorEntry{
			{ID: "georgian", Name: "Georgian driver", Factor: 1.0, Enabled: true},
			{ID: "turkish", Name: "Turkish driver", Factor: 1.3, Enabled: true},
			{ID: "retired", Name: "Retired", Factor: 2.0, Enabled: false},
		},
		TourTypes: []*models.FactorEntry{
			{ID: "wine", Name: "Wine tour", Factor: 1.5, Enabled: true},
		},
		Settings: models.BookingSettings{
			CurrencySymbol:     "$",
			PhoneLineRate:      15,
			InsuranceDailyRate: 5,
		},
	}
}

func baseRequest() models.QuoteRequest {
	return models.QuoteRequest{
		CarTypeID:         "economy",
		PickupLocationID:  "tbilisi",
		DropoffLocationID: "tbilisi",
		PickupAt:          ts("2024-06-01T09:00"),
		DropoffAt:         ts("2024-06-03T09:00"),
		PassengerCount:    1,
	}
}

func TestEngine_SameCityBaseline(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)

	q, err := e.Price(baseRequest(), testCatalog())
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	// 48h -> 2 days, location factor 0.5+0.5=1.0: 50*2*1.0 = 100.
	if q.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", q.TotalDays)
	}
	if q.RouteKind != models.RouteSameCity {
		t.Errorf("RouteKind = %s, want same_city", q.RouteKind)
	}
	if q.TotalPrice != 100 {
		t.Errorf("TotalPrice = %d, want 100", q.TotalPrice)
	}
	if len(q.Notes) != 0 {
		t.Errorf("unexpected notes: %v", q.Notes)
	}
}

func TestEngine_CrossCityAirport(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	req := baseRequest()
	req.DropoffLocationID = "batumi-airport"

	q, err := e.Price(req, testCatalog())
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	// Location factor 0.5+0.6=1.1: 50*2*1.1 = 110.
	if q.RouteKind != models.RouteCrossCity {
		t.Errorf("RouteKind = %s, want cross_city", q.RouteKind)
	}
	if q.TotalPrice != 110 {
		t.Errorf("TotalPrice = %d, want 110", q.TotalPrice)
	}
	if len(q.Notes) == 0 {
		t.Error("expected a cross-city note")
	}
}

func TestEngine_NationalityFactor(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	req := baseRequest()
	req.DriverNationalityID = "turkish"

	q, err := e.Price(req, testCatalog())
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	// 50*2*1.0*1.3 = 130.
	if q.TotalPrice != 130 {
		t.Errorf("TotalPrice = %d, want 130", q.TotalPrice)
	}
	found := false
	for _, n := range q.Notes {
		if n == "driver nationality factor: 1.3" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing nationality note, got %v", q.Notes)
	}
}

func TestEngine_LocationFactorCap(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	req := baseRequest()
	req.PickupLocationID = "far-away"
	req.DropoffLocationID = "far-away"

	q, err := e.Price(req, testCatalog())
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	// 9.0+9.0 capped at 2.5: 50*2*2.5 = 250.
	if q.TotalPrice != 250 {
		t.Errorf("TotalPrice = %d, want 250 (capped)", q.TotalPrice)
	}
}

func TestEngine_FlatTransferMode(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	req := baseRequest()
	req.CarTypeID = "shuttle"
	req.DropoffLocationID = "batumi"

	q, err := e.Price(req, testCatalog())
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	// Cross-city leg: 45+45, tour daily 30*2 = 60. Total 150. No factors.
	if q.TotalPrice != 150 {
		t.Errorf("TotalPrice = %d, want 150", q.TotalPrice)
	}
	if len(q.AppliedFactors) != 0 {
		t.Errorf("flat mode must not apply factors, got %v", q.AppliedFactors)
	}
}

func TestEngine_AddOns(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)

	t.Run("phone line flat per passenger", func(t *testing.T) {
		req := baseRequest()
		req.PassengerCount = 3
		req.PhoneLine = true
		q, err := e.Price(req, testCatalog())
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		// 100 base + 3*15 = 145.
		if q.TotalPrice != 145 {
			t.Errorf("TotalPrice = %d, want 145", q.TotalPrice)
		}
	})

	t.Run("insurance per passenger per day", func(t *testing.T) {
		req := baseRequest()
		req.PassengerCount = 2
		req.TravelInsurance = true
		q, err := e.Price(req, testCatalog())
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		// 100 base + 2*5*2 = 120.
		if q.TotalPrice != 120 {
			t.Errorf("TotalPrice = %d, want 120", q.TotalPrice)
		}
	})

	t.Run("add-ons apply in flat mode too", func(t *testing.T) {
		req := baseRequest()
		req.CarTypeID = "shuttle"
		req.PassengerCount = 3
		req.PhoneLine = true
		q, err := e.Price(req, testCatalog())
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		// Same-city leg 20+20 + tour 30*2 + phone 45 = 145.
		if q.TotalPrice != 145 {
			t.Errorf("TotalPrice = %d, want 145", q.TotalPrice)
		}
	})
}

func TestEngine_Errors(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	cat := testCatalog()

	tests := []struct {
		name    string
		mutate  func(*models.QuoteRequest)
		wantErr error
	}{
		{"missing car type", func(r *models.QuoteRequest) { r.CarTypeID = "" }, ErrValidation},
		{"unknown car type", func(r *models.QuoteRequest) { r.CarTypeID = "hovercraft" }, ErrValidation},
		{"disabled car type", func(r *models.QuoteRequest) { r.CarTypeID = "vintage" }, ErrCarTypeDisabled},
		{"unknown pickup", func(r *models.QuoteRequest) { r.PickupLocationID = "nowhere" }, ErrUnknownLocation},
		{"dropoff before pickup", func(r *models.QuoteRequest) {
			r.PickupAt, r.DropoffAt = r.DropoffAt, r.PickupAt
		}, ErrInvalidDateRange},
		{"unknown nationality", func(r *models.QuoteRequest) { r.DriverNationalityID = "martian" }, ErrUnknownFactorReference},
		{"disabled nationality", func(r *models.QuoteRequest) { r.DriverNationalityID = "retired" }, ErrUnknownFactorReference},
		{"unknown tour", func(r *models.QuoteRequest) { r.TourTypeID = "space" }, ErrUnknownFactorReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			_, err := e.Price(req, cat)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Price() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngine_DurationBounds(t *testing.T) {
	cat := testCatalog()
	cat.Settings.MinBookingDays = 2
	cat.Settings.MaxBookingDays = 10
	e := New(ModeStrict, DayCountCeil)

	req := baseRequest()
	req.DropoffAt = req.PickupAt
	if _, err := e.Price(req, cat); !errors.Is(err, ErrDurationOutOfRange) {
		t.Errorf("below minimum: error = %v, want ErrDurationOutOfRange", err)
	}

	req = baseRequest()
	req.DropoffAt = req.PickupAt.AddDate(0, 0, 30)
	if _, err := e.Price(req, cat); !errors.Is(err, ErrDurationOutOfRange) {
		t.Errorf("above maximum: error = %v, want ErrDurationOutOfRange", err)
	}
}

func TestEngine_LenientDegradesInsteadOfFailing(t *testing.T) {
	e := New(ModeLenient, DayCountCeil)

	req := baseRequest()
	req.PickupAt, req.DropoffAt = req.DropoffAt, req.PickupAt
	q, err := e.Price(req, testCatalog())
	if err != nil {
		t.Fatalf("lenient mode must not return errors, got %v", err)
	}
	if !q.Degraded {
		t.Error("expected a degraded quote")
	}
	if q.TotalPrice != 0 {
		t.Errorf("degraded quote must be zero-priced, got %d", q.TotalPrice)
	}
	if len(q.Notes) == 0 {
		t.Error("degraded quote must carry an explanatory note")
	}
}

func TestEngine_MandatoryTourNote(t *testing.T) {
	cat := testCatalog()
	cat.Settings.MandatoryTourCrossCity = true
	e := New(ModeStrict, DayCountCeil)

	req := baseRequest()
	req.DropoffLocationID = "batumi"
	q, err := e.Price(req, cat)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	found := false
	for _, n := range q.Notes {
		if n == "cross-city trips include a mandatory guided tour; none selected" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing mandatory tour note, got %v", q.Notes)
	}

	// Selecting a tour clears the note (and prices it).
	req.TourTypeID = "wine"
	q, err = e.Price(req, cat)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	for _, n := range q.Notes {
		if n == "cross-city trips include a mandatory guided tour; none selected" {
			t.Error("note must not appear once a tour is selected")
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	e := New(ModeStrict, DayCountCeil)
	cat := testCatalog()
	req := baseRequest()
	req.DropoffLocationID = "batumi-airport"
	req.DriverNationalityID = "turkish"
	req.TourTypeID = "wine"
	req.PhoneLine = true
	req.TravelInsurance = true
	req.PassengerCount = 4

	first, err := e.Price(req, cat)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Price(req, cat)
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("quote changed between identical calls:\n%+v\n%+v", first, again)
		}
	}
}
