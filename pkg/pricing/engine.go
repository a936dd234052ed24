package pricing

import (
	"errors"
	"fmt"
	"math"

	"carrent/pkg/models"
)

// Mode decides what happens when a request cannot be priced. Interactive
// callers (the bot wizard, a live form) use lenient mode and get a degraded
// zero quote with an explanatory note; the API uses strict mode and gets the
// typed error back.
type Mode string

const (
	ModeStrict  Mode = "strict"
	ModeLenient Mode = "lenient"
)

// Location factors are summed per endpoint and capped here, so a catalog
// cannot push a route multiplier past 2.5 no matter how its factors are set.
const maxLocationFactor = 2.5

// Engine computes a Quote from a QuoteRequest against a catalog snapshot.
// It is a pure function of its inputs: no I/O, no shared state, safe for
// concurrent use.
type Engine struct {
	mode   Mode
	policy DayCountPolicy
}

func New(mode Mode, policy DayCountPolicy) *Engine {
	return &Engine{mode: mode, policy: policy}
}

func (e *Engine) Price(req models.QuoteRequest, cat *models.Catalog) (models.Quote, error) {
	q, err := e.price(req, cat)
	if err != nil {
		if e.mode == ModeLenient {
			return degradedQuote(cat, err), nil
		}
		return models.Quote{}, err
	}
	return q, nil
}

func (e *Engine) price(req models.QuoteRequest, cat *models.Catalog) (models.Quote, error) {
	if req.CarTypeID == "" || req.PickupLocationID == "" || req.DropoffLocationID == "" {
		return models.Quote{}, fmt.Errorf("%w: car type, pickup and dropoff are required", ErrValidation)
	}

	car, ok := cat.CarType(req.CarTypeID)
	if !ok {
		return models.Quote{}, fmt.Errorf("%w: unknown car type %q", ErrValidation, req.CarTypeID)
	}
	if !car.Enabled {
		return models.Quote{}, fmt.Errorf("%w: %q", ErrCarTypeDisabled, req.CarTypeID)
	}

	days, err := Days(req.PickupAt, req.DropoffAt, e.policy)
	if err != nil {
		return models.Quote{}, err
	}
	settings := cat.Settings
	if settings.MinBookingDays > 0 && days < settings.MinBookingDays {
		return models.Quote{}, fmt.Errorf("%w: %d days is below the %d-day minimum",
			ErrDurationOutOfRange, days, settings.MinBookingDays)
	}
	if settings.MaxBookingDays > 0 && days > settings.MaxBookingDays {
		return models.Quote{}, fmt.Errorf("%w: %d days exceeds the %d-day maximum",
			ErrDurationOutOfRange, days, settings.MaxBookingDays)
	}

	route, err := Classify(req.PickupLocationID, req.DropoffLocationID, cat)
	if err != nil {
		return models.Quote{}, err
	}

	nationality, err := lookupFactor(cat.Nationalities, req.DriverNationalityID)
	if err != nil {
		return models.Quote{}, fmt.Errorf("driver nationality: %w", err)
	}
	tour, err := lookupFactor(cat.TourTypes, req.TourTypeID)
	if err != nil {
		return models.Quote{}, fmt.Errorf("tour type: %w", err)
	}

	passengers := req.PassengerCount
	if passengers < 1 {
		passengers = 1
	}

	q := models.Quote{
		TotalDays:      days,
		RouteKind:      route.Kind,
		CurrencySymbol: settings.CurrencySymbol,
	}

	switch car.Mode {
	case models.PricingFlatTransfer:
		if car.TransferFees == nil {
			return models.Quote{}, fmt.Errorf("%w: car type %q has no transfer fee schedule", ErrValidation, car.ID)
		}
		leg := car.TransferFees.SameCity
		if route.Kind == models.RouteCrossCity {
			leg = car.TransferFees.DifferentCity
		}
		tourCost := car.DailyPrice * float64(days)
		q.LineItems = append(q.LineItems,
			models.LineItem{Label: "airport reception", Amount: leg.Reception},
			models.LineItem{Label: "airport departure", Amount: leg.Departure},
			models.LineItem{Label: fmt.Sprintf("tour, %d day(s)", days), Amount: tourCost},
		)
		q.TotalPrice = roundHalfUp(leg.Reception + leg.Departure + tourCost)

	default:
		base := car.DailyPrice * float64(days)
		q.LineItems = append(q.LineItems,
			models.LineItem{Label: fmt.Sprintf("%s, %d day(s)", car.Name, days), Amount: base})

		locFactor := locationFactor(req, cat)
		q.AppliedFactors = append(q.AppliedFactors,
			models.AppliedFactor{Label: "route", Factor: locFactor})
		if nationality.factor != 1 {
			q.AppliedFactors = append(q.AppliedFactors,
				models.AppliedFactor{Label: nationality.name, Factor: nationality.factor})
		}
		if tour.factor != 1 {
			q.AppliedFactors = append(q.AppliedFactors,
				models.AppliedFactor{Label: tour.name, Factor: tour.factor})
		}

		q.TotalPrice = roundHalfUp(base * locFactor * nationality.factor * tour.factor)
	}

	if req.PhoneLine {
		cost := float64(passengers) * settings.PhoneLineRate
		q.LineItems = append(q.LineItems,
			models.LineItem{Label: fmt.Sprintf("phone line, %d passenger(s)", passengers), Amount: cost})
		q.TotalPrice += roundHalfUp(cost)
	}
	if req.TravelInsurance {
		cost := float64(passengers) * settings.InsuranceDailyRate * float64(days)
		q.LineItems = append(q.LineItems,
			models.LineItem{Label: fmt.Sprintf("travel insurance, %d passenger(s) x %d day(s)", passengers, days), Amount: cost})
		q.TotalPrice += roundHalfUp(cost)
	}

	q.Notes = buildNotes(route, nationality, tour, req, settings, car.Mode != models.PricingFlatTransfer)
	return q, nil
}

type resolvedFactor struct {
	name   string
	factor float64
}

// lookupFactor treats disabled entries the same as missing ones: a disabled
// factor must never influence a price. An empty id is the neutral factor.
func lookupFactor(entries []*models.FactorEntry, id string) (resolvedFactor, error) {
	if id == "" {
		return resolvedFactor{factor: 1}, nil
	}
	entry, ok := findEnabled(entries, id)
	if !ok {
		return resolvedFactor{}, fmt.Errorf("%w: %q", ErrUnknownFactorReference, id)
	}
	return resolvedFactor{name: entry.Name, factor: entry.Factor}, nil
}

func findEnabled(entries []*models.FactorEntry, id string) (*models.FactorEntry, bool) {
	for _, e := range entries {
		if e.ID == id && e.Enabled {
			return e, true
		}
	}
	return nil, false
}

// locationFactor sums the endpoint factors and caps the result. Same-city
// baselines are expected to sum to 1.0 (0.5 each); catalogs that only want a
// cross-city bump encode it through higher factors on remote locations.
func locationFactor(req models.QuoteRequest, cat *models.Catalog) float64 {
	pickup, _ := cat.Location(req.PickupLocationID)
	dropoff, _ := cat.Location(req.DropoffLocationID)
	f := pickup.PriceFactor + dropoff.PriceFactor
	if f > maxLocationFactor {
		f = maxLocationFactor
	}
	return f
}

func buildNotes(route Route, nationality, tour resolvedFactor, req models.QuoteRequest, settings models.BookingSettings, factorsApplied bool) []string {
	var notes []string
	if route.Kind == models.RouteCrossCity {
		notes = append(notes, fmt.Sprintf("cross-city route: %s to %s", route.PickupCityID, route.DropoffCityID))
	}
	if factorsApplied && nationality.factor != 1 {
		notes = append(notes, fmt.Sprintf("driver nationality factor: %g", nationality.factor))
	}
	if factorsApplied && tour.factor != 1 {
		notes = append(notes, fmt.Sprintf("tour type factor: %g", tour.factor))
	}
	// The legacy site surfaced this as a banner; none of its calculators ever
	// charged for the implied tour, so this stays a note, not a line item.
	if settings.MandatoryTourCrossCity && route.Kind == models.RouteCrossCity && req.TourTypeID == "" {
		notes = append(notes, "cross-city trips include a mandatory guided tour; none selected")
	}
	return notes
}

func degradedQuote(cat *models.Catalog, err error) models.Quote {
	note := "select all required fields"
	switch {
	case errors.Is(err, ErrInvalidDateRange):
		note = "check the pickup and dropoff dates"
	case errors.Is(err, ErrDurationOutOfRange):
		note = err.Error()
	case errors.Is(err, ErrCarTypeDisabled):
		note = "the selected car is not available"
	case errors.Is(err, ErrUnknownLocation):
		note = "the selected location is not available"
	case errors.Is(err, ErrUnknownFactorReference):
		note = "the selected option is not available"
	}
	return models.Quote{
		CurrencySymbol: cat.Settings.CurrencySymbol,
		Notes:          []string{note},
		Degraded:       true,
	}
}

// Half-up rounding to the nearest whole currency unit.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
