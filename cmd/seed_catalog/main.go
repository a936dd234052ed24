// Seeds the default pricing catalog: Georgian cities with their airports,
// the standard car fleet, and the legacy add-on rates.
package main

import (
	"context"
	"os"

	"carrent/config"
	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pg.Close()

	ctx := context.Background()

	// Same-city endpoint factors sum to 1.0, so a trip inside one city
	// prices at exactly the car's daily rate.
	locations := []*models.Location{
		{ID: "tbilisi", Name: "Tbilisi", Kind: models.LocationCity, PriceFactor: 0.5, Enabled: true, SortOrder: 1},
		{ID: "tbilisi-airport", Name: "Tbilisi Airport", Kind: models.LocationAirport, ParentCityID: "tbilisi", PriceFactor: 0.55, Enabled: true, SortOrder: 2},
		{ID: "batumi", Name: "Batumi", Kind: models.LocationCity, PriceFactor: 0.6, Enabled: true, SortOrder: 3},
		{ID: "batumi-airport", Name: "Batumi Airport", Kind: models.LocationAirport, ParentCityID: "batumi", PriceFactor: 0.6, Enabled: true, SortOrder: 4},
		{ID: "kutaisi", Name: "Kutaisi", Kind: models.LocationCity, PriceFactor: 0.55, Enabled: true, SortOrder: 5},
		{ID: "kutaisi-airport", Name: "Kutaisi Airport", Kind: models.LocationAirport, ParentCityID: "kutaisi", PriceFactor: 0.55, Enabled: true, SortOrder: 6},
	}
	for _, l := range locations {
		if err := pg.Location().Upsert(ctx, l); err != nil {
			log.Error("seed location failed", logger.String("id", l.ID), logger.Error(err))
			os.Exit(1)
		}
	}

	carTypes := []*models.CarType{
		{ID: "economy", Name: "Economy", Enabled: true, SortOrder: 1, Mode: models.PricingDaily, DailyPrice: 50},
		{ID: "sedan", Name: "Comfort Sedan", Enabled: true, SortOrder: 2, Mode: models.PricingDaily, DailyPrice: 75},
		{ID: "minivan", Name: "Minivan", Enabled: true, SortOrder: 3, Mode: models.PricingDaily, DailyPrice: 95},
		{ID: "suv", Name: "SUV 4x4", Enabled: true, SortOrder: 4, Mode: models.PricingDaily, DailyPrice: 110},
		{ID: "shuttle", Name: "Airport Shuttle", Enabled: true, SortOrder: 5, Mode: models.PricingFlatTransfer, DailyPrice: 40,
			TransferFees: &models.AirportTransferFees{
				SameCity:      models.TransferLeg{Reception: 25, Departure: 25},
				DifferentCity: models.TransferLeg{Reception: 60, Departure: 60},
			}},
	}
	for _, ct := range carTypes {
		if err := pg.CarType().Upsert(ctx, ct); err != nil {
			log.Error("seed car type failed", logger.String("id", ct.ID), logger.Error(err))
			os.Exit(1)
		}
	}

	nationalities := []*models.FactorEntry{
		{ID: "georgian", Name: "Georgian", Factor: 1.0, Enabled: true},
		{ID: "turkish", Name: "Turkish", Factor: 1.3, Enabled: true},
		{ID: "other", Name: "Other", Factor: 1.15, Enabled: true},
	}
	for _, f := range nationalities {
		if err := pg.Nationality().Upsert(ctx, f); err != nil {
			log.Error("seed nationality failed", logger.String("id", f.ID), logger.Error(err))
			os.Exit(1)
		}
	}

	tours := []*models.FactorEntry{
		{ID: "city-tour", Name: "City tour", Factor: 1.2, Enabled: true},
		{ID: "wine-tour", Name: "Wine region tour", Factor: 1.5, Enabled: true},
		{ID: "mountain-tour", Name: "Mountain tour", Factor: 1.6, Enabled: true},
	}
	for _, f := range tours {
		if err := pg.TourType().Upsert(ctx, f); err != nil {
			log.Error("seed tour type failed", logger.String("id", f.ID), logger.Error(err))
			os.Exit(1)
		}
	}

	settings := &models.BookingSettings{
		CurrencySymbol:         "$",
		MinBookingDays:         1,
		MaxBookingDays:         30,
		MandatoryTourCrossCity: true,
		WhatsAppNumber:         "+995555123456",
		ConfirmationMessage:    "Hello! I'd like to book a car.",
		PhoneLineRate:          15,
		InsuranceDailyRate:     5,
	}
	if err := pg.Settings().Update(ctx, settings); err != nil {
		log.Error("seed settings failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("catalog seeded")
}
