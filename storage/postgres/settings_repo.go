package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage"
)

// booking_settings is a single-row table, id is always 1.
type settingsRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewSettingsRepo(db *pgxpool.Pool, log logger.ILogger) storage.ISettingsStorage {
	return &settingsRepo{db: db, log: log}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.BookingSettings, error) {
	var s models.BookingSettings
	query := `SELECT currency_symbol, min_booking_days, max_booking_days, mandatory_tour_cross_city,
	                 whatsapp_number, confirmation_message, phone_line_rate, insurance_daily_rate
	          FROM booking_settings WHERE id = 1`
	err := r.db.QueryRow(ctx, query).Scan(
		&s.CurrencySymbol, &s.MinBookingDays, &s.MaxBookingDays, &s.MandatoryTourCrossCity,
		&s.WhatsAppNumber, &s.ConfirmationMessage, &s.PhoneLineRate, &s.InsuranceDailyRate,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, s *models.BookingSettings) error {
	query := `UPDATE booking_settings SET
	            currency_symbol = $1,
	            min_booking_days = $2,
	            max_booking_days = $3,
	            mandatory_tour_cross_city = $4,
	            whatsapp_number = $5,
	            confirmation_message = $6,
	            phone_line_rate = $7,
	            insurance_daily_rate = $8
	          WHERE id = 1`
	_, err := r.db.Exec(ctx, query,
		s.CurrencySymbol, s.MinBookingDays, s.MaxBookingDays, s.MandatoryTourCrossCity,
		s.WhatsAppNumber, s.ConfirmationMessage, s.PhoneLineRate, s.InsuranceDailyRate,
	)
	return err
}
