package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage"
)

type carTypeRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewCarTypeRepo(db *pgxpool.Pool, log logger.ILogger) storage.ICarTypeStorage {
	return &carTypeRepo{db: db, log: log}
}

func (r *carTypeRepo) GetAll(ctx context.Context) ([]*models.CarType, error) {
	query := `SELECT id, name, enabled, sort_order, mode, daily_price, transfer_fees, created_at
	          FROM car_types ORDER BY sort_order ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carTypes []*models.CarType
	for rows.Next() {
		ct, err := scanCarType(rows)
		if err != nil {
			return nil, err
		}
		carTypes = append(carTypes, ct)
	}
	return carTypes, rows.Err()
}

func (r *carTypeRepo) GetByID(ctx context.Context, id string) (*models.CarType, error) {
	query := `SELECT id, name, enabled, sort_order, mode, daily_price, transfer_fees, created_at
	          FROM car_types WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanCarType(row)
}

func (r *carTypeRepo) Upsert(ctx context.Context, ct *models.CarType) error {
	var fees []byte
	if ct.TransferFees != nil {
		var err error
		fees, err = json.Marshal(ct.TransferFees)
		if err != nil {
			return err
		}
	}
	query := `INSERT INTO car_types (id, name, enabled, sort_order, mode, daily_price, transfer_fees)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET
	            name = EXCLUDED.name,
	            enabled = EXCLUDED.enabled,
	            sort_order = EXCLUDED.sort_order,
	            mode = EXCLUDED.mode,
	            daily_price = EXCLUDED.daily_price,
	            transfer_fees = EXCLUDED.transfer_fees`
	_, err := r.db.Exec(ctx, query, ct.ID, ct.Name, ct.Enabled, ct.SortOrder, ct.Mode, ct.DailyPrice, fees)
	return err
}

func (r *carTypeRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := r.db.Exec(ctx, `UPDATE car_types SET enabled = $2 WHERE id = $1`, id, enabled)
	return err
}

func (r *carTypeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM car_types WHERE id = $1`, id)
	return err
}

func scanCarType(row pgx.Row) (*models.CarType, error) {
	var ct models.CarType
	var fees []byte
	if err := row.Scan(&ct.ID, &ct.Name, &ct.Enabled, &ct.SortOrder, &ct.Mode, &ct.DailyPrice, &fees, &ct.CreatedAt); err != nil {
		return nil, err
	}
	if len(fees) > 0 {
		ct.TransferFees = &models.AirportTransferFees{}
		if err := json.Unmarshal(fees, ct.TransferFees); err != nil {
			return nil, err
		}
	}
	return &ct, nil
}
