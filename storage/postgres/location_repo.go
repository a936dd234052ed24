package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage"
)

type locationRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewLocationRepo(db *pgxpool.Pool, log logger.ILogger) storage.ILocationStorage {
	return &locationRepo{db: db, log: log}
}

func (r *locationRepo) GetAll(ctx context.Context) ([]*models.Location, error) {
	query := `SELECT id, name, kind, price_factor, parent_city_id, enabled, sort_order, created_at
	          FROM locations ORDER BY sort_order ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	query := `SELECT id, name, kind, price_factor, parent_city_id, enabled, sort_order, created_at
	          FROM locations WHERE id = $1`
	return scanLocation(r.db.QueryRow(ctx, query, id))
}

func (r *locationRepo) Upsert(ctx context.Context, l *models.Location) error {
	parent := sql.NullString{String: l.ParentCityID, Valid: l.ParentCityID != ""}
	query := `INSERT INTO locations (id, name, kind, price_factor, parent_city_id, enabled, sort_order)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET
	            name = EXCLUDED.name,
	            kind = EXCLUDED.kind,
	            price_factor = EXCLUDED.price_factor,
	            parent_city_id = EXCLUDED.parent_city_id,
	            enabled = EXCLUDED.enabled,
	            sort_order = EXCLUDED.sort_order`
	_, err := r.db.Exec(ctx, query, l.ID, l.Name, l.Kind, l.PriceFactor, parent, l.Enabled, l.SortOrder)
	return err
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	return err
}

func scanLocation(row pgx.Row) (*models.Location, error) {
	var l models.Location
	var parent sql.NullString
	if err := row.Scan(&l.ID, &l.Name, &l.Kind, &l.PriceFactor, &parent, &l.Enabled, &l.SortOrder, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.ParentCityID = parent.String
	return &l, nil
}
