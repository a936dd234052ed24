package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage"
)

// factorRepo serves both driver_nationalities and tour_types, which share
// one schema. The table name comes from a constant at wiring time, never
// from user input.
type factorRepo struct {
	db    *pgxpool.Pool
	log   logger.ILogger
	table string
}

func NewFactorRepo(db *pgxpool.Pool, log logger.ILogger, table string) storage.IFactorStorage {
	return &factorRepo{db: db, log: log, table: table}
}

func (r *factorRepo) GetAll(ctx context.Context) ([]*models.FactorEntry, error) {
	query := fmt.Sprintf(`SELECT id, name, factor, enabled, created_at FROM %s ORDER BY created_at ASC`, r.table)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.FactorEntry
	for rows.Next() {
		var f models.FactorEntry
		if err := rows.Scan(&f.ID, &f.Name, &f.Factor, &f.Enabled, &f.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &f)
	}
	return entries, rows.Err()
}

func (r *factorRepo) GetByID(ctx context.Context, id string) (*models.FactorEntry, error) {
	var f models.FactorEntry
	query := fmt.Sprintf(`SELECT id, name, factor, enabled, created_at FROM %s WHERE id = $1`, r.table)
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Factor, &f.Enabled, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *factorRepo) Upsert(ctx context.Context, f *models.FactorEntry) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, name, factor, enabled)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (id) DO UPDATE SET
	            name = EXCLUDED.name,
	            factor = EXCLUDED.factor,
	            enabled = EXCLUDED.enabled`, r.table)
	_, err := r.db.Exec(ctx, query, f.ID, f.Name, f.Factor, f.Enabled)
	return err
}

func (r *factorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	return err
}
